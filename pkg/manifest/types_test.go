package manifest

import "testing"

func boolPtr(b bool) *bool { return &b }

func TestIsEnabled(t *testing.T) {
	tests := []struct {
		name    string
		enabled *bool
		want    bool
	}{
		{"absent means enabled", nil, true},
		{"explicit true", boolPtr(true), true},
		{"explicit false", boolPtr(false), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Entry{Name: "x", Kind: KindExtension, Enabled: tt.enabled}
			if got := e.IsEnabled(); got != tt.want {
				t.Errorf("IsEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInComprehensiveTest(t *testing.T) {
	tests := []struct {
		name string
		e    *Entry
		want bool
	}{
		{
			name: "enabled entry always participates",
			e:    &Entry{Name: "a"},
			want: true,
		},
		{
			name: "disabled entry flagged back in",
			e:    &Entry{Name: "b", Enabled: boolPtr(false), EnabledInComprehensiveTest: boolPtr(true)},
			want: true,
		},
		{
			name: "disabled entry documented out",
			e:    &Entry{Name: "c", Enabled: boolPtr(false), EnabledInComprehensiveTest: boolPtr(false)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.InComprehensiveTest(); got != tt.want {
				t.Errorf("InComprehensiveTest() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPreloadName(t *testing.T) {
	tests := []struct {
		name string
		e    *Entry
		want string
	}{
		{
			name: "no runtime falls back to entry name",
			e:    &Entry{Name: "pg_cron"},
			want: "pg_cron",
		},
		{
			name: "override used when non-empty",
			e:    &Entry{Name: "pldebugger", Runtime: &Runtime{PreloadLibraryName: "plugin_debugger"}},
			want: "plugin_debugger",
		},
		{
			name: "empty override falls back to entry name",
			e:    &Entry{Name: "pgaudit", Runtime: &Runtime{PreloadLibraryName: ""}},
			want: "pgaudit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.PreloadName(); got != tt.want {
				t.Errorf("PreloadName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindIsValid(t *testing.T) {
	for _, k := range Kinds() {
		if !k.IsValid() {
			t.Errorf("expected %s to be valid", k)
		}
	}
	if Kind("plugin").IsValid() {
		t.Error("expected 'plugin' to be invalid")
	}
}

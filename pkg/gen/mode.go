// Copyright (c) 2026, the aza-pg authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gen

// Mode selects which image flavor a generator targets.
type Mode string

const (
	// ModeDefault targets the published runtime image: enabled entries only.
	ModeDefault Mode = "default"
	// ModeComprehensive targets the regression-test image: a superset that
	// also includes entries flagged enabledInComprehensiveTest.
	ModeComprehensive Mode = "comprehensive"
)

// String returns the string representation of the Mode.
func (m Mode) String() string {
	return string(m)
}

// IsValid checks if the Mode is one of the recognized modes.
func (m Mode) IsValid() bool {
	switch m {
	case ModeDefault, ModeComprehensive:
		return true
	default:
		return false
	}
}

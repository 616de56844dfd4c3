// Copyright (c) 2026, the aza-pg authors. All rights reserved.
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

// Package stats recomputes summary views of a manifest independently of the
// generation pipeline. It produces the operator-facing inventory renderings
// (IMAGE-CONTENTS.txt, version-info.txt, version-info.json) and the counts
// surfaced by the stats command, so generated artifacts can be cross-checked
// against a second derivation of the same data.
package stats

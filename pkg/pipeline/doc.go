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

// Package pipeline orchestrates a full generation run: load and validate the
// manifest once, project the install script and preload list, render the
// Dockerfile and entrypoint templates, partition the manifest into build-family
// sub-manifests, and write the documentation and checksum artifacts. It also
// implements the drift check that compares a fresh generation against a
// checked-in artifact directory.
package pipeline

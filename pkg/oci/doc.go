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

// Package oci publishes a generated artifact directory to an OCI registry as
// an ORAS artifact. The layer tar is reproducible so the pushed digest is a
// function of artifact content alone. This is the only network surface of
// the tool.
package oci

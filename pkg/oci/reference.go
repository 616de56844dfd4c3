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

package oci

import (
	"fmt"
	"strings"

	"github.com/distribution/reference"

	apperrors "github.com/azadata/aza-pg/pkg/errors"
)

// Reference is a validated registry target for a push.
type Reference struct {
	Registry   string
	Repository string
	Tag        string
}

// ParseReference validates and normalizes a registry/repository/tag triple.
// The registry may carry an http:// or https:// prefix, which is stripped.
func ParseReference(registry, repository, tag string) (*Reference, error) {
	registry = stripProtocol(registry)

	if registry == "" || repository == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest,
			"registry and repository are required")
	}
	if tag == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest,
			"tag is required to push an OCI artifact")
	}

	refString := fmt.Sprintf("%s/%s:%s", registry, repository, tag)
	named, err := reference.ParseNormalizedNamed(refString)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid image reference", err,
			map[string]any{"reference": refString})
	}

	return &Reference{
		Registry:   reference.Domain(named),
		Repository: reference.Path(named),
		Tag:        tag,
	}, nil
}

// String returns the Docker-style image reference.
func (r *Reference) String() string {
	return fmt.Sprintf("%s/%s:%s", r.Registry, r.Repository, r.Tag)
}

// stripProtocol removes an http:// or https:// prefix from a registry host.
func stripProtocol(registry string) string {
	registry = strings.TrimPrefix(registry, "https://")
	registry = strings.TrimPrefix(registry, "http://")
	return registry
}

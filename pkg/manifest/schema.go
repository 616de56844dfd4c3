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

package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/azadata/aza-pg/pkg/errors"
)

//go:embed schema/extensions.schema.json
var schemaJSON []byte

const schemaURL = "aza-pg://schema/extensions.schema.json"

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	if schemaErr != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "manifest schema failed to compile", schemaErr)
	}
	return compiledSchema, nil
}

// validateSchema checks the raw manifest document against the embedded
// JSON Schema before any typed decoding happens.
func validateSchema(data []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}

	var document any
	if err := json.Unmarshal(data, &document); err != nil {
		return errors.Wrap(errors.ErrCodeParse, "manifest is not valid JSON", err)
	}

	if err := sch.Validate(document); err != nil {
		return errors.Wrap(errors.ErrCodeParse, "manifest does not match schema", err)
	}
	return nil
}

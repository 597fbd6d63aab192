/*
 * Copyright 2025 The JSONRef Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package cases defines the conformance case-file model. A case file is a
// JSON array of cases, each naming a document and the serialization options
// to apply to it:
//
//	[
//	  {"name": "smoke", "json": {"a": [1, 2]}},
//	  {"name": "compact", "json": [1.5, true], "cfg": {"indentation": ""}}
//	]
package cases // import "jsonref.io/jsonref/tools/conformance/cases"

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"jsonref.io/jsonref/writer"

	"bitbucket.org/creachadair/stringset"
)

// Config carries the serialization options of a single case. Pointer fields
// distinguish an absent setting from an explicit zero: an absent indentation
// means the tab default, while an explicit "" selects the compact form.
type Config struct {
	Indentation             *string `json:"indentation,omitempty"`
	Precision               *uint   `json:"precision,omitempty"`
	PrecisionType           *string `json:"precisionType,omitempty"`
	EmitUTF8                bool    `json:"emitUTF8,omitempty"`
	UseSpecialFloats        bool    `json:"useSpecialFloats,omitempty"`
	EnableYAMLCompatibility bool    `json:"enableYAMLCompatibility,omitempty"`
	DropNullPlaceholders    bool    `json:"dropNullPlaceholders,omitempty"`
}

// Options converts the configuration into writer options, filling in the
// defaults for absent fields.
func (c Config) Options() (writer.Options, error) {
	opts := writer.DefaultOptions()
	if c.Indentation != nil {
		opts.Indentation = *c.Indentation
	}
	if c.Precision != nil {
		opts.Precision = *c.Precision
	}
	if c.PrecisionType != nil {
		pt, err := writer.ParsePrecisionType(*c.PrecisionType)
		if err != nil {
			return opts, err
		}
		opts.PrecisionType = pt
	}
	opts.EmitUTF8 = c.EmitUTF8
	opts.UseSpecialFloats = c.UseSpecialFloats
	opts.EnableYAMLCompatibility = c.EnableYAMLCompatibility
	opts.DropNullPlaceholders = c.DropNullPlaceholders
	return opts, nil
}

// Args renders the configuration as the seven positional arguments expected
// by an external writer command, in order: indentation, precision,
// precisionType, emitUTF8, useSpecialFloats, enableYAMLCompatibility, and
// dropNullPlaceholders.
func (c Config) Args() []string {
	indentation := "\t"
	if c.Indentation != nil {
		indentation = *c.Indentation
	}
	precision := uint(17)
	if c.Precision != nil {
		precision = *c.Precision
	}
	precisionType := "significant"
	if c.PrecisionType != nil {
		precisionType = *c.PrecisionType
	}
	return []string{
		indentation,
		strconv.FormatUint(uint64(precision), 10),
		precisionType,
		boolArg(c.EmitUTF8),
		boolArg(c.UseSpecialFloats),
		boolArg(c.EnableYAMLCompatibility),
		boolArg(c.DropNullPlaceholders),
	}
}

func boolArg(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Case is a single conformance document plus its serialization options.
type Case struct {
	Name   string          `json:"name"`
	JSON   json.RawMessage `json:"json"`
	Config Config          `json:"cfg,omitempty"`
}

// Load reads and decodes a case file. Every case must have a nonempty,
// unique name and a document.
func Load(path string) ([]*Case, error) {
	rec, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cs []*Case
	if err := json.Unmarshal(rec, &cs); err != nil {
		return nil, fmt.Errorf("decoding case file %s: %v", path, err)
	}
	names := stringset.New()
	for i, c := range cs {
		if c.Name == "" {
			return nil, fmt.Errorf("case #%d: missing name", i)
		} else if names.Contains(c.Name) {
			return nil, fmt.Errorf("duplicate case name: %q", c.Name)
		} else if len(c.JSON) == 0 {
			return nil, fmt.Errorf("case %q: missing json document", c.Name)
		}
		names.Add(c.Name)
	}
	return cs, nil
}

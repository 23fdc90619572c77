/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package schema

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Policy selects how distribution kinds are validated during parsing.
type Policy int

const (
	// StrictSchema accepts only the closed kind set of the rule
	// table (uniform, normal, choice, constant) and checks the
	// required argument keys of each kind at parse time.
	StrictSchema Policy = iota

	// OpenSchema accepts any distribution kind string at parse
	// time. Validity is checked lazily during sampling, against
	// the catalog of the sampling registry.
	OpenSchema
)

// Parse extracts the YAML fragment from a docstring and converts it
// into a ParameterSpace. The document must be a mapping holding a
// 'parameters' list; every list item must be a mapping with 'name'
// and 'distribution' keys, and the remaining keys of the item become
// the distribution arguments. Parameter names must be unique within
// a document. No partial space is returned on any failure.
func Parse(docstring string, policy Policy) (ParameterSpace, error) {
	text, err := ExtractYAML(docstring)
	if err != nil {
		return nil, err
	}

	var doc interface{}
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, errors.Wrapf(ErrSyntax, "malformed YAML: %v", err)
	}

	mapping, ok := doc.(map[string]interface{})
	if !ok {
		return nil, errors.Wrap(ErrSchema, "YAML must be a mapping with 'parameters' key")
	}

	rawParams, ok := mapping["parameters"]
	if !ok {
		return nil, errors.Wrap(ErrSchema, "YAML must contain 'parameters' key")
	}

	items, ok := rawParams.([]interface{})
	if !ok {
		return nil, errors.Wrap(ErrSchema, "'parameters' must be a list")
	}

	params := make([]ParameterDefinition, 0, len(items))
	seen := make(map[string]bool, len(items))

	for _, item := range items {
		def, err := parseItem(item)
		if err != nil {
			return nil, err
		}
		if seen[def.Name] {
			return nil, errors.Wrapf(ErrSchema, "duplicate parameter name %q", def.Name)
		}
		seen[def.Name] = true

		if policy == StrictSchema {
			if err := validateStrict(def); err != nil {
				return nil, err
			}
		}
		params = append(params, def)
	}

	return NewParameterSpace(params), nil
}

// parseItem converts one list item into a ParameterDefinition,
// lifting name and distribution out of the argument mapping.
func parseItem(item interface{}) (ParameterDefinition, error) {
	mapping, ok := item.(map[string]interface{})
	if !ok {
		return ParameterDefinition{}, errors.Wrap(ErrSchema, "parameter definition must be a mapping")
	}

	rawName, ok := mapping["name"]
	if !ok {
		return ParameterDefinition{}, errors.Wrap(ErrSchema, "parameter definition missing 'name' field")
	}
	name, ok := rawName.(string)
	if !ok || name == "" {
		return ParameterDefinition{}, errors.Wrap(ErrSchema, "parameter 'name' must be a non-empty string")
	}

	rawDist, ok := mapping["distribution"]
	if !ok {
		return ParameterDefinition{}, errors.Wrapf(ErrSchema, "parameter %q missing 'distribution' field", name)
	}
	dist, ok := rawDist.(string)
	if !ok || dist == "" {
		return ParameterDefinition{}, errors.Wrapf(ErrSchema, "parameter %q: 'distribution' must be a non-empty string", name)
	}

	args := make(map[string]interface{}, len(mapping)-2)
	for k, v := range mapping {
		if k == "name" || k == "distribution" {
			continue
		}
		args[k] = v
	}

	return ParameterDefinition{Name: name, Distribution: dist, Args: args}, nil
}

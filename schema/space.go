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
)

// ParameterDefinition describes a single named parameter: the kind
// of probability distribution it is drawn from and the arguments of
// that distribution. Args holds every key of the source mapping
// except name and distribution, which are lifted into the dedicated
// fields. A definition is not modified after parsing.
type ParameterDefinition struct {
	Name         string
	Distribution string
	Args         map[string]interface{}
}

// ParameterSpace wraps a slice of ParameterDefinition elements in
// the order they appear in the source document. Ranging over the
// space visits the definitions in that order.
type ParameterSpace []ParameterDefinition

// NewParameterSpace returns a new ParameterSpace instance.
func NewParameterSpace(params []ParameterDefinition) ParameterSpace {
	return ParameterSpace(params)
}

// Len returns the number of parameter definitions in the space.
func (s ParameterSpace) Len() int {
	return len(s)
}

// Get returns the first definition with the given name. It returns
// an error wrapping ErrNotFound if no definition has that name.
func (s ParameterSpace) Get(name string) (ParameterDefinition, error) {
	for _, p := range s {
		if p.Name == name {
			return p, nil
		}
	}

	return ParameterDefinition{}, errors.Wrapf(ErrNotFound, "parameter %q", name)
}

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

package sample

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/genart-project/genart/schema"
)

// Func draws one value from a distribution given its arguments and a
// random source. Implementations must not retain rng.
type Func func(args map[string]interface{}, rng *rand.Rand) (interface{}, error)

// Registry maps distribution kinds to sampling functions. An unknown
// kind is an ordinary missing-key case, reported with the catalog of
// supported kinds.
type Registry map[string]Func

// NewRegistry returns a Registry instance populated with all
// supported distribution kinds. The constant and choice kinds are
// pure substitution logic; the rest draw from gonum distributions.
// The normal kind is registered under 'norm' as well, matching the
// scipy-style short name.
func NewRegistry() Registry {
	return Registry{
		"constant": sampleConstant,
		"choice":   sampleChoice,
		"uniform":  sampleUniform,
		"normal":   sampleNormal,
		"norm":     sampleNormal,
		"randint":  sampleRandint,
		"beta":     sampleBeta,
		"poisson":  samplePoisson,
	}
}

// defaultRegistry serves the package-level One and Space functions.
var defaultRegistry = NewRegistry()

// Kinds returns the catalog of registered distribution kinds in
// sorted order.
func (r Registry) Kinds() []string {
	kinds := make([]string, 0, len(r))
	for kind := range r {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	return kinds
}

// One draws a single value for the given definition. It returns an
// error wrapping schema.ErrDistribution if the distribution kind is
// not registered or its arguments are missing or malformed.
func (r Registry) One(def schema.ParameterDefinition, rng *rand.Rand) (interface{}, error) {
	fn, ok := r[def.Distribution]
	if !ok {
		return nil, errors.Wrapf(schema.ErrDistribution,
			"parameter %q: unknown distribution %q (supported: %s)",
			def.Name, def.Distribution, strings.Join(r.Kinds(), ", "))
	}

	v, err := fn(def.Args, rng)
	if err != nil {
		return nil, errors.WithMessagef(err, "parameter %q", def.Name)
	}

	return v, nil
}

// Space draws one value per definition in the space, in order, and
// returns the name-to-value mapping. A duplicate name overwrites the
// earlier value. No partial result is returned on failure.
func (r Registry) Space(space schema.ParameterSpace, rng *rand.Rand) (map[string]interface{}, error) {
	values := make(map[string]interface{}, space.Len())
	for _, def := range space {
		v, err := r.One(def, rng)
		if err != nil {
			return nil, err
		}
		values[def.Name] = v
	}

	return values, nil
}

// One draws a single value for the given definition using the
// default registry.
func One(def schema.ParameterDefinition, rng *rand.Rand) (interface{}, error) {
	return defaultRegistry.One(def, rng)
}

// Space draws one value per definition in the space using the
// default registry.
func Space(space schema.ParameterSpace, rng *rand.Rand) (map[string]interface{}, error) {
	return defaultRegistry.Space(space, rng)
}

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
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// rule checks the arguments of one distribution kind for a named
// parameter. Rules only check structure, not numeric ranges.
type rule func(name string, args map[string]interface{}) error

// strictRules is the closed set of distribution kinds accepted under
// StrictSchema, with the argument keys each kind requires.
var strictRules = map[string]rule{
	"uniform":  requireArgs("uniform", "low", "high"),
	"normal":   requireArgs("normal", "mean", "std"),
	"choice":   choiceRule,
	"constant": requireArgs("constant", "value"),
}

// requireArgs returns a rule checking that every listed key is
// present in the argument mapping.
func requireArgs(kind string, keys ...string) rule {
	return func(name string, args map[string]interface{}) error {
		for _, key := range keys {
			if _, ok := args[key]; !ok {
				return errors.Wrapf(ErrDistribution,
					"parameter %q: distribution '%s' requires '%s' field", name, kind, key)
			}
		}

		return nil
	}
}

// choiceRule checks that a choice parameter carries a 'values' list.
func choiceRule(name string, args map[string]interface{}) error {
	v, ok := args["values"]
	if !ok {
		return errors.Wrapf(ErrDistribution,
			"parameter %q: distribution 'choice' requires 'values' field", name)
	}
	if _, ok := v.([]interface{}); !ok {
		return errors.Wrapf(ErrDistribution,
			"parameter %q: 'values' must be a list", name)
	}

	return nil
}

// validateStrict applies the fixed rule table to one definition.
// An unknown kind is rejected with the supported set in the message.
func validateStrict(def ParameterDefinition) error {
	r, ok := strictRules[def.Distribution]
	if !ok {
		return errors.Wrapf(ErrDistribution,
			"parameter %q: unsupported distribution %q (supported: %s)",
			def.Name, def.Distribution, strings.Join(strictKinds(), ", "))
	}

	return r(def.Name, def.Args)
}

// strictKinds lists the kinds of the strict rule table in sorted order.
func strictKinds() []string {
	kinds := make([]string, 0, len(strictRules))
	for kind := range strictRules {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	return kinds
}

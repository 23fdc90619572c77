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
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/genart-project/genart/schema"
)

// sampleConstant returns the declared value verbatim. The random
// source is never consulted, so a constant parameter yields the same
// value regardless of seed and leaves the rng state untouched.
func sampleConstant(args map[string]interface{}, _ *rand.Rand) (interface{}, error) {
	v, ok := args["value"]
	if !ok {
		return nil, errors.Wrap(schema.ErrDistribution, "distribution 'constant' requires 'value' field")
	}

	return v, nil
}

// sampleChoice draws one element uniformly from the 'values' list.
func sampleChoice(args map[string]interface{}, rng *rand.Rand) (interface{}, error) {
	v, ok := args["values"]
	if !ok {
		return nil, errors.Wrap(schema.ErrDistribution, "distribution 'choice' requires 'values' field")
	}
	values, ok := v.([]interface{})
	if !ok {
		return nil, errors.Wrap(schema.ErrDistribution, "'values' must be a list")
	}
	if len(values) == 0 {
		return nil, errors.Wrap(schema.ErrDistribution, "'values' must not be empty")
	}

	return values[rng.Intn(len(values))], nil
}

// sampleUniform draws from the half-open interval [low, high).
// Bounds are given either as low/high or scipy-style as loc/scale,
// meaning [loc, loc+scale).
func sampleUniform(args map[string]interface{}, rng *rand.Rand) (interface{}, error) {
	min, max, err := uniformBounds(args)
	if err != nil {
		return nil, err
	}

	return distuv.Uniform{Min: min, Max: max, Src: rng}.Rand(), nil
}

func uniformBounds(args map[string]interface{}) (float64, float64, error) {
	if _, ok := args["low"]; ok {
		low, err := floatArg(args, "uniform", "low")
		if err != nil {
			return 0, 0, err
		}
		high, err := floatArg(args, "uniform", "high")
		if err != nil {
			return 0, 0, err
		}

		return low, high, nil
	}

	loc, err := optFloatArg(args, "uniform", "loc", 0)
	if err != nil {
		return 0, 0, err
	}
	scale, err := optFloatArg(args, "uniform", "scale", 1)
	if err != nil {
		return 0, 0, err
	}

	return loc, loc + scale, nil
}

// sampleNormal draws from a Gaussian distribution. The mean and
// standard deviation are given either as mean/std or scipy-style as
// loc/scale, defaulting to the standard normal.
func sampleNormal(args map[string]interface{}, rng *rand.Rand) (interface{}, error) {
	var mu, sigma float64
	var err error

	if _, ok := args["mean"]; ok {
		if mu, err = floatArg(args, "normal", "mean"); err != nil {
			return nil, err
		}
		if sigma, err = floatArg(args, "normal", "std"); err != nil {
			return nil, err
		}
	} else {
		if mu, err = optFloatArg(args, "normal", "loc", 0); err != nil {
			return nil, err
		}
		if sigma, err = optFloatArg(args, "normal", "scale", 1); err != nil {
			return nil, err
		}
	}

	return distuv.Normal{Mu: mu, Sigma: sigma, Src: rng}.Rand(), nil
}

// sampleRandint draws an integer uniformly from [low, high).
func sampleRandint(args map[string]interface{}, rng *rand.Rand) (interface{}, error) {
	low, err := intArg(args, "randint", "low")
	if err != nil {
		return nil, err
	}
	high, err := intArg(args, "randint", "high")
	if err != nil {
		return nil, err
	}
	if high <= low {
		return nil, errors.Wrap(schema.ErrDistribution,
			"distribution 'randint': 'high' must be greater than 'low'")
	}

	return low + rng.Intn(high-low), nil
}

// sampleBeta draws from a beta distribution with shapes a and b.
func sampleBeta(args map[string]interface{}, rng *rand.Rand) (interface{}, error) {
	a, err := floatArg(args, "beta", "a")
	if err != nil {
		return nil, err
	}
	b, err := floatArg(args, "beta", "b")
	if err != nil {
		return nil, err
	}

	return distuv.Beta{Alpha: a, Beta: b, Src: rng}.Rand(), nil
}

// samplePoisson draws a count from a Poisson distribution with rate mu.
func samplePoisson(args map[string]interface{}, rng *rand.Rand) (interface{}, error) {
	mu, err := floatArg(args, "poisson", "mu")
	if err != nil {
		return nil, err
	}

	return int(distuv.Poisson{Lambda: mu, Src: rng}.Rand()), nil
}

// floatArg reads a required numeric argument.
func floatArg(args map[string]interface{}, kind, key string) (float64, error) {
	v, ok := args[key]
	if !ok {
		return 0, errors.Wrapf(schema.ErrDistribution,
			"distribution '%s' requires '%s' field", kind, key)
	}

	return toFloat(v, kind, key)
}

// optFloatArg reads an optional numeric argument, falling back to a
// default when the key is absent.
func optFloatArg(args map[string]interface{}, kind, key string, def float64) (float64, error) {
	v, ok := args[key]
	if !ok {
		return def, nil
	}

	return toFloat(v, kind, key)
}

// intArg reads a required integer argument.
func intArg(args map[string]interface{}, kind, key string) (int, error) {
	f, err := floatArg(args, kind, key)
	if err != nil {
		return 0, err
	}
	n := int(f)
	if float64(n) != f {
		return 0, errors.Wrapf(schema.ErrDistribution,
			"distribution '%s': '%s' must be an integer", kind, key)
	}

	return n, nil
}

func toFloat(v interface{}, kind, key string) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	}

	return 0, errors.Wrapf(schema.ErrDistribution,
		"distribution '%s': '%s' must be a number", kind, key)
}

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

package sample_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"

	"github.com/genart-project/genart/sample"
	"github.com/genart-project/genart/schema"
)

func TestKeyStreamSourceDeterministic(t *testing.T) {
	var key [32]byte
	for i := range key {
		key[i] = byte(i)
	}

	s1 := sample.NewKeyStreamSource(&key)
	s2 := sample.NewKeyStreamSource(&key)

	for i := 0; i < 100; i++ {
		assert.Equal(t, s1.Uint64(), s2.Uint64(), "same key should reproduce the stream")
	}
}

func TestKeyStreamSourceKeySensitive(t *testing.T) {
	var key1, key2 [32]byte
	key2[0] = 1

	s1 := sample.NewKeyStreamSource(&key1)
	s2 := sample.NewKeyStreamSource(&key2)

	assert.NotEqual(t, s1.Uint64(), s2.Uint64(), "different keys should give different streams")
}

func TestKeyStreamSourceSeedRepositions(t *testing.T) {
	var key [32]byte
	key[7] = 42

	s := sample.NewKeyStreamSource(&key)
	first := s.Uint64()
	s.Uint64()
	s.Uint64()

	s.Seed(0)
	assert.Equal(t, first, s.Uint64(), "reseeding should reposition the stream")
}

func TestKeyStreamSourceDrivesSampling(t *testing.T) {
	docstring := "```yaml\nparameters:\n  - name: x\n    distribution: uniform\n    low: 0\n    high: 1\n  - name: colour\n    distribution: choice\n    values: [\"red\", \"green\", \"blue\"]\n```"
	space := mustParse(t, docstring, schema.StrictSchema)

	var key [32]byte
	for i := range key {
		key[i] = byte(255 - i)
	}

	result1, err := sample.Space(space, rand.New(sample.NewKeyStreamSource(&key)))
	if err != nil {
		t.Fatalf("Error during sampling: %v", err)
	}
	result2, err := sample.Space(space, rand.New(sample.NewKeyStreamSource(&key)))
	if err != nil {
		t.Fatalf("Error during sampling: %v", err)
	}

	assert.Equal(t, result1, result2, "a key should reproduce a whole sampling pass")
}

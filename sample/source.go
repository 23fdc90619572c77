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
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
	"golang.org/x/exp/rand"
)

// KeyStreamSource is a deterministic rand.Source backed by a salsa20
// keystream. The 32-byte key fully determines the stream, so a whole
// sampling run can be reproduced from the key alone.
type KeyStreamSource struct {
	key     *[32]byte
	counter uint64
}

// NewKeyStreamSource returns an instance of the KeyStreamSource
// generator. It accepts the key determining the keystream.
func NewKeyStreamSource(key *[32]byte) *KeyStreamSource {
	return &KeyStreamSource{key: key}
}

// Uint64 returns the next 8 bytes of the keystream as an integer.
func (s *KeyStreamSource) Uint64() uint64 {
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, s.counter)
	s.counter++

	in := make([]byte, 8) // zeros, so the output is the raw keystream
	out := make([]byte, 8)
	salsa20.XORKeyStream(out, in, nonce, s.key)

	return binary.LittleEndian.Uint64(out)
}

// Seed positions the stream; the same key and seed always reproduce
// the same sequence.
func (s *KeyStreamSource) Seed(seed uint64) {
	s.counter = seed
}

var _ rand.Source = (*KeyStreamSource)(nil)

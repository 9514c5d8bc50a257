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

package hashing_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Cosmian/DMCFE/algebra"
	"github.com/Cosmian/DMCFE/hashing"
)

func TestHashToScalarDeterministic(t *testing.T) {
	a := hashing.HashToScalar("dst", []byte("hello"))
	b := hashing.HashToScalar("dst", []byte("hello"))
	assert.Equal(t, a, b, "hashing the same input twice should give the same scalar")

	c := hashing.HashToScalar("dst", []byte("world"))
	assert.NotEqual(t, a, c, "different messages should (overwhelmingly likely) hash differently")

	d := hashing.HashToScalar("other-dst", []byte("hello"))
	assert.NotEqual(t, a, d, "different domain tags should (overwhelmingly likely) hash differently")
}

func TestBasisIndependence(t *testing.T) {
	u0, u1, err := hashing.Basis("dst", []byte("label"))
	if err != nil {
		t.Fatalf("could not derive basis: %v", err)
	}
	assert.NotEqual(t, u0, u1, "the two basis points must be distinct")

	u0Again, u1Again, err := hashing.Basis("dst", []byte("label"))
	if err != nil {
		t.Fatalf("could not derive basis: %v", err)
	}
	assert.Equal(t, u0, u0Again)
	assert.Equal(t, u1, u1Again)
}

func TestPairHashAntisymmetric(t *testing.T) {
	shared := []byte("shared-secret-bytes")

	tIJ := hashing.PairHash("dsum", 1, 3, shared)
	tJI := hashing.PairHash("dsum", 3, 1, shared)

	sum := new(big.Int).Add(tIJ, tJI)
	sum.Mod(sum, algebra.Order)
	assert.Equal(t, 0, sum.Sign(), "T_ij and T_ji should cancel modulo the group order")
}

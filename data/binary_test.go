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

package data

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorBinaryRoundTrip(t *testing.T) {
	v := Vector{big.NewInt(1), big.NewInt(-2), big.NewInt(12345)}

	encoded, err := v.MarshalBinary()
	assert.NoError(t, err)

	var decoded Vector
	assert.NoError(t, decoded.UnmarshalBinary(encoded))
	assert.Equal(t, v, decoded, "Vector should round-trip through Marshal/Unmarshal")
}

func TestVectorG1BinaryRoundTrip(t *testing.T) {
	v := Vector{big.NewInt(3), big.NewInt(7)}.MulG1()

	encoded, err := v.MarshalBinary()
	assert.NoError(t, err)

	var decoded VectorG1
	assert.NoError(t, decoded.UnmarshalBinary(encoded))
	assert.Equal(t, v, decoded, "VectorG1 should round-trip through Marshal/Unmarshal")
}

func TestVectorG2BinaryRoundTrip(t *testing.T) {
	v := Vector{big.NewInt(3), big.NewInt(7)}.MulG2()

	encoded, err := v.MarshalBinary()
	assert.NoError(t, err)

	var decoded VectorG2
	assert.NoError(t, decoded.UnmarshalBinary(encoded))
	assert.Equal(t, v, decoded, "VectorG2 should round-trip through Marshal/Unmarshal")
}

func TestMatrixG1BinaryRoundTrip(t *testing.T) {
	m := Matrix{
		Vector{big.NewInt(1), big.NewInt(2)},
		Vector{big.NewInt(3), big.NewInt(4)},
		Vector{big.NewInt(5), big.NewInt(6)},
	}.MulG1()

	encoded, err := m.MarshalBinary()
	assert.NoError(t, err)

	var decoded MatrixG1
	assert.NoError(t, decoded.UnmarshalBinary(encoded))
	assert.Equal(t, m, decoded, "MatrixG1 should round-trip through Marshal/Unmarshal")
}

func TestVectorUnmarshalBinaryRejectsTruncatedInput(t *testing.T) {
	var decoded Vector
	assert.Error(t, decoded.UnmarshalBinary([]byte{0, 0, 0, 2, 1, 2, 3}))
}

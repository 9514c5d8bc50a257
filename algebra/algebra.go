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

// Package algebra is the thin typed view this module keeps over the
// external pairing-friendly curve (github.com/fentec-project/bn256):
// scalar sampling, canonical scalar encoding, G1/G2 (de)serialization with
// subgroup validation, fixed generators, and the pairing. Every scheme
// package (ipfe, dsum, mcfe, dmcfe, bsgs) is built against this adapter
// rather than touching bn256 directly, so the curve could be swapped
// without touching scheme logic.
package algebra

import (
	"math/big"

	"github.com/fentec-project/bn256"

	"github.com/Cosmian/DMCFE/internal"
	"github.com/Cosmian/DMCFE/sample"
)

// Order is the prime order q of the G1/G2/G_T triple.
var Order = bn256.Order

// ScalarSize is the canonical big-endian byte length of an F_q element.
const ScalarSize = 32

// RandomScalar samples a uniform element of F_q using a cryptographic RNG.
func RandomScalar() (*big.Int, error) {
	return sample.NewUniform(Order).Sample()
}

// G1Generator returns the fixed generator g1 of G1.
func G1Generator() *bn256.G1 {
	return new(bn256.G1).ScalarBaseMult(big.NewInt(1))
}

// G2Generator returns the fixed generator g2 of G2.
func G2Generator() *bn256.G2 {
	return new(bn256.G2).ScalarBaseMult(big.NewInt(1))
}

// GTGenerator returns g_T = e(g1, g2).
func GTGenerator() *bn256.GT {
	return bn256.Pair(G1Generator(), G2Generator())
}

// G1Identity returns the identity element of G1.
func G1Identity() *bn256.G1 {
	return new(bn256.G1).ScalarBaseMult(big.NewInt(0))
}

// G2Identity returns the identity element of G2.
func G2Identity() *bn256.G2 {
	return new(bn256.G2).ScalarBaseMult(big.NewInt(0))
}

// ScalarMulG1 computes p·point in G1, accepting negative scalars.
func ScalarMulG1(point *bn256.G1, p *big.Int) *bn256.G1 {
	v := new(big.Int).Set(p)
	base := new(bn256.G1).Set(point)
	if v.Sign() < 0 {
		v.Neg(v)
		base.Neg(base)
	}
	return new(bn256.G1).ScalarMult(base, v)
}

// ScalarMulG2 computes p·point in G2, accepting negative scalars.
func ScalarMulG2(point *bn256.G2, p *big.Int) *bn256.G2 {
	v := new(big.Int).Set(p)
	base := new(bn256.G2).Set(point)
	if v.Sign() < 0 {
		v.Neg(v)
		base.Neg(base)
	}
	return new(bn256.G2).ScalarMult(base, v)
}

// Pair computes the bilinear pairing e(a, b) in G_T.
func Pair(a *bn256.G1, b *bn256.G2) *bn256.GT {
	return bn256.Pair(a, b)
}

// SumG1 adds a slice of G1 points, returning the identity for an empty
// slice.
func SumG1(points []*bn256.G1) *bn256.G1 {
	sum := G1Identity()
	for _, p := range points {
		sum.Add(sum, p)
	}
	return sum
}

// SumG2 adds a slice of G2 points, returning the identity for an empty
// slice.
func SumG2(points []*bn256.G2) *bn256.G2 {
	sum := G2Identity()
	for _, p := range points {
		sum.Add(sum, p)
	}
	return sum
}

// MarshalScalar encodes x as a 32-byte big-endian canonical representative
// of its residue mod Order.
func MarshalScalar(x *big.Int) []byte {
	r := new(big.Int).Mod(x, Order)
	out := make([]byte, ScalarSize)
	r.FillBytes(out)
	return out
}

// UnmarshalScalar decodes a canonical scalar encoding produced by
// MarshalScalar, rejecting inputs of the wrong length or not reduced mod
// Order.
func UnmarshalScalar(b []byte) (*big.Int, error) {
	if len(b) != ScalarSize {
		return nil, internal.NewError(internal.InvalidEncoding, "scalar must be 32 bytes")
	}
	x := new(big.Int).SetBytes(b)
	if x.Cmp(Order) >= 0 {
		return nil, internal.NewError(internal.InvalidEncoding, "scalar not reduced mod group order")
	}
	return x, nil
}

// MarshalG1 returns the uncompressed (affine x||y, 64-byte) encoding of a
// G1 point; no compressed form is produced.
func MarshalG1(p *bn256.G1) []byte {
	return p.Marshal()
}

// UnmarshalG1 decodes a G1 point, rejecting malformed encodings or points
// outside the prime-order subgroup (bn256.Unmarshal itself validates that
// the coordinates satisfy the curve equation).
func UnmarshalG1(b []byte) (*bn256.G1, error) {
	p := new(bn256.G1)
	rest, err := p.Unmarshal(b)
	if err != nil {
		return nil, internal.NewError(internal.InvalidEncoding, "malformed G1 point: "+err.Error())
	}
	if len(rest) != 0 {
		return nil, internal.NewError(internal.InvalidEncoding, "trailing bytes after G1 point")
	}
	return p, nil
}

// MarshalG2 returns the uncompressed (affine, 128-byte) encoding of a G2
// point; no compressed form is produced.
func MarshalG2(p *bn256.G2) []byte {
	return p.Marshal()
}

// UnmarshalG2 decodes a G2 point, rejecting malformed encodings.
func UnmarshalG2(b []byte) (*bn256.G2, error) {
	p := new(bn256.G2)
	rest, err := p.Unmarshal(b)
	if err != nil {
		return nil, internal.NewError(internal.InvalidEncoding, "malformed G2 point: "+err.Error())
	}
	if len(rest) != 0 {
		return nil, internal.NewError(internal.InvalidEncoding, "trailing bytes after G2 point")
	}
	return p, nil
}

// MarshalGT returns the encoding of a G_T element.
func MarshalGT(p *bn256.GT) []byte {
	return p.Marshal()
}

// UnmarshalGT decodes a G_T element.
func UnmarshalGT(b []byte) (*bn256.GT, error) {
	p := new(bn256.GT)
	rest, err := p.Unmarshal(b)
	if err != nil {
		return nil, internal.NewError(internal.InvalidEncoding, "malformed GT element: "+err.Error())
	}
	if len(rest) != 0 {
		return nil, internal.NewError(internal.InvalidEncoding, "trailing bytes after GT element")
	}
	return p, nil
}

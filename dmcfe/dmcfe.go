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

// Package dmcfe implements decentralized multi-client inner-product
// functional encryption: it removes mcfe's trusted authority by having
// every client derive its own secret and contribute a partial decryption
// key, with the dsum protocol ensuring the partial keys sum to a
// legitimate combined key without any client learning another's secret.
//
// The ciphertext space is unchanged from mcfe (G1^m per client); the
// decryption key space moves to G2 so that decryption can relate the two
// via the bilinear pairing instead of the authority doing the arithmetic
// in the clear.
package dmcfe

import (
	"math/big"

	"github.com/fentec-project/bn256"
	"github.com/pkg/errors"

	"github.com/Cosmian/DMCFE/algebra"
	"github.com/Cosmian/DMCFE/bsgs"
	"github.com/Cosmian/DMCFE/data"
	"github.com/Cosmian/DMCFE/dsum"
	"github.com/Cosmian/DMCFE/hashing"
	"github.com/Cosmian/DMCFE/internal"
	"github.com/Cosmian/DMCFE/sample"
)

const (
	basisDST = "dmcfe-label-basis"
	maskDST0 = "dmcfe-dsum-col0"
	maskDST1 = "dmcfe-dsum-col1"
)

// EncodeY canonically encodes the full function vector y = (y_1,...,y_n),
// partitioned per client, into the byte string every PartialKey call must
// hash to G2 — every cohort member needs to mask against the exact same
// point, so the encoding must be order-sensitive and unambiguous between
// clients of different lengths.
func EncodeY(y []data.Vector) []byte {
	var out []byte
	for _, yi := range y {
		for _, c := range yi {
			out = append(out, algebra.MarshalScalar(c)...)
		}
		out = append(out, 0)
	}
	return out
}

// Client is one DMCFE cohort member's full state: its encryption secret
// S_i and the pair of dsum parties that mask its partial decryption key
// contributions. Build one with NewClient, then call Join once every
// cohort member's public keys are known.
type Client struct {
	idx int
	S   data.Matrix
	dsA *dsum.Party
	dsB *dsum.Party
}

// PubKeys is the pair of DSum public keys a client publishes to the rest
// of the cohort before Join.
type PubKeys struct {
	A *bn256.G1
	B *bn256.G1
}

// NewClient samples a fresh m x 2 secret matrix S_i and a DSum keypair
// pair for client idx. idx is recorded on the Client but used nowhere; the
// client's real cohort index is fixed by Join, matching dsum's
// registrar-free convention.
func NewClient(idx, m int) (*Client, error) {
	if m <= 0 {
		return nil, internal.NewError(internal.ConfigError, "vector length must be positive")
	}

	rows := make([]data.Vector, m)
	for i := range rows {
		row, err := data.NewRandomVector(2, sample.NewUniform(algebra.Order))
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}
	S, err := data.NewMatrix(rows)
	if err != nil {
		return nil, err
	}

	dsA, err := dsum.New(maskDST0)
	if err != nil {
		return nil, err
	}
	dsB, err := dsum.New(maskDST1)
	if err != nil {
		return nil, err
	}

	return &Client{idx: idx, S: S, dsA: dsA, dsB: dsB}, nil
}

// PubKeys returns the pair of DSum public keys this client publishes to
// the rest of the cohort before Join.
func (c *Client) PubKeys() PubKeys {
	return PubKeys{A: c.dsA.PubKey, B: c.dsB.PubKey}
}

// Join wires both DSum parties against the cohort's published public
// keys, one column at a time. peerKeys must list every cohort member's
// PubKeys, including this client's own, in any consistent order.
func (c *Client) Join(peerKeys []PubKeys) error {
	as := make([]*bn256.G1, len(peerKeys))
	bs := make([]*bn256.G1, len(peerKeys))
	for i, pk := range peerKeys {
		as[i] = pk.A
		bs[i] = pk.B
	}
	if err := c.dsA.Join(as); err != nil {
		return errors.Wrap(err, "joining DSum column 0")
	}
	if err := c.dsB.Join(bs); err != nil {
		return errors.Wrap(err, "joining DSum column 1")
	}
	return nil
}

// Encrypt produces this client's ciphertext c_i for its slice x_i under
// label, identical in shape to mcfe.Scheme.Encrypt: c_{i,k} = x_{i,k}*g1 +
// (S_i*u(label))_k, with u(label) a dimension-2 G1 basis.
func (c *Client) Encrypt(x data.Vector, label []byte) (data.VectorG1, error) {
	if len(x) != c.S.Rows() {
		return nil, internal.NewError(internal.DimensionMismatch, "x_i has wrong length")
	}

	u0, u1, err := hashing.Basis(basisDST, label)
	if err != nil {
		return nil, err
	}
	u := data.VectorG1{u0, u1}

	blind, err := c.S.MatMulVecG1(u)
	if err != nil {
		return nil, err
	}

	return x.MulG1().Add(blind), nil
}

// PartialKey computes pdk_{i,y} = S_i^T*y_i lifted to G2, masked component
// -wise by hash_to_G2(y)*s_i*, where s_i* is this client's pair of DSum
// zero-sum shares. Summing PartialKey across the whole cohort via KeyComb
// cancels every mask term, since each dsum.Party's shares sum to zero.
func (c *Client) PartialKey(yi data.Vector, yEncoding []byte) (data.VectorG2, error) {
	if len(yi) != c.S.Rows() {
		return nil, internal.NewError(internal.DimensionMismatch, "y_i has wrong length")
	}

	hy0, err := hashing.HashToG2(maskDST0+"/mask", yEncoding)
	if err != nil {
		return nil, err
	}
	hy1, err := hashing.HashToG2(maskDST1+"/mask", yEncoding)
	if err != nil {
		return nil, err
	}

	pdk := make(data.VectorG2, 2)
	for j := 0; j < 2; j++ {
		col, err := c.S.GetCol(j)
		if err != nil {
			return nil, err
		}
		dot, err := col.Dot(yi)
		if err != nil {
			return nil, err
		}
		term := algebra.ScalarMulG2(algebra.G2Generator(), dot)

		var mask *bn256.G2
		if j == 0 {
			mask = algebra.ScalarMulG2(hy0, c.dsA.Mask())
		} else {
			mask = algebra.ScalarMulG2(hy1, c.dsB.Mask())
		}
		term.Add(term, mask)
		pdk[j] = term
	}

	return pdk, nil
}

// KeyComb sums a cohort's partial decryption keys into dk_y = Σ_i
// pdk_{i,y}. Exactly one partial key per cohort member must be present —
// the package does not detect a missing contributor; decryption against
// an incomplete dk_y simply returns DlpOutOfRange, since the surviving
// mask terms make the result a uniformly random G2 element (spec's
// documented failure mode, by design of the protocol).
func KeyComb(pdks []data.VectorG2) (data.VectorG2, error) {
	if len(pdks) == 0 {
		return nil, internal.NewError(internal.MissingContribution, "at least one partial key required")
	}

	dk := make(data.VectorG2, 2)
	dk[0] = algebra.G2Identity()
	dk[1] = algebra.G2Identity()
	for _, pdk := range pdks {
		if len(pdk) != 2 {
			return nil, internal.NewError(internal.DimensionMismatch, "partial key must have 2 components")
		}
		dk[0].Add(dk[0], pdk[0])
		dk[1].Add(dk[1], pdk[1])
	}

	return dk, nil
}

// Decrypt recovers <x,y> = Σ_i <x_i,y_i> from every client's ciphertext,
// the combined key dk_y, y partitioned per client, and the shared label,
// searching for the answer within [-bound, bound].
func Decrypt(ciphers []data.VectorG1, dk data.VectorG2, y []data.Vector, label []byte, bound *big.Int) (*big.Int, error) {
	if len(ciphers) != len(y) {
		return nil, internal.NewError(internal.DimensionMismatch, "need one ciphertext per y_i")
	}
	if len(dk) != 2 {
		return nil, internal.NewError(internal.DimensionMismatch, "dk_y must have 2 components")
	}

	acc := algebra.G1Identity()
	for i, ci := range ciphers {
		if len(ci) != len(y[i]) {
			return nil, internal.NewError(internal.DimensionMismatch, "ciphertext/y_i length mismatch")
		}
		weighted := y[i].MulVecG1(ci)
		acc.Add(acc, algebra.SumG1(weighted))
	}

	u0, u1, err := hashing.Basis(basisDST, label)
	if err != nil {
		return nil, err
	}

	lhs := algebra.Pair(acc, algebra.G2Generator())
	rhs := new(bn256.GT).Add(algebra.Pair(u0, dk[0]), algebra.Pair(u1, dk[1]))
	rhs.Neg(rhs)

	target := new(bn256.GT).Add(lhs, rhs)
	gT := algebra.GTGenerator()
	return bsgs.Solve(target, gT, bound)
}

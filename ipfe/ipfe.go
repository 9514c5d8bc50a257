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

// Package ipfe implements the single-authority inner-product functional
// encryption scheme: a trusted authority holds a master secret key and
// releases, per query, a functional key sk_y for a public vector y; a
// holder of sk_y and a ciphertext for x learns only <x,y>.
//
// It is the DDH-based construction of Abdalla, Bourse, De Caro and
// Pointcheval ("Simple Functional Encryption Schemes for Inner
// Products"), instantiated over the G1 subgroup of a pairing-friendly
// curve rather than a raw Z_p group, so its ciphertext and master public
// key share the same algebraic footing MCFE and DMCFE build on.
package ipfe

import (
	"math/big"

	"github.com/fentec-project/bn256"
	"github.com/pkg/errors"

	"github.com/Cosmian/DMCFE/algebra"
	"github.com/Cosmian/DMCFE/bsgs"
	"github.com/Cosmian/DMCFE/data"
	"github.com/Cosmian/DMCFE/internal"
	"github.com/Cosmian/DMCFE/sample"
)

// Params configures a Scheme instance: the length of the vectors it
// encrypts. Immutable once constructed; safe to reuse across many
// Setup/Encrypt/Decrypt calls.
type Params struct {
	L int
}

// Scheme is an IPFE instance for a fixed vector length L.
type Scheme struct {
	Params *Params
}

// New configures a new IPFE instance for vectors of length l. It returns
// a ConfigError if l <= 0.
func New(l int) (*Scheme, error) {
	if l <= 0 {
		return nil, internal.NewError(internal.ConfigError, "vector length must be positive")
	}
	return &Scheme{Params: &Params{L: l}}, nil
}

// NewFromParams reconstructs a Scheme from previously serialized Params.
func NewFromParams(params *Params) *Scheme {
	return &Scheme{Params: params}
}

// MasterSecretKey is the m x 2 matrix S held by the authority.
type MasterSecretKey struct {
	S data.Matrix
}

// MasterPublicKey is g1^S, published alongside the scheme Params.
type MasterPublicKey struct {
	H data.MatrixG1
}

// FunctionalKey is the 2-element functional decryption key sk_y = y^T S.
type FunctionalKey struct {
	Key data.Vector
}

// Ciphertext is the pair (U, V) produced by Encrypt: U in G1^2, V in G1^L.
type Ciphertext struct {
	U data.VectorG1
	V data.VectorG1
}

// Setup samples a fresh master secret/public key pair.
func (s *Scheme) Setup() (*MasterSecretKey, *MasterPublicKey, error) {
	rows := make([]data.Vector, s.Params.L)
	for i := range rows {
		row, err := data.NewRandomVector(2, sample.NewUniform(algebra.Order))
		if err != nil {
			return nil, nil, err
		}
		rows[i] = row
	}
	S, err := data.NewMatrix(rows)
	if err != nil {
		return nil, nil, errors.Wrap(err, "assembling master secret key")
	}

	return &MasterSecretKey{S: S}, &MasterPublicKey{H: S.MulG1()}, nil
}

// KeyGen derives the functional decryption key for public vector y.
func (s *Scheme) KeyGen(msk *MasterSecretKey, y data.Vector) (*FunctionalKey, error) {
	if len(y) != s.Params.L {
		return nil, internal.NewError(internal.DimensionMismatch, "y has wrong length")
	}

	key := make(data.Vector, 2)
	for j := 0; j < 2; j++ {
		col, err := msk.S.GetCol(j)
		if err != nil {
			return nil, err
		}
		dot, err := col.Dot(y)
		if err != nil {
			return nil, err
		}
		key[j] = new(big.Int).Mod(dot, algebra.Order)
	}

	return &FunctionalKey{Key: key}, nil
}

// Encrypt encrypts x under the master public key.
func (s *Scheme) Encrypt(mpk *MasterPublicKey, x data.Vector) (*Ciphertext, error) {
	if len(x) != s.Params.L {
		return nil, internal.NewError(internal.DimensionMismatch, "x has wrong length")
	}

	r, err := data.NewRandomVector(2, sample.NewUniform(algebra.Order))
	if err != nil {
		return nil, err
	}

	U := r.MulG1()
	V := x.MulG1().Add(mpk.H.MulVector(r))

	return &Ciphertext{U: U, V: V}, nil
}

// Decrypt recovers <x,y> from a ciphertext and the functional key for y,
// searching for the answer within [-bound, bound]. It returns
// DlpOutOfRange if the inner product is not in that range.
func (s *Scheme) Decrypt(ct *Ciphertext, sk *FunctionalKey, y data.Vector, bound *big.Int) (*big.Int, error) {
	if len(y) != s.Params.L {
		return nil, internal.NewError(internal.DimensionMismatch, "y has wrong length")
	}

	weightedV := y.MulVecG1(ct.V)
	lhs := algebra.SumG1(weightedV)

	weightedU := sk.Key.MulVecG1(ct.U)
	rhs := algebra.SumG1(weightedU)
	rhs.Neg(rhs)

	target := new(bn256.G1).Add(lhs, rhs)

	g2 := algebra.G2Generator()
	gT := algebra.GTGenerator()
	return bsgs.Solve(algebra.Pair(target, g2), gT, bound)
}

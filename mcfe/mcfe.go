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

// Package mcfe implements multi-client inner-product functional encryption:
// n mutually-untrusting clients, each holding its own secret ek_i issued by
// a single trusted authority, independently encrypt their slice x_i of a
// jointly-defined vector x under a shared label. A holder of the combined
// functional key dk_y for public vector y = (y_1,...,y_n) learns <x,y> from
// the n ciphertexts, provided every ciphertext was produced under the same
// label — changing even one client's label garbles the result.
//
// It generalizes ipfe by re-keying IPFE's per-coordinate secret matrix S to
// be per-client, and replacing the ciphertext's one-time-pad randomness
// with a label-derived basis u(label) in G1^2, so ciphertexts compose
// across clients instead of being independently decryptable (spec §4.6).
package mcfe

import (
	"math/big"

	"github.com/Cosmian/DMCFE/algebra"
	"github.com/Cosmian/DMCFE/bsgs"
	"github.com/Cosmian/DMCFE/data"
	"github.com/Cosmian/DMCFE/hashing"
	"github.com/Cosmian/DMCFE/internal"
	"github.com/Cosmian/DMCFE/sample"
)

const basisDST = "mcfe-label-basis"

// Params configures a Scheme instance: the vector length m_i of every
// client's slice, and whether the inner IPFE layer is disabled.
//
// NoIPFE may only be set when every Dims[i] == 1: spec §4.6 notes the
// inner IPFE layer's dimension-2 randomness is redundant for scalar
// clients, and disabling it saves roughly 30% of encryption time by
// dropping to a single hash_to_G1 term instead of a 2-dimensional basis.
type Params struct {
	Dims   []int
	NoIPFE bool
}

// Scheme is an MCFE instance for a fixed client/dimension layout.
type Scheme struct {
	Params *Params
}

// New configures an MCFE instance for the given per-client vector lengths.
func New(dims []int, noIPFE bool) (*Scheme, error) {
	if len(dims) == 0 {
		return nil, internal.NewError(internal.ConfigError, "at least one client required")
	}
	for _, m := range dims {
		if m <= 0 {
			return nil, internal.NewError(internal.ConfigError, "client dimension must be positive")
		}
		if noIPFE && m != 1 {
			return nil, internal.NewError(internal.ConfigError, "noIPFE requires every client dimension to equal 1")
		}
	}
	return &Scheme{Params: &Params{Dims: append([]int(nil), dims...), NoIPFE: noIPFE}}, nil
}

// NewFromParams reconstructs a Scheme from previously serialized Params.
func NewFromParams(params *Params) *Scheme {
	return &Scheme{Params: params}
}

// ClientKey is ek_i, the secret a trusted authority issues to client i. In
// the default mode S is client i's m_i x 2 secret matrix; in NoIPFE mode s
// is a single scalar and S is nil.
type ClientKey struct {
	S data.Matrix
	s *big.Int
}

// MasterSecretKey holds every client's ek_i. Only the trusted authority
// that ran Setup needs the whole thing; it uses it to answer DKeyGen
// queries and to distribute each ClientKey to its owner.
type MasterSecretKey struct {
	Clients []*ClientKey
}

// FunctionalKey is dk_y, the combined decryption key for public vector
// y = (y_1,...,y_n). It is a 2-element vector in the default mode, or a
// single-element vector in NoIPFE mode.
type FunctionalKey struct {
	Key data.Vector
}

// Setup samples a fresh ek_i for every client and returns them bundled as
// the authority's MasterSecretKey. ClientKeys[i] is the key to distribute
// to client i; it is never published.
func (s *Scheme) Setup() (*MasterSecretKey, error) {
	clients := make([]*ClientKey, len(s.Params.Dims))
	for i, m := range s.Params.Dims {
		if s.Params.NoIPFE {
			scalar, err := algebra.RandomScalar()
			if err != nil {
				return nil, err
			}
			clients[i] = &ClientKey{s: scalar}
			continue
		}

		rows := make([]data.Vector, m)
		for j := range rows {
			row, err := data.NewRandomVector(2, sample.NewUniform(algebra.Order))
			if err != nil {
				return nil, err
			}
			rows[j] = row
		}
		S, err := data.NewMatrix(rows)
		if err != nil {
			return nil, err
		}
		clients[i] = &ClientKey{S: S}
	}

	return &MasterSecretKey{Clients: clients}, nil
}

// DKeyGen derives dk_y = Σ_i y_i^T S_i, for public vector y partitioned per
// client as y[i] (of length Dims[i]).
func (s *Scheme) DKeyGen(msk *MasterSecretKey, y []data.Vector) (*FunctionalKey, error) {
	if len(y) != len(s.Params.Dims) {
		return nil, internal.NewError(internal.DimensionMismatch, "y must supply one vector per client")
	}

	if s.Params.NoIPFE {
		dk := new(big.Int)
		for i, yi := range y {
			if len(yi) != 1 {
				return nil, internal.NewError(internal.DimensionMismatch, "noIPFE requires scalar y_i")
			}
			term := new(big.Int).Mul(yi[0], msk.Clients[i].s)
			dk.Add(dk, term)
		}
		return &FunctionalKey{Key: data.Vector{dk.Mod(dk, algebra.Order)}}, nil
	}

	dk := data.NewConstantVector(2, big.NewInt(0))
	for i, yi := range y {
		if len(yi) != s.Params.Dims[i] {
			return nil, internal.NewError(internal.DimensionMismatch, "y_i has wrong length")
		}
		Si := msk.Clients[i].S
		for j := 0; j < 2; j++ {
			col, err := Si.GetCol(j)
			if err != nil {
				return nil, err
			}
			dot, err := col.Dot(yi)
			if err != nil {
				return nil, err
			}
			dk[j].Add(dk[j], dot)
		}
	}

	return &FunctionalKey{Key: dk.Mod(algebra.Order)}, nil
}

// Encrypt produces client i's ciphertext c_i for its slice x_i under
// label. In the default mode c_{i,k} = x_{i,k}*g1 + (S_i*u(label))_k with
// u(label) a dimension-2 G1 basis; in NoIPFE mode c_i = x_i*g1 +
// s_i*hash_to_G1(label).
func (s *Scheme) Encrypt(client int, ek *ClientKey, x data.Vector, label []byte) (data.VectorG1, error) {
	if client < 0 || client >= len(s.Params.Dims) {
		return nil, internal.NewError(internal.ConfigError, "client index out of range")
	}
	if len(x) != s.Params.Dims[client] {
		return nil, internal.NewError(internal.DimensionMismatch, "x_i has wrong length")
	}

	if s.Params.NoIPFE {
		h, err := hashing.HashToG1(basisDST+"-noipfe", label)
		if err != nil {
			return nil, err
		}
		mask := algebra.ScalarMulG1(h, ek.s)
		c := algebra.ScalarMulG1(algebra.G1Generator(), x[0])
		c.Add(c, mask)
		return data.VectorG1{c}, nil
	}

	u0, u1, err := hashing.Basis(basisDST, label)
	if err != nil {
		return nil, err
	}
	u := data.VectorG1{u0, u1}

	blind, err := ek.S.MatMulVecG1(u)
	if err != nil {
		return nil, err
	}

	return x.MulG1().Add(blind), nil
}

// Decrypt recovers <x,y> = Σ_i <x_i,y_i> from every client's ciphertext, dk
// for y, and the shared label, searching for the answer within [-bound,
// bound]. All ciphertexts must have been produced under the same label or
// the result is DlpOutOfRange (spec I3: a label mismatch garbles, it does
// not fail cleanly, but a garbled point almost never lands on a valid
// small inner product).
func (s *Scheme) Decrypt(ciphers []data.VectorG1, dk *FunctionalKey, y []data.Vector, label []byte, bound *big.Int) (*big.Int, error) {
	if len(ciphers) != len(s.Params.Dims) || len(y) != len(s.Params.Dims) {
		return nil, internal.NewError(internal.DimensionMismatch, "need one ciphertext and one y_i per client")
	}

	acc := algebra.G1Identity()
	for i, ci := range ciphers {
		if len(ci) != s.Params.Dims[i] || len(y[i]) != s.Params.Dims[i] {
			return nil, internal.NewError(internal.DimensionMismatch, "ciphertext/y_i length mismatch")
		}
		weighted := y[i].MulVecG1(ci)
		acc.Add(acc, algebra.SumG1(weighted))
	}

	if s.Params.NoIPFE {
		h, err := hashing.HashToG1(basisDST+"-noipfe", label)
		if err != nil {
			return nil, err
		}
		mask := algebra.ScalarMulG1(h, dk.Key[0])
		mask.Neg(mask)
		acc.Add(acc, mask)
	} else {
		u0, u1, err := hashing.Basis(basisDST, label)
		if err != nil {
			return nil, err
		}
		u := data.VectorG1{u0, u1}
		weighted := dk.Key.MulVecG1(u)
		mask := algebra.SumG1(weighted)
		mask.Neg(mask)
		acc.Add(acc, mask)
	}

	g2 := algebra.G2Generator()
	gT := algebra.GTGenerator()
	return bsgs.Solve(algebra.Pair(acc, g2), gT, bound)
}

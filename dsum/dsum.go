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

// Package dsum implements the distributed sum protocol: after a one-shot
// key exchange, every party in a cohort can non-interactively contribute
// a masked value, with all masks cancelling once the contributions are
// summed. DMCFE uses two independent dsum.Party instances per client (one
// per column of its secret matrix) to mask partial decryption keys; see
// the dmcfe package.
//
// There is no central registrar: every party's index is its rank in the
// lexicographic order of public keys across the cohort, so every honest
// party computes the same indices without coordination.
package dsum

import (
	"bytes"
	"math/big"
	"sort"

	"github.com/fentec-project/bn256"
	"github.com/pkg/errors"

	"github.com/Cosmian/DMCFE/algebra"
	"github.com/Cosmian/DMCFE/hashing"
	"github.com/Cosmian/DMCFE/internal"
)

// Party is one cohort member's DSum state. Zero value is not usable; build
// one with New.
type Party struct {
	dst string
	dsk *big.Int

	// PubKey is dsk*g1, to be published to the rest of the cohort.
	PubKey *bn256.G1

	idx int
	s   *big.Int // zero-sum mask, valid only after Join
}

// New samples a fresh DSum keypair. dst scopes this instance's hashing
// domain — a DMCFE client should construct two Parties with distinct dst
// values, one per secret-matrix column.
func New(dst string) (*Party, error) {
	dsk, err := algebra.RandomScalar()
	if err != nil {
		return nil, err
	}
	return &Party{
		dst:    dst,
		dsk:    dsk,
		PubKey: algebra.ScalarMulG1(algebra.G1Generator(), dsk),
	}, nil
}

// Index returns this party's rank in the cohort, valid only after Join.
func (p *Party) Index() int {
	return p.idx
}

// Join completes the one-shot DSum setup given the public keys of every
// party in the cohort (including this party's own PubKey, at whatever
// position it occurs). It determines this party's index by the
// lexicographic rank of its own public key, then accumulates the signed
// sum of pairwise shared secrets s = sum_{j != i} sign(i,j) * T_{i,j}.
//
// A cohort of fewer than 2 parties is a ConfigError — DSum has nothing to
// distribute over a single party.
func (p *Party) Join(cohortPubKeys []*bn256.G1) error {
	n := len(cohortPubKeys)
	if n < 2 {
		return internal.NewError(internal.ConfigError, "DSum cohort must have at least 2 parties")
	}

	own := p.PubKey.Marshal()
	sorted := make([][]byte, n)
	for i, pk := range cohortPubKeys {
		sorted[i] = pk.Marshal()
	}
	sort.Slice(sorted, func(a, b int) bool {
		return bytes.Compare(sorted[a], sorted[b]) < 0
	})

	idx := -1
	for i, pk := range sorted {
		if bytes.Equal(pk, own) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return internal.NewError(internal.ConfigError, "own public key missing from cohort")
	}
	p.idx = idx

	s := new(big.Int)
	for j, pk := range sorted {
		if j == idx {
			continue
		}
		peer, err := algebra.UnmarshalG1(pk)
		if err != nil {
			return errors.Wrap(err, "decoding peer public key during Join")
		}
		shared := algebra.ScalarMulG1(peer, p.dsk)
		t := hashing.PairHash(p.dst, idx, j, shared.Marshal())
		s.Add(s, t)
	}
	p.s = s.Mod(s, algebra.Order)

	return nil
}

// Contribute returns v + hash_to_scalar(label)*s (mod q) for the current
// round's label. Summing Contribute's output across the whole cohort
// yields the sum of the v's: the masks cancel because s_i's sum to zero.
func (p *Party) Contribute(label []byte, v *big.Int) (*big.Int, error) {
	if p.s == nil {
		return nil, internal.NewError(internal.ConfigError, "Join must be called before Contribute")
	}

	mask := hashing.HashToScalar(p.dst+"/label", label)
	mask.Mul(mask, p.s)

	out := new(big.Int).Add(v, mask)
	return out.Mod(out, algebra.Order), nil
}

// Mask exposes the zero-sum share s_i directly — DMCFE's partial key needs
// it lifted into G2 rather than combined with a scalar contribution
// (spec §4.7: pdk_{i,y} adds hash_to_G2(y)*s_i*, not a scalar sum).
func (p *Party) Mask() *big.Int {
	return new(big.Int).Set(p.s)
}

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

// Package bsgs recovers a bounded discrete logarithm in G_T using the
// classical baby-step / giant-step method: given target = g^n with
// |n| <= bound, it finds n or reports that none exists in range.
//
// This is the final step of every scheme in this module (IPFE, MCFE,
// DMCFE decryption all end with a group-encoded inner product that must
// be converted back to an integer). It is deliberately bounded — solving
// the general discrete log problem is out of scope.
package bsgs

import (
	"math/big"

	"github.com/fentec-project/bn256"

	"github.com/Cosmian/DMCFE/internal"
)

// MaxBound caps the interval searched, bounding time and memory for
// practical use. A caller-requested bound larger than MaxBound is
// silently clamped to it.
var MaxBound = big.NewInt(1 << 40)

// Table is a baby-step table keyed by generator g, reusable across many
// Solve calls sharing the same (g, bound) — e.g. repeated decryptions
// under one scheme instance. Building it once amortizes the O(sqrt(L))
// precompute that Solve would otherwise repeat per call.
type Table struct {
	g     *bn256.GT
	bound *big.Int
	m     *big.Int
	steps map[string]*big.Int
}

// NewTable precomputes the baby-step table for generator g over the
// interval [0, bound].
func NewTable(g *bn256.GT, bound *big.Int) *Table {
	if bound == nil || bound.Cmp(MaxBound) > 0 {
		bound = MaxBound
	}
	m := new(big.Int).Sqrt(bound)
	m.Add(m, big.NewInt(1))

	steps := make(map[string]*big.Int, m.Int64()+1)
	x := new(bn256.GT).ScalarBaseMult(big.NewInt(0))
	for i := new(big.Int); i.Cmp(m) < 0; i.Add(i, big.NewInt(1)) {
		steps[x.String()] = new(big.Int).Set(i)
		x = new(bn256.GT).Add(x, g)
	}

	return &Table{g: g, bound: bound, m: m, steps: steps}
}

// Solve finds n in [0, bound] with target = g^n (additive notation:
// target = n*g), or DlpOutOfRange if none exists.
func (t *Table) Solve(target *bn256.GT) (*big.Int, error) {
	giant := new(bn256.GT).Neg(t.g)
	giant = new(bn256.GT).ScalarMult(giant, t.m)

	x := new(bn256.GT).Set(target)
	for i := new(big.Int); i.Cmp(t.m) < 0; i.Add(i, big.NewInt(1)) {
		if e, ok := t.steps[x.String()]; ok {
			n := new(big.Int).Add(new(big.Int).Mul(i, t.m), e)
			// The giant-step loop covers [0, m^2), which overshoots
			// [0, bound] by construction (m = floor(sqrt(bound))+1) — clamp
			// so a hit past bound is reported as out of range rather than
			// silently accepted.
			if n.Cmp(t.bound) > 0 {
				break
			}
			return n, nil
		}
		x = new(bn256.GT).Add(x, giant)
	}
	return nil, internal.NewError(internal.DlpOutOfRange, "discrete log not found within bound")
}

// Solve finds the unique n in [-bound, bound] such that target = n*g (in
// additive notation for G_T), or returns a DlpOutOfRange error if no such
// n exists. g is typically the fixed pairing generator g_T.
//
// It runs two baby-step/giant-step searches — one for the positive range,
// one (against g^-1) for the negative range — taking whichever finds an
// answer first, matching the two-goroutine race of the reference
// implementation this is grounded on.
func Solve(target, g *bn256.GT, bound *big.Int) (*big.Int, error) {
	if bound == nil || bound.Cmp(MaxBound) > 0 {
		bound = MaxBound
	}

	type result struct {
		n   *big.Int
		err error
	}
	resCh := make(chan result, 2)

	go func() {
		t := NewTable(g, bound)
		n, err := t.Solve(target)
		resCh <- result{n, err}
	}()
	go func() {
		gInv := new(bn256.GT).Neg(g)
		t := NewTable(gInv, bound)
		n, err := t.Solve(target)
		if err == nil {
			n.Neg(n)
		}
		resCh <- result{n, err}
	}()

	first := <-resCh
	if first.err == nil {
		return first.n, nil
	}
	second := <-resCh
	if second.err == nil {
		return second.n, nil
	}
	return nil, internal.NewError(internal.DlpOutOfRange, "discrete log not found within ±bound")
}

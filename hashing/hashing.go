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

// Package hashing provides the hash-to-scalar and map-to-curve routines
// every scheme uses to derive per-label and per-pair randomness. Every
// function takes an explicit domain-separation tag so label hashing,
// vector hashing, and DSum pairwise hashing never collide.
package hashing

import (
	"crypto/sha512"
	"math/big"

	"github.com/fentec-project/bn256"

	"github.com/Cosmian/DMCFE/algebra"
)

// HashToScalar reduces SHA-512(dst || 0x00 || msg) mod the group order,
// mirroring the sha512-to-big.Int-to-Mod pipeline used throughout the
// teacher's decentralized client code.
func HashToScalar(dst string, msg []byte) *big.Int {
	h := sha512.New()
	h.Write([]byte(dst))
	h.Write([]byte{0})
	h.Write(msg)
	digest := h.Sum(nil)

	x := new(big.Int).SetBytes(digest)
	return x.Mod(x, algebra.Order)
}

// HashToG1 maps dst||0x00||msg to a point in G1 via the curve library's own
// hash-to-curve routine.
func HashToG1(dst string, msg []byte) (*bn256.G1, error) {
	return bn256.HashG1(dst + "\x00" + string(msg))
}

// HashToG2 maps dst||0x00||msg to a point in G2 via the curve library's own
// hash-to-curve routine.
func HashToG2(dst string, msg []byte) (*bn256.G2, error) {
	return bn256.HashG2(dst + "\x00" + string(msg))
}

// Basis derives the two independent G1 basis points u(label) = (u_0, u_1)
// that every MCFE/DMCFE ciphertext is blinded against (spec requires
// dimension 2 for the security proof — see §4.6).
func Basis(dst string, label []byte) (u0, u1 *bn256.G1, err error) {
	u0, err = HashToG1(dst+"/0", label)
	if err != nil {
		return nil, nil, err
	}
	u1, err = HashToG1(dst+"/1", label)
	if err != nil {
		return nil, nil, err
	}
	return u0, u1, nil
}

// BasisG2 is the G2 analogue of Basis. DMCFE partial-key masking does not
// use it: dmcfe.Client.PartialKey calls HashToG2 once per column instead.
func BasisG2(dst string, msg []byte) (v0, v1 *bn256.G2, err error) {
	v0, err = HashToG2(dst+"/0", msg)
	if err != nil {
		return nil, nil, err
	}
	v1, err = HashToG2(dst+"/1", msg)
	if err != nil {
		return nil, nil, err
	}
	return v0, v1, nil
}

// PairHash computes the signed per-pair DSum value T_{i,j} = sign(i,j) *
// hash_to_scalar(dst || min(i,j) || max(i,j) || point), where point is the
// Diffie-Hellman shared value dsk_i*dpk_j (== dsk_j*dpk_i). sign is +1 if
// i<j, -1 otherwise, giving T_{i,j} = -T_{j,i} for the same underlying
// shared point (spec §4.2).
func PairHash(dst string, i, j int, shared []byte) *big.Int {
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	msg := append(itoaBytes(lo), itoaBytes(hi)...)
	msg = append(msg, shared...)

	t := HashToScalar(dst, msg)
	if i > j {
		t.Neg(t)
		t.Mod(t, algebra.Order)
	}
	return t
}

func itoaBytes(i int) []byte {
	return big.NewInt(int64(i)).Bytes()
}

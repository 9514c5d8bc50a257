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

package mcfe_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Cosmian/DMCFE/data"
	"github.com/Cosmian/DMCFE/internal"
	"github.com/Cosmian/DMCFE/mcfe"
)

func TestMCFE(t *testing.T) {
	scheme, err := mcfe.New([]int{2, 2}, false)
	if err != nil {
		t.Fatalf("could not instantiate scheme: %v", err)
	}

	msk, err := scheme.Setup()
	if err != nil {
		t.Fatalf("could not run setup: %v", err)
	}

	x := []data.Vector{
		{big.NewInt(1), big.NewInt(2)},
		{big.NewInt(3), big.NewInt(4)},
	}
	y := []data.Vector{
		{big.NewInt(1), big.NewInt(1)},
		{big.NewInt(1), big.NewInt(1)},
	}
	label := []byte("h1")

	dk, err := scheme.DKeyGen(msk, y)
	if err != nil {
		t.Fatalf("could not derive functional key: %v", err)
	}

	ciphers := make([]data.VectorG1, len(x))
	for i := range x {
		ciphers[i], err = scheme.Encrypt(i, msk.Clients[i], x[i], label)
		if err != nil {
			t.Fatalf("client %d could not encrypt: %v", i, err)
		}
	}

	got, err := scheme.Decrypt(ciphers, dk, y, label, big.NewInt(100))
	if err != nil {
		t.Fatalf("could not decrypt: %v", err)
	}

	assert.Equal(t, big.NewInt(10), got, "expected <x,y> = 1+2+3+4 = 10")
}

func TestMCFEWrongLabelGarbles(t *testing.T) {
	scheme, err := mcfe.New([]int{2, 2}, false)
	if err != nil {
		t.Fatalf("could not instantiate scheme: %v", err)
	}
	msk, err := scheme.Setup()
	if err != nil {
		t.Fatalf("could not run setup: %v", err)
	}

	x := []data.Vector{
		{big.NewInt(1), big.NewInt(2)},
		{big.NewInt(3), big.NewInt(4)},
	}
	y := []data.Vector{
		{big.NewInt(1), big.NewInt(1)},
		{big.NewInt(1), big.NewInt(1)},
	}

	dk, err := scheme.DKeyGen(msk, y)
	if err != nil {
		t.Fatalf("could not derive functional key: %v", err)
	}

	ciphers := make([]data.VectorG1, len(x))
	ciphers[0], err = scheme.Encrypt(0, msk.Clients[0], x[0], []byte("h1"))
	if err != nil {
		t.Fatalf("client 0 could not encrypt: %v", err)
	}
	ciphers[1], err = scheme.Encrypt(1, msk.Clients[1], x[1], []byte("h2"))
	if err != nil {
		t.Fatalf("client 1 could not encrypt: %v", err)
	}

	_, err = scheme.Decrypt(ciphers, dk, y, []byte("h1"), big.NewInt(100))
	assert.Error(t, err, "encrypting under mismatched labels should garble the result")
	kind, ok := internal.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, internal.DlpOutOfRange, kind)
}

func TestMCFENoIPFE(t *testing.T) {
	scheme, err := mcfe.New([]int{1, 1, 1}, true)
	if err != nil {
		t.Fatalf("could not instantiate scheme: %v", err)
	}
	msk, err := scheme.Setup()
	if err != nil {
		t.Fatalf("could not run setup: %v", err)
	}

	x := []data.Vector{{big.NewInt(5)}, {big.NewInt(-3)}, {big.NewInt(7)}}
	y := []data.Vector{{big.NewInt(2)}, {big.NewInt(2)}, {big.NewInt(2)}}
	label := []byte("label")

	dk, err := scheme.DKeyGen(msk, y)
	if err != nil {
		t.Fatalf("could not derive functional key: %v", err)
	}

	ciphers := make([]data.VectorG1, len(x))
	for i := range x {
		ciphers[i], err = scheme.Encrypt(i, msk.Clients[i], x[i], label)
		if err != nil {
			t.Fatalf("client %d could not encrypt: %v", i, err)
		}
	}

	got, err := scheme.Decrypt(ciphers, dk, y, label, big.NewInt(100))
	if err != nil {
		t.Fatalf("could not decrypt: %v", err)
	}
	assert.Equal(t, big.NewInt(18), got, "expected <x,y> = 2*(5-3+7) = 18")
}

func TestNewRejectsNoIPFEWithLargeDims(t *testing.T) {
	_, err := mcfe.New([]int{1, 2}, true)
	assert.Error(t, err, "noIPFE requires every client dimension to be 1")
}

// TestCiphertextAndFunctionalKeySerializationRoundTrip covers decrypting
// with a ciphertext and functional key that went through
// MarshalBinary/UnmarshalBinary, matching the wire path between clients,
// the authority, and whoever runs Decrypt.
func TestCiphertextAndFunctionalKeySerializationRoundTrip(t *testing.T) {
	scheme, err := mcfe.New([]int{2, 2}, false)
	if err != nil {
		t.Fatalf("could not instantiate scheme: %v", err)
	}
	msk, err := scheme.Setup()
	if err != nil {
		t.Fatalf("could not run setup: %v", err)
	}

	x := []data.Vector{
		{big.NewInt(1), big.NewInt(2)},
		{big.NewInt(3), big.NewInt(4)},
	}
	y := []data.Vector{
		{big.NewInt(1), big.NewInt(1)},
		{big.NewInt(1), big.NewInt(1)},
	}
	label := []byte("h1")

	dk, err := scheme.DKeyGen(msk, y)
	if err != nil {
		t.Fatalf("could not derive functional key: %v", err)
	}
	dkWire, err := dk.MarshalBinary()
	if err != nil {
		t.Fatalf("could not marshal functional key: %v", err)
	}
	var decodedDK mcfe.FunctionalKey
	if err := decodedDK.UnmarshalBinary(dkWire); err != nil {
		t.Fatalf("could not unmarshal functional key: %v", err)
	}

	ciphers := make([]data.VectorG1, len(x))
	for i := range x {
		ct, err := scheme.Encrypt(i, msk.Clients[i], x[i], label)
		if err != nil {
			t.Fatalf("client %d could not encrypt: %v", i, err)
		}
		ctWire, err := ct.MarshalBinary()
		if err != nil {
			t.Fatalf("client %d could not marshal ciphertext: %v", i, err)
		}
		var decodedCT data.VectorG1
		if err := decodedCT.UnmarshalBinary(ctWire); err != nil {
			t.Fatalf("client %d could not unmarshal ciphertext: %v", i, err)
		}
		ciphers[i] = decodedCT
	}

	got, err := scheme.Decrypt(ciphers, &decodedDK, y, label, big.NewInt(100))
	if err != nil {
		t.Fatalf("could not decrypt: %v", err)
	}
	assert.Equal(t, big.NewInt(10), got, "expected <x,y> = 1+2+3+4 = 10")
}

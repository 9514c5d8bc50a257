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

package dsum_test

import (
	"math/big"
	"testing"

	"github.com/fentec-project/bn256"
	"github.com/stretchr/testify/assert"

	"github.com/Cosmian/DMCFE/algebra"
	"github.com/Cosmian/DMCFE/dsum"
)

func TestDSumCancels(t *testing.T) {
	n := 5
	parties := make([]*dsum.Party, n)
	pubKeys := make([]*bn256.G1, n)

	for i := 0; i < n; i++ {
		p, err := dsum.New("test-dsum")
		if err != nil {
			t.Fatalf("could not create party %d: %v", i, err)
		}
		parties[i] = p
		pubKeys[i] = p.PubKey
	}

	for i, p := range parties {
		if err := p.Join(pubKeys); err != nil {
			t.Fatalf("party %d could not join: %v", i, err)
		}
	}

	label := []byte("round-1")
	sum := big.NewInt(0)
	for i, p := range parties {
		v := big.NewInt(int64(i + 1))
		contribution, err := p.Contribute(label, v)
		if err != nil {
			t.Fatalf("party %d could not contribute: %v", i, err)
		}
		sum.Add(sum, contribution)
	}
	sum.Mod(sum, algebra.Order)

	expected := big.NewInt(int64(n * (n + 1) / 2))
	assert.Equal(t, expected, sum, "masked contributions should sum to the plain sum, masks cancelling")
}

func TestDSumRequiresTwoParties(t *testing.T) {
	p, err := dsum.New("test-dsum")
	if err != nil {
		t.Fatalf("could not create party: %v", err)
	}

	err = p.Join([]*bn256.G1{p.PubKey})
	assert.Error(t, err, "a cohort of a single party should be rejected")
}

func TestDSumContributeBeforeJoin(t *testing.T) {
	p, err := dsum.New("test-dsum")
	if err != nil {
		t.Fatalf("could not create party: %v", err)
	}

	_, err = p.Contribute([]byte("label"), big.NewInt(1))
	assert.Error(t, err, "Contribute before Join should fail")
}

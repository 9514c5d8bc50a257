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

package ipfe

import (
	"github.com/Cosmian/DMCFE/algebra"
	"github.com/Cosmian/DMCFE/data"
	"github.com/Cosmian/DMCFE/internal"
)

// MarshalBinary encodes the master public key's H matrix, satisfying
// encoding.BinaryMarshaler.
func (mpk *MasterPublicKey) MarshalBinary() ([]byte, error) {
	return mpk.H.MarshalBinary()
}

// UnmarshalBinary decodes a MasterPublicKey produced by MarshalBinary,
// satisfying encoding.BinaryUnmarshaler.
func (mpk *MasterPublicKey) UnmarshalBinary(raw []byte) error {
	return mpk.H.UnmarshalBinary(raw)
}

// MarshalBinary encodes the functional key's Key vector, satisfying
// encoding.BinaryMarshaler.
func (sk *FunctionalKey) MarshalBinary() ([]byte, error) {
	return sk.Key.MarshalBinary()
}

// UnmarshalBinary decodes a FunctionalKey produced by MarshalBinary,
// satisfying encoding.BinaryUnmarshaler.
func (sk *FunctionalKey) UnmarshalBinary(raw []byte) error {
	return sk.Key.UnmarshalBinary(raw)
}

// MarshalBinary encodes U and V as two length-prefixed frames, since both
// are independently variable-length G1 vectors, satisfying
// encoding.BinaryMarshaler.
func (ct *Ciphertext) MarshalBinary() ([]byte, error) {
	u, err := ct.U.MarshalBinary()
	if err != nil {
		return nil, err
	}
	v, err := ct.V.MarshalBinary()
	if err != nil {
		return nil, err
	}

	out := algebra.PutFrame(nil, u)
	out = algebra.PutFrame(out, v)
	return out, nil
}

// UnmarshalBinary decodes a Ciphertext produced by MarshalBinary,
// satisfying encoding.BinaryUnmarshaler.
func (ct *Ciphertext) UnmarshalBinary(raw []byte) error {
	uFrame, rest, err := algebra.ReadFrame(raw)
	if err != nil {
		return err
	}
	vFrame, rest, err := algebra.ReadFrame(rest)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return internal.NewError(internal.InvalidEncoding, "trailing bytes after ciphertext")
	}

	var u, v data.VectorG1
	if err := u.UnmarshalBinary(uFrame); err != nil {
		return err
	}
	if err := v.UnmarshalBinary(vFrame); err != nil {
		return err
	}

	ct.U, ct.V = u, v
	return nil
}

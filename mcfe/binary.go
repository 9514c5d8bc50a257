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

package mcfe

// MarshalBinary encodes the functional key's Key vector, satisfying
// encoding.BinaryMarshaler. A client's ciphertext is a bare
// data.VectorG1, which already implements BinaryMarshaler/Unmarshaler
// directly.
func (dk *FunctionalKey) MarshalBinary() ([]byte, error) {
	return dk.Key.MarshalBinary()
}

// UnmarshalBinary decodes a FunctionalKey produced by MarshalBinary,
// satisfying encoding.BinaryUnmarshaler.
func (dk *FunctionalKey) UnmarshalBinary(raw []byte) error {
	return dk.Key.UnmarshalBinary(raw)
}

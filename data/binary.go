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

package data

import (
	"encoding/binary"

	"github.com/fentec-project/bn256"

	"github.com/Cosmian/DMCFE/algebra"
	"github.com/Cosmian/DMCFE/internal"
)

// MarshalBinary encodes v as a 4-byte big-endian element count followed
// by each element's 32-byte canonical scalar encoding, satisfying
// encoding.BinaryMarshaler.
func (v Vector) MarshalBinary() ([]byte, error) {
	out := make([]byte, 4, 4+len(v)*algebra.ScalarSize)
	binary.BigEndian.PutUint32(out, uint32(len(v)))
	for _, c := range v {
		out = append(out, algebra.MarshalScalar(c)...)
	}
	return out, nil
}

// UnmarshalBinary decodes a Vector produced by MarshalBinary, satisfying
// encoding.BinaryUnmarshaler.
func (v *Vector) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return internal.NewError(internal.InvalidEncoding, "truncated vector count")
	}
	n := binary.BigEndian.Uint32(data)
	data = data[4:]
	if uint64(len(data)) != uint64(n)*algebra.ScalarSize {
		return internal.NewError(internal.InvalidEncoding, "vector length does not match count")
	}

	out := make(Vector, n)
	var err error
	for i := range out {
		out[i], err = algebra.UnmarshalScalar(data[:algebra.ScalarSize])
		if err != nil {
			return err
		}
		data = data[algebra.ScalarSize:]
	}
	*v = out
	return nil
}

// MarshalBinary encodes v as a 4-byte big-endian element count followed
// by each point's uncompressed G1 encoding, satisfying
// encoding.BinaryMarshaler.
func (v VectorG1) MarshalBinary() ([]byte, error) {
	out := make([]byte, 4)
	binary.BigEndian.PutUint32(out, uint32(len(v)))
	out = append(out, algebra.MarshalG1Vector(v)...)
	return out, nil
}

// UnmarshalBinary decodes a VectorG1 produced by MarshalBinary, rejecting
// points outside the prime-order subgroup, satisfying
// encoding.BinaryUnmarshaler.
func (v *VectorG1) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return internal.NewError(internal.InvalidEncoding, "truncated vector count")
	}
	n := binary.BigEndian.Uint32(data)
	points, err := algebra.UnmarshalG1Vector(data[4:], int(n))
	if err != nil {
		return err
	}
	*v = VectorG1(points)
	return nil
}

// MarshalBinary encodes v as a 4-byte big-endian element count followed
// by each point's uncompressed G2 encoding, satisfying
// encoding.BinaryMarshaler.
func (v VectorG2) MarshalBinary() ([]byte, error) {
	out := make([]byte, 4)
	binary.BigEndian.PutUint32(out, uint32(len(v)))
	out = append(out, algebra.MarshalG2Vector(v)...)
	return out, nil
}

// UnmarshalBinary decodes a VectorG2 produced by MarshalBinary, satisfying
// encoding.BinaryUnmarshaler.
func (v *VectorG2) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return internal.NewError(internal.InvalidEncoding, "truncated vector count")
	}
	n := binary.BigEndian.Uint32(data)
	points, err := algebra.UnmarshalG2Vector(data[4:], int(n))
	if err != nil {
		return err
	}
	*v = VectorG2(points)
	return nil
}

// MarshalBinary encodes m as a pair of 4-byte big-endian dimensions
// (rows, cols) followed by the row-major flattening of its G1 points,
// satisfying encoding.BinaryMarshaler.
func (m MatrixG1) MarshalBinary() ([]byte, error) {
	rows, cols := m.Rows(), m.Cols()
	flat := make([]*bn256.G1, 0, rows*cols)
	for _, row := range m {
		flat = append(flat, row...)
	}

	out := make([]byte, 8)
	binary.BigEndian.PutUint32(out, uint32(rows))
	binary.BigEndian.PutUint32(out[4:], uint32(cols))
	out = append(out, algebra.MarshalG1Vector(flat)...)
	return out, nil
}

// UnmarshalBinary decodes a MatrixG1 produced by MarshalBinary, satisfying
// encoding.BinaryUnmarshaler.
func (m *MatrixG1) UnmarshalBinary(data []byte) error {
	if len(data) < 8 {
		return internal.NewError(internal.InvalidEncoding, "truncated matrix dimensions")
	}
	rows := int(binary.BigEndian.Uint32(data))
	cols := int(binary.BigEndian.Uint32(data[4:]))

	flat, err := algebra.UnmarshalG1Vector(data[8:], rows*cols)
	if err != nil {
		return err
	}

	out := make(MatrixG1, rows)
	for i := 0; i < rows; i++ {
		out[i] = VectorG1(flat[i*cols : (i+1)*cols])
	}
	*m = out
	return nil
}

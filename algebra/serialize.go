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

package algebra

import (
	"encoding/binary"

	"github.com/fentec-project/bn256"

	"github.com/Cosmian/DMCFE/internal"
)

// MarshalG1Vector concatenates the uncompressed encodings of points, in
// order, with no count prefix — decoding needs the element count out of
// band (either known from context or carried by PutFrame/ReadFrame).
func MarshalG1Vector(points []*bn256.G1) []byte {
	var out []byte
	for _, p := range points {
		out = append(out, p.Marshal()...)
	}
	return out
}

// UnmarshalG1Vector decodes exactly n sequentially-encoded G1 points from
// b, rejecting malformed points or trailing bytes.
func UnmarshalG1Vector(b []byte, n int) ([]*bn256.G1, error) {
	out := make([]*bn256.G1, n)
	rest := b
	var err error
	for i := 0; i < n; i++ {
		p := new(bn256.G1)
		rest, err = p.Unmarshal(rest)
		if err != nil {
			return nil, internal.NewError(internal.InvalidEncoding, "malformed G1 point: "+err.Error())
		}
		out[i] = p
	}
	if len(rest) != 0 {
		return nil, internal.NewError(internal.InvalidEncoding, "trailing bytes after G1 vector")
	}
	return out, nil
}

// MarshalG2Vector concatenates the uncompressed encodings of points, in
// order, with no count prefix.
func MarshalG2Vector(points []*bn256.G2) []byte {
	var out []byte
	for _, p := range points {
		out = append(out, p.Marshal()...)
	}
	return out
}

// UnmarshalG2Vector decodes exactly n sequentially-encoded G2 points from
// b, rejecting malformed points or trailing bytes.
func UnmarshalG2Vector(b []byte, n int) ([]*bn256.G2, error) {
	out := make([]*bn256.G2, n)
	rest := b
	var err error
	for i := 0; i < n; i++ {
		p := new(bn256.G2)
		rest, err = p.Unmarshal(rest)
		if err != nil {
			return nil, internal.NewError(internal.InvalidEncoding, "malformed G2 point: "+err.Error())
		}
		out[i] = p
	}
	if len(rest) != 0 {
		return nil, internal.NewError(internal.InvalidEncoding, "trailing bytes after G2 vector")
	}
	return out, nil
}

// PutFrame appends b to buf as a 4-byte big-endian length prefix followed
// by b itself. Composite MarshalBinary implementations use it to
// concatenate several self-contained encodings (e.g. two vectors of
// different, runtime-determined lengths) into one byte string a decoder
// can split unambiguously.
func PutFrame(buf []byte, b []byte) []byte {
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(b)))
	buf = append(buf, length[:]...)
	buf = append(buf, b...)
	return buf
}

// ReadFrame splits the next length-prefixed frame off b, returning the
// frame and the remaining bytes.
func ReadFrame(b []byte) (frame, rest []byte, err error) {
	if len(b) < 4 {
		return nil, nil, internal.NewError(internal.InvalidEncoding, "truncated frame length")
	}
	n := binary.BigEndian.Uint32(b[:4])
	b = b[4:]
	if uint64(len(b)) < uint64(n) {
		return nil, nil, internal.NewError(internal.InvalidEncoding, "truncated frame body")
	}
	return b[:n], b[n:], nil
}

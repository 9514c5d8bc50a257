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
	"fmt"
	"math/big"

	"github.com/Cosmian/DMCFE/sample"
)

// Matrix wraps a slice of Vector elements. It represents a row-major.
// order matrix.
//
// The j-th element from the i-th vector of the matrix can be obtained
// as m[i][j].
type Matrix []Vector

// NewMatrix accepts a slice of Vector elements and
// returns a new Matrix instance.
// It returns error if not all the vectors have the same number of elements.
func NewMatrix(vectors []Vector) (Matrix, error) {
	l := -1
	newVectors := make([]Vector, len(vectors))

	if len(vectors) > 0 {
		l = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != l {
			return nil, fmt.Errorf("all vectors should be of the same length")
		}
		newVectors[i] = NewVector(v)
	}

	return Matrix(newVectors), nil
}

// NewRandomMatrix returns a new Matrix instance
// with random elements sampled by the provided sample.Sampler.
// Returns an error in case of sampling failure.
func NewRandomMatrix(rows, cols int, sampler sample.Sampler) (Matrix, error) {
	mat := make([]Vector, rows)

	for i := 0; i < rows; i++ {
		vec, err := NewRandomVector(cols, sampler)
		if err != nil {
			return nil, err
		}

		mat[i] = vec
	}

	return NewMatrix(mat)
}

// NewRandomDetMatrix returns a new Matrix instance
// with random elements sampled by a pseudo-random
// number generator. Elements are sampled from [0, max) and key
// determines the pseudo-random generator.
func NewRandomDetMatrix(rows, cols int, max *big.Int, key *[32]byte) (Matrix, error) {
	l := rows * cols
	v, err := NewRandomDetVector(l, max, key)
	if err != nil {
		return nil, err
	}

	mat := make([]Vector, rows)
	for i := 0; i < rows; i++ {
		mat[i] = NewVector(v[(i * cols):((i + 1) * cols)])
	}

	return NewMatrix(mat)
}

// NewConstantMatrix returns a new Matrix instance
// with all elements set to constant c.
func NewConstantMatrix(rows, cols int, c *big.Int) Matrix {
	mat := make([]Vector, rows)
	for i := 0; i < rows; i++ {
		mat[i] = NewConstantVector(cols, c)
	}

	return mat
}

// Rows returns the number of rows of matrix m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrix m.
func (m Matrix) Cols() int {
	if len(m) != 0 {
		return len(m[0])
	}

	return 0
}

// DimsMatch returns a bool indicating whether matrices
// m and other have the same dimensions.
func (m Matrix) DimsMatch(other Matrix) bool {
	return m.Rows() == other.Rows() && m.Cols() == other.Cols()
}

// GetCol returns i-th column of matrix m as a vector.
// It returns error if i >= the number of m's columns.
func (m Matrix) GetCol(i int) (Vector, error) {
	if i >= m.Cols() {
		return nil, fmt.Errorf("column index exceeds matrix dimensions")
	}

	column := make([]*big.Int, m.Rows())
	for j := 0; j < m.Rows(); j++ {
		column[j] = m[j][i]
	}

	return NewVector(column), nil
}

// Transpose transposes matrix m and returns
// the result in a new Matrix.
func (m Matrix) Transpose() Matrix {
	transposed := make([]Vector, m.Cols())
	for i := 0; i < m.Cols(); i++ {
		transposed[i], _ = m.GetCol(i)
	}

	mT, _ := NewMatrix(transposed)

	return mT
}

// CheckBound checks whether the absolute values of all matrix elements
// are strictly smaller than the provided bound.
// It returns error if at least one element's absolute value is >= bound.
func (m Matrix) CheckBound(bound *big.Int) error {
	for _, v := range m {
		err := v.CheckBound(bound)
		if err != nil {
			return err
		}
	}
	return nil
}

// CheckDims checks whether dimensions of matrix m match
// the provided rows and cols arguments.
func (m Matrix) CheckDims(rows, cols int) bool {
	return m.Rows() == rows && m.Cols() == cols
}

// Mod applies the element-wise modulo operation on matrix m.
// The result is returned in a new Matrix.
func (m Matrix) Mod(modulo *big.Int) Matrix {
	vectors := make([]Vector, m.Rows())

	for i, v := range m {
		vectors[i] = v.Mod(modulo)
	}

	matrix, _ := NewMatrix(vectors)

	return matrix
}

// Apply applies an element-wise function f to matrix m.
// The result is returned in a new Matrix.
func (m Matrix) Apply(f func(*big.Int) *big.Int) Matrix {
	res := make(Matrix, len(m))

	for i, vi := range m {
		res[i] = vi.Apply(f)
	}

	return res
}

// Dot calculates the dot product (inner product) of matrices m and other,
// which we define as the sum of the dot product of rows of both matrices.
// It returns an error if m and other have different dimensions.
func (m Matrix) Dot(other Matrix) (*big.Int, error) {
	if !m.DimsMatch(other) {
		return nil, fmt.Errorf("matrices mismatch in dimensions")
	}

	r := new(big.Int)

	for i := 0; i < m.Rows(); i++ {
		prod, err := m[i].Dot(other[i])
		if err != nil {
			return nil, err
		}
		r = r.Add(r, prod)
	}

	return r, nil
}

// Add adds matrices m and other.
// The result is returned in a new Matrix.
// Error is returned if m and other have different dimensions.
func (m Matrix) Add(other Matrix) (Matrix, error) {
	if !m.DimsMatch(other) {
		return nil, fmt.Errorf("matrices mismatch in dimensions")
	}

	vectors := make([]Vector, m.Rows())

	for i, v := range m {
		vectors[i] = v.Add(other[i])
	}

	matrix, err := NewMatrix(vectors)
	if err != nil {
		return nil, err
	}
	return matrix, nil
}

// MulScalar multiplies elements of matrix m by a scalar x.
// The result is returned in a new Matrix.
func (m Matrix) MulScalar(x *big.Int) Matrix {
	return m.Apply(func(i *big.Int) *big.Int {
		return new(big.Int).Mul(i, x)
	})
}

// MulG1 calculates m * [bn256.G1] and returns the
// result in a new MatrixG1 instance.
func (m Matrix) MulG1() MatrixG1 {
	prod := make(MatrixG1, len(m))
	for i := range prod {
		prod[i] = m[i].MulG1()
	}

	return prod
}

// MulG2 calculates m * [bn256.G2] and returns the
// result in a new MatrixG2 instance.
func (m Matrix) MulG2() MatrixG2 {
	prod := make(MatrixG2, len(m))
	for i := range prod {
		prod[i] = m[i].MulG2()
	}

	return prod
}

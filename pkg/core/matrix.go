package core

import (
	"errors"
	"fmt"
)

// ErrNotInvertible is returned when a matrix with a zero determinant is inverted
var ErrNotInvertible = errors.New("matrix is not invertible")

// Matrix4 is a row-major 4x4 matrix
type Matrix4 [4][4]float64

// Identity is the 4x4 identity matrix
var Identity = Matrix4{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

// NewMatrix4 builds a matrix from its rows
func NewMatrix4(rows [4][4]float64) Matrix4 {
	return Matrix4(rows)
}

// At returns the element at row, col
func (m Matrix4) At(row, col int) float64 {
	return m[row][col]
}

// Multiply returns m * other
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var result Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return result
}

// MultiplyTuple returns m * t, treating t as a column
func (m Matrix4) MultiplyTuple(t Tuple) Tuple {
	row := func(r int) float64 {
		return m[r][0]*t.X + m[r][1]*t.Y + m[r][2]*t.Z + m[r][3]*t.W
	}
	return Tuple{X: row(0), Y: row(1), Z: row(2), W: row(3)}
}

// Transpose swaps rows and columns
func (m Matrix4) Transpose() Matrix4 {
	var result Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

// Determinant computes the determinant by cofactor expansion along the first row
func (m Matrix4) Determinant() float64 {
	return determinant(m.square())
}

// Cofactor returns the signed minor at row, col
func (m Matrix4) Cofactor(row, col int) float64 {
	return cofactor(m.square(), row, col)
}

// IsInvertible reports whether the determinant is non-zero
func (m Matrix4) IsInvertible() bool {
	return m.Determinant() != 0
}

// Inverse returns the inverse of m, computed as the transposed cofactor matrix
// divided by the determinant. It fails with ErrNotInvertible when the
// determinant is exactly zero.
func (m Matrix4) Inverse() (Matrix4, error) {
	sq := m.square()
	det := determinant(sq)
	if det == 0 {
		return Matrix4{}, fmt.Errorf("inverse of %v: %w", m, ErrNotInvertible)
	}

	var result Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// Writing to [col][row] transposes the cofactor matrix in place
			result[col][row] = cofactor(sq, row, col) / det
		}
	}
	return result, nil
}

// Equal compares two matrices element-wise within Epsilon
func (m Matrix4) Equal(other Matrix4) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !FloatEqual(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}

// square converts m into a slice form usable by the arbitrary-size helpers
func (m Matrix4) square() [][]float64 {
	sq := make([][]float64, 4)
	for row := range sq {
		sq[row] = []float64{m[row][0], m[row][1], m[row][2], m[row][3]}
	}
	return sq
}

// determinant expands recursively down to the 2x2 base case
func determinant(m [][]float64) float64 {
	n := len(m)
	switch n {
	case 1:
		return m[0][0]
	case 2:
		return m[0][0]*m[1][1] - m[0][1]*m[1][0]
	}

	det := 0.0
	for col := 0; col < n; col++ {
		det += m[0][col] * cofactor(m, 0, col)
	}
	return det
}

// submatrix returns m with the given row and column removed
func submatrix(m [][]float64, row, col int) [][]float64 {
	result := make([][]float64, 0, len(m)-1)
	for r := range m {
		if r == row {
			continue
		}
		line := make([]float64, 0, len(m)-1)
		for c := range m[r] {
			if c == col {
				continue
			}
			line = append(line, m[r][c])
		}
		result = append(result, line)
	}
	return result
}

// minor is the determinant of the submatrix at row, col
func minor(m [][]float64, row, col int) float64 {
	return determinant(submatrix(m, row, col))
}

// cofactor is the minor negated when row+col is odd
func cofactor(m [][]float64, row, col int) float64 {
	if (row+col)%2 == 1 {
		return -minor(m, row, col)
	}
	return minor(m, row, col)
}

package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrNotSquare is returned when matrix rows do not form a non-empty square grid
	ErrNotSquare = errors.New("matrix is not square")
	// ErrNotInvertible is returned when inverting a matrix whose determinant is 0
	ErrNotInvertible = errors.New("matrix is not invertible")
)

// Matrix is an N×N grid of floats stored row-major.
// Every operation returns a new matrix; the backing data is never shared.
type Matrix struct {
	size int
	data []float64
}

// NewMatrix creates a matrix from a square set of rows
func NewMatrix(rows [][]float64) (Matrix, error) {
	n := len(rows)
	if n == 0 {
		return Matrix{}, fmt.Errorf("%w: no rows", ErrNotSquare)
	}
	m := zeroMatrix(n)
	for i, row := range rows {
		if len(row) != n {
			return Matrix{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNotSquare, i, len(row), n)
		}
		copy(m.data[i*n:(i+1)*n], row)
	}
	return m, nil
}

// MustMatrix is like NewMatrix but panics on malformed input.
// It is intended for literal matrices.
func MustMatrix(rows [][]float64) Matrix {
	m, err := NewMatrix(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// Identity returns the n×n identity matrix
func Identity(n int) Matrix {
	m := zeroMatrix(n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

func zeroMatrix(n int) Matrix {
	return Matrix{size: n, data: make([]float64, n*n)}
}

// Size returns N for an N×N matrix
func (m Matrix) Size() int {
	return m.size
}

// At returns the element at row, col
func (m Matrix) At(row, col int) float64 {
	return m.data[row*m.size+col]
}

// Rows returns a copy of the matrix as a slice of rows
func (m Matrix) Rows() [][]float64 {
	rows := make([][]float64, m.size)
	for i := range rows {
		rows[i] = make([]float64, m.size)
		copy(rows[i], m.data[i*m.size:(i+1)*m.size])
	}
	return rows
}

func (m Matrix) set(row, col int, v float64) {
	m.data[row*m.size+col] = v
}

// Transpose swaps rows and columns
func (m Matrix) Transpose() Matrix {
	t := zeroMatrix(m.size)
	for i := 0; i < m.size; i++ {
		for j := 0; j < m.size; j++ {
			t.set(i, j, m.At(j, i))
		}
	}
	return t
}

// Submatrix returns the (N-1)×(N-1) matrix with the given row and column removed
func (m Matrix) Submatrix(row, col int) Matrix {
	sub := zeroMatrix(m.size - 1)
	r := 0
	for i := 0; i < m.size; i++ {
		if i == row {
			continue
		}
		c := 0
		for j := 0; j < m.size; j++ {
			if j == col {
				continue
			}
			sub.set(r, c, m.At(i, j))
			c++
		}
		r++
	}
	return sub
}

// Minor is the determinant of Submatrix(row, col)
func (m Matrix) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor is the minor negated when row+col is odd
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant uses cofactor expansion along the first row.
// The recursion is O(N!), which is fine for the 4×4 matrices used here;
// use DeterminantLU for anything larger.
func (m Matrix) Determinant() float64 {
	switch m.size {
	case 0:
		return 1
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}

	det := 0.0
	for col := 0; col < m.size; col++ {
		det += m.At(0, col) * m.Cofactor(0, col)
	}
	return det
}

// DeterminantLU computes the determinant by Gaussian elimination with partial
// pivoting in O(N³)
func (m Matrix) DeterminantLU() float64 {
	n := m.size
	a := make([]float64, len(m.data))
	copy(a, m.data)

	det := 1.0
	for k := 0; k < n; k++ {
		pivot := k
		for i := k + 1; i < n; i++ {
			if math.Abs(a[i*n+k]) > math.Abs(a[pivot*n+k]) {
				pivot = i
			}
		}
		if a[pivot*n+k] == 0 {
			return 0
		}
		if pivot != k {
			for j := 0; j < n; j++ {
				a[k*n+j], a[pivot*n+j] = a[pivot*n+j], a[k*n+j]
			}
			det = -det
		}
		det *= a[k*n+k]
		for i := k + 1; i < n; i++ {
			f := a[i*n+k] / a[k*n+k]
			for j := k; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
		}
	}
	return det
}

// IsInvertible reports whether the determinant is non-zero
func (m Matrix) IsInvertible() bool {
	return m.Determinant() != 0
}

// Inverse returns the inverse matrix, or ErrNotInvertible if the determinant is 0
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, ErrNotInvertible
	}

	inv := zeroMatrix(m.size)
	for row := 0; row < m.size; row++ {
		for col := 0; col < m.size; col++ {
			// Writing to [col][row] transposes the cofactor matrix in place
			inv.set(col, row, m.Cofactor(row, col)/det)
		}
	}
	return inv, nil
}

// Add returns the element-wise sum of two matrices of equal size
func (m Matrix) Add(other Matrix) Matrix {
	mustSameSize(m, other)
	sum := zeroMatrix(m.size)
	for i := range m.data {
		sum.data[i] = m.data[i] + other.data[i]
	}
	return sum
}

// Multiply returns the matrix product m × other
func (m Matrix) Multiply(other Matrix) Matrix {
	mustSameSize(m, other)
	n := m.size
	p := zeroMatrix(n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += m.At(row, k) * other.At(k, col)
			}
			p.set(row, col, sum)
		}
	}
	return p
}

// MultiplyTuple treats t as a column vector. The matrix must be 4×4.
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	if m.size != 4 {
		panic(fmt.Sprintf("core: MultiplyTuple on %dx%d matrix", m.size, m.size))
	}
	var out [4]float64
	for i := 0; i < 4; i++ {
		sum := 0.0
		for j := 0; j < 4; j++ {
			sum += m.At(i, j) * t.component(j)
		}
		out[i] = sum
	}
	return NewTuple(out[0], out[1], out[2], out[3])
}

// Equals compares element-wise within Epsilon
func (m Matrix) Equals(other Matrix) bool {
	if m.size != other.size {
		return false
	}
	for i := range m.data {
		if !FloatEquals(m.data[i], other.data[i]) {
			return false
		}
	}
	return true
}

func (m Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.size; i++ {
		b.WriteString("|")
		for j := 0; j < m.size; j++ {
			fmt.Fprintf(&b, " %g", m.At(i, j))
		}
		b.WriteString(" |\n")
	}
	return b.String()
}

func mustSameSize(a, b Matrix) {
	if a.size != b.size {
		panic(fmt.Sprintf("core: matrix size mismatch %d vs %d", a.size, b.size))
	}
}

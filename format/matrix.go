package format

import (
	"github.com/DanielMiklody/openmeeg/errors"
	"gonum.org/v1/gonum/mat"
)

// AsVector returns the single column of m as a vector.
func AsVector(m mat.Matrix) (*mat.VecDense, error) {
	rows, cols := m.Dims()
	if cols != 1 {
		return nil, errors.BadVector(cols)
	}
	return mat.NewVecDense(rows, mat.Col(nil, 0, m)), nil
}

// AsSymmetric returns m as a symmetric matrix built from its upper triangle.
func AsSymmetric(m mat.Matrix) (*mat.SymDense, error) {
	rows, cols := m.Dims()
	if rows != cols {
		return nil, errors.BadSymmMatrix(rows, cols)
	}
	s := mat.NewSymDense(rows, nil)
	for i := 0; i < rows; i++ {
		for j := i; j < cols; j++ {
			s.SetSym(i, j, m.At(i, j))
		}
	}
	return s, nil
}

// upper returns the packed upper triangle of the n x n matrix m, row by row.
func upper(m mat.Matrix, n int) []float64 {
	data := make([]float64, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			data = append(data, m.At(i, j))
		}
	}
	return data
}

// unpack expands a packed upper triangle into a dense symmetric n x n matrix.
func unpack(data []float64, n int) *mat.Dense {
	d := mat.NewDense(n, n, nil)
	k := 0
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			d.Set(i, j, data[k])
			d.Set(j, i, data[k])
			k++
		}
	}
	return d
}

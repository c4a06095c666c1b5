// Copyright 2026 go-watermark Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package linalg

import (
	"errors"

	"gonum.org/v1/gonum/lapack/gonum"
	"gonum.org/v1/gonum/mat"
)

// ErrNotSquare is returned when a square matrix is required.
var ErrNotSquare = errors.New("linalg: matrix is not square")

// lapack is the pure Go LAPACK implementation shipped with gonum.
var lapack gonum.Implementation

// ReduceHessenberg computes the orthogonal similarity transform
// a = q·h·qᵀ where h is upper Hessenberg (zero below the first subdiagonal)
// and q is orthogonal.
func ReduceHessenberg(a mat.Matrix) (h, q *mat.Dense, err error) {
	work, tau, n, err := gehrd(a)
	if err != nil {
		return nil, nil, err
	}
	if n <= 2 {
		// Every matrix of order two or less is already upper Hessenberg.
		return work, eye(n), nil
	}

	q = mat.DenseCopyOf(work)
	h = upperHessenberg(work)

	raw := q.RawMatrix()
	query := make([]float64, 1)
	lapack.Dorghr(n, 0, n-1, raw.Data, raw.Stride, tau, query, -1)
	scratch := make([]float64, max(int(query[0]), n))
	lapack.Dorghr(n, 0, n-1, raw.Data, raw.Stride, tau, scratch, len(scratch))

	return h, q, nil
}

// ReduceHessenbergValue returns only the Hessenberg form h of a, skipping
// the accumulation of the orthogonal transform.
func ReduceHessenbergValue(a mat.Matrix) (*mat.Dense, error) {
	work, _, n, err := gehrd(a)
	if err != nil {
		return nil, err
	}
	if n <= 2 {
		return work, nil
	}
	return upperHessenberg(work), nil
}

// RestoreHessenberg undoes ReduceHessenberg by computing q·h·qᵀ.
// q must be the transform returned together with the original h.
func RestoreHessenberg(h, q mat.Matrix) *mat.Dense {
	return Product3(q, h, q.T())
}

// gehrd runs the blocked Householder reduction on a copy of a. On return
// work holds h on and above the first subdiagonal and the reflectors below
// it, with their scalar factors in tau.
func gehrd(a mat.Matrix) (work *mat.Dense, tau []float64, n int, err error) {
	rows, cols := a.Dims()
	if rows != cols {
		return nil, nil, 0, ErrNotSquare
	}
	n = rows

	work = mat.DenseCopyOf(a)
	if n <= 2 {
		return work, nil, n, nil
	}

	raw := work.RawMatrix()
	tau = make([]float64, n-1)
	query := make([]float64, 1)
	lapack.Dgehrd(n, 0, n-1, raw.Data, raw.Stride, tau, query, -1)
	scratch := make([]float64, max(int(query[0]), n))
	lapack.Dgehrd(n, 0, n-1, raw.Data, raw.Stride, tau, scratch, len(scratch))

	return work, tau, n, nil
}

// upperHessenberg returns a copy of work with every entry below the first
// subdiagonal cleared.
func upperHessenberg(work *mat.Dense) *mat.Dense {
	h := mat.DenseCopyOf(work)
	n, _ := h.Dims()
	for i := 2; i < n; i++ {
		row := h.RawRowView(i)
		for j := 0; j < i-1; j++ {
			row[j] = 0
		}
	}
	return h
}

func eye(n int) *mat.Dense {
	d := mat.NewDense(n, n, nil)
	for i := range n {
		d.Set(i, i, 1)
	}
	return d
}

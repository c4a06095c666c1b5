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

	"gonum.org/v1/gonum/mat"
)

// ErrNoConvergence is returned when a factorization fails to converge.
var ErrNoConvergence = errors.New("linalg: factorization did not converge")

// FullSVD computes the full singular value decomposition a = u·s·vt.
//
// u is rows×rows, vt is cols×cols and s is the rows×cols rectangular
// diagonal matrix holding the singular values in descending order.
func FullSVD(a mat.Matrix) (u, s, vt *mat.Dense, err error) {
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDFull) {
		return nil, nil, nil, ErrNoConvergence
	}

	rows, cols := a.Dims()
	s = Diag(svd.Values(nil), rows, cols)

	u = new(mat.Dense)
	svd.UTo(u)

	var v mat.Dense
	svd.VTo(&v)
	vt = mat.DenseCopyOf(v.T())

	return u, s, vt, nil
}

// SingularValues returns the singular values of a in descending order.
func SingularValues(a mat.Matrix) ([]float64, error) {
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDNone) {
		return nil, ErrNoConvergence
	}
	return svd.Values(nil), nil
}

// Diag builds a rows×cols matrix with values on its main diagonal.
// Values beyond min(rows, cols) are dropped; missing ones are zero.
func Diag(values []float64, rows, cols int) *mat.Dense {
	d := mat.NewDense(rows, cols, nil)
	for i := range min(len(values), rows, cols) {
		d.Set(i, i, values[i])
	}
	return d
}

// Product3 returns a·b·c.
func Product3(a, b, c mat.Matrix) *mat.Dense {
	var r mat.Dense
	r.Product(a, b, c)
	return &r
}

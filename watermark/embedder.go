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

package watermark

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/ajroetker/go-watermark/linalg"
)

// Embedder is a base embedding strategy applied to a single matrix after
// the pipeline's transform stages.
//
// Embed returns the watermarked matrix (same shape as host) and the Key
// needed to invert the embedding. Extract recovers the watermark from a
// watermarked matrix using that key; the result has the shape of mark.
type Embedder interface {
	Embed(host, mark mat.Matrix, sf float64) (*mat.Dense, Key, error)
	Extract(marked mat.Matrix, key Key) (*mat.Dense, error)
}

// Key holds the factors an Embedder retains between Embed and Extract.
type Key interface {
	// Dims returns the shape of the matrices the key can decode.
	Dims() (rows, cols int)
}

// SVD is the additive singular value embedder: with host = U·S·Vᵀ it
// returns U·(S + sf·W)·Vᵀ, and extraction computes (Uᵀ·X·V − S)/sf.
//
// The watermark must have the shape of host.
type SVD struct{}

// SVDKey is the Key produced by SVD. U, S and VT are the full
// factorization of the host matrix before watermarking.
type SVDKey struct {
	U, S, VT    *mat.Dense
	ScaleFactor float64
}

// Dims returns the shape of the host matrix.
func (k *SVDKey) Dims() (rows, cols int) {
	return k.S.Dims()
}

// Embed implements Embedder.
func (SVD) Embed(host, mark mat.Matrix, sf float64) (*mat.Dense, Key, error) {
	if err := checkScaleFactor(sf); err != nil {
		return nil, nil, err
	}
	rows, cols := host.Dims()
	if r, c := mark.Dims(); r != rows || c != cols {
		return nil, nil, configErrorf("watermark is %dx%d, svd embedding needs %dx%d", r, c, rows, cols)
	}

	u, s, vt, err := linalg.FullSVD(host)
	if err != nil {
		return nil, nil, fmt.Errorf("decompose host: %w", err)
	}

	var d mat.Dense
	d.Scale(sf, mark)
	d.Add(s, &d)

	return linalg.Product3(u, &d, vt), &SVDKey{U: u, S: s, VT: vt, ScaleFactor: sf}, nil
}

// Extract implements Embedder.
func (SVD) Extract(marked mat.Matrix, key Key) (*mat.Dense, error) {
	k, ok := key.(*SVDKey)
	if !ok || k == nil {
		return nil, mismatchErrorf("key %T is not an svd key", key)
	}
	if err := checkKeyDims(k, marked); err != nil {
		return nil, err
	}

	d := linalg.Product3(k.U.T(), marked, k.VT.T())
	d.Sub(d, k.S)
	d.Scale(1/k.ScaleFactor, d)
	return d, nil
}

// SingularValues embeds only the singular values of the watermark into the
// singular values of the host, keeping the watermark's own singular vectors
// in the key. It follows steps 3-5 of Liu et al. (2019):
//
//	host = U·diag(s)·Vᵀ, mark = Uw·diag(sw)·Vwᵀ
//	marked = U·diag(s + sf·sw)·Vᵀ
//	recovered = Uw·diag((s' − s)/sf)·Vwᵀ, s' = singular values of marked
//
// min(rows, cols) of host and mark must agree. A large sf can reorder the
// perturbed singular values, which reduces fidelity without an error.
type SingularValues struct{}

// SingularValuesKey is the Key produced by SingularValues.
type SingularValuesKey struct {
	// HostValues are the host singular values before watermarking.
	HostValues []float64
	// MarkU and MarkVT are the singular vectors of the watermark.
	MarkU, MarkVT *mat.Dense
	ScaleFactor   float64

	rows, cols int
}

// Dims returns the shape of the host matrix.
func (k *SingularValuesKey) Dims() (rows, cols int) {
	return k.rows, k.cols
}

// Embed implements Embedder.
func (SingularValues) Embed(host, mark mat.Matrix, sf float64) (*mat.Dense, Key, error) {
	if err := checkScaleFactor(sf); err != nil {
		return nil, nil, err
	}
	rows, cols := host.Dims()
	markRows, markCols := mark.Dims()
	if min(rows, cols) != min(markRows, markCols) {
		return nil, nil, configErrorf("watermark is %dx%d, host is %dx%d: singular value counts differ", markRows, markCols, rows, cols)
	}

	u, s, vt, err := linalg.FullSVD(host)
	if err != nil {
		return nil, nil, fmt.Errorf("decompose host: %w", err)
	}
	mu, ms, mvt, err := linalg.FullSVD(mark)
	if err != nil {
		return nil, nil, fmt.Errorf("decompose watermark: %w", err)
	}

	n := min(rows, cols)
	hostValues := make([]float64, n)
	values := make([]float64, n)
	for i := range n {
		hostValues[i] = s.At(i, i)
		values[i] = hostValues[i] + sf*ms.At(i, i)
	}

	marked := linalg.Product3(u, linalg.Diag(values, rows, cols), vt)
	key := &SingularValuesKey{
		HostValues:  hostValues,
		MarkU:       mu,
		MarkVT:      mvt,
		ScaleFactor: sf,
		rows:        rows,
		cols:        cols,
	}
	return marked, key, nil
}

// Extract implements Embedder.
func (SingularValues) Extract(marked mat.Matrix, key Key) (*mat.Dense, error) {
	k, ok := key.(*SingularValuesKey)
	if !ok || k == nil {
		return nil, mismatchErrorf("key %T is not a singular values key", key)
	}
	if err := checkKeyDims(k, marked); err != nil {
		return nil, err
	}

	values, err := linalg.SingularValues(marked)
	if err != nil {
		return nil, fmt.Errorf("decompose watermarked matrix: %w", err)
	}
	for i := range values {
		values[i] = (values[i] - k.HostValues[i]) / k.ScaleFactor
	}

	markRows, _ := k.MarkU.Dims()
	markCols, _ := k.MarkVT.Dims()
	return linalg.Product3(k.MarkU, linalg.Diag(values, markRows, markCols), k.MarkVT), nil
}

func checkKeyDims(k Key, marked mat.Matrix) error {
	rows, cols := k.Dims()
	if r, c := marked.Dims(); r != rows || c != cols {
		return mismatchErrorf("matrix is %dx%d, key decodes %dx%d", r, c, rows, cols)
	}
	return nil
}

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

package wavelet

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrLevel is returned for a decomposition level that is not a positive
	// integer, or a dimension ratio that is not an exact power of two.
	ErrLevel = errors.New("wavelet: invalid decomposition level")

	// ErrDimension is returned when matrix dimensions cannot be split into
	// the requested number of levels, or when sub-band shapes disagree.
	ErrDimension = errors.New("wavelet: invalid sub-band dimensions")
)

// Details holds the detail sub-bands of one decomposition level, following
// the PyWavelets (cH, cV, cD) naming.
type Details struct {
	// Horizontal is high-pass along columns and low-pass along rows.
	Horizontal *mat.Dense
	// Vertical is low-pass along columns and high-pass along rows.
	Vertical *mat.Dense
	// Diagonal is high-pass in both directions.
	Diagonal *mat.Dense
}

// Dims returns the dimensions shared by the three sub-bands.
func (d Details) Dims() (rows, cols int) {
	return d.Horizontal.Dims()
}

// Clone returns a deep copy of the sub-bands.
func (d Details) Clone() Details {
	return Details{
		Horizontal: mat.DenseCopyOf(d.Horizontal),
		Vertical:   mat.DenseCopyOf(d.Vertical),
		Diagonal:   mat.DenseCopyOf(d.Diagonal),
	}
}

// Decompose applies a levels-deep 2D Haar decomposition to img.
// It returns the approximation sub-band of the coarsest level and the
// detail sub-bands of every level, coarsest first. img is not modified.
//
// Both dimensions of img must be divisible by 2^levels.
func Decompose(img mat.Matrix, levels int) (*mat.Dense, []Details, error) {
	if levels < 1 {
		return nil, nil, fmt.Errorf("%w: %d levels", ErrLevel, levels)
	}
	rows, cols := img.Dims()
	if rows%(1<<levels) != 0 || cols%(1<<levels) != 0 {
		return nil, nil, fmt.Errorf("%w: %dx%d cannot be split %d times", ErrDimension, rows, cols, levels)
	}

	work := mat.DenseCopyOf(img)

	// Process from finest to coarsest level
	for level := range levels {
		analyzeLevel(work, rows>>level, cols>>level)
	}

	details := make([]Details, levels)
	for level := 1; level <= levels; level++ {
		h, w := rows>>level, cols>>level
		details[levels-level] = Details{
			Horizontal: mat.DenseCopyOf(work.Slice(h, 2*h, 0, w)),
			Vertical:   mat.DenseCopyOf(work.Slice(0, h, w, 2*w)),
			Diagonal:   mat.DenseCopyOf(work.Slice(h, 2*h, w, 2*w)),
		}
	}
	approx := mat.DenseCopyOf(work.Slice(0, rows>>levels, 0, cols>>levels))

	return approx, details, nil
}

// Reconstruct applies the inverse of Decompose. details must be ordered
// coarsest first, each level twice the size of the one before it, with the
// coarsest level matching approx. Inputs are not modified.
func Reconstruct(approx mat.Matrix, details []Details) (*mat.Dense, error) {
	if len(details) == 0 {
		return nil, fmt.Errorf("%w: no detail levels", ErrLevel)
	}

	h, w := approx.Dims()
	for i, d := range details {
		if err := checkDetails(d, h<<i, w<<i); err != nil {
			return nil, fmt.Errorf("level %d: %w", len(details)-i, err)
		}
	}

	levels := len(details)
	rows, cols := h<<levels, w<<levels
	work := mat.NewDense(rows, cols, nil)
	work.Slice(0, h, 0, w).(*mat.Dense).Copy(approx)
	for i, d := range details {
		dh, dw := h<<i, w<<i
		work.Slice(dh, 2*dh, 0, dw).(*mat.Dense).Copy(d.Horizontal)
		work.Slice(0, dh, dw, 2*dw).(*mat.Dense).Copy(d.Vertical)
		work.Slice(dh, 2*dh, dw, 2*dw).(*mat.Dense).Copy(d.Diagonal)
	}

	// Process from coarsest to finest level
	for level := levels - 1; level >= 0; level-- {
		synthesizeLevel(work, rows>>level, cols>>level)
	}

	return work, nil
}

func checkDetails(d Details, rows, cols int) error {
	for _, band := range []*mat.Dense{d.Horizontal, d.Vertical, d.Diagonal} {
		if band == nil {
			return fmt.Errorf("%w: missing detail sub-band", ErrDimension)
		}
		if r, c := band.Dims(); r != rows || c != cols {
			return fmt.Errorf("%w: detail sub-band is %dx%d, want %dx%d", ErrDimension, r, c, rows, cols)
		}
	}
	return nil
}

// analyzeLevel transforms the top-left levelRows×levelCols block of work,
// rows first.
func analyzeLevel(work *mat.Dense, levelRows, levelCols int) {
	// Horizontal pass first (on rows)
	for y := range levelRows {
		AnalyzeHaar(work.RawRowView(y)[:levelCols])
	}

	// Vertical pass (on columns)
	col := make([]float64, levelRows)
	for x := range levelCols {
		for y := range levelRows {
			col[y] = work.At(y, x)
		}
		AnalyzeHaar(col)
		for y := range levelRows {
			work.Set(y, x, col[y])
		}
	}
}

// synthesizeLevel inverts analyzeLevel, columns first.
func synthesizeLevel(work *mat.Dense, levelRows, levelCols int) {
	// Vertical pass first
	col := make([]float64, levelRows)
	for x := range levelCols {
		for y := range levelRows {
			col[y] = work.At(y, x)
		}
		SynthesizeHaar(col)
		for y := range levelRows {
			work.Set(y, x, col[y])
		}
	}

	// Horizontal pass
	for y := range levelRows {
		SynthesizeHaar(work.RawRowView(y)[:levelCols])
	}
}

// Level returns log2(dim/approxDim), the number of decomposition levels
// that shrink dim to approxDim. The ratio must be an exact power of two;
// equal dimensions yield level 0.
func Level(dim, approxDim int) (int, error) {
	if dim <= 0 || approxDim <= 0 || dim%approxDim != 0 {
		return 0, fmt.Errorf("%w: %d is not a power-of-two multiple of %d", ErrLevel, dim, approxDim)
	}
	ratio := dim / approxDim
	if ratio&(ratio-1) != 0 {
		return 0, fmt.Errorf("%w: ratio %d is not a power of two", ErrLevel, ratio)
	}
	level := 0
	for ratio > 1 {
		ratio >>= 1
		level++
	}
	return level, nil
}

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
	"github.com/ajroetker/go-watermark/wavelet"
)

// DWTHD embeds the watermark into the Hessenberg form of the approximation
// sub-band of an R-level Haar decomposition (Liu et al., 2019), where
// R = log2(host/watermark). The host must be square.
type DWTHD struct {
	sf             float64
	ratio          int
	embedder       Embedder
	recomputeBasis bool
}

// NewDWTHD returns a DWTHD scheme with scale factor sf and ratio 2 unless
// WithRatio says otherwise.
func NewDWTHD(sf float64, opts ...Option) (*DWTHD, error) {
	o, err := newOptions(sf, 0, 2, opts)
	if err != nil {
		return nil, err
	}
	return &DWTHD{
		sf:             sf,
		ratio:          o.ratio,
		embedder:       o.embedder,
		recomputeBasis: o.recomputeBasis,
	}, nil
}

// Name implements Scheme.
func (s *DWTHD) Name() string { return "dwt-hd-svd" }

// Ratio implements Scheme.
func (s *DWTHD) Ratio() int { return s.ratio }

// ScaleFactor implements Scheme.
func (s *DWTHD) ScaleFactor() float64 { return s.sf }

// Level returns the number of wavelet levels derived from the shapes of
// host and mark, log2(host/mark), which must be the same in both axes.
func (s *DWTHD) Level(host, mark mat.Matrix) (int, error) {
	if err := checkShapes(host, mark, s.ratio); err != nil {
		return 0, err
	}
	rows, cols := host.Dims()
	markRows, markCols := mark.Dims()
	if rows != cols {
		return 0, configErrorf("host is %dx%d, hessenberg reduction needs a square approximation", rows, cols)
	}

	level, err := wavelet.Level(rows, markRows)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	colLevel, err := wavelet.Level(cols, markCols)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if level != colLevel || level < 1 {
		return 0, configErrorf("row level %d and column level %d differ", level, colLevel)
	}
	return level, nil
}

// Embed implements Scheme.
func (s *DWTHD) Embed(host, mark mat.Matrix) (*mat.Dense, *Context, error) {
	level, err := s.Level(host, mark)
	if err != nil {
		return nil, nil, err
	}

	approx, details, err := wavelet.Decompose(host, level)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	h, basis, err := linalg.ReduceHessenberg(approx)
	if err != nil {
		return nil, nil, fmt.Errorf("reduce approximation: %w", err)
	}

	markedH, key, err := s.embedder.Embed(h, mark, s.sf)
	if err != nil {
		return nil, nil, err
	}

	// The retained basis, not one recomputed from markedH, undoes the
	// reduction.
	markedApprox := linalg.RestoreHessenberg(markedH, basis)

	marked, err := wavelet.Reconstruct(markedApprox, details)
	if err != nil {
		return nil, nil, fmt.Errorf("rebuild host: %w", err)
	}

	ctx := newContext(s, host, mark)
	ctx.Level = level
	ctx.Details = details
	ctx.Basis = basis
	ctx.Key = key
	return marked, ctx, nil
}

// Extract implements Scheme.
func (s *DWTHD) Extract(marked mat.Matrix, ctx *Context) (*mat.Dense, error) {
	if err := ctx.check(s.Name(), marked); err != nil {
		return nil, err
	}
	if ctx.Level < 1 {
		return nil, mismatchErrorf("context has no wavelet level")
	}

	approx, _, err := wavelet.Decompose(marked, ctx.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	var h *mat.Dense
	if s.recomputeBasis {
		h, err = linalg.ReduceHessenbergValue(approx)
		if err != nil {
			return nil, fmt.Errorf("reduce approximation: %w", err)
		}
	} else {
		if ctx.Basis == nil {
			return nil, mismatchErrorf("context has no hessenberg basis")
		}
		if r, _ := ctx.Basis.Dims(); r != ctx.MarkRows {
			return nil, mismatchErrorf("hessenberg basis has %d rows, approximation is %dx%d", r, ctx.MarkRows, ctx.MarkCols)
		}
		h = linalg.Product3(ctx.Basis.T(), approx, ctx.Basis)
	}

	return s.embedder.Extract(h, ctx.Key)
}

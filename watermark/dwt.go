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

	"github.com/ajroetker/go-watermark/wavelet"
)

// DWT embeds the watermark into the approximation sub-band of a one-level
// Haar decomposition of the host (Niu, Cui, Li & Ding, 2016). Each
// watermark dimension is half the host dimension.
type DWT struct {
	sf       float64
	embedder Embedder
}

// NewDWT returns a DWT scheme with scale factor sf.
func NewDWT(sf float64, opts ...Option) (*DWT, error) {
	o, err := newOptions(sf, 2, 2, opts)
	if err != nil {
		return nil, err
	}
	return &DWT{sf: sf, embedder: o.embedder}, nil
}

// Name implements Scheme.
func (s *DWT) Name() string { return "dwt-svd" }

// Ratio implements Scheme.
func (s *DWT) Ratio() int { return 2 }

// ScaleFactor implements Scheme.
func (s *DWT) ScaleFactor() float64 { return s.sf }

// Embed implements Scheme.
func (s *DWT) Embed(host, mark mat.Matrix) (*mat.Dense, *Context, error) {
	if err := checkShapes(host, mark, 2); err != nil {
		return nil, nil, err
	}

	approx, details, err := wavelet.Decompose(host, 1)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	markedApprox, key, err := s.embedder.Embed(approx, mark, s.sf)
	if err != nil {
		return nil, nil, err
	}

	marked, err := wavelet.Reconstruct(markedApprox, details)
	if err != nil {
		return nil, nil, fmt.Errorf("rebuild host: %w", err)
	}

	ctx := newContext(s, host, mark)
	ctx.Level = 1
	ctx.Details = details
	ctx.Key = key
	return marked, ctx, nil
}

// Extract implements Scheme. The detail sub-bands of marked are not needed,
// so the stored ones are left untouched.
func (s *DWT) Extract(marked mat.Matrix, ctx *Context) (*mat.Dense, error) {
	if err := ctx.check(s.Name(), marked); err != nil {
		return nil, err
	}

	approx, _, err := wavelet.Decompose(marked, 1)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return s.embedder.Extract(approx, ctx.Key)
}

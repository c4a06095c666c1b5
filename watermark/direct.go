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
	"gonum.org/v1/gonum/mat"
)

// Direct embeds the watermark into the singular values of the whole host
// (Mohammad, Alhaj & Shaltaf, 2008). The watermark has the host's shape.
type Direct struct {
	sf       float64
	embedder Embedder
}

// NewDirect returns a Direct scheme with scale factor sf.
func NewDirect(sf float64, opts ...Option) (*Direct, error) {
	o, err := newOptions(sf, 1, 1, opts)
	if err != nil {
		return nil, err
	}
	return &Direct{sf: sf, embedder: o.embedder}, nil
}

// Name implements Scheme.
func (s *Direct) Name() string { return "svd" }

// Ratio implements Scheme.
func (s *Direct) Ratio() int { return 1 }

// ScaleFactor implements Scheme.
func (s *Direct) ScaleFactor() float64 { return s.sf }

// Embed implements Scheme.
func (s *Direct) Embed(host, mark mat.Matrix) (*mat.Dense, *Context, error) {
	if err := checkShapes(host, mark, 1); err != nil {
		return nil, nil, err
	}

	marked, key, err := s.embedder.Embed(host, mark, s.sf)
	if err != nil {
		return nil, nil, err
	}

	ctx := newContext(s, host, mark)
	ctx.Key = key
	return marked, ctx, nil
}

// Extract implements Scheme.
func (s *Direct) Extract(marked mat.Matrix, ctx *Context) (*mat.Dense, error) {
	if err := ctx.check(s.Name(), marked); err != nil {
		return nil, err
	}
	return s.embedder.Extract(marked, ctx.Key)
}

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
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/ajroetker/go-watermark/wavelet"
)

// Default scale factors used by the original publications.
const (
	// DefaultDirectScaleFactor is the strength used for Direct.
	DefaultDirectScaleFactor = 0.02

	// DefaultScaleFactor is the strength used for DWT and DWTHD.
	DefaultScaleFactor = 1.0 / 16
)

// Scheme is a complete watermarking pipeline.
type Scheme interface {
	// Name identifies the pipeline; it is recorded in every Context.
	Name() string

	// Ratio is the host-to-watermark dimension ratio the scheme requires.
	Ratio() int

	// ScaleFactor is the embedding strength.
	ScaleFactor() float64

	// Embed returns the watermarked host and the context needed to extract
	// the watermark from it. Neither input is modified.
	Embed(host, mark mat.Matrix) (*mat.Dense, *Context, error)

	// Extract recovers the watermark from marked using the context returned
	// by the Embed call that produced marked.
	Extract(marked mat.Matrix, ctx *Context) (*mat.Dense, error)
}

// Context is the embedding state a Scheme needs to invert its embedding.
// It is produced by Scheme.Embed and consumed, never modified, by
// Scheme.Extract, so one Context may be used for any number of concurrent
// extractions.
type Context struct {
	// Scheme is the Name of the scheme that produced the context.
	Scheme string

	// HostRows and HostCols are the dimensions of the host image.
	HostRows, HostCols int

	// MarkRows and MarkCols are the dimensions of the watermark.
	MarkRows, MarkCols int

	// Level is the number of wavelet levels, 0 when no DWT is applied.
	Level int

	// Details are the host's wavelet detail sub-bands, coarsest first.
	// They are reused verbatim to rebuild the watermarked image.
	Details []wavelet.Details

	// Basis is the orthogonal Hessenberg transform of the host's
	// approximation sub-band, nil when no Hessenberg stage is applied.
	Basis *mat.Dense

	// Key is the base embedder's key.
	Key Key
}

// check verifies that ctx was produced by scheme for an image shaped like
// marked.
func (ctx *Context) check(scheme string, marked mat.Matrix) error {
	if ctx == nil {
		return mismatchErrorf("nil context")
	}
	if ctx.Scheme != scheme {
		return mismatchErrorf("context from %q used with %q", ctx.Scheme, scheme)
	}
	if ctx.Key == nil {
		return mismatchErrorf("context has no key")
	}
	if marked == nil {
		return configErrorf("nil watermarked image")
	}
	if r, c := marked.Dims(); r != ctx.HostRows || c != ctx.HostCols {
		return mismatchErrorf("image is %dx%d, context is for %dx%d", r, c, ctx.HostRows, ctx.HostCols)
	}
	return nil
}

func newContext(s Scheme, host, mark mat.Matrix) *Context {
	ctx := &Context{Scheme: s.Name()}
	ctx.HostRows, ctx.HostCols = host.Dims()
	ctx.MarkRows, ctx.MarkCols = mark.Dims()
	return ctx
}

// Option configures a Scheme.
type Option func(*options)

type options struct {
	embedder       Embedder
	ratio          int
	recomputeBasis bool
}

// WithEmbedder replaces the base embedding strategy, SVD by default.
func WithEmbedder(e Embedder) Option {
	return func(o *options) {
		o.embedder = e
	}
}

// WithRatio sets the host-to-watermark ratio of DWTHD. It must be a power
// of two of at least 2; the other schemes accept only their fixed ratio.
func WithRatio(ratio int) Option {
	return func(o *options) {
		o.ratio = ratio
	}
}

// WithRecomputedBasis makes DWTHD extraction recompute the Hessenberg form
// of the watermarked approximation instead of projecting it onto the basis
// retained at embed time. This is the extraction published by Liu et al.;
// because the watermarked sub-band is no longer Hessenberg, the recomputed
// basis differs from the retained one and recovery is approximate at best.
func WithRecomputedBasis() Option {
	return func(o *options) {
		o.recomputeBasis = true
	}
}

// newOptions applies opts and validates the options shared by all schemes.
// fixedRatio is the only ratio the caller accepts, or 0 to accept any
// power of two from 2 up.
func newOptions(sf float64, fixedRatio, defaultRatio int, opts []Option) (options, error) {
	o := options{embedder: SVD{}}
	for _, opt := range opts {
		opt(&o)
	}

	if err := checkScaleFactor(sf); err != nil {
		return o, err
	}
	if o.embedder == nil {
		return o, configErrorf("nil embedder")
	}

	switch {
	case o.ratio == 0:
		o.ratio = defaultRatio
	case fixedRatio != 0:
		if o.ratio != fixedRatio {
			return o, configErrorf("ratio %d, this scheme requires %d", o.ratio, fixedRatio)
		}
	case o.ratio < 2 || o.ratio&(o.ratio-1) != 0:
		return o, configErrorf("ratio %d is not a power of two of at least 2", o.ratio)
	}
	return o, nil
}

func checkScaleFactor(sf float64) error {
	if sf <= 0 || math.IsNaN(sf) || math.IsInf(sf, 0) {
		return configErrorf("scale factor %v must be positive and finite", sf)
	}
	return nil
}

// checkShapes verifies that mark is host scaled down by ratio in each axis.
func checkShapes(host, mark mat.Matrix, ratio int) error {
	if host == nil || mark == nil {
		return configErrorf("nil host or watermark")
	}
	rows, cols := host.Dims()
	markRows, markCols := mark.Dims()
	if rows%ratio != 0 || cols%ratio != 0 || markRows != rows/ratio || markCols != cols/ratio {
		return configErrorf("watermark is %dx%d, host %dx%d with ratio %d needs %dx%d",
			markRows, markCols, rows, cols, ratio, rows/ratio, cols/ratio)
	}
	return nil
}

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
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Watermarker is a stateful front end to a Scheme. AddWatermark stores the
// embedding context and ExtractWatermark reads it, so a Watermarker starts
// uninitialized and becomes ready to extract after its first successful
// AddWatermark.
//
// Each AddWatermark replaces the stored context: images watermarked by
// earlier calls can no longer be decoded through this Watermarker. Use
// Scheme.Embed and Scheme.Extract directly to keep several contexts.
type Watermarker struct {
	scheme Scheme

	mu  sync.RWMutex
	ctx *Context
}

// New returns an uninitialized Watermarker for scheme.
func New(scheme Scheme) *Watermarker {
	return &Watermarker{scheme: scheme}
}

// Scheme returns the underlying scheme.
func (w *Watermarker) Scheme() Scheme {
	return w.scheme
}

// AddWatermark embeds mark into host and keeps the resulting context.
// On error the previous context, if any, is kept.
func (w *Watermarker) AddWatermark(host, mark mat.Matrix) (*mat.Dense, error) {
	marked, ctx, err := w.scheme.Embed(host, mark)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	w.ctx = ctx
	w.mu.Unlock()
	return marked, nil
}

// ExtractWatermark recovers the watermark from an image produced by the
// latest AddWatermark. It returns ErrState if no watermark has been added.
func (w *Watermarker) ExtractWatermark(marked mat.Matrix) (*mat.Dense, error) {
	ctx := w.Context()
	if ctx == nil {
		return nil, fmt.Errorf("%w: extract called before any watermark was added", ErrState)
	}
	return w.scheme.Extract(marked, ctx)
}

// Ready reports whether ExtractWatermark can be called.
func (w *Watermarker) Ready() bool {
	return w.Context() != nil
}

// Context returns the stored embedding context, nil before the first
// successful AddWatermark.
func (w *Watermarker) Context() *Context {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.ctx
}

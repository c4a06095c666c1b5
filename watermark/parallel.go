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

	"github.com/ajroetker/go-watermark/image"
	"github.com/ajroetker/go-watermark/workerpool"
)

// Pair is one host image and the watermark to embed into it.
type Pair struct {
	Host, Mark mat.Matrix
}

// Result is a watermarked image together with its embedding context.
type Result struct {
	Marked  *mat.Dense
	Context *Context
}

// EmbedBatch embeds every pair with s, spreading pairs over pool. Pairs
// share no state, so results are identical to sequential Embed calls.
// A nil pool runs on the calling goroutine. On failure the error of the
// lowest failing pair is returned.
func EmbedBatch(pool *workerpool.Pool, s Scheme, pairs []Pair) ([]Result, error) {
	results := make([]Result, len(pairs))
	err := pool.Run(len(pairs), func(i int) error {
		marked, ctx, err := s.Embed(pairs[i].Host, pairs[i].Mark)
		if err != nil {
			return fmt.Errorf("pair %d: %w", i, err)
		}
		results[i] = Result{Marked: marked, Context: ctx}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// ExtractBatch extracts the watermark of every result with s.
func ExtractBatch(pool *workerpool.Pool, s Scheme, results []Result) ([]*mat.Dense, error) {
	marks := make([]*mat.Dense, len(results))
	err := pool.Run(len(results), func(i int) error {
		mark, err := s.Extract(results[i].Marked, results[i].Context)
		if err != nil {
			return fmt.Errorf("pair %d: %w", i, err)
		}
		marks[i] = mark
		return nil
	})
	if err != nil {
		return nil, err
	}
	return marks, nil
}

// EmbedPlanes embeds each channel of mark into the matching channel of host
// and returns the watermarked image with one context per channel.
func EmbedPlanes(pool *workerpool.Pool, s Scheme, host, mark *image.Planar) (*image.Planar, []*Context, error) {
	if host == nil || mark == nil {
		return nil, nil, configErrorf("nil image")
	}
	if host.Channels() != mark.Channels() {
		return nil, nil, configErrorf("host has %d channels, watermark has %d", host.Channels(), mark.Channels())
	}

	planes := make([]*mat.Dense, host.Channels())
	ctxs := make([]*Context, host.Channels())
	err := pool.Run(len(planes), func(i int) error {
		marked, ctx, err := s.Embed(host.Plane(i), mark.Plane(i))
		if err != nil {
			return fmt.Errorf("channel %d: %w", i, err)
		}
		planes[i], ctxs[i] = marked, ctx
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	out, err := image.FromPlanes(planes...)
	if err != nil {
		return nil, nil, err
	}
	return out, ctxs, nil
}

// ExtractPlanes recovers every channel of a watermark embedded by
// EmbedPlanes.
func ExtractPlanes(pool *workerpool.Pool, s Scheme, marked *image.Planar, ctxs []*Context) (*image.Planar, error) {
	if marked == nil {
		return nil, configErrorf("nil image")
	}
	if marked.Channels() != len(ctxs) {
		return nil, mismatchErrorf("image has %d channels, got %d contexts", marked.Channels(), len(ctxs))
	}

	planes := make([]*mat.Dense, len(ctxs))
	err := pool.Run(len(planes), func(i int) error {
		mark, err := s.Extract(marked.Plane(i), ctxs[i])
		if err != nil {
			return fmt.Errorf("channel %d: %w", i, err)
		}
		planes[i] = mark
		return nil
	})
	if err != nil {
		return nil, err
	}
	return image.FromPlanes(planes...)
}

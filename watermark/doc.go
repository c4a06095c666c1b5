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

// Package watermark embeds a watermark image into a host image in a
// transform domain and extracts it again.
//
// Three published pipelines are provided. All of them perturb singular
// values through a base Embedder; they differ in the transform stages that
// run before it:
//
//	Direct  (Mohammad et al. 2008)  SVD on the whole host, ratio 1
//	DWT     (Niu et al. 2016)       1-level Haar DWT, then SVD on LL, ratio 2
//	DWTHD   (Liu et al. 2019)       R-level Haar DWT, Hessenberg on LL,
//	                                then SVD on the Hessenberg matrix
//
// The ratio fixes the watermark size: each watermark dimension equals the
// host dimension divided by the ratio.
//
// # Embedding Context
//
// Extraction is non-blind: it needs the decomposition factors computed while
// embedding. Scheme.Embed returns them as a *Context that must be passed to
// Scheme.Extract together with the watermarked image:
//
//	s, err := watermark.NewDWTHD(0.01)
//	marked, ctx, err := s.Embed(host, mark)
//	...
//	recovered, err := s.Extract(marked, ctx)
//
// Schemes are immutable and safe for concurrent use. Watermarker wraps a
// Scheme and keeps the context of its last AddWatermark call for callers
// that prefer a stateful object.
//
// # Errors
//
// Invalid scale factors and shapes that violate a scheme's ratio are
// reported as ErrConfiguration. Extracting without a context, or with one
// that does not fit the scheme or the image, is reported as ErrState.
// Numerically degenerate inputs (for example rank-deficient hosts) are not
// detected and simply reduce fidelity.
package watermark

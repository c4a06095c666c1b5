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

// Package wavelet provides the orthonormal Haar wavelet transform used to
// split an image into frequency sub-bands.
//
// The transform is implemented with the lifting scheme and matches the
// "haar" wavelet of PyWavelets, so coefficients are interchangeable with
// images prepared by wavedec2/dwt2:
//
//	low  = (x[2i] + x[2i+1]) / √2
//	high = (x[2i] - x[2i+1]) / √2
//
// # 1D Transform Functions
//
// Low-level transforms operate in place on even-length slices:
//
//	AnalyzeHaar(data)    // interleaved samples → [low | high]
//	SynthesizeHaar(data) // [low | high] → interleaved samples
//
// # 2D Transform Functions
//
// Decompose performs a multi-level decomposition of a matrix and returns the
// approximation (LL) sub-band together with the detail sub-bands of every
// level, coarsest first. Reconstruct is its exact inverse:
//
//	approx, details, err := wavelet.Decompose(img, 2)
//	// modify approx ...
//	out, err := wavelet.Reconstruct(approx, details)
//
// The detail sub-bands can be kept from one decomposition and reused to
// rebuild an image from a modified approximation: the low-frequency content
// of the result carries the change while its detail content is untouched.
//
// # Level Selection
//
// Level derives the number of decomposition levels from the ratio between a
// full-resolution dimension and an approximation dimension. The ratio must
// be an exact power of two.
package wavelet

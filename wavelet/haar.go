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

import "math"

// AnalyzeHaar applies the forward Haar transform (analysis) in-place.
// The input data is interleaved samples, and output is in [low | high] format.
// len(data) must be even.
func AnalyzeHaar(data []float64) {
	n := len(data)
	if n == 0 {
		return
	}
	if n%2 != 0 {
		panic("wavelet: AnalyzeHaar needs an even number of samples")
	}

	half := n / 2
	low := make([]float64, half)
	high := make([]float64, half)

	// Deinterleave
	for i := range half {
		low[i] = data[2*i]
		high[i] = data[2*i+1]
	}

	// Predict: high[i] = odd - even
	for i := range half {
		high[i] -= low[i]
	}
	// Update: low[i] = even + high[i]/2 (pair mean)
	for i := range half {
		low[i] += high[i] / 2
	}

	// Normalize so that the transform is orthonormal.
	for i := range half {
		data[i] = low[i] * math.Sqrt2
		data[half+i] = -high[i] / math.Sqrt2
	}
}

// SynthesizeHaar applies the inverse Haar transform (synthesis) in-place.
// The input data is in [low | high] format, and output is interleaved samples.
// len(data) must be even.
func SynthesizeHaar(data []float64) {
	n := len(data)
	if n == 0 {
		return
	}
	if n%2 != 0 {
		panic("wavelet: SynthesizeHaar needs an even number of samples")
	}

	half := n / 2
	low := make([]float64, half)
	high := make([]float64, half)

	// Undo normalization
	for i := range half {
		low[i] = data[i] / math.Sqrt2
		high[i] = -data[half+i] * math.Sqrt2
	}

	// Inverse update, then inverse predict
	for i := range half {
		low[i] -= high[i] / 2
	}
	for i := range half {
		high[i] += low[i]
	}

	// Interleave: even=low, odd=high
	for i := range half {
		data[2*i] = low[i]
		data[2*i+1] = high[i]
	}
}

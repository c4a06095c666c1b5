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
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

func randomHost(rng *rand.Rand, rows, cols int) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.Float64()
	}
	return mat.NewDense(rows, cols, data)
}

// randomMark returns a binary watermark: uniform samples thresholded at 0.5.
func randomMark(rng *rand.Rand, rows, cols int) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		if rng.Float64() >= 0.5 {
			data[i] = 1
		}
	}
	return mat.NewDense(rows, cols, data)
}

func maxAbsDiff(a, b mat.Matrix) float64 {
	var d mat.Dense
	d.Sub(a, b)
	return maxAbs(&d)
}

func maxAbs(m mat.Matrix) float64 {
	rows, cols := m.Dims()
	maxVal := 0.0
	for i := range rows {
		for j := range cols {
			maxVal = math.Max(maxVal, math.Abs(m.At(i, j)))
		}
	}
	return maxVal
}

// closeFraction returns the fraction of entries with
// |got - want| <= 1e-8 + 1e-5·|want|, the default tolerance of numpy.isclose.
func closeFraction(got, want mat.Matrix) float64 {
	rows, cols := want.Dims()
	count := 0
	for i := range rows {
		for j := range cols {
			w := want.At(i, j)
			if math.Abs(got.At(i, j)-w) <= 1e-8+1e-5*math.Abs(w) {
				count++
			}
		}
	}
	return float64(count) / float64(rows*cols)
}

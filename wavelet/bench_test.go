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

import (
	"fmt"
	"testing"
)

// 2D benchmark sizes
var bench2DSizes = []int{64, 256, 512}

func BenchmarkDecompose(b *testing.B) {
	for _, size := range bench2DSizes {
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			img := rampMatrix(size, size)
			b.ReportAllocs()
			for b.Loop() {
				if _, _, err := Decompose(img, 2); err != nil {
					b.Fatal(err)
				}
			}
			b.SetBytes(int64(size * size * 8))
		})
	}
}

func BenchmarkReconstruct(b *testing.B) {
	for _, size := range bench2DSizes {
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			approx, details, err := Decompose(rampMatrix(size, size), 2)
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Reconstruct(approx, details); err != nil {
					b.Fatal(err)
				}
			}
			b.SetBytes(int64(size * size * 8))
		})
	}
}

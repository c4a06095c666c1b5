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

// Package image provides multi-channel float64 image planes.
//
// A Planar bundles N same-sized gonum matrices, one per colour channel,
// so that single-channel watermarking schemes can be applied channel by
// channel:
//
//	img := image.NewPlanar(512, 512, 3) // e.g. RGB or YUV planes
//	y := img.Plane(0)
//	y.Set(0, 0, 0.5)
//
// Planes are stored row-major as *mat.Dense and are shared, not copied,
// by Plane and FromPlanes.
package image

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrPlaneSize is returned when planes of one image disagree in size.
var ErrPlaneSize = errors.New("image: planes differ in size")

// Planar is a multi-channel 2D image with one matrix per channel.
type Planar struct {
	planes []*mat.Dense
	rows   int
	cols   int
}

// NewPlanar creates a zeroed image with the given dimensions and number of
// channels. Non-positive arguments yield an empty image.
func NewPlanar(rows, cols, channels int) *Planar {
	if rows <= 0 || cols <= 0 || channels <= 0 {
		return &Planar{}
	}

	planes := make([]*mat.Dense, channels)
	for i := range planes {
		planes[i] = mat.NewDense(rows, cols, nil)
	}
	return &Planar{planes: planes, rows: rows, cols: cols}
}

// FromPlanes wraps existing matrices as the channels of one image.
// All planes must have the same dimensions.
func FromPlanes(planes ...*mat.Dense) (*Planar, error) {
	if len(planes) == 0 {
		return &Planar{}, nil
	}

	rows, cols := planes[0].Dims()
	for i, p := range planes[1:] {
		if r, c := p.Dims(); r != rows || c != cols {
			return nil, fmt.Errorf("%w: plane %d is %dx%d, plane 0 is %dx%d", ErrPlaneSize, i+1, r, c, rows, cols)
		}
	}
	return &Planar{planes: planes, rows: rows, cols: cols}, nil
}

// Dims returns the rows and columns shared by every plane.
func (img *Planar) Dims() (rows, cols int) {
	return img.rows, img.cols
}

// Channels returns the number of planes.
func (img *Planar) Channels() int {
	return len(img.planes)
}

// Plane returns the specified plane, or nil when i is out of range.
func (img *Planar) Plane(i int) *mat.Dense {
	if i < 0 || i >= len(img.planes) {
		return nil
	}
	return img.planes[i]
}

// SameSize returns true if both images have the same dimensions and number
// of channels.
func SameSize(a, b *Planar) bool {
	return a.rows == b.rows && a.cols == b.cols && len(a.planes) == len(b.planes)
}

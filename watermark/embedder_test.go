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
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestSVDEmbedder(t *testing.T) {
	rng := rand.New(rand.NewPCG(31, 32))
	host := randomHost(rng, 12, 9)
	mark := randomMark(rng, 12, 9)

	marked, key, err := SVD{}.Embed(host, mark, 0.05)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}

	k, ok := key.(*SVDKey)
	if !ok {
		t.Fatalf("key is %T, want *SVDKey", key)
	}
	if r, c := k.Dims(); r != 12 || c != 9 {
		t.Errorf("key decodes %dx%d, want 12x9", r, c)
	}
	if k.ScaleFactor != 0.05 {
		t.Errorf("key scale factor %v, want 0.05", k.ScaleFactor)
	}

	// The key holds the factors of the unmarked host.
	var host2 mat.Dense
	host2.Product(k.U, k.S, k.VT)
	if !mat.EqualApprox(&host2, host, 1e-10) {
		t.Errorf("key factors do not rebuild the host")
	}

	got, err := SVD{}.Extract(marked, key)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if err := maxAbsDiff(got, mark); err > 1e-9 {
		t.Errorf("max error %g", err)
	}
}

var badScaleFactors = []float64{0, -0.1, math.NaN(), math.Inf(1), math.Inf(-1)}

func TestSVDEmbedderErrors(t *testing.T) {
	rng := rand.New(rand.NewPCG(33, 34))
	host := randomHost(rng, 8, 8)

	if _, _, err := (SVD{}).Embed(host, randomMark(rng, 4, 4), 0.1); !errors.Is(err, ErrConfiguration) {
		t.Errorf("Embed with small watermark: err = %v, want ErrConfiguration", err)
	}
	for _, sf := range badScaleFactors {
		if _, _, err := (SVD{}).Embed(host, randomMark(rng, 8, 8), sf); !errors.Is(err, ErrConfiguration) {
			t.Errorf("Embed with sf %v: err = %v, want ErrConfiguration", sf, err)
		}
	}

	marked, key, err := SVD{}.Embed(host, randomMark(rng, 8, 8), 0.1)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if _, err := (SVD{}).Extract(randomHost(rng, 8, 4), key); !errors.Is(err, ErrContextMismatch) {
		t.Errorf("Extract with wrong shape: err = %v, want ErrContextMismatch", err)
	}
	if _, err := (SVD{}).Extract(marked, &SingularValuesKey{}); !errors.Is(err, ErrContextMismatch) {
		t.Errorf("Extract with foreign key: err = %v, want ErrContextMismatch", err)
	}
	if _, err := (SVD{}).Extract(marked, (*SVDKey)(nil)); !errors.Is(err, ErrContextMismatch) {
		t.Errorf("Extract with nil key: err = %v, want ErrContextMismatch", err)
	}
}

// separatedHost returns a rows×cols matrix whose singular values are 10
// apart, so that small perturbations never reorder them.
func separatedHost(rows, cols int) *mat.Dense {
	n := min(rows, cols)
	h := mat.NewDense(rows, cols, nil)
	for i := range n {
		h.Set(i, i, float64(10*(n-i)))
	}
	return h
}

func TestSingularValuesEmbedder(t *testing.T) {
	rng := rand.New(rand.NewPCG(35, 36))
	sizes := []struct {
		hostRows, hostCols int
		markRows, markCols int
	}{
		{16, 16, 16, 16},
		{6, 4, 4, 9},
	}

	for _, size := range sizes {
		host := separatedHost(size.hostRows, size.hostCols)
		mark := randomMark(rng, size.markRows, size.markCols)

		marked, key, err := SingularValues{}.Embed(host, mark, 0.01)
		if err != nil {
			t.Fatalf("Embed: %v", err)
		}
		if r, c := marked.Dims(); r != size.hostRows || c != size.hostCols {
			t.Fatalf("marked is %dx%d, want %dx%d", r, c, size.hostRows, size.hostCols)
		}

		got, err := SingularValues{}.Extract(marked, key)
		if err != nil {
			t.Fatalf("Extract: %v", err)
		}
		if r, c := got.Dims(); r != size.markRows || c != size.markCols {
			t.Fatalf("extracted watermark is %dx%d, want %dx%d", r, c, size.markRows, size.markCols)
		}
		if err := maxAbsDiff(got, mark); err > 1e-8 {
			t.Errorf("%dx%d: max error %g", size.hostRows, size.hostCols, err)
		}
	}
}

func TestSingularValuesEmbedderErrors(t *testing.T) {
	rng := rand.New(rand.NewPCG(37, 38))
	if _, _, err := (SingularValues{}).Embed(separatedHost(6, 4), randomMark(rng, 5, 5), 0.1); !errors.Is(err, ErrConfiguration) {
		t.Errorf("Embed with mismatched rank: err = %v, want ErrConfiguration", err)
	}
	for _, sf := range badScaleFactors {
		if _, _, err := (SingularValues{}).Embed(separatedHost(6, 4), randomMark(rng, 4, 9), sf); !errors.Is(err, ErrConfiguration) {
			t.Errorf("Embed with sf %v: err = %v, want ErrConfiguration", sf, err)
		}
	}

	_, key, err := SVD{}.Embed(separatedHost(4, 4), randomMark(rng, 4, 4), 0.1)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if _, err := (SingularValues{}).Extract(separatedHost(4, 4), key); !errors.Is(err, ErrContextMismatch) {
		t.Errorf("Extract with svd key: err = %v, want ErrContextMismatch", err)
	}
}

func TestDirectWithSingularValues(t *testing.T) {
	rng := rand.New(rand.NewPCG(39, 40))
	s, err := NewDirect(0.01, WithEmbedder(SingularValues{}))
	if err != nil {
		t.Fatalf("NewDirect: %v", err)
	}
	host := separatedHost(24, 24)
	mark := randomMark(rng, 24, 24)

	marked, ctx, err := s.Embed(host, mark)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if _, ok := ctx.Key.(*SingularValuesKey); !ok {
		t.Fatalf("ctx.Key is %T, want *SingularValuesKey", ctx.Key)
	}

	got, err := s.Extract(marked, ctx)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if err := maxAbsDiff(got, mark); err > 1e-8 {
		t.Errorf("max error %g", err)
	}
}

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

// Package linalg wraps the dense factorizations used by the watermarking
// pipelines: full singular value decomposition and Hessenberg reduction.
//
// All functions operate on gonum matrices and return freshly allocated
// results; inputs are never modified.
//
// # Singular Value Decomposition
//
// FullSVD always computes full (not economy) factors so that the shapes of
// U, S and Vᵀ match the input exactly:
//
//	u, s, vt, err := linalg.FullSVD(a) // a = u·s·vt, s is rows×cols
//
// # Hessenberg Reduction
//
// ReduceHessenberg computes an orthogonal similarity transform q·h·qᵀ = a
// with h zero below the first subdiagonal:
//
//	h, q, err := linalg.ReduceHessenberg(a)
//	a2 := linalg.RestoreHessenberg(h, q) // a2 ≈ a
//
// ReduceHessenbergValue returns h alone.
package linalg

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
	"fmt"
)

var (
	// ErrConfiguration reports an invalid scale factor, ratio or input shape.
	ErrConfiguration = errors.New("watermark: invalid configuration")

	// ErrState reports an extraction that has no usable embedding context.
	ErrState = errors.New("watermark: invalid state")

	// ErrContextMismatch reports an embedding context that was produced by a
	// different scheme, or for an image of a different shape. It wraps
	// ErrState.
	ErrContextMismatch = fmt.Errorf("%w: embedding context does not match", ErrState)
)

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrConfiguration}, args...)...)
}

func mismatchErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrContextMismatch}, args...)...)
}

// SPDX-License-Identifier: EPL-2.0

package frame

import "errors"

var (
	// ErrLengthMismatch means samples and window coefficients differ in length.
	ErrLengthMismatch = errors.New("samples and window length differ")
	// ErrEmptyFrame is returned when a frame would hold no samples.
	ErrEmptyFrame = errors.New("frame must hold at least one sample")
)

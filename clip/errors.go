// SPDX-License-Identifier: EPL-2.0

package clip

import "errors"

var (
	// ErrFrameSize is returned when the frame size is not a positive power of two.
	ErrFrameSize = errors.New("frame size must be a power of two")
	// ErrOverlap is returned when the overlap is below 1 or does not divide the frame size.
	ErrOverlap = errors.New("overlap must be at least 1 and divide the frame size")
	// ErrSpectralScale is returned for a zero, NaN or infinite spectral scale.
	ErrSpectralScale = errors.New("spectral scale must be finite and non-zero")
	// ErrNoWindow is returned when a nil window function is configured.
	ErrNoWindow = errors.New("window function is required")
	// ErrStreamClosed is returned when reading a closed Stream.
	ErrStreamClosed = errors.New("read from closed stream")
)

// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile = errors.New("not a WAV file")
	// ErrUnsupportedEncoding is returned for anything but integer PCM.
	ErrUnsupportedEncoding = errors.New("only integer PCM WAV is supported")
	// ErrUnsupportedBitDepth is returned for PCM that is not 16, 24 or 32 bits.
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")
	ErrInvalidSampleRate   = errors.New("sample rate must be positive")
)

// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF and AIFF-C files using github.com/go-audio/aiff.
//
// Integer PCM at 16, 24 or 32 bits is supported with any channel count and
// sample rate. AIFF stores samples big-endian; the Source hides that and
// yields float32 values in [-1, 1):
//
//	f, _ := os.Open("take.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//
// Inputs that cannot seek are read into memory first.
package aiff

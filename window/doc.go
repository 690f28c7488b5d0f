// SPDX-License-Identifier: EPL-2.0

// Package window provides window functions used to weight analysis frames.
//
// A window function is anything that can produce per-sample coefficients for a
// given frame length:
//
//	type Func interface {
//	    Name() string
//	    Coefficients(n int) []float64
//	}
//
// The coefficients are computed once per clip and shared between all of its
// frames, so implementations must return a fresh slice on every call.
//
// # Available Windows
//
//   - Vorbis: power-complementary, the default for spectral clips
//   - Hann, Hamming, Blackman: classic cosine windows (github.com/mjibson/go-dsp/window)
//   - Rectangular: all ones, leaves the signal untouched
//
// Windows can be looked up by the names used in configuration files:
//
//	w, err := window.ByName("hann")
package window

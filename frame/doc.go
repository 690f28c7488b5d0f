// SPDX-License-Identifier: EPL-2.0

// Package frame holds a single windowed slice of audio in the frequency domain.
//
// A Frame is built from time samples and window coefficients. The window is
// applied once on the way in (analysis) and once on the way out (synthesis),
// so the overlap-add stage sees the square of the window.
//
// The spectrum is the mutable state of a frame. Editors obtain it with
// Spectrum, Bin and SetBin and change it in place; TimeData always reflects
// the current spectrum:
//
//	f, _ := frame.New(samples, window.Vorbis{}.Coefficients(len(samples)))
//	f.ScaleBin(10, 0) // silence bin 10 and its mirror
//	out := f.TimeData()
package frame

// SPDX-License-Identifier: EPL-2.0

package frame

import (
	"fmt"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// Frame is one windowed slice of audio stored as its spectrum.
//
// Frames are not safe for concurrent mutation and reading.
type Frame struct {
	spectrum []complex128
	// window is shared between all frames of a clip and never written.
	window []float64
}

// New windows samples with coeffs and transforms the result. samples is not
// retained.
func New(samples, coeffs []float64) (*Frame, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyFrame
	}
	if len(samples) != len(coeffs) {
		return nil, fmt.Errorf("%w: %d samples, %d coefficients", ErrLengthMismatch, len(samples), len(coeffs))
	}

	windowed := make([]float64, len(samples))
	for i, s := range samples {
		windowed[i] = s * coeffs[i]
	}

	return &Frame{
		spectrum: fft.FFTReal(windowed),
		window:   coeffs,
	}, nil
}

// Len is the number of time samples in the frame.
func (f *Frame) Len() int { return len(f.spectrum) }

// Bins is the number of non-redundant frequency bins, Len()/2 + 1.
func (f *Frame) Bins() int { return len(f.spectrum)/2 + 1 }

// Spectrum returns the frame's spectrum. The slice aliases the frame, writes
// to it are seen by the next TimeData call.
func (f *Frame) Spectrum() []complex128 { return f.spectrum }

// Bin returns frequency bin k.
func (f *Frame) Bin(k int) complex128 { return f.spectrum[k] }

// SetBin sets bin k and its conjugate mirror so the time data stays real.
func (f *Frame) SetBin(k int, v complex128) {
	n := len(f.spectrum)
	f.spectrum[k] = v
	if m := (n - k) % n; m != k {
		f.spectrum[m] = cmplx.Conj(v)
	}
}

// ScaleBin multiplies bin k and its mirror by factor.
func (f *Frame) ScaleBin(k int, factor float64) {
	f.SetBin(k, f.spectrum[k]*complex(factor, 0))
}

// Magnitudes returns |X[k]| for the non-redundant bins.
func (f *Frame) Magnitudes() []float64 {
	mags := make([]float64, f.Bins())
	for k := range mags {
		mags[k] = cmplx.Abs(f.spectrum[k])
	}
	return mags
}

// TimeData inverse-transforms the current spectrum and applies the synthesis
// window. The returned slice is owned by the caller.
func (f *Frame) TimeData() []float64 {
	in := make([]complex128, len(f.spectrum))
	copy(in, f.spectrum)
	inv := fft.IFFT(in)

	out := make([]float64, len(inv))
	for i, v := range inv {
		out[i] = real(v) * f.window[i]
	}
	return out
}

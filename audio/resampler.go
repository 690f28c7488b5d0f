// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/spectro/utils"
)

// maxEmptyReads bounds how often a source may return no data and no error
// before it is treated as exhausted.
const maxEmptyReads = 64

// Resampler converts a Source to another sample rate using Catmull-Rom
// interpolation between the four surrounding input frames. The channel count
// is preserved. When downsampling, a one-pole low-pass filter is applied to
// the input to reduce aliasing.
type Resampler struct {
	src      Source
	channels int
	dstRate  int
	step     float64 // input frames per output frame

	// hist holds the frames at t-1, t0, t+1 and t+2; output falls between
	// hist[1] and hist[2] at fraction pos.
	hist   [4][]float32
	real   [4]bool
	pos    float64
	primed bool
	done   bool

	chunk    []float32
	off, n   int
	srcEOF   bool
	lowpass  []float32
	filtered bool
}

// NewResampler returns a Resampler reading from src at dstRate Hz.
func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, ErrInvalidSampleRate
	}
	channels := max(src.Channels(), 1)
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		channels: channels,
		dstRate:  dstRate,
		step:     step,
		chunk:    make([]float32, 1024*channels),
		lowpass:  make([]float32, channels),
		filtered: step > 1,
	}
	for i := range r.hist {
		r.hist[i] = make([]float32, channels)
	}
	return r, nil
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// pull reads the next input frame into dst. It reports false once the source
// is exhausted.
func (r *Resampler) pull(dst []float32) (bool, error) {
	empty := 0
	for r.off >= r.n {
		if r.srcEOF {
			return false, nil
		}
		n, err := r.src.ReadSamples(r.chunk)
		r.n, r.off = n-n%r.channels, 0
		if err == io.EOF {
			r.srcEOF = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}
		if n == 0 {
			if empty++; empty >= maxEmptyReads {
				r.srcEOF = true
			}
		}
	}

	copy(dst, r.chunk[r.off:r.off+r.channels])
	r.off += r.channels

	if r.filtered {
		// y[n] = a*x[n] + (1-a)*y[n-1], a = 0.5
		for c := range dst {
			dst[c] = 0.5*dst[c] + 0.5*r.lowpass[c]
			r.lowpass[c] = dst[c]
		}
	}
	return true, nil
}

// fill loads hist[i], duplicating hist[i-1] when the input has ended.
func (r *Resampler) fill(i int) error {
	ok, err := r.pull(r.hist[i])
	if err != nil {
		return err
	}
	r.real[i] = ok
	if !ok {
		copy(r.hist[i], r.hist[i-1])
	}
	return nil
}

func (r *Resampler) prime() error {
	r.primed = true

	r.filtered = false
	ok, err := r.pull(r.hist[1])
	if err != nil {
		return err
	}
	if !ok {
		r.done = true
		return nil
	}
	// seed the filter with the first frame to avoid a warm-up ramp
	copy(r.lowpass, r.hist[1])
	r.filtered = r.step > 1

	copy(r.hist[0], r.hist[1])
	r.real[0], r.real[1] = true, true
	if err := r.fill(2); err != nil {
		return err
	}
	return r.fill(3)
}

// advance moves the history window one input frame forward.
func (r *Resampler) advance() error {
	r.hist[0], r.hist[1], r.hist[2], r.hist[3] = r.hist[1], r.hist[2], r.hist[3], r.hist[0]
	r.real[0], r.real[1], r.real[2] = r.real[1], r.real[2], r.real[3]
	if !r.real[1] {
		r.done = true
		return nil
	}
	return r.fill(3)
}

// ReadSamples produces resampled interleaved samples. len(dst) must be a
// multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	for written < len(dst) && !r.done {
		for r.pos >= 1 && !r.done {
			r.pos--
			if err := r.advance(); err != nil {
				return written, err
			}
		}
		if r.done {
			break
		}

		x := float32(r.pos)
		for c := range r.channels {
			dst[written+c] = utils.CubicInterpolate(r.hist[0][c], r.hist[1][c], r.hist[2][c], r.hist[3][c], x)
		}
		written += r.channels
		r.pos += r.step
	}

	if r.done {
		return written, io.EOF
	}
	return written, nil
}

// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio sources for tests.
package audiotest

import (
	"io"
	"math"
)

// Waveform returns the value of channel ch at frame index i.
type Waveform func(i, ch int) float32

// Source generates frames from a Waveform. It satisfies audio.Source without
// importing it.
type Source struct {
	rate     int
	channels int
	frames   int
	pos      int
	wave     Waveform

	// MaxFrames caps how many frames a single ReadSamples returns. Zero means
	// no cap.
	MaxFrames int
	// Err, when set, is returned once the frames are exhausted instead of
	// io.EOF.
	Err error
	// Closed counts Close calls.
	Closed int
}

func New(rate, channels, frames int, wave Waveform) *Source {
	return &Source{rate: rate, channels: channels, frames: frames, wave: wave}
}

func Silence(rate, channels, frames int) *Source {
	return New(rate, channels, frames, func(int, int) float32 { return 0 })
}

func Constant(rate, channels, frames int, v float32) *Source {
	return New(rate, channels, frames, func(int, int) float32 { return v })
}

// Sine generates the same tone on every channel.
func Sine(rate, channels, frames int, freq, amp float64) *Source {
	return New(rate, channels, frames, func(i, _ int) float32 {
		return float32(amp * math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
	})
}

// Ramp generates i*step on channel 0 and ch+i*step on the others.
func Ramp(rate, channels, frames int, step float32) *Source {
	return New(rate, channels, frames, func(i, ch int) float32 {
		return float32(ch) + float32(i)*step
	})
}

func (s *Source) SampleRate() int { return s.rate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return 4096 }

func (s *Source) Close() error {
	s.Closed++
	return nil
}

// Rewind restarts generation from the first frame.
func (s *Source) Rewind() { s.pos = 0 }

func (s *Source) end() error {
	if s.Err != nil {
		return s.Err
	}
	return io.EOF
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= s.frames {
		return 0, s.end()
	}

	n := min(len(dst)/s.channels, s.frames-s.pos)
	if s.MaxFrames > 0 {
		n = min(n, s.MaxFrames)
	}
	for f := range n {
		for ch := range s.channels {
			dst[f*s.channels+ch] = s.wave(s.pos+f, ch)
		}
	}
	s.pos += n

	if s.pos >= s.frames {
		return n * s.channels, s.end()
	}
	return n * s.channels, nil
}

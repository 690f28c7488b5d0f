// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"io"
	"log/slog"

	"github.com/ik5/spectro/frame"
	"github.com/ik5/spectro/window"
)

// Format describes the PCM layout clips consume and produce.
type Format struct {
	SampleRate int
	BitDepth   int
	Channels   int
	BigEndian  bool
}

// BytesPerSample is the size of one sample in bytes.
func (f Format) BytesPerSample() int { return f.BitDepth / 8 * f.Channels }

// PCM is the only format clips work with.
var PCM = Format{
	SampleRate: 16000,
	BitDepth:   16,
	Channels:   1,
	BigEndian:  true,
}

// Clip is an audio clip stored as a sequence of equal-size overlapping
// spectral frames.
type Clip struct {
	name      string
	frameSize int
	overlap   int
	scale     float64
	window    window.Func
	coeffs    []float64
	logger    *slog.Logger

	frames []*frame.Frame
}

// New decomposes the PCM stream r into frames. r must carry PCM-format
// samples and is read until it is exhausted.
func New(name string, r io.Reader, opts ...Option) (*Clip, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}

	logger := s.logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &Clip{
		name:      name,
		frameSize: s.frameSize,
		overlap:   s.overlap,
		scale:     s.scale,
		window:    s.window,
		coeffs:    s.window.Coefficients(s.frameSize),
		logger:    logger,
	}

	if err := c.ingest(r); err != nil {
		return nil, err
	}
	return c, nil
}

// Name returns the clip name given at construction.
func (c *Clip) Name() string { return c.name }

// FrameSize returns the number of time samples per frame.
func (c *Clip) FrameSize() int { return c.frameSize }

// FrequencySamples returns the number of frequency samples per frame.
func (c *Clip) FrequencySamples() int { return c.frameSize / 2 }

// Overlap returns the number of frames covering each sample.
func (c *Clip) Overlap() int { return c.overlap }

// SpectralScale returns the factor between integer PCM and frame samples.
func (c *Clip) SpectralScale() float64 { return c.scale }

// Window returns the window function the frames were built with.
func (c *Clip) Window() window.Func { return c.window }

// SampleRate returns the sample rate of the clip in Hz.
func (c *Clip) SampleRate() int { return PCM.SampleRate }

// FrameCount returns the number of frames in the clip.
func (c *Clip) FrameCount() int { return len(c.frames) }

// Frame returns frame i. The returned frame is the stored one; edits to it
// change what subsequent playback produces. Frame panics if i is out of range.
func (c *Clip) Frame(i int) *frame.Frame { return c.frames[i] }

// hopSamples is the distance in samples between consecutive frame starts.
func (c *Clip) hopSamples() int { return c.frameSize / c.overlap }

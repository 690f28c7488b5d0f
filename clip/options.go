// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"fmt"
	"log/slog"
	"math"
	"math/bits"

	"github.com/ik5/spectro/window"
)

const (
	// DefaultFrameSize is the number of samples per frame.
	DefaultFrameSize = 2048
	// DefaultOverlap is the number of frames covering each sample.
	DefaultOverlap = 8
	// DefaultSpectralScale divides samples on ingestion and multiplies them on playback.
	DefaultSpectralScale = 10000.0
)

// Option configures a Clip.
type Option func(*settings)

type settings struct {
	frameSize int
	overlap   int
	scale     float64
	window    window.Func
	logger    *slog.Logger
}

func defaultSettings() settings {
	return settings{
		frameSize: DefaultFrameSize,
		overlap:   DefaultOverlap,
		scale:     DefaultSpectralScale,
		window:    window.Default(),
	}
}

// WithFrameSize sets the number of samples per frame. Larger frames give finer
// frequency resolution. Must be a power of two.
func WithFrameSize(n int) Option {
	return func(s *settings) { s.frameSize = n }
}

// WithOverlap sets how many frames cover each sample. 1 means no overlap;
// edits are only click free from 2 upwards.
func WithOverlap(n int) Option {
	return func(s *settings) { s.overlap = n }
}

// WithSpectralScale sets the factor between integer PCM and frame samples.
// The scale is fixed for the lifetime of the clip.
func WithSpectralScale(scale float64) Option {
	return func(s *settings) { s.scale = scale }
}

// WithWindow sets the analysis/synthesis window.
func WithWindow(w window.Func) Option {
	return func(s *settings) { s.window = w }
}

// WithLogger sets the logger used during ingestion. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

func (s *settings) validate() error {
	if s.frameSize <= 0 || bits.OnesCount(uint(s.frameSize)) != 1 {
		return fmt.Errorf("%w: %d", ErrFrameSize, s.frameSize)
	}
	if s.overlap < 1 || s.overlap > s.frameSize || s.frameSize%s.overlap != 0 {
		return fmt.Errorf("%w: overlap %d, frame size %d", ErrOverlap, s.overlap, s.frameSize)
	}
	if s.scale == 0 || math.IsNaN(s.scale) || math.IsInf(s.scale, 0) {
		return fmt.Errorf("%w: %v", ErrSpectralScale, s.scale)
	}
	if s.window == nil {
		return ErrNoWindow
	}
	return nil
}

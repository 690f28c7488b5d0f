// SPDX-License-Identifier: EPL-2.0

// Package config loads the YAML settings of the spectro command.
package config

import (
	"log/slog"

	"github.com/ik5/spectro/clip"
	"github.com/ik5/spectro/window"
)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Level maps l to a slog level. Unknown or empty levels map to info.
func (l LogLevel) Level() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Config is the root of the configuration file.
type Config struct {
	// LogLevel controls verbosity.
	LogLevel LogLevel `yaml:"log_level"`

	// Clip holds the decomposition parameters.
	Clip ClipConfig `yaml:"clip"`
}

// ClipConfig mirrors the clip construction options.
type ClipConfig struct {
	// FrameSize is the number of samples per frame, a power of two.
	FrameSize int `yaml:"frame_size"`

	// Overlap is the number of frames covering each sample.
	Overlap int `yaml:"overlap"`

	// SpectralScale divides PCM samples on ingestion.
	SpectralScale float64 `yaml:"spectral_scale"`

	// Window names the analysis window; see window.Names.
	Window string `yaml:"window"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: LogInfo,
		Clip: ClipConfig{
			FrameSize:     clip.DefaultFrameSize,
			Overlap:       clip.DefaultOverlap,
			SpectralScale: clip.DefaultSpectralScale,
			Window:        window.Default().Name(),
		},
	}
}

// ClipOptions converts the clip section to clip options. cfg must have
// passed Validate.
func (cfg *Config) ClipOptions() []clip.Option {
	opts := []clip.Option{
		clip.WithFrameSize(cfg.Clip.FrameSize),
		clip.WithOverlap(cfg.Clip.Overlap),
		clip.WithSpectralScale(cfg.Clip.SpectralScale),
	}
	if w, err := window.ByName(cfg.Clip.Window); err == nil {
		opts = append(opts, clip.WithWindow(w))
	}
	return opts
}

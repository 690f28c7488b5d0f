// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/bits"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ik5/spectro/window"
)

// Load reads the YAML configuration file at path and returns a validated [Config].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r on top of [Default] and
// validates the result. Fields absent from r keep their defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.LogLevel != "" && !cfg.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel))
	}

	c := cfg.Clip
	frameOK := c.FrameSize > 0 && bits.OnesCount(uint(c.FrameSize)) == 1
	if !frameOK {
		errs = append(errs, fmt.Errorf("clip.frame_size %d must be a positive power of two", c.FrameSize))
	}
	switch {
	case c.Overlap < 1:
		errs = append(errs, fmt.Errorf("clip.overlap %d must be at least 1", c.Overlap))
	case frameOK && (c.Overlap > c.FrameSize || c.FrameSize%c.Overlap != 0):
		errs = append(errs, fmt.Errorf("clip.overlap %d must divide clip.frame_size %d", c.Overlap, c.FrameSize))
	}
	if c.SpectralScale == 0 || math.IsNaN(c.SpectralScale) || math.IsInf(c.SpectralScale, 0) {
		errs = append(errs, fmt.Errorf("clip.spectral_scale %v must be finite and non-zero", c.SpectralScale))
	}
	if _, err := window.ByName(c.Window); err != nil {
		errs = append(errs, fmt.Errorf("clip.window %q is invalid; valid values: %s", c.Window, strings.Join(window.Names(), ", ")))
	}

	return errors.Join(errs...)
}

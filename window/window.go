// SPDX-License-Identifier: EPL-2.0

package window

import (
	"fmt"
	"math"
	"slices"
	"strings"

	dspwindow "github.com/mjibson/go-dsp/window"
)

// Func computes window coefficients for a frame of n samples.
type Func interface {
	Name() string
	Coefficients(n int) []float64
}

// Vorbis is the window used by the Vorbis codec:
//
//	w(i) = sin(pi/2 * sin^2(pi*(i+0.5)/n))
//
// It satisfies w(i)^2 + w(i+n/2)^2 = 1, which makes analysis plus synthesis
// windowing sum to a constant at 50% overlap.
type Vorbis struct{}

func (Vorbis) Name() string { return "vorbis" }

func (Vorbis) Coefficients(n int) []float64 {
	c := make([]float64, n)
	for i := range n {
		s := math.Sin(math.Pi * (float64(i) + 0.5) / float64(n))
		c[i] = math.Sin(math.Pi / 2 * s * s)
	}
	return c
}

// Hann is the raised cosine window.
type Hann struct{}

func (Hann) Name() string                 { return "hann" }
func (Hann) Coefficients(n int) []float64 { return safe(dspwindow.Hann, n) }

// Hamming is the Hamming window.
type Hamming struct{}

func (Hamming) Name() string                 { return "hamming" }
func (Hamming) Coefficients(n int) []float64 { return safe(dspwindow.Hamming, n) }

// Blackman is the Blackman window.
type Blackman struct{}

func (Blackman) Name() string                 { return "blackman" }
func (Blackman) Coefficients(n int) []float64 { return safe(dspwindow.Blackman, n) }

// Rectangular weights every sample with 1.
type Rectangular struct{}

func (Rectangular) Name() string                 { return "rectangular" }
func (Rectangular) Coefficients(n int) []float64 { return safe(dspwindow.Rectangular, n) }

// safe guards the go-dsp generators, which divide by n-1.
func safe(gen func(int) []float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{1}
	}
	return gen(n)
}

var byName = map[string]Func{
	"vorbis":      Vorbis{},
	"hann":        Hann{},
	"hamming":     Hamming{},
	"blackman":    Blackman{},
	"rectangular": Rectangular{},
}

// Default returns the window used when none is configured.
func Default() Func { return Vorbis{} }

// ByName looks up a window function by its configuration name. Lookup is case
// insensitive.
func ByName(name string) (Func, error) {
	f, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownWindow, name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// Names returns the sorted list of known window names.
func Names() []string {
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

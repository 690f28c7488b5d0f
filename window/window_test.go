// SPDX-License-Identifier: EPL-2.0

package window

import (
	"errors"
	"math"
	"testing"
)

func TestCoefficients_Length(t *testing.T) {
	t.Parallel()

	funcs := []Func{Vorbis{}, Hann{}, Hamming{}, Blackman{}, Rectangular{}}
	sizes := []int{0, 1, 2, 64, 2048}

	for _, f := range funcs {
		t.Run(f.Name(), func(t *testing.T) {
			t.Parallel()
			for _, n := range sizes {
				if got := len(f.Coefficients(n)); got != n {
					t.Errorf("%s.Coefficients(%d) len = %d, want %d", f.Name(), n, got, n)
				}
			}
		})
	}
}

func TestVorbis_PowerComplementary(t *testing.T) {
	t.Parallel()

	const n = 256
	c := Vorbis{}.Coefficients(n)

	for i := range n / 2 {
		sum := c[i]*c[i] + c[i+n/2]*c[i+n/2]
		if math.Abs(sum-1) > 1e-12 {
			t.Fatalf("w[%d]^2 + w[%d]^2 = %v, want 1", i, i+n/2, sum)
		}
	}
}

func TestVorbis_Symmetric(t *testing.T) {
	t.Parallel()

	const n = 128
	c := Vorbis{}.Coefficients(n)
	for i := range n {
		if math.Abs(c[i]-c[n-1-i]) > 1e-12 {
			t.Fatalf("w[%d] = %v, w[%d] = %v, want symmetric", i, c[i], n-1-i, c[n-1-i])
		}
	}
}

func TestRectangular_AllOnes(t *testing.T) {
	t.Parallel()

	for i, v := range (Rectangular{}).Coefficients(32) {
		if v != 1 {
			t.Errorf("w[%d] = %v, want 1", i, v)
		}
	}
}

func TestHann_Edges(t *testing.T) {
	t.Parallel()

	c := Hann{}.Coefficients(64)
	if math.Abs(c[0]) > 1e-12 {
		t.Errorf("hann w[0] = %v, want 0", c[0])
	}
	mid := c[len(c)/2]
	if mid < 0.99 {
		t.Errorf("hann centre = %v, want close to 1", mid)
	}
}

func TestCoefficients_FreshSlice(t *testing.T) {
	t.Parallel()

	a := Vorbis{}.Coefficients(16)
	a[0] = 42
	b := Vorbis{}.Coefficients(16)
	if b[0] == 42 {
		t.Error("Coefficients() returned a shared slice")
	}
}

func TestByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"vorbis", "vorbis", false},
		{"Hann", "hann", false},
		{" hamming ", "hamming", false},
		{"blackman", "blackman", false},
		{"rectangular", "rectangular", false},
		{"kaiser", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ByName(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownWindow) {
					t.Fatalf("ByName(%q) error = %v, want ErrUnknownWindow", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ByName(%q) error = %v", tt.name, err)
			}
			if got.Name() != tt.want {
				t.Errorf("ByName(%q).Name() = %q, want %q", tt.name, got.Name(), tt.want)
			}
		})
	}
}

func TestNames_Sorted(t *testing.T) {
	t.Parallel()

	names := Names()
	if len(names) != 5 {
		t.Fatalf("Names() len = %d, want 5", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("Names() not sorted: %v", names)
		}
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	if Default().Name() != "vorbis" {
		t.Errorf("Default().Name() = %q, want vorbis", Default().Name())
	}
}

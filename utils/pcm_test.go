// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "zero", input: 0, want: 0},
		{name: "full scale positive clamps", input: 1, want: math.MaxInt16},
		{name: "full scale negative", input: -1, want: math.MinInt16},
		{name: "half", input: 0.5, want: 16384},
		{name: "negative half", input: -0.5, want: -16384},
		{name: "quarter", input: 0.25, want: 8192},
		{name: "small truncates toward zero", input: 0.001, want: 32},
		{name: "small negative truncates toward zero", input: -0.001, want: -32},
		{name: "over range", input: 1.5, want: math.MaxInt16},
		{name: "under range", input: -100, want: math.MinInt16},
		{name: "nan", input: float32(math.NaN()), want: 0},
		{name: "positive infinity", input: float32(math.Inf(1)), want: math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestInt16RoundTrip(t *testing.T) {
	t.Parallel()

	for v := math.MinInt16; v <= math.MaxInt16; v++ {
		f := Int16ToFloat32(int16(v))
		if f < -1 || f >= 1 {
			t.Fatalf("Int16ToFloat32(%d) = %v, outside [-1, 1)", v, f)
		}
		if got := Float32ToInt16(f); got != int16(v) {
			t.Fatalf("round trip of %d gave %d", v, got)
		}
	}
}

func TestFloat32ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1.1)
	for f := float32(-1.1); f <= 1.1; f += 0.001 {
		curr := Float32ToInt16(f)
		if curr < prev {
			t.Fatalf("not monotonic at %v: %d after %d", f, curr, prev)
		}
		prev = curr
	}
}

func TestIntToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		v        int
		bitDepth int
		want     float32
	}{
		{name: "8 bit", v: -128, bitDepth: 8, want: -1},
		{name: "16 bit half", v: 16384, bitDepth: 16, want: 0.5},
		{name: "24 bit", v: 1 << 22, bitDepth: 24, want: 0.5},
		{name: "32 bit", v: -(1 << 30), bitDepth: 32, want: -0.5},
		{name: "unknown depth is 16 bit", v: 8192, bitDepth: 0, want: 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IntToFloat32(tt.v, tt.bitDepth); got != tt.want {
				t.Errorf("IntToFloat32(%d, %d) = %v, want %v", tt.v, tt.bitDepth, got, tt.want)
			}
		})
	}
}

func BenchmarkFloat32ToInt16(b *testing.B) {
	samples := make([]float32, 8000)
	for i := range samples {
		samples[i] = float32(math.Sin(float64(i) * 0.1))
	}
	out := make([]int16, len(samples))

	b.ReportAllocs()
	for b.Loop() {
		for j, s := range samples {
			out[j] = Float32ToInt16(s)
		}
	}
}

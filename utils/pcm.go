// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// pcmScale maps a signed 16-bit sample onto [-1, 1).
const pcmScale = 32768.0

// Float32ToInt16 converts a normalized sample to 16-bit PCM. The product is
// truncated toward zero and clamped, so Float32ToInt16(Int16ToFloat32(v)) == v
// for every int16 v.
func Float32ToInt16(x float32) int16 {
	v := float64(x) * pcmScale
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt16:
		return math.MaxInt16
	case v <= math.MinInt16:
		return math.MinInt16
	}
	return int16(v)
}

// Int16ToFloat32 converts a 16-bit PCM sample to [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / pcmScale
}

// IntToFloat32 normalizes a signed integer sample of the given bit depth.
// A non-positive depth is treated as 16 bits.
func IntToFloat32(v, bitDepth int) float32 {
	if bitDepth <= 0 {
		bitDepth = 16
	}
	return float32(float64(v) / float64(uint64(1)<<(bitDepth-1)))
}

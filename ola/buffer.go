// SPDX-License-Identifier: EPL-2.0

package ola

// Buffer accumulates overlapping frames and emits one reconstructed sample
// per Next call.
type Buffer struct {
	acc  []float64 // ring, acc[head] is the next output sample
	head int

	hop  int
	left int // samples until the next frame is due
	gain float64
}

// New creates a buffer for frames of frameSize samples overlapping overlap
// times. Output samples are divided by gain; a non-positive gain means 1.
// frameSize must be a positive multiple of overlap.
func New(frameSize, overlap int, gain float64) *Buffer {
	if gain <= 0 {
		gain = 1
	}
	return &Buffer{
		acc:  make([]float64, frameSize),
		hop:  frameSize / overlap,
		gain: gain,
	}
}

// Gain is the steady-state amplitude of overlap-adding frames that were
// windowed twice by coeffs with the given overlap. Dividing by it restores
// unit amplitude.
func Gain(coeffs []float64, overlap int) float64 {
	if len(coeffs) == 0 {
		return 1
	}
	var sum float64
	for _, c := range coeffs {
		sum += c * c
	}
	return sum * float64(overlap) / float64(len(coeffs))
}

// NeedsFrame reports whether a frame must be admitted before the next pull.
func (b *Buffer) NeedsFrame() bool { return b.left == 0 }

// AddFrame mixes data into the buffer starting at the read cursor. Samples
// past the frame size are ignored; a short frame is treated as zero padded.
func (b *Buffer) AddFrame(data []float64) {
	n := len(b.acc)
	for i, v := range data[:min(len(data), n)] {
		b.acc[(b.head+i)%n] += v
	}
	b.left = b.hop
}

// AddEmptyFrame admits a frame of silence.
func (b *Buffer) AddEmptyFrame() {
	b.left = b.hop
}

// Next returns the next reconstructed sample and advances the read cursor.
func (b *Buffer) Next() float64 {
	v := b.acc[b.head]
	b.acc[b.head] = 0
	b.head = (b.head + 1) % len(b.acc)
	if b.left > 0 {
		b.left--
	}
	return v / b.gain
}

// Hop is the number of samples between frame admissions.
func (b *Buffer) Hop() int { return b.hop }

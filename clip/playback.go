// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"io"
	"math"

	"github.com/ik5/spectro/ola"
)

// Synthesizer resynthesizes a clip into big-endian PCM one byte at a time.
// It keeps feeding silence after the last frame until every overlapping
// contribution has drained, then reports io.EOF.
type Synthesizer struct {
	clip *Clip
	buf  *ola.Buffer

	next   int   // next frame to admit
	sample int16 // current sample, low byte still pending when high is false
	high   bool
	empty  int // silent frames admitted so far
}

// Synthesize returns a synthesizer starting at the frame that contains
// startSample. Negative offsets start at the first frame.
func (c *Clip) Synthesize(startSample int) *Synthesizer {
	return &Synthesizer{
		clip: c,
		buf:  ola.New(c.frameSize, c.overlap, ola.Gain(c.coeffs, c.overlap)),
		next: max(startSample, 0) / c.frameSize,
		high: true,
	}
}

// ReadByte returns the next PCM byte, high byte of each sample first.
func (s *Synthesizer) ReadByte() (byte, error) {
	if !s.high {
		s.high = true
		return byte(s.sample), nil
	}

	if s.buf.NeedsFrame() {
		if s.next < len(s.clip.frames) {
			s.buf.AddFrame(s.clip.frames[s.next].TimeData())
			s.next++
		} else if s.empty < s.clip.overlap {
			s.buf.AddEmptyFrame()
			s.empty++
		}
	}

	if s.empty >= s.clip.overlap {
		return 0, io.EOF
	}

	s.sample = toInt16(s.buf.Next() * s.clip.scale)
	s.high = false
	return byte(uint16(s.sample) >> 8), nil
}

// Read fills p with PCM bytes.
func (s *Synthesizer) Read(p []byte) (int, error) {
	for i := range p {
		b, err := s.ReadByte()
		if err != nil {
			return i, err
		}
		p[i] = b
	}
	return len(p), nil
}

// EmptyFrames reports how many silent frames have been admitted.
func (s *Synthesizer) EmptyFrames() int { return s.empty }

// toInt16 truncates toward zero and saturates at the int16 range.
func toInt16(v float64) int16 {
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

// Stream is a playback stream with a declared length in samples. It yields
// at most Len() samples and may end earlier once the clip has drained.
type Stream struct {
	synth     *Synthesizer
	length    int64
	remaining int64 // bytes
	closed    bool
}

// Audio returns a stream starting at the frame containing startSample and
// bounded by length samples. The declared length never exceeds the
// estimated clip length, FrameCount()*FrameSize()*2/Overlap().
func (c *Clip) Audio(startSample, length int) *Stream {
	clipLength := int64(len(c.frames)) * int64(c.frameSize) * int64(PCM.BytesPerSample()) / int64(c.overlap)
	n := max(min(int64(length), clipLength), 0)

	return &Stream{
		synth:     c.Synthesize(startSample),
		length:    n,
		remaining: n * int64(PCM.BytesPerSample()),
	}
}

// Len is the declared length of the stream in samples.
func (s *Stream) Len() int64 { return s.length }

// Format returns the PCM format of the stream.
func (s *Stream) Format() Format { return PCM }

// ReadByte returns the next PCM byte.
func (s *Stream) ReadByte() (byte, error) {
	if s.closed {
		return 0, ErrStreamClosed
	}
	if s.remaining <= 0 {
		return 0, io.EOF
	}
	b, err := s.synth.ReadByte()
	if err != nil {
		return 0, err
	}
	s.remaining--
	return b, nil
}

// Read fills p with PCM bytes.
func (s *Stream) Read(p []byte) (int, error) {
	if s.closed {
		return 0, ErrStreamClosed
	}
	if s.remaining <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > s.remaining {
		p = p[:s.remaining]
	}
	n, err := s.synth.Read(p)
	s.remaining -= int64(n)
	return n, err
}

// Close releases the reconstruction buffer. Close is idempotent.
func (s *Stream) Close() error {
	s.closed = true
	s.synth = nil
	return nil
}

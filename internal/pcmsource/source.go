// SPDX-License-Identifier: EPL-2.0

// Package pcmsource adapts go-audio integer decoders to audio.Source.
package pcmsource

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/spectro/utils"
)

// Decoder is the part of the go-audio wav and aiff decoders used here.
type Decoder interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source reads interleaved integer PCM from a Decoder and normalizes it to
// float32.
type Source struct {
	dec      Decoder
	format   *goaudio.Format
	bitDepth int
	buf      *goaudio.IntBuffer
	closer   io.Closer
	eof      bool
}

// New wraps dec. bitDepth is the depth of the stored samples.
func New(dec Decoder, format *goaudio.Format, bitDepth int) *Source {
	return &Source{
		dec:      dec,
		format:   format,
		bitDepth: bitDepth,
		buf: &goaudio.IntBuffer{
			Format:         format,
			Data:           make([]int, 4096),
			SourceBitDepth: bitDepth,
		},
	}
}

// WithCloser sets a resource released by Close.
func (s *Source) WithCloser(c io.Closer) *Source {
	s.closer = c
	return s
}

func (s *Source) SampleRate() int { return s.format.SampleRate }
func (s *Source) Channels() int   { return s.format.NumChannels }
func (s *Source) BitDepth() int   { return s.bitDepth }
func (s *Source) BufSize() int    { return cap(s.buf.Data) }

func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	if err := s.closer.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	if cap(s.buf.Data) < len(dst) {
		s.buf.Data = make([]int, len(dst))
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}
	for i, v := range s.buf.Data[:n] {
		dst[i] = utils.IntToFloat32(v, s.bitDepth)
	}

	// go-audio reports the end by returning a short or empty buffer
	if n < len(dst) || err == io.EOF {
		s.eof = true
		return n, io.EOF
	}
	return n, nil
}

// Seekable returns r as an io.ReadSeeker, buffering it in memory when it does
// not already support seeking.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}
	return bytes.NewReader(data), nil
}

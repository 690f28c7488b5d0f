// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/spectro/utils"
)

// PCMReader exposes a mono Source as a byte stream of signed 16-bit samples
// in the given byte order.
type PCMReader struct {
	src     Source
	order   binary.ByteOrder
	buf     []float32
	pending []byte
	err     error
}

// NewPCMReader wraps src, which must be mono.
func NewPCMReader(src Source, order binary.ByteOrder) (*PCMReader, error) {
	if src.Channels() != 1 {
		return nil, fmt.Errorf("%w: got %d channels", ErrNotMono, src.Channels())
	}
	if order == nil {
		order = binary.BigEndian
	}
	size := src.BufSize()
	if size <= 0 {
		size = 4096
	}
	return &PCMReader{
		src:   src,
		order: order,
		buf:   make([]float32, size),
	}, nil
}

func (p *PCMReader) SampleRate() int { return p.src.SampleRate() }

func (p *PCMReader) Close() error {
	if err := p.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (p *PCMReader) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}

	empty := 0
	for len(p.pending) == 0 {
		if p.err != nil {
			return 0, p.err
		}
		n, err := p.src.ReadSamples(p.buf)
		if err != nil {
			p.err = err
		}
		if n == 0 && err == nil {
			if empty++; empty >= maxEmptyReads {
				p.err = io.ErrNoProgress
			}
			continue
		}
		p.encode(p.buf[:n])
	}

	n := copy(b, p.pending)
	p.pending = p.pending[n:]
	return n, nil
}

func (p *PCMReader) encode(samples []float32) {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		p.order.PutUint16(out[2*i:], uint16(utils.Float32ToInt16(s)))
	}
	p.pending = out
}

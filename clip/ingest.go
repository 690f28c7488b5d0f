// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/spectro/frame"
)

// ingest slides a frame sized window over r, advancing by the hop size after
// every frame. Only the window is buffered, never the whole stream.
func (c *Clip) ingest(r io.Reader) error {
	bufLen := c.frameSize * 2
	hop := bufLen / c.overlap
	buf := make([]byte, bufLen)

	valid, err := readFull(r, buf)
	if err != nil {
		return fmt.Errorf("clip: read frame 0: %w", err)
	}

	for valid > 0 {
		if err := c.appendFrame(buf, valid); err != nil {
			return err
		}

		if valid > hop {
			copy(buf, buf[hop:valid])
			valid -= hop
		} else {
			// the window held less than one hop, skip the rest of it in r
			want := int64(hop - valid)
			valid = 0
			skipped, err := io.CopyN(io.Discard, r, want)
			if err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("clip: skip after frame %d: %w", len(c.frames), err)
			}
			if skipped != want {
				c.logger.Debug("skip shortfall",
					"skipped", skipped,
					"wanted", want,
					"frame", len(c.frames),
				)
			}
		}

		n, err := readFull(r, buf[valid:])
		if err != nil {
			return fmt.Errorf("clip: read frame %d: %w", len(c.frames), err)
		}
		if n == 0 {
			break
		}
		valid += n
	}

	c.logger.Info("clip decomposed",
		"name", c.name,
		"frames", len(c.frames),
		"bytes", len(c.frames)*bufLen,
		"frame_size", c.frameSize,
		"overlap", c.overlap,
	)
	return nil
}

// appendFrame converts the first valid bytes of buf into a frame, padding
// the rest with silence.
func (c *Clip) appendFrame(buf []byte, valid int) error {
	if valid < len(buf) {
		c.logger.Warn("padding short frame",
			"read", valid,
			"want", len(buf),
			"frame", len(c.frames),
		)
		clear(buf[valid:])
	}

	samples := make([]float64, c.frameSize)
	for i := range samples {
		v := int16(binary.BigEndian.Uint16(buf[2*i:]))
		samples[i] = float64(v) / c.scale
	}

	f, err := frame.New(samples, c.coeffs)
	if err != nil {
		return fmt.Errorf("clip: frame %d: %w", len(c.frames), err)
	}
	c.frames = append(c.frames, f)

	c.logger.Debug("frame read", "frame", len(c.frames)-1, "bytes", valid)
	return nil
}

// readFull reads until buf is full or r is exhausted. Running out of input is
// not an error; the byte count tells the caller how much arrived.
func readFull(r io.Reader, buf []byte) (int, error) {
	n, err := io.ReadFull(r, buf)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return n, nil
	}
	if err != nil {
		return n, fmt.Errorf("%w", err)
	}
	return n, nil
}

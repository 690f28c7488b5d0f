// SPDX-License-Identifier: EPL-2.0

package clip

import "fmt"

// SubClip builds a new clip from frameCount frames of c starting at
// startFrame, using a different frame size and overlap. The range is played
// back and decomposed again, so the result shares no frames with c and edits
// to either clip never reach the other.
//
// The new clip keeps the spectral scale, window and logger of c. Invalid
// frame size or overlap values are returned as errors. A range reaching past
// the end of c plays back as silence there, so the result may be shorter than
// asked for or silent.
func (c *Clip) SubClip(startFrame, frameCount, newFrameSize, newOverlap int) (*Clip, error) {
	opts := []Option{
		WithFrameSize(newFrameSize),
		WithOverlap(newOverlap),
		WithSpectralScale(c.scale),
		WithWindow(c.window),
		WithLogger(c.logger),
	}

	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}

	in := c.Audio(startFrame*c.frameSize, frameCount*c.frameSize)
	defer func() {
		if err := in.Close(); err != nil {
			c.logger.Warn("failed to close stream after creating sub clip", "err", err)
		}
	}()

	sub, err := New("Part of "+c.name, in, opts...)
	if err != nil {
		// in is produced from memory, it cannot fail for external reasons
		panic(fmt.Errorf("clip: unexpected I/O error during sub clip resampling: %w", err))
	}
	return sub, nil
}

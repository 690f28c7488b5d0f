// SPDX-License-Identifier: EPL-2.0

// Package ola implements the overlap-add accumulator used to turn a sequence
// of overlapping time-domain frames back into a continuous signal.
//
// The buffer is pull driven. The caller checks NeedsFrame before every pull,
// admits exactly one frame (or silence) when it reports true, and then takes
// one sample with Next:
//
//	buf := ola.New(2048, 8, ola.Gain(coeffs, 8))
//	for {
//	    if buf.NeedsFrame() {
//	        buf.AddFrame(nextFrame())
//	    }
//	    sample := buf.Next()
//	}
//
// A frame of n samples contributes to the next n output samples. With overlap
// v a new frame is requested every n/v samples, so at most v frames
// contribute to any output sample.
package ola

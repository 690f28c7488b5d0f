// SPDX-License-Identifier: EPL-2.0

// Package clip splits a PCM stream into overlapping spectral frames and
// resynthesizes the frames back into PCM with overlap-add.
//
// # Audio Format
//
// Clips read and produce mono, 16 kHz, signed 16-bit big-endian PCM. Use the
// root spectro package to normalize arbitrary audio files into this format.
//
// # Building a Clip
//
// New reads the whole stream before returning:
//
//	c, err := clip.New("voice", pcm,
//	    clip.WithFrameSize(2048),
//	    clip.WithOverlap(8),
//	)
//
// Every WithOverlap(v) frame starts frameSize/v samples after the previous
// one. The final frame is zero padded when the stream ends mid-frame.
//
// # Editing
//
// Frame returns the stored frame itself, not a copy. Changes to its spectrum
// are heard by every playback stream created or read afterwards:
//
//	f := c.Frame(10)
//	f.ScaleBin(40, 0)
//
// # Playback
//
// Audio returns a length-bounded stream of big-endian PCM:
//
//	s := c.Audio(0, c.FrameCount()*c.FrameSize())
//	defer s.Close()
//	io.Copy(w, s)
//
// Playback always starts at the beginning of the frame containing the
// requested sample; there is no offset within a frame.
//
// # Concurrency
//
// Streams never share state with each other, but nothing synchronizes frame
// edits with streams reading the same frames. Callers must not edit a frame
// while another goroutine plays it back.
package clip

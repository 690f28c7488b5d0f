// SPDX-License-Identifier: EPL-2.0

// Package spectro loads audio files into spectral clips.
//
// A clip holds a sound as a sequence of overlapping windowed FFT frames that
// can be edited in place and played back through overlap-add resynthesis.
// This package is the entry point that connects decoding to the clip:
//
//	c, err := spectro.OpenFile("speech.mp3", clip.WithOverlap(4))
//	if err != nil {
//		return err
//	}
//	c.Frame(10).ScaleBin(3, 0)
//	stream := c.Audio(0, math.MaxInt)
//	defer stream.Close()
//
// Any format in DefaultRegistry is decoded, resampled to 16 kHz, mixed to
// mono and converted to 16-bit big-endian PCM by Normalize before the clip is
// built. The subpackages can be used on their own:
//
//   - window: analysis window coefficients
//   - frame: one FFT frame and its bins
//   - ola: the overlap-add reconstruction buffer
//   - clip: decomposition, playback and sub-clips
//   - audio: resampling, mixing and PCM conversion stages
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis: decoders
package spectro

// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF WAVE files using github.com/go-audio/wav.
//
// Decoder accepts integer PCM at 16, 24 or 32 bits with any channel count and
// sample rate. Samples come out normalized to [-1, 1):
//
//	f, _ := os.Open("speech.wav")
//	src, err := wav.Decoder{}.Decode(f)
//
// go-audio needs to seek, so inputs without a Seek method are read into
// memory first.
//
// Two writers produce mono 16-bit files. Encode streams big-endian PCM into
// an io.WriteSeeker and lets go-audio patch the header sizes on close, which
// suits the output of a clip. WriteWAV16 takes the samples up front and
// writes a canonical 44-byte header, so it also works on pipes.
package wav

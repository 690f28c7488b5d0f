// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

const chunkSamples = 8192

// Encode writes a mono 16-bit WAV to w from pcm, a stream of big-endian signed
// 16-bit samples, until pcm reports io.EOF. A trailing odd byte is dropped.
// It returns the number of samples written.
func Encode(w io.WriteSeeker, sampleRate int, pcm io.Reader) (int, error) {
	if sampleRate <= 0 {
		return 0, ErrInvalidSampleRate
	}

	enc := gowav.NewEncoder(w, sampleRate, 16, 1, formatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, 0, chunkSamples),
		SourceBitDepth: 16,
	}
	raw := make([]byte, 2*chunkSamples)

	total := 0
	for {
		n, err := io.ReadFull(pcm, raw)
		buf.Data = buf.Data[:n/2]
		for i := range buf.Data {
			buf.Data[i] = int(int16(binary.BigEndian.Uint16(raw[2*i:])))
		}
		if len(buf.Data) > 0 {
			if werr := enc.Write(buf); werr != nil {
				return total, fmt.Errorf("wav: writing samples: %w", werr)
			}
			total += len(buf.Data)
		}

		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return total, fmt.Errorf("wav: reading pcm: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return total, fmt.Errorf("wav: finishing file: %w", err)
	}
	return total, nil
}

// WriteWAV16 writes a complete mono 16-bit WAV to w. Unlike Encode it does not
// need to seek, so it works on pipes.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	dataSize := uint32(2 * len(samples))
	header := make([]byte, 44)
	copy(header[0:], "RIFF")
	binary.LittleEndian.PutUint32(header[4:], 36+dataSize)
	copy(header[8:], "WAVEfmt ")
	binary.LittleEndian.PutUint32(header[16:], 16)
	binary.LittleEndian.PutUint16(header[20:], formatPCM)
	binary.LittleEndian.PutUint16(header[22:], 1)
	binary.LittleEndian.PutUint32(header[24:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:], uint32(sampleRate)*2)
	binary.LittleEndian.PutUint16(header[32:], 2)
	binary.LittleEndian.PutUint16(header[34:], 16)
	copy(header[36:], "data")
	binary.LittleEndian.PutUint32(header[40:], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	buf := make([]byte, 2*min(len(samples), chunkSamples))
	for len(samples) > 0 {
		chunk := samples[:min(len(samples), chunkSamples)]
		samples = samples[len(chunk):]

		out := buf[:2*len(chunk)]
		for i, s := range chunk {
			binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
		}
		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}

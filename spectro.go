// SPDX-License-Identifier: EPL-2.0

package spectro

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/spectro/audio"
	"github.com/ik5/spectro/clip"
	"github.com/ik5/spectro/formats/aiff"
	"github.com/ik5/spectro/formats/mp3"
	"github.com/ik5/spectro/formats/vorbis"
	"github.com/ik5/spectro/formats/wav"
)

// ErrUnsupportedFormat is returned when no decoder is registered for a file.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// DefaultRegistry returns a registry with every decoder in formats/.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aifc", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	return r
}

// Normalize converts src to the PCM a clip is built from: mono, 16 kHz,
// signed 16-bit big-endian. Closing the result closes src.
func Normalize(src audio.Source) (io.ReadCloser, error) {
	resampled, err := audio.NewResampler(src, clip.PCM.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	pcm, err := audio.NewPCMReader(audio.NewMonoMixer(resampled), binary.BigEndian)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	return pcm, nil
}

// Decode builds a clip from an encoded stream using the decoder registered
// for format.
func Decode(reg *audio.Registry, format, name string, r io.Reader, opts ...clip.Option) (*clip.Clip, error) {
	dec, ok := reg.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}

	pcm, err := Normalize(src)
	if err != nil {
		_ = src.Close()
		return nil, err
	}
	defer pcm.Close()

	return clip.New(name, pcm, opts...)
}

// OpenFile decodes the file at path into a clip named by its absolute path.
// The decoder is chosen by file extension from DefaultRegistry.
func OpenFile(path string, opts ...clip.Option) (*clip.Clip, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	ext := filepath.Ext(abs)
	if len(ext) < 2 {
		return nil, fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, abs)
	}

	reg := DefaultRegistry()
	if _, ok := reg.ForPath(abs); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext[1:])
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	return Decode(reg, ext[1:], abs, f, opts...)
}

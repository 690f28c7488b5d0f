// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"slices"
	"sync"
	"testing"

	"github.com/ik5/spectro/internal/audiotest"
)

type stubDecoder struct{ name string }

func (stubDecoder) Decode(io.Reader) (Source, error) { return nil, errors.New("stub") }

// drain reads src to io.EOF in chunks of size samples.
func drain(t *testing.T, src Source, size int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, size)
	for range 1 << 20 {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples: %v", err)
		}
	}
	t.Fatal("source never reached EOF")
	return nil
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("WAV", stubDecoder{"wav"})
	r.Register("mp3", stubDecoder{"mp3"})
	r.Register("ogg", stubDecoder{"ogg"})

	tests := []struct {
		name   string
		lookup func() (Decoder, bool)
		want   string
	}{
		{name: "exact", lookup: func() (Decoder, bool) { return r.Get("mp3") }, want: "mp3"},
		{name: "case insensitive", lookup: func() (Decoder, bool) { return r.Get("Wav") }, want: "wav"},
		{name: "missing", lookup: func() (Decoder, bool) { return r.Get("flac") }},
		{name: "path extension", lookup: func() (Decoder, bool) { return r.ForPath("/tmp/Song.OGG") }, want: "ogg"},
		{name: "path without extension", lookup: func() (Decoder, bool) { return r.ForPath("/tmp/song") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, ok := tt.lookup()
			if ok != (tt.want != "") {
				t.Fatalf("found = %v, want %v", ok, tt.want != "")
			}
			if ok && d.(stubDecoder).name != tt.want {
				t.Errorf("got decoder %q, want %q", d.(stubDecoder).name, tt.want)
			}
		})
	}

	if got, want := r.Formats(), []string{"mp3", "ogg", "wav"}; !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestRegistryReplace(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("wav", stubDecoder{"old"})
	r.Register("wav", stubDecoder{"new"})

	d, _ := r.Get("wav")
	if d.(stubDecoder).name != "new" {
		t.Errorf("Register did not replace the decoder")
	}
	if n := len(r.Formats()); n != 1 {
		t.Errorf("len(Formats()) = %d, want 1", n)
	}
}

func TestRegistryConcurrent(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := string(rune('a' + i))
			r.Register(name, stubDecoder{name})
			r.Get(name)
			r.Formats()
		}()
	}
	wg.Wait()

	if n := len(r.Formats()); n != 8 {
		t.Errorf("len(Formats()) = %d, want 8", n)
	}
}

func TestMonoMixer(t *testing.T) {
	t.Parallel()

	t.Run("averages channels", func(t *testing.T) {
		t.Parallel()

		src := audiotest.Ramp(8000, 2, 100, 0.01)
		m := NewMonoMixer(src)
		if m.Channels() != 1 || m.SampleRate() != 8000 {
			t.Fatalf("got %d ch @ %d Hz", m.Channels(), m.SampleRate())
		}

		got := drain(t, m, 33)
		if len(got) != 100 {
			t.Fatalf("got %d samples, want 100", len(got))
		}
		for i, v := range got {
			want := (float32(i)*0.01 + 1 + float32(i)*0.01) / 2
			if d := v - want; d > 1e-6 || d < -1e-6 {
				t.Fatalf("sample %d = %v, want %v", i, v, want)
			}
		}
	})

	t.Run("mono passes through", func(t *testing.T) {
		t.Parallel()

		got := drain(t, NewMonoMixer(audiotest.Constant(8000, 1, 50, 0.25)), 16)
		if len(got) != 50 {
			t.Fatalf("got %d samples, want 50", len(got))
		}
		for i, v := range got {
			if v != 0.25 {
				t.Fatalf("sample %d = %v, want 0.25", i, v)
			}
		}
	})

	t.Run("empty dst", func(t *testing.T) {
		t.Parallel()

		n, err := NewMonoMixer(audiotest.Silence(8000, 2, 10)).ReadSamples(nil)
		if n != 0 || err != nil {
			t.Errorf("ReadSamples(nil) = %d, %v", n, err)
		}
	})

	t.Run("close reaches source", func(t *testing.T) {
		t.Parallel()

		src := audiotest.Silence(8000, 2, 10)
		if err := NewMonoMixer(src).Close(); err != nil {
			t.Fatal(err)
		}
		if src.Closed != 1 {
			t.Errorf("source closed %d times, want 1", src.Closed)
		}
	})
}

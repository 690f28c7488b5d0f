// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/spectro"
	"github.com/ik5/spectro/formats/wav"
)

// run executes the command tree with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func input(t *testing.T, samples int) string {
	t.Helper()

	pcm := make([]int16, samples)
	for i := range pcm {
		pcm[i] = int16((i % 32) * 1000)
	}
	var buf bytes.Buffer
	if err := wav.WriteWAV16(&buf, 16000, pcm); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "in.wav")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func field(t *testing.T, out, key string) string {
	t.Helper()

	for _, line := range strings.Split(out, "\n") {
		if rest, ok := strings.CutPrefix(line, key+":"); ok {
			return strings.TrimSpace(rest)
		}
	}
	t.Fatalf("no %q line in output:\n%s", key, out)
	return ""
}

func countSamples(t *testing.T, data []byte) int {
	t.Helper()

	src, err := wav.Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	buf := make([]float32, 256)
	for {
		m, err := src.ReadSamples(buf)
		n += m
		if err == io.EOF {
			return n
		}
		if err != nil {
			t.Fatal(err)
		}
	}
}

func TestInfo(t *testing.T) {
	t.Parallel()

	in := input(t, 64)
	out, err := run(t, "info", "--frame-size", "16", "--overlap", "2", "--window", "hann", in)
	if err != nil {
		t.Fatal(err)
	}

	tests := map[string]string{
		"name":           in,
		"frames":         "7",
		"frame size":     "16",
		"frequency bins": "8",
		"overlap":        "2",
		"window":         "hann",
		"duration":       "4ms",
	}
	for key, want := range tests {
		if got := field(t, out, key); got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
}

func TestInfoConfigFile(t *testing.T) {
	t.Parallel()

	cfg := filepath.Join(t.TempDir(), "spectro.yaml")
	if err := os.WriteFile(cfg, []byte("clip:\n  frame_size: 32\n  overlap: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	// the flag wins over the file
	out, err := run(t, "--config", cfg, "--overlap", "8", "info", input(t, 64))
	if err != nil {
		t.Fatal(err)
	}
	if got := field(t, out, "frame size"); got != "32" {
		t.Errorf("frame size = %q, want 32", got)
	}
	if got := field(t, out, "overlap"); got != "8" {
		t.Errorf("overlap = %q, want 8", got)
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	dst := filepath.Join(t.TempDir(), "out.wav")
	if _, err := run(t, "render", "--frame-size", "16", "--overlap", "2", input(t, 64), dst); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	// 7 frames plus one silent hop to drain, 8 samples per hop
	if n := countSamples(t, data); n != 64 {
		t.Errorf("rendered %d samples, want 64", n)
	}
}

func TestRenderStdout(t *testing.T) {
	t.Parallel()

	out, err := run(t, "render", "--frame-size", "16", "--overlap", "2", "--length", "20", input(t, 64), "-")
	if err != nil {
		t.Fatal(err)
	}
	if n := countSamples(t, []byte(out)); n != 20 {
		t.Errorf("rendered %d samples, want 20", n)
	}
}

func TestSubclip(t *testing.T) {
	t.Parallel()

	dst := filepath.Join(t.TempDir(), "part.wav")
	_, err := run(t, "subclip",
		"--frame-size", "16", "--overlap", "2",
		"--start-frame", "0", "--frames", "4",
		"--new-frame-size", "32", "--new-overlap", "4",
		input(t, 64), dst,
	)
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	// 64 samples re-decomposed into 5 frames, drained after 3 more hops
	if n := countSamples(t, data); n != 64 {
		t.Errorf("rendered %d samples, want 64", n)
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	in := input(t, 64)
	flac := filepath.Join(t.TempDir(), "in.flac")

	tests := []struct {
		name string
		args []string
		is   error
		msg  string
	}{
		{name: "bad overlap", args: []string{"info", "--overlap", "3", in}, msg: "clip.overlap"},
		{name: "bad window", args: []string{"info", "--window", "kaiser", in}, msg: "clip.window"},
		{name: "bad log level", args: []string{"info", "--log-level", "loud", in}, msg: "log_level"},
		{name: "unsupported format", args: []string{"info", flac}, is: spectro.ErrUnsupportedFormat},
		{name: "missing config", args: []string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "info", in}, msg: "config: open"},
		{name: "bad sub clip overlap", args: []string{"subclip", "--new-overlap", "3", in, "x.wav"}, msg: "overlap"},
		{name: "wrong arg count", args: []string{"render", in}, msg: "accepts 2 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := run(t, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("err = %v, want %v", err, tt.is)
			}
			if tt.msg != "" && !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("err = %v, want it to mention %q", err, tt.msg)
			}
		})
	}
}

// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/spectro/clip"
	"github.com/ik5/spectro/formats/wav"
)

func (a *app) renderCommand() *cobra.Command {
	var start, length int

	cmd := &cobra.Command{
		Use:   "render <in> <out.wav>",
		Short: "Decompose a file and resynthesize it to WAV",
		Long: `Decompose a file and resynthesize it to WAV.

Playback starts at the frame containing --start and stops after --length
samples or when the clip runs out. Use - as the output to write to stdout.

Example:
  spectro render --start 16000 --length 32000 speech.mp3 two-seconds.wav`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(args[0])
			if err != nil {
				return err
			}
			return a.write(cmd, c, args[1], start, length)
		},
	}

	cmd.Flags().IntVar(&start, "start", 0, "first sample to play")
	cmd.Flags().IntVar(&length, "length", math.MaxInt32, "maximum number of samples")
	return cmd
}

// write renders c to path, or to the command's output for "-".
func (a *app) write(cmd *cobra.Command, c *clip.Clip, path string, start, length int) error {
	stream := c.Audio(start, length)
	defer stream.Close()

	rate := stream.Format().SampleRate
	if path == "-" {
		samples, err := readSamples(stream)
		if err != nil {
			return err
		}
		return wav.WriteWAV16(cmd.OutOrStdout(), rate, samples)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer f.Close()

	n, err := wav.Encode(f, rate, stream)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	a.logger.Info("rendered", "output", path, "samples", n, "declared", stream.Len())
	return nil
}

// readSamples collects a big-endian PCM stream.
func readSamples(r io.Reader) ([]int16, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	samples := make([]int16, len(data)/2)
	for i := range samples {
		samples[i] = int16(uint16(data[2*i])<<8 | uint16(data[2*i+1]))
	}
	return samples, nil
}

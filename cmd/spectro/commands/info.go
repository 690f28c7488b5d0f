// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/spectro/clip"
)

func (a *app) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Print the frame layout of a decomposed file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "name:\t%s\n", c.Name())
			fmt.Fprintf(w, "frames:\t%d\n", c.FrameCount())
			fmt.Fprintf(w, "frame size:\t%d\n", c.FrameSize())
			fmt.Fprintf(w, "frequency bins:\t%d\n", c.FrequencySamples())
			fmt.Fprintf(w, "overlap:\t%d\n", c.Overlap())
			fmt.Fprintf(w, "spectral scale:\t%g\n", c.SpectralScale())
			fmt.Fprintf(w, "window:\t%s\n", c.Window().Name())
			fmt.Fprintf(w, "duration:\t%s\n", duration(c))
			return w.Flush()
		},
	}
}

// duration estimates the playing time from the hop count.
func duration(c *clip.Clip) time.Duration {
	if c.FrameCount() == 0 {
		return 0
	}
	samples := (c.FrameCount()-1)*c.FrameSize()/c.Overlap() + c.FrameSize()
	return time.Duration(samples) * time.Second / time.Duration(c.SampleRate())
}

// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"math"

	"github.com/spf13/cobra"
)

func (a *app) subclipCommand() *cobra.Command {
	var startFrame, frames, newFrameSize, newOverlap int

	cmd := &cobra.Command{
		Use:   "subclip <in> <out.wav>",
		Short: "Re-decompose a range of frames with new parameters",
		Long: `Re-decompose a range of frames with a new frame size and overlap and
render the result to WAV.

The source is decomposed with the global settings first. --new-frame-size
and --new-overlap default to those settings.

Example:
  spectro subclip --start-frame 100 --frames 50 --new-frame-size 4096 in.wav part.wav`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(args[0])
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("new-frame-size") {
				newFrameSize = c.FrameSize()
			}
			if !cmd.Flags().Changed("new-overlap") {
				newOverlap = c.Overlap()
			}

			sub, err := c.SubClip(startFrame, frames, newFrameSize, newOverlap)
			if err != nil {
				return err
			}
			a.logger.Debug("derived sub clip",
				"name", sub.Name(),
				"frames", sub.FrameCount(),
				"frame_size", sub.FrameSize(),
				"overlap", sub.Overlap(),
			)
			return a.write(cmd, sub, args[1], 0, math.MaxInt32)
		},
	}

	cmd.Flags().IntVar(&startFrame, "start-frame", 0, "first frame of the range")
	cmd.Flags().IntVar(&frames, "frames", 1, "number of frames in the range")
	cmd.Flags().IntVar(&newFrameSize, "new-frame-size", 0, "frame size of the new clip")
	cmd.Flags().IntVar(&newOverlap, "new-overlap", 0, "overlap of the new clip")
	return cmd
}

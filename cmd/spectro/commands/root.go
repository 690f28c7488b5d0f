// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ik5/spectro"
	"github.com/ik5/spectro/clip"
	"github.com/ik5/spectro/config"
)

// app holds the global flags and the state derived from them.
type app struct {
	cfgFile   string
	logLevel  string
	frameSize int
	overlap   int
	window    string

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand builds the spectro command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "spectro",
		Short: "Spectral clip decomposition and overlap-add resynthesis",
		Long: `spectro splits audio into overlapping windowed FFT frames and plays them
back through overlap-add.

Input files are decoded by extension (wav, aiff, mp3, ogg), resampled to
16 kHz mono 16-bit PCM and decomposed. Output is always a mono 16-bit WAV.

Examples:
  # Show the frame layout with 4x overlap
  spectro info --overlap 4 speech.mp3

  # Round trip a file through the spectral representation
  spectro render speech.wav out.wav

  # Re-decompose frames 100-199 with a larger frame size
  spectro subclip speech.wav part.wav --start-frame 100 --frames 100 --new-frame-size 4096`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "YAML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.IntVar(&a.frameSize, "frame-size", clip.DefaultFrameSize, "samples per frame (power of two)")
	flags.IntVar(&a.overlap, "overlap", clip.DefaultOverlap, "frames covering each sample")
	flags.StringVar(&a.window, "window", "vorbis", "analysis window")

	root.AddCommand(a.infoCommand())
	root.AddCommand(a.renderCommand())
	root.AddCommand(a.subclipCommand())
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// setup loads the config file and applies the flags explicitly set on the
// command line on top of it.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.cfgFile != "" {
		loaded, err := config.Load(a.cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = config.LogLevel(a.logLevel)
	}
	if flags.Changed("frame-size") {
		cfg.Clip.FrameSize = a.frameSize
	}
	if flags.Changed("overlap") {
		cfg.Clip.Overlap = a.overlap
	}
	if flags.Changed("window") {
		cfg.Clip.Window = a.window
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	return nil
}

func newLogger(w io.Writer, level config.LogLevel) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level.Level()}))
}

// open decomposes the file at path with the configured clip settings.
func (a *app) open(path string) (*clip.Clip, error) {
	opts := append(a.cfg.ClipOptions(), clip.WithLogger(a.logger))
	c, err := spectro.OpenFile(path, opts...)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("opened clip", "name", c.Name(), "frames", c.FrameCount())
	return c, nil
}

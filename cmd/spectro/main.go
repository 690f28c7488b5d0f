// SPDX-License-Identifier: EPL-2.0

// Command spectro decomposes audio files into spectral clips and renders them
// back to WAV.
//
// Usage:
//
//	spectro [flags] <command> [args]
//
// Commands:
//
//	info     - print the frame layout of a decomposed file
//	render   - decompose a file and resynthesize it to WAV
//	subclip  - re-decompose a range of frames with new parameters
package main

import (
	"fmt"
	"os"

	"github.com/ik5/spectro/cmd/spectro/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

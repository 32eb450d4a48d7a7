// Package twcmd implements the timewalker CLI: cobra commands wiring
// scenario execution, replay, and rendering together.
package twcmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command with all subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "timewalker",
		Short: "Capture and replay PTY sessions",
		Long:  "timewalker scripts a PTY-backed command, records its raw output, and replays the capture through a VT emulator to produce correlated terminal snapshots.",
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newReplayCmd(),
		newRenderCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

package twcmd

import (
	"encoding/json"
	"path/filepath"

	"github.com/spf13/cobra"

	"timewalker/internal/correlate"
	"timewalker/internal/keyframe"
	"timewalker/internal/twconfig"
	"timewalker/internal/vtreplay"
)

// replayFrame is one keyframe's correlated screen state, the shape printed
// by the replay command.
type replayFrame struct {
	Label     string                `json:"label"`
	Offset    int                   `json:"offset"`
	TextLines []string              `json:"text_lines,omitempty"`
	State     *vtreplay.ScreenState `json:"state,omitempty"`
}

type replayOutput struct {
	Frames   []replayFrame           `json:"frames"`
	Warnings []vtreplay.ParseWarning `json:"warnings"`
}

func newReplayCmd() *cobra.Command {
	var rows, cols int

	cmd := &cobra.Command{
		Use:   "replay <run-output-dir>",
		Short: "Replay a previously captured ansi.bin through the VT engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			ansiPath := filepath.Join(dir, "ansi.bin")
			keyframePath := filepath.Join(dir, "keyframes.json")

			frames, err := keyframe.Load(keyframePath)
			if err != nil {
				return err
			}

			parser := vtreplay.NewParser(vtreplay.Options{
				Rows:         rows,
				Cols:         cols,
				Capabilities: normalizeCapabilities(),
				ChunkSize:    defaultChunkSize(),
			})
			replay, err := parser.Parse(ansiPath)
			if err != nil {
				return err
			}

			resolved := correlate.Correlate(replay.States, frames)

			result := replayOutput{Warnings: replay.Warnings}
			for _, frame := range frames {
				entry := replayFrame{Label: frame.Label, Offset: frame.Offset}
				if state, ok := resolved[frame.Label]; ok {
					st := state
					entry.State = &st
					entry.TextLines = state.TextLines()
				}
				result.Frames = append(result.Frames, entry)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 24, "VT engine rows")
	cmd.Flags().IntVar(&cols, "cols", 80, "VT engine cols")
	return cmd
}

package twcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"timewalker/internal/correlate"
	"timewalker/internal/keyframe"
	"timewalker/internal/render"
	"timewalker/internal/twconfig"
	"timewalker/internal/twerr"
	"timewalker/internal/vtreplay"
)

func newRenderCmd() *cobra.Command {
	var rows, cols int
	var format, out, title string

	cmd := &cobra.Command{
		Use:   "render <run-output-dir> <keyframe-label>",
		Short: "Render one correlated keyframe to HTML or PNG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, label := args[0], args[1]
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
			state, ok := resolved[label]
			if !ok {
				return fmt.Errorf("render: %w: no keyframe labeled %q", twerr.ErrInvalidArgument, label)
			}

			if out == "" {
				out = label + "." + format
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create output file: %w: %v", twerr.ErrIO, err)
			}
			defer f.Close()

			switch format {
			case "html":
				palette := defaultPaletteForTerminal()
				if cfg, err := twconfig.Load(); err == nil && len(cfg.Palette) > 0 {
					palette = cfg.Palette
				}
				renderer := render.NewHTMLRenderer(palette)
				if err := renderer.Render(f, state, title); err != nil {
					return err
				}
			case "png":
				renderer := render.NewPNGRenderer(render.PNGOptions{})
				if err := renderer.Render(f, state); err != nil {
					return err
				}
			default:
				return fmt.Errorf("render: %w: unsupported format %q", twerr.ErrInvalidArgument, format)
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 24, "VT engine rows")
	cmd.Flags().IntVar(&cols, "cols", 80, "VT engine cols")
	cmd.Flags().StringVar(&format, "format", "html", "output format: html or png")
	cmd.Flags().StringVar(&out, "out", "", "output file path (default: <label>.<format>)")
	cmd.Flags().StringVar(&title, "title", "", "HTML document title")
	return cmd
}

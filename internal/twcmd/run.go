package twcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"timewalker/internal/orchestrator"
	"timewalker/internal/runlock"
	"timewalker/internal/scenario"
)

func newRunCmd() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "run <scenario.json>",
		Short: "Execute a scenario against a fresh PTY session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenario.LoadFile(args[0])
			if err != nil {
				return err
			}

			planned, err := scenario.BuildScriptConfig(sc, outputDir)
			if err != nil {
				return err
			}

			lock, err := runlock.Acquire(planned.Config.OutputDir)
			if err != nil {
				return err
			}
			defer lock.Release()

			orch := orchestrator.New(nil)
			orch.Capabilities = normalizeCapabilities()
			result, err := orch.Run(sc, outputDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "run id:      %s\n", result.Artifacts.RunID)
			fmt.Fprintf(out, "output dir:  %s\n", planned.Config.OutputDir)
			fmt.Fprintf(out, "ansi log:    %s\n", result.Artifacts.AnsiPath)
			if result.Artifacts.ExitStatus != nil {
				fmt.Fprintf(out, "exit status: %d\n", *result.Artifacts.ExitStatus)
			}
			if result.Artifacts.Signal != nil {
				fmt.Fprintf(out, "signal:      %d\n", *result.Artifacts.Signal)
			}
			fmt.Fprintf(out, "keyframes:   %d\n", len(result.Artifacts.Keyframes))
			return nil
		},
	}

	cmd.Flags().StringVar(&outputDir, "output-dir", "", "override the scenario's output directory")
	return cmd
}

package twcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"timewalker/internal/twversion"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the timewalker version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), twversion.Display())
			return nil
		},
	}
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/inlay/internal/domain"
)

// resetCmd represents the reset command.
var resetCmd = newResetCmd()
var resetExcludeFlags []string
var resetParallelFlag int

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset [paths...]",
		Short: "Restore the base code of every variation",
		Long: `Restore the base body of every variation in the given paths (default ./...).
Each file is handled on its own: a file that fails to parse is reported and
the others are still reset.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Reset(cmd.Context(), domain.ResetArgs{
				ScanArgs: scanArgs(args, resetExcludeFlags, resetParallelFlag),
			})
		},
	}
	addScanFlags(cmd, &resetExcludeFlags, &resetParallelFlag)

	return cmd
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

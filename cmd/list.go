package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/inlay/internal/controller"
	"github.com/mouse-blink/inlay/internal/domain"
)

const listLongDescription = `List every variation found in the given paths (default ./...).

Each variation is shown with its location, name, active variant, declared
variants and tags. Files that fail to parse are reported and skipped.`

// listCmd represents the list command.
var listCmd = newListCmd()
var listExcludeFlags []string
var listParallelFlag int
var listFormatFlag string

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List variations and their active variants",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := controller.ParseFormat(listFormatFlag)
			if err != nil {
				return err
			}

			return workflow.List(cmd.Context(), domain.ListArgs{
				ScanArgs: scanArgs(args, listExcludeFlags, listParallelFlag),
				Format:   format,
			})
		},
	}
	addScanFlags(cmd, &listExcludeFlags, &listParallelFlag)
	cmd.Flags().StringVarP(&listFormatFlag, "format", "f", string(controller.FormatTable), "output format: table or plain")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}

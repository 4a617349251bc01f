package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/inlay/internal/domain"
)

// unsetCmd represents the unset command.
var unsetCmd = newUnsetCmd()
var unsetVariationFlag string
var unsetAtFlag string
var unsetExcludeFlags []string
var unsetParallelFlag int

func newUnsetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unset [paths...]",
		Short: "Restore the base code of one variation",
		Long: `Restore the base body of the variation picked by --variation or --at,
commenting out whichever variant is active.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if unsetVariationFlag == "" && unsetAtFlag == "" {
				return errors.New("one of --variation or --at is required")
			}

			sel, err := parseSelector(unsetVariationFlag, unsetAtFlag)
			if err != nil {
				return err
			}

			return workflow.Unset(cmd.Context(), domain.UnsetArgs{
				ScanArgs: scanArgs(args, unsetExcludeFlags, unsetParallelFlag),
				Selector: sel,
			})
		},
	}
	addSelectorFlags(cmd, &unsetVariationFlag, &unsetAtFlag)
	addScanFlags(cmd, &unsetExcludeFlags, &unsetParallelFlag)

	return cmd
}

func init() {
	rootCmd.AddCommand(unsetCmd)
}

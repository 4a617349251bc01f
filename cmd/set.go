package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/inlay/internal/domain"
)

const setLongDescription = `Make <variant> the live code of one variation.

The variation is picked by --variation (its name), by --at (file:line of any
line inside it), or, when neither is given, by being the only variation that
declares <variant>. Exactly one variation must match.`

// setCmd represents the set command.
var setCmd = newSetCmd()
var setVariationFlag string
var setAtFlag string
var setExcludeFlags []string
var setParallelFlag int

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <variant> [paths...]",
		Short: "Activate a variant",
		Long:  setLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := parseSelector(setVariationFlag, setAtFlag)
			if err != nil {
				return err
			}

			return workflow.Set(cmd.Context(), domain.SetArgs{
				ScanArgs: scanArgs(args[1:], setExcludeFlags, setParallelFlag),
				Variant:  args[0],
				Selector: sel,
			})
		},
	}
	addSelectorFlags(cmd, &setVariationFlag, &setAtFlag)
	addScanFlags(cmd, &setExcludeFlags, &setParallelFlag)

	return cmd
}

func addSelectorFlags(cmd *cobra.Command, variation, at *string) {
	cmd.Flags().StringVarP(variation, "variation", "v", "", "name of the variation")
	cmd.Flags().StringVarP(at, "at", "a", "", "location of the variation as file:line")
}

func init() {
	rootCmd.AddCommand(setCmd)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/inlay/internal/adapter"
	"github.com/mouse-blink/inlay/internal/domain"
	m "github.com/mouse-blink/inlay/internal/model"
)

// initCmd represents the init command.
var initCmd = newInitCmd()
var initLanguageFlag string

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create an " + adapter.ConfigFileName + " project file",
		Long: `Create an ` + adapter.ConfigFileName + ` in dir (default: the working directory)
that restricts scanning to the files of one language. An existing file is
never overwritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir m.Path
			if len(args) == 1 {
				dir = m.Path(args[0])
			}

			return workflow.Init(cmd.Context(), domain.InitArgs{
				Dir:      dir,
				Language: initLanguageFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&initLanguageFlag, "language", "l", "", "language of the project (e.g. coq, rust, python)")
	_ = cmd.MarkFlagRequired("language")

	return cmd
}

func init() {
	rootCmd.AddCommand(initCmd)
}

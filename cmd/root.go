// Package cmd provides the root command and CLI setup for inlay.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/inlay/internal/adapter"
	"github.com/mouse-blink/inlay/internal/controller"
	"github.com/mouse-blink/inlay/internal/domain"
	"github.com/mouse-blink/inlay/internal/domain/syntax"
	"github.com/mouse-blink/inlay/internal/logger"
	m "github.com/mouse-blink/inlay/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var configAdapter adapter.ConfigAdapter
var goFileAdapter adapter.GoFileAdapter
var grammar syntax.Grammar
var rewriter domain.Rewriter
var ui controller.UI
var workflow domain.Workflow

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	configAdapter = adapter.NewTOMLConfigAdapter()
	goFileAdapter = adapter.NewLocalGoFileAdapter()
	grammar = syntax.Default()
	rewriter = domain.NewRewriter(grammar)
	workflow = domain.NewWorkflow(
		fsAdapter,
		configAdapter,
		goFileAdapter,
		ui,
		grammar,
		rewriter,
	)
}

var verboseFlag bool
var noColorFlag bool
var configFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inlay",
		Short: "Switch between code variants embedded in comments",
		Long: `Inlay manages mutation markers: named variations written in comments
inside ordinary source files. Each variation has a base body and one or more
variants; exactly one of them is live code, the others stay commented out.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./lib file.v   scan a directory and a single file`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.SetVerbose(verboseFlag)
			logger.SetColor(!noColorFlag)
		},
	}
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "V", false, "print debug and info messages")
	cmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored log output")
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "path to "+adapter.ConfigFileName+" (default: searched upwards from the working directory)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// addScanFlags registers the flags shared by every command that reads files.
func addScanFlags(cmd *cobra.Command, exclude *[]string, parallel *int) {
	cmd.Flags().StringArrayVarP(exclude, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().IntVarP(parallel, "parallel", "p", 0, "number of files parsed concurrently (default: number of CPUs)")
}

func scanArgs(args []string, exclude []string, parallel int) domain.ScanArgs {
	return domain.ScanArgs{
		Paths:    parsePaths(args),
		Exclude:  exclude,
		Parallel: parallel,
		Config:   m.Path(configFlag),
	}
}

package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/inlay/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayVariations prints the variations as a table or one line each.
func (s *SimpleUI) DisplayVariations(summaries []m.VariationSummary, format Format) error {
	if len(summaries) == 0 {
		s.printf("No variations found\n")
		return nil
	}

	if format == FormatPlain {
		for _, summary := range summaries {
			s.printf("%s\n", summary)
		}

		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Location", "Name", "Active", "Variants", "Tags"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, summary := range summaries {
		table.Append([]string{
			summary.Location(),
			summary.Name,
			summary.Active,
			strings.Join(summary.Variants, ", "),
			strings.Join(summary.Tags, ", "),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Variations %d", len(summaries)), "", "", "", ""})
	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplayRewrite prints the summary line of a set or unset.
func (s *SimpleUI) DisplayRewrite(result m.RewriteResult) {
	s.printf("%s\n", result.Summary())
}

// DisplayReset prints the summary line of a reset.
func (s *SimpleUI) DisplayReset(result m.ResetResult) {
	s.printf("%s\n", result.Summary())
}

// DisplayInit prints the location of a newly created project file.
func (s *SimpleUI) DisplayInit(path m.Path) {
	s.printf("project initialized at '%s'\n", path)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

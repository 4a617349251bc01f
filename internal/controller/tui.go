package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/inlay/internal/model"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	activeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayVariations prints short listings directly and opens a scrollable,
// filterable list when they do not fit the terminal. The plain format always
// prints one line per variation.
func (t *TUI) DisplayVariations(summaries []m.VariationSummary, format Format) error {
	if format == FormatPlain {
		for _, summary := range summaries {
			_, _ = fmt.Fprintln(t.output, summary.String())
		}

		return nil
	}

	model := newListModel(summaries)

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.staticView())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayRewrite shows the summary line of a set or unset.
func (t *TUI) DisplayRewrite(result m.RewriteResult) {
	_, _ = fmt.Fprintf(t.output, "%s %s\n", successStyle.Render("✓"), result.Summary())
}

// DisplayReset shows the summary line of a reset.
func (t *TUI) DisplayReset(result m.ResetResult) {
	_, _ = fmt.Fprintf(t.output, "%s %s\n", successStyle.Render("✓"), result.Summary())

	for _, change := range result.Changes {
		_, _ = fmt.Fprintf(t.output, "  %s %s %s\n",
			mutedStyle.Render(fmt.Sprintf("line %d", change.Line)),
			nameStyle.Render(change.Variation),
			mutedStyle.Render(change.Previous+" → "+change.Active))
	}
}

// DisplayInit shows the location of a newly created project file.
func (t *TUI) DisplayInit(path m.Path) {
	_, _ = fmt.Fprintf(t.output, "%s project initialized at %s\n", successStyle.Render("✓"), pathStyle.Render(string(path)))
}

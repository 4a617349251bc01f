package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	m "github.com/mouse-blink/inlay/internal/model"
)

type tickMsg time.Time

// variationItem adapts a summary to the bubbles list.
type variationItem struct {
	summary m.VariationSummary
}

func (i variationItem) FilterValue() string {
	return i.summary.Location() + " " + i.summary.Name + " " + strings.Join(i.summary.Variants, " ") + " " + strings.Join(i.summary.Tags, " ")
}

// variationDelegate renders one variation per row.
type variationDelegate struct {
	offset int
}

func (d variationDelegate) Height() int  { return 1 }
func (d variationDelegate) Spacing() int { return 0 }
func (d variationDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d variationDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	variation, ok := item.(variationItem)
	if !ok {
		return
	}

	text := formatRow(variation.summary)
	width := lm.Width()

	if index == lm.Index() {
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		_, _ = fmt.Fprint(w, style.Render(animateScroll(text, width, d.offset)))

		return
	}

	_, _ = fmt.Fprint(w, truncateToWidth(text, width))
}

func formatRow(s m.VariationSummary) string {
	row := fmt.Sprintf("%s  %s  [%s]  %s", s.Location(), s.Name, s.Active, strings.Join(s.Variants, ", "))
	if len(s.Tags) > 0 {
		row += "  #" + strings.Join(s.Tags, " #")
	}

	return row
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if runewidth.StringWidth(text) <= width {
		return text
	}

	// Initial pause before scrolling starts (in ticks)
	pause := 5
	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + "   ")
	start := (offset - pause) % len(runes)

	window := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		window = append(window, runes[(start+i)%len(runes)])
	}

	return runewidth.Truncate(string(window), width, "")
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	return runewidth.Truncate(text, width, "…")
}

// listModel browses variations when they do not fit on one screen.
type listModel struct {
	width        int
	height       int
	summaries    []m.VariationSummary
	list         list.Model
	delegate     variationDelegate
	lastSelected int
}

func newListModel(summaries []m.VariationSummary) listModel {
	delegate := variationDelegate{}

	items := make([]list.Item, 0, len(summaries))
	for _, summary := range summaries {
		items = append(items, variationItem{summary: summary})
	}

	l := list.New(items, delegate, 80, 20)
	l.SetShowPagination(false)
	l.SetShowFilter(true)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.FilterInput.Placeholder = "Filter by name, variant or tag…"

	return listModel{
		summaries: summaries,
		list:      l,
		delegate:  delegate,
	}
}

// needsPagination reports whether the listing is taller than the terminal.
func (lm listModel) needsPagination() bool {
	if lm.height <= 0 {
		return false
	}

	return len(lm.summaries)+4 > lm.height
}

func (lm listModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (lm listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		lm.width = msg.Width
		lm.height = msg.Height
		lm.list.SetSize(max(lm.width-4, 10), max(lm.height-6, 5))

	case tickMsg:
		if lm.list.FilterState() == list.Filtering {
			return lm, nil
		}

		lm.delegate.offset++
		lm.list.SetDelegate(lm.delegate)

		return lm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || (msg.String() == "q" && lm.list.FilterState() != list.Filtering) {
			return lm, tea.Quit
		}

		lm.list, cmd = lm.list.Update(msg)

		// Restart the scroll animation when the selection moves.
		if lm.list.Index() != lm.lastSelected {
			lm.lastSelected = lm.list.Index()
			lm.delegate.offset = 0
			lm.list.SetDelegate(lm.delegate)
		}
	}

	return lm, cmd
}

func (lm listModel) View() string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2).
		Render(fmt.Sprintf("Variations (%d)", len(lm.summaries)))

	body := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Render(lm.list.View())

	footer := mutedStyle.Render("  ↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, body, footer)
}

// staticView renders every variation without interaction.
func (lm listModel) staticView() string {
	if len(lm.summaries) == 0 {
		return mutedStyle.Render("No variations found") + "\n"
	}

	var sb strings.Builder

	for _, s := range lm.summaries {
		line := fmt.Sprintf("%s %s %s %s",
			pathStyle.Render(s.Location()),
			nameStyle.Render(s.Name),
			activeStyle.Render("["+s.Active+"]"),
			strings.Join(s.Variants, ", "))
		if len(s.Tags) > 0 {
			line += " " + mutedStyle.Render("#"+strings.Join(s.Tags, " #"))
		}

		if lm.width > 0 {
			line = lipgloss.NewStyle().MaxWidth(lm.width).Render(line)
		}

		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

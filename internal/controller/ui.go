// Package controller renders listings and rewrite summaries for the inlay CLI.
package controller

import (
	"fmt"

	m "github.com/mouse-blink/inlay/internal/model"
)

// Format selects how variation listings are printed.
type Format string

// Available listing formats.
const (
	FormatTable Format = "table"
	FormatPlain Format = "plain"
)

// ParseFormat validates a --format flag value. The empty string selects the table.
func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case "", FormatTable:
		return FormatTable, nil
	case FormatPlain:
		return FormatPlain, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected %q or %q)", value, FormatTable, FormatPlain)
	}
}

// UI defines how results reach the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayVariations(summaries []m.VariationSummary, format Format) error
	DisplayRewrite(result m.RewriteResult)
	DisplayReset(result m.ResetResult)
	DisplayInit(path m.Path)
}

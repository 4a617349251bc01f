package model

import (
	"fmt"
	"strconv"
	"strings"
)

// VariationSummary describes one variation for listing.
type VariationSummary struct {
	Path     Path
	Position Position
	Name     string
	Active   string
	Variants []string
	Tags     []string
}

// Location renders the summary location as "path:line", or "line N" without a path.
func (s VariationSummary) Location() string {
	if s.Path == "" {
		return "line " + strconv.Itoa(s.Position.Line)
	}

	return fmt.Sprintf("%s:%d", s.Path, s.Position.Line)
}

// String renders the summary in the classic single-line listing format.
func (s VariationSummary) String() string {
	return fmt.Sprintf("%s (name: %s, active: %s, variants: %s, tags: %s)",
		s.Location(), s.Name, s.Active, quoteList(s.Variants), quoteList(s.Tags))
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = strconv.Quote(item)
	}

	return "[" + strings.Join(quoted, ", ") + "]"
}

// Selector picks the variation an operation targets.
type Selector struct {
	Variation string // variation name
	Path      Path   // file containing the variation
	Line      int    // any line within the variation
	Variant   string // a variant the variation declares
}

func (s Selector) String() string {
	var parts []string
	if s.Variation != "" {
		parts = append(parts, fmt.Sprintf("variation '%s'", s.Variation))
	}

	if s.Path != "" || s.Line > 0 {
		parts = append(parts, fmt.Sprintf("location '%s:%d'", s.Path, s.Line))
	}

	if s.Variant != "" {
		parts = append(parts, fmt.Sprintf("variant '%s'", s.Variant))
	}

	if len(parts) == 0 {
		return "empty selector"
	}

	return strings.Join(parts, " and ")
}

// RewriteResult reports what an activation changed.
type RewriteResult struct {
	Path      Path
	Line      int
	Variation string
	Previous  string
	Active    string
}

// Changed reports whether the active body differs from before.
func (r RewriteResult) Changed() bool {
	return r.Previous != r.Active
}

// Summary renders the one-line user message for the change.
func (r RewriteResult) Summary() string {
	if r.Active == BaseName {
		return fmt.Sprintf("active variant unset to base in '%s:%d'", r.Path, r.Line)
	}

	return fmt.Sprintf("active variant set to '%s' in '%s:%d'", r.Active, r.Path, r.Line)
}

// ResetResult reports the variations a reset moved back to base in one file.
type ResetResult struct {
	Path    Path
	Changes []RewriteResult
}

// Summary renders the one-line user message for the reset.
func (r ResetResult) Summary() string {
	return fmt.Sprintf("all variations reset to base in '%s'", r.Path)
}

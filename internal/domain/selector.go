package domain

import (
	m "github.com/mouse-blink/inlay/internal/model"
)

// candidate is a variation that a selector may resolve to.
type candidate struct {
	path      m.Path
	variation *m.Variation
}

func (c candidate) location() string {
	summary := m.VariationSummary{Path: c.path, Position: c.variation.Position}

	return summary.Location() + " (" + c.variation.DisplayName() + ")"
}

func (c candidate) matches(sel m.Selector) bool {
	if sel.Variation != "" && c.variation.Name != sel.Variation {
		return false
	}

	if sel.Path != "" && c.path != sel.Path {
		return false
	}

	if sel.Line > 0 && !c.variation.Contains(sel.Line) {
		return false
	}

	// A bare variant name picks the variation declaring it.
	if sel.Variant != "" && sel.Variation == "" && sel.Line == 0 {
		return c.variation.HasVariant(sel.Variant)
	}

	return true
}

// resolve returns the single candidate matching sel.
func resolve(candidates []candidate, sel m.Selector) (candidate, error) {
	var found []candidate

	for _, c := range candidates {
		if c.matches(sel) {
			found = append(found, c)
		}
	}

	switch len(found) {
	case 0:
		return candidate{}, &m.VariationNotFoundError{Selector: sel.String()}
	case 1:
		return found[0], nil
	default:
		locations := make([]string, 0, len(found))
		for _, c := range found {
			locations = append(locations, c.location())
		}

		return candidate{}, &m.AmbiguousVariationError{Selector: sel.String(), Candidates: locations}
	}
}

func documentCandidates(path m.Path, doc *m.Document) []candidate {
	variations := doc.Variations()
	candidates := make([]candidate, 0, len(variations))

	for _, v := range variations {
		candidates = append(candidates, candidate{path: path, variation: v})
	}

	return candidates
}

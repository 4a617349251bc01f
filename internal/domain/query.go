package domain

import (
	"slices"

	m "github.com/mouse-blink/inlay/internal/model"
)

// List summarizes the variations of doc in source order.
func List(doc *m.Document) []m.VariationSummary {
	variations := doc.Variations()
	summaries := make([]m.VariationSummary, 0, len(variations))

	for _, v := range variations {
		summaries = append(summaries, m.VariationSummary{
			Position: v.Position,
			Name:     v.DisplayName(),
			Active:   v.Active(),
			Variants: v.VariantNames(),
			Tags:     slices.Clone(v.Tags),
		})
	}

	return summaries
}

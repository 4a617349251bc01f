package domain

import (
	"fmt"

	"github.com/mouse-blink/inlay/internal/domain/syntax"
	m "github.com/mouse-blink/inlay/internal/model"
)

// Rewriter switches which body of a variation is live code. It never mutates
// the document it is given; every operation returns a rewritten copy that
// parses back to the same variations, or an error.
type Rewriter interface {
	// Activate makes variant the live body of the variation selected by sel.
	Activate(doc *m.Document, sel m.Selector, variant string) (*m.Document, m.RewriteResult, error)
	// Deactivate restores the base body of the variation selected by sel.
	Deactivate(doc *m.Document, sel m.Selector) (*m.Document, m.RewriteResult, error)
	// Reset restores the base body of every variation and reports the ones that changed.
	Reset(doc *m.Document) (*m.Document, []m.RewriteResult, error)
}

type rewriter struct {
	grammar syntax.Grammar
}

// NewRewriter creates a Rewriter that asks grammar for new comment wrappers.
func NewRewriter(grammar syntax.Grammar) Rewriter {
	return &rewriter{grammar: grammar}
}

func (r *rewriter) Activate(doc *m.Document, sel m.Selector, variant string) (*m.Document, m.RewriteResult, error) {
	out := doc.Clone()

	target, err := resolve(documentCandidates(sel.Path, out), sel)
	if err != nil {
		return nil, m.RewriteResult{}, err
	}

	v := target.variation
	if !v.HasVariant(variant) {
		return nil, m.RewriteResult{}, &m.VariantNotFoundError{
			Variant:   variant,
			Available: append([]string{m.BaseName}, v.VariantNames()...),
		}
	}

	result := m.RewriteResult{
		Path:      target.path,
		Variation: v.DisplayName(),
		Previous:  v.Active(),
		Active:    variant,
	}

	if err := r.apply(v, variant); err != nil {
		return nil, m.RewriteResult{}, err
	}

	out.Reindex()

	if err := r.verify(out, v.DisplayName()); err != nil {
		return nil, m.RewriteResult{}, err
	}

	result.Line = v.Position.Line

	return out, result, nil
}

func (r *rewriter) Deactivate(doc *m.Document, sel m.Selector) (*m.Document, m.RewriteResult, error) {
	return r.Activate(doc, sel, m.BaseName)
}

func (r *rewriter) Reset(doc *m.Document) (*m.Document, []m.RewriteResult, error) {
	out := doc.Clone()

	var (
		results []m.RewriteResult
		changed []*m.Variation
	)

	for _, v := range out.Variations() {
		previous := v.Active()
		if previous == m.BaseName {
			continue
		}

		if err := r.apply(v, m.BaseName); err != nil {
			return nil, nil, err
		}

		changed = append(changed, v)
		results = append(results, m.RewriteResult{
			Variation: v.DisplayName(),
			Previous:  previous,
			Active:    m.BaseName,
		})
	}

	if len(changed) == 0 {
		return out, nil, nil
	}

	out.Reindex()

	if err := r.verify(out, changed[0].DisplayName()); err != nil {
		return nil, nil, err
	}

	for i, v := range changed {
		results[i].Line = v.Position.Line
	}

	return out, results, nil
}

// apply leaves exactly one body of v active: the one named active.
func (r *rewriter) apply(v *m.Variation, active string) error {
	if err := r.setActive(v, m.BaseName, &v.Base, active == m.BaseName); err != nil {
		return err
	}

	for i := range v.Variants {
		variant := &v.Variants[i]
		if err := r.setActive(v, variant.Name, &variant.Body, variant.Name == active); err != nil {
			return err
		}
	}

	return nil
}

func (r *rewriter) setActive(v *m.Variation, name string, body *m.Body, active bool) error {
	if body.Active == active {
		return nil
	}

	if !active && body.Wrapper.Kind == m.WrapNone {
		wrapper, err := r.grammar.Wrap(v, name)
		if err != nil {
			return err
		}

		body.Wrapper = wrapper
	}

	body.Active = active

	return nil
}

// verify parses the rendered document again and checks that every variation
// comes back with the same bodies and the same active one. name labels a
// failure that cannot be tied to a single variation.
func (r *rewriter) verify(doc *m.Document, name string) error {
	reparsed, err := r.grammar.Parse(r.grammar.Render(doc))
	if err != nil {
		return &m.UnsafeRewriteError{Variation: name, Reason: fmt.Sprintf("the result no longer parses: %v", err)}
	}

	want, got := doc.Variations(), reparsed.Variations()
	if len(want) != len(got) {
		return &m.UnsafeRewriteError{
			Variation: name,
			Reason:    fmt.Sprintf("the result holds %d variations instead of %d", len(got), len(want)),
		}
	}

	for i := range want {
		if !sameBodies(want[i], got[i]) {
			return &m.UnsafeRewriteError{
				Variation: want[i].DisplayName(),
				Reason:    "the result does not parse back to the same bodies",
			}
		}
	}

	return nil
}

func sameBodies(a, b *m.Variation) bool {
	if a.Active() != b.Active() || a.Base.Text != b.Base.Text || len(a.Variants) != len(b.Variants) {
		return false
	}

	for i := range a.Variants {
		if a.Variants[i].Name != b.Variants[i].Name || a.Variants[i].Body.Text != b.Variants[i].Body.Text {
			return false
		}
	}

	return true
}

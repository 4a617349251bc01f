// Package syntax implements the marker grammars that turn source text into a
// document model and back.
package syntax

import (
	m "github.com/mouse-blink/inlay/internal/model"
)

// Grammar is a paired parser and serializer for one marker syntax.
// Rewrites stay grammar agnostic: they only flip body activeness and ask the
// grammar for a wrapper when a body has never been commented out.
type Grammar interface {
	// Name identifies the grammar.
	Name() string
	// Parse builds a document from raw file text.
	Parse(text string) (*m.Document, error)
	// Render serializes a document back to source text.
	Render(doc *m.Document) string
	// Wrap returns the inactive form for the body named name ("base" or a
	// variant) of v when it has no wrapper yet. It fails with an
	// UnsafeRewriteError when the body cannot be commented out.
	Wrap(v *m.Variation, name string) (m.Wrapper, error)
}

// Default returns the grammar used when none is configured.
func Default() Grammar {
	return NewCommentGrammar()
}

// Package model defines the document model for inline mutation markers.
package model

import (
	"slices"
	"strings"
)

const (
	// BaseName is the reserved name of a variation's original body.
	BaseName = "base"
	// AnonymousName is reported for variations declared without a name.
	AnonymousName = "anonymous"
)

// Position locates a construct in the source text.
type Position struct {
	Line   int // 1-based
	Offset int // byte offset of the line start
}

// WrapKind describes how an inactive body is commented out.
type WrapKind int

const (
	// WrapNone marks a body that has never been commented out.
	WrapNone WrapKind = iota
	// WrapBlock is the multi-line form: an opener line, verbatim lines, a closer line.
	WrapBlock
	// WrapInline is the single-line form: opener, code and closer on one line.
	WrapInline
)

// Wrapper is the comment form used to render a body while it is inactive.
//
// A wrapper only exists for a body that was parsed inactive or that a rewrite
// commented out. Once a body is live on disk it has none, so commenting it out
// again after a re-parse synthesizes a block wrapper: a variant first written
// in the inline form comes back as a block.
type Wrapper struct {
	Kind WrapKind
	// Head is the whole opener line for WrapBlock, or the text preceding the
	// code (indent, opener, padding) for WrapInline.
	Head string
	// Tail is the whole closer line for WrapBlock, or the text following the
	// code up to the line ending for WrapInline.
	Tail string
	// Indent and EOL are only used by WrapInline.
	Indent string
	EOL    string
}

// Body is the code of the base or of a variant.
type Body struct {
	// Text is the body as live code: whole lines including line endings.
	Text    string
	Active  bool
	Wrapper Wrapper
}

// Render returns the body as it appears in the file.
func (b Body) Render() string {
	if b.Active || b.Wrapper.Kind == WrapNone {
		return b.Text
	}

	if b.Wrapper.Kind == WrapInline {
		code := strings.TrimSuffix(b.Text, b.Wrapper.EOL)
		code = strings.TrimPrefix(code, b.Wrapper.Indent)

		return b.Wrapper.Head + code + b.Wrapper.Tail + b.Wrapper.EOL
	}

	return b.Wrapper.Head + b.Text + b.Wrapper.Tail
}

// Variant is one named alternative of a variation.
type Variant struct {
	Name   string
	Tags   []string
	Header string // raw header line
	Body   Body
}

// Variation is a marked region holding a base body and its variants.
type Variation struct {
	Name       string // empty for anonymous variations
	Tags       []string
	Position   Position
	Style      Style
	Header     string // raw header line
	Base       Body
	Variants   []Variant
	Terminator string // raw terminator line
}

// DisplayName returns the variation name or "anonymous".
func (v *Variation) DisplayName() string {
	if v.Name == "" {
		return AnonymousName
	}

	return v.Name
}

// Active returns the name of the body that is currently live code.
func (v *Variation) Active() string {
	if v.Base.Active {
		return BaseName
	}

	for _, variant := range v.Variants {
		if variant.Body.Active {
			return variant.Name
		}
	}

	return ""
}

// ActiveCount returns how many bodies are live code.
func (v *Variation) ActiveCount() int {
	count := 0
	if v.Base.Active {
		count++
	}

	for _, variant := range v.Variants {
		if variant.Body.Active {
			count++
		}
	}

	return count
}

// VariantNames returns the variant names in declaration order.
func (v *Variation) VariantNames() []string {
	names := make([]string, 0, len(v.Variants))
	for _, variant := range v.Variants {
		names = append(names, variant.Name)
	}

	return names
}

// HasVariant reports whether name is "base" or one of the declared variants.
func (v *Variation) HasVariant(name string) bool {
	return name == BaseName || slices.Contains(v.VariantNames(), name)
}

// Render returns the exact source text of the variation.
func (v *Variation) Render() string {
	var sb strings.Builder

	sb.WriteString(v.Header)
	sb.WriteString(v.Base.Render())

	for _, variant := range v.Variants {
		sb.WriteString(variant.Header)
		sb.WriteString(variant.Body.Render())
	}

	sb.WriteString(v.Terminator)

	return sb.String()
}

// LineCount returns the number of lines the rendered variation spans.
func (v *Variation) LineCount() int {
	return countLines(v.Render())
}

// Contains reports whether line falls within the variation's span.
func (v *Variation) Contains(line int) bool {
	return line >= v.Position.Line && line < v.Position.Line+v.LineCount()
}

// Clone returns a deep copy of the variation.
func (v *Variation) Clone() *Variation {
	c := *v
	c.Tags = slices.Clone(v.Tags)
	c.Variants = make([]Variant, len(v.Variants))

	for i, variant := range v.Variants {
		variant.Tags = slices.Clone(variant.Tags)
		c.Variants[i] = variant
	}

	return &c
}

// Segment is either opaque text or a variation.
type Segment struct {
	Text      string
	Variation *Variation
}

// IsVariation reports whether the segment holds a variation.
func (s Segment) IsVariation() bool {
	return s.Variation != nil
}

// Render returns the exact source text of the segment.
func (s Segment) Render() string {
	if s.Variation != nil {
		return s.Variation.Render()
	}

	return s.Text
}

// Document is a parsed source file.
type Document struct {
	Segments []Segment
}

// Variations returns the document's variations in source order.
func (d *Document) Variations() []*Variation {
	var variations []*Variation

	for _, segment := range d.Segments {
		if segment.Variation != nil {
			variations = append(variations, segment.Variation)
		}
	}

	return variations
}

// Render concatenates all segments back into source text.
func (d *Document) Render() string {
	var sb strings.Builder
	for _, segment := range d.Segments {
		sb.WriteString(segment.Render())
	}

	return sb.String()
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	c := &Document{Segments: make([]Segment, len(d.Segments))}

	for i, segment := range d.Segments {
		if segment.Variation != nil {
			segment.Variation = segment.Variation.Clone()
		}

		c.Segments[i] = segment
	}

	return c
}

// Reindex recomputes variation positions from the current segment texts.
func (d *Document) Reindex() {
	line, offset := 1, 0

	for _, segment := range d.Segments {
		text := segment.Render()
		if segment.Variation != nil {
			segment.Variation.Position = Position{Line: line, Offset: offset}
		}

		line += strings.Count(text, "\n")
		offset += len(text)
	}
}

func countLines(text string) int {
	n := strings.Count(text, "\n")
	if text != "" && !strings.HasSuffix(text, "\n") {
		n++
	}

	return n
}

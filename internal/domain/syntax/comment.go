package syntax

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/inlay/internal/model"
)

const commentGrammarName = "comment"

// CommentGrammar is the line-anchored comment marker syntax:
//
//	(*! name [tag] *)
//	base code
//	(*!! variant *)
//	(*!
//	variant code
//	*)
//	(* !*)
//
// Every marker sits on its own line and may use any supported delimiter pair
// and mode character.
type CommentGrammar struct{}

// NewCommentGrammar constructs a CommentGrammar.
func NewCommentGrammar() *CommentGrammar {
	return &CommentGrammar{}
}

// Name identifies the grammar.
func (g *CommentGrammar) Name() string {
	return commentGrammarName
}

// Parse splits text into plain segments and variations.
func (g *CommentGrammar) Parse(text string) (*m.Document, error) {
	p := &commentParser{lines: splitLines(text)}

	return p.parse()
}

// Render serializes doc byte for byte.
func (g *CommentGrammar) Render(doc *m.Document) string {
	return doc.Render()
}

// Wrap builds a block comment around the named body using the variation's
// style. The comment lines take the indentation and line ending of the marker
// line that owns the body, so wrapping restores the layout the file was
// written with even when the code itself is not indented.
func (g *CommentGrammar) Wrap(v *m.Variation, name string) (m.Wrapper, error) {
	header, body, ok := ownedBody(v, name)
	if !ok {
		return m.Wrapper{}, &m.VariantNotFoundError{
			Variant:   name,
			Available: append([]string{m.BaseName}, v.VariantNames()...),
		}
	}

	if reason := uncommentable(v.Style, body.Text); reason != "" {
		return m.Wrapper{}, &m.UnsafeRewriteError{Variation: v.DisplayName(), Body: name, Reason: reason}
	}

	l := newLine(header, 0, 0)

	eol := l.eol
	if eol == "" {
		eol = "\n"
	}

	return m.Wrapper{
		Kind: m.WrapBlock,
		Head: l.indent + v.Style.BodyOpen() + eol,
		Tail: l.indent + v.Style.Close() + eol,
	}, nil
}

// ownedBody returns the body named name and the header line introducing it.
func ownedBody(v *m.Variation, name string) (string, m.Body, bool) {
	if name == m.BaseName {
		return v.Header, v.Base, true
	}

	for _, variant := range v.Variants {
		if variant.Name == name {
			return variant.Header, variant.Body, true
		}
	}

	return "", m.Body{}, false
}

// uncommentable explains why text cannot sit inside a comment of style, or
// returns "" when it can.
func uncommentable(style m.Style, text string) string {
	if !style.Delimiter.Nests() {
		if strings.Contains(text, style.Close()) {
			return fmt.Sprintf("body contains '%s'", style.Close())
		}

		return ""
	}

	depth := 0

	for _, l := range splitLines(text) {
		var ok bool
		if depth, ok = nest(style.Delimiter, l.content, depth); !ok {
			return fmt.Sprintf("body closes a '%s' comment it never opened", style.Delimiter.Open())
		}
	}

	if depth != 0 {
		return fmt.Sprintf("body leaves a '%s' comment open", style.Delimiter.Open())
	}

	return ""
}

// nest applies the comment openers and closers of content to depth. It
// reports false when a closer has no matching opener.
func nest(d m.Delimiter, content string, depth int) (int, bool) {
	open, closing := d.Open(), d.Close()

	for i := 0; i < len(content); {
		switch {
		case strings.HasPrefix(content[i:], open):
			depth++
			i += len(open)
		case strings.HasPrefix(content[i:], closing):
			depth--
			if depth < 0 {
				return 0, false
			}

			i += len(closing)
		default:
			i++
		}
	}

	return depth, true
}

type commentParser struct {
	lines []line
	pos   int
}

func (p *commentParser) eof() bool {
	return p.pos >= len(p.lines)
}

func (p *commentParser) current() line {
	return p.lines[p.pos]
}

func (p *commentParser) parse() (*m.Document, error) {
	doc := &m.Document{}

	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			doc.Segments = append(doc.Segments, m.Segment{Text: plain.String()})
			plain.Reset()
		}
	}

	for !p.eof() {
		l := p.current()

		if style, lbl, ok := matchVariationHeader(l.content); ok {
			flush()

			variation, err := p.parseVariation(style, lbl)
			if err != nil {
				return nil, err
			}

			doc.Segments = append(doc.Segments, m.Segment{Variation: variation})

			continue
		}

		if _, ok := matchVariantPrefix(l.content); ok {
			return nil, syntaxErrorAt(l, "variation header before variant header")
		}

		if _, ok := matchTerminator(l.content); ok {
			return nil, syntaxErrorAt(l, "variation header before variation terminator")
		}

		plain.WriteString(l.raw)
		p.pos++
	}

	flush()

	return doc, nil
}

func (p *commentParser) parseVariation(style m.Style, lbl label) (*m.Variation, error) {
	header := p.current()
	p.pos++

	v := &m.Variation{
		Name:     lbl.name,
		Tags:     lbl.tags,
		Position: m.Position{Line: header.number, Offset: header.offset},
		Style:    style,
		Header:   header.raw,
	}

	base, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	v.Base = base

	seen := make(map[string]struct{})

	for {
		if p.eof() {
			return nil, &m.SyntaxError{
				Position: v.Position,
				Expected: fmt.Sprintf("terminator for variation '%s'", v.DisplayName()),
			}
		}

		l := p.current()

		if _, ok := matchTerminator(l.content); ok {
			if len(v.Variants) == 0 {
				return nil, syntaxErrorAt(l, fmt.Sprintf("at least one variant in variation '%s'", v.DisplayName()))
			}

			v.Terminator = l.raw
			p.pos++

			break
		}

		variantStyle, ok := matchVariantPrefix(l.content)
		if !ok {
			return nil, syntaxErrorAt(l, "variant header or variation terminator")
		}

		variant, err := p.parseVariant(l, variantStyle)
		if err != nil {
			return nil, err
		}

		if _, dup := seen[variant.Name]; dup {
			return nil, &m.DuplicateVariantError{
				Variation: v.DisplayName(),
				Name:      variant.Name,
				Position:  m.Position{Line: l.number, Offset: l.offset},
			}
		}

		seen[variant.Name] = struct{}{}
		v.Variants = append(v.Variants, variant)
	}

	if count := v.ActiveCount(); count != 1 {
		return nil, &m.MalformedVariationError{
			Variation:   v.DisplayName(),
			Position:    v.Position,
			ActiveCount: count,
		}
	}

	return v, nil
}

func (p *commentParser) parseVariant(header line, style m.Style) (m.Variant, error) {
	inner, ok := cutMarker(header.content, style.VariantOpen(), style.Close())
	if !ok {
		return m.Variant{}, syntaxErrorAt(header, fmt.Sprintf("'%s' closing the variant header", style.Close()))
	}

	lbl, ok := parseLabel(inner)
	if !ok || lbl.name == "" {
		return m.Variant{}, syntaxErrorAt(header, "variant identifier")
	}

	if lbl.name == m.BaseName {
		return m.Variant{}, syntaxErrorAt(header, "variant name other than the reserved 'base'")
	}

	p.pos++

	body, err := p.parseBody()
	if err != nil {
		return m.Variant{}, err
	}

	return m.Variant{Name: lbl.name, Tags: lbl.tags, Header: header.raw, Body: body}, nil
}

// parseBody reads an inactive block, an inactive inline comment or bare lines.
func (p *commentParser) parseBody() (m.Body, error) {
	if p.eof() {
		return m.Body{Active: true}, nil
	}

	l := p.current()

	if style, ok := matchBlockOpen(l.content); ok {
		return p.parseBlock(l, style)
	}

	if style, ok := matchInline(l.content); ok {
		p.pos++

		return inlineBody(l, style), nil
	}

	var text strings.Builder

	for !p.eof() {
		l := p.current()
		if _, ok := matchVariantPrefix(l.content); ok {
			break
		}

		if _, ok := matchTerminator(l.content); ok {
			break
		}

		text.WriteString(l.raw)
		p.pos++
	}

	return m.Body{Text: text.String(), Active: true}, nil
}

func (p *commentParser) parseBlock(opener line, style m.Style) (m.Body, error) {
	p.pos++

	var text strings.Builder

	// Languages with nesting comments may hold balanced inner comments, whose
	// closing lines do not end the block.
	depth := 0

	for !p.eof() {
		l := p.current()
		p.pos++

		if depth == 0 && l.content == style.Close() {
			return m.Body{
				Text:    text.String(),
				Wrapper: m.Wrapper{Kind: m.WrapBlock, Head: opener.raw, Tail: l.raw},
			}, nil
		}

		if style.Delimiter.Nests() {
			depth, _ = nest(style.Delimiter, l.content, depth)
		}

		text.WriteString(l.raw)
	}

	return m.Body{}, syntaxErrorAt(opener, fmt.Sprintf("'%s' closing the comment opened here", style.Close()))
}

func inlineBody(l line, style m.Style) m.Body {
	inner, _ := cutMarker(l.content, style.BodyOpen(), style.Close())
	lead := inner[:len(inner)-len(strings.TrimLeft(inner, " \t"))]
	code := strings.TrimRight(inner[len(lead):], " \t")

	return m.Body{
		Text: l.indent + code + l.eol,
		Wrapper: m.Wrapper{
			Kind:   m.WrapInline,
			Head:   l.indent + style.BodyOpen() + lead,
			Tail:   inner[len(lead)+len(code):] + style.Close() + l.trail,
			Indent: l.indent,
			EOL:    l.eol,
		},
	}
}

func syntaxErrorAt(l line, expected string) *m.SyntaxError {
	return &m.SyntaxError{Position: m.Position{Line: l.number, Offset: l.offset}, Expected: expected}
}

// cutMarker strips open and close from content, requiring both to be present
// without overlapping.
func cutMarker(content, open, closing string) (string, bool) {
	if len(content) < len(open)+len(closing) {
		return "", false
	}

	if !strings.HasPrefix(content, open) || !strings.HasSuffix(content, closing) {
		return "", false
	}

	return content[len(open) : len(content)-len(closing)], true
}

func eachStyle(fn func(style m.Style) bool) (m.Style, bool) {
	for _, delimiter := range m.Delimiters {
		for _, mode := range m.Modes {
			style := m.Style{Delimiter: delimiter, Mode: mode}
			if fn(style) {
				return style, true
			}
		}
	}

	return m.Style{}, false
}

func matchVariationHeader(content string) (m.Style, label, bool) {
	var lbl label

	style, ok := eachStyle(func(style m.Style) bool {
		if strings.HasPrefix(content, style.VariantOpen()) {
			return false
		}

		inner, ok := cutMarker(content, style.BodyOpen(), style.Close())
		if !ok {
			return false
		}

		lbl, ok = parseLabel(inner)

		return ok
	})

	return style, lbl, ok
}

func matchVariantPrefix(content string) (m.Style, bool) {
	return eachStyle(func(style m.Style) bool {
		return strings.HasPrefix(content, style.VariantOpen())
	})
}

func matchTerminator(content string) (m.Style, bool) {
	return eachStyle(func(style m.Style) bool {
		inner, ok := cutMarker(content, style.Delimiter.Open(), string(style.Mode)+style.Close())
		if !ok || inner == "" {
			return false
		}

		return strings.TrimSpace(inner) == ""
	})
}

func matchBlockOpen(content string) (m.Style, bool) {
	return eachStyle(func(style m.Style) bool {
		return content == style.BodyOpen()
	})
}

func matchInline(content string) (m.Style, bool) {
	return eachStyle(func(style m.Style) bool {
		if strings.HasPrefix(content, style.VariantOpen()) {
			return false
		}

		_, ok := cutMarker(content, style.BodyOpen(), style.Close())

		return ok
	})
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testVariation() *Variation {
	return &Variation{
		Name:   "v",
		Tags:   []string{"t"},
		Header: "(*! v [t] *)\n",
		Style:  Style{Delimiter: DelimiterML, Mode: ModeBang},
		Base:   Body{Text: "x\n", Active: true},
		Variants: []Variant{{
			Name:   "y",
			Header: "(*!! y *)\n",
			Body: Body{
				Text:    "  y\n",
				Wrapper: Wrapper{Kind: WrapInline, Head: "  (*! ", Tail: " *)", Indent: "  ", EOL: "\n"},
			},
		}},
		Terminator: "(* !*)\n",
	}
}

func TestBody_Render(t *testing.T) {
	inline := Body{
		Text:    "  y\n",
		Wrapper: Wrapper{Kind: WrapInline, Head: "  (*! ", Tail: " *)", Indent: "  ", EOL: "\n"},
	}
	assert.Equal(t, "  (*! y *)\n", inline.Render())

	inline.Active = true
	assert.Equal(t, "  y\n", inline.Render())

	block := Body{Text: "x\n", Wrapper: Wrapper{Kind: WrapBlock, Head: "(*!\n", Tail: "*)\n"}}
	assert.Equal(t, "(*!\nx\n*)\n", block.Render())
}

func TestVariation_Accessors(t *testing.T) {
	v := testVariation()

	assert.Equal(t, "v", v.DisplayName())
	assert.Equal(t, BaseName, v.Active())
	assert.Equal(t, 1, v.ActiveCount())
	assert.Equal(t, []string{"y"}, v.VariantNames())
	assert.True(t, v.HasVariant("y"))
	assert.True(t, v.HasVariant(BaseName))
	assert.False(t, v.HasVariant("z"))
	assert.Equal(t, "(*! v [t] *)\nx\n(*!! y *)\n  (*! y *)\n(* !*)\n", v.Render())
	assert.Equal(t, 5, v.LineCount())

	v.Name = ""
	assert.Equal(t, AnonymousName, v.DisplayName())
}

func TestVariation_CloneIsDeep(t *testing.T) {
	v := testVariation()
	c := v.Clone()

	c.Tags[0] = "changed"
	c.Variants[0].Body.Active = true
	c.Base.Active = false

	assert.Equal(t, "t", v.Tags[0])
	assert.Equal(t, BaseName, v.Active())
	assert.Equal(t, "y", c.Active())
}

func TestDocument_ReindexAndRender(t *testing.T) {
	doc := &Document{Segments: []Segment{
		{Text: "a\nb\n"},
		{Variation: testVariation()},
		{Text: "c\n"},
		{Variation: testVariation()},
	}}

	doc.Reindex()

	variations := doc.Variations()
	assert.Len(t, variations, 2)
	assert.Equal(t, Position{Line: 3, Offset: 4}, variations[0].Position)
	assert.Equal(t, 9, variations[1].Position.Line)
	assert.True(t, variations[0].Contains(7))
	assert.False(t, variations[0].Contains(8))

	clone := doc.Clone()
	clone.Variations()[0].Base.Active = false
	clone.Variations()[0].Variants[0].Body.Active = true

	assert.Equal(t, BaseName, doc.Variations()[0].Active())
	assert.NotEqual(t, doc.Render(), clone.Render())
}

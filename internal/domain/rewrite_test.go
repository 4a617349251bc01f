package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/inlay/internal/domain/syntax"
	m "github.com/mouse-blink/inlay/internal/model"
)

const coqSource = `Definition add (a b : nat) : nat :=
  (*! add_variation [arith] *)
  a + b
  (*!! add_mutation_1 *)
  (*!
  a - b
  *)
  (*!! add_mutation_2 *)
  (*!
  a * b
  *)
  (* !*)
`

const coqMutation1 = `Definition add (a b : nat) : nat :=
  (*! add_variation [arith] *)
  (*!
  a + b
  *)
  (*!! add_mutation_1 *)
  a - b
  (*!! add_mutation_2 *)
  (*!
  a * b
  *)
  (* !*)
`

const twoVariations = `(*! first *)
x
(*!! one *)
(*! 1 *)
(* !*)
middle
(*! second [slow] *)
y
(*!! one *)
(*! 1 *)
(*!! two *)
(*! 2 *)
(* !*)
`

func parse(t *testing.T, source string) *m.Document {
	t.Helper()

	doc, err := syntax.NewCommentGrammar().Parse(source)
	require.NoError(t, err)

	return doc
}

func newTestRewriter() Rewriter {
	return NewRewriter(syntax.NewCommentGrammar())
}

func TestRewriter_Activate(t *testing.T) {
	doc := parse(t, coqSource)

	out, result, err := newTestRewriter().Activate(doc, m.Selector{Variation: "add_variation"}, "add_mutation_1")
	require.NoError(t, err)

	assert.Equal(t, coqMutation1, out.Render())
	assert.Equal(t, m.RewriteResult{
		Line:      2,
		Variation: "add_variation",
		Previous:  m.BaseName,
		Active:    "add_mutation_1",
	}, result)
	assert.True(t, result.Changed())

	// The input document is left untouched.
	assert.Equal(t, coqSource, doc.Render())

	// The output parses back to the same state.
	reparsed := parse(t, out.Render())
	assert.Equal(t, "add_mutation_1", reparsed.Variations()[0].Active())
}

func TestRewriter_Deactivate(t *testing.T) {
	rewriter := newTestRewriter()
	sel := m.Selector{Variation: "add_variation"}

	t.Run("in memory", func(t *testing.T) {
		activated, _, err := rewriter.Activate(parse(t, coqSource), sel, "add_mutation_1")
		require.NoError(t, err)

		restored, result, err := rewriter.Deactivate(activated, sel)
		require.NoError(t, err)

		assert.Equal(t, coqSource, restored.Render())
		assert.Equal(t, "add_mutation_1", result.Previous)
		assert.Equal(t, m.BaseName, result.Active)
	})

	t.Run("after reparsing", func(t *testing.T) {
		restored, _, err := rewriter.Deactivate(parse(t, coqMutation1), sel)
		require.NoError(t, err)

		assert.Equal(t, coqSource, restored.Render())
	})
}

func TestRewriter_Idempotent(t *testing.T) {
	rewriter := newTestRewriter()
	sel := m.Selector{Variation: "add_variation"}

	once, _, err := rewriter.Activate(parse(t, coqSource), sel, "add_mutation_2")
	require.NoError(t, err)

	twice, result, err := rewriter.Activate(once, sel, "add_mutation_2")
	require.NoError(t, err)

	assert.Equal(t, once.Render(), twice.Render())
	assert.False(t, result.Changed())

	unchanged, result, err := rewriter.Deactivate(parse(t, coqSource), sel)
	require.NoError(t, err)
	assert.Equal(t, coqSource, unchanged.Render())
	assert.False(t, result.Changed())
}

func TestRewriter_SwitchBetweenVariants(t *testing.T) {
	rewriter := newTestRewriter()
	sel := m.Selector{Variation: "add_variation"}

	first, _, err := rewriter.Activate(parse(t, coqSource), sel, "add_mutation_1")
	require.NoError(t, err)

	second, result, err := rewriter.Activate(first, sel, "add_mutation_2")
	require.NoError(t, err)

	assert.Equal(t, "add_mutation_1", result.Previous)

	v := second.Variations()[0]
	assert.Equal(t, "add_mutation_2", v.Active())
	assert.Equal(t, 1, v.ActiveCount())

	back, _, err := rewriter.Deactivate(second, sel)
	require.NoError(t, err)
	assert.Equal(t, coqSource, back.Render())
}

func TestRewriter_ActivateErrors(t *testing.T) {
	rewriter := newTestRewriter()
	doc := parse(t, twoVariations)

	t.Run("unknown variant", func(t *testing.T) {
		_, _, err := rewriter.Activate(doc, m.Selector{Variation: "first"}, "two")
		require.Error(t, err)
		assert.ErrorIs(t, err, m.ErrVariantNotFound)

		var notFound *m.VariantNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, []string{m.BaseName, "one"}, notFound.Available)
		assert.Equal(t, "variant 'two' not found, available variants: [base, one]", err.Error())
	})

	t.Run("unknown variation", func(t *testing.T) {
		_, _, err := rewriter.Activate(doc, m.Selector{Variation: "third"}, "one")
		assert.ErrorIs(t, err, m.ErrVariationNotFound)
	})

	t.Run("line outside every variation", func(t *testing.T) {
		_, _, err := rewriter.Activate(doc, m.Selector{Line: 6}, "one")
		assert.ErrorIs(t, err, m.ErrVariationNotFound)
	})

	t.Run("variant declared twice across variations", func(t *testing.T) {
		_, _, err := rewriter.Activate(doc, m.Selector{Variant: "one"}, "one")
		assert.ErrorIs(t, err, m.ErrAmbiguousVariation)

		var ambiguous *m.AmbiguousVariationError
		require.ErrorAs(t, err, &ambiguous)
		assert.Equal(t, []string{"line 1 (first)", "line 7 (second)"}, ambiguous.Candidates)
	})
}

func TestRewriter_SelectByLine(t *testing.T) {
	doc := parse(t, twoVariations)

	out, result, err := newTestRewriter().Activate(doc, m.Selector{Line: 11}, "two")
	require.NoError(t, err)

	assert.Equal(t, "second", result.Variation)
	assert.Equal(t, 7, result.Line)

	variations := out.Variations()
	assert.Equal(t, m.BaseName, variations[0].Active())
	assert.Equal(t, "two", variations[1].Active())
	assert.Equal(t, []string{"slow"}, variations[1].Tags)
}

func TestRewriter_SelectByVariant(t *testing.T) {
	doc := parse(t, twoVariations)

	out, result, err := newTestRewriter().Activate(doc, m.Selector{Variant: "two"}, "two")
	require.NoError(t, err)

	assert.Equal(t, "second", result.Variation)
	assert.Equal(t, "two", out.Variations()[1].Active())
}

func TestRewriter_PositionsFollowRewrites(t *testing.T) {
	rewriter := newTestRewriter()

	out, _, err := rewriter.Activate(parse(t, twoVariations), m.Selector{Variation: "first"}, "one")
	require.NoError(t, err)

	// The first variation grew by two lines once its base got wrapped.
	variations := out.Variations()
	assert.Equal(t, 1, variations[0].Position.Line)
	assert.Equal(t, 9, variations[1].Position.Line)

	_, result, err := rewriter.Activate(out, m.Selector{Line: 10}, "two")
	require.NoError(t, err)
	assert.Equal(t, "second", result.Variation)
	assert.Equal(t, 9, result.Line)
}

func TestRewriter_Reset(t *testing.T) {
	rewriter := newTestRewriter()
	doc := parse(t, twoVariations)

	doc, _, err := rewriter.Activate(doc, m.Selector{Variation: "first"}, "one")
	require.NoError(t, err)

	doc, _, err = rewriter.Activate(doc, m.Selector{Variation: "second"}, "two")
	require.NoError(t, err)

	reset, results, err := rewriter.Reset(doc)
	require.NoError(t, err)

	assert.Equal(t, twoVariations, reset.Render())
	assert.Equal(t, []m.RewriteResult{
		{Line: 1, Variation: "first", Previous: "one", Active: m.BaseName},
		{Line: 7, Variation: "second", Previous: "two", Active: m.BaseName},
	}, results)

	for _, v := range reset.Variations() {
		assert.Equal(t, m.BaseName, v.Active())
	}

	again, results, err := rewriter.Reset(reset)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, twoVariations, again.Render())
}

func TestRewriter_SingleVariantVariation(t *testing.T) {
	source := "(*! *)\nx\n(*!! only *)\n(*! y *)\n(* !*)\n"
	rewriter := newTestRewriter()

	out, result, err := rewriter.Activate(parse(t, source), m.Selector{Variant: "only"}, "only")
	require.NoError(t, err)

	assert.Equal(t, m.AnonymousName, result.Variation)
	assert.Equal(t, "(*! *)\n(*!\nx\n*)\n(*!! only *)\ny\n(* !*)\n", out.Render())

	back, _, err := rewriter.Deactivate(out, m.Selector{Line: 1})
	require.NoError(t, err)
	assert.Equal(t, source, back.Render())
}

const limboSource = `fn rewrite(expr: &mut ast::Expr) {
    match expr {
        ast::Expr::Id(id) => {
            if id.0.eq_ignore_ascii_case("true") {
                /*| encode_true_as_false */
                *expr = ast::Expr::Literal(ast::Literal::Numeric(1.to_string()));
                /*|| encode_false */
                /*|
*expr = ast::Expr::Literal(ast::Literal::Numeric(0.to_string()));
                */
                /* |*/
            }
        }
        _ => {}
    }
}
`

const bstSource = `def insert(k: int, v: int, t: BST) -> BST:
    match t:
        case E():
            return _node(E(), k, v, E())
        case T(k2, v2, l, r):
            """! insert """
            if k < k2:
                return _node(insert(k, v, l), k2, v2, r)
            elif k2 < k:
                return _node(l, k2, v2, insert(k, v, r))
            else:
                return _node(l, k2, v, r)
            """!! insert_1 """
            """!
            return _node(E(), k, v, E())
            """
            """!! insert_2 """
            """!
            if k < k2:
                return _node(insert(k, v, l), k2, v2, r)
            else:
                return _node(l, k2, v, r)
            """
            """ !"""
`

func TestRewriter_RoundTripThroughFiles(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		variation string
		variant   string
		activated string
	}{
		{
			name:      "markers indented deeper than the code",
			source:    limboSource,
			variation: "encode_true_as_false",
			variant:   "encode_false",
			activated: "                /*| encode_true_as_false */\n" +
				"                /*|\n" +
				"                *expr = ast::Expr::Literal(ast::Literal::Numeric(1.to_string()));\n" +
				"                */\n" +
				"                /*|| encode_false */\n" +
				"*expr = ast::Expr::Literal(ast::Literal::Numeric(0.to_string()));\n" +
				"                /* |*/\n",
		},
		{
			name:      "python docstrings",
			source:    bstSource,
			variation: "insert",
			variant:   "insert_2",
			activated: "            \"\"\"! insert \"\"\"\n" +
				"            \"\"\"!\n" +
				"            if k < k2:\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rewriter := newTestRewriter()

			// Every step goes through text, the way the CLI reads and writes files.
			on, _, err := rewriter.Activate(parse(t, tt.source), m.Selector{Variation: tt.variation}, tt.variant)
			require.NoError(t, err)

			written := on.Render()
			assert.Contains(t, written, tt.activated)

			reread := parse(t, written)
			assert.Equal(t, tt.variant, reread.Variations()[0].Active())

			off, _, err := rewriter.Deactivate(reread, m.Selector{Variation: tt.variation})
			require.NoError(t, err)
			assert.Equal(t, tt.source, off.Render())

			again, _, err := rewriter.Activate(parse(t, off.Render()), m.Selector{Variation: tt.variation}, tt.variant)
			require.NoError(t, err)
			assert.Equal(t, written, again.Render())
		})
	}
}

func TestRewriter_InlineVariantComesBackAsBlock(t *testing.T) {
	source := "(*! v *)\nx\n(*!! y *)\n(*! y_code *)\n(* !*)\n"
	rewriter := newTestRewriter()

	on, _, err := rewriter.Activate(parse(t, source), m.Selector{Variation: "v"}, "y")
	require.NoError(t, err)
	assert.Equal(t, "(*! v *)\n(*!\nx\n*)\n(*!! y *)\ny_code\n(* !*)\n", on.Render())

	off, _, err := rewriter.Deactivate(parse(t, on.Render()), m.Selector{Variation: "v"})
	require.NoError(t, err)
	assert.Equal(t, "(*! v *)\nx\n(*!! y *)\n(*!\ny_code\n*)\n(* !*)\n", off.Render())

	// The block form is stable from then on.
	reparsed := parse(t, off.Render())
	assert.Equal(t, "y_code\n", reparsed.Variations()[0].Variants[0].Body.Text)
	assert.Equal(t, m.WrapBlock, reparsed.Variations()[0].Variants[0].Body.Wrapper.Kind)
}

func TestRewriter_NestedCommentsInBodies(t *testing.T) {
	source := "(*! v *)\n(* helper\n*)\nx\n(*!! m *)\n(*!\ny\n*)\n(* !*)\n"
	rewriter := newTestRewriter()

	on, _, err := rewriter.Activate(parse(t, source), m.Selector{Variation: "v"}, "m")
	require.NoError(t, err)
	assert.Equal(t, "(*! v *)\n(*!\n(* helper\n*)\nx\n*)\n(*!! m *)\ny\n(* !*)\n", on.Render())

	reread := parse(t, on.Render())
	assert.Equal(t, "(* helper\n*)\nx\n", reread.Variations()[0].Base.Text)

	off, _, err := rewriter.Deactivate(reread, m.Selector{Variation: "v"})
	require.NoError(t, err)
	assert.Equal(t, source, off.Render())
}

func TestRewriter_RefusesBodiesThatCannotBeCommentedOut(t *testing.T) {
	source := "/*! v */\n/** Doc comment. */\nint x;\n/*!! m */\n/*!\nint y;\n*/\n/* !*/\n"
	doc := parse(t, source)

	out, _, err := newTestRewriter().Activate(doc, m.Selector{Variation: "v"}, "m")
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, m.ErrUnsafeRewrite)
	assert.Equal(t, "cannot comment out 'base' in variation 'v': body contains '*/'", err.Error())

	assert.Equal(t, source, doc.Render())
	assert.Equal(t, m.BaseName, doc.Variations()[0].Active())
}

// garblingGrammar renders documents as text that does not parse back.
type garblingGrammar struct {
	syntax.Grammar
}

func (garblingGrammar) Render(*m.Document) string {
	return "(*! v *)\n"
}

func TestRewriter_VerifiesTheRenderedResult(t *testing.T) {
	rewriter := NewRewriter(garblingGrammar{Grammar: syntax.NewCommentGrammar()})

	_, _, err := rewriter.Activate(parse(t, coqSource), m.Selector{Variation: "add_variation"}, "add_mutation_1")
	require.Error(t, err)
	assert.ErrorIs(t, err, m.ErrUnsafeRewrite)
	assert.Contains(t, err.Error(), "the result no longer parses")

	doc, _, err := newTestRewriter().Activate(parse(t, coqSource), m.Selector{Variation: "add_variation"}, "add_mutation_1")
	require.NoError(t, err)

	_, results, err := rewriter.Reset(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, m.ErrUnsafeRewrite)
	assert.Empty(t, results)
}

func TestList(t *testing.T) {
	t.Run("reports every variation", func(t *testing.T) {
		summaries := List(parse(t, coqSource))

		require.Len(t, summaries, 1)
		assert.Equal(t, m.VariationSummary{
			Position: m.Position{Line: 2, Offset: len("Definition add (a b : nat) : nat :=\n")},
			Name:     "add_variation",
			Active:   m.BaseName,
			Variants: []string{"add_mutation_1", "add_mutation_2"},
			Tags:     []string{"arith"},
		}, summaries[0])
		assert.Equal(t,
			`line 2 (name: add_variation, active: base, variants: ["add_mutation_1", "add_mutation_2"], tags: ["arith"])`,
			summaries[0].String())
	})

	t.Run("no markers", func(t *testing.T) {
		source := "Definition x := 1.\n"
		doc := parse(t, source)

		assert.Empty(t, List(doc))
		assert.Equal(t, source, doc.Render())
	})

	t.Run("anonymous variation", func(t *testing.T) {
		summaries := List(parse(t, "(*! *)\nx\n(*!! y *)\n(*! z *)\n(* !*)\n"))

		require.Len(t, summaries, 1)
		assert.Equal(t, m.AnonymousName, summaries[0].Name)
		assert.Nil(t, summaries[0].Tags)
	})
}

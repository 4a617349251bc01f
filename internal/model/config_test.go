package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupLanguage(t *testing.T) {
	lang, ok := LookupLanguage(" OCaml ", nil)
	assert.True(t, ok)
	assert.Equal(t, []string{"ml", "mli"}, lang.Extensions)

	custom := []Language{{Name: "coq", Extensions: []string{"vo"}}}
	lang, ok = LookupLanguage("coq", custom)
	assert.True(t, ok)
	assert.Equal(t, []string{"vo"}, lang.Extensions, "custom entries shadow built-ins")

	_, ok = LookupLanguage("cobol", nil)
	assert.False(t, ok)
}

func TestProjectConfig_Matches(t *testing.T) {
	all := ProjectConfig{}
	assert.True(t, all.Matches("a.v"))
	assert.True(t, all.Matches("lib.RS"))
	assert.False(t, all.Matches("README.md"))
	assert.False(t, all.Matches("Makefile"))

	coq := ProjectConfig{
		Languages:       []string{"coq", "lean"},
		CustomLanguages: []Language{{Name: "lean", Extensions: []string{".lean"}}},
	}
	assert.True(t, coq.Matches("theories/Add.v"))
	assert.True(t, coq.Matches("Basic.lean"))
	assert.False(t, coq.Matches("lib.rs"))
}

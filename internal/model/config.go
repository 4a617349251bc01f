package model

import (
	"path/filepath"
	"slices"
	"strings"
)

// Language maps a language name to the file extensions scanned for markers.
type Language struct {
	Name       string   `toml:"name"`
	Extensions []string `toml:"extensions"`
}

// BuiltinLanguages are available without configuration.
var BuiltinLanguages = []Language{
	{Name: "coq", Extensions: []string{"v"}},
	{Name: "ocaml", Extensions: []string{"ml", "mli"}},
	{Name: "haskell", Extensions: []string{"hs"}},
	{Name: "racket", Extensions: []string{"rkt"}},
	{Name: "rust", Extensions: []string{"rs"}},
	{Name: "python", Extensions: []string{"py"}},
	{Name: "go", Extensions: []string{"go"}},
	{Name: "c", Extensions: []string{"c", "h"}},
	{Name: "cpp", Extensions: []string{"cc", "cpp", "hpp"}},
	{Name: "java", Extensions: []string{"java"}},
	{Name: "javascript", Extensions: []string{"js", "ts"}},
}

// LookupLanguage finds a language by name among the built-ins and custom entries.
func LookupLanguage(name string, custom []Language) (Language, bool) {
	name = strings.ToLower(strings.TrimSpace(name))

	for _, lang := range append(slices.Clone(custom), BuiltinLanguages...) {
		if strings.ToLower(lang.Name) == name {
			return lang, true
		}
	}

	return Language{}, false
}

// ProjectConfig is the content of an inlay.toml project file.
type ProjectConfig struct {
	Languages       []string   `toml:"languages"`
	CustomLanguages []Language `toml:"custom_languages"`
	Ignore          []string   `toml:"ignore"`
	Parallel        int        `toml:"parallel,omitempty"`
}

// Extensions returns the set of file extensions (without dot) to scan.
// An empty Languages list selects every built-in and custom language.
func (c ProjectConfig) Extensions() map[string]struct{} {
	var langs []Language

	if len(c.Languages) == 0 {
		langs = append(slices.Clone(BuiltinLanguages), c.CustomLanguages...)
	} else {
		for _, name := range c.Languages {
			if lang, ok := LookupLanguage(name, c.CustomLanguages); ok {
				langs = append(langs, lang)
			}
		}
	}

	exts := make(map[string]struct{})

	for _, lang := range langs {
		for _, ext := range lang.Extensions {
			exts[strings.TrimPrefix(strings.ToLower(ext), ".")] = struct{}{}
		}
	}

	return exts
}

// Matches reports whether path has one of the configured extensions.
func (c ProjectConfig) Matches(path Path) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(string(path))), ".")
	if ext == "" {
		return false
	}

	_, ok := c.Extensions()[ext]

	return ok
}

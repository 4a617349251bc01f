package adapter

import (
	"go/parser"
	"go/token"
	"path/filepath"

	m "github.com/mouse-blink/inlay/internal/model"
)

// GoFileAdapter checks that rewritten Go sources still parse, so activating a
// variant that breaks the file can be reported right away.
type GoFileAdapter interface {
	// Supports reports whether path is a Go source file.
	Supports(path m.Path) bool
	// Check parses src and returns the first syntax error, if any.
	Check(path m.Path, src []byte) error
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser.
type LocalGoFileAdapter struct{}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter.
func NewLocalGoFileAdapter() *LocalGoFileAdapter {
	return &LocalGoFileAdapter{}
}

// Supports reports whether path has a .go extension.
func (a *LocalGoFileAdapter) Supports(path m.Path) bool {
	return filepath.Ext(string(path)) == ".go"
}

// Check parses src without resolving imports.
func (a *LocalGoFileAdapter) Check(path m.Path, src []byte) error {
	_, err := parser.ParseFile(token.NewFileSet(), string(path), src, parser.ParseComments)

	return err
}

package model

import (
	"errors"
	"fmt"
	"strings"
)

// Error categories. Every typed error below matches one of them with errors.Is.
var (
	ErrSyntax             = errors.New("syntax error")
	ErrMalformedVariation = errors.New("malformed variation")
	ErrDuplicateVariant   = errors.New("duplicate variant name")
	ErrVariationNotFound  = errors.New("variation not found")
	ErrAmbiguousVariation = errors.New("ambiguous variation")
	ErrVariantNotFound    = errors.New("variant not found")
	ErrUnsafeRewrite      = errors.New("unsafe rewrite")
)

// SyntaxError reports a marker grammar violation.
type SyntaxError struct {
	Position Position
	Expected string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: expected %s", e.Position.Line, e.Expected)
}

// Is matches ErrSyntax.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// MalformedVariationError reports a variation without exactly one active body.
type MalformedVariationError struct {
	Variation   string
	Position    Position
	ActiveCount int
}

func (e *MalformedVariationError) Error() string {
	return fmt.Sprintf("variation '%s' at line %d has %d active bodies, expected exactly 1",
		e.Variation, e.Position.Line, e.ActiveCount)
}

// Is matches ErrMalformedVariation.
func (e *MalformedVariationError) Is(target error) bool {
	return target == ErrMalformedVariation
}

// DuplicateVariantError reports two variants sharing a name in one variation.
type DuplicateVariantError struct {
	Variation string
	Name      string
	Position  Position
}

func (e *DuplicateVariantError) Error() string {
	return fmt.Sprintf("line %d: variant '%s' declared twice in variation '%s'", e.Position.Line, e.Name, e.Variation)
}

// Is matches ErrDuplicateVariant.
func (e *DuplicateVariantError) Is(target error) bool {
	return target == ErrDuplicateVariant
}

// VariationNotFoundError reports a selector that matches no variation.
type VariationNotFoundError struct {
	Selector string
}

func (e *VariationNotFoundError) Error() string {
	return fmt.Sprintf("no variation matches %s", e.Selector)
}

// Is matches ErrVariationNotFound.
func (e *VariationNotFoundError) Is(target error) bool {
	return target == ErrVariationNotFound
}

// AmbiguousVariationError reports a selector that matches several variations.
type AmbiguousVariationError struct {
	Selector   string
	Candidates []string
}

func (e *AmbiguousVariationError) Error() string {
	return fmt.Sprintf("%s matches %d variations: %s", e.Selector, len(e.Candidates), strings.Join(e.Candidates, ", "))
}

// Is matches ErrAmbiguousVariation.
func (e *AmbiguousVariationError) Is(target error) bool {
	return target == ErrAmbiguousVariation
}

// VariantNotFoundError reports a variant name absent from the target variation.
type VariantNotFoundError struct {
	Variant   string
	Available []string
}

func (e *VariantNotFoundError) Error() string {
	return fmt.Sprintf("variant '%s' not found, available variants: [%s]", e.Variant, strings.Join(e.Available, ", "))
}

// Is matches ErrVariantNotFound.
func (e *VariantNotFoundError) Is(target error) bool {
	return target == ErrVariantNotFound
}

// UnsafeRewriteError reports a rewrite whose output would not parse back to the
// same variation, e.g. a body holding the closing delimiter of its wrapper.
type UnsafeRewriteError struct {
	Variation string
	Body      string
	Reason    string
}

func (e *UnsafeRewriteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("cannot rewrite variation '%s': %s", e.Variation, e.Reason)
	}

	return fmt.Sprintf("cannot comment out '%s' in variation '%s': %s", e.Body, e.Variation, e.Reason)
}

// Is matches ErrUnsafeRewrite.
func (e *UnsafeRewriteError) Is(target error) bool {
	return target == ErrUnsafeRewrite
}

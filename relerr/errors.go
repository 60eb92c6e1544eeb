// Package relerr defines the three programmer-facing error kinds the
// rendering engine can raise: a segment failed validation at
// construction, the dispatch stack's own push/pop discipline was
// violated, or the tree contained a segment kind the current renderer
// has no rule for. None of these are meant to be inspected by an end
// user; they exist so a caller building trees programmatically gets a
// precise signal about which invariant broke and where.
package relerr

import "fmt"

// InvalidArgumentError reports a nil or empty value where a segment
// requires one (an empty select list, an empty table name, an In
// condition with no right-hand operands).
type InvalidArgumentError struct {
	Segment string
	Reason  string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("relsql: invalid argument for %s: %s", e.Segment, e.Reason)
}

// InvariantViolationError reports that the delegating visitor's stack
// discipline broke: a pop was requested against a stack that didn't
// have the expected delegate on top.
type InvariantViolationError struct {
	Expected string
	Actual   string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("relsql: invariant violation: expected %s, got %s", e.Expected, e.Actual)
}

// UnsupportedNodeError reports that a renderer encountered a concrete
// Condition or Expression kind it has no rendering rule for. The
// renderer itself does not return this error for an unrecognized node —
// per the engine's forward-compatibility contract it logs a diagnostic
// and emits nothing, so a tree built entirely from this module's own
// node kinds never produces one. It is exported so a caller embedding
// its own Segment kinds into a renderer it has extended can report the
// same failure shape.
type UnsupportedNodeError struct {
	Kind string
	Path []string
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("relsql: unsupported node kind %s at %v", e.Kind, e.Path)
}

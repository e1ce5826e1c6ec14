// Package diag defines the shared diagnostic vocabulary used across every
// pipeline stage: parser, AST builder, scope/type analysis, exhaustiveness
// checking, and the transpilers. No stage returns a raw error to its caller;
// each wraps failures into a Diagnostic with a Class that callers can switch
// on without string matching.
package diag

import "fmt"

// Class identifies which of the five error classes a Diagnostic belongs to.
type Class string

const (
	ClassParse          Class = "parse_error"
	ClassSemantic       Class = "semantic_error"
	ClassType           Class = "type_error"
	ClassExhaustiveness Class = "exhaustiveness_error"
	ClassBoundary       Class = "boundary_error"
)

// Severity distinguishes diagnostics that should fail a build from ones that
// merely inform.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Location is the position a Diagnostic refers to. Columns and lines are
// 1-indexed. End fields repeat the start position: neither parse errors
// nor AST locations record where the offending span ends.
type Location struct {
	File      string
	Line      int
	Col       int
	EndLine   int
	EndCol    int
	StartByte int
	EndByte   int
}

// Diagnostic is the single shape every pass emits, matching the wire shape
// described for parse and analysis diagnostics: message, location, severity,
// and a node-kind tag, plus the two analysis-only optional fields.
type Diagnostic struct {
	Class           Class
	Severity        Severity
	Message         string
	Location        Location
	NodeType        string
	Suggestion      string
	MissingPatterns []string
	// Stage identifies which pass produced a BoundaryError.
	Stage string
}

func (d Diagnostic) Error() string {
	if d.Location.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s: %s", d.Location.File, d.Location.Line, d.Location.Col, d.Class, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Class, d.Message)
}

// IsError reports whether this diagnostic should fail a build.
func (d Diagnostic) IsError() bool {
	return d.Severity == SeverityError
}

// Bag accumulates diagnostics across a pass without halting it. Every
// analysis in this module threads a *Bag instead of returning early on the
// first problem, mirroring the propagation policy that passes never abort
// the pipeline on their own.
type Bag struct {
	items []Diagnostic
}

func NewBag() *Bag { return &Bag{} }

func (b *Bag) Add(d Diagnostic) { b.items = append(b.items, d) }

func (b *Bag) Addf(class Class, sev Severity, loc Location, format string, args ...any) {
	b.Add(Diagnostic{Class: class, Severity: sev, Location: loc, Message: fmt.Sprintf(format, args...)})
}

func (b *Bag) All() []Diagnostic { return b.items }

func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.IsError() {
			return true
		}
	}
	return false
}

// Success mirrors the user-visible {diagnostics, success} contract: success
// is false whenever any error-severity diagnostic is present.
func (b *Bag) Success() bool { return !b.HasErrors() }

func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.items = append(b.items, other.items...)
}

// ExitCode returns the exit-code contract for CLI-style callers: 0 on
// success, 1 on any error-severity diagnostic.
func (b *Bag) ExitCode() int {
	if b.HasErrors() {
		return 1
	}
	return 0
}

// Boundary wraps an error crossing an IO or subprocess boundary (parser file
// reads, Alloy/LaTeX subprocess, registry HTTP) into a structured
// BoundaryError diagnostic, preserving the original message, per the
// "no raw exceptions cross the API surface" rule.
func Boundary(stage string, err error) Diagnostic {
	return Diagnostic{
		Class:    ClassBoundary,
		Severity: SeverityError,
		Stage:    stage,
		Message:  err.Error(),
	}
}

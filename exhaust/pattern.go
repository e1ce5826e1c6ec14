// Package exhaust implements match-exhaustiveness checking via the
// pattern-matrix usefulness algorithm (Maranget, "Warnings for pattern
// matching", JFP 2007): a match is exhaustive iff the wildcard row is not
// useful against the matrix of already-matched rows.
package exhaust

import "fmt"

// PatternKind tags an AbstractPattern's shape.
type PatternKind string

const (
	KindWildcard    PatternKind = "wildcard"
	KindLiteral     PatternKind = "literal"
	KindConstructor PatternKind = "constructor"
	KindGuarded     PatternKind = "guarded"
)

// AbstractPattern is the usefulness algorithm's own pattern representation,
// deliberately decoupled from ast.Pattern so the algorithm can be exercised
// and tested independently of the parser/builder.
type AbstractPattern struct {
	Kind PatternKind
	// Literal/Constructor identity, e.g. "true", "false", or an enum
	// variant/struct name.
	Ctor string
	// Sub holds constructor sub-patterns (struct-pattern fields, in
	// declared field order). Empty for wildcard/literal/guarded.
	Sub []AbstractPattern
}

func Wildcard() AbstractPattern { return AbstractPattern{Kind: KindWildcard} }
func Literal(ctor string) AbstractPattern {
	return AbstractPattern{Kind: KindLiteral, Ctor: ctor}
}
func Constructor(ctor string, sub []AbstractPattern) AbstractPattern {
	return AbstractPattern{Kind: KindConstructor, Ctor: ctor, Sub: sub}
}
func Guarded() AbstractPattern { return AbstractPattern{Kind: KindGuarded} }

// isWildcardLike reports whether p should be treated as matching anything
// for specialization purposes: true wildcards and bindings (already lowered
// to wildcard by the caller). Guarded rows are not: a guard cannot be
// statically proven to cover every case, so a guarded row is dropped by
// both Specialize and Default and never counts toward exhaustiveness.
func isWildcardLike(p AbstractPattern) bool {
	return p.Kind == KindWildcard
}

// PatternRow is one row of a PatternMatrix: a fixed-width vector of
// patterns, one per scrutinee column.
type PatternRow struct {
	Cols []AbstractPattern
}

// Width returns the row's column count (an int, not the matrix's own
// notion of width — rows in a well-formed matrix all share one width).
func (r PatternRow) Width() int { return len(r.Cols) }

// PatternMatrix is a set of rows which, read top to bottom, already matches
// some set of values; usefulness asks whether a further row could still
// match something none of these do.
type PatternMatrix struct {
	Rows []PatternRow
}

// Width returns the matrix's column count, taken from its first row (zero
// for an empty matrix — callers must track column count for the n=0 case
// themselves, since an empty matrix carries no row to read it from).
func (m PatternMatrix) Width() int {
	if len(m.Rows) == 0 {
		return 0
	}
	return m.Rows[0].Width()
}

// Specialize computes S(ctor, arity, M): for every row whose first column
// matches ctor (same constructor name and, trivially, a wildcard row which
// matches anything), replace that column with its arity sub-patterns
// (all-wildcard when the row's first column was itself a wildcard),
// dropping rows whose first column is a different constructor or literal
// entirely, or a guarded pattern.
func Specialize(m PatternMatrix, ctor string, arity int) PatternMatrix {
	out := PatternMatrix{}
	for _, row := range m.Rows {
		if len(row.Cols) == 0 {
			continue
		}
		head, rest := row.Cols[0], row.Cols[1:]
		switch {
		case isWildcardLike(head):
			newCols := make([]AbstractPattern, 0, arity+len(rest))
			for i := 0; i < arity; i++ {
				newCols = append(newCols, Wildcard())
			}
			newCols = append(newCols, rest...)
			out.Rows = append(out.Rows, PatternRow{Cols: newCols})
		case head.Kind == KindConstructor && head.Ctor == ctor:
			newCols := make([]AbstractPattern, 0, len(head.Sub)+len(rest))
			newCols = append(newCols, head.Sub...)
			newCols = append(newCols, rest...)
			out.Rows = append(out.Rows, PatternRow{Cols: newCols})
		case head.Kind == KindLiteral && head.Ctor == ctor:
			out.Rows = append(out.Rows, PatternRow{Cols: rest})
		default:
			// Different constructor/literal: row contributes nothing.
		}
	}
	return out
}

// Default computes D(M): keep only rows whose first column matches
// anything (a wildcard; guarded rows are dropped), dropping that column.
func Default(m PatternMatrix) PatternMatrix {
	out := PatternMatrix{}
	for _, row := range m.Rows {
		if len(row.Cols) == 0 {
			continue
		}
		if isWildcardLike(row.Cols[0]) {
			out.Rows = append(out.Rows, PatternRow{Cols: row.Cols[1:]})
		}
	}
	return out
}

// headConstructors collects the distinct constructor/literal names
// appearing in the matrix's first column (ignoring wildcard/guarded rows).
func headConstructors(m PatternMatrix) []string {
	seen := make(map[string]bool)
	var out []string
	for _, row := range m.Rows {
		if len(row.Cols) == 0 {
			continue
		}
		h := row.Cols[0]
		if h.Kind == KindConstructor || h.Kind == KindLiteral {
			if !seen[h.Ctor] {
				seen[h.Ctor] = true
				out = append(out, h.Ctor)
			}
		}
	}
	return out
}

func (p AbstractPattern) String() string {
	switch p.Kind {
	case KindWildcard:
		return "_"
	case KindGuarded:
		return "_"
	case KindLiteral:
		return p.Ctor
	case KindConstructor:
		if len(p.Sub) == 0 {
			return p.Ctor
		}
		s := p.Ctor + "{"
		for i, sub := range p.Sub {
			if i > 0 {
				s += ", "
			}
			s += sub.String()
		}
		return s + "}"
	default:
		return "?"
	}
}

func (r PatternRow) String() string {
	s := ""
	for i, c := range r.Cols {
		if i > 0 {
			s += ", "
		}
		s += c.String()
	}
	return fmt.Sprintf("[%s]", s)
}

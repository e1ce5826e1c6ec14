package verify

import (
	"context"
	"fmt"
	"strings"

	"github.com/gongahkia/yuho/ast"
	"github.com/gongahkia/yuho/internal/diag"
)

// CheckSatisfiability asks solver whether the conjunction of assertions is
// satisfiable. It is the thinnest of the five driver entry points spec.md
// §4.8.4 names; the other SMT-backed entry points below build their query
// sets on this one (VerifyStatuteElements runs no SMT query).
func CheckSatisfiability(ctx context.Context, s Solver, assertions []string) (SatResult, *diag.Diagnostic) {
	if s == nil || !s.Available() {
		d := diag.Boundary("z3", errZ3Unavailable)
		return SatResult{}, &d
	}
	res, err := s.CheckSat(ctx, assertions)
	if err != nil {
		d := diag.Boundary("z3", err)
		return SatResult{}, &d
	}
	return res, nil
}

// CheckPatternReachable reports whether pattern p can still match some
// value given that prev has already matched everything it covers: SAT of
// "p and not prev[0] and not prev[1] ...". An unreachable result (UNSAT)
// means a later match arm is dead code.
func CheckPatternReachable(ctx context.Context, s Solver, p string, prev []string) (bool, *diag.Diagnostic) {
	assertions := make([]string, 0, len(prev)+1)
	assertions = append(assertions, p)
	for _, pr := range prev {
		assertions = append(assertions, fmt.Sprintf("(not %s)", pr))
	}
	res, d := CheckSatisfiability(ctx, s, assertions)
	if d != nil {
		return true, d // per spec.md §9: absent SMT backend, assume reachable
	}
	return res.Satisfiable, nil
}

// CheckExhaustiveness reports whether patterns (each an SMT-LIB2 boolean
// expression over the scrutinee) cover typeConstraint entirely: UNSAT of
// "typeConstraint and not pattern[0] and not pattern[1] ...".
func CheckExhaustiveness(ctx context.Context, s Solver, patterns []string, typeConstraint string) (bool, *diag.Diagnostic) {
	assertions := make([]string, 0, len(patterns)+1)
	assertions = append(assertions, typeConstraint)
	for _, p := range patterns {
		assertions = append(assertions, fmt.Sprintf("(not %s)", p))
	}
	res, d := CheckSatisfiability(ctx, s, assertions)
	if d != nil {
		return false, d
	}
	return !res.Satisfiable, nil
}

// EnumerateModels repeatedly queries s for a satisfying model of
// assertions, blocking out each model found (negating the conjunction of
// its assignments) before the next query, until k distinct models have
// been collected or the remaining query becomes unsatisfiable.
func EnumerateModels(ctx context.Context, s Solver, assertions []string, k int) ([]SatResult, *diag.Diagnostic) {
	var models []SatResult
	current := append([]string{}, assertions...)
	for len(models) < k {
		res, d := CheckSatisfiability(ctx, s, current)
		if d != nil {
			return models, d
		}
		if !res.Satisfiable {
			break
		}
		models = append(models, res)
		current = append(current, blockingClause(res.Model))
	}
	return models, nil
}

func blockingClause(model map[string]string) string {
	if len(model) == 0 {
		return "false"
	}
	parts := make([]string, 0, len(model))
	for k, v := range model {
		parts = append(parts, fmt.Sprintf("(= %s %s)", k, v))
	}
	return fmt.Sprintf("(not (and %s))", strings.Join(parts, " "))
}

// VerifyStatuteElements runs the sanity checks spec.md §4.8.4 lists for
// verify_statute_elements that don't need an SMT query at all: element-name
// uniqueness, element-type validity, and penalty range sanity
// (imprisonment_min <= imprisonment_max, fine_min <= fine_max).
func VerifyStatuteElements(st *ast.StatuteNode) []diag.Diagnostic {
	var out []diag.Diagnostic
	seen := make(map[string]ast.SourceLocation)
	for _, el := range st.Elements {
		if prev, ok := seen[el.Name]; ok {
			out = append(out, diag.Diagnostic{
				Class:    diag.ClassSemantic,
				Severity: diag.SeverityError,
				Location: toLocation(el.Loc()),
				Message:  fmt.Sprintf("duplicate element name %q (previously declared at %d:%d)", el.Name, prev.StartLine, prev.StartCol),
			})
			continue
		}
		seen[el.Name] = el.Loc()
		if !validElementKind(el.ElementKind) {
			out = append(out, diag.Diagnostic{
				Class:    diag.ClassSemantic,
				Severity: diag.SeverityError,
				Location: toLocation(el.Loc()),
				Message:  fmt.Sprintf("invalid element kind %q for %q", el.ElementKind, el.Name),
			})
		}
	}
	if st.Penalty != nil {
		out = append(out, verifyPenaltyRanges(st.Penalty)...)
	}
	return out
}

func validElementKind(k ast.ElementKind) bool {
	switch k {
	case ast.ElementActusReus, ast.ElementMensRea, ast.ElementCircumstance:
		return true
	default:
		return false
	}
}

func verifyPenaltyRanges(p *ast.PenaltyNode) []diag.Diagnostic {
	var out []diag.Diagnostic
	if p.ImprisonmentMin != nil && p.ImprisonmentMax != nil {
		if durationOrdinal(p.ImprisonmentMin) > durationOrdinal(p.ImprisonmentMax) {
			out = append(out, diag.Diagnostic{
				Class:    diag.ClassSemantic,
				Severity: diag.SeverityError,
				Location: toLocation(p.Loc()),
				Message:  "penalty imprisonment_min exceeds imprisonment_max",
			})
		}
	}
	if p.FineMin != nil && p.FineMax != nil {
		if p.FineMin.Amount.GreaterThan(p.FineMax.Amount) {
			out = append(out, diag.Diagnostic{
				Class:    diag.ClassSemantic,
				Severity: diag.SeverityError,
				Location: toLocation(p.Loc()),
				Message:  "penalty fine_min exceeds fine_max",
			})
		}
	}
	return out
}

func durationOrdinal(d *ast.DurationLit) int64 {
	return int64(d.Years)*365*24*3600 + int64(d.Months)*30*24*3600 + int64(d.Days)*24*3600 +
		int64(d.Hours)*3600 + int64(d.Minutes)*60 + int64(d.Seconds)
}

func toLocation(l ast.SourceLocation) diag.Location {
	return diag.Location{
		File: l.File, Line: l.StartLine, Col: l.StartCol,
		EndLine: l.EndLine, EndCol: l.EndCol,
		StartByte: l.StartByte, EndByte: l.EndByte,
	}
}

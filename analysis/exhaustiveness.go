// Package analysis wires the algorithm-only passes (exhaust) to the real
// AST: it walks a resolved, type-inferred module, lowers every match arm's
// concrete ast.Pattern to the exhaust package's abstract pattern
// representation, and turns missing-pattern witnesses into diagnostics.
package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gongahkia/yuho/ast"
	"github.com/gongahkia/yuho/exhaust"
	"github.com/gongahkia/yuho/internal/diag"
	"github.com/gongahkia/yuho/typeinfer"
)

// CheckExhaustiveness walks every function body, statute element, and
// module-level variable/assertion expression in m, running the pattern-
// matrix usefulness algorithm against each match expression that requests
// exhaustiveness (MatchExprNode.EnsureExhaustiveness). A match with full
// coverage contributes nothing; an incomplete one contributes exactly one
// ExhaustivenessError diagnostic at the match's location, carrying up to
// five missing-pattern witnesses (plus "…" when more remain).
func CheckExhaustiveness(m *ast.ModuleNode, types *typeinfer.Table) []diag.Diagnostic {
	c := &exhaustChecker{
		bag:     diag.NewBag(),
		structs: indexStructs(m),
		types:   types,
	}
	v := &matchVisitor{checker: c}
	v.Self = v
	m.Accept(v)
	return c.bag.All()
}

func indexStructs(m *ast.ModuleNode) map[string]*ast.StructDefNode {
	out := make(map[string]*ast.StructDefNode, len(m.TypeDefs))
	for _, sd := range m.TypeDefs {
		out[sd.Name] = sd
	}
	return out
}

// matchVisitor is a thin ast.Visitor that forwards every MatchExprNode it
// finds to the checker, recursing into children via BaseVisitor's default
// so nested matches (a match arm's body containing another match) are
// checked too.
type matchVisitor struct {
	ast.BaseVisitor
	checker *exhaustChecker
}

func (v *matchVisitor) VisitMatchExpr(n *ast.MatchExprNode) {
	v.checker.checkMatch(n)
	ast.WalkChildren(v, n)
}

type exhaustChecker struct {
	bag     *diag.Bag
	structs map[string]*ast.StructDefNode
	types   *typeinfer.Table
}

// checkMatch builds a one-column pattern matrix from n's arms and, if n
// requests exhaustiveness, reports missing coverage.
func (c *exhaustChecker) checkMatch(n *ast.MatchExprNode) {
	if !n.EnsureExhaustiveness {
		return
	}

	scrutTypeName := c.scrutineeTypeName(n)
	matrix := exhaust.PatternMatrix{}
	for _, arm := range n.Arms {
		matrix.Rows = append(matrix.Rows, exhaust.PatternRow{
			Cols: []exhaust.AbstractPattern{c.armHeadPattern(arm, scrutTypeName)},
		})
	}

	missing := exhaust.Missing(matrix, []string{scrutTypeName}, c.lookupSignature)
	if len(missing) == 0 {
		return
	}
	c.report(n, missing)
}

// scrutineeTypeName resolves the type the match discriminates over. A
// match with no scrutinee (a bare guard chain) has no finite constructor
// set of its own; an empty/unrecognized name routes Missing into the
// default-matrix-only branch, which is exactly the "last arm must be a
// bare wildcard" rule such a match needs.
func (c *exhaustChecker) scrutineeTypeName(n *ast.MatchExprNode) string {
	if n.Scrutinee == nil {
		return ""
	}
	return c.types.TypeOf(n.Scrutinee).TypeName
}

// armHeadPattern lowers one arm's pattern to the algorithm's abstract
// representation. A guard always produces a Guarded marker regardless of
// the underlying pattern shape, per the spec's rule that a guarded arm
// never contributes to exhaustiveness. scrutTypeName disambiguates a bare
// identifier pattern: if it names a variant of an enum-shaped struct this
// module knows about, it is a zero-arity constructor match rather than a
// true catch-all binding.
func (c *exhaustChecker) armHeadPattern(arm *ast.MatchArm, scrutTypeName string) exhaust.AbstractPattern {
	if arm.Guard != nil {
		return exhaust.Guarded()
	}
	return c.lowerPattern(arm.Pattern, scrutTypeName)
}

func (c *exhaustChecker) lowerPattern(p ast.Pattern, scrutTypeName string) exhaust.AbstractPattern {
	switch n := p.(type) {
	case *ast.WildcardPattern:
		return exhaust.Wildcard()
	case *ast.BindingPattern:
		if sd, ok := c.structs[scrutTypeName]; ok && sd.IsEnum() {
			for _, variant := range sd.Variants() {
				if variant == n.Name {
					return exhaust.Literal(variant)
				}
			}
		}
		return exhaust.Wildcard()
	case *ast.LiteralPattern:
		return exhaust.Literal(literalCtorName(n.Literal))
	case *ast.StructPattern:
		sd, known := c.structs[n.TypeName]
		if known && len(sd.Fields) > 0 && !sd.IsEnum() {
			sub := make([]exhaust.AbstractPattern, len(sd.Fields))
			for i, fd := range sd.Fields {
				sub[i] = exhaust.Wildcard()
				for _, fp := range n.Fields {
					if fp.Name == fd.Name {
						if fp.Sub == nil {
							sub[i] = exhaust.Wildcard()
						} else {
							sub[i] = c.lowerPattern(fp.Sub, fieldTypeName(fd))
						}
					}
				}
			}
			return exhaust.Constructor(n.TypeName, sub)
		}
		return exhaust.Constructor(n.TypeName, nil)
	default:
		return exhaust.Wildcard()
	}
}

// lookupSignature answers exhaust's SignatureLookup for a type name: bool
// gets the fixed {true,false} set, an enum-shaped struct defined in this
// module gets one zero-arity constructor per variant, and everything else
// (int, string, float, money, percent, date, duration, and any non-enum
// struct) has no finite constructor set.
func (c *exhaustChecker) lookupSignature(typeName string) (exhaust.Signature, bool) {
	if typeName == "bool" {
		return exhaust.BoolSignature(), true
	}
	if sd, ok := c.structs[typeName]; ok && sd.IsEnum() {
		ctors := make([]exhaust.CtorInfo, len(sd.Fields))
		for i, f := range sd.Fields {
			ctors[i] = exhaust.CtorInfo{Name: f.Name}
		}
		return exhaust.Signature{Complete: true, Ctors: ctors}, true
	}
	return exhaust.Signature{}, false
}

func (c *exhaustChecker) report(n *ast.MatchExprNode, missing []exhaust.PatternRow) {
	names := make([]string, 0, len(missing))
	truncated := false
	for i, row := range missing {
		if i >= 5 {
			truncated = true
			break
		}
		names = append(names, row.Cols[0].String())
	}
	msg := fmt.Sprintf("match is not exhaustive: missing %s", strings.Join(names, ", "))
	if truncated {
		msg += ", …"
	}
	c.bag.Add(diag.Diagnostic{
		Class:           diag.ClassExhaustiveness,
		Severity:        diag.SeverityError,
		Location:        toLocation(n.Loc()),
		Message:         msg,
		NodeType:        string(ast.KindMatchExpr),
		MissingPatterns: names,
	})
}

func toLocation(l ast.SourceLocation) diag.Location {
	return diag.Location{
		File: l.File, Line: l.StartLine, Col: l.StartCol,
		EndLine: l.EndLine, EndCol: l.EndCol,
		StartByte: l.StartByte, EndByte: l.EndByte,
	}
}

// literalCtorName renders a LiteralPattern's underlying literal expression
// as the constructor/literal name the usefulness algorithm compares by
// (kind, value) identity — bool literals compare as "true"/"false" to line
// up with BoolSignature's constructor names.
func literalCtorName(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.BoolLit:
		if n.Value {
			return "true"
		}
		return "false"
	case *ast.IntLit:
		return strconv.FormatInt(n.Value, 10)
	case *ast.FloatLit:
		return strconv.FormatFloat(n.Value, 'g', -1, 64)
	case *ast.StringLit:
		return strconv.Quote(n.Value)
	case *ast.DateLit:
		return n.ISO8601()
	case *ast.MoneyLit:
		return n.String()
	default:
		return "?"
	}
}

// fieldTypeName lets lowerPattern recurse with a best-effort type name for a
// nested field pattern even though FieldDef doesn't carry a resolved
// TypeAnnotation; nested enum disambiguation below the top level falls back
// to treating a bare identifier as a true wildcard binding, which is the
// conservative (never-false-positive) choice when the field's own type
// can't be named outright (e.g. a built-in scalar field).
func fieldTypeName(f *ast.FieldDef) string {
	if f.Type == nil {
		return ""
	}
	if nt, ok := f.Type.(*ast.NamedType); ok {
		return nt.Name
	}
	return ""
}

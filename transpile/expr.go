package transpile

import (
	"fmt"
	"strings"

	"github.com/gongahkia/yuho/ast"
)

// exprText renders e as controlled natural language, the shared routine
// behind the English transpiler's statement/expression prose and every
// other backend's "describe this expression in a comment" needs (Alloy
// fact comments, Z3 assertion comments, Mermaid decision labels).
func exprText(e ast.Expr) string {
	if e == nil {
		return ""
	}
	switch n := e.(type) {
	case *ast.IntLit:
		return fmt.Sprintf("%d", n.Value)
	case *ast.FloatLit:
		return fmt.Sprintf("%g", n.Value)
	case *ast.BoolLit:
		if n.Value {
			return "true"
		}
		return "false"
	case *ast.StringLit:
		return n.Value
	case *ast.MoneyLit:
		return moneyLong(n)
	case *ast.PercentLit:
		return percentLong(n)
	case *ast.DateLit:
		return n.ISO8601()
	case *ast.DurationLit:
		return durationLong(n)
	case *ast.IdentifierNode:
		return n.Name
	case *ast.FieldAccessNode:
		return exprText(n.Base) + "'s " + n.FieldName
	case *ast.IndexAccessNode:
		return fmt.Sprintf("%s at index %s", exprText(n.Base), exprText(n.Index))
	case *ast.FunctionCallNode:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = exprText(a)
		}
		return fmt.Sprintf("%s(%s)", exprText(n.Callee), strings.Join(args, ", "))
	case *ast.BinaryExprNode:
		return fmt.Sprintf("%s %s %s", exprText(n.Left), longOp(n.Operator), exprText(n.Right))
	case *ast.UnaryExprNode:
		return fmt.Sprintf("%s %s", longOp(n.Operator), exprText(n.Operand))
	case *ast.MatchExprNode:
		return matchText(n)
	case *ast.StructLiteralNode:
		fields := make([]string, len(n.FieldValues))
		for i, f := range n.FieldValues {
			fields[i] = fmt.Sprintf("%s: %s", f.Name, exprText(f.Value))
		}
		return fmt.Sprintf("%s{%s}", n.StructName, strings.Join(fields, ", "))
	case *ast.PassExprNode:
		return "(unspecified)"
	default:
		return ""
	}
}

// matchText renders a match expression as a sequence of "If <pattern>,
// provided that <guard>: <body>" lines, with the bare-wildcard final arm
// rendered as "Otherwise: <body>", exactly the English backend's match
// rendering rule, reused here so other backends' comments read the same.
func matchText(n *ast.MatchExprNode) string {
	var lines []string
	for i, arm := range n.Arms {
		isLastWildcard := i == len(n.Arms)-1 && arm.Guard == nil && isWildcardOrBinding(arm.Pattern)
		if isLastWildcard {
			lines = append(lines, fmt.Sprintf("Otherwise: %s", exprText(arm.Body)))
			continue
		}
		line := fmt.Sprintf("If %s", patternText(arm.Pattern))
		if arm.Guard != nil {
			line += fmt.Sprintf(", provided that %s", exprText(arm.Guard))
		}
		line += fmt.Sprintf(": %s", exprText(arm.Body))
		lines = append(lines, line)
	}
	prefix := ""
	if n.Scrutinee != nil {
		prefix = fmt.Sprintf("matching %s: ", exprText(n.Scrutinee))
	}
	return prefix + strings.Join(lines, "; ")
}

func isWildcardOrBinding(p ast.Pattern) bool {
	switch p.(type) {
	case *ast.WildcardPattern, *ast.BindingPattern:
		return true
	default:
		return false
	}
}

// patternText renders a match pattern as prose.
func patternText(p ast.Pattern) string {
	switch n := p.(type) {
	case *ast.WildcardPattern:
		return "any value"
	case *ast.BindingPattern:
		return n.Name
	case *ast.LiteralPattern:
		return exprText(n.Literal)
	case *ast.StructPattern:
		if len(n.Fields) == 0 {
			return n.TypeName
		}
		fields := make([]string, len(n.Fields))
		for i, f := range n.Fields {
			sub := "any value"
			if f.Sub != nil {
				sub = patternText(f.Sub)
			}
			fields[i] = fmt.Sprintf("%s is %s", f.Name, sub)
		}
		return fmt.Sprintf("%s where %s", n.TypeName, strings.Join(fields, " and "))
	default:
		return "?"
	}
}

// typeText renders a TypeNode as source-like text ("int", "Foo?",
// "[]money"), used by the English function-signature rendering.
func typeText(t ast.TypeNode) string {
	if t == nil {
		return "void"
	}
	switch n := t.(type) {
	case *ast.BuiltinType:
		return n.Name
	case *ast.NamedType:
		return n.Name
	case *ast.OptionalType:
		return typeText(n.Inner) + "?"
	case *ast.ArrayType:
		return "[]" + typeText(n.Element)
	case *ast.GenericType:
		args := make([]string, len(n.TypeArgs))
		for i, a := range n.TypeArgs {
			args[i] = typeText(a)
		}
		return fmt.Sprintf("%s<%s>", n.Base, strings.Join(args, ", "))
	default:
		return "unknown"
	}
}

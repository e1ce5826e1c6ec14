package astbuild

import "github.com/gongahkia/yuho/ast"

// simplifier folds the handful of syntactically-redundant expression shapes
// the builder can produce: double negation (!!x, --x) collapses to its
// operand, since both the logical-not and arithmetic-negation operators are
// involutions. It overrides only TransformExpr; every other traversal method
// falls back to ast.BaseTransformer's structural-sharing default.
type simplifier struct {
	ast.BaseTransformer
}

func newSimplifier() *simplifier {
	s := &simplifier{}
	s.Self = s
	return s
}

func (s *simplifier) TransformExpr(n ast.Expr) ast.Expr {
	n = s.BaseTransformer.TransformExpr(n)
	outer, ok := n.(*ast.UnaryExprNode)
	if !ok {
		return n
	}
	inner, ok := outer.Operand.(*ast.UnaryExprNode)
	if !ok || inner.Operator != outer.Operator {
		return n
	}
	switch outer.Operator {
	case "!", "-":
		return inner.Operand
	default:
		return n
	}
}

// Simplify folds redundant double-negation/double-unary-minus expressions
// across m, reusing every unchanged subtree.
func Simplify(m *ast.ModuleNode) *ast.ModuleNode {
	return newSimplifier().TransformModule(m)
}

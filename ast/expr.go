package ast

// Expr is implemented by every expression node (literals, identifier,
// field/index access, calls, binary/unary, match, struct literal, and the
// pass placeholder). It is a marker interface: callers that only need "some
// expression" use this instead of the full concrete type switch.
type Expr interface {
	Node
	exprNode()
}

// IdentifierNode references a name resolved by scope analysis.
type IdentifierNode struct {
	NodeBase
	Name string
}

func NewIdentifier(name string, loc SourceLocation) *IdentifierNode {
	return &IdentifierNode{NewBase(loc), name}
}
func (n *IdentifierNode) Kind() Kind       { return KindIdentifier }
func (n *IdentifierNode) Children() []Node { return nil }
func (n *IdentifierNode) Accept(v Visitor) { v.VisitIdentifier(n) }
func (n *IdentifierNode) exprNode()        {}

// FieldAccessNode is base.Field.
type FieldAccessNode struct {
	NodeBase
	Base      Expr
	FieldName string
}

func NewFieldAccess(base Expr, field string, loc SourceLocation) *FieldAccessNode {
	return &FieldAccessNode{NewBase(loc), base, field}
}
func (n *FieldAccessNode) Kind() Kind       { return KindFieldAccess }
func (n *FieldAccessNode) Children() []Node { return []Node{n.Base} }
func (n *FieldAccessNode) Accept(v Visitor) { v.VisitFieldAccess(n) }
func (n *FieldAccessNode) exprNode()        {}

// IndexAccessNode is base[index].
type IndexAccessNode struct {
	NodeBase
	Base  Expr
	Index Expr
}

func NewIndexAccess(base, index Expr, loc SourceLocation) *IndexAccessNode {
	return &IndexAccessNode{NewBase(loc), base, index}
}
func (n *IndexAccessNode) Kind() Kind       { return KindIndexAccess }
func (n *IndexAccessNode) Children() []Node { return []Node{n.Base, n.Index} }
func (n *IndexAccessNode) Accept(v Visitor) { v.VisitIndexAccess(n) }
func (n *IndexAccessNode) exprNode()        {}

// FunctionCallNode is callee(args...).
type FunctionCallNode struct {
	NodeBase
	Callee Expr
	Args   []Expr
}

func NewFunctionCall(callee Expr, args []Expr, loc SourceLocation) *FunctionCallNode {
	return &FunctionCallNode{NewBase(loc), callee, args}
}
func (n *FunctionCallNode) Kind() Kind { return KindFunctionCall }
func (n *FunctionCallNode) Children() []Node {
	out := make([]Node, 0, 1+len(n.Args))
	out = append(out, n.Callee)
	for _, a := range n.Args {
		out = append(out, a)
	}
	return out
}
func (n *FunctionCallNode) Accept(v Visitor) { v.VisitFunctionCall(n) }
func (n *FunctionCallNode) exprNode()        {}

// BinaryExprNode is left OP right.
type BinaryExprNode struct {
	NodeBase
	Left     Expr
	Operator string
	Right    Expr
}

func NewBinaryExpr(left Expr, op string, right Expr, loc SourceLocation) *BinaryExprNode {
	return &BinaryExprNode{NewBase(loc), left, op, right}
}
func (n *BinaryExprNode) Kind() Kind       { return KindBinaryExpr }
func (n *BinaryExprNode) Children() []Node { return []Node{n.Left, n.Right} }
func (n *BinaryExprNode) Accept(v Visitor) { v.VisitBinaryExpr(n) }
func (n *BinaryExprNode) exprNode()        {}

// UnaryExprNode is OP operand.
type UnaryExprNode struct {
	NodeBase
	Operator string
	Operand  Expr
}

func NewUnaryExpr(op string, operand Expr, loc SourceLocation) *UnaryExprNode {
	return &UnaryExprNode{NewBase(loc), op, operand}
}
func (n *UnaryExprNode) Kind() Kind       { return KindUnaryExpr }
func (n *UnaryExprNode) Children() []Node { return []Node{n.Operand} }
func (n *UnaryExprNode) Accept(v Visitor) { v.VisitUnaryExpr(n) }
func (n *UnaryExprNode) exprNode()        {}

// MatchArm is one arm of a MatchExprNode: a pattern, an optional guard, and
// a body expression.
type MatchArm struct {
	NodeBase
	Pattern Pattern
	Guard   Expr // nil when absent
	Body    Expr
}

func NewMatchArm(pattern Pattern, guard, body Expr, loc SourceLocation) *MatchArm {
	return &MatchArm{NewBase(loc), pattern, guard, body}
}
func (n *MatchArm) Kind() Kind { return KindMatchArm }
func (n *MatchArm) Children() []Node {
	out := []Node{n.Pattern}
	if n.Guard != nil {
		out = append(out, n.Guard)
	}
	out = append(out, n.Body)
	return out
}
func (n *MatchArm) Accept(v Visitor) { v.VisitMatchArm(n) }

// MatchExprNode matches Scrutinee (optional, may be nil for a bare
// conditional chain) against each arm in order.
type MatchExprNode struct {
	NodeBase
	Scrutinee            Expr // nil when absent
	Arms                  []*MatchArm
	EnsureExhaustiveness bool
}

func NewMatchExpr(scrutinee Expr, arms []*MatchArm, ensureExhaustiveness bool, loc SourceLocation) *MatchExprNode {
	return &MatchExprNode{NewBase(loc), scrutinee, arms, ensureExhaustiveness}
}
func (n *MatchExprNode) Kind() Kind { return KindMatchExpr }
func (n *MatchExprNode) Children() []Node {
	out := make([]Node, 0, 1+len(n.Arms))
	if n.Scrutinee != nil {
		out = append(out, n.Scrutinee)
	}
	for _, a := range n.Arms {
		out = append(out, a)
	}
	return out
}
func (n *MatchExprNode) Accept(v Visitor) { v.VisitMatchExpr(n) }
func (n *MatchExprNode) exprNode()        {}

// FieldAssignment is name: value inside a struct literal.
type FieldAssignment struct {
	NodeBase
	Name  string
	Value Expr
}

func NewFieldAssignment(name string, value Expr, loc SourceLocation) *FieldAssignment {
	return &FieldAssignment{NewBase(loc), name, value}
}
func (n *FieldAssignment) Kind() Kind       { return KindFieldAssignment }
func (n *FieldAssignment) Children() []Node { return []Node{n.Value} }
func (n *FieldAssignment) Accept(v Visitor) { v.VisitFieldAssignment(n) }

// StructLiteralNode constructs a struct instance. StructName is empty when
// the literal omits an explicit type name (inferred from context).
type StructLiteralNode struct {
	NodeBase
	StructName  string
	FieldValues []*FieldAssignment
}

func NewStructLiteral(structName string, fields []*FieldAssignment, loc SourceLocation) *StructLiteralNode {
	return &StructLiteralNode{NewBase(loc), structName, fields}
}
func (n *StructLiteralNode) Kind() Kind { return KindStructLiteral }
func (n *StructLiteralNode) Children() []Node {
	out := make([]Node, len(n.FieldValues))
	for i, f := range n.FieldValues {
		out[i] = f
	}
	return out
}
func (n *StructLiteralNode) Accept(v Visitor) { v.VisitStructLiteral(n) }
func (n *StructLiteralNode) exprNode()        {}

// PassExprNode is a placeholder with no computational meaning, used when the
// builder encounters an ambiguous or missing expression subtree.
type PassExprNode struct {
	NodeBase
}

func NewPassExpr(loc SourceLocation) *PassExprNode { return &PassExprNode{NewBase(loc)} }
func (n *PassExprNode) Kind() Kind                 { return KindPassExpr }
func (n *PassExprNode) Children() []Node           { return nil }
func (n *PassExprNode) Accept(v Visitor)           { v.VisitPassExpr(n) }
func (n *PassExprNode) exprNode()                  {}

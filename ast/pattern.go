package ast

// Pattern is implemented by every pattern node used in a match arm.
type Pattern interface {
	Node
	patternNode()
}

// WildcardPattern (`_`) matches any value and binds nothing.
type WildcardPattern struct {
	NodeBase
}

func NewWildcardPattern(loc SourceLocation) *WildcardPattern { return &WildcardPattern{NewBase(loc)} }
func (n *WildcardPattern) Kind() Kind                        { return KindWildcardPattern }
func (n *WildcardPattern) Children() []Node                  { return nil }
func (n *WildcardPattern) Accept(v Visitor)                  { v.VisitWildcardPattern(n) }
func (n *WildcardPattern) patternNode()                      {}

// BindingPattern matches any value and introduces Name as a local variable
// visible in the arm's guard and body.
type BindingPattern struct {
	NodeBase
	Name string
}

func NewBindingPattern(name string, loc SourceLocation) *BindingPattern {
	return &BindingPattern{NewBase(loc), name}
}
func (n *BindingPattern) Kind() Kind       { return KindBindingPattern }
func (n *BindingPattern) Children() []Node { return nil }
func (n *BindingPattern) Accept(v Visitor) { v.VisitBindingPattern(n) }
func (n *BindingPattern) patternNode()     {}

// LiteralPattern matches a scrutinee equal to Literal's value.
type LiteralPattern struct {
	NodeBase
	Literal Expr
}

func NewLiteralPattern(lit Expr, loc SourceLocation) *LiteralPattern {
	return &LiteralPattern{NewBase(loc), lit}
}
func (n *LiteralPattern) Kind() Kind       { return KindLiteralPattern }
func (n *LiteralPattern) Children() []Node { return []Node{n.Literal} }
func (n *LiteralPattern) Accept(v Visitor) { v.VisitLiteralPattern(n) }
func (n *LiteralPattern) patternNode()     {}

// FieldPattern matches Name's value against Sub (nil Sub defaults to
// wildcard semantics at the pattern-extraction layer).
type FieldPattern struct {
	NodeBase
	Name string
	Sub  Pattern
}

func NewFieldPattern(name string, sub Pattern, loc SourceLocation) *FieldPattern {
	return &FieldPattern{NewBase(loc), name, sub}
}
func (n *FieldPattern) Kind() Kind { return KindFieldPattern }
func (n *FieldPattern) Children() []Node {
	if n.Sub == nil {
		return nil
	}
	return []Node{n.Sub}
}
func (n *FieldPattern) Accept(v Visitor) { v.VisitFieldPattern(n) }

// StructPattern matches a struct-typed (or enum-variant) scrutinee named
// TypeName, with per-field sub-patterns.
type StructPattern struct {
	NodeBase
	TypeName string
	Fields   []*FieldPattern
}

func NewStructPattern(typeName string, fields []*FieldPattern, loc SourceLocation) *StructPattern {
	return &StructPattern{NewBase(loc), typeName, fields}
}
func (n *StructPattern) Kind() Kind { return KindStructPattern }
func (n *StructPattern) Children() []Node {
	out := make([]Node, len(n.Fields))
	for i, f := range n.Fields {
		out[i] = f
	}
	return out
}
func (n *StructPattern) Accept(v Visitor) { v.VisitStructPattern(n) }
func (n *StructPattern) patternNode()     {}

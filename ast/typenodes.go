package ast

// TypeNode is the concrete-syntax counterpart of TypeAnnotation: the type
// expression as written in source (a field's declared type, a parameter's
// type, a function's return type). The AST builder constructs these
// directly from the parse tree; type inference converts them to a
// TypeAnnotation via ToAnnotation when an explicit annotation is present.
type TypeNode interface {
	Node
	ToAnnotation() TypeAnnotation
}

// BuiltinType names one of the built-in scalars.
type BuiltinType struct {
	NodeBase
	Name string
}

func NewBuiltinType(name string, loc SourceLocation) *BuiltinType {
	return &BuiltinType{NodeBase: NewBase(loc), Name: name}
}

func (n *BuiltinType) Kind() Kind            { return KindBuiltinType }
func (n *BuiltinType) Children() []Node      { return nil }
func (n *BuiltinType) Accept(v Visitor)      { v.VisitBuiltinType(n) }
func (n *BuiltinType) ToAnnotation() TypeAnnotation { return TypeAnnotation{TypeName: n.Name} }

// NamedType references a user-defined struct by name.
type NamedType struct {
	NodeBase
	Name string
}

func NewNamedType(name string, loc SourceLocation) *NamedType {
	return &NamedType{NodeBase: NewBase(loc), Name: name}
}

func (n *NamedType) Kind() Kind            { return KindNamedType }
func (n *NamedType) Children() []Node      { return nil }
func (n *NamedType) Accept(v Visitor)      { v.VisitNamedType(n) }
func (n *NamedType) ToAnnotation() TypeAnnotation { return TypeAnnotation{TypeName: n.Name} }

// OptionalType wraps Inner, marking it nullable.
type OptionalType struct {
	NodeBase
	Inner TypeNode
}

func NewOptionalType(inner TypeNode, loc SourceLocation) *OptionalType {
	return &OptionalType{NodeBase: NewBase(loc), Inner: inner}
}

func (n *OptionalType) Kind() Kind       { return KindOptionalType }
func (n *OptionalType) Children() []Node { return []Node{n.Inner} }
func (n *OptionalType) Accept(v Visitor) { v.VisitOptionalType(n) }
func (n *OptionalType) ToAnnotation() TypeAnnotation {
	return Optional(n.Inner.ToAnnotation())
}

// ArrayType is a homogeneous sequence of Element.
type ArrayType struct {
	NodeBase
	Element TypeNode
}

func NewArrayType(elem TypeNode, loc SourceLocation) *ArrayType {
	return &ArrayType{NodeBase: NewBase(loc), Element: elem}
}

func (n *ArrayType) Kind() Kind       { return KindArrayType }
func (n *ArrayType) Children() []Node { return []Node{n.Element} }
func (n *ArrayType) Accept(v Visitor) { v.VisitArrayType(n) }
func (n *ArrayType) ToAnnotation() TypeAnnotation {
	return Array(n.Element.ToAnnotation())
}

// GenericType is a type constructor applied to type arguments. Reserved:
// inference treats it as opaque by name (see design notes open question on
// nested generics).
type GenericType struct {
	NodeBase
	Base     string
	TypeArgs []TypeNode
}

func NewGenericType(base string, args []TypeNode, loc SourceLocation) *GenericType {
	return &GenericType{NodeBase: NewBase(loc), Base: base, TypeArgs: args}
}

func (n *GenericType) Kind() Kind { return KindGenericType }
func (n *GenericType) Children() []Node {
	out := make([]Node, len(n.TypeArgs))
	for i, a := range n.TypeArgs {
		out[i] = a
	}
	return out
}
func (n *GenericType) Accept(v Visitor) { v.VisitGenericType(n) }
func (n *GenericType) ToAnnotation() TypeAnnotation {
	args := make([]TypeAnnotation, len(n.TypeArgs))
	for i, a := range n.TypeArgs {
		args[i] = a.ToAnnotation()
	}
	return Generic(n.Base, args...)
}

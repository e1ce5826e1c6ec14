// Package ast defines Yuho's immutable abstract syntax: one struct per node
// kind, every struct embedding NodeBase for its source location, identity,
// and accept/children plumbing, plus the Visitor and Transformer substrates
// used by every analysis pass and transpiler.
package ast

// SourceLocation pins a node to a position in its originating file. Lines
// and columns are 1-indexed; bytes are 0-indexed into the UTF-8 source. The
// AST builder records only where a node starts: it sets EndLine, EndCol and
// EndByte equal to StartLine, StartCol and StartByte, so spans are
// zero-width and do not cover the node's source text.
type SourceLocation struct {
	File      string
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
	StartByte int
	EndByte   int
}

// Kind identifies a node's concrete type for dispatch without reflection.
type Kind string

const (
	KindModule       Kind = "module"
	KindImport       Kind = "import"
	KindReferencing  Kind = "referencing"
	KindStructDef    Kind = "struct_def"
	KindFieldDef     Kind = "field_def"
	KindFunctionDef  Kind = "function_def"
	KindParamDef     Kind = "param_def"
	KindStatute      Kind = "statute"
	KindDefinition   Kind = "definition"
	KindElement      Kind = "element"
	KindPenalty      Kind = "penalty"
	KindIllustration Kind = "illustration"
	KindAssertion    Kind = "assertion"

	KindBuiltinType  Kind = "builtin_type"
	KindNamedType    Kind = "named_type"
	KindOptionalType Kind = "optional_type"
	KindArrayType    Kind = "array_type"
	KindGenericType  Kind = "generic_type"

	KindIntLit      Kind = "int_lit"
	KindFloatLit    Kind = "float_lit"
	KindBoolLit     Kind = "bool_lit"
	KindStringLit   Kind = "string_lit"
	KindMoneyLit    Kind = "money_lit"
	KindPercentLit  Kind = "percent_lit"
	KindDateLit     Kind = "date_lit"
	KindDurationLit Kind = "duration_lit"

	KindIdentifier      Kind = "identifier"
	KindFieldAccess     Kind = "field_access"
	KindIndexAccess     Kind = "index_access"
	KindFunctionCall    Kind = "function_call"
	KindBinaryExpr      Kind = "binary_expr"
	KindUnaryExpr       Kind = "unary_expr"
	KindMatchExpr       Kind = "match_expr"
	KindMatchArm        Kind = "match_arm"
	KindStructLiteral   Kind = "struct_literal"
	KindFieldAssignment Kind = "field_assignment"
	KindPassExpr        Kind = "pass_expr"

	KindWildcardPattern Kind = "wildcard_pattern"
	KindBindingPattern  Kind = "binding_pattern"
	KindLiteralPattern  Kind = "literal_pattern"
	KindStructPattern   Kind = "struct_pattern"
	KindFieldPattern    Kind = "field_pattern"

	KindVariableDecl Kind = "variable_decl"
	KindAssignment   Kind = "assignment"
	KindReturnStmt   Kind = "return_stmt"
	KindPassStmt     Kind = "pass_stmt"
	KindExprStmt     Kind = "expr_stmt"
	KindBlock        Kind = "block"
)

// NodeID is a process-unique, comparable identity for an AST node, the Go
// analogue of Python's id(node): side tables produced by scope resolution,
// type inference, and exhaustiveness checking are keyed on it rather than on
// the node's structural value, so two structurally-equal-but-distinct nodes
// never collide.
type NodeID uint64

var nextNodeID NodeID = 1

func newNodeID() NodeID {
	v := nextNodeID
	nextNodeID++
	return v
}

// Node is implemented by every AST node. Children returns ordered,
// addressable substructure for generic traversal; Accept dispatches to a
// Visitor's matching method.
type Node interface {
	Kind() Kind
	Loc() SourceLocation
	ID() NodeID
	Children() []Node
	Accept(v Visitor)
}

// NodeBase carries the fields every node needs and is embedded by every
// concrete node type. It deliberately does not implement Node itself — each
// concrete type supplies its own Kind/Children/Accept — so embedding
// NodeBase only ever saves the Loc/ID boilerplate.
type NodeBase struct {
	Location SourceLocation
	nid      NodeID
}

// NewBase constructs a NodeBase with a freshly allocated identity. Every
// concrete node constructor calls this exactly once, at construction, so
// identity never depends on accidental lazy access order.
func NewBase(loc SourceLocation) NodeBase {
	return NodeBase{Location: loc, nid: newNodeID()}
}

func (n NodeBase) Loc() SourceLocation { return n.Location }
func (n NodeBase) ID() NodeID          { return n.nid }

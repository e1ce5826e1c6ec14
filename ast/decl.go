package ast

// Decl is implemented by every top-level declaration that appears directly
// in a Module's declaration lists.
type Decl interface {
	Node
	declNode()
}

// ImportNode is `import "path" as name, other` / `import "path" as *`.
type ImportNode struct {
	NodeBase
	Path     string
	Names    []string
	Wildcard bool
}

func NewImport(path string, names []string, wildcard bool, loc SourceLocation) *ImportNode {
	return &ImportNode{NewBase(loc), path, names, wildcard}
}
func (n *ImportNode) Kind() Kind       { return KindImport }
func (n *ImportNode) Children() []Node { return nil }
func (n *ImportNode) Accept(v Visitor) { v.VisitImport(n) }
func (n *ImportNode) declNode()        {}

// ReferencingNode cites an external source by a bare path, with no import
// semantics of its own.
type ReferencingNode struct {
	NodeBase
	Path string
}

func NewReferencing(path string, loc SourceLocation) *ReferencingNode {
	return &ReferencingNode{NewBase(loc), path}
}
func (n *ReferencingNode) Kind() Kind       { return KindReferencing }
func (n *ReferencingNode) Children() []Node { return nil }
func (n *ReferencingNode) Accept(v Visitor) { v.VisitReferencing(n) }
func (n *ReferencingNode) declNode()        {}

// FieldDef is one field of a struct definition. A field with a nil Type
// denotes an enum variant (see StructDefNode doc).
type FieldDef struct {
	NodeBase
	Name string
	Type TypeNode // nil => enum variant
}

func NewFieldDef(name string, typ TypeNode, loc SourceLocation) *FieldDef {
	return &FieldDef{NewBase(loc), name, typ}
}
func (n *FieldDef) Kind() Kind { return KindFieldDef }
func (n *FieldDef) Children() []Node {
	if n.Type == nil {
		return nil
	}
	return []Node{n.Type}
}
func (n *FieldDef) Accept(v Visitor)    { v.VisitFieldDef(n) }
func (n *FieldDef) IsEnumVariant() bool { return n.Type == nil }

// StructDefNode declares a struct (or, when every field omits a type
// annotation, a sum type interpreted by exhaustiveness checking as an enum).
type StructDefNode struct {
	NodeBase
	Name       string
	TypeParams []string
	Fields     []*FieldDef
}

func NewStructDef(name string, typeParams []string, fields []*FieldDef, loc SourceLocation) *StructDefNode {
	return &StructDefNode{NewBase(loc), name, typeParams, fields}
}
func (n *StructDefNode) Kind() Kind { return KindStructDef }
func (n *StructDefNode) Children() []Node {
	out := make([]Node, len(n.Fields))
	for i, f := range n.Fields {
		out[i] = f
	}
	return out
}
func (n *StructDefNode) Accept(v Visitor) { v.VisitStructDef(n) }
func (n *StructDefNode) declNode()        {}

// IsEnum reports whether every field is a variant (no type annotation),
// the same rule the exhaustiveness checker's type-info collector uses.
func (n *StructDefNode) IsEnum() bool {
	if len(n.Fields) == 0 {
		return false
	}
	for _, f := range n.Fields {
		if !f.IsEnumVariant() {
			return false
		}
	}
	return true
}

// Variants returns the field names of an enum-shaped struct.
func (n *StructDefNode) Variants() []string {
	out := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		out[i] = f.Name
	}
	return out
}

// ParamDef is one parameter of a function definition.
type ParamDef struct {
	NodeBase
	Name string
	Type TypeNode
}

func NewParamDef(name string, typ TypeNode, loc SourceLocation) *ParamDef {
	return &ParamDef{NewBase(loc), name, typ}
}
func (n *ParamDef) Kind() Kind { return KindParamDef }
func (n *ParamDef) Children() []Node {
	if n.Type == nil {
		return nil
	}
	return []Node{n.Type}
}
func (n *ParamDef) Accept(v Visitor) { v.VisitParamDef(n) }

// FunctionDefNode declares a function. ReturnType is nil when the function
// declares no return type (treated as void).
type FunctionDefNode struct {
	NodeBase
	Name       string
	Params     []*ParamDef
	ReturnType TypeNode
	Body       *Block
}

func NewFunctionDef(name string, params []*ParamDef, ret TypeNode, body *Block, loc SourceLocation) *FunctionDefNode {
	return &FunctionDefNode{NewBase(loc), name, params, ret, body}
}
func (n *FunctionDefNode) Kind() Kind { return KindFunctionDef }
func (n *FunctionDefNode) Children() []Node {
	out := make([]Node, 0, len(n.Params)+2)
	for _, p := range n.Params {
		out = append(out, p)
	}
	if n.ReturnType != nil {
		out = append(out, n.ReturnType)
	}
	if n.Body != nil {
		out = append(out, n.Body)
	}
	return out
}
func (n *FunctionDefNode) Accept(v Visitor) { v.VisitFunctionDef(n) }
func (n *FunctionDefNode) declNode()        {}

// ElementKind tags the legal nature of a statute Element.
type ElementKind string

const (
	ElementActusReus   ElementKind = "actus_reus"
	ElementMensRea     ElementKind = "mens_rea"
	ElementCircumstance ElementKind = "circumstance"
)

// DefinitionEntry is a term/prose pair inside a statute's Definitions list.
type DefinitionEntry struct {
	NodeBase
	Term  string
	Prose string
}

func NewDefinitionEntry(term, prose string, loc SourceLocation) *DefinitionEntry {
	return &DefinitionEntry{NewBase(loc), term, prose}
}
func (n *DefinitionEntry) Kind() Kind       { return KindDefinition }
func (n *DefinitionEntry) Children() []Node { return nil }
func (n *DefinitionEntry) Accept(v Visitor) { v.VisitDefinition(n) }

// ElementNode is one required element of an offense. Description is either
// a string literal or an arbitrary expression (e.g. a match expression
// encoding conditional phrasing).
type ElementNode struct {
	NodeBase
	ElementKind ElementKind
	Name        string
	Description Expr
}

func NewElement(kind ElementKind, name string, desc Expr, loc SourceLocation) *ElementNode {
	return &ElementNode{NewBase(loc), kind, name, desc}
}
func (n *ElementNode) Kind() Kind       { return KindElement }
func (n *ElementNode) Children() []Node { return []Node{n.Description} }
func (n *ElementNode) Accept(v Visitor) { v.VisitElement(n) }

// PenaltyNode describes the sentencing range for a statute. Any of the four
// bounds may be nil when not specified.
type PenaltyNode struct {
	NodeBase
	ImprisonmentMin *DurationLit
	ImprisonmentMax *DurationLit
	FineMin         *MoneyLit
	FineMax         *MoneyLit
	Supplementary   string
}

func NewPenalty(impMin, impMax *DurationLit, fineMin, fineMax *MoneyLit, supplementary string, loc SourceLocation) *PenaltyNode {
	return &PenaltyNode{NewBase(loc), impMin, impMax, fineMin, fineMax, supplementary}
}
func (n *PenaltyNode) Kind() Kind { return KindPenalty }
func (n *PenaltyNode) Children() []Node {
	var out []Node
	if n.ImprisonmentMin != nil {
		out = append(out, n.ImprisonmentMin)
	}
	if n.ImprisonmentMax != nil {
		out = append(out, n.ImprisonmentMax)
	}
	if n.FineMin != nil {
		out = append(out, n.FineMin)
	}
	if n.FineMax != nil {
		out = append(out, n.FineMax)
	}
	return out
}
func (n *PenaltyNode) Accept(v Visitor) { v.VisitPenalty(n) }

// IllustrationNode is a labelled example clarifying a statute's application.
type IllustrationNode struct {
	NodeBase
	Label       string
	Description string
}

func NewIllustration(label, desc string, loc SourceLocation) *IllustrationNode {
	return &IllustrationNode{NewBase(loc), label, desc}
}
func (n *IllustrationNode) Kind() Kind       { return KindIllustration }
func (n *IllustrationNode) Children() []Node { return nil }
func (n *IllustrationNode) Accept(v Visitor) { v.VisitIllustration(n) }

// StatuteNode is a numbered legal provision.
type StatuteNode struct {
	NodeBase
	SectionNumber string
	Title         string
	Definitions   []*DefinitionEntry
	Elements      []*ElementNode
	Penalty       *PenaltyNode // nil when absent
	Illustrations []*IllustrationNode
}

func NewStatute(section, title string, defs []*DefinitionEntry, elems []*ElementNode, penalty *PenaltyNode, illus []*IllustrationNode, loc SourceLocation) *StatuteNode {
	return &StatuteNode{NewBase(loc), section, title, defs, elems, penalty, illus}
}
func (n *StatuteNode) Kind() Kind { return KindStatute }
func (n *StatuteNode) Children() []Node {
	out := make([]Node, 0, len(n.Definitions)+len(n.Elements)+len(n.Illustrations)+1)
	for _, d := range n.Definitions {
		out = append(out, d)
	}
	for _, e := range n.Elements {
		out = append(out, e)
	}
	if n.Penalty != nil {
		out = append(out, n.Penalty)
	}
	for _, i := range n.Illustrations {
		out = append(out, i)
	}
	return out
}
func (n *StatuteNode) Accept(v Visitor) { v.VisitStatute(n) }
func (n *StatuteNode) declNode()        {}

// AssertionNode is a test-only assertion: condition must be true, with an
// optional message, evaluated only by the test harness (see the assertion
// evaluator), never by the compiler core itself.
type AssertionNode struct {
	NodeBase
	Condition Expr
	Message   string
}

func NewAssertion(cond Expr, message string, loc SourceLocation) *AssertionNode {
	return &AssertionNode{NewBase(loc), cond, message}
}
func (n *AssertionNode) Kind() Kind       { return KindAssertion }
func (n *AssertionNode) Children() []Node { return []Node{n.Condition} }
func (n *AssertionNode) Accept(v Visitor) { v.VisitAssertion(n) }
func (n *AssertionNode) declNode()        {}

// ModuleNode is the root of a Yuho source file, holding every declaration
// list in source order.
type ModuleNode struct {
	NodeBase
	Imports      []*ImportNode
	References   []*ReferencingNode
	TypeDefs     []*StructDefNode
	FunctionDefs []*FunctionDefNode
	Statutes     []*StatuteNode
	Variables    []*VariableDeclStmt
	Assertions   []*AssertionNode
}

func NewModule(loc SourceLocation) *ModuleNode {
	return &ModuleNode{NodeBase: NewBase(loc)}
}
func (n *ModuleNode) Kind() Kind { return KindModule }
func (n *ModuleNode) Children() []Node {
	out := make([]Node, 0)
	for _, i := range n.Imports {
		out = append(out, i)
	}
	for _, r := range n.References {
		out = append(out, r)
	}
	for _, t := range n.TypeDefs {
		out = append(out, t)
	}
	for _, f := range n.FunctionDefs {
		out = append(out, f)
	}
	for _, s := range n.Statutes {
		out = append(out, s)
	}
	for _, v := range n.Variables {
		out = append(out, v)
	}
	for _, a := range n.Assertions {
		out = append(out, a)
	}
	return out
}
func (n *ModuleNode) Accept(v Visitor) { v.VisitModule(n) }

package ast

// Visitor double-dispatches on node kind via Node.Accept. Every analysis
// pass implements this interface, typically by embedding BaseVisitor and
// overriding only the methods it cares about.
type Visitor interface {
	VisitModule(n *ModuleNode)
	VisitImport(n *ImportNode)
	VisitReferencing(n *ReferencingNode)
	VisitStructDef(n *StructDefNode)
	VisitFieldDef(n *FieldDef)
	VisitFunctionDef(n *FunctionDefNode)
	VisitParamDef(n *ParamDef)
	VisitStatute(n *StatuteNode)
	VisitDefinition(n *DefinitionEntry)
	VisitElement(n *ElementNode)
	VisitPenalty(n *PenaltyNode)
	VisitIllustration(n *IllustrationNode)
	VisitAssertion(n *AssertionNode)

	VisitBuiltinType(n *BuiltinType)
	VisitNamedType(n *NamedType)
	VisitOptionalType(n *OptionalType)
	VisitArrayType(n *ArrayType)
	VisitGenericType(n *GenericType)

	VisitIntLit(n *IntLit)
	VisitFloatLit(n *FloatLit)
	VisitBoolLit(n *BoolLit)
	VisitStringLit(n *StringLit)
	VisitMoneyLit(n *MoneyLit)
	VisitPercentLit(n *PercentLit)
	VisitDateLit(n *DateLit)
	VisitDurationLit(n *DurationLit)

	VisitIdentifier(n *IdentifierNode)
	VisitFieldAccess(n *FieldAccessNode)
	VisitIndexAccess(n *IndexAccessNode)
	VisitFunctionCall(n *FunctionCallNode)
	VisitBinaryExpr(n *BinaryExprNode)
	VisitUnaryExpr(n *UnaryExprNode)
	VisitMatchExpr(n *MatchExprNode)
	VisitMatchArm(n *MatchArm)
	VisitStructLiteral(n *StructLiteralNode)
	VisitFieldAssignment(n *FieldAssignment)
	VisitPassExpr(n *PassExprNode)

	VisitWildcardPattern(n *WildcardPattern)
	VisitBindingPattern(n *BindingPattern)
	VisitLiteralPattern(n *LiteralPattern)
	VisitStructPattern(n *StructPattern)
	VisitFieldPattern(n *FieldPattern)

	VisitVariableDecl(n *VariableDeclStmt)
	VisitAssignment(n *AssignmentStmt)
	VisitReturnStmt(n *ReturnStmt)
	VisitPassStmt(n *PassStmt)
	VisitExprStmt(n *ExprStmt)
	VisitBlock(n *Block)
}

// WalkChildren visits every structural child of n with v, in order.
func WalkChildren(v Visitor, n Node) {
	for _, c := range n.Children() {
		c.Accept(v)
	}
}

// BaseVisitor implements Visitor with the default behavior: recurse into
// every structural child, do nothing else. A concrete visitor embeds
// BaseVisitor by value and MUST set Self to itself right after
// construction (e.g. `w := &MyVisitor{}; w.Self = w`) so that the default
// methods' recursion dispatches back through the concrete visitor's
// overrides rather than looping through BaseVisitor alone — the same
// "self" indirection go/ast's Inspect avoids needing only because it isn't
// a double-dispatch interface.
type BaseVisitor struct {
	Self Visitor
}

func (b BaseVisitor) self() Visitor {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b BaseVisitor) VisitModule(n *ModuleNode)             { WalkChildren(b.self(), n) }
func (b BaseVisitor) VisitImport(n *ImportNode)             {}
func (b BaseVisitor) VisitReferencing(n *ReferencingNode)   {}
func (b BaseVisitor) VisitStructDef(n *StructDefNode)       { WalkChildren(b.self(), n) }
func (b BaseVisitor) VisitFieldDef(n *FieldDef)             { WalkChildren(b.self(), n) }
func (b BaseVisitor) VisitFunctionDef(n *FunctionDefNode)   { WalkChildren(b.self(), n) }
func (b BaseVisitor) VisitParamDef(n *ParamDef)             { WalkChildren(b.self(), n) }
func (b BaseVisitor) VisitStatute(n *StatuteNode)           { WalkChildren(b.self(), n) }
func (b BaseVisitor) VisitDefinition(n *DefinitionEntry)    {}
func (b BaseVisitor) VisitElement(n *ElementNode)           { WalkChildren(b.self(), n) }
func (b BaseVisitor) VisitPenalty(n *PenaltyNode)           { WalkChildren(b.self(), n) }
func (b BaseVisitor) VisitIllustration(n *IllustrationNode) {}
func (b BaseVisitor) VisitAssertion(n *AssertionNode)       { WalkChildren(b.self(), n) }

func (b BaseVisitor) VisitBuiltinType(n *BuiltinType)   {}
func (b BaseVisitor) VisitNamedType(n *NamedType)       {}
func (b BaseVisitor) VisitOptionalType(n *OptionalType) { WalkChildren(b.self(), n) }
func (b BaseVisitor) VisitArrayType(n *ArrayType)       { WalkChildren(b.self(), n) }
func (b BaseVisitor) VisitGenericType(n *GenericType)   { WalkChildren(b.self(), n) }

func (b BaseVisitor) VisitIntLit(n *IntLit)           {}
func (b BaseVisitor) VisitFloatLit(n *FloatLit)       {}
func (b BaseVisitor) VisitBoolLit(n *BoolLit)         {}
func (b BaseVisitor) VisitStringLit(n *StringLit)     {}
func (b BaseVisitor) VisitMoneyLit(n *MoneyLit)       {}
func (b BaseVisitor) VisitPercentLit(n *PercentLit)   {}
func (b BaseVisitor) VisitDateLit(n *DateLit)         {}
func (b BaseVisitor) VisitDurationLit(n *DurationLit) {}

func (b BaseVisitor) VisitIdentifier(n *IdentifierNode)     {}
func (b BaseVisitor) VisitFieldAccess(n *FieldAccessNode)   { WalkChildren(b.self(), n) }
func (b BaseVisitor) VisitIndexAccess(n *IndexAccessNode)   { WalkChildren(b.self(), n) }
func (b BaseVisitor) VisitFunctionCall(n *FunctionCallNode) { WalkChildren(b.self(), n) }
func (b BaseVisitor) VisitBinaryExpr(n *BinaryExprNode)     { WalkChildren(b.self(), n) }
func (b BaseVisitor) VisitUnaryExpr(n *UnaryExprNode)       { WalkChildren(b.self(), n) }
func (b BaseVisitor) VisitMatchExpr(n *MatchExprNode)       { WalkChildren(b.self(), n) }
func (b BaseVisitor) VisitMatchArm(n *MatchArm)             { WalkChildren(b.self(), n) }
func (b BaseVisitor) VisitStructLiteral(n *StructLiteralNode) { WalkChildren(b.self(), n) }
func (b BaseVisitor) VisitFieldAssignment(n *FieldAssignment) { WalkChildren(b.self(), n) }
func (b BaseVisitor) VisitPassExpr(n *PassExprNode)         {}

func (b BaseVisitor) VisitWildcardPattern(n *WildcardPattern) {}
func (b BaseVisitor) VisitBindingPattern(n *BindingPattern)   {}
func (b BaseVisitor) VisitLiteralPattern(n *LiteralPattern)   { WalkChildren(b.self(), n) }
func (b BaseVisitor) VisitStructPattern(n *StructPattern)     { WalkChildren(b.self(), n) }
func (b BaseVisitor) VisitFieldPattern(n *FieldPattern)       { WalkChildren(b.self(), n) }

func (b BaseVisitor) VisitVariableDecl(n *VariableDeclStmt) { WalkChildren(b.self(), n) }
func (b BaseVisitor) VisitAssignment(n *AssignmentStmt)     { WalkChildren(b.self(), n) }
func (b BaseVisitor) VisitReturnStmt(n *ReturnStmt)         { WalkChildren(b.self(), n) }
func (b BaseVisitor) VisitPassStmt(n *PassStmt)             {}
func (b BaseVisitor) VisitExprStmt(n *ExprStmt)             { WalkChildren(b.self(), n) }
func (b BaseVisitor) VisitBlock(n *Block)                   { WalkChildren(b.self(), n) }

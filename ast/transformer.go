package ast

// Transformer rewrites an immutable AST, producing a new tree that shares
// every unchanged subtree with the original (pointer-identity structural
// sharing). Each Transform* method returns a (possibly new) node of the same
// concrete type; the default implementation in BaseTransformer recursively
// transforms children and reconstructs the node only when at least one
// child's identity changed.
//
// Usage mirrors the Visitor pattern: embed BaseTransformer, set Self to the
// outer value, and override only the Transform* methods of interest.
type Transformer interface {
	TransformModule(n *ModuleNode) *ModuleNode
	TransformBlock(n *Block) *Block
	TransformStmt(n Stmt) Stmt
	TransformExpr(n Expr) Expr
	TransformPattern(n Pattern) Pattern
	TransformType(n TypeNode) TypeNode
	TransformMatchArm(n *MatchArm) *MatchArm
	TransformStructDef(n *StructDefNode) *StructDefNode
	TransformFunctionDef(n *FunctionDefNode) *FunctionDefNode
	TransformStatute(n *StatuteNode) *StatuteNode
}

// BaseTransformer implements the identity transform: every method rebuilds
// its node only if a recursively-transformed child changed identity.
type BaseTransformer struct {
	Self Transformer
}

func (b BaseTransformer) self() Transformer {
	if b.Self != nil {
		return b.Self
	}
	return b
}

// TransformModule rebuilds m's declaration lists, preserving source order,
// reusing m unchanged if nothing inside it changed.
func (b BaseTransformer) TransformModule(m *ModuleNode) *ModuleNode {
	s := b.self()
	changed := false

	newFuncs := make([]*FunctionDefNode, len(m.FunctionDefs))
	for i, f := range m.FunctionDefs {
		nf := s.TransformFunctionDef(f)
		if nf != f {
			changed = true
		}
		newFuncs[i] = nf
	}

	newStructs := make([]*StructDefNode, len(m.TypeDefs))
	for i, td := range m.TypeDefs {
		ns := s.TransformStructDef(td)
		if ns != td {
			changed = true
		}
		newStructs[i] = ns
	}

	newStatutes := make([]*StatuteNode, len(m.Statutes))
	for i, st := range m.Statutes {
		ns := s.TransformStatute(st)
		if ns != st {
			changed = true
		}
		newStatutes[i] = ns
	}

	newVars := make([]*VariableDeclStmt, len(m.Variables))
	for i, v := range m.Variables {
		nv := s.TransformStmt(v)
		vd, ok := nv.(*VariableDeclStmt)
		if !ok {
			vd = v
		}
		if vd != v {
			changed = true
		}
		newVars[i] = vd
	}

	if !changed {
		return m
	}
	out := *m
	out.FunctionDefs = newFuncs
	out.TypeDefs = newStructs
	out.Statutes = newStatutes
	out.Variables = newVars
	return &out
}

func (b BaseTransformer) TransformStructDef(n *StructDefNode) *StructDefNode { return n }
func (b BaseTransformer) TransformFunctionDef(n *FunctionDefNode) *FunctionDefNode {
	if n.Body == nil {
		return n
	}
	newBody := b.self().TransformBlock(n.Body)
	if newBody == n.Body {
		return n
	}
	out := *n
	out.Body = newBody
	return &out
}

func (b BaseTransformer) TransformStatute(n *StatuteNode) *StatuteNode { return n }

// TransformBlock rebuilds n if any statement changed.
func (b BaseTransformer) TransformBlock(n *Block) *Block {
	s := b.self()
	changed := false
	out := make([]Stmt, len(n.Statements))
	for i, st := range n.Statements {
		ns := s.TransformStmt(st)
		if ns != st {
			changed = true
		}
		out[i] = ns
	}
	if !changed {
		return n
	}
	newBlock := *n
	newBlock.Statements = out
	return &newBlock
}

// TransformStmt dispatches on n's concrete type and rebuilds it if its
// sub-expressions changed.
func (b BaseTransformer) TransformStmt(n Stmt) Stmt {
	s := b.self()
	switch st := n.(type) {
	case *VariableDeclStmt:
		var newInit Expr
		if st.Initializer != nil {
			newInit = s.TransformExpr(st.Initializer)
		}
		if newInit == st.Initializer {
			return st
		}
		out := *st
		out.Initializer = newInit
		return &out
	case *AssignmentStmt:
		newTarget := s.TransformExpr(st.Target)
		newValue := s.TransformExpr(st.Value)
		if newTarget == st.Target && newValue == st.Value {
			return st
		}
		out := *st
		out.Target, out.Value = newTarget, newValue
		return &out
	case *ReturnStmt:
		if st.Value == nil {
			return st
		}
		newValue := s.TransformExpr(st.Value)
		if newValue == st.Value {
			return st
		}
		out := *st
		out.Value = newValue
		return &out
	case *ExprStmt:
		newExpr := s.TransformExpr(st.Expr)
		if newExpr == st.Expr {
			return st
		}
		out := *st
		out.Expr = newExpr
		return &out
	case *Block:
		return s.TransformBlock(st)
	case *PassStmt:
		return st
	default:
		return st
	}
}

// TransformExpr dispatches on n's concrete type and rebuilds it if any
// sub-expression changed. Literal nodes have no sub-expressions and are
// always returned unchanged, which is what gives constant-folding
// transformers their cheap no-op path.
func (b BaseTransformer) TransformExpr(n Expr) Expr {
	s := b.self()
	switch e := n.(type) {
	case *BinaryExprNode:
		left := s.TransformExpr(e.Left)
		right := s.TransformExpr(e.Right)
		if left == e.Left && right == e.Right {
			return e
		}
		out := *e
		out.Left, out.Right = left, right
		return &out
	case *UnaryExprNode:
		operand := s.TransformExpr(e.Operand)
		if operand == e.Operand {
			return e
		}
		out := *e
		out.Operand = operand
		return &out
	case *FieldAccessNode:
		base := s.TransformExpr(e.Base)
		if base == e.Base {
			return e
		}
		out := *e
		out.Base = base
		return &out
	case *IndexAccessNode:
		base := s.TransformExpr(e.Base)
		idx := s.TransformExpr(e.Index)
		if base == e.Base && idx == e.Index {
			return e
		}
		out := *e
		out.Base, out.Index = base, idx
		return &out
	case *FunctionCallNode:
		callee := s.TransformExpr(e.Callee)
		changed := callee != e.Callee
		args := make([]Expr, len(e.Args))
		for i, a := range e.Args {
			na := s.TransformExpr(a)
			if na != a {
				changed = true
			}
			args[i] = na
		}
		if !changed {
			return e
		}
		out := *e
		out.Callee, out.Args = callee, args
		return &out
	case *MatchExprNode:
		changed := false
		var scrutinee Expr
		if e.Scrutinee != nil {
			scrutinee = s.TransformExpr(e.Scrutinee)
			if scrutinee != e.Scrutinee {
				changed = true
			}
		}
		arms := make([]*MatchArm, len(e.Arms))
		for i, a := range e.Arms {
			na := s.TransformMatchArm(a)
			if na != a {
				changed = true
			}
			arms[i] = na
		}
		if !changed {
			return e
		}
		out := *e
		out.Scrutinee, out.Arms = scrutinee, arms
		return &out
	case *StructLiteralNode:
		changed := false
		fields := make([]*FieldAssignment, len(e.FieldValues))
		for i, f := range e.FieldValues {
			newVal := s.TransformExpr(f.Value)
			if newVal == f.Value {
				fields[i] = f
				continue
			}
			changed = true
			nf := *f
			nf.Value = newVal
			fields[i] = &nf
		}
		if !changed {
			return e
		}
		out := *e
		out.FieldValues = fields
		return &out
	default:
		return n
	}
}

// TransformMatchArm rebuilds an arm if its guard or body changed.
func (b BaseTransformer) TransformMatchArm(n *MatchArm) *MatchArm {
	s := b.self()
	var guard Expr
	changed := false
	if n.Guard != nil {
		guard = s.TransformExpr(n.Guard)
		if guard != n.Guard {
			changed = true
		}
	}
	body := s.TransformExpr(n.Body)
	if body != n.Body {
		changed = true
	}
	if !changed {
		return n
	}
	out := *n
	out.Guard, out.Body = guard, body
	return &out
}

func (b BaseTransformer) TransformPattern(n Pattern) Pattern { return n }
func (b BaseTransformer) TransformType(n TypeNode) TypeNode  { return n }

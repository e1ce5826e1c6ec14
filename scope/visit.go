package scope

import "github.com/gongahkia/yuho/ast"

// visitModule is pass two: a full traversal that visits struct and function
// bodies (but does not re-register the signatures pass one already defined)
// resolving every identifier reference and reporting undeclared uses and
// inner redeclarations.
func (r *resolver) visitModule(m *ast.ModuleNode, module *Scope) {
	for _, sd := range m.TypeDefs {
		r.visitStructDef(sd, module)
	}
	for _, fd := range m.FunctionDefs {
		r.visitFunctionDef(fd, module)
	}
	for _, st := range m.Statutes {
		r.visitStatute(st, module)
	}
	for _, v := range m.Variables {
		r.visitVariableDecl(v, module)
	}
	for _, a := range m.Assertions {
		r.visitExpr(a.Condition, module)
	}
}

func (r *resolver) visitStructDef(sd *ast.StructDefNode, parent *Scope) {
	body := newScope(KindStructBody, parent)
	for _, f := range sd.Fields {
		if f.IsEnumVariant() {
			sym := &Symbol{Name: f.Name, Kind: SymbolEnumVariant, Type: ast.Named(sd.Name), Loc: f.Loc(), Decl: f}
			if prev := body.Define(sym); prev != nil {
				r.redeclared(f.Name, f.Loc(), prev.Loc)
			}
			continue
		}
		sym := &Symbol{Name: f.Name, Kind: SymbolField, Type: f.Type.ToAnnotation(), Loc: f.Loc(), Decl: f}
		if prev := body.Define(sym); prev != nil {
			r.redeclared(f.Name, f.Loc(), prev.Loc)
		}
	}
}

func (r *resolver) visitFunctionDef(fd *ast.FunctionDefNode, parent *Scope) {
	body := newScope(KindFunctionBody, parent)
	for _, p := range fd.Params {
		sym := &Symbol{Name: p.Name, Kind: SymbolParameter, Type: p.Type.ToAnnotation(), Loc: p.Loc(), Decl: p}
		if prev := body.Define(sym); prev != nil {
			r.redeclared(p.Name, p.Loc(), prev.Loc)
		}
	}
	if fd.Body != nil {
		r.visitBlock(fd.Body, body)
	}
}

func (r *resolver) visitStatute(st *ast.StatuteNode, parent *Scope) {
	body := newScope(KindStatuteBody, parent)
	for _, e := range st.Elements {
		r.visitExpr(e.Description, body)
	}
}

func (r *resolver) visitBlock(b *ast.Block, parent *Scope) {
	s := newScope(KindBlock, parent)
	for _, stmt := range b.Statements {
		r.visitStmt(stmt, s)
	}
}

func (r *resolver) visitStmt(stmt ast.Stmt, s *Scope) {
	switch n := stmt.(type) {
	case *ast.VariableDeclStmt:
		r.visitVariableDecl(n, s)
	case *ast.AssignmentStmt:
		r.visitExpr(n.Target, s)
		r.visitExpr(n.Value, s)
	case *ast.ReturnStmt:
		if n.Value != nil {
			r.visitExpr(n.Value, s)
		}
	case *ast.ExprStmt:
		r.visitExpr(n.Expr, s)
	case *ast.Block:
		r.visitBlock(n, s)
	case *ast.PassStmt:
		// no-op
	}
}

func (r *resolver) visitVariableDecl(n *ast.VariableDeclStmt, s *Scope) {
	if n.Initializer != nil {
		r.visitExpr(n.Initializer, s)
	}
	typ := ast.UnknownType
	if n.Type != nil {
		typ = n.Type.ToAnnotation()
	}
	sym := &Symbol{Name: n.Name, Kind: SymbolVariable, Type: typ, Loc: n.Loc(), Decl: n}
	if prev := s.Define(sym); prev != nil {
		r.redeclared(n.Name, n.Loc(), prev.Loc)
	}
}

// visitExpr resolves every identifier reachable from e against s, recording
// each resolution (or undeclared-identifier error) as it goes.
func (r *resolver) visitExpr(e ast.Expr, s *Scope) {
	switch n := e.(type) {
	case *ast.IdentifierNode:
		if reservedIdentifiers[n.Name] {
			return
		}
		sym, ok := s.Lookup(n.Name)
		if !ok {
			r.undeclared(n.Name, n.Loc())
			return
		}
		r.refs[n.ID()] = sym
	case *ast.FieldAccessNode:
		r.visitExpr(n.Base, s)
	case *ast.IndexAccessNode:
		r.visitExpr(n.Base, s)
		r.visitExpr(n.Index, s)
	case *ast.FunctionCallNode:
		r.visitExpr(n.Callee, s)
		for _, a := range n.Args {
			r.visitExpr(a, s)
		}
	case *ast.BinaryExprNode:
		r.visitExpr(n.Left, s)
		r.visitExpr(n.Right, s)
	case *ast.UnaryExprNode:
		r.visitExpr(n.Operand, s)
	case *ast.MatchExprNode:
		r.visitMatchExpr(n, s)
	case *ast.StructLiteralNode:
		for _, f := range n.FieldValues {
			r.visitExpr(f.Value, s)
		}
	default:
		// Literals and PassExprNode introduce no references.
	}
}

// visitMatchExpr gives every arm its own scope, so a BindingPattern is
// visible only within that arm's guard and body.
func (r *resolver) visitMatchExpr(n *ast.MatchExprNode, parent *Scope) {
	if n.Scrutinee != nil {
		r.visitExpr(n.Scrutinee, parent)
	}
	for _, arm := range n.Arms {
		armScope := newScope(KindMatchArm, parent)
		r.bindPattern(arm.Pattern, armScope)
		if arm.Guard != nil {
			r.visitExpr(arm.Guard, armScope)
		}
		r.visitExpr(arm.Body, armScope)
	}
}

// bindPattern introduces every name a pattern binds into s, and resolves
// any identifier references nested in literal/struct sub-patterns.
func (r *resolver) bindPattern(p ast.Pattern, s *Scope) {
	switch n := p.(type) {
	case *ast.BindingPattern:
		sym := &Symbol{Name: n.Name, Kind: SymbolVariable, Type: ast.UnknownType, Loc: n.Loc(), Decl: n}
		s.Define(sym) // match-arm bindings shadow freely, no redeclaration check
	case *ast.LiteralPattern:
		r.visitExpr(n.Literal, s)
	case *ast.StructPattern:
		for _, f := range n.Fields {
			if f.Sub != nil {
				r.bindPattern(f.Sub, s)
			}
		}
	case *ast.WildcardPattern:
		// binds nothing
	}
}

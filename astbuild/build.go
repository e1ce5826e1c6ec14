// Package astbuild lowers a participle parse tree (package parser) into the
// immutable semantic AST (package ast): normalizing literals, resolving
// currency symbols, and substituting a placeholder node whenever a subtree
// is ambiguous or missing rather than failing the whole build.
package astbuild

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/gongahkia/yuho/ast"
	"github.com/gongahkia/yuho/internal/diag"
	"github.com/gongahkia/yuho/parser"
)

// builder carries the diagnostic bag and source file name through a single
// Build call. It has no other state: every method is a pure function of its
// parse-tree argument plus b.file.
type builder struct {
	file string
	bag  *diag.Bag
}

// Build lowers a parsed Module into the semantic AST, returning every
// diagnostic produced along the way. The returned *ast.ModuleNode is never
// nil, even when diagnostics are present, so later passes always have a tree
// to walk (possibly full of placeholder nodes).
func Build(tree *parser.Module, file string) (*ast.ModuleNode, []diag.Diagnostic) {
	b := &builder{file: file, bag: diag.NewBag()}
	m := b.buildModule(tree)
	return m, b.bag.All()
}

func (b *builder) loc(p lexer.Position) ast.SourceLocation {
	return ast.SourceLocation{
		File:      b.file,
		StartLine: p.Line,
		StartCol:  p.Column,
		EndLine:   p.Line,
		EndCol:    p.Column,
		StartByte: p.Offset,
		EndByte:   p.Offset,
	}
}

func (b *builder) warnf(loc ast.SourceLocation, format string, args ...any) {
	b.bag.Add(diag.Diagnostic{
		Class:    diag.ClassSemantic,
		Severity: diag.SeverityWarning,
		Location: toLocation(loc),
		Message:  fmt.Sprintf(format, args...),
	})
}

func toLocation(l ast.SourceLocation) diag.Location {
	return diag.Location{
		File: l.File, Line: l.StartLine, Col: l.StartCol,
		EndLine: l.EndLine, EndCol: l.EndCol,
		StartByte: l.StartByte, EndByte: l.EndByte,
	}
}

func (b *builder) buildModule(tree *parser.Module) *ast.ModuleNode {
	loc := b.loc(tree.Pos)
	m := ast.NewModule(loc)
	for _, d := range tree.Decls {
		switch {
		case d.Import != nil:
			m.Imports = append(m.Imports, b.buildImport(d.Import))
		case d.Referencing != nil:
			m.References = append(m.References, ast.NewReferencing(d.Referencing.Path, b.loc(d.Referencing.Pos)))
		case d.StructDef != nil:
			m.TypeDefs = append(m.TypeDefs, b.buildStructDef(d.StructDef))
		case d.FunctionDef != nil:
			m.FunctionDefs = append(m.FunctionDefs, b.buildFunctionDef(d.FunctionDef))
		case d.Statute != nil:
			m.Statutes = append(m.Statutes, b.buildStatute(d.Statute))
		case d.VarDecl != nil:
			m.Variables = append(m.Variables, b.buildVarDecl(d.VarDecl))
		case d.Assert != nil:
			m.Assertions = append(m.Assertions, b.buildAssert(d.Assert))
		}
	}
	return m
}

func (b *builder) buildImport(n *parser.ImportDecl) *ast.ImportNode {
	return ast.NewImport(n.Path, n.Names, n.Wildcard, b.loc(n.Pos))
}

func (b *builder) buildStructDef(n *parser.StructDef) *ast.StructDefNode {
	fields := make([]*ast.FieldDef, 0, len(n.Fields))
	for _, f := range n.Fields {
		var t ast.TypeNode
		if f.Type != nil {
			t = b.buildType(f.Type)
		}
		fields = append(fields, ast.NewFieldDef(f.Name, t, b.loc(f.Pos)))
	}
	return ast.NewStructDef(n.Name, n.TypeParams, fields, b.loc(n.Pos))
}

func (b *builder) buildFunctionDef(n *parser.FunctionDef) *ast.FunctionDefNode {
	params := make([]*ast.ParamDef, 0, len(n.Params))
	for _, p := range n.Params {
		params = append(params, ast.NewParamDef(p.Name, b.buildType(p.Type), b.loc(p.Pos)))
	}
	var ret ast.TypeNode
	if n.ReturnType != nil {
		ret = b.buildType(n.ReturnType)
	}
	body := b.buildBlock(n.Body)
	return ast.NewFunctionDef(n.Name, params, ret, body, b.loc(n.Pos))
}

func (b *builder) buildType(n *parser.TypeExpr) ast.TypeNode {
	loc := b.loc(n.Pos)
	var base ast.TypeNode
	if len(n.TypeArgs) > 0 {
		args := make([]ast.TypeNode, 0, len(n.TypeArgs))
		for _, a := range n.TypeArgs {
			args = append(args, b.buildType(a))
		}
		base = ast.NewGenericType(n.Name, args, loc)
	} else if ast.BuiltinScalarNames[n.Name] {
		base = ast.NewBuiltinType(n.Name, loc)
	} else {
		base = ast.NewNamedType(n.Name, loc)
	}
	if n.ArrayMark {
		base = ast.NewArrayType(base, loc)
	}
	if n.OptionMark {
		base = ast.NewOptionalType(base, loc)
	}
	return base
}

func (b *builder) buildStatute(n *parser.StatuteBlock) *ast.StatuteNode {
	title := ""
	if n.Title != nil {
		title = *n.Title
	}
	var defs []*ast.DefinitionEntry
	if n.Definitions != nil {
		for _, d := range n.Definitions.Items {
			defs = append(defs, ast.NewDefinitionEntry(d.Term, d.Prose, b.loc(d.Pos)))
		}
	}
	var elems []*ast.ElementNode
	if n.Elements != nil {
		for _, e := range n.Elements.Items {
			elems = append(elems, b.buildElement(e))
		}
	}
	var penalty *ast.PenaltyNode
	if n.Penalty != nil {
		penalty = b.buildPenalty(n.Penalty)
	}
	var illus []*ast.IllustrationNode
	if n.Illustrations != nil {
		for _, it := range n.Illustrations.Items {
			label := ""
			if it.Label != nil {
				label = *it.Label
			}
			illus = append(illus, ast.NewIllustration(label, it.Description, b.loc(it.Pos)))
		}
	}
	return ast.NewStatute(n.SectionNumber, title, defs, elems, penalty, illus, b.loc(n.Pos))
}

func (b *builder) buildElement(n *parser.ElementItem) *ast.ElementNode {
	kind := ast.ElementKind(n.ElementKind)
	var desc ast.Expr
	if n.StrDesc != nil {
		desc = ast.NewStringLit(*n.StrDesc, b.loc(n.Pos))
	} else if n.ExprDesc != nil {
		desc = b.buildExpr(n.ExprDesc)
	} else {
		desc = ast.NewPassExpr(b.loc(n.Pos))
	}
	return ast.NewElement(kind, n.Name, desc, b.loc(n.Pos))
}

func (b *builder) buildPenalty(n *parser.PenaltyBlock) *ast.PenaltyNode {
	var impMin, impMax *ast.DurationLit
	if n.ImprisonmentMin != nil {
		impMin = b.buildDuration(n.ImprisonmentMin)
	}
	if n.ImprisonmentMax != nil {
		impMax = b.buildDuration(n.ImprisonmentMax)
	}
	var fineMin, fineMax *ast.MoneyLit
	if n.FineMin != nil {
		fineMin = b.buildMoney(n.FineMin)
	}
	if n.FineMax != nil {
		fineMax = b.buildMoney(n.FineMax)
	}
	supp := ""
	if n.Supplementary != nil {
		supp = *n.Supplementary
	}
	return ast.NewPenalty(impMin, impMax, fineMin, fineMax, supp, b.loc(n.Pos))
}

func (b *builder) buildAssert(n *parser.AssertStmt) *ast.AssertionNode {
	msg := ""
	if n.Message != nil {
		msg = *n.Message
	}
	return ast.NewAssertion(b.buildExpr(n.Condition), msg, b.loc(n.Pos))
}

func (b *builder) buildBlock(n *parser.BlockStmt) *ast.Block {
	stmts := make([]ast.Stmt, 0, len(n.Statements))
	for _, s := range n.Statements {
		stmts = append(stmts, b.buildStmt(s))
	}
	return ast.NewBlock(stmts, b.loc(n.Pos))
}

func (b *builder) buildStmt(n *parser.Statement) ast.Stmt {
	switch {
	case n.VarDecl != nil:
		return b.buildVarDecl(n.VarDecl)
	case n.Return != nil:
		var v ast.Expr
		if n.Return.Value != nil {
			v = b.buildExpr(n.Return.Value)
		}
		return ast.NewReturnStmt(v, b.loc(n.Pos))
	case n.Pass != nil:
		return ast.NewPassStmt(b.loc(n.Pos))
	case n.Assign != nil:
		return ast.NewAssignment(b.buildExpr(n.Assign.Target), b.buildExpr(n.Assign.Value), b.loc(n.Pos))
	case n.ExprStmt != nil:
		return ast.NewExprStmt(b.buildExpr(n.ExprStmt.Expr), b.loc(n.Pos))
	case n.Block != nil:
		return b.buildBlock(n.Block)
	default:
		b.warnf(b.loc(n.Pos), "empty statement")
		return ast.NewPassStmt(b.loc(n.Pos))
	}
}

func (b *builder) buildVarDecl(n *parser.VarDeclStmt) *ast.VariableDeclStmt {
	var t ast.TypeNode
	if n.Type != nil {
		t = b.buildType(n.Type)
	}
	var init ast.Expr
	if n.Init != nil {
		init = b.buildExpr(n.Init)
	}
	return ast.NewVariableDecl(t, n.Name, init, b.loc(n.Pos))
}

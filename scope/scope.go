// Package scope builds the lexical scope tree for a module, defining every
// symbol and resolving every identifier reference, per the two-phase
// algorithm in the scope-and-symbol-resolution design: a first pass
// registers struct and function signatures once so forward references
// resolve, then a second full traversal visits bodies and reports
// redeclarations and undeclared identifiers.
package scope

import (
	"fmt"

	"github.com/gongahkia/yuho/ast"
	"github.com/gongahkia/yuho/internal/diag"
)

// Kind identifies the lexical nature of a Scope.
type Kind string

const (
	KindModule       Kind = "module"
	KindStructBody   Kind = "struct-body"
	KindFunctionBody Kind = "function-body"
	KindBlock        Kind = "block"
	KindStatuteBody  Kind = "statute-body"
	KindMatchArm     Kind = "match-arm"
)

// SymbolKind identifies what a Symbol names.
type SymbolKind string

const (
	SymbolVariable    SymbolKind = "variable"
	SymbolFunction    SymbolKind = "function"
	SymbolStruct      SymbolKind = "struct"
	SymbolParameter   SymbolKind = "parameter"
	SymbolField       SymbolKind = "field"
	SymbolEnumVariant SymbolKind = "enum-variant"
)

// Symbol is one named entity defined in some Scope.
type Symbol struct {
	Name string
	Kind SymbolKind
	Type ast.TypeAnnotation
	Loc  ast.SourceLocation
	// Decl is the declaring node (FunctionDefNode, StructDefNode,
	// ParamDef, VariableDeclStmt, FieldDef, or BindingPattern), kept for
	// later passes that need the original declaration.
	Decl ast.Node
}

// Scope is one lexical scope, chained to its parent.
type Scope struct {
	Kind    Kind
	Parent  *Scope
	symbols map[string]*Symbol
}

func newScope(kind Kind, parent *Scope) *Scope {
	return &Scope{Kind: kind, Parent: parent, symbols: make(map[string]*Symbol)}
}

// Define introduces name into s. It returns the previously-defined symbol
// (non-nil) when name already exists directly in s, so the caller can
// report a redeclaration with the earlier location.
func (s *Scope) Define(sym *Symbol) *Symbol {
	if prev, ok := s.symbols[sym.Name]; ok {
		return prev
	}
	s.symbols[sym.Name] = sym
	return nil
}

// Lookup walks s and its ancestors, returning the nearest matching symbol.
func (s *Scope) Lookup(name string) (*Symbol, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if sym, ok := cur.symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// reservedIdentifiers never trigger an undeclared-identifier error even when
// no symbol binds them.
var reservedIdentifiers = map[string]bool{
	"TRUE": true, "FALSE": true, "true": true, "false": true, "pass": true,
}

// Result is the output of resolving a module: the module scope (retained so
// later passes can re-look-up top-level names) and every symbol resolved
// per-reference, keyed by the referencing IdentifierNode's NodeID.
type Result struct {
	ModuleScope *Scope
	Refs        map[ast.NodeID]*Symbol
}

// Resolve runs the two-phase algorithm over m and returns the resolved
// scope tree plus every diagnostic raised.
func Resolve(m *ast.ModuleNode) (*Result, []diag.Diagnostic) {
	r := &resolver{
		bag:  diag.NewBag(),
		refs: make(map[ast.NodeID]*Symbol),
	}
	moduleScope := newScope(KindModule, nil)
	r.registerSignatures(m, moduleScope)
	r.visitModule(m, moduleScope)
	return &Result{ModuleScope: moduleScope, Refs: r.refs}, r.bag.All()
}

type resolver struct {
	bag  *diag.Bag
	refs map[ast.NodeID]*Symbol
}

func (r *resolver) redeclared(name string, loc, prevLoc ast.SourceLocation) {
	r.bag.Add(diag.Diagnostic{
		Class:    diag.ClassSemantic,
		Severity: diag.SeverityError,
		Location: toLocation(loc),
		Message:  fmt.Sprintf("redeclaration of %q (previously declared at %d:%d)", name, prevLoc.StartLine, prevLoc.StartCol),
	})
}

func (r *resolver) undeclared(name string, loc ast.SourceLocation) {
	r.bag.Add(diag.Diagnostic{
		Class:    diag.ClassSemantic,
		Severity: diag.SeverityError,
		Location: toLocation(loc),
		Message:  fmt.Sprintf("Undeclared identifier '%s'", name),
	})
}

func toLocation(l ast.SourceLocation) diag.Location {
	return diag.Location{
		File: l.File, Line: l.StartLine, Col: l.StartCol,
		EndLine: l.EndLine, EndCol: l.EndCol,
		StartByte: l.StartByte, EndByte: l.EndByte,
	}
}

// registerSignatures is pass one: define every struct and function name in
// the module scope exactly once, so a function may reference a struct or
// function declared later in the same file.
func (r *resolver) registerSignatures(m *ast.ModuleNode, module *Scope) {
	for _, sd := range m.TypeDefs {
		sym := &Symbol{Name: sd.Name, Kind: SymbolStruct, Type: ast.Named(sd.Name), Loc: sd.Loc(), Decl: sd}
		if prev := module.Define(sym); prev != nil {
			r.redeclared(sd.Name, sd.Loc(), prev.Loc)
		}
	}
	for _, fd := range m.FunctionDefs {
		retType := ast.VoidType
		if fd.ReturnType != nil {
			retType = fd.ReturnType.ToAnnotation()
		}
		sym := &Symbol{Name: fd.Name, Kind: SymbolFunction, Type: retType, Loc: fd.Loc(), Decl: fd}
		if prev := module.Define(sym); prev != nil {
			r.redeclared(fd.Name, fd.Loc(), prev.Loc)
		}
	}
}

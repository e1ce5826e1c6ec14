// Package typeinfer assigns every expression an inferred ast.TypeAnnotation,
// recorded in a side table keyed by ast.NodeID rather than stored on the
// (immutable) node itself.
package typeinfer

import (
	"github.com/gongahkia/yuho/ast"
	"github.com/gongahkia/yuho/internal/diag"
	"github.com/gongahkia/yuho/scope"
)

// Table is the NodeID -> TypeAnnotation side table produced by Infer.
type Table struct {
	types map[ast.NodeID]ast.TypeAnnotation
}

func newTable() *Table { return &Table{types: make(map[ast.NodeID]ast.TypeAnnotation)} }

// TypeOf returns the inferred type for n, or UnknownType if n was never
// visited (e.g. a node outside any expression position).
func (t *Table) TypeOf(n ast.Node) ast.TypeAnnotation {
	if ty, ok := t.types[n.ID()]; ok {
		return ty
	}
	return ast.UnknownType
}

func (t *Table) set(n ast.Node, ty ast.TypeAnnotation) ast.TypeAnnotation {
	t.types[n.ID()] = ty
	return ty
}

// Infer walks every function body, statute element, and module-level
// variable initializer in m, inferring and recording a type for each
// expression node reachable from them.
func Infer(m *ast.ModuleNode, sc *scope.Result) (*Table, []diag.Diagnostic) {
	inf := &inferer{
		table:   newTable(),
		bag:     diag.NewBag(),
		scope:   sc,
		structs: indexStructs(m),
		funcs:   indexFuncs(m),
	}
	for _, fd := range m.FunctionDefs {
		if fd.Body != nil {
			inf.inferBlock(fd.Body)
		}
	}
	for _, st := range m.Statutes {
		for _, el := range st.Elements {
			inf.inferExpr(el.Description)
		}
	}
	for _, v := range m.Variables {
		if v.Initializer != nil {
			inf.inferExpr(v.Initializer)
		}
	}
	for _, a := range m.Assertions {
		inf.inferExpr(a.Condition)
	}
	return inf.table, inf.bag.All()
}

func indexStructs(m *ast.ModuleNode) map[string]*ast.StructDefNode {
	out := make(map[string]*ast.StructDefNode, len(m.TypeDefs))
	for _, sd := range m.TypeDefs {
		out[sd.Name] = sd
	}
	return out
}

func indexFuncs(m *ast.ModuleNode) map[string]*ast.FunctionDefNode {
	out := make(map[string]*ast.FunctionDefNode, len(m.FunctionDefs))
	for _, fd := range m.FunctionDefs {
		out[fd.Name] = fd
	}
	return out
}

type inferer struct {
	table   *Table
	bag     *diag.Bag
	scope   *scope.Result
	structs map[string]*ast.StructDefNode
	funcs   map[string]*ast.FunctionDefNode
}

func (inf *inferer) inferBlock(b *ast.Block) {
	for _, stmt := range b.Statements {
		inf.inferStmt(stmt)
	}
}

func (inf *inferer) inferStmt(stmt ast.Stmt) {
	switch n := stmt.(type) {
	case *ast.VariableDeclStmt:
		if n.Initializer != nil {
			inf.inferExpr(n.Initializer)
		}
	case *ast.AssignmentStmt:
		inf.inferExpr(n.Target)
		inf.inferExpr(n.Value)
	case *ast.ReturnStmt:
		if n.Value != nil {
			inf.inferExpr(n.Value)
		}
	case *ast.ExprStmt:
		inf.inferExpr(n.Expr)
	case *ast.Block:
		inf.inferBlock(n)
	}
}

// inferExpr infers and records e's type, recursing into sub-expressions
// first so every reachable node gets an entry in the table.
func (inf *inferer) inferExpr(e ast.Expr) ast.TypeAnnotation {
	switch n := e.(type) {
	case *ast.IntLit:
		return inf.table.set(n, ast.IntType)
	case *ast.FloatLit:
		return inf.table.set(n, ast.FloatType)
	case *ast.BoolLit:
		return inf.table.set(n, ast.BoolType)
	case *ast.StringLit:
		return inf.table.set(n, ast.StringType)
	case *ast.MoneyLit:
		return inf.table.set(n, ast.MoneyType)
	case *ast.PercentLit:
		return inf.table.set(n, ast.PercentType)
	case *ast.DateLit:
		return inf.table.set(n, ast.DateType)
	case *ast.DurationLit:
		return inf.table.set(n, ast.DurationType)
	case *ast.PassExprNode:
		return inf.table.set(n, ast.UnknownType)
	case *ast.IdentifierNode:
		if sym, ok := inf.scope.Refs[n.ID()]; ok {
			return inf.table.set(n, sym.Type)
		}
		return inf.table.set(n, ast.UnknownType)
	case *ast.FieldAccessNode:
		baseTy := inf.inferExpr(n.Base)
		if sd, ok := inf.structs[baseTy.TypeName]; ok {
			for _, f := range sd.Fields {
				if f.Name == n.FieldName && f.Type != nil {
					return inf.table.set(n, f.Type.ToAnnotation())
				}
			}
		}
		// Enum-variant access (Enum.Variant) or an unresolved base: name
		// the result after the base's type, so Color.red is a Color.
		return inf.table.set(n, ast.Named(baseTy.TypeName))
	case *ast.IndexAccessNode:
		baseTy := inf.inferExpr(n.Base)
		inf.inferExpr(n.Index)
		if baseTy.IsArray && baseTy.ElementType != nil {
			return inf.table.set(n, *baseTy.ElementType)
		}
		return inf.table.set(n, ast.UnknownType)
	case *ast.FunctionCallNode:
		for _, a := range n.Args {
			inf.inferExpr(a)
		}
		if callee, ok := n.Callee.(*ast.IdentifierNode); ok {
			if fd, ok := inf.funcs[callee.Name]; ok {
				retTy := ast.VoidType
				if fd.ReturnType != nil {
					retTy = fd.ReturnType.ToAnnotation()
				}
				inf.table.set(callee, retTy)
				return inf.table.set(n, retTy)
			}
		} else {
			inf.inferExpr(n.Callee)
		}
		return inf.table.set(n, ast.UnknownType)
	case *ast.BinaryExprNode:
		return inf.inferBinary(n)
	case *ast.UnaryExprNode:
		operandTy := inf.inferExpr(n.Operand)
		switch n.Operator {
		case "!", "not":
			return inf.table.set(n, ast.BoolType)
		default:
			return inf.table.set(n, operandTy)
		}
	case *ast.MatchExprNode:
		return inf.inferMatch(n)
	case *ast.StructLiteralNode:
		for _, f := range n.FieldValues {
			inf.inferExpr(f.Value)
		}
		if n.StructName == "" {
			return inf.table.set(n, ast.UnknownType)
		}
		return inf.table.set(n, ast.Named(n.StructName))
	default:
		return ast.UnknownType
	}
}

var comparisonOps = map[string]bool{
	"==": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true,
	"&&": true, "||": true, "and": true, "or": true,
}

func (inf *inferer) inferBinary(n *ast.BinaryExprNode) ast.TypeAnnotation {
	left := inf.inferExpr(n.Left)
	right := inf.inferExpr(n.Right)

	if comparisonOps[n.Operator] {
		return inf.table.set(n, ast.BoolType)
	}

	switch {
	case left.TypeName == "string" && right.TypeName == "string" && n.Operator == "+":
		return inf.table.set(n, ast.StringType)
	case left.TypeName == "money" || right.TypeName == "money":
		return inf.table.set(n, ast.MoneyType)
	case left.TypeName == "duration" || right.TypeName == "duration":
		return inf.table.set(n, ast.DurationType)
	case left.TypeName == "float" || right.TypeName == "float":
		return inf.table.set(n, ast.FloatType)
	case left.TypeName == "int" && right.TypeName == "int":
		return inf.table.set(n, ast.IntType)
	default:
		return inf.table.set(n, ast.UnknownType)
	}
}

// inferMatch assigns the common type across arms: the first arm whose body
// type isn't unknown (pass bodies infer as unknown) wins, and every other
// non-placeholder arm must
// agree with it (a mismatch is left to the type checker to report; here we
// only record the winning type).
func (inf *inferer) inferMatch(n *ast.MatchExprNode) ast.TypeAnnotation {
	if n.Scrutinee != nil {
		inf.inferExpr(n.Scrutinee)
	}
	result := ast.UnknownType
	for _, arm := range n.Arms {
		if arm.Guard != nil {
			inf.inferExpr(arm.Guard)
		}
		bodyTy := inf.inferExpr(arm.Body)
		if result.TypeName == ast.UnknownType.TypeName && bodyTy.TypeName != ast.UnknownType.TypeName {
			result = bodyTy
		}
	}
	return inf.table.set(n, result)
}

// Package typecheck enforces type compatibility across a module using the
// side table typeinfer produces: declaration/assignment compatibility,
// operator operand-kind checks, call arity/argument checks, return-type
// conformance, match-guard/arm coherence, and struct-literal field checks.
package typecheck

import (
	"fmt"

	"github.com/gongahkia/yuho/ast"
	"github.com/gongahkia/yuho/internal/diag"
	"github.com/gongahkia/yuho/typeinfer"
)

// Compatible implements the compatibility rule set: exact-name match,
// unknown/pass treated as compatible with anything, optional-of-T accepts
// T, and int widens to float.
func Compatible(declared, actual ast.TypeAnnotation) bool {
	if declared.TypeName == ast.UnknownType.TypeName || actual.TypeName == ast.UnknownType.TypeName {
		return true
	}
	if declared.Equal(actual) {
		return true
	}
	if declared.IsOptional && !actual.IsOptional {
		inner := declared
		inner.IsOptional = false
		if Compatible(inner, actual) {
			return true
		}
	}
	if declared.TypeName == "float" && actual.TypeName == "int" && declared.IsArray == actual.IsArray {
		return true
	}
	return false
}

type checker struct {
	bag     *diag.Bag
	types   *typeinfer.Table
	structs map[string]*ast.StructDefNode
	funcs   map[string]*ast.FunctionDefNode
}

// Check walks m reporting every type-incompatibility it finds, using the
// inference table already computed for m.
func Check(m *ast.ModuleNode, types *typeinfer.Table) []diag.Diagnostic {
	c := &checker{
		bag:     diag.NewBag(),
		types:   types,
		structs: indexStructs(m),
		funcs:   indexFuncs(m),
	}
	for _, fd := range m.FunctionDefs {
		c.checkFunctionDef(fd)
	}
	for _, v := range m.Variables {
		c.checkVarDecl(v)
	}
	for _, st := range m.Statutes {
		for _, el := range st.Elements {
			c.checkExpr(el.Description)
		}
	}
	for _, a := range m.Assertions {
		cond := c.types.TypeOf(a.Condition)
		if !Compatible(ast.BoolType, cond) {
			c.errf(a.Condition, "assert condition must be bool, got %s", cond)
		}
		c.checkExpr(a.Condition)
	}
	return c.bag.All()
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

func (c *checker) errf(n ast.Node, format string, args ...any) {
	c.bag.Add(diag.Diagnostic{
		Class:    diag.ClassType,
		Severity: diag.SeverityError,
		Location: toLocation(n.Loc()),
		Message:  fmt.Sprintf(format, args...),
	})
}

func (c *checker) warnf(n ast.Node, format string, args ...any) {
	c.bag.Add(diag.Diagnostic{
		Class:    diag.ClassType,
		Severity: diag.SeverityWarning,
		Location: toLocation(n.Loc()),
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

func (c *checker) checkFunctionDef(fd *ast.FunctionDefNode) {
	if fd.Body == nil {
		return
	}
	retType := ast.VoidType
	if fd.ReturnType != nil {
		retType = fd.ReturnType.ToAnnotation()
	}
	c.checkBlock(fd.Body, retType)
}

func (c *checker) checkBlock(b *ast.Block, retType ast.TypeAnnotation) {
	for _, stmt := range b.Statements {
		c.checkStmt(stmt, retType)
	}
}

func (c *checker) checkStmt(stmt ast.Stmt, retType ast.TypeAnnotation) {
	switch n := stmt.(type) {
	case *ast.VariableDeclStmt:
		c.checkVarDecl(n)
	case *ast.AssignmentStmt:
		c.checkExpr(n.Target)
		c.checkExpr(n.Value)
		targetTy := c.types.TypeOf(n.Target)
		valueTy := c.types.TypeOf(n.Value)
		if !Compatible(targetTy, valueTy) {
			c.errf(n, "cannot assign %s to %s", valueTy, targetTy)
		}
	case *ast.ReturnStmt:
		if n.Value == nil {
			if retType.TypeName != ast.VoidType.TypeName && retType.TypeName != ast.UnknownType.TypeName {
				c.errf(n, "missing return value, function declares return type %s", retType)
			}
			return
		}
		c.checkExpr(n.Value)
		actual := c.types.TypeOf(n.Value)
		if !Compatible(retType, actual) {
			c.errf(n, "return type %s is not compatible with declared return type %s", actual, retType)
		}
	case *ast.ExprStmt:
		c.checkExpr(n.Expr)
	case *ast.Block:
		c.checkBlock(n, retType)
	}
}

func (c *checker) checkVarDecl(n *ast.VariableDeclStmt) {
	if n.Initializer == nil {
		return
	}
	c.checkExpr(n.Initializer)
	if n.Type == nil {
		return
	}
	declared := n.Type.ToAnnotation()
	actual := c.types.TypeOf(n.Initializer)
	if !Compatible(declared, actual) {
		c.errf(n, "cannot initialize %s of type %s with value of type %s", n.Name, declared, actual)
	}
}

var numericOps = map[string]bool{"+": true, "-": true, "*": true, "/": true, "%": true}

func (c *checker) checkExpr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.FieldAccessNode:
		c.checkExpr(n.Base)
	case *ast.IndexAccessNode:
		c.checkExpr(n.Base)
		c.checkExpr(n.Index)
		idxTy := c.types.TypeOf(n.Index)
		if idxTy.TypeName != "int" && idxTy.TypeName != ast.UnknownType.TypeName {
			c.errf(n, "array index must be int, got %s", idxTy)
		}
	case *ast.FunctionCallNode:
		c.checkExpr(n.Callee)
		for _, a := range n.Args {
			c.checkExpr(a)
		}
		c.checkCallArity(n)
	case *ast.BinaryExprNode:
		c.checkExpr(n.Left)
		c.checkExpr(n.Right)
		if numericOps[n.Operator] {
			leftTy := c.types.TypeOf(n.Left)
			rightTy := c.types.TypeOf(n.Right)
			if !operandKindOK(leftTy) || !operandKindOK(rightTy) {
				c.errf(n, "operator %s requires numeric, money, duration, or string operands, got %s and %s", n.Operator, leftTy, rightTy)
			}
		}
	case *ast.UnaryExprNode:
		c.checkExpr(n.Operand)
	case *ast.MatchExprNode:
		c.checkMatch(n)
	case *ast.StructLiteralNode:
		c.checkStructLiteral(n)
	}
}

func operandKindOK(t ast.TypeAnnotation) bool {
	switch t.TypeName {
	case "int", "float", "money", "duration", "string", ast.UnknownType.TypeName:
		return true
	default:
		return false
	}
}

func (c *checker) checkCallArity(n *ast.FunctionCallNode) {
	callee, ok := n.Callee.(*ast.IdentifierNode)
	if !ok {
		return
	}
	fd, ok := c.funcs[callee.Name]
	if !ok {
		return
	}
	if len(n.Args) != len(fd.Params) {
		c.errf(n, "%s expects %d argument(s), got %d", callee.Name, len(fd.Params), len(n.Args))
		return
	}
	for i, a := range n.Args {
		want := fd.Params[i].Type.ToAnnotation()
		got := c.types.TypeOf(a)
		if !Compatible(want, got) {
			c.errf(a, "argument %d to %s: expected %s, got %s", i+1, callee.Name, want, got)
		}
	}
}

func (c *checker) checkMatch(n *ast.MatchExprNode) {
	if n.Scrutinee != nil {
		c.checkExpr(n.Scrutinee)
	}
	resultTy := c.types.TypeOf(n)
	for _, arm := range n.Arms {
		if arm.Guard != nil {
			c.checkExpr(arm.Guard)
			guardTy := c.types.TypeOf(arm.Guard)
			if !Compatible(ast.BoolType, guardTy) {
				c.errf(arm.Guard, "match guard must be bool, got %s", guardTy)
			}
		}
		c.checkExpr(arm.Body)
		bodyTy := c.types.TypeOf(arm.Body)
		if !Compatible(resultTy, bodyTy) {
			c.warnf(arm, "match arm has type %s, inconsistent with %s", bodyTy, resultTy)
		}
	}
}

func (c *checker) checkStructLiteral(n *ast.StructLiteralNode) {
	for _, f := range n.FieldValues {
		c.checkExpr(f.Value)
	}
	if n.StructName == "" {
		return
	}
	sd, ok := c.structs[n.StructName]
	if !ok {
		c.errf(n, "unknown struct type %q", n.StructName)
		return
	}
	declaredFields := make(map[string]ast.TypeAnnotation, len(sd.Fields))
	for _, f := range sd.Fields {
		if f.Type != nil {
			declaredFields[f.Name] = f.Type.ToAnnotation()
		}
	}
	for _, fa := range n.FieldValues {
		want, ok := declaredFields[fa.Name]
		if !ok {
			c.errf(fa, "%s has no field %q", n.StructName, fa.Name)
			continue
		}
		got := c.types.TypeOf(fa.Value)
		if !Compatible(want, got) {
			c.errf(fa, "field %s.%s: expected %s, got %s", n.StructName, fa.Name, want, got)
		}
	}
}

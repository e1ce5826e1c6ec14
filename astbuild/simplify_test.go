package astbuild

import (
	"testing"

	"github.com/gongahkia/yuho/ast"
	"github.com/gongahkia/yuho/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildForSimplify(t *testing.T, src string) *ast.ModuleNode {
	t.Helper()
	res := parser.Parse([]byte(src), "test.yuho")
	require.Empty(t, res.Diagnostics)
	m, diags := Build(res.Tree, "test.yuho")
	require.Empty(t, diags)
	return m
}

func TestSimplifyFoldsDoubleNegation(t *testing.T) {
	m := buildForSimplify(t, `bool b := !!true;`)
	out := Simplify(m)
	require.Len(t, out.Variables, 1)
	_, isBool := out.Variables[0].Initializer.(*ast.BoolLit)
	assert.True(t, isBool, "expected !!true to fold to the literal true")
}

func TestSimplifyFoldsDoubleUnaryMinus(t *testing.T) {
	m := buildForSimplify(t, `int n := - -5;`)
	out := Simplify(m)
	require.Len(t, out.Variables, 1)
	_, isInt := out.Variables[0].Initializer.(*ast.IntLit)
	assert.True(t, isInt, "expected - -5 to fold to the literal 5")
}

func TestSimplifyLeavesSingleNegationAlone(t *testing.T) {
	m := buildForSimplify(t, `bool b := !true;`)
	out := Simplify(m)
	require.Len(t, out.Variables, 1)
	_, isUnary := out.Variables[0].Initializer.(*ast.UnaryExprNode)
	assert.True(t, isUnary, "a single negation must not be folded away")
}

func TestSimplifyReturnsSameModuleWhenNothingChanges(t *testing.T) {
	m := buildForSimplify(t, `int n := 5;`)
	out := Simplify(m)
	assert.Same(t, m, out, "an unchanged module must be returned by pointer identity")
}

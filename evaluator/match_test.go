package evaluator

import (
	"testing"

	"github.com/gongahkia/yuho/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalMatchFirstArmWins(t *testing.T) {
	arms := []*ast.MatchArm{
		ast.NewMatchArm(ast.NewLiteralPattern(ast.NewIntLit(1, loc), loc), nil, ast.NewStringLit("one", loc), loc),
		ast.NewMatchArm(ast.NewWildcardPattern(loc), nil, ast.NewStringLit("other", loc), loc),
	}
	m := ast.NewMatchExpr(ast.NewIntLit(1, loc), arms, false, loc)
	v, err := Eval(m, nil)
	require.NoError(t, err)
	assert.Equal(t, "one", v.Str)
}

func TestEvalMatchFallsThroughToWildcard(t *testing.T) {
	arms := []*ast.MatchArm{
		ast.NewMatchArm(ast.NewLiteralPattern(ast.NewIntLit(1, loc), loc), nil, ast.NewStringLit("one", loc), loc),
		ast.NewMatchArm(ast.NewWildcardPattern(loc), nil, ast.NewStringLit("other", loc), loc),
	}
	m := ast.NewMatchExpr(ast.NewIntLit(2, loc), arms, false, loc)
	v, err := Eval(m, nil)
	require.NoError(t, err)
	assert.Equal(t, "other", v.Str)
}

func TestEvalMatchBindingPatternBindsScrutinee(t *testing.T) {
	arms := []*ast.MatchArm{
		ast.NewMatchArm(ast.NewBindingPattern("n", loc), nil, ast.NewIdentifier("n", loc), loc),
	}
	m := ast.NewMatchExpr(ast.NewIntLit(9, loc), arms, false, loc)
	v, err := Eval(m, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(9), v.Int)
}

func TestEvalMatchGuardSkipsNonMatchingArm(t *testing.T) {
	arms := []*ast.MatchArm{
		ast.NewMatchArm(
			ast.NewBindingPattern("n", loc),
			ast.NewBinaryExpr(ast.NewIdentifier("n", loc), ">", ast.NewIntLit(10, loc), loc),
			ast.NewStringLit("big", loc), loc,
		),
		ast.NewMatchArm(ast.NewWildcardPattern(loc), nil, ast.NewStringLit("small", loc), loc),
	}
	m := ast.NewMatchExpr(ast.NewIntLit(3, loc), arms, false, loc)
	v, err := Eval(m, nil)
	require.NoError(t, err)
	assert.Equal(t, "small", v.Str)
}

func TestEvalMatchStructPatternDestructures(t *testing.T) {
	sl := ast.NewStructLiteral("Point", []*ast.FieldAssignment{
		ast.NewFieldAssignment("x", ast.NewIntLit(10, loc), loc),
		ast.NewFieldAssignment("y", ast.NewIntLit(20, loc), loc),
	}, loc)
	pat := ast.NewStructPattern("Point", []*ast.FieldPattern{
		ast.NewFieldPattern("x", ast.NewBindingPattern("px", loc), loc),
		ast.NewFieldPattern("y", nil, loc),
	}, loc)
	arms := []*ast.MatchArm{
		ast.NewMatchArm(pat, nil, ast.NewIdentifier("px", loc), loc),
	}
	m := ast.NewMatchExpr(sl, arms, false, loc)
	v, err := Eval(m, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(10), v.Int)
}

func TestEvalMatchNoArmMatchedErrors(t *testing.T) {
	arms := []*ast.MatchArm{
		ast.NewMatchArm(ast.NewLiteralPattern(ast.NewIntLit(1, loc), loc), nil, ast.NewStringLit("one", loc), loc),
	}
	m := ast.NewMatchExpr(ast.NewIntLit(2, loc), arms, false, loc)
	_, err := Eval(m, nil)
	assert.Error(t, err)
}

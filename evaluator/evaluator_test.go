package evaluator

import (
	"testing"

	"github.com/gongahkia/yuho/ast"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var loc = ast.SourceLocation{}

func TestEvalArithmeticInt(t *testing.T) {
	e := ast.NewBinaryExpr(ast.NewIntLit(3, loc), "+", ast.NewIntLit(4, loc), loc)
	v, err := Eval(e, nil)
	require.NoError(t, err)
	assert.Equal(t, KindInt, v.Kind)
	assert.Equal(t, int64(7), v.Int)
}

func TestEvalDivisionByZero(t *testing.T) {
	e := ast.NewBinaryExpr(ast.NewIntLit(1, loc), "/", ast.NewIntLit(0, loc), loc)
	_, err := Eval(e, nil)
	assert.Error(t, err)
}

func TestEvalMoneyArithmetic(t *testing.T) {
	left := ast.NewMoneyLit(ast.CurrencySGD, decimal.NewFromInt(500), loc)
	right := ast.NewMoneyLit(ast.CurrencySGD, decimal.NewFromInt(250), loc)
	e := ast.NewBinaryExpr(left, "+", right, loc)
	v, err := Eval(e, nil)
	require.NoError(t, err)
	assert.Equal(t, KindMoney, v.Kind)
	assert.True(t, v.Decimal.Equal(decimal.NewFromInt(750)))
}

func TestEvalBooleanShortCircuit(t *testing.T) {
	// false && <undefined identifier> must not evaluate the right side.
	e := ast.NewBinaryExpr(
		ast.NewBoolLit(false, loc), "&&",
		ast.NewIdentifier("undefined_var", loc), loc,
	)
	v, err := Eval(e, nil)
	require.NoError(t, err)
	assert.False(t, v.Bool)
}

func TestEvalIdentifierFromEnv(t *testing.T) {
	env := Env{"x": IntValue(42)}
	v, err := Eval(ast.NewIdentifier("x", loc), env)
	require.NoError(t, err)
	assert.Equal(t, int64(42), v.Int)
}

func TestEvalUndefinedIdentifierErrors(t *testing.T) {
	_, err := Eval(ast.NewIdentifier("missing", loc), nil)
	assert.Error(t, err)
}

func TestEvalComparison(t *testing.T) {
	e := ast.NewBinaryExpr(ast.NewIntLit(5, loc), ">=", ast.NewIntLit(5, loc), loc)
	v, err := Eval(e, nil)
	require.NoError(t, err)
	assert.True(t, v.Bool)
}

func TestEvalUnaryNot(t *testing.T) {
	e := ast.NewUnaryExpr("!", ast.NewBoolLit(false, loc), loc)
	v, err := Eval(e, nil)
	require.NoError(t, err)
	assert.True(t, v.Bool)
}

func TestEvalStructLiteralFieldAccess(t *testing.T) {
	sl := ast.NewStructLiteral("Point", []*ast.FieldAssignment{
		ast.NewFieldAssignment("x", ast.NewIntLit(10, loc), loc),
		ast.NewFieldAssignment("y", ast.NewIntLit(20, loc), loc),
	}, loc)
	fa := ast.NewFieldAccess(sl, "x", loc)
	v, err := Eval(fa, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(10), v.Int)
}

func TestEvalPassExprErrors(t *testing.T) {
	_, err := Eval(ast.NewPassExpr(loc), nil)
	assert.Error(t, err)
}

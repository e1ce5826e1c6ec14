package verify

import (
	"context"
	"testing"

	"github.com/gongahkia/yuho/ast"
	"github.com/gongahkia/yuho/internal/diag"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSolver is a scriptable Solver used so the driver logic in this
// package can be exercised without a real Z3 binding.
type fakeSolver struct {
	available bool
	// responses is consumed in order, one per CheckSat call.
	responses []SatResult
	calls     [][]string
}

func (f *fakeSolver) Available() bool { return f.available }

func (f *fakeSolver) CheckSat(ctx context.Context, assertions []string) (SatResult, error) {
	f.calls = append(f.calls, assertions)
	if len(f.responses) == 0 {
		return SatResult{}, nil
	}
	r := f.responses[0]
	f.responses = f.responses[1:]
	return r, nil
}

func TestCheckSatisfiabilityUnavailableSolver(t *testing.T) {
	_, d := CheckSatisfiability(context.Background(), NoSolver, []string{"(assert true)"})
	require.NotNil(t, d)
	assert.Equal(t, diag.ClassBoundary, d.Class)
}

func TestCheckSatisfiabilitySatisfiable(t *testing.T) {
	s := &fakeSolver{available: true, responses: []SatResult{{Satisfiable: true, Model: map[string]string{"x": "1"}}}}
	res, d := CheckSatisfiability(context.Background(), s, []string{"(assert (= x 1))"})
	require.Nil(t, d)
	assert.True(t, res.Satisfiable)
	assert.Equal(t, "1", res.Model["x"])
}

func TestCheckPatternReachableUnsatMeansDead(t *testing.T) {
	s := &fakeSolver{available: true, responses: []SatResult{{Satisfiable: false}}}
	reachable, d := CheckPatternReachable(context.Background(), s, "p_true", []string{"p_prev"})
	require.Nil(t, d)
	assert.False(t, reachable)
}

func TestCheckPatternReachableAssumesReachableWithoutSolver(t *testing.T) {
	reachable, d := CheckPatternReachable(context.Background(), NoSolver, "p", nil)
	require.NotNil(t, d)
	assert.True(t, reachable)
}

func TestCheckExhaustivenessUnsatMeansExhaustive(t *testing.T) {
	s := &fakeSolver{available: true, responses: []SatResult{{Satisfiable: false}}}
	exhaustive, d := CheckExhaustiveness(context.Background(), s, []string{"p_true", "p_false"}, "bool_type")
	require.Nil(t, d)
	assert.True(t, exhaustive)
}

func TestCheckExhaustivenessSatMeansGap(t *testing.T) {
	s := &fakeSolver{available: true, responses: []SatResult{{Satisfiable: true, Model: map[string]string{"x": "false"}}}}
	exhaustive, d := CheckExhaustiveness(context.Background(), s, []string{"p_true"}, "bool_type")
	require.Nil(t, d)
	assert.False(t, exhaustive)
}

func TestEnumerateModelsStopsAtK(t *testing.T) {
	s := &fakeSolver{available: true, responses: []SatResult{
		{Satisfiable: true, Model: map[string]string{"x": "1"}},
		{Satisfiable: true, Model: map[string]string{"x": "2"}},
	}}
	models, d := EnumerateModels(context.Background(), s, []string{"(assert true)"}, 2)
	require.Nil(t, d)
	assert.Len(t, models, 2)
	assert.Len(t, s.calls, 2)
}

func TestEnumerateModelsStopsWhenUnsat(t *testing.T) {
	s := &fakeSolver{available: true, responses: []SatResult{
		{Satisfiable: true, Model: map[string]string{"x": "1"}},
		{Satisfiable: false},
	}}
	models, d := EnumerateModels(context.Background(), s, []string{"(assert true)"}, 5)
	require.Nil(t, d)
	assert.Len(t, models, 1)
}

func TestVerifyStatuteElementsDetectsDuplicateNames(t *testing.T) {
	loc := ast.SourceLocation{}
	st := ast.NewStatute("415", "Cheating", nil, []*ast.ElementNode{
		ast.NewElement(ast.ElementActusReus, "a", ast.NewStringLit("x", loc), loc),
		ast.NewElement(ast.ElementActusReus, "a", ast.NewStringLit("y", loc), loc),
	}, nil, nil, loc)
	diags := VerifyStatuteElements(st)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "duplicate element name")
}

func TestVerifyStatuteElementsPenaltyRangeSanity(t *testing.T) {
	loc := ast.SourceLocation{}
	penalty := ast.NewPenalty(
		nil, nil,
		ast.NewMoneyLit(ast.CurrencySGD, decimal.NewFromInt(1000), loc),
		ast.NewMoneyLit(ast.CurrencySGD, decimal.NewFromInt(500), loc),
		"", loc,
	)
	st := ast.NewStatute("415", "Cheating", nil, nil, penalty, nil, loc)
	diags := VerifyStatuteElements(st)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "fine_min exceeds fine_max")
}

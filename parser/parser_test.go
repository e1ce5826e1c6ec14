package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStructDef(t *testing.T) {
	src := `struct Offense {
		actus_reus,
		mens_rea
	}`

	res := Parse([]byte(src), "test.yuho")
	require.Empty(t, res.Diagnostics)
	require.NotNil(t, res.Tree)
	require.Len(t, res.Tree.Decls, 1)

	sd := res.Tree.Decls[0].StructDef
	require.NotNil(t, sd)
	assert.Equal(t, "Offense", sd.Name)
	require.Len(t, sd.Fields, 2)
	assert.Equal(t, "actus_reus", sd.Fields[0].Name)
	assert.Nil(t, sd.Fields[0].Type)
}

func TestParseFunctionDef(t *testing.T) {
	src := `fn classify(amount: money) -> string {
		return "ok";
	}`

	res := Parse([]byte(src), "test.yuho")
	require.Empty(t, res.Diagnostics)
	require.Len(t, res.Tree.Decls, 1)

	fn := res.Tree.Decls[0].FunctionDef
	require.NotNil(t, fn)
	assert.Equal(t, "classify", fn.Name)
	require.Len(t, fn.Params, 1)
	assert.Equal(t, "amount", fn.Params[0].Name)
	require.NotNil(t, fn.ReturnType)
	assert.Equal(t, "string", fn.ReturnType.Name)
}

func TestParseMoneyAndPercentLiterals(t *testing.T) {
	src := `fn f() {
		money amount := S$1,500.50;
		percent rate := 25%;
	}`

	res := Parse([]byte(src), "test.yuho")
	require.Empty(t, res.Diagnostics)
	fn := res.Tree.Decls[0].FunctionDef
	require.Len(t, fn.Body.Statements, 2)

	first := fn.Body.Statements[0].VarDecl
	require.NotNil(t, first)
	assert.Equal(t, "amount", first.Name)
}

func TestParseMatchExpression(t *testing.T) {
	src := `fn f() {
		result := match verdict {
			TRUE => "guilty",
			_ => "not guilty",
		};
	}`

	res := Parse([]byte(src), "test.yuho")
	require.Empty(t, res.Diagnostics)
	require.NotEmpty(t, res.Tree.Decls)
}

func TestParseStatuteBlock(t *testing.T) {
	src := `statute "415" "Cheating" {
		definitions {
			deceive: "intentionally deceiving",
		}
		penalty {
			imprisonment: 1 years,
			fine: S$5000
		}
	}`

	res := Parse([]byte(src), "test.yuho")
	require.Empty(t, res.Diagnostics)
	require.Len(t, res.Tree.Decls, 1)
	st := res.Tree.Decls[0].Statute
	require.NotNil(t, st)
	assert.Equal(t, "415", st.SectionNumber)
	require.NotNil(t, st.Title)
	assert.Equal(t, "Cheating", *st.Title)
}

func TestParseErrorReportsLocation(t *testing.T) {
	src := `struct {{{`

	res := Parse([]byte(src), "broken.yuho")
	require.NotEmpty(t, res.Diagnostics)
	d := res.Diagnostics[0]
	assert.Equal(t, "broken.yuho", d.Location.File)
	assert.NotZero(t, d.Location.Line)
}

func TestParseStripsLeadingBOM(t *testing.T) {
	src := append(append([]byte{}, utf8BOM...), []byte(`struct S { x }`)...)

	res := Parse(src, "bom.yuho")
	require.Empty(t, res.Diagnostics)
	require.Len(t, res.Tree.Decls, 1)
}

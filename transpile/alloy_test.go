package transpile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gongahkia/yuho/ast"
	"github.com/gongahkia/yuho/astbuild"
	"github.com/gongahkia/yuho/parser"
)

func buildModule(t *testing.T, src string) *ast.ModuleNode {
	t.Helper()
	res := parser.Parse([]byte(src), "test.yuho")
	require.Empty(t, res.Diagnostics)
	m, diags := astbuild.Build(res.Tree, "test.yuho")
	require.Empty(t, diags)
	return m
}

func TestEmitAlloyGuiltyIffElements(t *testing.T) {
	src := `statute "Section1" "Theft" {
		elements {
			actus_reus a: "taking property",
			mens_rea b: "dishonestly"
		}
	}`
	m := buildModule(t, src)
	out, err := EmitAlloy(m)
	require.NoError(t, err)
	assert.Contains(t, out, "sig Section1Offense { a: Bool, b: Bool, guilty: Bool }")
	assert.Contains(t, out, "guilty = True iff (a = True and b = True)")
	assert.Contains(t, out, "assert Section1GuiltyImpliesElements")
	assert.Contains(t, out, "assert Section1ElementsImplyGuilty")
	assert.Contains(t, out, "check Section1GuiltyImpliesElements for 5 but 4 Int")
	assert.Contains(t, out, "check Section1ElementsImplyGuilty for 5 but 4 Int")
}

func TestEmitAlloyEnumSig(t *testing.T) {
	src := `struct Color { red, green, blue }`
	m := buildModule(t, src)
	out, err := EmitAlloy(m)
	require.NoError(t, err)
	assert.Contains(t, out, "enum Color { red, green, blue }")
}

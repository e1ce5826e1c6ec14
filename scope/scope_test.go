package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gongahkia/yuho/astbuild"
	"github.com/gongahkia/yuho/parser"
)

func resolveSource(t *testing.T, src string) (*Result, []string) {
	t.Helper()
	res := parser.Parse([]byte(src), "test.yuho")
	require.Empty(t, res.Diagnostics)
	m, diags := astbuild.Build(res.Tree, "test.yuho")
	require.Empty(t, diags)
	r, scopeDiags := Resolve(m)
	msgs := make([]string, len(scopeDiags))
	for i, d := range scopeDiags {
		msgs[i] = d.Message
	}
	return r, msgs
}

func TestResolveUndeclaredIdentifier(t *testing.T) {
	src := `fn f() {
		return unknownThing;
	}`
	_, msgs := resolveSource(t, src)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "Undeclared identifier 'unknownThing'")
}

func TestResolveForwardFunctionReference(t *testing.T) {
	src := `fn a() {
		return b();
	}
	fn b() -> int {
		return 1;
	}`
	_, msgs := resolveSource(t, src)
	assert.Empty(t, msgs)
}

func TestResolveParameterVisibleInBody(t *testing.T) {
	src := `fn f(x: int) -> int {
		return x;
	}`
	_, msgs := resolveSource(t, src)
	assert.Empty(t, msgs)
}

func TestResolveRedeclarationInBlock(t *testing.T) {
	src := `fn f() {
		int x := 1;
		int x := 2;
	}`
	_, msgs := resolveSource(t, src)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "redeclaration")
}

func TestResolveMatchArmBindingScopedToArm(t *testing.T) {
	src := `fn f() {
		int result := match x {
			y => y,
			_ => 0,
		};
	}`
	_, msgs := resolveSource(t, src)
	// x is undeclared (no enclosing declaration), y is bound by its own arm.
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], `'x'`)
}

package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gongahkia/yuho/astbuild"
	"github.com/gongahkia/yuho/parser"
	"github.com/gongahkia/yuho/scope"
	"github.com/gongahkia/yuho/typeinfer"
)

func checkSource(t *testing.T, src string) []string {
	t.Helper()
	res := parser.Parse([]byte(src), "test.yuho")
	require.Empty(t, res.Diagnostics)
	m, diags := astbuild.Build(res.Tree, "test.yuho")
	require.Empty(t, diags)
	sc, scopeDiags := scope.Resolve(m)
	require.Empty(t, scopeDiags)
	types, typeDiags := typeinfer.Infer(m, sc)
	require.Empty(t, typeDiags)
	ds := CheckExhaustiveness(m, types)
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Message
	}
	return out
}

func TestBoolMatchExhaustive(t *testing.T) {
	src := `fn f(b: bool) -> int {
		return match b {
			true => 1,
			false => 0,
		};
	}`
	msgs := checkSource(t, src)
	assert.Empty(t, msgs)
}

func TestBoolMatchMissingFalse(t *testing.T) {
	src := `fn f(b: bool) -> int {
		return match b {
			true => 1,
		};
	}`
	msgs := checkSource(t, src)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "false")
}

func TestEnumMatchMissingVariant(t *testing.T) {
	src := `struct Color {
		red,
		green,
		blue
	}
	fn f(c: Color) -> int {
		return match c {
			red => 1,
			green => 2,
		};
	}`
	msgs := checkSource(t, src)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "blue")
}

func TestEnumMatchExhaustive(t *testing.T) {
	src := `struct Color {
		red,
		green,
		blue
	}
	fn f(c: Color) -> int {
		return match c {
			red => 1,
			green => 2,
			blue => 3,
		};
	}`
	msgs := checkSource(t, src)
	assert.Empty(t, msgs)
}

func TestWildcardCatchAllAlwaysExhaustive(t *testing.T) {
	src := `fn f(n: int) -> int {
		return match n {
			0 => 1,
			_ => 2,
		};
	}`
	msgs := checkSource(t, src)
	assert.Empty(t, msgs)
}

func TestOpenTypeWithoutCatchAllIsMissing(t *testing.T) {
	src := `fn f(n: int) -> int {
		return match n {
			0 => 1,
			1 => 2,
		};
	}`
	msgs := checkSource(t, src)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "_")
}

package yuho

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gongahkia/yuho/internal/difftool"
	"github.com/gongahkia/yuho/transpile"
)

func TestBoolMatchExhaustiveness(t *testing.T) {
	src := `fn f(b: bool) -> int {
		return match b {
			true => 1,
			false => 0,
		};
	}`
	r := Run([]byte(src), "test.yuho")
	require.NotNil(t, r.Module)
	for _, d := range r.Diagnostics {
		assert.NotEqual(t, "exhaustiveness_error", string(d.Class))
	}

	src2 := `fn f(b: bool) -> int {
		return match b {
			true => 1,
		};
	}`
	r2 := Run([]byte(src2), "test.yuho")
	var missing []string
	for _, d := range r2.Diagnostics {
		if string(d.Class) == "exhaustiveness_error" {
			missing = append(missing, d.MissingPatterns...)
		}
	}
	require.Len(t, missing, 1)
	assert.Equal(t, "false", missing[0])
}

func TestEnumVariantExhaustiveness(t *testing.T) {
	src := `struct Color { red, green, blue }
	fn f(c: Color) -> int {
		return match c {
			red => 1,
			green => 2,
		};
	}`
	r := Run([]byte(src), "test.yuho")
	var missing []string
	for _, d := range r.Diagnostics {
		if string(d.Class) == "exhaustiveness_error" {
			missing = append(missing, d.MissingPatterns...)
		}
	}
	require.Len(t, missing, 1)
	assert.Equal(t, "blue", missing[0])
}

func TestMoneyLiteralNormalization(t *testing.T) {
	src := `int y := 0;
	money m := US$1,000.50;`
	r := Run([]byte(src), "test.yuho")
	require.NotNil(t, r.Module)
	require.Len(t, r.Module.Variables, 2)
	mv, ok := r.Module.Variables[1].Initializer.(interface {
		String() string
	})
	require.True(t, ok)
	assert.Equal(t, "US$1000.50", mv.String())
}

func TestDurationAggregation(t *testing.T) {
	src := `duration d := 1 year 2 months 15 days;`
	r := Run([]byte(src), "test.yuho")
	require.NotNil(t, r.Module)
	require.Len(t, r.Module.Variables, 1)
}

func TestUndeclaredIdentifier(t *testing.T) {
	src := `fn f() {
		int y := x + 1;
	}`
	r := Run([]byte(src), "test.yuho")
	var semanticErrs []string
	for _, d := range r.Diagnostics {
		if string(d.Class) == "semantic_error" {
			semanticErrs = append(semanticErrs, d.Message)
		}
	}
	require.Len(t, semanticErrs, 1)
	assert.True(t, strings.Contains(semanticErrs[0], "x"))
}

func TestAlloyGuiltyIffElements(t *testing.T) {
	src := `statute "Section1" "Theft" {
		elements {
			actus_reus a: "taking property",
			mens_rea b: "dishonestly"
		}
	}`
	r := Run([]byte(src), "test.yuho")
	require.NotNil(t, r.Module)
	out, err := r.Transpile(transpile.Alloy, transpile.Options{Types: r.Types})
	require.NoError(t, err)
	assert.Contains(t, out, "sig Section1Offense { a: Bool, b: Bool, guilty: Bool }")
	assert.Contains(t, out, "guilty = True iff (a = True and b = True)")
	assert.Contains(t, out, "assert Section1GuiltyImpliesElements")
	assert.Contains(t, out, "assert Section1ElementsImplyGuilty")
	assert.Contains(t, out, "check Section1GuiltyImpliesElements for 5 but 4 Int")
}

func TestEmptySourceYieldsEmptyModule(t *testing.T) {
	for _, src := range []string{"", "   \n\t  ", "// just a comment\n"} {
		r := Run([]byte(src), "test.yuho")
		require.NotNil(t, r.Module, "source %q", src)
		assert.Empty(t, r.Module.Statutes)
		assert.Empty(t, r.Module.TypeDefs)
		assert.Empty(t, r.Module.FunctionDefs)
		for _, d := range r.Diagnostics {
			assert.NotEqual(t, "parse_error", string(d.Class))
		}
	}
}

func TestTruncatedSourceNeverCrashes(t *testing.T) {
	src := `struct Color { red, green, blue }
	fn f(c: Color) -> int {
		return match c {
			red => 1,
			green => 2,
			blue => 3,
		};
	}`
	for i := 0; i < len(src); i++ {
		assert.NotPanics(t, func() {
			Run([]byte(src[:i]), "test.yuho")
		}, "truncated at byte %d", i)
	}
}

func TestJSONEmitDeterministic(t *testing.T) {
	src := `struct Color { red, green, blue }`
	r := Run([]byte(src), "test.yuho")
	require.NotNil(t, r.Module)
	out1, err := r.Transpile(transpile.JSON, transpile.Options{})
	require.NoError(t, err)
	out2, err := r.Transpile(transpile.JSON, transpile.Options{})
	require.NoError(t, err)
	if out1 != out2 {
		d, derr := difftool.Unified(out1, out2, "first", "second")
		require.NoError(t, derr)
		t.Fatalf("JSON emission not deterministic:\n%s", d)
	}
}

func TestResolveImportsPlainPath(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "theft.yh"), []byte("struct Color { red }"), 0o644))
	src := `import "theft.yh" as theft;`
	r := Run([]byte(src), "test.yuho")
	require.NotNil(t, r.Module)
	require.Len(t, r.Module.Imports, 1)
	resolved, diags := r.ResolveImports(root)
	require.Empty(t, diags)
	require.Len(t, resolved, 1)
	require.Len(t, resolved[0].Files, 1)
	assert.Equal(t, filepath.Join(root, "theft.yh"), resolved[0].Files[0])
}

func TestResolveImportsWildcard(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "statutes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "statutes", "a.yh"), []byte("struct A { x }"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "statutes", "b.yh"), []byte("struct B { y }"), 0o644))
	src := `import "statutes/*.yh" as *;`
	r := Run([]byte(src), "test.yuho")
	require.NotNil(t, r.Module)
	resolved, diags := r.ResolveImports(root)
	require.Empty(t, diags)
	require.Len(t, resolved, 1)
	assert.Len(t, resolved[0].Files, 2)
}

func TestEnglishEmitStableAcrossRuns(t *testing.T) {
	src := `statute "415" "Cheating" {
		elements {
			mens_rea intent: "dishonest intention"
		}
	}`
	r1 := Run([]byte(src), "test.yuho")
	r2 := Run([]byte(src), "test.yuho")
	out1, err := r1.Transpile(transpile.English, transpile.Options{})
	require.NoError(t, err)
	out2, err := r2.Transpile(transpile.English, transpile.Options{})
	require.NoError(t, err)
	if out1 != out2 {
		d, derr := difftool.Unified(out1, out2, "run1", "run2")
		require.NoError(t, derr)
		t.Fatalf("English emission differs across independent runs:\n%s", d)
	}
}

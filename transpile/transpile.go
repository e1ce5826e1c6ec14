// Package transpile lowers an analyzed Yuho module into one of the target
// artifacts the core is responsible for: controlled English, a Mermaid
// flowchart, an Alloy model, a Z3 constraint system, a LaTeX document, JSON,
// JSON-LD, a GraphQL schema, or a block-notation view. Every backend is a
// pure function of its input AST; none of them mutate the module they
// borrow, and each degrades to structural-only rendering when the caller
// has no analysis side tables to offer.
package transpile

import (
	"fmt"

	"github.com/gongahkia/yuho/ast"
	"github.com/gongahkia/yuho/typeinfer"
)

// Target names one of the nine lowering back-ends.
type Target string

const (
	JSON    Target = "json"
	JSONLD  Target = "jsonld"
	English Target = "english"
	Mermaid Target = "mermaid"
	Alloy   Target = "alloy"
	Z3      Target = "z3"
	LaTeX   Target = "latex"
	GraphQL Target = "graphql"
	Blocks  Target = "blocks"
)

// Options bundles the optional inputs a backend may use when present.
// Types is the type-inference side table (nil is a legal "structural only"
// input); IncludeLocations controls whether JSON/JSON-LD emit source spans.
type Options struct {
	Types            *typeinfer.Table
	IncludeLocations bool
}

// Transpile dispatches module to the backend named by target. It is the
// single entry point external collaborators (language server, CLI, REPL)
// are expected to call; none of them are implemented by this module.
func Transpile(module *ast.ModuleNode, target Target, opts Options) (string, error) {
	if module == nil {
		return "", fmt.Errorf("transpile: nil module")
	}
	switch target {
	case JSON:
		return EmitJSON(module, opts)
	case JSONLD:
		return EmitJSONLD(module, opts)
	case English:
		return EmitEnglish(module)
	case Mermaid:
		return EmitMermaid(module)
	case Alloy:
		return EmitAlloy(module)
	case Z3:
		return EmitZ3(module)
	case LaTeX:
		return EmitLaTeX(module)
	case GraphQL:
		return EmitGraphQL(module)
	case Blocks:
		return EmitBlocks(module)
	default:
		return "", fmt.Errorf("transpile: unknown target %q", target)
	}
}

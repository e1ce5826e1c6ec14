// Package yuho wires the front-end and analysis stages into a single
// pipeline: parse, build the AST, resolve scope, infer types, type-check,
// check match exhaustiveness, then (optionally) transpile. Every stage
// accumulates diagnostics into one Bag rather than aborting the run, per
// the propagation policy.
package yuho

import (
	"context"

	"github.com/gongahkia/yuho/analysis"
	"github.com/gongahkia/yuho/ast"
	"github.com/gongahkia/yuho/astbuild"
	"github.com/gongahkia/yuho/internal/config"
	"github.com/gongahkia/yuho/internal/diag"
	"github.com/gongahkia/yuho/internal/pathresolve"
	"github.com/gongahkia/yuho/parser"
	"github.com/gongahkia/yuho/scope"
	"github.com/gongahkia/yuho/transpile"
	"github.com/gongahkia/yuho/typecheck"
	"github.com/gongahkia/yuho/typeinfer"
	"github.com/gongahkia/yuho/verify"
)

// Result is the outcome of running the full pipeline over one source file:
// the built AST (nil when the parse produced no tree at all), the type
// table computed for it, and every diagnostic accumulated across every
// stage that ran.
type Result struct {
	Module      *ast.ModuleNode
	Types       *typeinfer.Table
	Diagnostics []diag.Diagnostic
}

// Success mirrors the user-visible {diagnostics, success} contract: false
// whenever any stage produced an error-severity diagnostic.
func (r *Result) Success() bool {
	for _, d := range r.Diagnostics {
		if d.IsError() {
			return false
		}
	}
	return true
}

// Run executes every pipeline stage over source, stopping early only when
// an earlier stage produced no tree/module to hand to the next one.
func Run(source []byte, file string) *Result {
	bag := diag.NewBag()

	parsed := parser.Parse(source, file)
	for _, d := range parsed.Diagnostics {
		bag.Add(d)
	}
	if parsed.Tree == nil {
		return &Result{Diagnostics: bag.All()}
	}

	module, buildDiags := astbuild.Build(parsed.Tree, file)
	for _, d := range buildDiags {
		bag.Add(d)
	}
	if module == nil {
		return &Result{Diagnostics: bag.All()}
	}
	module = astbuild.Simplify(module)

	scopeResult, scopeDiags := scope.Resolve(module)
	for _, d := range scopeDiags {
		bag.Add(d)
	}

	types, inferDiags := typeinfer.Infer(module, scopeResult)
	for _, d := range inferDiags {
		bag.Add(d)
	}

	for _, d := range typecheck.Check(module, types) {
		bag.Add(d)
	}

	for _, d := range analysis.CheckExhaustiveness(module, types) {
		bag.Add(d)
	}

	return &Result{Module: module, Types: types, Diagnostics: bag.All()}
}

// Transpile lowers r's module into target, failing fast when an earlier
// stage left no module to render.
func (r *Result) Transpile(target transpile.Target, opts transpile.Options) (string, error) {
	return transpile.Transpile(r.Module, target, opts)
}

// ImportResolution is one import declaration's path expanded against a
// module search root: a plain path resolves to itself, a wildcard/glob path
// (`import "statutes/**" as *`) expands to every matching file.
type ImportResolution struct {
	Import *ast.ImportNode
	Files  []string
}

// ResolveImports expands every import declaration in r.Module against root,
// reporting a boundary diagnostic per import whose path cannot be resolved
// (an invalid glob pattern) rather than aborting the whole resolution. A
// search root that doesn't exist is not reported: a plain path is joined to
// it as is, and a glob under it matches nothing.
func (r *Result) ResolveImports(root string) ([]ImportResolution, []diag.Diagnostic) {
	if r.Module == nil {
		return nil, nil
	}
	var out []ImportResolution
	var diags []diag.Diagnostic
	for _, im := range r.Module.Imports {
		files, err := pathresolve.Resolve(root, im.Path)
		if err != nil {
			diags = append(diags, diag.Boundary("import", err))
			continue
		}
		out = append(out, ImportResolution{Import: im, Files: files})
	}
	return out, diags
}

// VerifyAlloy lowers r's module to Alloy and drives the analyzer subprocess
// named by cfg.AlloyPath, honoring cfg.AlloyTimeout. cfg is typically built
// once per process via config.Load.
func (r *Result) VerifyAlloy(ctx context.Context, cfg *config.Config) (*verify.AlloyResult, *diag.Diagnostic) {
	model, err := r.Transpile(transpile.Alloy, transpile.Options{Types: r.Types})
	if err != nil {
		d := diag.Boundary("alloy", err)
		return nil, &d
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.AlloyTimeout)
	defer cancel()
	return verify.RunAlloy(ctx, cfg.AlloyPath, model)
}

// CompileLatexPDF lowers r's module to LaTeX and compiles it to a PDF with
// cfg.LatexEngine, honoring cfg.LatexTimeout.
func (r *Result) CompileLatexPDF(ctx context.Context, cfg *config.Config, opts verify.PDFOptions) (string, *diag.Diagnostic) {
	tex, err := r.Transpile(transpile.LaTeX, transpile.Options{})
	if err != nil {
		d := diag.Boundary("latex", err)
		return "", &d
	}
	if opts.Engine == "" {
		opts.Engine = cfg.LatexEngine
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.LatexTimeout)
	defer cancel()
	return verify.CompileToPDF(ctx, tex, opts)
}

package verify

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/gongahkia/yuho/internal/diag"
)

// PDFOptions configures one LaTeX compile pass.
type PDFOptions struct {
	// Engine is one of pdflatex, xelatex, lualatex.
	Engine string
	// OutDir is the directory the compiled .pdf is left in; a temp
	// directory is used when empty.
	OutDir string
	// DoublePass forces a second compile, needed for cross-references
	// (section numbers, the table of contents) to resolve.
	DoublePass bool
}

// CompileToPDF writes tex to a scratch .tex file and invokes opts.Engine
// against it, honoring ctx's deadline. That one deadline covers every pass
// together; there is no separate per-pass budget. When opts.DoublePass is
// set the engine runs twice so any
// \ref/\S cross-reference used by the statute macros resolves on the second
// pass, matching how a real LaTeX toolchain is normally driven.
func CompileToPDF(ctx context.Context, tex string, opts PDFOptions) (path string, err *diag.Diagnostic) {
	engine := opts.Engine
	if engine == "" {
		engine = "pdflatex"
	}

	dir := opts.OutDir
	if dir == "" {
		d, e := os.MkdirTemp("", "yuho-latex-*")
		if e != nil {
			bd := diag.Boundary("latex", e)
			return "", &bd
		}
		dir = d
	}

	texPath := filepath.Join(dir, "document.tex")
	if e := os.WriteFile(texPath, []byte(tex), 0o644); e != nil {
		bd := diag.Boundary("latex", e)
		return "", &bd
	}

	passes := 1
	if opts.DoublePass {
		passes = 2
	}

	var stdout, stderr bytes.Buffer
	for i := 0; i < passes; i++ {
		stdout.Reset()
		stderr.Reset()
		cmd := exec.CommandContext(ctx, engine, "-interaction=nonstopmode", "-halt-on-error", "-output-directory", dir, texPath)
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
		if e := cmd.Run(); e != nil {
			if ctx.Err() == context.DeadlineExceeded {
				bd := diag.Boundary("latex", context.DeadlineExceeded)
				return "", &bd
			}
			bd := diag.Boundary("latex", fmt.Errorf("%s pass %d failed: %w: %s", engine, i+1, e, stderr.String()))
			return "", &bd
		}
	}

	pdfPath := filepath.Join(dir, "document.pdf")
	if _, e := os.Stat(pdfPath); e != nil {
		bd := diag.Boundary("latex", fmt.Errorf("%s did not produce a pdf: %w", engine, e))
		return "", &bd
	}
	return pdfPath, nil
}

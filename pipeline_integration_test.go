//go:build integration

package yuho

import (
	"context"
	"os/exec"
	"testing"

	"github.com/gongahkia/yuho/internal/config"
	"github.com/gongahkia/yuho/verify"
)

func TestVerifyAlloyEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if _, err := exec.LookPath("alloy"); err != nil {
		t.Skip("alloy not installed")
	}
	src := `statute "Section1" "Theft" {
		elements {
			actus_reus a: "taking property",
			mens_rea b: "dishonestly"
		}
	}`
	r := Run([]byte(src), "test.yuho")
	if r.Module == nil {
		t.Fatal("expected a built module")
	}
	cfg := config.Load()
	res, d := r.VerifyAlloy(context.Background(), cfg)
	if d != nil {
		t.Fatalf("VerifyAlloy failed: %v", d)
	}
	if res == nil {
		t.Fatal("expected a non-nil alloy result")
	}
}

func TestCompileLatexPDFEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if _, err := exec.LookPath("pdflatex"); err != nil {
		t.Skip("pdflatex not installed")
	}
	src := `statute "415" "Cheating" {
		elements {
			mens_rea intent: "dishonest intention"
		}
	}`
	r := Run([]byte(src), "test.yuho")
	if r.Module == nil {
		t.Fatal("expected a built module")
	}
	cfg := config.Load()
	path, d := r.CompileLatexPDF(context.Background(), cfg, verify.PDFOptions{})
	if d != nil {
		t.Fatalf("CompileLatexPDF failed: %v", d)
	}
	if path == "" {
		t.Fatal("expected a non-empty pdf path")
	}
}

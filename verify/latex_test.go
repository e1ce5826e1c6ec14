//go:build integration

package verify

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests drive the real pdflatex boundary and are gated behind
// the integration build tag since they depend on toolchains not present in
// every environment.

func TestCompileToPDFProducesFile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if _, err := exec.LookPath("pdflatex"); err != nil {
		t.Skip("pdflatex not installed")
	}
	tex := `\documentclass{article}\begin{document}hello\end{document}`
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	path, d := CompileToPDF(ctx, tex, PDFOptions{})
	require.Nil(t, d)
	assert.FileExists(t, path)
}

func TestCompileToPDFDeadlineExceeded(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if _, err := exec.LookPath("pdflatex"); err != nil {
		t.Skip("pdflatex not installed")
	}
	tex := `\documentclass{article}\begin{document}hello\end{document}`
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Nanosecond)
	defer cancel()
	_, d := CompileToPDF(ctx, tex, PDFOptions{})
	require.NotNil(t, d)
}

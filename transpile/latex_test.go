package transpile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitLaTeXDocumentStructure(t *testing.T) {
	src := `statute "415" "Cheating" {
		definitions {
			deceive: "to cause a person to believe a falsehood"
		}
		elements {
			mens_rea intent: "dishonest intention"
		}
		penalty {
			imprisonment: 1 year,
			fine: S$5,000
		}
		illustrations {
			"A": "A cheats B by false pretence."
		}
	}`
	m := buildModule(t, src)
	out, err := EmitLaTeX(m)
	require.NoError(t, err)

	assert.Contains(t, out, "\\documentclass[11pt]{article}")
	assert.Contains(t, out, "\\begin{document}")
	assert.Contains(t, out, "\\end{document}")
	assert.Contains(t, out, "\\statute{415}{Cheating}")
	assert.Contains(t, out, "\\begin{legaldefs}")
	assert.Contains(t, out, "\\element{")
	assert.Contains(t, out, "\\begin{tabular}{|l|l|l|}")
	assert.Contains(t, out, "\\begin{illustrationbox}")
}

func TestEmitLaTeXEscapesSpecialChars(t *testing.T) {
	src := `statute "415" "Cheating & Fraud 100%" {}`
	m := buildModule(t, src)
	out, err := EmitLaTeX(m)
	require.NoError(t, err)
	assert.Contains(t, out, `Cheating \& Fraud 100\%`)
}

package transpile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitMermaidFlowchart(t *testing.T) {
	src := `statute "415" "Cheating" {
		elements {
			mens_rea intent: "dishonest intention"
		}
		penalty {
			imprisonment: 1 year
		}
	}`
	m := buildModule(t, src)
	out, err := EmitMermaid(m)
	require.NoError(t, err)
	assert.True(t, len(out) > 0)
	assert.Contains(t, out, "flowchart TD")
	assert.Contains(t, out, "Section 415")
	assert.Contains(t, out, "intent")
}

func TestEmitMermaidLabelTruncation(t *testing.T) {
	long := ""
	for i := 0; i < 80; i++ {
		long += "x"
	}
	src := `statute "1" "Theft" {
		elements {
			actus_reus a: "` + long + `"
		}
	}`
	m := buildModule(t, src)
	out, err := EmitMermaid(m)
	require.NoError(t, err)
	assert.NotContains(t, out, long)
}

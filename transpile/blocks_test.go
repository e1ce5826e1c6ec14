package transpile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitBlocksHierarchy(t *testing.T) {
	src := `struct Color { red, green, blue }
	statute "415" "Cheating" {
		elements {
			mens_rea intent: "dishonest intention"
		}
		penalty {
			imprisonment: 1 year,
			fine: S$5,000
		}
	}`
	m := buildModule(t, src)
	out, err := EmitBlocks(m)
	require.NoError(t, err)
	assert.Contains(t, out, "module")
	assert.Contains(t, out, "enum Color")
	assert.Contains(t, out, "Section 415: Cheating")
	assert.Contains(t, out, "Elements")
	assert.Contains(t, out, "intent")
	assert.Contains(t, out, "Penalty")
}

package transpile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitEnglishStatuteSections(t *testing.T) {
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
	out, err := EmitEnglish(m)
	require.NoError(t, err)
	assert.Contains(t, out, "SECTION 415: Cheating")
	assert.Contains(t, out, "Definitions")
	assert.Contains(t, out, "deceive:")
	assert.Contains(t, out, "Elements of the offence")
	assert.Contains(t, out, "Penalty")
	assert.Contains(t, out, "Illustrations")
}

func TestEmitEnglishEnumType(t *testing.T) {
	src := `struct Color { red, green, blue }`
	m := buildModule(t, src)
	out, err := EmitEnglish(m)
	require.NoError(t, err)
	assert.Contains(t, out, "Type Color is one of: red, green, blue.")
}

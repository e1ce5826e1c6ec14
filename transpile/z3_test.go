package transpile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitZ3ConvictionConjunction(t *testing.T) {
	src := `statute "Section1" "Theft" {
		elements {
			actus_reus a: "taking property",
			mens_rea b: "dishonestly"
		}
		penalty {
			imprisonment: 1 year to 3 years,
			fine: S$500 to S$5,000
		}
	}`
	m := buildModule(t, src)
	out, err := EmitZ3(m)
	require.NoError(t, err)
	assert.Contains(t, out, "(declare-const Section1_a Bool)")
	assert.Contains(t, out, "(declare-const Section1_b Bool)")
	assert.Contains(t, out, "(declare-const Section1_conviction Bool)")
	assert.Contains(t, out, "(assert (= Section1_conviction (and Section1_a Section1_b)))")
	assert.Contains(t, out, "(assert (>= Section1_imprisonment_days 365))")
	assert.Contains(t, out, "(assert (>= Section1_fine_cents 50000))")
}

func TestEmitZ3EnumSort(t *testing.T) {
	src := `struct Color { red, green, blue }`
	m := buildModule(t, src)
	out, err := EmitZ3(m)
	require.NoError(t, err)
	assert.Contains(t, out, "(declare-sort Color 0)")
	assert.Contains(t, out, "(declare-const Color_red Color)")
	assert.Contains(t, out, "(assert (distinct Color_red Color_green Color_blue))")
}

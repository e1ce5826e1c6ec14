package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAlloyOutputViolated(t *testing.T) {
	stdout := "Executing \"Check GuiltyRequiresAllElements\"\nAssertion GuiltyRequiresAllElements may be violated. Counterexample found.\n"
	res := parseAlloyOutput(stdout, "")
	assert.Len(t, res.Assertions, 1)
	assert.Equal(t, "GuiltyRequiresAllElements", res.Assertions[0].Assertion)
	assert.True(t, res.Assertions[0].Violated)
}

func TestParseAlloyOutputValid(t *testing.T) {
	stdout := "Executing \"Check GuiltyRequiresAllElements\"\nAssertion GuiltyRequiresAllElements is valid.\n"
	res := parseAlloyOutput(stdout, "")
	assert.Len(t, res.Assertions, 1)
	assert.False(t, res.Assertions[0].Violated)
}

func TestParseAlloyOutputMixed(t *testing.T) {
	stdout := "Assertion A is valid.\nAssertion B may be violated.\n"
	res := parseAlloyOutput(stdout, "")
	assert.Len(t, res.Assertions, 2)
	assert.False(t, res.Assertions[0].Violated)
	assert.True(t, res.Assertions[1].Violated)
}

func TestParseAlloyOutputNoAssertions(t *testing.T) {
	res := parseAlloyOutput("nothing of interest here", "")
	assert.Empty(t, res.Assertions)
}

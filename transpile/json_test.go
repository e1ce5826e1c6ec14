package transpile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitJSONRoundTripStructure(t *testing.T) {
	src := `struct Color { red, green, blue }
	statute "415" "Cheating" {
		elements {
			mens_rea intent: "dishonest intention"
		}
	}`
	m := buildModule(t, src)

	out1, err := EmitJSON(m, Options{})
	require.NoError(t, err)
	out2, err := EmitJSON(m, Options{})
	require.NoError(t, err)
	assert.Equal(t, out1, out2, "emitting JSON twice must be byte-identical")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out1), &decoded))

	statutes := decoded["statutes"].([]any)
	require.Len(t, statutes, 1)
	st := statutes[0].(map[string]any)
	assert.Equal(t, "415", st["section_number"])

	typeDefs := decoded["type_defs"].([]any)
	require.Len(t, typeDefs, 1)
	assert.Equal(t, "Color", typeDefs[0].(map[string]any)["name"])
}

func TestEmitJSONIncludeLocations(t *testing.T) {
	src := `struct Color { red, green, blue }`
	m := buildModule(t, src)
	out, err := EmitJSON(m, Options{IncludeLocations: true})
	require.NoError(t, err)
	assert.Contains(t, out, "source_location")
}

func TestEmitJSONLDContext(t *testing.T) {
	src := `struct Color { red, green, blue }`
	m := buildModule(t, src)
	out, err := EmitJSONLD(m, Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "@context")
	assert.Contains(t, out, "@type")
}

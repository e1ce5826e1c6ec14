package transpile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitGraphQLSchemaShape(t *testing.T) {
	out, err := EmitGraphQL(nil)
	require.NoError(t, err)
	assert.Contains(t, out, "scalar Money")
	assert.Contains(t, out, "scalar Duration")
	assert.Contains(t, out, "scalar Percent")
	assert.Contains(t, out, "scalar Date")
	assert.Contains(t, out, "enum Currency")
	assert.Contains(t, out, "enum ElementType")
	assert.Contains(t, out, "type Statute")
	assert.Contains(t, out, "type Element")
	assert.Contains(t, out, "type Penalty")
	assert.Contains(t, out, "type Definition")
	assert.Contains(t, out, "type Illustration")
	assert.Contains(t, out, "statute(sectionNumber: String!): Statute")
	assert.Contains(t, out, "statutesByElementType(elementType: ElementType!): [Statute!]!")
	assert.Contains(t, out, "searchStatutes(query: String!): [Statute!]!")
	assert.Contains(t, out, "allDefinitions: [Definition!]!")
	assert.Contains(t, out, "type Mutation")
	assert.Contains(t, out, "validateStatute(input: ValidateStatuteInput!): ValidateStatuteResult!")
}

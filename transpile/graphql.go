package transpile

import (
	"strings"

	"github.com/gongahkia/yuho/ast"
)

// EmitGraphQL renders module's statute catalogue as a GraphQL SDL schema:
// custom scalars for the domain's money/duration/percent/date values, enums
// for Currency and ElementType, object types mirroring Statute/Element/
// Penalty/Definition/Illustration, a Query root, and a Mutation exposing
// validateStatute, per spec.md §4.8.6. The schema shape does not depend on
// module's contents — it is the fixed exchange contract those contents are
// served through — so module is accepted only to keep the Transpile
// dispatcher's signature uniform across backends.
func EmitGraphQL(m *ast.ModuleNode) (string, error) {
	var b strings.Builder
	b.WriteString(graphqlScalars)
	b.WriteString(graphqlEnums)
	b.WriteString(graphqlObjects)
	b.WriteString(graphqlQuery)
	b.WriteString(graphqlMutation)
	return b.String(), nil
}

const graphqlScalars = `scalar Money
scalar Duration
scalar Percent
scalar Date

`

const graphqlEnums = `enum Currency {
  SGD
  USD
  EUR
  GBP
  JPY
  INR
  AUD
  CAD
  CHF
  UNKNOWN
}

enum ElementType {
  ACTUS_REUS
  MENS_REA
  CIRCUMSTANCE
}

`

const graphqlObjects = `type Definition {
  term: String!
  prose: String!
}

type Element {
  elementType: ElementType!
  name: String!
  description: String!
}

type Penalty {
  imprisonmentMin: Duration
  imprisonmentMax: Duration
  fineMin: Money
  fineMax: Money
  supplementary: String
}

type Illustration {
  label: String!
  description: String!
}

type Statute {
  sectionNumber: String!
  title: String!
  definitions: [Definition!]!
  elements: [Element!]!
  penalty: Penalty
  illustrations: [Illustration!]!
}

`

const graphqlQuery = `type Query {
  statute(sectionNumber: String!): Statute
  statutes: [Statute!]!
  statutesByElementType(elementType: ElementType!): [Statute!]!
  searchStatutes(query: String!): [Statute!]!
  allDefinitions: [Definition!]!
}

`

const graphqlMutation = `input ValidateStatuteInput {
  sectionNumber: String!
  title: String!
  elements: [String!]!
}

type ValidateStatuteResult {
  valid: Boolean!
  errors: [String!]!
}

type Mutation {
  validateStatute(input: ValidateStatuteInput!): ValidateStatuteResult!
}
`

// Package parser implements Yuho's concrete-syntax grammar: a
// participle-driven struct-tag parser producing a typed parse tree with
// field-addressable children and byte offsets, per the parser contract.
package parser

import "github.com/alecthomas/participle/v2/lexer"

// yuhoLexer tokenizes Yuho source. Rules are tried in order, so longer/more
// specific patterns (money literals, multi-char operators, date literals)
// are listed ahead of the generic identifier/number rules they would
// otherwise be swallowed by.
var yuhoLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*|/\*[\s\S]*?\*/`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Date", Pattern: `\d{4}-\d{2}-\d{2}`},
	{Name: "Money", Pattern: `(S\$|US\$|A\$|C\$|CHF|[$€£¥₹])\s?[0-9][0-9,]*(\.[0-9]+)?`},
	{Name: "Float", Pattern: `[0-9]+\.[0-9]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "OpArrow", Pattern: `=>`},
	{Name: "OpAssign", Pattern: `:=`},
	{Name: "OpCompare", Pattern: `==|!=|<=|>=`},
	{Name: "OpLogic", Pattern: `&&|\|\|`},
	{Name: "Punct", Pattern: `[{}\[\]().,:;?<>+\-*/%!=]`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

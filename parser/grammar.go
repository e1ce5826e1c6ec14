package parser

import "github.com/alecthomas/participle/v2/lexer"

// The grammar below is a direct transcription of the concrete syntax
// described in the data model: statute blocks, struct/function definitions,
// statements, and expressions with conventional operator precedence
// (logical-or < logical-and < comparison < additive < multiplicative <
// unary), lowered through the usual participle precedence-climbing idiom of
// one struct level per precedence tier. Every struct embeds lexer.Position,
// giving every concrete node a source location and byte offset for free;
// fields are named so they are addressable the way the parser contract
// requires (Base, Field, Condition, Body, SectionNumber, ...).

// Module is the grammar root: a sequence of top-level declarations in
// source order.
type Module struct {
	Pos   lexer.Position
	Decls []*TopLevelDecl `@@*`
}

// TopLevelDecl is a sum type over every declaration kind the module grammar
// dispatches on by leading keyword.
type TopLevelDecl struct {
	Pos         lexer.Position
	Import      *ImportDecl      `  @@`
	Referencing *ReferencingDecl `| @@`
	StructDef   *StructDef       `| @@`
	FunctionDef *FunctionDef     `| @@`
	Statute     *StatuteBlock    `| @@`
	VarDecl     *VarDeclStmt     `| @@ ";"`
	Assert      *AssertStmt      `| @@`
}

// ImportDecl: import "path" as name (, name)* | import "path" as *
type ImportDecl struct {
	Pos      lexer.Position
	Path     string   `"import" @String "as"`
	Wildcard bool     `( @"*"`
	Names    []string `| @Ident ( "," @Ident )* )`
	_        string   `";"?`
}

// ReferencingDecl: referencing "path";
type ReferencingDecl struct {
	Pos  lexer.Position
	Path string `"referencing" @String ";"?`
}

// StructDef: struct Name<T, U> { field: Type, variant, ... }
type StructDef struct {
	Pos        lexer.Position
	Name       string      `"struct" @Ident`
	TypeParams []string    `( "<" @Ident ( "," @Ident )* ">" )?`
	Fields     []*FieldDef `"{" ( @@ ( "," @@ )* ","? )? "}"`
}

// FieldDef: name: Type  |  name  (the latter is an enum variant)
type FieldDef struct {
	Pos  lexer.Position
	Name string   `@Ident`
	Type *TypeExpr `( ":" @@ )?`
}

// FunctionDef: fn name(param: Type, ...) -> ReturnType { body }
type FunctionDef struct {
	Pos        lexer.Position
	Name       string      `"fn" @Ident`
	Params     []*ParamDef `"(" ( @@ ( "," @@ )* )? ")"`
	ReturnType *TypeExpr   `( "->" @@ )?`
	Body       *BlockStmt  `@@`
}

// ParamDef: name: Type
type ParamDef struct {
	Pos  lexer.Position
	Name string    `@Ident`
	Type *TypeExpr `":" @@`
}

// TypeExpr: base type name (builtin keyword or identifier), optional
// generic argument list, optional trailing "[]" (array) and/or "?"
// (optional) modifiers, applied left to right by the AST builder.
type TypeExpr struct {
	Pos        lexer.Position
	Name       string      `@Ident`
	TypeArgs   []*TypeExpr `( "<" @@ ( "," @@ )* ">" )?`
	ArrayMark  bool        `( @( "[" "]" )`
	OptionMark bool        `  | @"?" )?`
}

// StatuteBlock: statute "101A" "Title" { definitions { ... } elements { ... } penalty { ... } illustrations { ... } }
type StatuteBlock struct {
	Pos           lexer.Position
	SectionNumber string                `"statute" @String`
	Title         *string               `@String?`
	Definitions   *DefinitionsBlock     `"{" ( @@`
	Elements      *ElementsBlock        `  | @@`
	Penalty       *PenaltyBlock         `  | @@`
	Illustrations *IllustrationsBlock   `  | @@ )* "}"`
}

// DefinitionsBlock: definitions { term: "prose", ... }
type DefinitionsBlock struct {
	Pos   lexer.Position
	Items []*DefinitionItem `"definitions" "{" ( @@ ","? )* "}"`
}

// DefinitionItem: term: "prose"
type DefinitionItem struct {
	Pos   lexer.Position
	Term  string `@Ident ":"`
	Prose string `@String`
}

// ElementsBlock: elements { actus_reus name: "desc", ... }
type ElementsBlock struct {
	Pos   lexer.Position
	Items []*ElementItem `"elements" "{" ( @@ ","? )* "}"`
}

// ElementItem: (actus_reus|mens_rea|circumstance) name: description
type ElementItem struct {
	Pos         lexer.Position
	ElementKind string      `@("actus_reus" | "mens_rea" | "circumstance")`
	Name        string      `@Ident ":"`
	StrDesc     *string     `( @String`
	ExprDesc    *Expression `  | @@ )`
}

// PenaltyBlock: penalty { imprisonment: Duration [to Duration], fine: Money [to Money], "supplementary prose" }
type PenaltyBlock struct {
	Pos             lexer.Position
	ImprisonmentMin *DurationLit `"penalty" "{" ( "imprisonment" ":" @@`
	ImprisonmentMax *DurationLit `  ( "to" @@ )? ","? )?`
	FineMin         *MoneyLit    `( "fine" ":" @@`
	FineMax         *MoneyLit    `  ( "to" @@ )? ","? )?`
	Supplementary   *string      `@String? "}"`
}

// IllustrationsBlock: illustrations { "label": "description", ... }
type IllustrationsBlock struct {
	Pos   lexer.Position
	Items []*IllustrationItem `"illustrations" "{" ( @@ ","? )* "}"`
}

// IllustrationItem: "label": "description"  |  "description"
type IllustrationItem struct {
	Pos         lexer.Position
	Label       *string `( @String ":" )?`
	Description string  `@String`
}

// AssertStmt: assert condition, "message";
type AssertStmt struct {
	Pos       lexer.Position
	Condition *Expression `"assert" @@`
	Message   *string     `( "," @String )? ";"?`
}

// BlockStmt: { stmt* }
type BlockStmt struct {
	Pos        lexer.Position
	Statements []*Statement `"{" @@* "}"`
}

// Statement is a sum type over every statement kind.
type Statement struct {
	Pos      lexer.Position
	VarDecl  *VarDeclStmt    `( @@`
	Return   *ReturnStmt     `| @@`
	Pass     *PassStmt       `| @@`
	Assign   *AssignStmt     `| @@`
	ExprStmt *ExprStmtNode   `| @@ ) ";"?`
	Block    *BlockStmt      `| @@`
}

// VarDeclStmt: Type name := expr  |  Type name;
type VarDeclStmt struct {
	Pos  lexer.Position
	Type *TypeExpr   `@@`
	Name string      `@Ident`
	Init *Expression `( ":=" @@ )?`
}

// AssignStmt: target := expr
type AssignStmt struct {
	Pos    lexer.Position
	Target *Expression `@@ ":="`
	Value  *Expression `@@`
}

// ReturnStmt: return [expr];
type ReturnStmt struct {
	Pos   lexer.Position
	Value *Expression `"return" @@?`
}

// PassStmt: pass;
type PassStmt struct {
	Pos lexer.Position
	_   bool `"pass"`
}

// ExprStmtNode wraps a bare expression used as a statement.
type ExprStmtNode struct {
	Pos  lexer.Position
	Expr *Expression `@@`
}

// ---------------------------------------------------------------------------
// Expressions, precedence climbing: Expression -> LogicOr -> LogicAnd ->
// Comparison -> Additive -> Multiplicative -> Unary -> Primary
// ---------------------------------------------------------------------------

type Expression struct {
	Pos   lexer.Position
	Match *MatchExpr `  @@`
	Or    *LogicOr   `| @@`
}

type MatchExpr struct {
	Pos       lexer.Position
	Scrutinee *Expression `"match" @@?`
	Arms      []*MatchArmRule `"{" @@* "}"`
}

type MatchArmRule struct {
	Pos     lexer.Position
	Pattern *PatternExpr `@@`
	Guard   *Expression  `( "if" @@ )?`
	Body    *Expression  `"=>" @@ ","?`
}

type LogicOr struct {
	Pos   lexer.Position
	Left  *LogicAnd   `@@`
	Right []*OpLogicAnd `@@*`
}

type OpLogicAnd struct {
	Pos lexer.Position
	Op  string    `@( "||" | "or" )`
	Rhs *LogicAnd `@@`
}

type LogicAnd struct {
	Pos   lexer.Position
	Left  *Comparison    `@@`
	Right []*OpComparison `@@*`
}

type OpComparison struct {
	Pos lexer.Position
	Op  string      `@( "&&" | "and" )`
	Rhs *Comparison `@@`
}

type Comparison struct {
	Pos   lexer.Position
	Left  *Additive    `@@`
	Right []*OpAdditive `@@*`
}

type OpAdditive struct {
	Pos lexer.Position
	Op  string    `@( "==" | "!=" | "<=" | ">=" | "<" | ">" )`
	Rhs *Additive `@@`
}

type Additive struct {
	Pos   lexer.Position
	Left  *Multiplicative    `@@`
	Right []*OpMultiplicative `@@*`
}

type OpMultiplicative struct {
	Pos lexer.Position
	Op  string          `@( "+" | "-" )`
	Rhs *Multiplicative `@@`
}

type Multiplicative struct {
	Pos   lexer.Position
	Left  *Unary    `@@`
	Right []*OpUnary `@@*`
}

type OpUnary struct {
	Pos lexer.Position
	Op  string `@( "*" | "/" | "%" )`
	Rhs *Unary `@@`
}

type Unary struct {
	Pos     lexer.Position
	Op      *string  `( @( "-" | "!" | "not" )`
	Operand *Unary   `  @@ )`
	Primary *Postfix `| @@`
}

// Postfix is a Primary followed by any number of field-access, index-access,
// or call suffixes, left-associative.
type Postfix struct {
	Pos     lexer.Position
	Primary *Primary        `@@`
	Suffixes []*PostfixSuffix `@@*`
}

type PostfixSuffix struct {
	Pos   lexer.Position
	Field *string       `( "." @Ident )`
	Index *Expression   `| ( "[" @@ "]" )`
	Call  *CallSuffix   `| @@`
}

type CallSuffix struct {
	Pos  lexer.Position
	Args []*Expression `"(" ( @@ ( "," @@ )* )? ")"`
}

// Primary is the base of the expression grammar: literals, identifiers,
// struct literals, parenthesized expressions, and pass.
type Primary struct {
	Pos       lexer.Position
	Money     *MoneyLit      `  @@`
	Percent   *PercentLit    `| @@`
	Date      *DateLit       `| @@`
	Duration  *DurationLit   `| @@`
	Float     *float64       `| @Float`
	Int       *int64         `| @Int`
	Bool      *string        `| @( "TRUE" | "FALSE" | "true" | "false" )`
	String    *string        `| @String`
	Pass      bool           `| @"pass"`
	StructLit *StructLitExpr `| @@`
	Paren     *Expression    `| "(" @@ ")"`
	Ident     *string        `| @Ident`
}

// MoneyLit is a single Money token (currency symbol + amount); split into
// its parts in the AST builder.
type MoneyLit struct {
	Pos  lexer.Position
	Text string `@Money`
}

// PercentLit is an integer or float immediately followed by "%".
type PercentLit struct {
	Pos  lexer.Position
	IntValue   *int64   `( @Int`
	FloatValue *float64 `  | @Float )`
	_          string   `"%"`
}

// DateLit is a single Date token, "YYYY-MM-DD".
type DateLit struct {
	Pos  lexer.Position
	Text string `@Date`
}

// DurationLit is one or more (integer, unit) pairs, e.g. "1 year 2 months".
type DurationLit struct {
	Pos   lexer.Position
	Parts []*DurationPart `@@+`
}

type DurationPart struct {
	Pos   lexer.Position
	Value int64  `@Int`
	Unit  string `@("years"|"year"|"months"|"month"|"days"|"day"|"hours"|"hour"|"minutes"|"minute"|"seconds"|"second")`
}

// StructLitExpr: TypeName { name: value, ... }
type StructLitExpr struct {
	Pos        lexer.Position
	StructName *string              `@Ident?`
	Fields     []*FieldAssignRule `"{" ( @@ ( "," @@ )* ","? )? "}"`
}

type FieldAssignRule struct {
	Pos   lexer.Position
	Name  string      `@Ident ":"`
	Value *Expression `@@`
}

// ---------------------------------------------------------------------------
// Patterns
// ---------------------------------------------------------------------------

// PatternExpr is a sum type over every pattern kind.
type PatternExpr struct {
	Pos       lexer.Position
	Wildcard  bool            `( @"_"`
	Bool      *string         `| @( "TRUE" | "FALSE" | "true" | "false" )`
	StructPat *StructPatRule  `| @@`
	Literal   *Primary        `| @@`
	Binding   *string         `| @Ident )`
}

// StructPatRule: TypeName { field: pattern, ... }
type StructPatRule struct {
	Pos      lexer.Position
	TypeName string            `@Ident`
	Fields   []*FieldPatRule `"{" ( @@ ( "," @@ )* )? "}"`
}

type FieldPatRule struct {
	Pos     lexer.Position
	Name    string       `@Ident ":"`
	Pattern *PatternExpr `@@`
}

package astbuild

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gongahkia/yuho/ast"
	"github.com/gongahkia/yuho/parser"
)

// buildExpr lowers the full precedence-climbing expression grammar back down
// into the flat ast.Expr tree, collapsing every single-child precedence
// level so that e.g. `2 + 3` produces one BinaryExprNode rather than a chain
// of wrapper nodes for every level that didn't see an operator.
func (b *builder) buildExpr(n *parser.Expression) ast.Expr {
	switch {
	case n.Match != nil:
		return b.buildMatch(n.Match)
	case n.Or != nil:
		return b.buildLogicOr(n.Or)
	default:
		return ast.NewPassExpr(b.loc(n.Pos))
	}
}

func (b *builder) buildLogicOr(n *parser.LogicOr) ast.Expr {
	left := b.buildLogicAnd(n.Left)
	for _, r := range n.Right {
		left = ast.NewBinaryExpr(left, normalizeOp(r.Op), b.buildLogicAnd(r.Rhs), b.loc(r.Pos))
	}
	return left
}

func (b *builder) buildLogicAnd(n *parser.LogicAnd) ast.Expr {
	left := b.buildComparison(n.Left)
	for _, r := range n.Right {
		left = ast.NewBinaryExpr(left, normalizeOp(r.Op), b.buildComparison(r.Rhs), b.loc(r.Pos))
	}
	return left
}

func (b *builder) buildComparison(n *parser.Comparison) ast.Expr {
	left := b.buildAdditive(n.Left)
	for _, r := range n.Right {
		left = ast.NewBinaryExpr(left, r.Op, b.buildAdditive(r.Rhs), b.loc(r.Pos))
	}
	return left
}

func (b *builder) buildAdditive(n *parser.Additive) ast.Expr {
	left := b.buildMultiplicative(n.Left)
	for _, r := range n.Right {
		left = ast.NewBinaryExpr(left, r.Op, b.buildMultiplicative(r.Rhs), b.loc(r.Pos))
	}
	return left
}

func (b *builder) buildMultiplicative(n *parser.Multiplicative) ast.Expr {
	left := b.buildUnary(n.Left)
	for _, r := range n.Right {
		left = ast.NewBinaryExpr(left, r.Op, b.buildUnary(r.Rhs), b.loc(r.Pos))
	}
	return left
}

func normalizeOp(op string) string {
	switch op {
	case "and":
		return "&&"
	case "or":
		return "||"
	default:
		return op
	}
}

func (b *builder) buildUnary(n *parser.Unary) ast.Expr {
	if n.Op != nil {
		op := *n.Op
		if op == "not" {
			op = "!"
		}
		return ast.NewUnaryExpr(op, b.buildUnary(n.Operand), b.loc(n.Pos))
	}
	return b.buildPostfix(n.Primary)
}

func (b *builder) buildPostfix(n *parser.Postfix) ast.Expr {
	cur := b.buildPrimary(n.Primary)
	for _, s := range n.Suffixes {
		switch {
		case s.Field != nil:
			cur = ast.NewFieldAccess(cur, *s.Field, b.loc(s.Pos))
		case s.Index != nil:
			cur = ast.NewIndexAccess(cur, b.buildExpr(s.Index), b.loc(s.Pos))
		case s.Call != nil:
			args := make([]ast.Expr, 0, len(s.Call.Args))
			for _, a := range s.Call.Args {
				args = append(args, b.buildExpr(a))
			}
			cur = ast.NewFunctionCall(cur, args, b.loc(s.Pos))
		}
	}
	return cur
}

func (b *builder) buildPrimary(n *parser.Primary) ast.Expr {
	loc := b.loc(n.Pos)
	switch {
	case n.Money != nil:
		return b.buildMoney(n.Money)
	case n.Percent != nil:
		return b.buildPercent(n.Percent)
	case n.Date != nil:
		return ast.NewDateFromISO8601(n.Date.Text, loc)
	case n.Duration != nil:
		return b.buildDuration(n.Duration)
	case n.Float != nil:
		return ast.NewFloatLit(*n.Float, loc)
	case n.Int != nil:
		return ast.NewIntLit(*n.Int, loc)
	case n.Bool != nil:
		v := strings.EqualFold(*n.Bool, "TRUE")
		return ast.NewBoolLit(v, loc)
	case n.String != nil:
		return ast.NewStringLit(unquote(*n.String), loc)
	case n.Pass:
		return ast.NewPassExpr(loc)
	case n.StructLit != nil:
		return b.buildStructLiteral(n.StructLit)
	case n.Paren != nil:
		return b.buildExpr(n.Paren)
	case n.Ident != nil:
		return ast.NewIdentifier(*n.Ident, loc)
	default:
		b.warnf(loc, "unrecognized primary expression")
		return ast.NewPassExpr(loc)
	}
}

// unquote strips the surrounding double quotes and resolves backslash
// escapes from a raw String token, matching the original builder's string
// literal normalization.
func unquote(raw string) string {
	s := strings.TrimPrefix(raw, `"`)
	s = strings.TrimSuffix(s, `"`)
	var out strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				out.WriteByte('\n')
			case 't':
				out.WriteByte('\t')
			case 'r':
				out.WriteByte('\r')
			case '"':
				out.WriteByte('"')
			case '\\':
				out.WriteByte('\\')
			default:
				out.WriteByte(s[i])
			}
			continue
		}
		out.WriteByte(s[i])
	}
	return out.String()
}

// buildMoney splits a raw Money token ("S$1,500.50") into its currency
// symbol and decimal amount, looking the symbol up in the fixed currency
// table. Thousands separators are stripped before parsing.
func (b *builder) buildMoney(n *parser.MoneyLit) *ast.MoneyLit {
	loc := b.loc(n.Pos)
	symbol, digits := splitMoneyText(n.Text)
	cur := ast.CurrencyFromSymbol(symbol)
	if cur == ast.CurrencyUnknown {
		b.warnf(loc, "unrecognized currency symbol %q, defaulting to unknown", symbol)
	}
	amount, err := decimal.NewFromString(strings.ReplaceAll(digits, ",", ""))
	if err != nil {
		b.warnf(loc, "malformed money amount %q", n.Text)
		amount = decimal.Zero
	}
	return ast.NewMoneyLit(cur, amount, loc)
}

func splitMoneyText(text string) (symbol, digits string) {
	i := 0
	for i < len(text) {
		c := text[i]
		if c >= '0' && c <= '9' {
			break
		}
		i++
	}
	symbol = strings.TrimSpace(text[:i])
	digits = strings.TrimSpace(text[i:])
	return symbol, digits
}

func (b *builder) buildPercent(n *parser.PercentLit) *ast.PercentLit {
	loc := b.loc(n.Pos)
	var d decimal.Decimal
	switch {
	case n.IntValue != nil:
		d = decimal.NewFromInt(*n.IntValue)
	case n.FloatValue != nil:
		d = decimal.NewFromFloat(*n.FloatValue)
	}
	return ast.NewPercentLit(d, loc)
}

// buildDuration aggregates the literal's (value, unit) parts into the
// fixed year/month/day/hour/minute/second fields; repeated units sum.
func (b *builder) buildDuration(n *parser.DurationLit) *ast.DurationLit {
	loc := b.loc(n.Pos)
	var years, months, days, hours, minutes, seconds int
	for _, p := range n.Parts {
		switch strings.TrimSuffix(p.Unit, "s") {
		case "year":
			years += int(p.Value)
		case "month":
			months += int(p.Value)
		case "day":
			days += int(p.Value)
		case "hour":
			hours += int(p.Value)
		case "minute":
			minutes += int(p.Value)
		case "second":
			seconds += int(p.Value)
		}
	}
	return ast.NewDurationLit(years, months, days, hours, minutes, seconds, loc)
}

func (b *builder) buildStructLiteral(n *parser.StructLitExpr) *ast.StructLiteralNode {
	loc := b.loc(n.Pos)
	name := ""
	if n.StructName != nil {
		name = *n.StructName
	}
	fields := make([]*ast.FieldAssignment, 0, len(n.Fields))
	for _, f := range n.Fields {
		fields = append(fields, ast.NewFieldAssignment(f.Name, b.buildExpr(f.Value), b.loc(f.Pos)))
	}
	return ast.NewStructLiteral(name, fields, loc)
}

func (b *builder) buildMatch(n *parser.MatchExpr) *ast.MatchExprNode {
	loc := b.loc(n.Pos)
	var scrutinee ast.Expr
	if n.Scrutinee != nil {
		scrutinee = b.buildExpr(n.Scrutinee)
	}
	arms := make([]*ast.MatchArm, 0, len(n.Arms))
	for _, a := range n.Arms {
		pat := b.buildPattern(a.Pattern)
		var guard ast.Expr
		if a.Guard != nil {
			guard = b.buildExpr(a.Guard)
		}
		body := b.buildExpr(a.Body)
		arms = append(arms, ast.NewMatchArm(pat, guard, body, b.loc(a.Pos)))
	}
	return ast.NewMatchExpr(scrutinee, arms, true, loc)
}

func (b *builder) buildPattern(n *parser.PatternExpr) ast.Pattern {
	loc := b.loc(n.Pos)
	switch {
	case n.Wildcard:
		return ast.NewWildcardPattern(loc)
	case n.Bool != nil:
		v := strings.EqualFold(*n.Bool, "TRUE")
		return ast.NewLiteralPattern(ast.NewBoolLit(v, loc), loc)
	case n.StructPat != nil:
		return b.buildStructPattern(n.StructPat)
	case n.Literal != nil:
		// A bare identifier is taken by the Literal alternative first (Primary
		// includes Ident), so it is turned into the binding it denotes here.
		if n.Literal.Ident != nil {
			return ast.NewBindingPattern(*n.Literal.Ident, loc)
		}
		return ast.NewLiteralPattern(b.buildPrimary(n.Literal), loc)
	case n.Binding != nil:
		return ast.NewBindingPattern(*n.Binding, loc)
	default:
		return ast.NewWildcardPattern(loc)
	}
}

func (b *builder) buildStructPattern(n *parser.StructPatRule) *ast.StructPattern {
	loc := b.loc(n.Pos)
	fields := make([]*ast.FieldPattern, 0, len(n.Fields))
	for _, f := range n.Fields {
		fields = append(fields, ast.NewFieldPattern(f.Name, b.buildPattern(f.Pattern), b.loc(f.Pos)))
	}
	return ast.NewStructPattern(n.TypeName, fields, loc)
}

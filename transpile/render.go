package transpile

import (
	"fmt"
	"strings"

	"github.com/gongahkia/yuho/ast"
)

// longOperator renders a binary/unary operator token as the long-form word
// the English transpiler (and Mermaid edge labels) use in place of the
// bare symbol.
var longOperator = map[string]string{
	"+": "plus", "-": "minus", "*": "times", "/": "divided by", "%": "modulo",
	"==": "equals", "!=": "does not equal", "<": "is less than", ">": "is greater than",
	"<=": "is at most", ">=": "is at least",
	"&&": "and", "||": "or", "and": "and", "or": "or", "not": "not", "!": "not",
}

func longOp(op string) string {
	if w, ok := longOperator[op]; ok {
		return w
	}
	return op
}

// durationLong renders a DurationLit in long conjunctive form, e.g.
// "2 years and 3 days". A zero duration renders as "no time".
func durationLong(d *ast.DurationLit) string {
	type part struct {
		n     int
		unit  string
		units string
	}
	parts := []part{
		{d.Years, "year", "years"},
		{d.Months, "month", "months"},
		{d.Days, "day", "days"},
		{d.Hours, "hour", "hours"},
		{d.Minutes, "minute", "minutes"},
		{d.Seconds, "second", "seconds"},
	}
	var words []string
	for _, p := range parts {
		if p.n == 0 {
			continue
		}
		unit := p.unit
		if p.n != 1 && p.n != -1 {
			unit = p.units
		}
		words = append(words, fmt.Sprintf("%d %s", p.n, unit))
	}
	if len(words) == 0 {
		return "no time"
	}
	if len(words) == 1 {
		return words[0]
	}
	return strings.Join(words[:len(words)-1], ", ") + " and " + words[len(words)-1]
}

// moneyLong renders a MoneyLit as its canonical symbol plus a fixed
// two-decimal amount, e.g. "S$10,000.00".
func moneyLong(m *ast.MoneyLit) string {
	return m.Currency.Symbol() + groupThousands(m.Amount.StringFixed(2))
}

// groupThousands inserts comma thousand separators into a fixed-point
// decimal string's integer part, leaving the fractional part untouched.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	var out []byte
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, byte(r))
	}
	result := string(out)
	if hasFrac {
		result += "." + fracPart
	}
	if neg {
		result = "-" + result
	}
	return result
}

// percentLong renders a PercentLit as "N%" with trailing zeros trimmed.
func percentLong(p *ast.PercentLit) string {
	return p.Value.String() + "%"
}

// truncateLabel shortens s to at most n characters, appending an ellipsis
// when truncated, per the Mermaid backend's 50-character label rule.
func truncateLabel(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// escapeMermaidLabel escapes quotes and angle brackets so a string is safe
// inside a Mermaid node/edge label delimited by quotes.
func escapeMermaidLabel(s string) string {
	s = strings.ReplaceAll(s, `"`, `#quot;`)
	s = strings.ReplaceAll(s, "<", "#lt;")
	s = strings.ReplaceAll(s, ">", "#gt;")
	return s
}

// elementKindLabel renders an ElementKind as the human phrase the English
// and LaTeX backends both use ("actus reus", "mens rea", "circumstance").
func elementKindLabel(k ast.ElementKind) string {
	switch k {
	case ast.ElementActusReus:
		return "actus reus"
	case ast.ElementMensRea:
		return "mens rea"
	case ast.ElementCircumstance:
		return "circumstance"
	default:
		return string(k)
	}
}

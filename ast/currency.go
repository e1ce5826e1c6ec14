package ast

// Currency is one of the fixed set of currency tags the AST builder
// recognizes from a money literal's leading symbol.
type Currency string

const (
	CurrencySGD     Currency = "SGD"
	CurrencyUSD     Currency = "USD"
	CurrencyEUR     Currency = "EUR"
	CurrencyGBP     Currency = "GBP"
	CurrencyJPY     Currency = "JPY"
	CurrencyINR     Currency = "INR"
	CurrencyAUD     Currency = "AUD"
	CurrencyCAD     Currency = "CAD"
	CurrencyCHF     Currency = "CHF"
	CurrencyUnknown Currency = "UNKNOWN"
)

// currencySymbols is the fixed table mapping a money literal's currency
// symbol text to a currency tag, in the order spec.md lists them:
// {$,S$,US$,€,£,¥,₹,A$,C$,CHF}. "$" bare is treated as SGD, Yuho's home
// jurisdiction's default currency, matching the original implementation's
// convention of a bare dollar sign meaning the local currency.
var currencySymbols = map[string]Currency{
	"S$":   CurrencySGD,
	"$":    CurrencySGD,
	"US$":  CurrencyUSD,
	"€":    CurrencyEUR,
	"£":    CurrencyGBP,
	"¥":    CurrencyJPY,
	"₹":    CurrencyINR,
	"A$":   CurrencyAUD,
	"C$":   CurrencyCAD,
	"CHF":  CurrencyCHF,
}

// CurrencyFromSymbol maps a money literal's currency text to a Currency tag.
// An unrecognized symbol yields CurrencyUnknown rather than an error, in
// keeping with the builder's rule that ambiguous subtrees produce
// placeholders instead of failing.
func CurrencyFromSymbol(symbol string) Currency {
	if c, ok := currencySymbols[symbol]; ok {
		return c
	}
	return CurrencyUnknown
}

// Symbol returns the canonical symbol text for c, the inverse of
// CurrencyFromSymbol, used by the English and LaTeX transpilers when
// rendering a money literal back into prose.
func (c Currency) Symbol() string {
	switch c {
	case CurrencySGD:
		return "S$"
	case CurrencyUSD:
		return "US$"
	case CurrencyEUR:
		return "€"
	case CurrencyGBP:
		return "£"
	case CurrencyJPY:
		return "¥"
	case CurrencyINR:
		return "₹"
	case CurrencyAUD:
		return "A$"
	case CurrencyCAD:
		return "C$"
	case CurrencyCHF:
		return "CHF"
	default:
		return "?"
	}
}

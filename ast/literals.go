package ast

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// All literal and expression nodes below also serve as Expr (the marker is
// structural — see expr.go).

// IntLit is a 64-bit signed integer literal.
type IntLit struct {
	NodeBase
	Value int64
}

func NewIntLit(v int64, loc SourceLocation) *IntLit { return &IntLit{NewBase(loc), v} }
func (n *IntLit) Kind() Kind                        { return KindIntLit }
func (n *IntLit) Children() []Node                  { return nil }
func (n *IntLit) Accept(v Visitor)                  { v.VisitIntLit(n) }
func (n *IntLit) exprNode()                         {}

// FloatLit is an IEEE-754 double literal.
type FloatLit struct {
	NodeBase
	Value float64
}

func NewFloatLit(v float64, loc SourceLocation) *FloatLit { return &FloatLit{NewBase(loc), v} }
func (n *FloatLit) Kind() Kind                            { return KindFloatLit }
func (n *FloatLit) Children() []Node                      { return nil }
func (n *FloatLit) Accept(v Visitor)                      { v.VisitFloatLit(n) }
func (n *FloatLit) exprNode()                             {}

// BoolLit is true/false; source tokens TRUE/FALSE both normalize here.
type BoolLit struct {
	NodeBase
	Value bool
}

func NewBoolLit(v bool, loc SourceLocation) *BoolLit { return &BoolLit{NewBase(loc), v} }
func (n *BoolLit) Kind() Kind                        { return KindBoolLit }
func (n *BoolLit) Children() []Node                  { return nil }
func (n *BoolLit) Accept(v Visitor)                  { v.VisitBoolLit(n) }
func (n *BoolLit) exprNode()                         {}

// StringLit is a UTF-8 string literal with surrounding quotes stripped and
// escapes already processed by the builder.
type StringLit struct {
	NodeBase
	Value string
}

func NewStringLit(v string, loc SourceLocation) *StringLit { return &StringLit{NewBase(loc), v} }
func (n *StringLit) Kind() Kind                            { return KindStringLit }
func (n *StringLit) Children() []Node                      { return nil }
func (n *StringLit) Accept(v Visitor)                      { v.VisitStringLit(n) }
func (n *StringLit) exprNode()                             {}

// MoneyLit is a currency tag plus an arbitrary-precision decimal amount.
type MoneyLit struct {
	NodeBase
	Currency Currency
	Amount   decimal.Decimal
}

func NewMoneyLit(cur Currency, amount decimal.Decimal, loc SourceLocation) *MoneyLit {
	return &MoneyLit{NewBase(loc), cur, amount}
}
func (n *MoneyLit) Kind() Kind       { return KindMoneyLit }
func (n *MoneyLit) Children() []Node { return nil }
func (n *MoneyLit) Accept(v Visitor) { v.VisitMoneyLit(n) }
func (n *MoneyLit) exprNode()        {}
func (n *MoneyLit) String() string {
	return fmt.Sprintf("%s%s", n.Currency.Symbol(), n.Amount.StringFixed(2))
}

// PercentLit is a decimal value, conventionally 0-100.
type PercentLit struct {
	NodeBase
	Value decimal.Decimal
}

func NewPercentLit(v decimal.Decimal, loc SourceLocation) *PercentLit {
	return &PercentLit{NewBase(loc), v}
}
func (n *PercentLit) Kind() Kind       { return KindPercentLit }
func (n *PercentLit) Children() []Node { return nil }
func (n *PercentLit) Accept(v Visitor) { v.VisitPercentLit(n) }
func (n *PercentLit) exprNode()        {}

// DateLit is an ISO-8601 calendar date.
type DateLit struct {
	NodeBase
	Value time.Time
}

// NewDateFromISO8601 parses "YYYY-MM-DD" per the builder's date
// normalization rule. On a malformed date it returns the zero time rather
// than an error, consistent with the builder's placeholder-on-ambiguity
// policy; callers that need strictness should validate before constructing.
func NewDateFromISO8601(text string, loc SourceLocation) *DateLit {
	t, err := time.Parse("2006-01-02", text)
	if err != nil {
		t = time.Time{}
	}
	return &DateLit{NewBase(loc), t}
}

func NewDateLit(t time.Time, loc SourceLocation) *DateLit { return &DateLit{NewBase(loc), t} }
func (n *DateLit) Kind() Kind                             { return KindDateLit }
func (n *DateLit) Children() []Node                       { return nil }
func (n *DateLit) Accept(v Visitor)                       { v.VisitDateLit(n) }
func (n *DateLit) exprNode()                              {}
func (n *DateLit) ISO8601() string                        { return n.Value.Format("2006-01-02") }

// DurationLit is a signed count of each calendar/clock unit, aggregated
// from however many (integer, unit) pairs appeared in the source literal.
type DurationLit struct {
	NodeBase
	Years, Months, Days, Hours, Minutes, Seconds int
}

func NewDurationLit(years, months, days, hours, minutes, seconds int, loc SourceLocation) *DurationLit {
	return &DurationLit{NewBase(loc), years, months, days, hours, minutes, seconds}
}
func (n *DurationLit) Kind() Kind       { return KindDurationLit }
func (n *DurationLit) Children() []Node { return nil }
func (n *DurationLit) Accept(v Visitor) { v.VisitDurationLit(n) }
func (n *DurationLit) exprNode()        {}

// IsZero reports whether every field is zero (e.g. a default/missing
// duration, as used by the penalty builder when only one bound is given).
func (n *DurationLit) IsZero() bool {
	return n.Years == 0 && n.Months == 0 && n.Days == 0 && n.Hours == 0 && n.Minutes == 0 && n.Seconds == 0
}

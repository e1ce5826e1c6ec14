// Package evaluator implements the small expression evaluator spec.md's
// Non-goals carve out: "no runtime evaluator for a full program semantics
// (only a small assertion evaluator used by tests)". It evaluates a single
// expression tree against a caller-supplied environment of already-known
// values, used by the test harness to check an AssertionNode's condition;
// it is never invoked by the core analysis pipeline.
package evaluator

import (
	"fmt"

	"github.com/gongahkia/yuho/ast"
	"github.com/shopspring/decimal"
)

// Kind tags the dynamic type of a Value.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindString
	KindMoney
	KindPercent
	KindStruct
)

// Value is a small tagged union covering every scalar and struct-literal
// shape the evaluator needs to represent.
type Value struct {
	Kind     Kind
	Int      int64
	Float    float64
	Bool     bool
	Str      string
	Currency ast.Currency
	Decimal  decimal.Decimal
	Fields   map[string]Value
	TypeName string // struct literal's declared type name, for pattern matching
}

func IntValue(v int64) Value    { return Value{Kind: KindInt, Int: v} }
func FloatValue(v float64) Value { return Value{Kind: KindFloat, Float: v} }
func BoolValue(v bool) Value    { return Value{Kind: KindBool, Bool: v} }
func StringValue(v string) Value { return Value{Kind: KindString, Str: v} }

// Env maps identifier names to already-computed values; Eval never mutates
// it.
type Env map[string]Value

// Eval evaluates e against env, returning an error (never panicking) when
// it encounters a construct outside the evaluator's small scope: a
// function call, an index access, or an identifier absent from env.
func Eval(e ast.Expr, env Env) (Value, error) {
	switch n := e.(type) {
	case *ast.IntLit:
		return IntValue(n.Value), nil
	case *ast.FloatLit:
		return FloatValue(n.Value), nil
	case *ast.BoolLit:
		return BoolValue(n.Value), nil
	case *ast.StringLit:
		return StringValue(n.Value), nil
	case *ast.MoneyLit:
		return Value{Kind: KindMoney, Currency: n.Currency, Decimal: n.Amount}, nil
	case *ast.PercentLit:
		return Value{Kind: KindPercent, Decimal: n.Value}, nil
	case *ast.IdentifierNode:
		v, ok := env[n.Name]
		if !ok {
			return Value{}, fmt.Errorf("evaluator: undefined identifier %q", n.Name)
		}
		return v, nil
	case *ast.FieldAccessNode:
		base, err := Eval(n.Base, env)
		if err != nil {
			return Value{}, err
		}
		if base.Kind != KindStruct {
			return Value{}, fmt.Errorf("evaluator: field access on non-struct value")
		}
		fv, ok := base.Fields[n.FieldName]
		if !ok {
			return Value{}, fmt.Errorf("evaluator: struct has no field %q", n.FieldName)
		}
		return fv, nil
	case *ast.StructLiteralNode:
		fields := make(map[string]Value, len(n.FieldValues))
		for _, fa := range n.FieldValues {
			fv, err := Eval(fa.Value, env)
			if err != nil {
				return Value{}, err
			}
			fields[fa.Name] = fv
		}
		return Value{Kind: KindStruct, TypeName: n.StructName, Fields: fields}, nil
	case *ast.UnaryExprNode:
		return evalUnary(n, env)
	case *ast.BinaryExprNode:
		return evalBinary(n, env)
	case *ast.MatchExprNode:
		return evalMatch(n, env)
	case *ast.PassExprNode:
		return Value{}, fmt.Errorf("evaluator: cannot evaluate a pass placeholder")
	default:
		return Value{}, fmt.Errorf("evaluator: unsupported expression kind %s", e.Kind())
	}
}

func evalUnary(n *ast.UnaryExprNode, env Env) (Value, error) {
	v, err := Eval(n.Operand, env)
	if err != nil {
		return Value{}, err
	}
	switch n.Operator {
	case "!":
		if v.Kind != KindBool {
			return Value{}, fmt.Errorf("evaluator: ! requires bool operand")
		}
		return BoolValue(!v.Bool), nil
	case "-":
		switch v.Kind {
		case KindInt:
			return IntValue(-v.Int), nil
		case KindFloat:
			return FloatValue(-v.Float), nil
		default:
			return Value{}, fmt.Errorf("evaluator: unary - requires numeric operand")
		}
	default:
		return Value{}, fmt.Errorf("evaluator: unsupported unary operator %q", n.Operator)
	}
}

func evalBinary(n *ast.BinaryExprNode, env Env) (Value, error) {
	left, err := Eval(n.Left, env)
	if err != nil {
		return Value{}, err
	}

	if n.Operator == "&&" || n.Operator == "||" {
		if left.Kind != KindBool {
			return Value{}, fmt.Errorf("evaluator: %s requires bool operands", n.Operator)
		}
		if n.Operator == "&&" && !left.Bool {
			return BoolValue(false), nil
		}
		if n.Operator == "||" && left.Bool {
			return BoolValue(true), nil
		}
		right, err := Eval(n.Right, env)
		if err != nil {
			return Value{}, err
		}
		if right.Kind != KindBool {
			return Value{}, fmt.Errorf("evaluator: %s requires bool operands", n.Operator)
		}
		return right, nil
	}

	right, err := Eval(n.Right, env)
	if err != nil {
		return Value{}, err
	}

	switch n.Operator {
	case "+", "-", "*", "/", "%":
		return evalArith(n.Operator, left, right)
	case "==":
		return BoolValue(valuesEqual(left, right)), nil
	case "!=":
		return BoolValue(!valuesEqual(left, right)), nil
	case "<", "<=", ">", ">=":
		return evalCompare(n.Operator, left, right)
	default:
		return Value{}, fmt.Errorf("evaluator: unsupported binary operator %q", n.Operator)
	}
}

func asFloat(v Value) (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindFloat:
		return v.Float, true
	case KindMoney, KindPercent:
		f, _ := v.Decimal.Float64()
		return f, true
	default:
		return 0, false
	}
}

func evalArith(op string, left, right Value) (Value, error) {
	if left.Kind == KindMoney || right.Kind == KindMoney || left.Kind == KindPercent || right.Kind == KindPercent {
		return evalDecimalArith(op, left, right)
	}
	if left.Kind == KindInt && right.Kind == KindInt {
		switch op {
		case "+":
			return IntValue(left.Int + right.Int), nil
		case "-":
			return IntValue(left.Int - right.Int), nil
		case "*":
			return IntValue(left.Int * right.Int), nil
		case "/":
			if right.Int == 0 {
				return Value{}, fmt.Errorf("evaluator: division by zero")
			}
			return IntValue(left.Int / right.Int), nil
		case "%":
			if right.Int == 0 {
				return Value{}, fmt.Errorf("evaluator: modulo by zero")
			}
			return IntValue(left.Int % right.Int), nil
		}
	}
	lf, ok1 := asFloat(left)
	rf, ok2 := asFloat(right)
	if !ok1 || !ok2 {
		return Value{}, fmt.Errorf("evaluator: %s requires numeric operands", op)
	}
	switch op {
	case "+":
		return FloatValue(lf + rf), nil
	case "-":
		return FloatValue(lf - rf), nil
	case "*":
		return FloatValue(lf * rf), nil
	case "/":
		if rf == 0 {
			return Value{}, fmt.Errorf("evaluator: division by zero")
		}
		return FloatValue(lf / rf), nil
	default:
		return Value{}, fmt.Errorf("evaluator: unsupported arithmetic operator %q on float", op)
	}
}

func evalDecimalArith(op string, left, right Value) (Value, error) {
	ld := asDecimal(left)
	rd := asDecimal(right)
	kind := KindMoney
	cur := left.Currency
	if left.Kind != KindMoney {
		cur = right.Currency
	}
	if left.Kind == KindPercent && right.Kind == KindPercent {
		kind = KindPercent
	}
	var result decimal.Decimal
	switch op {
	case "+":
		result = ld.Add(rd)
	case "-":
		result = ld.Sub(rd)
	case "*":
		result = ld.Mul(rd)
	case "/":
		if rd.IsZero() {
			return Value{}, fmt.Errorf("evaluator: division by zero")
		}
		result = ld.Div(rd)
	default:
		return Value{}, fmt.Errorf("evaluator: unsupported arithmetic operator %q on decimal value", op)
	}
	return Value{Kind: kind, Currency: cur, Decimal: result}, nil
}

func asDecimal(v Value) decimal.Decimal {
	switch v.Kind {
	case KindMoney, KindPercent:
		return v.Decimal
	case KindInt:
		return decimal.NewFromInt(v.Int)
	case KindFloat:
		return decimal.NewFromFloat(v.Float)
	default:
		return decimal.Zero
	}
}

func evalCompare(op string, left, right Value) (Value, error) {
	if left.Kind == KindMoney || right.Kind == KindMoney || left.Kind == KindPercent || right.Kind == KindPercent {
		ld, rd := asDecimal(left), asDecimal(right)
		switch op {
		case "<":
			return BoolValue(ld.LessThan(rd)), nil
		case "<=":
			return BoolValue(ld.LessThanOrEqual(rd)), nil
		case ">":
			return BoolValue(ld.GreaterThan(rd)), nil
		case ">=":
			return BoolValue(ld.GreaterThanOrEqual(rd)), nil
		}
	}
	lf, ok1 := asFloat(left)
	rf, ok2 := asFloat(right)
	if !ok1 || !ok2 {
		return Value{}, fmt.Errorf("evaluator: %s requires numeric operands", op)
	}
	switch op {
	case "<":
		return BoolValue(lf < rf), nil
	case "<=":
		return BoolValue(lf <= rf), nil
	case ">":
		return BoolValue(lf > rf), nil
	case ">=":
		return BoolValue(lf >= rf), nil
	default:
		return Value{}, fmt.Errorf("evaluator: unsupported comparison operator %q", op)
	}
}

func valuesEqual(left, right Value) bool {
	if left.Kind != right.Kind {
		lf, ok1 := asFloat(left)
		rf, ok2 := asFloat(right)
		if ok1 && ok2 {
			return lf == rf
		}
		return false
	}
	switch left.Kind {
	case KindInt:
		return left.Int == right.Int
	case KindFloat:
		return left.Float == right.Float
	case KindBool:
		return left.Bool == right.Bool
	case KindString:
		return left.Str == right.Str
	case KindMoney:
		return left.Currency == right.Currency && left.Decimal.Equal(right.Decimal)
	case KindPercent:
		return left.Decimal.Equal(right.Decimal)
	case KindStruct:
		if left.TypeName != right.TypeName || len(left.Fields) != len(right.Fields) {
			return false
		}
		for k, lv := range left.Fields {
			rv, ok := right.Fields[k]
			if !ok || !valuesEqual(lv, rv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

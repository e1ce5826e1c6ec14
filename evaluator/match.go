package evaluator

import (
	"fmt"

	"github.com/gongahkia/yuho/ast"
)

// evalMatch evaluates a match expression by trying each arm's pattern in
// order against the scrutinee (or, when Scrutinee is nil, treating every
// arm as a guard-only clause against a vacuous true scrutinee) and
// evaluating the first arm whose pattern matches and whose guard, if any,
// evaluates true.
func evalMatch(n *ast.MatchExprNode, env Env) (Value, error) {
	var scrutinee Value
	hasScrutinee := n.Scrutinee != nil
	if hasScrutinee {
		v, err := Eval(n.Scrutinee, env)
		if err != nil {
			return Value{}, err
		}
		scrutinee = v
	}

	for _, arm := range n.Arms {
		bindings, ok := matchPattern(arm.Pattern, scrutinee, hasScrutinee)
		if !ok {
			continue
		}
		armEnv := mergeEnv(env, bindings)
		if arm.Guard != nil {
			g, err := Eval(arm.Guard, armEnv)
			if err != nil {
				return Value{}, err
			}
			if g.Kind != KindBool || !g.Bool {
				continue
			}
		}
		return Eval(arm.Body, armEnv)
	}
	return Value{}, fmt.Errorf("evaluator: no match arm matched")
}

func mergeEnv(base Env, extra map[string]Value) Env {
	if len(extra) == 0 {
		return base
	}
	out := make(Env, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// matchPattern reports whether p matches scrutinee, and any bindings it
// introduces. hasScrutinee distinguishes a truly absent scrutinee (a bare
// guard chain, where only wildcard/binding patterns are meaningful) from a
// present one.
func matchPattern(p ast.Pattern, scrutinee Value, hasScrutinee bool) (map[string]Value, bool) {
	switch pat := p.(type) {
	case *ast.WildcardPattern:
		return nil, true
	case *ast.BindingPattern:
		if !hasScrutinee {
			return nil, true
		}
		return map[string]Value{pat.Name: scrutinee}, true
	case *ast.LiteralPattern:
		if !hasScrutinee {
			return nil, false
		}
		lit, err := Eval(pat.Literal, nil)
		if err != nil {
			return nil, false
		}
		return nil, valuesEqual(lit, scrutinee)
	case *ast.StructPattern:
		if !hasScrutinee || scrutinee.Kind != KindStruct {
			return nil, false
		}
		if pat.TypeName != "" && pat.TypeName != scrutinee.TypeName {
			return nil, false
		}
		bindings := map[string]Value{}
		for _, fp := range pat.Fields {
			fv, ok := scrutinee.Fields[fp.Name]
			if !ok {
				return nil, false
			}
			if fp.Sub == nil {
				bindings[fp.Name] = fv
				continue
			}
			sub, ok := matchPattern(fp.Sub, fv, true)
			if !ok {
				return nil, false
			}
			for k, v := range sub {
				bindings[k] = v
			}
		}
		return bindings, true
	default:
		return nil, false
	}
}

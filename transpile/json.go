package transpile

import (
	"encoding/json"
	"fmt"

	"github.com/gongahkia/yuho/ast"
)

// EmitJSON renders module as a one-to-one JSON dump of the AST: every
// declaration list at the top level, with every node folded into an
// ordered map keyed by "kind" plus its own fields, recursing into children
// the same way. Output is deterministic for a given input (encoding/json
// sorts map keys, and every list is walked in source order), satisfying
// the round-trip invariant that re-emitting twice is byte-identical.
func EmitJSON(m *ast.ModuleNode, opts Options) (string, error) {
	doc := moduleJSON(m, opts)
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("transpile: json: %w", err)
	}
	return string(b), nil
}

// EmitJSONLD wraps EmitJSON's document with a @context block for
// semantic-web consumers, per spec.md §4.8.6.
func EmitJSONLD(m *ast.ModuleNode, opts Options) (string, error) {
	doc := moduleJSON(m, opts)
	ld := map[string]any{
		"@context": jsonLDContext,
		"@type":    "Module",
	}
	for k, v := range doc {
		ld[k] = v
	}
	b, err := json.MarshalIndent(ld, "", "  ")
	if err != nil {
		return "", fmt.Errorf("transpile: jsonld: %w", err)
	}
	return string(b), nil
}

var jsonLDContext = map[string]string{
	"yuho":     "https://yuho.example/ns#",
	"statute":  "yuho:statute",
	"element":  "yuho:element",
	"penalty":  "yuho:penalty",
	"typeDef":  "yuho:typeDef",
	"functionDef": "yuho:functionDef",
}

func moduleJSON(m *ast.ModuleNode, opts Options) map[string]any {
	out := map[string]any{
		"imports":       sliceJSON(m.Imports, opts),
		"references":    sliceJSON(m.References, opts),
		"type_defs":     sliceJSON(m.TypeDefs, opts),
		"function_defs": sliceJSON(m.FunctionDefs, opts),
		"statutes":      sliceJSON(m.Statutes, opts),
		"variables":     sliceJSON(m.Variables, opts),
		"assertions":    sliceJSON(m.Assertions, opts),
	}
	withLocation(out, m, opts)
	return out
}

func sliceJSON[T ast.Node](items []T, opts Options) []map[string]any {
	out := make([]map[string]any, len(items))
	for i, it := range items {
		out[i] = nodeJSON(it, opts)
	}
	return out
}

func withLocation(m map[string]any, n ast.Node, opts Options) {
	if !opts.IncludeLocations {
		return
	}
	l := n.Loc()
	m["source_location"] = map[string]any{
		"file":     l.File,
		"line":     l.StartLine,
		"col":      l.StartCol,
		"end_line": l.EndLine,
		"end_col":  l.EndCol,
	}
}

// nodeJSON folds any AST node into an ordered map, keyed by "kind" plus its
// own scalar/child fields, recursing into nested nodes through the same
// function. nil is folded to a nil map entry by the caller, never to a
// nested nodeJSON call.
func nodeJSON(n ast.Node, opts Options) map[string]any {
	if n == nil {
		return nil
	}
	out := map[string]any{"kind": string(n.Kind())}
	withLocation(out, n, opts)

	switch v := n.(type) {
	case *ast.ImportNode:
		out["path"] = v.Path
		out["names"] = v.Names
		out["wildcard"] = v.Wildcard
	case *ast.ReferencingNode:
		out["path"] = v.Path
	case *ast.StructDefNode:
		out["name"] = v.Name
		out["type_params"] = v.TypeParams
		out["fields"] = sliceJSON(v.Fields, opts)
		out["is_enum"] = v.IsEnum()
	case *ast.FieldDef:
		out["name"] = v.Name
		out["is_enum_variant"] = v.IsEnumVariant()
		if v.Type != nil {
			out["type"] = nodeJSON(v.Type, opts)
		}
	case *ast.FunctionDefNode:
		out["name"] = v.Name
		out["params"] = sliceJSON(v.Params, opts)
		if v.ReturnType != nil {
			out["return_type"] = nodeJSON(v.ReturnType, opts)
		}
		if v.Body != nil {
			out["body"] = nodeJSON(v.Body, opts)
		}
	case *ast.ParamDef:
		out["name"] = v.Name
		if v.Type != nil {
			out["type"] = nodeJSON(v.Type, opts)
		}
	case *ast.StatuteNode:
		out["section_number"] = v.SectionNumber
		out["title"] = v.Title
		out["definitions"] = sliceJSON(v.Definitions, opts)
		out["elements"] = sliceJSON(v.Elements, opts)
		if v.Penalty != nil {
			out["penalty"] = nodeJSON(v.Penalty, opts)
		}
		out["illustrations"] = sliceJSON(v.Illustrations, opts)
	case *ast.DefinitionEntry:
		out["term"] = v.Term
		out["prose"] = v.Prose
	case *ast.ElementNode:
		out["element_kind"] = string(v.ElementKind)
		out["name"] = v.Name
		out["description"] = nodeJSON(v.Description, opts)
	case *ast.PenaltyNode:
		if v.ImprisonmentMin != nil {
			out["imprisonment_min"] = nodeJSON(v.ImprisonmentMin, opts)
		}
		if v.ImprisonmentMax != nil {
			out["imprisonment_max"] = nodeJSON(v.ImprisonmentMax, opts)
		}
		if v.FineMin != nil {
			out["fine_min"] = nodeJSON(v.FineMin, opts)
		}
		if v.FineMax != nil {
			out["fine_max"] = nodeJSON(v.FineMax, opts)
		}
		out["supplementary"] = v.Supplementary
	case *ast.IllustrationNode:
		out["label"] = v.Label
		out["description"] = v.Description
	case *ast.AssertionNode:
		out["condition"] = nodeJSON(v.Condition, opts)
		out["message"] = v.Message

	case *ast.BuiltinType:
		out["name"] = v.Name
	case *ast.NamedType:
		out["name"] = v.Name
	case *ast.OptionalType:
		out["inner"] = nodeJSON(v.Inner, opts)
	case *ast.ArrayType:
		out["element"] = nodeJSON(v.Element, opts)
	case *ast.GenericType:
		out["base"] = v.Base
		out["type_args"] = sliceJSON(v.TypeArgs, opts)

	case *ast.IntLit:
		out["value"] = v.Value
	case *ast.FloatLit:
		out["value"] = v.Value
	case *ast.BoolLit:
		out["value"] = v.Value
	case *ast.StringLit:
		out["value"] = v.Value
	case *ast.MoneyLit:
		out["currency"] = string(v.Currency)
		out["amount"] = v.Amount.String()
	case *ast.PercentLit:
		out["value"] = v.Value.String()
	case *ast.DateLit:
		out["value"] = v.ISO8601()
	case *ast.DurationLit:
		out["years"] = v.Years
		out["months"] = v.Months
		out["days"] = v.Days
		out["hours"] = v.Hours
		out["minutes"] = v.Minutes
		out["seconds"] = v.Seconds

	case *ast.IdentifierNode:
		out["name"] = v.Name
	case *ast.FieldAccessNode:
		out["base"] = nodeJSON(v.Base, opts)
		out["field_name"] = v.FieldName
	case *ast.IndexAccessNode:
		out["base"] = nodeJSON(v.Base, opts)
		out["index"] = nodeJSON(v.Index, opts)
	case *ast.FunctionCallNode:
		out["callee"] = nodeJSON(v.Callee, opts)
		out["args"] = sliceJSON(v.Args, opts)
	case *ast.BinaryExprNode:
		out["left"] = nodeJSON(v.Left, opts)
		out["operator"] = v.Operator
		out["right"] = nodeJSON(v.Right, opts)
	case *ast.UnaryExprNode:
		out["operator"] = v.Operator
		out["operand"] = nodeJSON(v.Operand, opts)
	case *ast.MatchExprNode:
		if v.Scrutinee != nil {
			out["scrutinee"] = nodeJSON(v.Scrutinee, opts)
		}
		out["arms"] = sliceJSON(v.Arms, opts)
		out["ensure_exhaustiveness"] = v.EnsureExhaustiveness
	case *ast.MatchArm:
		out["pattern"] = nodeJSON(v.Pattern, opts)
		if v.Guard != nil {
			out["guard"] = nodeJSON(v.Guard, opts)
		}
		out["body"] = nodeJSON(v.Body, opts)
	case *ast.StructLiteralNode:
		out["struct_name"] = v.StructName
		out["field_values"] = sliceJSON(v.FieldValues, opts)
	case *ast.FieldAssignment:
		out["name"] = v.Name
		out["value"] = nodeJSON(v.Value, opts)
	case *ast.PassExprNode:
		// no fields

	case *ast.WildcardPattern:
		// no fields
	case *ast.BindingPattern:
		out["name"] = v.Name
	case *ast.LiteralPattern:
		out["literal"] = nodeJSON(v.Literal, opts)
	case *ast.FieldPattern:
		out["name"] = v.Name
		if v.Sub != nil {
			out["sub"] = nodeJSON(v.Sub, opts)
		}
	case *ast.StructPattern:
		out["type_name"] = v.TypeName
		out["fields"] = sliceJSON(v.Fields, opts)

	case *ast.VariableDeclStmt:
		out["name"] = v.Name
		if v.Type != nil {
			out["type"] = nodeJSON(v.Type, opts)
		}
		if v.Initializer != nil {
			out["initializer"] = nodeJSON(v.Initializer, opts)
		}
	case *ast.AssignmentStmt:
		out["target"] = nodeJSON(v.Target, opts)
		out["value"] = nodeJSON(v.Value, opts)
	case *ast.ReturnStmt:
		if v.Value != nil {
			out["value"] = nodeJSON(v.Value, opts)
		}
	case *ast.PassStmt:
		// no fields
	case *ast.ExprStmt:
		out["expr"] = nodeJSON(v.Expr, opts)
	case *ast.Block:
		out["statements"] = sliceJSON(v.Statements, opts)

	default:
		out["repr"] = fmt.Sprintf("%v", n)
	}
	return out
}

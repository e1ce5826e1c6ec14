package transpile

import (
	"fmt"
	"strings"

	"github.com/gongahkia/yuho/ast"
)

// EmitEnglish renders module as controlled natural language: imports as
// "Reference: ...", struct definitions as "Type X consists of ...",
// function definitions as "Function name(params) returning T", and every
// statute as a "SECTION N: Title" block with Definitions, "Elements of the
// offence", Penalty, and Illustrations sub-sections, per spec.md §4.8.1.
func EmitEnglish(m *ast.ModuleNode) (string, error) {
	var b strings.Builder

	for _, imp := range m.Imports {
		fmt.Fprintf(&b, "Reference: %s\n", imp.Path)
	}
	for _, ref := range m.References {
		fmt.Fprintf(&b, "Reference: %s\n", ref.Path)
	}
	if len(m.Imports) > 0 || len(m.References) > 0 {
		b.WriteString("\n")
	}

	for _, sd := range m.TypeDefs {
		b.WriteString(englishStructDef(sd))
		b.WriteString("\n")
	}

	for _, fd := range m.FunctionDefs {
		b.WriteString(englishFunctionDef(fd))
		b.WriteString("\n")
	}

	for _, st := range m.Statutes {
		b.WriteString(englishStatute(st))
		b.WriteString("\n")
	}

	return b.String(), nil
}

func englishStructDef(sd *ast.StructDefNode) string {
	var b strings.Builder
	if sd.IsEnum() {
		fmt.Fprintf(&b, "Type %s is one of: %s.\n", sd.Name, strings.Join(sd.Variants(), ", "))
		return b.String()
	}
	fields := make([]string, 0, len(sd.Fields))
	for _, f := range sd.Fields {
		if f.IsEnumVariant() {
			fields = append(fields, f.Name)
			continue
		}
		fields = append(fields, fmt.Sprintf("%s (%s)", f.Name, typeText(f.Type)))
	}
	fmt.Fprintf(&b, "Type %s consists of %s.\n", sd.Name, strings.Join(fields, ", "))
	return b.String()
}

func englishFunctionDef(fd *ast.FunctionDefNode) string {
	params := make([]string, len(fd.Params))
	for i, p := range fd.Params {
		params[i] = fmt.Sprintf("%s: %s", p.Name, typeText(p.Type))
	}
	ret := "void"
	if fd.ReturnType != nil {
		ret = typeText(fd.ReturnType)
	}
	return fmt.Sprintf("Function %s(%s) returning %s.\n", fd.Name, strings.Join(params, ", "), ret)
}

func englishStatute(st *ast.StatuteNode) string {
	var b strings.Builder
	title := st.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintf(&b, "SECTION %s: %s\n", st.SectionNumber, title)

	if len(st.Definitions) > 0 {
		b.WriteString("Definitions\n")
		for _, d := range st.Definitions {
			fmt.Fprintf(&b, "  %s: %s\n", d.Term, d.Prose)
		}
	}

	if len(st.Elements) > 0 {
		b.WriteString("Elements of the offence\n")
		for _, el := range st.Elements {
			fmt.Fprintf(&b, "  %s (%s): %s\n", el.Name, elementKindLabel(el.ElementKind), exprText(el.Description))
		}
	}

	if st.Penalty != nil {
		b.WriteString("Penalty\n")
		b.WriteString(englishPenalty(st.Penalty))
	}

	if len(st.Illustrations) > 0 {
		b.WriteString("Illustrations\n")
		for _, ill := range st.Illustrations {
			label := ill.Label
			if label == "" {
				label = "Illustration"
			}
			fmt.Fprintf(&b, "  %s: %s\n", label, ill.Description)
		}
	}

	return b.String()
}

func englishPenalty(p *ast.PenaltyNode) string {
	var b strings.Builder
	if p.ImprisonmentMin != nil || p.ImprisonmentMax != nil {
		b.WriteString("  Imprisonment: ")
		switch {
		case p.ImprisonmentMin != nil && p.ImprisonmentMax != nil:
			fmt.Fprintf(&b, "from %s to %s\n", durationLong(p.ImprisonmentMin), durationLong(p.ImprisonmentMax))
		case p.ImprisonmentMin != nil:
			fmt.Fprintf(&b, "at least %s\n", durationLong(p.ImprisonmentMin))
		default:
			fmt.Fprintf(&b, "up to %s\n", durationLong(p.ImprisonmentMax))
		}
	}
	if p.FineMin != nil || p.FineMax != nil {
		b.WriteString("  Fine: ")
		switch {
		case p.FineMin != nil && p.FineMax != nil:
			fmt.Fprintf(&b, "from %s to %s\n", moneyLong(p.FineMin), moneyLong(p.FineMax))
		case p.FineMin != nil:
			fmt.Fprintf(&b, "at least %s\n", moneyLong(p.FineMin))
		default:
			fmt.Fprintf(&b, "up to %s\n", moneyLong(p.FineMax))
		}
	}
	if p.Supplementary != "" {
		fmt.Fprintf(&b, "  %s\n", p.Supplementary)
	}
	return b.String()
}

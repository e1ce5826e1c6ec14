package transpile

import (
	"fmt"
	"strings"

	"github.com/gongahkia/yuho/ast"
)

// alloyScope is the default Alloy analysis scope every run/check command in
// the generated model uses, per spec.md §4.8.3.
const alloyScope = "for 5 but 4 Int"

// EmitAlloy lowers module to a self-contained Alloy model: one sig per
// struct, one pred per function (body approximated — return expressions
// become comments), one bespoke "<Name>Offense" sig per statute with a
// Bool field per element plus guilty, a fact tying guilty to the
// conjunction of elements, a cross-cutting PercentRange fact, and the six
// paired run/assert/check commands spec.md §4.8.3 requires.
func EmitAlloy(m *ast.ModuleNode) (string, error) {
	var b strings.Builder

	b.WriteString("// Generated Alloy model. Open in the Alloy Analyzer to explore instances\n")
	b.WriteString("// and check the assertions below; a counterexample to an assert means the\n")
	b.WriteString("// statute's elements and its guilty verdict can disagree.\n\n")
	b.WriteString("sig Percent { value: one Int }\n")
	b.WriteString("fact PercentRange { all p: Percent | p.value >= 0 and p.value <= 100 }\n\n")

	for _, sd := range m.TypeDefs {
		b.WriteString(alloySig(sd))
	}
	for _, fd := range m.FunctionDefs {
		b.WriteString(alloyPred(fd))
	}
	for _, st := range m.Statutes {
		b.WriteString(alloyStatute(st))
	}

	return b.String(), nil
}

func alloySortName(typeName string) string {
	switch typeName {
	case "int", "money", "percent", "duration":
		return "Int"
	case "bool":
		return "Bool"
	case "string":
		return "String"
	default:
		return typeName
	}
}

func alloySig(sd *ast.StructDefNode) string {
	var b strings.Builder
	if sd.IsEnum() {
		fmt.Fprintf(&b, "enum %s { %s }\n\n", sd.Name, strings.Join(sd.Variants(), ", "))
		return b.String()
	}
	fmt.Fprintf(&b, "sig %s {\n", sd.Name)
	for i, f := range sd.Fields {
		sep := ","
		if i == len(sd.Fields)-1 {
			sep = ""
		}
		if f.IsEnumVariant() {
			fmt.Fprintf(&b, "  %s: one Bool%s\n", f.Name, sep)
			continue
		}
		fmt.Fprintf(&b, "  %s: one %s%s\n", f.Name, alloySortName(f.Type.ToAnnotation().TypeName), sep)
	}
	b.WriteString("}\n\n")
	return b.String()
}

func alloyPred(fd *ast.FunctionDefNode) string {
	var b strings.Builder
	params := make([]string, len(fd.Params))
	for i, p := range fd.Params {
		params[i] = fmt.Sprintf("%s: one %s", p.Name, alloySortName(p.Type.ToAnnotation().TypeName))
	}
	fmt.Fprintf(&b, "pred %s[%s] {\n", fd.Name, strings.Join(params, ", "))
	if fd.Body != nil {
		for _, stmt := range fd.Body.Statements {
			if ret, ok := stmt.(*ast.ReturnStmt); ok && ret.Value != nil {
				fmt.Fprintf(&b, "  // return %s\n", exprText(ret.Value))
			}
		}
	}
	b.WriteString("}\n\n")
	return b.String()
}

// statuteAlloyName derives the bespoke <Name> used by <Name>Offense and
// every command name for st: the section number with every non-alphanumeric
// character stripped, prefixed with "Section" when that leaves it empty or
// starting with a digit, since Alloy identifiers cannot begin with a digit
// or contain punctuation ("415" gives "Section415", "Section1" stays as is).
func statuteAlloyName(st *ast.StatuteNode) string {
	var b strings.Builder
	for _, r := range st.SectionNumber {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		return "Section" + name
	}
	return name
}

func alloyStatute(st *ast.StatuteNode) string {
	name := statuteAlloyName(st)
	var b strings.Builder

	elemNames := make([]string, len(st.Elements))
	fields := make([]string, 0, len(st.Elements)+1)
	for i, el := range st.Elements {
		elemNames[i] = el.Name
		fields = append(fields, fmt.Sprintf("%s: Bool", el.Name))
	}
	fields = append(fields, "guilty: Bool")
	fmt.Fprintf(&b, "sig %sOffense { %s }\n\n", name, strings.Join(fields, ", "))

	conj := conjunction(elemNames)
	fmt.Fprintf(&b, "fact %sGuiltyIffElements {\n", name)
	fmt.Fprintf(&b, "  guilty = True iff (%s)\n", conj)
	b.WriteString("}\n\n")

	for _, el := range st.Elements {
		if match, ok := el.Description.(*ast.MatchExprNode); ok {
			fmt.Fprintf(&b, "// %s is disjunctive: %s\n", el.Name, matchText(match))
		}
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "run show%sInstance {} %s\n", name, alloyScope)
	fmt.Fprintf(&b, "run show%sGuiltyScenario {\n", name)
	fmt.Fprintf(&b, "  guilty = True\n")
	fmt.Fprintf(&b, "} %s\n", alloyScope)
	fmt.Fprintf(&b, "run show%sInnocentScenario {\n", name)
	fmt.Fprintf(&b, "  guilty = False\n")
	fmt.Fprintf(&b, "} %s\n\n", alloyScope)

	fmt.Fprintf(&b, "assert %sGuiltyImpliesElements {\n", name)
	fmt.Fprintf(&b, "  guilty = True implies (%s)\n", conj)
	b.WriteString("}\n")
	fmt.Fprintf(&b, "check %sGuiltyImpliesElements %s\n\n", name, alloyScope)

	fmt.Fprintf(&b, "assert %sElementsImplyGuilty {\n", name)
	fmt.Fprintf(&b, "  (%s) implies guilty = True\n", conj)
	b.WriteString("}\n")
	fmt.Fprintf(&b, "check %sElementsImplyGuilty %s\n\n", name, alloyScope)

	fmt.Fprintf(&b, "assert %sNoElementsNoGuilt {\n", name)
	fmt.Fprintf(&b, "  (%s) implies guilty = False\n", negatedConjunction(elemNames))
	b.WriteString("}\n")
	fmt.Fprintf(&b, "check %sNoElementsNoGuilt %s\n\n", name, alloyScope)

	return b.String()
}

func conjunction(names []string) string {
	if len(names) == 0 {
		return "True = True"
	}
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = fmt.Sprintf("%s = True", n)
	}
	return strings.Join(parts, " and ")
}

func negatedConjunction(names []string) string {
	if len(names) == 0 {
		return "True = False"
	}
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = fmt.Sprintf("%s = False", n)
	}
	return strings.Join(parts, " or ")
}

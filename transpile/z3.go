package transpile

import (
	"fmt"
	"strings"

	"github.com/gongahkia/yuho/ast"
)

// EmitZ3 lowers module to an SMT-LIB2 constraint system parallel to the
// Alloy model: a declared sort per struct, a three-valued uninterpreted
// "Intent" sort, per-statute Bool constants per element plus a "conviction"
// constant constrained to their conjunction, and penalty bounds asserted on
// integer constants (days for imprisonment, cents for fines), per spec.md
// §4.8.4.
func EmitZ3(m *ast.ModuleNode) (string, error) {
	var b strings.Builder

	b.WriteString("; Generated SMT-LIB2 constraint system.\n")
	b.WriteString("(declare-sort Intent 0)\n")
	b.WriteString("(declare-const Intentional Intent)\n")
	b.WriteString("(declare-const Knowing Intent)\n")
	b.WriteString("(declare-const Reckless Intent)\n")
	b.WriteString("(assert (distinct Intentional Knowing Reckless))\n\n")

	for _, sd := range m.TypeDefs {
		b.WriteString(z3Sort(sd))
	}
	for _, st := range m.Statutes {
		b.WriteString(z3Statute(st))
	}

	return b.String(), nil
}

func z3Sort(sd *ast.StructDefNode) string {
	var b strings.Builder
	if sd.IsEnum() {
		fmt.Fprintf(&b, "(declare-sort %s 0)\n", sd.Name)
		for _, v := range sd.Variants() {
			fmt.Fprintf(&b, "(declare-const %s_%s %s)\n", sd.Name, v, sd.Name)
		}
		if len(sd.Variants()) > 1 {
			names := make([]string, len(sd.Variants()))
			for i, v := range sd.Variants() {
				names[i] = fmt.Sprintf("%s_%s", sd.Name, v)
			}
			fmt.Fprintf(&b, "(assert (distinct %s))\n", strings.Join(names, " "))
		}
		b.WriteString("\n")
		return b.String()
	}
	fmt.Fprintf(&b, "(declare-sort %s 0)\n\n", sd.Name)
	return b.String()
}

func z3Statute(st *ast.StatuteNode) string {
	name := statuteAlloyName(st)
	var b strings.Builder

	elemVars := make([]string, len(st.Elements))
	for i, el := range st.Elements {
		elemVars[i] = fmt.Sprintf("%s_%s", name, el.Name)
		fmt.Fprintf(&b, "(declare-const %s Bool)\n", elemVars[i])
	}
	convictionVar := name + "_conviction"
	fmt.Fprintf(&b, "(declare-const %s Bool)\n", convictionVar)

	conj := z3Conjunction(elemVars)
	fmt.Fprintf(&b, "(assert (= %s %s))\n", convictionVar, conj)

	if st.Penalty != nil {
		if st.Penalty.ImprisonmentMin != nil {
			fmt.Fprintf(&b, "(declare-const %s_imprisonment_days Int)\n", name)
			fmt.Fprintf(&b, "(assert (>= %s_imprisonment_days %d))\n", name, durationDays(st.Penalty.ImprisonmentMin))
		}
		if st.Penalty.ImprisonmentMax != nil {
			fmt.Fprintf(&b, "(declare-const %s_imprisonment_days Int)\n", name)
			fmt.Fprintf(&b, "(assert (<= %s_imprisonment_days %d))\n", name, durationDays(st.Penalty.ImprisonmentMax))
		}
		if st.Penalty.FineMin != nil {
			fmt.Fprintf(&b, "(declare-const %s_fine_cents Int)\n", name)
			fmt.Fprintf(&b, "(assert (>= %s_fine_cents %s))\n", name, moneyCents(st.Penalty.FineMin))
		}
		if st.Penalty.FineMax != nil {
			fmt.Fprintf(&b, "(declare-const %s_fine_cents Int)\n", name)
			fmt.Fprintf(&b, "(assert (<= %s_fine_cents %s))\n", name, moneyCents(st.Penalty.FineMax))
		}
	}
	b.WriteString("\n")
	return b.String()
}

func z3Conjunction(vars []string) string {
	if len(vars) == 0 {
		return "true"
	}
	if len(vars) == 1 {
		return vars[0]
	}
	return "(and " + strings.Join(vars, " ") + ")"
}

func durationDays(d *ast.DurationLit) int {
	return d.Years*365 + d.Months*30 + d.Days
}

func moneyCents(m *ast.MoneyLit) string {
	cents := m.Amount.Shift(2).Round(0)
	return cents.String()
}

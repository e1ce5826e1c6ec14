package transpile

import (
	"fmt"
	"strings"

	"github.com/gongahkia/yuho/ast"
)

// EmitLaTeX renders module as a self-contained LaTeX document: an article-
// class preamble defining the statute/legaldefs/illustrationbox/element
// macros spec.md §4.8.5 describes, followed by one numbered section per
// statute with a margin note carrying the section identifier, a legaldefs
// list, an enumerated elements list labelled by kind, a three-column
// penalty table, and illustration boxes.
func EmitLaTeX(m *ast.ModuleNode) (string, error) {
	var b strings.Builder
	b.WriteString(latexPreamble)
	b.WriteString("\\begin{document}\n\n")
	for _, st := range m.Statutes {
		b.WriteString(latexStatute(st))
	}
	b.WriteString("\\end{document}\n")
	return b.String(), nil
}

const latexPreamble = `\documentclass[11pt]{article}
\usepackage[margin=1in]{geometry}
\usepackage{enumitem}
\usepackage{marginnote}
\usepackage{xcolor}
\usepackage{array}

\newcommand{\statute}[2]{\section{Section #1: #2}}
\newenvironment{legaldefs}{\begin{description}}{\end{description}}
\newenvironment{illustrationbox}{%
  \begin{quote}\color{gray!80!black}\itshape
}{%
  \end{quote}
}
\newcommand{\element}[2]{\item[#1] #2}

`

func latexEscape(s string) string {
	r := strings.NewReplacer(
		`\`, `\textbackslash{}`,
		"&", `\&`, "%", `\%`, "$", `\$`, "#", `\#`, "_", `\_`,
		"{", `\{`, "}", `\}`, "~", `\textasciitilde{}`, "^", `\textasciicircum{}`,
	)
	return r.Replace(s)
}

func latexStatute(st *ast.StatuteNode) string {
	var b strings.Builder
	title := st.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintf(&b, "\\statute{%s}{%s}\n", latexEscape(st.SectionNumber), latexEscape(title))
	fmt.Fprintf(&b, "\\marginnote{\\S %s}\n\n", latexEscape(st.SectionNumber))

	if len(st.Definitions) > 0 {
		b.WriteString("\\subsection*{Definitions}\n\\begin{legaldefs}\n")
		for _, d := range st.Definitions {
			fmt.Fprintf(&b, "\\item[%s] %s\n", latexEscape(d.Term), latexEscape(d.Prose))
		}
		b.WriteString("\\end{legaldefs}\n\n")
	}

	if len(st.Elements) > 0 {
		b.WriteString("\\subsection*{Elements of the offence}\n\\begin{description}\n")
		for _, el := range st.Elements {
			fmt.Fprintf(&b, "\\element{%s}{%s}\n", latexEscape(elementKindLabel(el.ElementKind)+": "+el.Name), latexEscape(exprText(el.Description)))
		}
		b.WriteString("\\end{description}\n\n")
	}

	if st.Penalty != nil {
		b.WriteString(latexPenalty(st.Penalty))
	}

	if len(st.Illustrations) > 0 {
		b.WriteString("\\subsection*{Illustrations}\n")
		for _, ill := range st.Illustrations {
			label := ill.Label
			if label == "" {
				label = "Illustration"
			}
			b.WriteString("\\begin{illustrationbox}\n")
			fmt.Fprintf(&b, "\\textbf{%s.} %s\n", latexEscape(label), latexEscape(ill.Description))
			b.WriteString("\\end{illustrationbox}\n\n")
		}
	}

	return b.String()
}

func latexPenalty(p *ast.PenaltyNode) string {
	var b strings.Builder
	b.WriteString("\\subsection*{Penalty}\n")
	b.WriteString("\\begin{tabular}{|l|l|l|}\n\\hline\n")
	b.WriteString("Type & Minimum & Maximum \\\\\n\\hline\n")
	if p.ImprisonmentMin != nil || p.ImprisonmentMax != nil {
		fmt.Fprintf(&b, "Imprisonment & %s & %s \\\\\n", durLatexCell(p.ImprisonmentMin), durLatexCell(p.ImprisonmentMax))
	}
	if p.FineMin != nil || p.FineMax != nil {
		fmt.Fprintf(&b, "Fine & %s & %s \\\\\n", moneyLatexCell(p.FineMin), moneyLatexCell(p.FineMax))
	}
	b.WriteString("\\hline\n\\end{tabular}\n\n")
	if p.Supplementary != "" {
		fmt.Fprintf(&b, "%s\n\n", latexEscape(p.Supplementary))
	}
	return b.String()
}

func durLatexCell(d *ast.DurationLit) string {
	if d == nil {
		return "--"
	}
	return latexEscape(durationLong(d))
}

func moneyLatexCell(m *ast.MoneyLit) string {
	if m == nil {
		return "--"
	}
	return latexEscape(moneyLong(m))
}

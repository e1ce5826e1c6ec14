package transpile

import (
	"fmt"
	"strings"

	"github.com/gongahkia/yuho/ast"
)

const mermaidLabelLimit = 50

// EmitMermaid renders module's statutes as `flowchart TD` diagrams: a
// start node per statute, a decision diamond per match expression with one
// edge-labelled outgoing path per arm, a merge circle past the match, and a
// terminal node summarizing the penalty, per spec.md §4.8.2.
func EmitMermaid(m *ast.ModuleNode) (string, error) {
	var b strings.Builder
	b.WriteString("flowchart TD\n")
	g := &mermaidGen{b: &b}
	for _, st := range m.Statutes {
		g.statute(st)
	}
	return b.String(), nil
}

type mermaidGen struct {
	b      *strings.Builder
	nextID int
}

func (g *mermaidGen) id(prefix string) string {
	g.nextID++
	return fmt.Sprintf("%s%d", prefix, g.nextID)
}

func label(s string) string {
	return fmt.Sprintf("%q", truncateLabel(escapeMermaidLabel(s), mermaidLabelLimit))
}

func (g *mermaidGen) statute(st *ast.StatuteNode) {
	start := g.id("start")
	fmt.Fprintf(g.b, "  %s([%s])\n", start, label(fmt.Sprintf("Section %s", st.SectionNumber)))

	cur := start
	for _, el := range st.Elements {
		cur = g.element(cur, el)
	}

	end := g.id("end")
	fmt.Fprintf(g.b, "  %s((%s))\n", end, label("Outcome"))
	fmt.Fprintf(g.b, "  %s --> %s\n", cur, end)

	if st.Penalty != nil {
		pen := g.id("penalty")
		fmt.Fprintf(g.b, "  %s[%s]\n", pen, label(penaltySummary(st.Penalty)))
		fmt.Fprintf(g.b, "  %s --> %s\n", end, pen)
	}
}

func (g *mermaidGen) element(from string, el *ast.ElementNode) string {
	if match, ok := el.Description.(*ast.MatchExprNode); ok {
		return g.match(from, match, el.Name)
	}
	node := g.id("el")
	fmt.Fprintf(g.b, "  %s[%s]\n", node, label(fmt.Sprintf("%s: %s", el.Name, exprText(el.Description))))
	fmt.Fprintf(g.b, "  %s --> %s\n", from, node)
	return node
}

// match emits a decision diamond for the scrutinee plus one edge per arm,
// optionally wrapping nested matches in their own subgraph, and returns the
// merge node every arm converges on.
func (g *mermaidGen) match(from string, n *ast.MatchExprNode, name string) string {
	decisionLabel := name
	if n.Scrutinee != nil {
		decisionLabel = exprText(n.Scrutinee)
	}
	diamond := g.id("dec")
	fmt.Fprintf(g.b, "  %s{%s}\n", diamond, label(decisionLabel))
	fmt.Fprintf(g.b, "  %s --> %s\n", from, diamond)

	merge := g.id("merge")
	fmt.Fprintf(g.b, "  %s((%s))\n", merge, label("merge"))

	for _, arm := range n.Arms {
		edgeLabel := patternText(arm.Pattern)
		if arm.Guard != nil {
			edgeLabel += " if " + exprText(arm.Guard)
		}
		if nested, ok := arm.Body.(*ast.MatchExprNode); ok {
			sub := g.id("sub")
			fmt.Fprintf(g.b, "  subgraph %s [%s]\n", sub, label(edgeLabel))
			leaf := g.match(diamond, nested, name)
			fmt.Fprintf(g.b, "  end\n")
			fmt.Fprintf(g.b, "  %s --> %s\n", leaf, merge)
			continue
		}
		leaf := g.id("arm")
		fmt.Fprintf(g.b, "  %s[%s]\n", leaf, label(exprText(arm.Body)))
		fmt.Fprintf(g.b, "  %s -->|%s| %s\n", diamond, label(edgeLabel), leaf)
		fmt.Fprintf(g.b, "  %s --> %s\n", leaf, merge)
	}
	return merge
}

func penaltySummary(p *ast.PenaltyNode) string {
	var parts []string
	if p.ImprisonmentMax != nil {
		parts = append(parts, "imprisonment up to "+durationLong(p.ImprisonmentMax))
	} else if p.ImprisonmentMin != nil {
		parts = append(parts, "imprisonment at least "+durationLong(p.ImprisonmentMin))
	}
	if p.FineMax != nil {
		parts = append(parts, "fine up to "+moneyLong(p.FineMax))
	} else if p.FineMin != nil {
		parts = append(parts, "fine at least "+moneyLong(p.FineMin))
	}
	if len(parts) == 0 {
		return "Penalty"
	}
	return strings.Join(parts, ", ")
}

package transpile

import (
	"fmt"
	"strings"

	"github.com/gongahkia/yuho/ast"
)

// EmitBlocks renders module as a human-readable box-drawing hierarchical
// view, for quick inspection of a module's structure without opening a
// formal diagram, per spec.md §4.8.6.
func EmitBlocks(m *ast.ModuleNode) (string, error) {
	var b strings.Builder
	bl := &blockGen{b: &b}
	bl.line(0, "module")
	for _, im := range m.Imports {
		bl.line(1, "import %s", im.Path)
	}
	for _, td := range m.TypeDefs {
		bl.typeDef(1, td)
	}
	for _, fd := range m.FunctionDefs {
		bl.line(1, "fn %s", fd.Name)
	}
	for _, st := range m.Statutes {
		bl.statute(1, st)
	}
	return b.String(), nil
}

type blockGen struct {
	b *strings.Builder
}

func (g *blockGen) line(depth int, format string, args ...any) {
	g.b.WriteString(blockPrefix(depth))
	fmt.Fprintf(g.b, format, args...)
	g.b.WriteByte('\n')
}

// blockPrefix builds the box-drawing indent for depth: a vertical bar per
// ancestor level, then a branch connector at the node's own level.
func blockPrefix(depth int) string {
	if depth == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < depth-1; i++ {
		b.WriteString("│  ")
	}
	b.WriteString("├─ ")
	return b.String()
}

func (g *blockGen) typeDef(depth int, td *ast.StructDefNode) {
	kind := "struct"
	if td.IsEnum() {
		kind = "enum"
	}
	g.line(depth, "%s %s", kind, td.Name)
	for _, f := range td.Fields {
		if f.IsEnumVariant() {
			g.line(depth+1, "%s", f.Name)
		} else {
			g.line(depth+1, "%s: %s", f.Name, typeText(f.Type))
		}
	}
}

func (g *blockGen) statute(depth int, st *ast.StatuteNode) {
	title := st.Title
	if title == "" {
		title = "(untitled)"
	}
	g.line(depth, "Section %s: %s", st.SectionNumber, title)
	if len(st.Definitions) > 0 {
		g.line(depth+1, "Definitions")
		for _, d := range st.Definitions {
			g.line(depth+2, "%s", d.Term)
		}
	}
	if len(st.Elements) > 0 {
		g.line(depth+1, "Elements")
		for _, el := range st.Elements {
			g.line(depth+2, "[%s] %s", elementKindLabel(el.ElementKind), el.Name)
		}
	}
	if st.Penalty != nil {
		g.line(depth+1, "Penalty")
		p := st.Penalty
		if p.ImprisonmentMin != nil || p.ImprisonmentMax != nil {
			g.line(depth+2, "imprisonment: %s - %s", durLatexCell(p.ImprisonmentMin), durLatexCell(p.ImprisonmentMax))
		}
		if p.FineMin != nil || p.FineMax != nil {
			g.line(depth+2, "fine: %s - %s", moneyLatexCell(p.FineMin), moneyLatexCell(p.FineMax))
		}
	}
	if len(st.Illustrations) > 0 {
		g.line(depth+1, "Illustrations")
		for _, ill := range st.Illustrations {
			label := ill.Label
			if label == "" {
				label = "(unlabelled)"
			}
			g.line(depth+2, "%s", label)
		}
	}
}

package pushdown

import "github.com/enetx/g"

// ToDOT generates a DOT language string representation of the current stack
// for visualization. The bottom state is drawn first and the active state is
// highlighted; every other state is paused beneath the one above it.
func (m *Machine) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph Stack {\n")
	b.WriteString("  rankdir=BT;\n")
	b.WriteString(
		"  node [shape=box, style=\"rounded,filled\", fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	if m.states.Empty() {
		b.WriteString("  empty [label=\"(empty)\", shape=plaintext, style=\"\"];\n")
		b.WriteString("}\n")

		return b.String()
	}

	last := len(m.states) - 1

	for i, state := range m.states {
		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", Name(state)))

		switch {
		case i == last && m.IsRunning():
			attrs.Push("fillcolor=\"#90ee90\"", "peripheries=2", "tooltip=\"active\"")
		case i == last:
			attrs.Push("tooltip=\"not started\"")
		default:
			attrs.Push("fillcolor=\"#d3d3d3\"", "tooltip=\"paused\"")
		}

		b.WriteString(g.Format("  s{} [{}];\n", i, attrs.Join(", ")))
	}

	b.WriteByte('\n')

	for i := range last {
		b.WriteString(g.Format("  s{} -> s{} [label=\" paused by \", style=dashed];\n", i, i+1))
	}

	b.WriteString("\n  subgraph cluster_legend {\n")
	b.WriteString("    label = \"Legend\";\n")
	b.WriteString("    style = dashed;\n")
	b.WriteString(`    key [label=<
      <table border="0" cellpadding="4" cellspacing="0" cellborder="0">
        <tr><td align="right"><font color="green">▣</font></td><td>Active state</td></tr>
        <tr><td align="right"><font color="gray">▣</font></td><td>Paused state</td></tr>
      </table>
    >, shape=none];`)

	b.WriteString("  }\n")
	b.WriteString("}\n")

	return b.String()
}

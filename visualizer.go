package devidx

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Visualizer renders an Index one node per line, indented by depth, for
// terminal inspection. Colors follow the fatih/color global settings and
// degrade to plain text when disabled.
type Visualizer struct {
	Index *Index
}

var (
	visBranch = color.New(color.FgCyan, color.Bold)
	visLeaf   = color.New(color.FgGreen)
	visMeta   = color.New(color.Faint)
)

// Visualize returns the rendering of the whole tree.
func (v *Visualizer) Visualize() string {
	var b strings.Builder
	v.Render(&b)
	return b.String()
}

// Render writes the tree to w: a summary line, then one line per node in
// reading order (each node before its children, children left to right).
func (v *Visualizer) Render(w io.Writer) {
	if v.Index == nil || v.Index.root == nil {
		fmt.Fprintln(w, visMeta.Sprint("(empty index)"))
		return
	}

	fmt.Fprintln(w, visMeta.Sprintf("order=%d devices=%d height=%d",
		v.Index.order, v.Index.count, v.Index.Height()))
	v.renderNode(w, v.Index.root, 0)
}

func (v *Visualizer) renderNode(w io.Writer, n *node, depth int) {
	indent := strings.Repeat("  ", depth)

	if n.kind == leafKind {
		recs := make([]string, 0, len(n.slots))
		for i := range n.slots {
			recs = append(recs, visLeaf.Sprint(n.slots[i].dev.String()))
		}
		fmt.Fprintf(w, "%s%s [%s]\n", indent, visMeta.Sprint("leaf"), strings.Join(recs, ", "))
		return
	}

	keys := make([]string, 0, len(n.slots))
	for i := range n.slots {
		keys = append(keys, visBranch.Sprintf("%d", n.slots[i].dev.ID))
	}
	fmt.Fprintf(w, "%s%s {%s}\n", indent, visMeta.Sprint("node"), strings.Join(keys, " "))

	if n.leftChild != nil {
		v.renderNode(w, n.leftChild, depth+1)
	}
	for i := range n.slots {
		if c := n.slots[i].child; c != nil {
			v.renderNode(w, c, depth+1)
		}
	}
}

// Package s11n renders node trees back to markup.
package s11n

import (
	"io"
	"strings"

	"github.com/lestrrat-go/xmltree/node"
)

const indentUnit = "  "

// Dumper writes nodes as indented markup. Each element starts on its
// own line, indented two spaces per level; an element with children
// puts its closing tag on a separate line at its own indentation.
// Output parses back to the same tags, values and child order, but is
// not a byte-exact copy of the original input.
type Dumper struct{}

// errWriter remembers the first write error so the dumping code can
// stay linear.
type errWriter struct {
	out io.Writer
	err error
}

func (w *errWriter) writeString(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.out, s)
}

// DumpNode writes n and its subtree to out, treating n as depth 0.
func (d *Dumper) DumpNode(out io.Writer, n *node.Node) error {
	if n == nil {
		return node.ErrNilNode
	}
	w := &errWriter{out: out}
	d.dumpNode(w, n, 0)
	return w.err
}

func (d *Dumper) dumpNode(w *errWriter, n *node.Node, depth int) {
	indent := strings.Repeat(indentUnit, depth)

	w.writeString(indent)
	w.writeString("<")
	w.writeString(n.Tag())
	w.writeString(">")
	w.writeString(n.Value())

	hasChildren := n.NumChildren() > 0
	if hasChildren {
		w.writeString("\n")
		for i := range n.NumChildren() {
			d.dumpNode(w, n.Child(i), depth+1)
		}
		w.writeString(indent)
	}

	w.writeString("</")
	w.writeString(n.Tag())
	w.writeString(">\n")
}

// String returns the markup for n, or an empty string for nil.
func String(n *node.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var d Dumper
	_ = d.DumpNode(&sb, n)
	return sb.String()
}

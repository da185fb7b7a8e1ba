package s11n

import (
	"strconv"

	"github.com/lestrrat-go/xmltree/node"
	"github.com/xlab/treeprint"
)

// Outline draws n and its descendants as a box-drawing tree, one
// element per line, labelled with the tag and the quoted value.
func Outline(n *node.Node) string {
	if n == nil {
		return ""
	}
	tp := treeprint.New()
	addOutline(tp, n)
	return tp.String()
}

func outlineLabel(n *node.Node) string {
	if v := n.Value(); v != "" {
		return n.Tag() + " " + strconv.Quote(v)
	}
	return n.Tag()
}

func addOutline(tp treeprint.Tree, n *node.Node) {
	if n.NumChildren() == 0 {
		tp.AddNode(outlineLabel(n))
		return
	}

	branch := tp.AddBranch(outlineLabel(n))
	for i := range n.NumChildren() {
		addOutline(branch, n.Child(i))
	}
}

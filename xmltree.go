package xmltree

import (
	"context"
	"io"
	"iter"
	"strings"

	"github.com/lestrrat-go/xmltree/node"
	"github.com/lestrrat-go/xmltree/s11n"
)

// New creates an empty tree. Populate it with Parse.
func New() *Tree {
	return &Tree{}
}

// NewWithRoot creates a tree holding a single root element.
func NewWithRoot(tag, value string) (*Tree, error) {
	if err := node.ValidateName(tag); err != nil {
		return nil, err
	}
	return &Tree{root: node.New(tag, value)}, nil
}

// Root returns the root element, or nil if the tree is empty.
func (t *Tree) Root() *node.Node {
	return t.root
}

func (t *Tree) Empty() bool {
	return t.root == nil
}

// Parse replaces the contents of the tree with the result of parsing
// b. On error the tree is left unchanged.
func (t *Tree) Parse(ctx context.Context, b []byte, options ...ParseOption) error {
	parsed, err := Parse(ctx, b, options...)
	if err != nil {
		return err
	}
	t.root = parsed.root
	return nil
}

// Dump writes the indented markup for the tree to out.
func (t *Tree) Dump(out io.Writer) error {
	if t.root == nil {
		return nil
	}
	var d s11n.Dumper
	return d.DumpNode(out, t.root)
}

// String returns the indented markup for the tree.
func (t *Tree) String() string {
	var sb strings.Builder
	// strings.Builder never fails to write
	_ = t.Dump(&sb)
	return sb.String()
}

// Begin returns a pre-order iterator starting at the root. The tree
// must not be modified while the iterator is in use, except for the
// node it is currently positioned on.
func (t *Tree) Begin() *node.Iterator {
	return node.Begin(t.root)
}

// All returns the pre-order sequence of every node in the tree.
func (t *Tree) All() iter.Seq[*node.Node] {
	return node.All(t.root)
}

// Walk calls f for every node in pre-order, stopping at the first
// error. Walking an empty tree does nothing.
func (t *Tree) Walk(f node.WalkFunc) error {
	if t.root == nil {
		return nil
	}
	return node.Walk(t.root, f)
}

// Find returns the first node in pre-order whose tag and value match
// exactly, or nil.
func (t *Tree) Find(tag, value string) *node.Node {
	return node.Find(t.root, tag, value)
}

// contains walks from n up to its root, so Add and Erase cost
// O(depth of n) on top of the mutation itself. The walk is what lets
// them reject nodes that belong to another tree.
func (t *Tree) contains(n *node.Node) bool {
	return n != nil && t.root != nil && n.Root() == t.root
}

// Add appends a new element as the last child of parent and returns
// it. parent must be a node of this tree, and tag must pass
// node.ValidateName. value is stored as given, without trimming.
func (t *Tree) Add(tag, value string, parent *node.Node) (*node.Node, error) {
	if !t.contains(parent) {
		return nil, ErrInvalidTarget
	}
	return parent.AddNewChild(tag, value)
}

// Erase removes target from the tree, moving its children to the end
// of its parent's children. It returns false, leaving the tree
// unchanged, if target is nil, is the root, or is not part of this
// tree.
func (t *Tree) Erase(target *node.Node) bool {
	if !t.contains(target) {
		return false
	}
	return node.Erase(target)
}

// Package node implements the element tree: nodes carrying a tag, a
// text value and an ordered list of children, the pre-order iterator
// over them, and the structural mutations.
package node

import (
	"errors"
	"slices"
	"strings"
)

var (
	ErrInvalidName       = errors.New("name must not start with '/' or contain '<' or '>'")
	ErrIteratorExhausted = errors.New("iterator exhausted")
	ErrNameRequired      = errors.New("name is required")
	ErrNilNode           = errors.New("nil node")
)

// ValidateName reports whether name can be used as a tag: it must be
// non-empty, must not start with '/' and must not contain '<' or '>',
// otherwise the serialized form would not parse back.
func ValidateName(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	if name[0] == '/' || strings.ContainsAny(name, "<>") {
		return ErrInvalidName
	}
	return nil
}

// Node is a single element. A node exclusively owns its children;
// the parent reference is a lookup aid only and is nil for a root
// or for a node that has not been attached yet.
type Node struct {
	tag      string
	value    string
	children []*Node
	parent   *Node
}

// New creates an orphan node. Use AddChild to attach it to a tree.
func New(tag, value string) *Node {
	return &Node{
		tag:   tag,
		value: value,
	}
}

func (n *Node) Tag() string {
	return n.tag
}

// Value returns the text content of the node, or an empty string if
// the element had none.
func (n *Node) Value() string {
	return n.value
}

// SetValue replaces the text content. v is stored as given. Parsing
// the serialized tree trims surrounding whitespace again, and a '<'
// in v will not parse back.
func (n *Node) SetValue(v string) {
	n.value = v
}

func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the child list. Modifying the returned
// slice does not affect the tree.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

func (n *Node) NumChildren() int {
	return len(n.children)
}

// Child returns the i-th child, or nil if i is out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

func (n *Node) FirstChild() *Node {
	return n.Child(0)
}

func (n *Node) LastChild() *Node {
	return n.Child(len(n.children) - 1)
}

// Root follows the parent references up to the top-most node.
func (n *Node) Root() *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Depth returns the number of ancestors of n.
func (n *Node) Depth() int {
	var d int
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// IsAncestorOf reports whether n is a proper ancestor of other.
func (n *Node) IsAncestorOf(other *Node) bool {
	if other == nil {
		return false
	}
	for p := other.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

func (n *Node) indexOf(child *Node) int {
	return slices.Index(n.children, child)
}

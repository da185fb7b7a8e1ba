package node

import (
	"errors"
	"slices"
)

// AddChild appends child as the last child of n. The child must be
// an orphan: a node attached elsewhere, n itself, or one of n's
// ancestors is rejected so the tree never shares or loops. The
// child's tag must pass ValidateName.
//
// Appending a childless node takes constant time regardless of the
// depth of n.
func (n *Node) AddChild(child *Node) error {
	if n == nil || child == nil {
		return ErrNilNode
	}
	if err := ValidateName(child.tag); err != nil {
		return err
	}
	if child.parent != nil {
		return errors.New("node is already attached to a parent")
	}
	if child == n {
		return errors.New("cannot add a node to itself")
	}
	// a node without children cannot be an ancestor of n
	if len(child.children) > 0 && child.IsAncestorOf(n) {
		return errors.New("cannot add a node to its own subtree")
	}

	n.children = append(n.children, child)
	child.parent = n
	return nil
}

// AddNewChild creates a node with the given tag and value, appends it
// to n, and returns it. The value is stored as given; it is not
// trimmed.
func (n *Node) AddNewChild(tag, value string) (*Node, error) {
	child := New(tag, value)
	if err := n.AddChild(child); err != nil {
		return nil, err
	}
	return child, nil
}

// Erase removes target from its parent, moving target's children to
// the end of the parent's child list in their original order. It
// returns false when target is nil or has no parent.
//
// The erased node is left detached and childless. Any iterator
// currently positioned on target will not visit the promoted
// children.
func Erase(target *Node) bool {
	if target == nil {
		return false
	}

	parent := target.parent
	if parent == nil {
		return false
	}

	idx := parent.indexOf(target)
	if idx < 0 {
		// parent/child links disagree; refuse rather than corrupt further
		return false
	}

	for _, child := range target.children {
		child.parent = parent
	}
	parent.children = append(parent.children, target.children...)
	parent.children = slices.Delete(parent.children, idx, idx+1)

	target.children = nil
	target.parent = nil
	return true
}

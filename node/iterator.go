package node

import (
	"iter"

	"github.com/lestrrat-go/xmltree/internal/stack"
)

// Iterator produces the nodes of a subtree in pre-order: a node comes
// before its descendants, and earlier children (with their whole
// subtrees) come before later ones.
//
// Children are expanded lazily when the iterator advances past a node,
// so the only mutation that is safe while an iterator is live is one
// applied to the current node before calling Next.
type Iterator struct {
	cur     *Node
	pending stack.Stack[*Node]
}

// Begin returns an iterator positioned on n. If n is nil the iterator
// is already exhausted.
func Begin(n *Node) *Iterator {
	return &Iterator{cur: n}
}

// Done reports whether the iterator has moved past the last node.
func (it *Iterator) Done() bool {
	return it.cur == nil
}

// Node returns the current node, or ErrIteratorExhausted if the
// iterator is done.
func (it *Iterator) Node() (*Node, error) {
	if it.cur == nil {
		return nil, ErrIteratorExhausted
	}
	return it.cur, nil
}

// Next moves to the next node in pre-order and reports whether there
// is one.
func (it *Iterator) Next() bool {
	if it.cur == nil {
		return false
	}

	// push in reverse so that the leftmost child is popped first
	children := it.cur.children
	for i := len(children) - 1; i >= 0; i-- {
		it.pending.Push(children[i])
	}

	next, ok := it.pending.Pop()
	if !ok {
		it.cur = nil
		return false
	}
	it.cur = next
	return true
}

// All returns the pre-order sequence of the subtree rooted at n.
func All(n *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for it := Begin(n); !it.Done(); it.Next() {
			if !yield(it.cur) {
				return
			}
		}
	}
}

type WalkFunc func(*Node) error

// Walk calls f for every node of the subtree rooted at n in pre-order,
// stopping at the first error.
func Walk(n *Node, f WalkFunc) error {
	if n == nil {
		return ErrNilNode
	}

	for cur := range All(n) {
		if err := f(cur); err != nil {
			return err
		}
	}
	return nil
}

// Find returns the first node in pre-order under start (inclusive)
// whose tag and value both match exactly, or nil.
func Find(start *Node, tag, value string) *Node {
	for cur := range All(start) {
		if cur.tag == tag && cur.value == value {
			return cur
		}
	}
	return nil
}

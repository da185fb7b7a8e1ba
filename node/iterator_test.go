package node_test

import (
	"errors"
	"testing"

	"github.com/lestrrat-go/xmltree/node"
	"github.com/stretchr/testify/require"
)

// builds
//
//	root
//	  a
//	    a1
//	    a2
//	      a2x
//	  b
//	  c
//	    c1
func sampleTree(t *testing.T) *node.Node {
	t.Helper()

	root := node.New("root", "")
	a, err := root.AddNewChild("a", "1")
	require.NoError(t, err)
	_, err = a.AddNewChild("a1", "")
	require.NoError(t, err)
	a2, err := a.AddNewChild("a2", "")
	require.NoError(t, err)
	_, err = a2.AddNewChild("a2x", "dup")
	require.NoError(t, err)
	_, err = root.AddNewChild("b", "dup")
	require.NoError(t, err)
	c, err := root.AddNewChild("c", "")
	require.NoError(t, err)
	_, err = c.AddNewChild("c1", "dup")
	require.NoError(t, err)
	return root
}

func TestIterator(t *testing.T) {
	root := sampleTree(t)
	expected := []string{"root", "a", "a1", "a2", "a2x", "b", "c", "c1"}

	t.Run("PreOrder", func(t *testing.T) {
		var got []string
		for it := node.Begin(root); !it.Done(); it.Next() {
			n, err := it.Node()
			require.NoError(t, err)
			got = append(got, n.Tag())
		}
		require.Equal(t, expected, got)
	})

	t.Run("Restartable", func(t *testing.T) {
		require.Equal(t, tags(root), tags(root))
		require.Equal(t, expected, tags(root))
	})

	t.Run("Subtree", func(t *testing.T) {
		a := root.FirstChild()
		require.Equal(t, []string{"a", "a1", "a2", "a2x"}, tags(a))
	})

	t.Run("AncestorsFirst", func(t *testing.T) {
		seen := map[*node.Node]int{}
		var i int
		for n := range node.All(root) {
			_, dup := seen[n]
			require.False(t, dup, "%s visited once", n.Tag())
			seen[n] = i
			i++
			for p := n.Parent(); p != nil; p = p.Parent() {
				_, ok := seen[p]
				require.True(t, ok, "%s visited after ancestor %s", n.Tag(), p.Tag())
			}
		}
		require.Len(t, seen, 8)
	})

	t.Run("Exhausted", func(t *testing.T) {
		it := node.Begin(node.New("leaf", ""))
		require.False(t, it.Done())
		require.False(t, it.Next(), "single node has no successor")
		require.True(t, it.Done())
		_, err := it.Node()
		require.ErrorIs(t, err, node.ErrIteratorExhausted)
		require.False(t, it.Next(), "Next on exhausted iterator stays exhausted")
	})

	t.Run("Nil", func(t *testing.T) {
		it := node.Begin(nil)
		require.True(t, it.Done())
		_, err := it.Node()
		require.ErrorIs(t, err, node.ErrIteratorExhausted)
	})

	t.Run("EarlyBreak", func(t *testing.T) {
		var got []string
		for n := range node.All(root) {
			if n.Tag() == "b" {
				break
			}
			got = append(got, n.Tag())
		}
		require.Equal(t, []string{"root", "a", "a1", "a2", "a2x"}, got)
	})

	t.Run("AddToCurrentBeforeAdvancing", func(t *testing.T) {
		r := node.New("r", "")
		_, _ = r.AddNewChild("x", "")
		it := node.Begin(r)
		it.Next() // on x
		cur, err := it.Node()
		require.NoError(t, err)
		_, err = cur.AddNewChild("y", "")
		require.NoError(t, err)
		require.True(t, it.Next())
		cur, err = it.Node()
		require.NoError(t, err)
		require.Equal(t, "y", cur.Tag())
	})
}

func TestWalk(t *testing.T) {
	root := sampleTree(t)

	t.Run("Nil", func(t *testing.T) {
		require.ErrorIs(t, node.Walk(nil, func(*node.Node) error { return nil }), node.ErrNilNode)
	})

	t.Run("StopsOnError", func(t *testing.T) {
		stop := errors.New("stop")
		var visited []string
		err := node.Walk(root, func(n *node.Node) error {
			visited = append(visited, n.Tag())
			if n.Tag() == "a2" {
				return stop
			}
			return nil
		})
		require.ErrorIs(t, err, stop)
		require.Equal(t, []string{"root", "a", "a1", "a2"}, visited)
	})
}

func TestFind(t *testing.T) {
	root := sampleTree(t)

	t.Run("FirstInPreOrder", func(t *testing.T) {
		n := node.Find(root, "b", "dup")
		require.NotNil(t, n)
		require.Equal(t, root, n.Parent())
	})

	t.Run("ExactValue", func(t *testing.T) {
		require.Nil(t, node.Find(root, "a", "1 "), "no trimming on lookup")
		require.NotNil(t, node.Find(root, "a", "1"))
	})

	t.Run("Missing", func(t *testing.T) {
		require.Nil(t, node.Find(root, "zzz", ""))
		require.Nil(t, node.Find(nil, "root", ""))
	})

	t.Run("EveryNodeIsFindable", func(t *testing.T) {
		for n := range node.All(root) {
			found := node.Find(root, n.Tag(), n.Value())
			require.NotNil(t, found)
			require.Equal(t, n.Tag(), found.Tag())
			require.Equal(t, n.Value(), found.Value())
		}
	})
}

package node_test

import (
	"testing"
	"time"

	"github.com/lestrrat-go/xmltree/node"
	"github.com/stretchr/testify/require"
)

func tags(n *node.Node) []string {
	var l []string
	for cur := range node.All(n) {
		l = append(l, cur.Tag())
	}
	return l
}

func TestNode(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		n := node.New("note", "hello")
		require.Equal(t, "note", n.Tag())
		require.Equal(t, "hello", n.Value())
		require.Nil(t, n.Parent())
		require.Equal(t, 0, n.NumChildren())
		require.Nil(t, n.FirstChild())
		require.Nil(t, n.LastChild())
	})

	t.Run("TreeOperations", func(t *testing.T) {
		t.Run("AddChild", func(t *testing.T) {
			parent := node.New("parent", "")
			child := node.New("child", "")

			require.NoError(t, parent.AddChild(child))
			require.Equal(t, child, parent.FirstChild())
			require.Equal(t, child, parent.LastChild())
			require.Equal(t, parent, child.Parent())
		})

		t.Run("AddMultipleChildren", func(t *testing.T) {
			parent := node.New("parent", "")
			child1, err := parent.AddNewChild("child1", "")
			require.NoError(t, err)
			child2, err := parent.AddNewChild("child2", "")
			require.NoError(t, err)

			require.Equal(t, child1, parent.FirstChild())
			require.Equal(t, child2, parent.LastChild())
			require.Equal(t, []*node.Node{child1, child2}, parent.Children())
		})

		t.Run("AddAttachedChild", func(t *testing.T) {
			p1 := node.New("p1", "")
			p2 := node.New("p2", "")
			child, err := p1.AddNewChild("child", "")
			require.NoError(t, err)

			require.Error(t, p2.AddChild(child), "a node cannot have two parents")
			require.Equal(t, 0, p2.NumChildren())
			require.Equal(t, p1, child.Parent())
		})

		t.Run("AddCycle", func(t *testing.T) {
			root := node.New("root", "")
			child, err := root.AddNewChild("child", "")
			require.NoError(t, err)

			require.Error(t, root.AddChild(root), "a node cannot be its own child")
			require.Error(t, child.AddChild(root), "an ancestor cannot become a child")
		})

		t.Run("AddEmptyName", func(t *testing.T) {
			root := node.New("root", "")
			_, err := root.AddNewChild("", "value")
			require.ErrorIs(t, err, node.ErrNameRequired)
		})

		t.Run("AddInvalidName", func(t *testing.T) {
			root := node.New("root", "")
			for _, name := range []string{"/x", "a>b", "a<b", "<"} {
				_, err := root.AddNewChild(name, "")
				require.ErrorIs(t, err, node.ErrInvalidName, "%q is not a valid name", name)
			}
			require.Equal(t, 0, root.NumChildren())
		})

		t.Run("AddSubtree", func(t *testing.T) {
			root := node.New("root", "")
			sub := node.New("sub", "")
			leaf, err := sub.AddNewChild("leaf", "")
			require.NoError(t, err)

			require.NoError(t, root.AddChild(sub))
			require.Equal(t, []string{"root", "sub", "leaf"}, tags(root))
			require.Error(t, leaf.AddChild(root), "an ancestor with children cannot become a descendant")
		})

		t.Run("DeepChain", func(t *testing.T) {
			const depth = 100000
			root := node.New("n", "")
			cur := root
			start := time.Now()
			for range depth - 1 {
				next, err := cur.AddNewChild("n", "")
				require.NoError(t, err)
				cur = next
			}
			elapsed := time.Since(start)
			require.Less(t, elapsed, 5*time.Second, "appending to a chain of %d nodes took %s", depth, elapsed)
			require.Equal(t, depth-1, cur.Depth())
		})

		t.Run("ChildrenIsACopy", func(t *testing.T) {
			root := node.New("root", "")
			_, err := root.AddNewChild("a", "")
			require.NoError(t, err)

			l := root.Children()
			l[0] = node.New("b", "")
			require.Equal(t, "a", root.FirstChild().Tag())
		})

		t.Run("Ancestry", func(t *testing.T) {
			root := node.New("root", "")
			child, _ := root.AddNewChild("child", "")
			grandchild, _ := child.AddNewChild("grandchild", "")

			require.Equal(t, root, grandchild.Root())
			require.Equal(t, 2, grandchild.Depth())
			require.Equal(t, 0, root.Depth())
			require.True(t, root.IsAncestorOf(grandchild))
			require.False(t, grandchild.IsAncestorOf(root))
			require.False(t, child.IsAncestorOf(child))
		})
	})
}

func TestErase(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		require.False(t, node.Erase(nil))
	})

	t.Run("Root", func(t *testing.T) {
		root := node.New("root", "")
		_, _ = root.AddNewChild("a", "")
		require.False(t, node.Erase(root), "root cannot be erased")
		require.Equal(t, []string{"root", "a"}, tags(root))
	})

	t.Run("Leaf", func(t *testing.T) {
		root := node.New("a", "x")
		b, _ := root.AddNewChild("b", "y")
		c, _ := root.AddNewChild("c", "z")

		require.True(t, node.Erase(b))
		require.Equal(t, []*node.Node{c}, root.Children())
		require.Nil(t, b.Parent())
		require.Equal(t, []string{"a", "c"}, tags(root))
	})

	t.Run("PromotesChildren", func(t *testing.T) {
		root := node.New("root", "")
		first, _ := root.AddNewChild("first", "")
		middle, _ := root.AddNewChild("middle", "")
		last, _ := root.AddNewChild("last", "")
		g1, _ := middle.AddNewChild("g1", "")
		g2, _ := middle.AddNewChild("g2", "")
		gg, _ := g1.AddNewChild("gg", "")

		require.True(t, node.Erase(middle))

		// promoted children go after the existing siblings, not in
		// the erased node's slot
		require.Equal(t, []*node.Node{first, last, g1, g2}, root.Children())
		require.Equal(t, root, g1.Parent())
		require.Equal(t, root, g2.Parent())
		require.Equal(t, g1, gg.Parent(), "grandchildren stay with their parent")
		require.Nil(t, middle.Parent())
		require.Equal(t, 0, middle.NumChildren())
		require.Equal(t, []string{"root", "first", "last", "g1", "gg", "g2"}, tags(root))
	})

	t.Run("AddThenErase", func(t *testing.T) {
		root := node.New("root", "")
		a, _ := root.AddNewChild("a", "")
		b, _ := root.AddNewChild("b", "")
		before := root.Children()

		c, err := a.AddNewChild("c", "")
		require.NoError(t, err)
		require.True(t, node.Erase(c))
		require.Equal(t, 0, a.NumChildren())
		require.Equal(t, before, root.Children())
		require.Equal(t, []*node.Node{a, b}, root.Children())
	})
}

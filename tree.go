package xmltree

import (
	"github.com/lestrrat-go/xmltree/internal/debug"
	"github.com/lestrrat-go/xmltree/node"
	"github.com/lestrrat-go/xmltree/sax"
	"github.com/pkg/errors"
)

// TreeBuilder is the default sax.ContentHandler. It turns parser
// events into a node tree and hands the root back to the parser at
// EndDocument.
type TreeBuilder struct {
	root *node.Node
	node *node.Node
}

var _ sax.ContentHandler = (*TreeBuilder)(nil)

func NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{}
}

func (t *TreeBuilder) StartDocument(_ sax.Context) error {
	if debug.Enabled {
		debug.Printf("tree.StartDocument")
	}
	t.root = nil
	t.node = nil
	return nil
}

func (t *TreeBuilder) EndDocument(ctxif sax.Context) error {
	if debug.Enabled {
		debug.Printf("tree.EndDocument")
	}

	ctx, ok := ctxif.(*parserCtx)
	if !ok {
		return errors.New("tree builder used outside of a parser")
	}
	ctx.root = t.root
	t.root = nil
	t.node = nil
	return nil
}

func (t *TreeBuilder) StartElement(_ sax.Context, name string) error {
	if debug.Enabled {
		debug.Printf("tree.StartElement: %s", name)
	}

	e := node.New(name, "")
	if t.node == nil {
		if t.root != nil {
			return errors.New("document already has a root element")
		}
		t.root = e
	} else if err := t.node.AddChild(e); err != nil {
		return err
	}

	t.node = e
	return nil
}

func (t *TreeBuilder) Characters(_ sax.Context, data []byte) error {
	if debug.Enabled {
		debug.Printf("tree.Characters: '%s'", data)
	}

	if t.node == nil {
		return errors.New("text content placed in wrong location")
	}
	t.node.SetValue(string(data))
	return nil
}

func (t *TreeBuilder) EndElement(_ sax.Context, name string) error {
	if debug.Enabled {
		debug.Printf("tree.EndElement: %s", name)
	}

	if t.node == nil || t.node.Tag() != name {
		return errors.Errorf("unbalanced end of element '%s'", name)
	}
	t.node = t.node.Parent()
	return nil
}

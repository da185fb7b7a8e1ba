package xmltree

import (
	"context"

	"github.com/lestrrat-go/xmltree/sax"
)

// Parse parses b with a new Parser.
func Parse(ctx context.Context, b []byte, options ...ParseOption) (*Tree, error) {
	p := NewParser(options...)
	return p.Parse(ctx, b)
}

func NewParser(options ...ParseOption) *Parser {
	p := &Parser{
		sax: NewTreeBuilder(),
	}
	for _, opt := range options {
		switch opt.Ident() {
		case identMaxDepth{}:
			p.maxDepth = opt.Value().(int)
		case identSAXHandler{}:
			p.sax = opt.Value().(sax.ContentHandler)
		}
	}
	return p
}

// Parse parses b and returns the resulting tree. Errors caused by the
// input are ErrParseError values, and match ErrMalformedInput with
// errors.Is.
//
// When a custom handler was installed with SetSAXHandler, the tree
// builder does not run and the returned Tree is empty.
//
// A Parser is not safe for concurrent use.
func (p *Parser) Parse(ctx context.Context, b []byte) (*Tree, error) {
	pctx := &parserCtx{}
	if err := pctx.init(p, b); err != nil {
		return nil, err
	}
	defer func() { _ = pctx.release() }()

	if err := pctx.parseDocument(ctx); err != nil {
		return nil, err
	}

	return &Tree{root: pctx.root}, nil
}

func (p *Parser) SetSAXHandler(s sax.ContentHandler) {
	p.sax = s
}

package xmltree

import (
	"github.com/lestrrat-go/option"
	"github.com/lestrrat-go/xmltree/sax"
)

type Option = option.Interface

type identMaxDepth struct{}
type identSAXHandler struct{}

type ParseOption interface {
	Option
	parseOption()
}

type parseOption struct{ Option }

func (*parseOption) parseOption() {}

// WithMaxDepth limits how deeply elements may nest. The root element
// is at depth 1. Zero, the default, means no limit.
func WithMaxDepth(v int) ParseOption {
	return &parseOption{option.New(identMaxDepth{}, v)}
}

// WithSAXHandler replaces the tree builder with a custom handler.
func WithSAXHandler(v sax.ContentHandler) ParseOption {
	return &parseOption{option.New(identSAXHandler{}, v)}
}

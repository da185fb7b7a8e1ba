// Package sax defines the event interface the parser drives while it
// consumes markup. The tree builder in the xmltree package is one
// implementation; SAX2 lets callers plug in plain functions instead.
package sax

import "errors"

// ErrHandlerUnspecified may be returned by handlers that choose to
// report an event they do not handle. The parser treats it like any
// other error.
var ErrHandlerUnspecified = errors.New("handler unspecified")

// Context is the opaque value passed as the first argument of every
// event. It is owned by the parser; handlers must not retain it past
// EndDocument.
type Context interface{}

// ContentHandler receives the structure of the document in the order
// it appears in the input. Characters is reported at most once per
// element, after StartElement and before any child's StartElement,
// and only when the trimmed text is non-empty. The data slice aliases
// the parser input and must be copied if it is kept.
type ContentHandler interface {
	StartDocument(ctx Context) error
	EndDocument(ctx Context) error
	StartElement(ctx Context, name string) error
	Characters(ctx Context, data []byte) error
	EndElement(ctx Context, name string) error
}

type StartDocumentFunc func(ctx Context) error
type EndDocumentFunc func(ctx Context) error
type StartElementFunc func(ctx Context, name string) error
type CharactersFunc func(ctx Context, data []byte) error
type EndElementFunc func(ctx Context, name string) error

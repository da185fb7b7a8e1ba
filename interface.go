// Package xmltree parses a reduced XML dialect into a tree of
// elements, each carrying a tag, a text value and an ordered list of
// children. There are no attributes, namespaces, comments, CDATA
// sections or entity references, and text may only appear before an
// element's first child.
//
// Literal '<' or '>' inside text is not supported and will
// desynchronize the parser.
package xmltree

import (
	"log/slog"

	"github.com/lestrrat-go/xmltree/internal/stack"
	"github.com/lestrrat-go/xmltree/node"
	"github.com/lestrrat-go/xmltree/sax"
	"github.com/pkg/errors"
)

const Version = "v0.1.0"

var (
	// ErrMalformedInput matches every error Parse returns for bad input.
	ErrMalformedInput = errors.New("malformed input")

	ErrGtRequired       = errors.New("'>' was required here")
	ErrInvalidName      = node.ErrInvalidName
	ErrInvalidTarget    = errors.New("target node does not belong to this tree")
	ErrMaxDepthExceeded = errors.New("maximum element depth exceeded")
	ErrNameRequired     = node.ErrNameRequired
	ErrPrematureEOF     = errors.New("end of document reached before element was closed")
	ErrStartTagRequired = errors.New("start tag expected, '<' not found")
	ErrTagMismatch      = errors.New("closing tag does not match opening tag")
	ErrUnexpectedEndTag = errors.New("closing tag found where an element was expected")
	errLtNotFound       = errors.New("'<' not found")
)

// ErrParseError describes where in the input parsing failed.
type ErrParseError struct {
	Column     int
	Err        error
	Line       string
	LineNumber int
	Location   int
	// Path lists the elements that were open when the error occurred,
	// outermost first.
	Path []string
}

type Parser struct {
	sax      sax.ContentHandler
	maxDepth int
}

type parserCtx struct {
	cursor   *cursor
	sax      sax.ContentHandler
	maxDepth int
	openTags stack.Stack[string]
	root     *node.Node
	tlog     *slog.Logger
}

// Tree owns a single root element, or nothing before the first
// successful Parse.
type Tree struct {
	root *node.Node
}

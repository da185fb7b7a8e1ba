package xmltree

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"github.com/lestrrat-go/xmltree/internal/debug"
	"github.com/pkg/errors"
)

func (ctx *parserCtx) init(p *Parser, b []byte) error {
	if p == nil {
		return errors.New("nil parser")
	}
	ctx.cursor = newCursor(b)
	ctx.sax = p.sax
	ctx.maxDepth = p.maxDepth
	ctx.openTags.Reset()
	ctx.root = nil
	return nil
}

func (ctx *parserCtx) release() error {
	ctx.sax = nil
	ctx.cursor = nil
	ctx.tlog = nil
	return nil
}

func (ctx *parserCtx) error(err error) error {
	// If it's wrapped, just return as is
	var perr ErrParseError
	if errors.As(err, &perr) {
		return err
	}

	lineno, column, line := ctx.cursor.Location()
	return ErrParseError{
		Column:     column,
		Err:        err,
		Line:       line,
		LineNumber: lineno,
		Location:   int(ctx.cursor.Offset()),
		Path:       append([]string(nil), ctx.openTags.Items()...),
	}
}

// isSpace matches the C locale isspace() set.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func (ctx *parserCtx) parseDocument(gctx context.Context) error {
	ctx.tlog = getTraceLogFromContext(gctx)
	ctx.tlog.Debug("parse document", slog.Int("size", len(ctx.cursor.buf)))

	if err := ctx.sax.StartDocument(ctx); err != nil {
		return ctx.error(err)
	}

	if err := ctx.parseElement(); err != nil {
		ctx.tlog.Debug("parse failed", slog.String("error", err.Error()))
		if debug.Enabled {
			debug.Dump(err)
		}
		return err
	}

	// anything after the root element is ignored
	if err := ctx.sax.EndDocument(ctx); err != nil {
		return ctx.error(err)
	}
	return nil
}

// nextTag scans to the next '<' and the '>' that follows it, returns
// the token in between and leaves the cursor just past the '>'.
func (ctx *parserCtx) nextTag() (string, error) {
	lt := ctx.cursor.IndexByte('<')
	if lt == noPosition {
		ctx.cursor.Seek(position(len(ctx.cursor.buf)))
		return "", errLtNotFound
	}

	gt := ctx.cursor.indexByteFrom(lt+1, '>')
	if gt == noPosition {
		ctx.cursor.Seek(lt)
		return "", ErrGtRequired
	}
	// "<a<b>": the first tag was never closed
	if next := ctx.cursor.indexByteFrom(lt+1, '<'); next != noPosition && next < gt {
		ctx.cursor.Seek(next)
		return "", ErrGtRequired
	}

	tok := string(ctx.cursor.Slice(lt+1, gt))
	ctx.cursor.Seek(gt + 1)
	return tok, nil
}

// parseElement consumes one element, its text and all of its
// children, up to and including its closing tag.
func (ctx *parserCtx) parseElement() error {
	start := ctx.cursor.Offset()
	tag, err := ctx.nextTag()
	if err != nil {
		if errors.Is(err, errLtNotFound) {
			// only the root can hit this: children are only parsed
			// after a '<' has been seen
			return ctx.error(ErrStartTagRequired)
		}
		return ctx.error(err)
	}

	if strings.HasPrefix(tag, "/") {
		ctx.cursor.Seek(start)
		return ctx.error(errors.Wrapf(ErrUnexpectedEndTag, "found '<%s>'", tag))
	}

	if tag == "" {
		ctx.cursor.Seek(start)
		return ctx.error(ErrNameRequired)
	}

	if ctx.maxDepth > 0 && ctx.openTags.Len() >= ctx.maxDepth {
		ctx.cursor.Seek(start)
		return ctx.error(errors.Wrapf(ErrMaxDepthExceeded, "limit is %d", ctx.maxDepth))
	}

	if debug.Enabled {
		debug.Printf("START element '%s' (offset = %d)", tag, start)
		defer debug.Printf("END element '%s'", tag)
	}

	ctx.openTags.Push(tag)
	if err := ctx.sax.StartElement(ctx, tag); err != nil {
		return ctx.error(err)
	}

	// text runs up to the next tag, whichever kind it is
	lt := ctx.cursor.IndexByte('<')
	if lt == noPosition {
		ctx.cursor.Seek(position(len(ctx.cursor.buf)))
		return ctx.error(ErrPrematureEOF)
	}
	value := bytes.TrimFunc(ctx.cursor.Slice(ctx.cursor.Offset(), lt), isSpace)
	ctx.cursor.Seek(lt)

	if len(value) > 0 {
		if err := ctx.sax.Characters(ctx, value); err != nil {
			return ctx.error(err)
		}
	}

	closing := "/" + tag
	for {
		mark := ctx.cursor.Offset()
		next, err := ctx.nextTag()
		if err != nil {
			if errors.Is(err, errLtNotFound) {
				return ctx.error(ErrPrematureEOF)
			}
			return ctx.error(err)
		}

		if next == closing {
			break
		}

		// not ours: hand the tag back, either as an error or to the
		// child that it opens
		ctx.cursor.Seek(mark)
		if strings.HasPrefix(next, "/") {
			return ctx.error(errors.Wrapf(ErrTagMismatch, "expected '</%s>', found '<%s>'", tag, next))
		}

		if err := ctx.parseElement(); err != nil {
			return err
		}
	}

	ctx.tlog.Debug("element", slog.String("tag", tag), slog.Int("depth", ctx.openTags.Len()))

	if err := ctx.sax.EndElement(ctx, tag); err != nil {
		return ctx.error(err)
	}
	ctx.openTags.Pop()
	return nil
}

package xmltree

import (
	"bytes"
	"unicode/utf8"
)

// position is a byte offset into the parser input.
type position int

const noPosition position = -1

// cursor scans the input left to right. The parser saves a position
// before peeking at a tag and seeks back to it when the tag belongs to
// an enclosing element.
type cursor struct {
	buf []byte
	pos position
}

func newCursor(b []byte) *cursor {
	return &cursor{buf: b}
}

func (c *cursor) Offset() position {
	return c.pos
}

func (c *cursor) Seek(p position) {
	switch {
	case p < 0:
		p = 0
	case int(p) > len(c.buf):
		p = position(len(c.buf))
	}
	c.pos = p
}

// IndexByte returns the position of the next occurrence of b at or
// after the current position, or noPosition.
func (c *cursor) IndexByte(b byte) position {
	return c.indexByteFrom(c.pos, b)
}

func (c *cursor) indexByteFrom(from position, b byte) position {
	if int(from) >= len(c.buf) {
		return noPosition
	}
	i := bytes.IndexByte(c.buf[from:], b)
	if i < 0 {
		return noPosition
	}
	return from + position(i)
}

// Slice returns the input between two positions.
func (c *cursor) Slice(from, to position) []byte {
	return c.buf[from:to]
}

// Location reports the 1-based line number and rune column of the
// current position, along with the text of that line.
func (c *cursor) Location() (lineno int, column int, line string) {
	pos := int(c.pos)
	before := c.buf[:pos]

	lineno = bytes.Count(before, []byte{'\n'}) + 1
	start := bytes.LastIndexByte(before, '\n') + 1
	end := bytes.IndexByte(c.buf[pos:], '\n')
	if end < 0 {
		end = len(c.buf)
	} else {
		end += pos
	}

	column = utf8.RuneCount(c.buf[start:pos]) + 1
	line = string(bytes.TrimRight(c.buf[start:end], "\r"))
	return lineno, column, line
}

// Package xmlfile moves markup between files and xmltree.Tree values.
// The parser itself never touches the file system; this package reads
// the bytes, decodes them to UTF-8, and writes serialized trees back.
package xmlfile

import (
	"context"
	"log/slog"
	"os"

	"github.com/lestrrat-go/option"
	"github.com/lestrrat-go/xmltree"
	"github.com/lestrrat-go/xmltree/encoding"
	"github.com/pkg/errors"
)

type Option = option.Interface

type identEncoding struct{}
type identParseOptions struct{}
type identPerm struct{}

type ReadOption interface {
	Option
	readOption()
}

type readOption struct{ Option }

func (*readOption) readOption() {}

type WriteOption interface {
	Option
	writeOption()
}

type writeOption struct{ Option }

func (*writeOption) writeOption() {}

// WithEncoding names the charset of the input. Without it, a byte
// order mark is honoured and input is otherwise taken as UTF-8.
func WithEncoding(v string) ReadOption {
	return &readOption{option.New(identEncoding{}, v)}
}

// WithParseOptions passes options through to the parser used by Load.
func WithParseOptions(v ...xmltree.ParseOption) ReadOption {
	return &readOption{option.New(identParseOptions{}, v)}
}

// WithPerm sets the permission bits used when a file is created.
// The default is 0644.
func WithPerm(v os.FileMode) WriteOption {
	return &writeOption{option.New(identPerm{}, v)}
}

// ReadAll reads the file at path and returns its contents as UTF-8.
// File system errors keep their identity, so errors.Is(err,
// fs.ErrNotExist) works on the result.
func ReadAll(path string, options ...ReadOption) ([]byte, error) {
	var charset string
	for _, opt := range options {
		switch opt.Ident() {
		case identEncoding{}:
			charset = opt.Value().(string)
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, `failed to read %s`, path)
	}

	decoded, err := encoding.Decode(b, charset)
	if err != nil {
		return nil, errors.Wrapf(err, `failed to decode %s`, path)
	}
	return decoded, nil
}

// WriteAll writes data to path, creating or truncating the file.
func WriteAll(path string, data []byte, options ...WriteOption) error {
	perm := os.FileMode(0644)
	for _, opt := range options {
		switch opt.Ident() {
		case identPerm{}:
			perm = opt.Value().(os.FileMode)
		}
	}

	if err := os.WriteFile(path, data, perm); err != nil {
		return errors.Wrapf(err, `failed to write %s`, path)
	}
	return nil
}

// Load reads and parses the file at path.
func Load(ctx context.Context, path string, options ...ReadOption) (*xmltree.Tree, error) {
	var parseOptions []xmltree.ParseOption
	for _, opt := range options {
		switch opt.Ident() {
		case identParseOptions{}:
			parseOptions = append(parseOptions, opt.Value().([]xmltree.ParseOption)...)
		}
	}

	b, err := ReadAll(path, options...)
	if err != nil {
		return nil, err
	}

	xmltree.TraceEvent(ctx, "loaded file", slog.String("path", path), slog.Int("size", len(b)))

	tree, err := xmltree.Parse(ctx, b, parseOptions...)
	if err != nil {
		return nil, errors.Wrapf(err, `failed to parse %s`, path)
	}
	return tree, nil
}

// Save serializes tree and writes it to path.
func Save(path string, tree *xmltree.Tree, options ...WriteOption) error {
	if tree == nil {
		return errors.New("nil tree")
	}
	return WriteAll(path, []byte(tree.String()), options...)
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/xmltree"
	"github.com/lestrrat-go/xmltree/encoding"
	"github.com/lestrrat-go/xmltree/s11n"
	"github.com/lestrrat-go/xmltree/xmlfile"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

type cmdopts struct {
	Find     string `long:"find" value-name:"TAG=VALUE" description:"select the first element with this tag and value"`
	Add      string `long:"add" value-name:"TAG=VALUE" description:"append a new element under the selected element (default: root)"`
	Erase    bool   `long:"erase" description:"erase the selected element, promoting its children"`
	Outline  bool   `long:"outline" description:"print an outline instead of markup"`
	Diff     bool   `long:"diff" description:"print how the output differs from the input"`
	Color    bool   `long:"color" description:"colorize --diff output"`
	Output   string `short:"o" long:"output" value-name:"FILE" description:"write the result to FILE instead of stdout"`
	Encoding string `long:"encoding" value-name:"NAME" description:"charset of the input"`
	MaxDepth int    `long:"max-depth" value-name:"N" description:"reject documents nested deeper than N"`
	Trace    bool   `long:"trace" description:"log parser progress to stderr"`
	Version  bool   `long:"version" description:"display the version of the library"`
}

func main() {
	stdinIsTerminal := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	os.Exit(run(os.Args[1:], os.Stdin, stdinIsTerminal, os.Stdout, os.Stderr))
}

func showUsage(out io.Writer) {
	fmt.Fprintf(out, `Usage : xmltree-lint [options] XMLfiles ...
	Parse the XML files and output the result of the parsing
	--find TAG=VALUE : select an element
	--add TAG=VALUE  : append a child to the selected element (or the root)
	--erase          : erase the selected element
	--outline        : print an outline of the tree
	--diff           : show the changes made to the input
	--version        : display the version of the XML library used
`)
}

// source is one document to process: a named file, or stdin.
type source struct {
	name string
	r    io.Reader
}

func run(args []string, stdin io.Reader, stdinIsTerminal bool, stdout, stderr io.Writer) int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, args)
	if err != nil {
		showUsage(stderr)
		return 1
	}

	if opts.Version {
		fmt.Fprintf(stdout, "xmltree-lint: using xmltree version %s\n", xmltree.Version)
		return 0
	}

	var sources []source
	switch {
	case len(args) > 0: // filename present
		for _, f := range args {
			sources = append(sources, source{name: f})
		}
	case !stdinIsTerminal:
		sources = append(sources, source{name: "-", r: stdin})
	default:
		showUsage(stderr)
		return 1
	}

	if opts.Output != "" && len(sources) > 1 {
		fmt.Fprintf(stderr, "--output accepts a single input\n")
		return 1
	}

	ctx := context.Background()
	if opts.Trace {
		tlog := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		ctx = xmltree.WithTraceLogger(ctx, tlog)
	}

	for _, src := range sources {
		if err := process(ctx, &opts, src, stdout); err != nil {
			xmltree.TraceError(ctx, err, "lint failed", slog.String("source", src.name))
			fmt.Fprintf(stderr, "%s\n", err)
			return 1
		}
	}
	return 0
}

func splitPair(s string) (string, string, error) {
	tag, value, _ := strings.Cut(s, "=")
	if tag == "" {
		return "", "", errors.Errorf("invalid element selector %q: expected TAG=VALUE", s)
	}
	return tag, value, nil
}

func readSource(src source, charset string) ([]byte, error) {
	if src.r == nil {
		var options []xmlfile.ReadOption
		if charset != "" {
			options = append(options, xmlfile.WithEncoding(charset))
		}
		return xmlfile.ReadAll(src.name, options...)
	}

	b, err := io.ReadAll(src.r)
	if err != nil {
		return nil, errors.Wrap(err, `failed to read stdin`)
	}
	return encoding.Decode(b, charset)
}

func process(ctx context.Context, opts *cmdopts, src source, stdout io.Writer) error {
	buf, err := readSource(src, opts.Encoding)
	if err != nil {
		return err
	}

	var parseOptions []xmltree.ParseOption
	if opts.MaxDepth > 0 {
		parseOptions = append(parseOptions, xmltree.WithMaxDepth(opts.MaxDepth))
	}

	tree, err := xmltree.Parse(ctx, buf, parseOptions...)
	if err != nil {
		return errors.Wrapf(err, `failed to parse %s`, src.name)
	}

	target := tree.Root()
	if opts.Find != "" {
		tag, value, err := splitPair(opts.Find)
		if err != nil {
			return err
		}
		if target = tree.Find(tag, value); target == nil {
			return errors.Errorf("%s: no element <%s> with value %q", src.name, tag, value)
		}
	}

	if opts.Add != "" {
		tag, value, err := splitPair(opts.Add)
		if err != nil {
			return err
		}
		if _, err := tree.Add(tag, value, target); err != nil {
			return errors.Wrapf(err, `failed to add <%s>`, tag)
		}
	}

	if opts.Erase {
		if opts.Find == "" {
			return errors.New("--erase requires --find")
		}
		if !tree.Erase(target) {
			return errors.Errorf("%s: cannot erase the root element", src.name)
		}
	}

	if opts.Diff {
		return writeDiff(stdout, string(buf), tree.String(), opts.Color)
	}

	var out string
	if opts.Outline {
		out = s11n.Outline(tree.Root())
	} else {
		out = tree.String()
	}

	if opts.Output != "" {
		return xmlfile.WriteAll(opts.Output, []byte(out))
	}
	_, err = io.WriteString(stdout, out)
	return err
}

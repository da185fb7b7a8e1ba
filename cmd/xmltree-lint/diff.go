package main

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// writeDiff prints a line-oriented diff between the input and the
// normalized output: removed lines are prefixed with "-", added lines
// with "+" and unchanged lines with a space.
func writeDiff(out io.Writer, before, after string, colorize bool) error {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0

	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	if colorize {
		del.EnableColor()
		ins.EnableColor()
	} else {
		del.DisableColor()
		ins.DisableColor()
	}

	var sb strings.Builder
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				sb.WriteString(del.Sprint("-" + line))
			case diffmatchpatch.DiffInsert:
				sb.WriteString(ins.Sprint("+" + line))
			default:
				sb.WriteString(" " + line)
			}
			sb.WriteByte('\n')
		}
	}
	_, err := io.WriteString(out, sb.String())
	return err
}

// splitLines splits s on newlines, dropping the empty string after a
// trailing newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

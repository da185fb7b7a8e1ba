//go:build debug

package debug

import (
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
)

const Enabled = true

var logger = log.New(os.Stderr, "|xmltree| ", 0)

// nodes point back at their parents, so keep dumps shallow and
// free of pointer addresses to make them diffable between runs.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	MaxDepth:                4,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Printf prints debug messages. Only available if compiled with "debug" tag
func Printf(f string, args ...any) {
	logger.Printf(f, args...)
}

// Dump writes a go-spew rendition of v to stderr.
func Dump(v ...any) {
	dumper.Fdump(os.Stderr, v...)
}

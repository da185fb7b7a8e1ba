package xmltree

import (
	"fmt"
	"strings"
)

func (e ErrParseError) Error() string {
	var path string
	if len(e.Path) > 0 {
		path = " (in " + strings.Join(e.Path, " > ") + ")"
	}
	return fmt.Sprintf(
		"%s at line %d, column %d%s\n -> '%s' <-- around here",
		e.Err,
		e.LineNumber,
		e.Column,
		path,
		e.Line,
	)
}

func (e ErrParseError) Unwrap() error {
	return e.Err
}

// Is makes every parse error match ErrMalformedInput, in addition to
// the specific cause reachable through Unwrap.
func (e ErrParseError) Is(target error) bool {
	return target == ErrMalformedInput
}

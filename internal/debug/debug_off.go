//go:build !debug

package debug

// Enabled reports whether the package was compiled with the `debug` tag.
const Enabled = false

// Printf is a no-op unless compiled with the `debug` tag
func Printf(f string, args ...any) {}

// Dump is a no-op unless compiled with the `debug` tag
func Dump(v ...any) {}

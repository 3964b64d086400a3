// Package pathlog provides the package-level logging sink used by the
// CLI: a thin Logf wrapper so callers don't have to
// carry a *log.Logger through every function signature.
package pathlog

import (
	"fmt"
	"io"
	"os"
)

var out io.Writer = os.Stderr

// SetOutput redirects subsequent Logf calls to w.
func SetOutput(w io.Writer) {
	out = w
}

// Logf writes a formatted, newline-terminated log line.
func Logf(format string, args ...interface{}) {
	fmt.Fprintf(out, format+"\n", args...)
}

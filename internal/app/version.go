package app

import (
	"fmt"
	"io"
)

// Version is the application version, overridable at build time with
// -ldflags "-X github.com/pboivin/numsep/internal/app.Version=v1.2.3".
var Version = "dev"

// HasVersionFlag reports whether the raw argument list requests the version.
// Version handling happens before flag parsing so it works regardless of any
// other flag's validity.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "numsep %s\n", Version)
}

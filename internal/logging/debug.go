package logging

import (
	"fmt"
	"io"
	"os"
)

// EnvVar enables debug output when set to any non-empty value.
const EnvVar = "IDID_DEBUG"

// Output receives debug lines. Stdout is left to command output.
var Output io.Writer = os.Stderr

// DebugEnabled returns true if debug mode is enabled via the IDID_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv(EnvVar) != ""
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintf(Output, "debug: "+format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintln(Output, append([]interface{}{"debug:"}, args...)...)
	}
}

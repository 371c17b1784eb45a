package util

import "fmt"

// Assert panics with a formatted message if the condition is false.
// Used for contract violations that indicate a programming error, never
// for recoverable failures.
func Assert(condition bool, format string, args ...any) {
	if !condition {
		panic(fmt.Sprintf("assertion failed: "+format, args...))
	}
}

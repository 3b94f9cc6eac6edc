// Package exitcodes defines the exit codes used by gospec.
package exitcodes

// Exit code constants used by gospec:
//
// * Success (0): every executed example passed or is pending
// * Failure (1): the run halted on a failed or errored example
// * RuntimeErr (2): authoring errors in the declarations, bad flags or configuration
const (
	Success    = 0
	Failure    = 1
	RuntimeErr = 2
)

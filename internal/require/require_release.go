//go:build chunkedseq_release

package require

// True is a no-op in release builds: violating a precondition is undefined
// behavior, not a checked error, per spec.md §7.
func True(cond bool, msg string) {}

// False is a no-op in release builds.
func False(cond bool, msg string) {}

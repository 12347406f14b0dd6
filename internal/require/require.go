// Package require implements the precondition-checking discipline spec.md
// §7 calls for: preconditions are asserted in debug builds and compiled
// away (see require_release.go) in release builds, where violating them is
// undefined behavior rather than a recoverable error.
package require

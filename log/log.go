// Package log re-exports go-ethereum's structured logger so every other
// package in this module logs through one ambient, level-aware sink
// instead of each picking its own, matching the teacher's own
// "github.com/holisticode/swarm/log" usage (bmt/bmt.go, metrics/flags.go).
package log

import gethlog "github.com/ethereum/go-ethereum/log"

// Trace logs at the most verbose level.
func Trace(msg string, ctx ...interface{}) { gethlog.Trace(msg, ctx...) }

// Debug logs diagnostic detail not needed in normal operation.
func Debug(msg string, ctx ...interface{}) { gethlog.Debug(msg, ctx...) }

// Info logs normal operational messages.
func Info(msg string, ctx ...interface{}) { gethlog.Info(msg, ctx...) }

// Warn logs a condition worth attention but not an error.
func Warn(msg string, ctx ...interface{}) { gethlog.Warn(msg, ctx...) }

// Error logs a failure.
func Error(msg string, ctx ...interface{}) { gethlog.Error(msg, ctx...) }

package sway

import (
	"fmt"
	"os"
)

// debugSink receives trace lines when set. nil means tracing is off and the
// hot path pays a single nil check.
var debugSink func(format string, args ...any)

// SetDebugSink installs fn to receive a trace line for every action apply,
// completion, stop, and boundary event. Pass nil to disable. [Clear] resets
// the sink as part of engine teardown.
func SetDebugSink(fn func(format string, args ...any)) {
	debugSink = fn
}

// StderrDebugSink is a ready-made sink writing trace lines to stderr.
func StderrDebugSink(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func debugf(format string, args ...any) {
	if debugSink != nil {
		debugSink("[sway] "+format, args...)
	}
}

// Package logging defines the Logger used by lvmine library packages.
//
// Libraries never write to stdout/stderr on their own: they log through an
// injected Logger, defaulting to Discard. The CLI installs Std when the user
// asks for verbose output.
package logging

import (
	"fmt"
	"io"
	"log"
)

// Logger is the minimal logging surface consumed by lvmine packages.
type Logger interface {
	// Infof records a high-level progress message.
	Infof(format string, args ...interface{})
	// Debugf records detailed tracing (per recursion level, per tree).
	Debugf(format string, args ...interface{})
}

// Discard is a Logger that drops every message.
var Discard Logger = discard{}

type discard struct{}

func (discard) Infof(string, ...interface{})  {}
func (discard) Debugf(string, ...interface{}) {}

// StdLogger writes through a standard library *log.Logger.
// Debug output is emitted only when Verbose is set.
type StdLogger struct {
	l       *log.Logger
	Verbose bool
}

// Std returns a StdLogger writing to w with a "lvmine: " prefix.
func Std(w io.Writer, verbose bool) *StdLogger {
	return &StdLogger{l: log.New(w, "lvmine: ", log.LstdFlags), Verbose: verbose}
}

// Infof implements Logger.
func (s *StdLogger) Infof(format string, args ...interface{}) {
	_ = s.l.Output(2, fmt.Sprintf(format, args...))
}

// Debugf implements Logger.
func (s *StdLogger) Debugf(format string, args ...interface{}) {
	if !s.Verbose {
		return
	}
	_ = s.l.Output(2, "[debug] "+fmt.Sprintf(format, args...))
}

// OrDiscard returns l, or Discard when l is nil.
func OrDiscard(l Logger) Logger {
	if l == nil {
		return Discard
	}
	return l
}

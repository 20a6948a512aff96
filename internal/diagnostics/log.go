// Copyright 2026 The Go-Implicants Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diagnostics provides a severity-leveled message log for the
// outer collaborators of the engine (the exprlang compiler and the CLI),
// which sit outside the engine's own contract-violation-panics error
// design. Every Entry has a severity, and a Log is a flat slice of
// entries that a caller inspects wholesale before deciding whether to
// proceed.
package diagnostics

import "bytes"

// Severity classifies a log Entry. Unlike the engine's panics (reserved
// for contract violations), these are all recoverable conditions a caller
// may choose to act on or ignore.
type Severity int

const (
	// Info carries a purely informational message.
	Info Severity = iota
	// Warning flags something suspicious that did not prevent completion.
	Warning
	// Error flags something that prevented the requested operation from
	// completing as asked.
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Entry is a single message in a Log.
type Entry struct {
	Severity Severity
	Message  string
}

func (e Entry) String() string {
	switch e.Severity {
	case Info:
		return e.Message
	default:
		return e.Severity.String() + ": " + e.Message
	}
}

// Log accumulates diagnostic entries produced while compiling an
// expression or running a CLI command.
type Log struct {
	Entries []Entry
}

// NewLog returns a new, empty Log.
func NewLog() *Log {
	return &Log{}
}

// Add appends a message with the given severity.
func (l *Log) Add(severity Severity, message string) {
	l.Entries = append(l.Entries, Entry{Severity: severity, Message: message})
}

// Info appends an informational message.
func (l *Log) Info(message string) { l.Add(Info, message) }

// Warning appends a warning message.
func (l *Log) Warning(message string) { l.Add(Warning, message) }

// Error appends an error message.
func (l *Log) Error(message string) { l.Add(Error, message) }

// ContainsErrors reports whether the log contains at least one Error entry.
func (l *Log) ContainsErrors() bool {
	for _, e := range l.Entries {
		if e.Severity >= Error {
			return true
		}
	}
	return false
}

func (l *Log) String() string {
	var buf bytes.Buffer
	for _, e := range l.Entries {
		buf.WriteString(e.String())
		buf.WriteString("\n")
	}
	return buf.String()
}

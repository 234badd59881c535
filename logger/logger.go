// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logger defines the logging interface of the Earth orientation and
// time scale packages. The calendar itself never logs.
package logger

// Logger handles structured log records at different severity levels. args
// are alternating keys and values, as in [log/slog].
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NoOpLogger discards all records. It is used when no Logger is configured.
type NoOpLogger struct{}

var _ Logger = NoOpLogger{}

func (NoOpLogger) Trace(string, ...any) {}
func (NoOpLogger) Debug(string, ...any) {}
func (NoOpLogger) Info(string, ...any)  {}
func (NoOpLogger) Warn(string, ...any)  {}
func (NoOpLogger) Error(string, ...any) {}

// OrNoOp returns l, or a NoOpLogger if l is nil.
func OrNoOp(l Logger) Logger {
	if l == nil {
		return NoOpLogger{}
	}
	return l
}

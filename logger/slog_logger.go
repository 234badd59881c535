// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// SlogLogger is derived from the slog adapter of github.com/reugn/go-quartz
// (logger/slog_logger.go, MIT License).

package logger

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// SlogLogger implements Logger on top of a [slog.Logger]. Records at
// LevelTrace are passed as slog.Level(-8); use ReplaceLevel to name them.
type SlogLogger struct {
	ctx    context.Context
	logger *slog.Logger
}

var _ Logger = (*SlogLogger)(nil)

// NewSlogLogger returns a SlogLogger writing to logger. It panics if logger is
// nil. A nil ctx is replaced by context.Background.
func NewSlogLogger(ctx context.Context, logger *slog.Logger) *SlogLogger {
	if logger == nil {
		panic("nil logger")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return &SlogLogger{ctx: ctx, logger: logger}
}

func (l *SlogLogger) Trace(msg string, args ...any) { l.log(LevelTrace.Slog(), msg, args...) }
func (l *SlogLogger) Debug(msg string, args ...any) { l.log(slog.LevelDebug, msg, args...) }
func (l *SlogLogger) Info(msg string, args ...any)  { l.log(slog.LevelInfo, msg, args...) }
func (l *SlogLogger) Warn(msg string, args ...any)  { l.log(slog.LevelWarn, msg, args...) }
func (l *SlogLogger) Error(msg string, args ...any) { l.log(slog.LevelError, msg, args...) }

// log records the program counter of the caller of the exported method.
func (l *SlogLogger) log(level slog.Level, msg string, args ...any) {
	if !l.logger.Enabled(l.ctx, level) {
		return
	}
	// skip runtime.Callers, log and the exported method
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = l.logger.Handler().Handle(l.ctx, r)
}

// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// A Level is the severity of a log record. Levels share their values with
// [slog.Level], with the addition of LevelTrace and LevelOff.
type Level int

// Log levels.
const (
	LevelTrace Level = -8
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
	LevelOff   Level = 12
)

var levelNames = map[Level]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelOff:   "OFF",
}

// String returns the name of l, like "WARN".
func (l Level) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Slog returns l as a [slog.Level].
func (l Level) Slog() slog.Level {
	return slog.Level(l)
}

// ParseLevel parses the name of a level, ignoring case.
func ParseLevel(s string) (Level, error) {
	for l, name := range levelNames {
		if strings.EqualFold(s, name) {
			return l, nil
		}
	}
	if strings.EqualFold(s, "warning") {
		return LevelWarn, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// ReplaceLevel is a ReplaceAttr function for [slog.HandlerOptions], which
// names the levels not known to slog.
func ReplaceLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if l, ok := a.Value.Any().(slog.Level); ok && l < slog.LevelDebug {
		a.Value = slog.StringValue(LevelTrace.String())
	}
	return a
}

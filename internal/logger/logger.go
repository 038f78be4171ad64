// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and context
// helpers used by the trade-journal binaries.
//
// The Logger type embeds zerolog.Logger, so Debug, Info, Warn, Error and the
// rest of the zerolog API are available directly on *Logger. Request-scoped
// loggers are attached by the HTTP trace middleware and fetched back with
// FromRequest or FromContext.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds the JSON logger used by the journal server.
//
// Every entry carries a "role" field, a timestamp and a "func" field holding
// the fully-qualified name of the calling function. Output goes to stdout.
// The global level is left untouched; use SetLevel to change it.
func NewLogger(role string) *Logger {
	useFuncCaller()

	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewConsoleLogger builds a human-readable logger for command-line tools.
// If w is nil, os.Stderr is used so that command output on stdout stays clean.
func NewConsoleLogger(role string, w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// SetLevel sets the global zerolog level from its name ("debug", "info", ...).
// An empty name selects info.
func SetLevel(level string) error {
	level = strings.TrimSpace(level)
	if level == "" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		return nil
	}

	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("error parsing log level %q: %w", level, err)
	}

	zerolog.SetGlobalLevel(parsed)
	return nil
}

// Nop returns a *Logger that discards all output. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of the receiver that can be enriched with
// extra fields without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context by the trace
// middleware, or the zerolog default logger if none is attached.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx by zerolog's WithContext.
// It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

func useFuncCaller() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		if fn := runtime.FuncForPC(pc); fn != nil {
			return fn.Name()
		}
		return fmt.Sprintf("%s:%d", file, line)
	}
	zerolog.CallerFieldName = "func"
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package radial

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

// loggerSinks are the sub-package setters registered via RegisterLoggerSink.
var (
	sinksMu     sync.RWMutex
	loggerSinks []func(*slog.Logger)
)

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for radial and all its sub-packages.
// By default, radial produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by radial:
//   - [slog.LevelDebug]: per-frame diagnostics (acquired image, selection changes)
//   - [slog.LevelInfo]: lifecycle events (GPU selected, swap chain built, teardown)
//   - [slog.LevelWarn]: degradations (opaque compositing, missing validation layer)
//
// Example:
//
//	radial.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	sinksMu.RLock()
	sinks := loggerSinks
	sinksMu.RUnlock()
	for _, set := range sinks {
		set(l)
	}
}

// Logger returns the current logger used by radial.
// Presenter packages call this to share the same logger configuration.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// RegisterLoggerSink registers a setter that receives the current logger
// immediately and every later logger passed to SetLogger. Presenter packages
// register their package-level setter from init.
func RegisterLoggerSink(set func(*slog.Logger)) {
	if set == nil {
		return
	}
	sinksMu.Lock()
	loggerSinks = append(loggerSinks, set)
	sinksMu.Unlock()
	set(Logger())
}

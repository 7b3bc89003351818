// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package tinyandroid

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger    *zap.Logger
	loggerMu  sync.RWMutex
	nopLogger = zap.NewNop()
)

// Logger returns the package logger. It is a no-op logger until SetLogger is called.
func Logger() *zap.Logger {
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()
	if l == nil {
		return nopLogger
	}
	return l
}

// SetLogger configures the package logger. Options.Logger takes precedence
// for the objects created with it.
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

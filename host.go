// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package tinyandroid

import (
	"fmt"

	"go.uber.org/zap"
)

// Host exposes the entry points the Android activity glue exports to native
// code: get_activity and get_javavm.
type Host struct {
	opts *Options
	lib  symbolTable

	getActivity func() uintptr
	getJavaVM   func() uintptr
	newVM       func(javaVM uintptr) VM
}

// OpenHost resolves the host entry points from opts.HostLibrary, which
// defaults to the platform library.
func OpenHost(opts *Options) (*Host, error) {
	s := resolveOpts(opts)
	lib, err := openSymbolTable(s.hostLibrary, rtldNow|rtldLocal)
	if err != nil {
		return nil, fmt.Errorf("host: %w", err)
	}
	h, err := newHost(lib, opts)
	if err != nil {
		_ = lib.close()
		return nil, err
	}
	s.logger.Debug("host entry points resolved", zap.String("library", s.hostLibrary))
	return h, nil
}

func newHost(lib symbolTable, opts *Options) (*Host, error) {
	h := &Host{opts: opts, lib: lib, newVM: NewVM}
	for _, reg := range []struct {
		fptr interface{}
		name string
	}{
		{&h.getActivity, "get_activity"},
		{&h.getJavaVM, "get_javavm"},
	} {
		if err := lib.bind(reg.fptr, reg.name); err != nil {
			return nil, fmt.Errorf("host: %w", err)
		}
	}
	return h, nil
}

// Activity returns the current activity as a raw jobject.
func (h *Host) Activity() uintptr {
	return h.getActivity()
}

// JavaVM returns the process Java VM, or nil if the host has none yet.
func (h *Host) JavaVM() VM {
	return h.newVM(h.getJavaVM())
}

// AcquireThread opens a ThreadScope on the host's Java VM.
func (h *Host) AcquireThread() (*ThreadScope, error) {
	return AcquireThread(h.JavaVM(), h.opts)
}

// WithThread runs fn with the calling thread attached to the host's Java VM.
func (h *Host) WithThread(fn func(env Env) error) error {
	return WithThread(h.JavaVM(), h.opts, fn)
}

// Close releases the host library handle.
func (h *Host) Close() error {
	if h.lib == nil {
		return nil
	}
	return h.lib.close()
}

// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package tinyandroid

import (
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

// ThreadScope binds the calling OS thread to a Java VM for the duration of a
// native call. The goroutine stays locked to its OS thread until Close, and
// Close must run on the same goroutine that called AcquireThread.
//
// Only the scope that attached the thread detaches it, so scopes can nest
// freely on a thread the Java side already owns.
type ThreadScope struct {
	vm       VM
	env      Env
	attached bool
	closed   bool
	tid      int
	settings settings
}

// AcquireThread returns a scope holding a valid Env for the calling thread,
// attaching the thread first when the VM does not know it yet. A pending Java
// exception is cleared before returning.
func AcquireThread(vm VM, opts *Options) (*ThreadScope, error) {
	if vm == nil {
		return nil, ErrNoJavaVM
	}
	s := &ThreadScope{vm: vm, settings: resolveOpts(opts)}

	runtime.LockOSThread()
	s.tid = threadID()
	env, err := vm.GetEnv(s.settings.jniVersion)
	switch {
	case errors.Is(err, ErrDetached):
		env, err = vm.AttachCurrentThread()
		if err != nil {
			runtime.UnlockOSThread()
			return nil, fmt.Errorf("attach thread: %w", err)
		}
		s.attached = true
		s.settings.logger.Debug("thread attached to Java VM", zap.Int("tid", s.tid))
	case err != nil:
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("get env: %w", err)
	}
	s.env = env

	s.drainException("acquire")
	return s, nil
}

// Env returns the JNI environment of the scope's thread.
func (s *ThreadScope) Env() Env {
	return s.env
}

// Attached reports whether this scope attached the thread itself.
func (s *ThreadScope) Attached() bool {
	return s.attached
}

// Close clears any pending Java exception, detaches the thread if this scope
// attached it, and unlocks the goroutine from its OS thread. Calling Close
// more than once is a no-op. Called from another OS thread it returns
// ErrWrongThread and leaves the scope open.
func (s *ThreadScope) Close() error {
	if s == nil || s.closed {
		return nil
	}
	if tid := threadID(); tid != s.tid {
		return fmt.Errorf("%w: acquired on %d, released on %d", ErrWrongThread, s.tid, tid)
	}
	s.closed = true
	defer runtime.UnlockOSThread()

	s.drainException("release")
	if !s.attached {
		return nil
	}
	if err := s.vm.DetachCurrentThread(); err != nil {
		return fmt.Errorf("detach thread: %w", err)
	}
	s.settings.logger.Debug("thread detached from Java VM", zap.Int("tid", s.tid))
	return nil
}

// drainException clears a pending Java exception so it cannot leak into
// unrelated native code. In debug configurations it is described and logged first.
func (s *ThreadScope) drainException(stage string) bool {
	if s.env == nil || !s.env.ExceptionCheck() {
		return false
	}
	if s.settings.debug {
		s.settings.logger.Info("Java exception detected",
			zap.String("stage", stage),
			zap.Int("tid", s.tid))
		s.env.ExceptionDescribe()
	}
	s.env.ExceptionClear()
	return true
}

// WithThread runs fn inside a ThreadScope. The scope is released on every
// exit path, including a panic in fn.
func WithThread(vm VM, opts *Options, fn func(env Env) error) (err error) {
	scope, err := AcquireThread(vm, opts)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := scope.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(scope.Env())
}

// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package tinyandroid

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"
)

// library is a shared object opened through the platform dynamic linker.
type library struct {
	name   string
	handle uintptr

	closeOnce sync.Once
	closeErr  error
}

// symbolTable is the part of a library the loaders need. Tests swap it out.
type symbolTable interface {
	bind(fptr interface{}, name string) error
	close() error
}

func openLibrary(name string, flags int) (*library, error) {
	handle, err := dlopen(name, flags)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", name, err)
	}
	if handle == 0 {
		return nil, fmt.Errorf("failed to load %s: null handle", name)
	}
	Logger().Debug("library opened", zap.String("library", name), zap.Uintptr("handle", handle))
	return &library{name: name, handle: handle}, nil
}

// openSymbolTable adapts openLibrary to the symbolTable interface without
// leaking a typed nil on failure.
func openSymbolTable(name string, flags int) (symbolTable, error) {
	lib, err := openLibrary(name, flags)
	if err != nil {
		return nil, err
	}
	return lib, nil
}

func (l *library) symbol(name string) (uintptr, error) {
	sym, err := dlsym(l.handle, name)
	if err != nil {
		return 0, fmt.Errorf("%s in %s: %w (%v)", name, l.name, ErrSymbolNotFound, err)
	}
	if sym == 0 {
		return 0, fmt.Errorf("%s in %s: %w", name, l.name, ErrSymbolNotFound)
	}
	return sym, nil
}

// bind resolves name and registers it into the Go function pointed to by fptr.
func (l *library) bind(fptr interface{}, name string) error {
	sym, err := l.symbol(name)
	if err != nil {
		return err
	}
	purego.RegisterFunc(fptr, sym)
	return nil
}

func (l *library) close() error {
	l.closeOnce.Do(func() {
		if err := dlclose(l.handle); err != nil {
			l.closeErr = fmt.Errorf("failed to close %s: %w", l.name, err)
			return
		}
		Logger().Debug("library closed", zap.String("library", l.name))
	})
	return l.closeErr
}

// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build windows

package tinyandroid

import (
	"fmt"
	"syscall"
)

// LoadLibrary has no visibility or binding-time flags.
const (
	rtldNow    = 0
	rtldLocal  = 0
	rtldGlobal = 0
)

func dlopen(name string, _ int) (uintptr, error) {
	lib, err := syscall.LoadLibrary(name)
	if err != nil {
		return 0, err
	}
	return uintptr(lib), nil
}

func dlsym(handle uintptr, name string) (uintptr, error) {
	sym, err := syscall.GetProcAddress(syscall.Handle(handle), name)
	if err != nil {
		return 0, err
	}
	if sym == 0 {
		return 0, fmt.Errorf("symbol %q not found in DLL", name)
	}
	return sym, nil
}

func dlclose(handle uintptr) error {
	return syscall.FreeLibrary(syscall.Handle(handle))
}

func libcName() string {
	return "msvcrt.dll"
}

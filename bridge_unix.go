// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build linux || darwin || freebsd

package tinyandroid

import (
	"runtime"

	"github.com/ebitengine/purego"
)

const (
	rtldNow    = purego.RTLD_NOW
	rtldLocal  = purego.RTLD_LOCAL
	rtldGlobal = purego.RTLD_GLOBAL
)

func dlopen(name string, flags int) (uintptr, error) {
	return purego.Dlopen(name, flags)
}

func dlsym(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func dlclose(handle uintptr) error {
	return purego.Dlclose(handle)
}

func libcName() string {
	switch runtime.GOOS {
	case "android":
		return "libc.so"
	case "darwin":
		return "/usr/lib/libSystem.B.dylib"
	case "freebsd":
		return "libc.so.7"
	}
	return "libc.so.6"
}

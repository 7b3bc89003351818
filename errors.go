// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package tinyandroid

import (
	"errors"
	"fmt"
)

var (
	// ErrLibraryNotLoaded is returned when the platform library could not be opened.
	ErrLibraryNotLoaded = errors.New("platform library not loaded")
	// ErrSymbolNotFound is returned when a required export is missing from a library.
	ErrSymbolNotFound = errors.New("symbol not found")
	// ErrLoaderClosed is returned by an AssetLoader after Close.
	ErrLoaderClosed = errors.New("asset loader closed")
	// ErrNoJavaVM is returned when a thread scope is requested without a VM.
	ErrNoJavaVM = errors.New("no Java VM")
	// ErrWrongThread is returned by ThreadScope.Close on a thread other than the one that acquired it.
	ErrWrongThread = errors.New("thread scope released on a different OS thread")

	// ErrDetached matches a JNIError with code JNI_EDETACHED.
	ErrDetached = errors.New("thread not attached to the Java VM")
	// ErrVersion matches a JNIError with code JNI_EVERSION.
	ErrVersion = errors.New("JNI version not supported")
)

// JNIError is a non-OK status returned by a JavaVM invocation function.
type JNIError struct {
	Op   string
	Code int32
}

func (e *JNIError) Error() string {
	return fmt.Sprintf("%s failed with JNI code %d", e.Op, e.Code)
}

// Is lets errors.Is match the status code against ErrDetached and ErrVersion.
func (e *JNIError) Is(target error) bool {
	switch target {
	case ErrDetached:
		return e.Code == JNIEDetached
	case ErrVersion:
		return e.Code == JNIEVersion
	}
	return false
}

// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build android && cgo && !static_linking

// Command tinyloader is built with -buildmode=c-shared and exports loadAsset
// for engine modules that link against it instead of the platform library.
//
// The export returns NULL when the asset is missing. When the platform
// library or its loadAsset symbol cannot be resolved it also returns NULL,
// but first sets *size to -1 and logs the error to stderr.
package main

/*
#include <stddef.h>
*/
import "C"

import (
	"os"
	"sync"
	"unsafe"

	tinyandroid "github.com/YindSoft/tiny-android-interop"
	"go.uber.org/zap"
)

var (
	loader     *tinyandroid.AssetLoader
	loaderOnce sync.Once
)

func init() {
	l, err := zap.NewProduction()
	if err != nil {
		return
	}
	tinyandroid.SetLogger(l.Named("tinyloader"))
}

func assetLoader() *tinyandroid.AssetLoader {
	loaderOnce.Do(func() {
		loader = tinyandroid.NewAssetLoader(&tinyandroid.Options{
			PlatformLibrary: os.Getenv("TINY_PLATFORM_LIBRARY"),
		})
	})
	return loader
}

//export loadAsset
func loadAsset(path *C.char, size *C.int, alloc unsafe.Pointer) unsafe.Pointer {
	ptr := assetLoader().ForwardLoadAsset(C.GoString(path), (*int32)(unsafe.Pointer(size)), uintptr(alloc))
	return unsafe.Pointer(ptr)
}

func main() {}

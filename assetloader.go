// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package tinyandroid

import (
	"fmt"
	"io/fs"
	"sync"
	"unsafe"

	"go.uber.org/zap"
)

const loadAssetSymbol = "loadAsset"

// LoadAssetFunc is the ABI of the platform library's export:
//
//	void* loadAsset(const char* path, int* size, void* (*alloc)(size_t));
//
// The returned block is allocated with alloc and *size receives its length.
type LoadAssetFunc func(path string, size *int32, alloc uintptr) uintptr

// AssetLoader forwards asset reads to the loadAsset export of the platform
// library. The library is opened once, on first use or on Open, with
// immediate binding and local visibility.
type AssetLoader struct {
	settings settings

	once    sync.Once
	openErr error

	mu        sync.RWMutex
	lib       symbolTable
	loadAsset LoadAssetFunc
	closed    bool

	openLib   func(name string, flags int) (symbolTable, error)
	allocator func() (allocator, error)
}

// NewAssetLoader creates a loader for opts.PlatformLibrary. Nothing is opened
// until Open or the first read.
func NewAssetLoader(opts *Options) *AssetLoader {
	return &AssetLoader{
		settings:  resolveOpts(opts),
		openLib:   openSymbolTable,
		allocator: libcAllocator,
	}
}

// Open loads the platform library and resolves loadAsset. It runs once; the
// outcome, success or failure, is returned to every later caller.
func (l *AssetLoader) Open() error {
	l.once.Do(func() {
		l.openErr = l.doOpen()
	})
	return l.openErr
}

func (l *AssetLoader) doOpen() error {
	name := l.settings.platformLibrary
	lib, err := l.openLib(name, rtldNow|rtldLocal)
	if err != nil {
		l.settings.logger.Warn("asset loader unavailable", zap.String("library", name), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrLibraryNotLoaded, err)
	}
	var fn LoadAssetFunc
	if err := lib.bind(&fn, loadAssetSymbol); err != nil {
		_ = lib.close()
		l.settings.logger.Warn("asset loader unavailable", zap.String("library", name), zap.Error(err))
		return err
	}

	l.mu.Lock()
	l.lib = lib
	l.loadAsset = fn
	l.mu.Unlock()
	return nil
}

// LoadAsset forwards path, size and alloc unchanged to the platform library
// and returns its result. It fails instead of calling through when the
// library or the symbol could not be resolved.
func (l *AssetLoader) LoadAsset(path string, size *int32, alloc uintptr) (uintptr, error) {
	if err := l.Open(); err != nil {
		return 0, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return 0, ErrLoaderClosed
	}
	if l.loadAsset == nil {
		return 0, fmt.Errorf("%s: %w", loadAssetSymbol, ErrSymbolNotFound)
	}
	return l.loadAsset(path, size, alloc), nil
}

// ForwardLoadAsset is LoadAsset with the C export's failure convention:
// when the loader is unusable it logs the error, stores -1 in *size (if size
// is non-nil) and returns 0. A 0 result with *size left alone means the
// platform library did not find the asset.
func (l *AssetLoader) ForwardLoadAsset(path string, size *int32, alloc uintptr) uintptr {
	ptr, err := l.LoadAsset(path, size, alloc)
	if err != nil {
		l.settings.logger.Error("loadAsset failed", zap.String("path", path), zap.Error(err))
		if size != nil {
			*size = -1
		}
		return 0
	}
	return ptr
}

// ReadAsset reads a whole asset into Go memory. The platform library
// allocates with libc malloc; the block is freed before returning.
// A missing asset yields an error wrapping fs.ErrNotExist.
func (l *AssetLoader) ReadAsset(name string) ([]byte, error) {
	alloc, err := l.allocator()
	if err != nil {
		return nil, err
	}
	var size int32
	ptr, err := l.LoadAsset(name, &size, alloc.malloc)
	if err != nil {
		return nil, err
	}
	if ptr == 0 {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrNotExist}
	}
	defer alloc.free(ptr)
	if size < 0 {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fmt.Errorf("negative asset size %d", size)}
	}

	data := make([]byte, size)
	if size > 0 {
		copy(data, unsafe.Slice((*byte)(unsafe.Pointer(ptr)), size))
	}
	return data, nil
}

// Close releases the platform library. Reads after Close fail with
// ErrLoaderClosed. Calling Close more than once is a no-op.
func (l *AssetLoader) Close() error {
	l.once.Do(func() {
		l.openErr = ErrLoaderClosed
	})

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	l.loadAsset = nil
	if l.lib == nil {
		return nil
	}
	err := l.lib.close()
	l.lib = nil
	return err
}

// allocator is the malloc/free pair handed to loadAsset.
type allocator struct {
	malloc uintptr
	free   func(ptr uintptr)
}

var (
	libcOnce  sync.Once
	libcAlloc allocator
	libcErr   error
)

func libcAllocator() (allocator, error) {
	libcOnce.Do(func() {
		libcErr = doInitLibc()
	})
	return libcAlloc, libcErr
}

func doInitLibc() error {
	lib, err := openLibrary(libcName(), rtldNow|rtldGlobal)
	if err != nil {
		return fmt.Errorf("libc: %w", err)
	}
	malloc, err := lib.symbol("malloc")
	if err != nil {
		return fmt.Errorf("libc: %w", err)
	}
	var free func(ptr uintptr)
	if err := lib.bind(&free, "free"); err != nil {
		return fmt.Errorf("libc: %w", err)
	}
	libcAlloc = allocator{malloc: malloc, free: free}
	return nil
}

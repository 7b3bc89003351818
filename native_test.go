// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package tinyandroid

import (
	"sync"
	"testing"
	"unsafe"

	"github.com/ebitengine/purego"
)

// nativeHeap hands out libc blocks so fake exports return memory Go does not own,
// the same way the platform library does.
type nativeHeap struct {
	alloc  allocator
	malloc func(size uintptr) uintptr

	mu    sync.Mutex
	freed []uintptr
}

func newNativeHeap(t *testing.T) *nativeHeap {
	t.Helper()
	libc, err := libcAllocator()
	if err != nil {
		t.Skipf("libc allocator unavailable: %v", err)
	}
	h := &nativeHeap{}
	purego.RegisterFunc(&h.malloc, libc.malloc)
	h.alloc = allocator{
		malloc: libc.malloc,
		free: func(ptr uintptr) {
			h.mu.Lock()
			h.freed = append(h.freed, ptr)
			h.mu.Unlock()
			libc.free(ptr)
		},
	}
	return h
}

// store copies data into a fresh malloc block.
func (h *nativeHeap) store(data []byte) uintptr {
	ptr := h.malloc(uintptr(len(data)))
	if ptr == 0 {
		return 0
	}
	copy(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), len(data)), data)
	return ptr
}

func (h *nativeHeap) freedBlocks() []uintptr {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]uintptr(nil), h.freed...)
}

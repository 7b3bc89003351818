// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package tinyandroid

import (
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

// JNI status codes
const (
	JNIOK        = 0
	JNIErr       = -1
	JNIEDetached = -2
	JNIEVersion  = -3
)

// JNI versions accepted by GetEnv
const (
	JNIVersion1_1 = 0x00010001
	JNIVersion1_2 = 0x00010002
	JNIVersion1_4 = 0x00010004
	JNIVersion1_6 = 0x00010006
)

// Slots in JNIInvokeInterface (the JavaVM function table)
const (
	vmAttachCurrentThread = 4
	vmDetachCurrentThread = 5
	vmGetEnv              = 6
)

// Slots in JNINativeInterface (the JNIEnv function table)
const (
	envExceptionDescribe = 16
	envExceptionClear    = 17
	envExceptionCheck    = 228
)

// VM is the subset of the JNI invocation API used by thread scopes.
// Attachment is tracked by the VM per OS thread.
type VM interface {
	// GetEnv returns the environment bound to the calling thread, or an
	// error matching ErrDetached when the thread is not attached.
	GetEnv(version int32) (Env, error)
	AttachCurrentThread() (Env, error)
	DetachCurrentThread() error
}

// Env is a thread-local JNI environment.
type Env interface {
	// Pointer returns the raw JNIEnv* for calls made outside this package.
	Pointer() uintptr
	ExceptionCheck() bool
	ExceptionDescribe()
	ExceptionClear()
}

type nativeVM uintptr

type nativeEnv uintptr

// NewVM wraps a raw JavaVM* such as the one returned by get_javavm.
// It returns nil for a null pointer.
func NewVM(javaVM uintptr) VM {
	if javaVM == 0 {
		return nil
	}
	return nativeVM(javaVM)
}

// vtableEntry reads slot from the function table that obj points to.
func vtableEntry(obj uintptr, slot int) uintptr {
	table := *(*uintptr)(unsafe.Pointer(obj))
	return *(*uintptr)(unsafe.Pointer(table + uintptr(slot)*unsafe.Sizeof(uintptr(0))))
}

func (vm nativeVM) GetEnv(version int32) (Env, error) {
	out := new(uintptr)
	r1, _, _ := purego.SyscallN(vtableEntry(uintptr(vm), vmGetEnv),
		uintptr(vm), uintptr(unsafe.Pointer(out)), uintptr(version))
	runtime.KeepAlive(out)
	if code := int32(r1); code != JNIOK {
		return nil, &JNIError{Op: "GetEnv", Code: code}
	}
	return nativeEnv(*out), nil
}

func (vm nativeVM) AttachCurrentThread() (Env, error) {
	out := new(uintptr)
	r1, _, _ := purego.SyscallN(vtableEntry(uintptr(vm), vmAttachCurrentThread),
		uintptr(vm), uintptr(unsafe.Pointer(out)), 0)
	runtime.KeepAlive(out)
	if code := int32(r1); code != JNIOK {
		return nil, &JNIError{Op: "AttachCurrentThread", Code: code}
	}
	return nativeEnv(*out), nil
}

func (vm nativeVM) DetachCurrentThread() error {
	r1, _, _ := purego.SyscallN(vtableEntry(uintptr(vm), vmDetachCurrentThread), uintptr(vm))
	if code := int32(r1); code != JNIOK {
		return &JNIError{Op: "DetachCurrentThread", Code: code}
	}
	return nil
}

func (env nativeEnv) Pointer() uintptr {
	return uintptr(env)
}

func (env nativeEnv) ExceptionCheck() bool {
	r1, _, _ := purego.SyscallN(vtableEntry(uintptr(env), envExceptionCheck), uintptr(env))
	// jboolean is one byte
	return uint8(r1) != 0
}

func (env nativeEnv) ExceptionDescribe() {
	purego.SyscallN(vtableEntry(uintptr(env), envExceptionDescribe), uintptr(env))
}

func (env nativeEnv) ExceptionClear() {
	purego.SyscallN(vtableEntry(uintptr(env), envExceptionClear), uintptr(env))
}

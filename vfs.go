// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package tinyandroid

import (
	"bytes"
	"io"
	"io/fs"
	"path"
	"time"
)

// AssetFS exposes the platform library's assets as an fs.FS.
//
// The platform library cannot enumerate its assets, so the root "." opens as
// an empty directory: fs.WalkDir succeeds and visits only the root; files are
// reached by name only.
type AssetFS struct {
	loader *AssetLoader
}

// NewAssetFS returns a file system backed by loader.
func NewAssetFS(loader *AssetLoader) *AssetFS {
	return &AssetFS{loader: loader}
}

// Open implements fs.FS.
func (a *AssetFS) Open(name string) (fs.File, error) {
	if name == "." {
		return &assetRoot{}, nil
	}
	data, err := a.ReadFile(name)
	if err != nil {
		if pe, ok := err.(*fs.PathError); ok {
			pe.Op = "open"
		}
		return nil, err
	}
	return &assetFile{name: name, size: int64(len(data)), Reader: bytes.NewReader(data)}, nil
}

// ReadFile implements fs.ReadFileFS.
func (a *AssetFS) ReadFile(name string) ([]byte, error) {
	if !fs.ValidPath(name) || name == "." {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return a.loader.ReadAsset(name)
}

type assetFile struct {
	*bytes.Reader
	name string
	size int64
}

func (f *assetFile) Stat() (fs.FileInfo, error) {
	return assetInfo{name: path.Base(f.name), size: f.size, mode: 0o444}, nil
}
func (f *assetFile) Close() error { return nil }

// assetRoot is the always-empty root directory.
type assetRoot struct{}

func (assetRoot) Stat() (fs.FileInfo, error) {
	return assetInfo{name: ".", mode: fs.ModeDir | 0o555}, nil
}

func (assetRoot) Read([]byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: ".", Err: fs.ErrInvalid}
}

func (assetRoot) Close() error { return nil }

func (assetRoot) ReadDir(n int) ([]fs.DirEntry, error) {
	if n > 0 {
		return nil, io.EOF
	}
	return nil, nil
}

type assetInfo struct {
	name string
	size int64
	mode fs.FileMode
}

func (i assetInfo) Name() string       { return i.name }
func (i assetInfo) Size() int64        { return i.size }
func (i assetInfo) Mode() fs.FileMode  { return i.mode }
func (i assetInfo) ModTime() time.Time { return time.Time{} }
func (i assetInfo) IsDir() bool        { return i.mode.IsDir() }
func (i assetInfo) Sys() any           { return nil }

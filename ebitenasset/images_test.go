// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ebitenasset

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"sync"
	"testing"
	"testing/fstest"
)

// countingFS counts Open calls per name, i.e. how often a file is decoded.
type countingFS struct {
	fs.FS
	mu    sync.Mutex
	opens map[string]int
}

func newCountingFS(files fstest.MapFS) *countingFS {
	return &countingFS{FS: files, opens: make(map[string]int)}
}

func (c *countingFS) Open(name string) (fs.File, error) {
	c.mu.Lock()
	c.opens[name]++
	c.mu.Unlock()
	return c.FS.Open(name)
}

func (c *countingFS) count(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opens[name]
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(1, 1, color.RGBA{255, 0, 0, 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestLoadImage(t *testing.T) {
	fsys := fstest.MapFS{
		"sprites/dot.png": {Data: encodePNG(t, 4, 2)},
		"sprites/bad.png": {Data: []byte("not an image")},
	}

	img, err := LoadImage(fsys, "sprites/dot.png")
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Fatalf("bounds = %v", b)
	}

	if _, err := LoadImage(fsys, "sprites/bad.png"); err == nil {
		t.Fatal("expected a decode error")
	}
	if _, err := LoadImage(fsys, "sprites/missing.png"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestImagesCachesDecodedImages(t *testing.T) {
	fsys := newCountingFS(fstest.MapFS{"player.png": {Data: encodePNG(t, 8, 8)}})
	images := NewImages(fsys)

	first, err := images.Load("player.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	second, err := images.Load("player.png")
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if first != second {
		t.Fatal("second Load returned a different image")
	}
	if n := fsys.count("player.png"); n != 1 {
		t.Fatalf("decoded %d times, want 1", n)
	}
	if images.Len() != 1 {
		t.Fatalf("Len = %d, want 1", images.Len())
	}
}

func TestImagesDoesNotCacheFailures(t *testing.T) {
	fsys := newCountingFS(fstest.MapFS{"bad.png": {Data: []byte("garbage")}})
	images := NewImages(fsys)

	for i := 0; i < 2; i++ {
		_, err := images.Load("bad.png")
		if err == nil {
			t.Fatal("expected a decode error")
		}
		if want := "image bad.png: "; len(err.Error()) < len(want) || err.Error()[:len(want)] != want {
			t.Fatalf("err = %q, want prefix %q", err, want)
		}
	}
	if n := fsys.count("bad.png"); n != 2 {
		t.Fatalf("decoded %d times, want a retry per Load", n)
	}
	if images.Len() != 0 {
		t.Fatalf("Len = %d, want 0", images.Len())
	}

	if _, err := images.Load("missing.png"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want wrapped fs.ErrNotExist", err)
	}
}

func TestImagesRelease(t *testing.T) {
	fsys := newCountingFS(fstest.MapFS{
		"a.png": {Data: encodePNG(t, 2, 2)},
		"b.png": {Data: encodePNG(t, 3, 3)},
	})
	images := NewImages(fsys)
	for _, name := range []string{"a.png", "b.png"} {
		if _, err := images.Load(name); err != nil {
			t.Fatalf("Load(%s): %v", name, err)
		}
	}

	images.Release()
	if images.Len() != 0 {
		t.Fatalf("Len = %d after Release", images.Len())
	}

	if _, err := images.Load("a.png"); err != nil {
		t.Fatalf("Load after Release: %v", err)
	}
	if n := fsys.count("a.png"); n != 2 {
		t.Fatalf("a.png decoded %d times, want 2", n)
	}
}

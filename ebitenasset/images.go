// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Package ebitenasset turns asset files into Ebiten images.
//
// It works with any fs.FS. On Android pass a tinyandroid.AssetFS so images
// come from the engine's platform library:
//
//	loader := tinyandroid.NewAssetLoader(nil)
//	defer loader.Close()
//	images := ebitenasset.NewImages(tinyandroid.NewAssetFS(loader))
//	player, err := images.Load("sprites/player.png")
package ebitenasset

import (
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// LoadImage decodes a PNG, JPEG or GIF file from fsys into a new Ebiten image.
func LoadImage(fsys fs.FS, name string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFileSystem(fsys, name)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Images caches decoded images by name. It is safe for concurrent use.
type Images struct {
	fsys fs.FS

	mu     sync.Mutex
	images map[string]*ebiten.Image
}

// NewImages returns an empty cache reading from fsys.
func NewImages(fsys fs.FS) *Images {
	return &Images{fsys: fsys, images: make(map[string]*ebiten.Image)}
}

// Load returns the cached image for name, decoding it on first use.
func (c *Images) Load(name string) (*ebiten.Image, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if img, ok := c.images[name]; ok {
		return img, nil
	}
	img, err := LoadImage(c.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("image %s: %w", name, err)
	}
	c.images[name] = img
	return img, nil
}

// Len returns the number of cached images.
func (c *Images) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.images)
}

// Release deallocates every cached image and empties the cache.
func (c *Images) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for name, img := range c.images {
		img.Deallocate()
		delete(c.images, name)
	}
}

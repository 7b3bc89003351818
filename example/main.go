// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Example game drawing a sprite read through the platform asset loader.
// Off-device, where libtiny_android.so is missing, assets come from ./assets.
package main

import (
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"math"
	"os"

	tinyandroid "github.com/YindSoft/tiny-android-interop"
	"github.com/YindSoft/tiny-android-interop/ebitenasset"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

const (
	screenWidth  = 480
	screenHeight = 800
	spritePath   = "sprites/player.png"
)

type Game struct {
	loader  *tinyandroid.AssetLoader
	images  *ebitenasset.Images
	sprite  *ebiten.Image
	source  string
	counter int
}

func assetSource(loader *tinyandroid.AssetLoader) (fs.FS, string) {
	if err := loader.Open(); err != nil {
		log.Printf("platform assets unavailable, using ./assets: %v", err)
		return os.DirFS("assets"), "./assets"
	}
	return tinyandroid.NewAssetFS(loader), tinyandroid.DefaultPlatformLibrary
}

func newGame() (*Game, error) {
	loader := tinyandroid.NewAssetLoader(&tinyandroid.Options{Debug: true})
	fsys, source := assetSource(loader)

	g := &Game{loader: loader, images: ebitenasset.NewImages(fsys), source: source}
	sprite, err := g.images.Load(spritePath)
	if err != nil {
		loader.Close()
		return nil, fmt.Errorf("sprite: %w", err)
	}
	g.sprite = sprite
	return g, nil
}

func (g *Game) Update() error {
	g.counter++
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 40, 255})

	t := float64(g.counter) / 60.0
	w, h := g.sprite.Bounds().Dx(), g.sprite.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Rotate(t * 0.5)
	op.GeoM.Translate(screenWidth/2+80*math.Sin(t*0.7), screenHeight/2+120*math.Cos(t*0.4))
	screen.DrawImage(g.sprite, op)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("assets: %s\nFPS: %.1f  TPS: %.1f", g.source, ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	l, err := zap.NewDevelopment()
	if err == nil {
		tinyandroid.SetLogger(l)
		defer l.Sync()
	}

	game, err := newGame()
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer game.loader.Close()
	defer game.images.Release()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("tinyandroid - asset loader demo")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("run: %v", err)
	}
}

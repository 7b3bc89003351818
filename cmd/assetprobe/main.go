// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Command assetprobe checks the engine's platform library on a device:
//
//	adb shell /data/local/tmp/assetprobe stat sprites/player.png
//	adb shell /data/local/tmp/assetprobe cat --out /sdcard/player.png sprites/player.png
//	adb shell /data/local/tmp/assetprobe host
package main

import (
	"fmt"
	"os"

	"github.com/YindSoft/tiny-android-interop/cmd/assetprobe/commands"
)

func main() {
	if err := commands.Root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

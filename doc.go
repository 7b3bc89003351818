// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Package tinyandroid is the native glue an Ebitengine game needs on Android:
// scoped attachment of OS threads to the Java VM, and a forwarder for the
// asset reader exported by the engine's platform library.
//
// Thread scopes:
//
//	host, err := tinyandroid.OpenHost(nil) // resolves get_activity / get_javavm
//	if err != nil { ... }
//	defer host.Close()
//
//	err = host.WithThread(func(env tinyandroid.Env) error {
//	    // env.Pointer() is the JNIEnv* for this thread
//	    return nil
//	})
//
// A scope attaches the thread only if the VM does not know it yet, and only
// that scope detaches it again, so scopes nest on threads the Java side owns.
// Pending Java exceptions are cleared when a scope is acquired and released.
// Build with -tags debug (or set Options.Debug) to have them described and
// logged first.
//
// Assets:
//
//	loader := tinyandroid.NewAssetLoader(nil) // libtiny_android.so
//	defer loader.Close()
//	data, err := loader.ReadAsset("sprites/player.png")
//
// LoadAsset forwards the raw C call unchanged. When the library or its
// loadAsset export cannot be resolved every call returns an error matching
// ErrLibraryNotLoaded or ErrSymbolNotFound. [AssetFS] adapts a loader to
// fs.FS, and the ebitenasset package decodes assets into Ebiten images.
//
// Libraries are opened with purego, so the package itself needs no cgo. The
// C-callable loadAsset export lives in cmd/tinyloader and is only built for
// Android with cgo and without the static_linking tag.
//
// Logging goes through zap; see [SetLogger].
package tinyandroid

// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package tinyandroid

import "go.uber.org/zap"

// DefaultPlatformLibrary is the engine's Android platform library. It exports
// loadAsset, get_activity and get_javavm.
const DefaultPlatformLibrary = "libtiny_android.so"

// Options for the loaders and thread scopes. All fields are optional.
type Options struct {
	PlatformLibrary string      // Library exporting loadAsset. Defaults to DefaultPlatformLibrary.
	HostLibrary     string      // Library exporting get_activity and get_javavm. Defaults to PlatformLibrary.
	JNIVersion      int32       // Version passed to GetEnv. Defaults to JNIVersion1_2.
	Debug           bool        // Describe and log pending Java exceptions. Always on in builds tagged "debug".
	Logger          *zap.Logger // Overrides the package logger.
}

type settings struct {
	platformLibrary string
	hostLibrary     string
	jniVersion      int32
	debug           bool
	logger          *zap.Logger
}

func resolveOpts(opts *Options) settings {
	s := settings{
		platformLibrary: DefaultPlatformLibrary,
		jniVersion:      JNIVersion1_2,
		debug:           debugBuild,
	}
	if opts != nil {
		if opts.PlatformLibrary != "" {
			s.platformLibrary = opts.PlatformLibrary
		}
		s.hostLibrary = opts.HostLibrary
		if opts.JNIVersion != 0 {
			s.jniVersion = opts.JNIVersion
		}
		s.debug = s.debug || opts.Debug
		s.logger = opts.Logger
	}
	if s.hostLibrary == "" {
		s.hostLibrary = s.platformLibrary
	}
	if s.logger == nil {
		s.logger = Logger()
	}
	return s
}

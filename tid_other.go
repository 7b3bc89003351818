// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build !linux && !windows

package tinyandroid

// Only used in log fields.
func threadID() int {
	return 0
}

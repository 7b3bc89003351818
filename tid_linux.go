// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package tinyandroid

import "golang.org/x/sys/unix"

func threadID() int {
	return unix.Gettid()
}

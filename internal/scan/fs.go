// Copyright (c) 2025 The scopy authors.
// SPDX-License-Identifier: MIT

package scan

import (
	"io/fs"
	"os"
)

// FS is the slice of filesystem capability the scanner needs: enumerate a
// directory and stat a path. Production code uses OSFS; tests supply an
// in-memory implementation.
type FS interface {
	ReadDir(name string) ([]fs.DirEntry, error)
	Stat(name string) (fs.FileInfo, error)
}

type osFS struct{}

func (osFS) ReadDir(name string) ([]fs.DirEntry, error) { return os.ReadDir(name) }
func (osFS) Stat(name string) (fs.FileInfo, error)      { return os.Stat(name) }

// OSFS returns the FS backed by the real filesystem.
func OSFS() FS { return osFS{} }

// Package vfs re-exports the identifiers of
// github.com/microsoft/typescript-go/internal/vfs used by dependents of
// this shim module.
package vfs

import "github.com/microsoft/typescript-go/internal/vfs"

type (
	FS          = vfs.FS
	FileInfo    = vfs.FileInfo
	Entries     = vfs.Entries
	WalkDirFunc = vfs.WalkDirFunc
)

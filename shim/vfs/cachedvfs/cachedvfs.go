// Package cachedvfs re-exports the identifiers of
// github.com/microsoft/typescript-go/internal/vfs/cachedvfs used by
// dependents of this shim module.
package cachedvfs

import "github.com/microsoft/typescript-go/internal/vfs/cachedvfs"

var From = cachedvfs.From

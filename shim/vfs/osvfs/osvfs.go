// Package osvfs re-exports the identifiers of
// github.com/microsoft/typescript-go/internal/vfs/osvfs used by dependents
// of this shim module.
package osvfs

import "github.com/microsoft/typescript-go/internal/vfs/osvfs"

var FS = osvfs.FS

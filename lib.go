// Package mosek binds the native MOSEK optimization engine
// (libmosek64.so) into Go. An Env carries license state and spawns
// Tasks; a Task holds one optimization problem, its parameters and its
// solutions. Methods validate arguments before any native call, bridge
// Go slices to the engine's (pointer, count) buffers without copying
// when the layouts match, translate non-zero response codes into
// classified error values, and route the engine's stream and progress
// callbacks back into Go functions.
//
// The engine is reached through a function table loaded from the shared
// library on first use. The tests and cmd/demo swap in an in-process
// mock engine implementing the same table, so the full binding runs
// without a native library or a license.
package mosek

import (
	"github.com/rs/zerolog"

	"github.com/sdanfort/mosek-linux/internal/api"
	"github.com/sdanfort/mosek-linux/internal/ffi"
)

// Version returns the engine's version triple.
func Version() (major, minor, revision int, err error) {
	fns, err := ffi.Active()
	if err != nil {
		return 0, 0, 0, err
	}
	ma, mi, rev, err := api.Version(fns)
	return int(ma), int(mi), int(rev), err
}

// SetLogger replaces the logger used inside native callback frames,
// where no error can be returned to the caller; a panicking user
// callback is reported through it. The default logger discards
// everything.
func SetLogger(l zerolog.Logger) { api.SetLogger(l) }

package api

import (
	"sync"

	"github.com/sdanfort/mosek-linux/internal/ffi"
	"github.com/sdanfort/mosek-linux/types"
)

// The separable-convex extension lives in a second shared object with
// process-global init and teardown entry points. Init is lazy and
// guarded by a plain mutex+flag rather than sync.Once: ScTeardown resets
// the flag, so the extension can be initialized again afterwards.
var (
	scMu     sync.Mutex
	scInited bool
)

// EnsureScInit initializes the extension exactly once until the next
// ScTeardown. Safe to call concurrently.
func EnsureScInit(fns *ffi.Funcs) error {
	scMu.Lock()
	defer scMu.Unlock()
	if scInited {
		return nil
	}
	if rc := fns.ScInit(); rc != 0 {
		return envError(fns, rc)
	}
	scInited = true
	return nil
}

// ScTeardown releases the extension's global state. The flag resets even
// when the native teardown reports a failure, so a later EnsureScInit
// starts fresh.
func ScTeardown(fns *ffi.Funcs) error {
	scMu.Lock()
	defer scMu.Unlock()
	if !scInited {
		return nil
	}
	scInited = false
	if rc := fns.ScTeardown(); rc != 0 {
		return envError(fns, rc)
	}
	return nil
}

// ScCreate allocates an extension handle bound to task, initializing the
// extension first if this is the first use.
func ScCreate(fns *ffi.Funcs, task ffi.Task) (ffi.ScHandle, error) {
	if err := EnsureScInit(fns); err != nil {
		return 0, err
	}
	var h ffi.ScHandle
	if rc := fns.ScCreate(task, &h); rc != 0 {
		return 0, taskError(fns, task, rc)
	}
	return h, nil
}

// ScPutEval replaces the handle's operator list. Each operator k is
// (opro[k], oprjo[k], oprfo[k], oprgo[k], oprho[k]): the operator kind,
// the variable it applies to, and its three coefficients.
func ScPutEval(fns *ffi.Funcs, task ffi.Task, h ffi.ScHandle, opro []types.Scopr, oprjo []int32, oprfo, oprgo, oprho []float64) error {
	num, err := idx32("scputeval", "num", len(opro))
	if err != nil {
		return err
	}
	if err := lenEq("scputeval", "oprjo", len(oprjo), len(opro)); err != nil {
		return err
	}
	if err := lenEq("scputeval", "oprfo", len(oprfo), len(opro)); err != nil {
		return err
	}
	if err := lenEq("scputeval", "oprgo", len(oprgo), len(opro)); err != nil {
		return err
	}
	if err := lenEq("scputeval", "oprho", len(oprho), len(opro)); err != nil {
		return err
	}
	if err := checkEnums("scputeval", "opro", types.Scoprs, opro); err != nil {
		return err
	}
	if rc := fns.ScPutEval(h, num, enumPtr(opro), i32Ptr(oprjo), f64Ptr(oprfo), f64Ptr(oprgo), f64Ptr(oprho)); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

// ScDelete releases the extension handle and zeroes it.
func ScDelete(fns *ffi.Funcs, task ffi.Task, h *ffi.ScHandle) error {
	if rc := fns.ScDelete(task, h); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

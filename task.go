package mosek

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/sdanfort/mosek-linux/internal/api"
	"github.com/sdanfort/mosek-linux/internal/ffi"
	"github.com/sdanfort/mosek-linux/types"
)

// Task holds one optimization problem: its data, parameters, solutions
// and callbacks. Create Tasks with Env.MakeTask, Clone them, or wrap a
// pointer from elsewhere with AttachTask. A Task is not safe for
// concurrent mutation; the engine's rule is one writer at a time.
type Task struct {
	h       atomic.Uintptr
	fns     *ffi.Funcs
	cbs     api.CallbackTable
	foreign bool // pointer owned elsewhere; Dispose detaches only

	scMu sync.Mutex
	sc   ffi.ScHandle // auxiliary separable-convex handle, 0 when absent
}

func newTask(fns *ffi.Funcs, h ffi.Task, foreign bool) *Task {
	t := &Task{fns: fns, foreign: foreign}
	t.h.Store(uintptr(h))
	runtime.SetFinalizer(t, (*Task).finalize)
	return t
}

// AttachTask wraps a native task pointer created outside this binding.
// The wrapper has the full method surface but never destroys the
// pointer: Dispose and the finalizer release binding-side state and
// detach.
func AttachTask(ptr uintptr) (*Task, error) {
	if ptr == 0 {
		return nil, &types.ArgumentError{Op: "attachtask", Param: "ptr", Want: "non-null task pointer", Got: "0"}
	}
	fns, err := ffi.Active()
	if err != nil {
		return nil, err
	}
	return newTask(fns, ffi.Task(ptr), true), nil
}

func (t *Task) handle(op string) (ffi.Task, error) {
	h := ffi.Task(t.h.Load())
	if h == 0 {
		return 0, &types.ArgumentError{Op: op, Err: types.ErrDisposed}
	}
	return h, nil
}

// Clone copies the task, with its problem data, parameters and any
// solutions, into a new independent task.
func (t *Task) Clone() (*Task, error) {
	h, err := t.handle("clonetask")
	if err != nil {
		return nil, err
	}
	ch, err := api.CloneTask(t.fns, h)
	if err != nil {
		return nil, err
	}
	return newTask(t.fns, ch, false), nil
}

// Dispose releases the task. The auxiliary extension handle, when
// present, is deleted before the task itself, and callback slots are
// dropped first so a dispatch racing the teardown finds nothing. Dispose
// is idempotent and shared with the finalizer. For a foreign task it
// detaches without destroying the native pointer.
func (t *Task) Dispose() error {
	old := t.h.Swap(0)
	if old == 0 {
		return nil
	}
	runtime.SetFinalizer(t, nil)
	t.cbs.ReleaseAll()
	h := ffi.Task(old)

	t.scMu.Lock()
	sc := t.sc
	t.sc = 0
	t.scMu.Unlock()

	var firstErr error
	if sc != 0 {
		firstErr = api.ScDelete(t.fns, h, &sc)
	}
	if !t.foreign {
		if err := api.DeleteTask(t.fns, &h); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (t *Task) finalize() { _ = t.Dispose() }

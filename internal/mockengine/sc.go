package mockengine

import (
	"github.com/sdanfort/mosek-linux/internal/ffi"
	"github.com/sdanfort/mosek-linux/types"
)

func (e *Engine) scInit() int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("scinitialize", 0); rc != 0 {
		return rc
	}
	e.scInits++
	e.scActive = true
	return 0
}

func (e *Engine) scTeardown() int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("scteardown", 0); rc != 0 {
		return rc
	}
	e.scTears++
	e.scActive = false
	return 0
}

func (e *Engine) scCreate(task ffi.Task, handle *ffi.ScHandle) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("scbegin", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if !e.scActive {
		return ts.fail(types.ResErrNoInitEnv, "the extension is not initialized")
	}
	if handle == nil {
		return int32(types.ResErrNullPointer)
	}
	h := ffi.ScHandle(e.newHandle())
	e.scHandles[h] = &scState{task: task}
	*handle = h
	return 0
}

func (e *Engine) scPutEval(handle ffi.ScHandle, num int32, opro, oprjo *int32, oprfo, oprgo, oprho *float64) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("scputeval", 0); rc != 0 {
		return rc
	}
	sc, ok := e.scHandles[handle]
	if !ok {
		return int32(types.ResErrNullPointer)
	}
	ts := e.tasks[sc.task]
	if ts == nil {
		return int32(types.ResErrNullTask)
	}
	ops, js := view(opro, num), view(oprjo, num)
	fs, gs, hs := view(oprfo, num), view(oprgo, num), view(oprho, num)
	for k := range ops {
		if !types.Scoprs.Contains(ops[k]) {
			return ts.fail(types.ResErrArgumentType, "invalid operator kind")
		}
		if rc := ts.checkVar(js[k]); rc != 0 {
			return rc
		}
	}
	sc.opro = make([]types.Scopr, num)
	for k, op := range ops {
		sc.opro[k] = types.Scopr(op)
	}
	sc.oprjo = append([]int32(nil), js...)
	sc.oprfo = append([]float64(nil), fs...)
	sc.oprgo = append([]float64(nil), gs...)
	sc.oprho = append([]float64(nil), hs...)
	return 0
}

func (e *Engine) scDelete(task ffi.Task, handle *ffi.ScHandle) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("scend", task); rc != 0 {
		return rc
	}
	if handle == nil {
		return int32(types.ResErrNullPointer)
	}
	sc, ok := e.scHandles[*handle]
	if !ok {
		return int32(types.ResErrNullPointer)
	}
	if sc.task != task {
		return int32(types.ResErrInvalidTask)
	}
	delete(e.scHandles, *handle)
	*handle = 0
	return 0
}

package mockengine

import (
	"strings"
	"unsafe"

	"github.com/sdanfort/mosek-linux/internal/ffi"
	"github.com/sdanfort/mosek-linux/types"
)

// Funcs returns the engine's function table. The table stays valid for
// the life of the engine and may be installed any number of times.
func (e *Engine) Funcs() *ffi.Funcs {
	return &ffi.Funcs{
		MakeEnv:        e.makeEnv,
		DeleteEnv:      e.deleteEnv,
		PutLicensePath: e.putLicensePath,
		CheckInAll:     e.checkInAll,
		GetVersion:     e.getVersion,

		MakeTask:   e.makeTask,
		DeleteTask: e.deleteTask,
		CloneTask:  e.cloneTask,

		AppendVars:       e.appendVars,
		AppendCons:       e.appendCons,
		PutCj:            e.putCj,
		PutCList:         e.putCList,
		PutAij:           e.putAij,
		PutARow:          e.putARow,
		PutACol:          e.putACol,
		PutVarBound:      e.putVarBound,
		PutVarBoundSlice: e.putVarBoundSlice,
		PutVarBoundList:  e.putVarBoundList,
		PutConBound:      e.putConBound,
		PutConBoundSlice: e.putConBoundSlice,
		PutVarType:       e.putVarType,
		PutVarTypeList:   e.putVarTypeList,
		GetVarTypeList:   e.getVarTypeList,
		PutObjSense:      e.putObjSense,
		GetObjSense:      e.getObjSense,
		GetNumVar:        e.getNumVar,
		GetNumCon:        e.getNumCon,

		PutTaskName:    e.putTaskName,
		GetTaskNameLen: e.getTaskNameLen,
		GetTaskName:    e.getTaskName,
		PutVarName:     e.putVarName,
		GetVarNameLen:  e.getVarNameLen,
		GetVarName:     e.getVarName,

		OptimizeTrm:  e.optimizeTrm,
		GetSolSta:    e.getSolSta,
		GetProSta:    e.getProSta,
		GetXx:        e.getXx,
		GetXxSlice:   e.getXxSlice,
		GetY:         e.getY,
		GetPrimalObj: e.getPrimalObj,

		PutIntParam: e.putIntParam,
		GetIntParam: e.getIntParam,
		PutDouParam: e.putDouParam,
		GetDouParam: e.getDouParam,
		PutStrParam: e.putStrParam,
		GetStrParam: e.getStrParam,

		LinkEnvStream:   e.linkEnvStream,
		LinkTaskStream:  e.linkTaskStream,
		PutCallbackFunc: e.putCallbackFunc,

		GetLastError: e.getLastError,
		GetCodeDesc:  e.getCodeDesc,

		WriteData: e.writeData,
		ReadData:  e.readData,

		AsyncOptimize:  e.asyncOptimize,
		AsyncPoll:      e.asyncPoll,
		AsyncGetResult: e.asyncGetResult,
		AsyncStop:      e.asyncStop,

		ScInit:     e.scInit,
		ScTeardown: e.scTeardown,
		ScCreate:   e.scCreate,
		ScPutEval:  e.scPutEval,
		ScDelete:   e.scDelete,
	}
}

// view wraps a native buffer argument. The count is trusted; the binding
// validated it.
func view[T any](p *T, n int32) []T {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice(p, n)
}

func (e *Engine) makeEnv(env *ffi.Env, dbgfile *byte) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("makeenv", 0); rc != 0 {
		return rc
	}
	if env == nil {
		return int32(types.ResErrNullPointer)
	}
	_ = cString(dbgfile)
	h := ffi.Env(e.newHandle())
	e.envs[h] = &envState{}
	*env = h
	return 0
}

func (e *Engine) deleteEnv(env *ffi.Env) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("deleteenv", 0); rc != 0 {
		return rc
	}
	if env == nil {
		return int32(types.ResErrNullPointer)
	}
	if _, ok := e.envs[*env]; !ok {
		return int32(types.ResErrNullEnv)
	}
	for _, ts := range e.tasks {
		if ts.env == *env {
			return int32(types.ResErrLivingTasks)
		}
	}
	delete(e.envs, *env)
	*env = 0
	return 0
}

func (e *Engine) putLicensePath(env ffi.Env, path *byte) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("putlicensepath", 0); rc != 0 {
		return rc
	}
	es, ok := e.envs[env]
	if !ok {
		return int32(types.ResErrNullEnv)
	}
	es.licensePath = cString(path)
	return 0
}

func (e *Engine) checkInAll(env ffi.Env) int32 {
	e.mu.Lock()
	if rc := e.enter("checkinall", 0); rc != 0 {
		e.mu.Unlock()
		return rc
	}
	es, ok := e.envs[env]
	if !ok {
		e.mu.Unlock()
		return int32(types.ResErrNullEnv)
	}
	usr := es.streams[types.StreamLog]
	e.mu.Unlock()
	emit(usr, "License features checked in.")
	return 0
}

func (e *Engine) getVersion(major, minor, revision *int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("getversion", 0); rc != 0 {
		return rc
	}
	*major, *minor, *revision = 10, 2, 0
	return 0
}

func (e *Engine) makeTask(env ffi.Env, maxnumcon, maxnumvar int32, task *ffi.Task) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("maketask", 0); rc != 0 {
		return rc
	}
	if _, ok := e.envs[env]; !ok {
		return int32(types.ResErrNullEnv)
	}
	if task == nil {
		return int32(types.ResErrNullPointer)
	}
	if maxnumcon < 0 || maxnumvar < 0 {
		return int32(types.ResErrArgumentType)
	}
	ts := &taskState{
		env:   env,
		ipars: make(map[types.Iparam]int32),
		dpars: make(map[types.Dparam]float64),
		spars: make(map[types.Sparam]string),
	}
	h := ffi.Task(e.newHandle())
	e.tasks[h] = ts
	*task = h
	return 0
}

func (e *Engine) deleteTask(task *ffi.Task) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if task == nil {
		e.enter("deletetask", 0)
		return int32(types.ResErrNullPointer)
	}
	if rc := e.enter("deletetask", *task); rc != 0 {
		return rc
	}
	if _, ok := e.tasks[*task]; !ok {
		return int32(types.ResErrNullTask)
	}
	for h, sc := range e.scHandles {
		if sc.task == *task {
			delete(e.scHandles, h)
		}
	}
	delete(e.tasks, *task)
	*task = 0
	return 0
}

func (e *Engine) cloneTask(task ffi.Task, clone *ffi.Task) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("clonetask", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if clone == nil {
		return int32(types.ResErrNullPointer)
	}
	h := ffi.Task(e.newHandle())
	e.tasks[h] = cloneState(ts)
	*clone = h
	return 0
}

// cloneState copies problem data, parameters and any solution. Stream
// links, the progress slot and the last-error record stay behind.
func cloneState(ts *taskState) *taskState {
	c := &taskState{
		env:      ts.env,
		name:     ts.name,
		numvar:   ts.numvar,
		numcon:   ts.numcon,
		objsense: ts.objsense,
		c:        append([]float64(nil), ts.c...),
		varBk:    append([]types.Boundkey(nil), ts.varBk...),
		varBl:    append([]float64(nil), ts.varBl...),
		varBu:    append([]float64(nil), ts.varBu...),
		conBk:    append([]types.Boundkey(nil), ts.conBk...),
		conBl:    append([]float64(nil), ts.conBl...),
		conBu:    append([]float64(nil), ts.conBu...),
		vartypes: append([]types.Vartype(nil), ts.vartypes...),
		varnames: append([]string(nil), ts.varnames...),
		ipars:    make(map[types.Iparam]int32, len(ts.ipars)),
		dpars:    make(map[types.Dparam]float64, len(ts.dpars)),
		spars:    make(map[types.Sparam]string, len(ts.spars)),
		solved:   ts.solved,
		solsta:   ts.solsta,
		prosta:   ts.prosta,
		xx:       append([]float64(nil), ts.xx...),
		y:        append([]float64(nil), ts.y...),
		pobj:     ts.pobj,
	}
	for k, v := range ts.ipars {
		c.ipars[k] = v
	}
	for k, v := range ts.dpars {
		c.dpars[k] = v
	}
	for k, v := range ts.spars {
		c.spars[k] = v
	}
	if ts.rows != nil {
		c.rows = make(map[int32]map[int32]float64, len(ts.rows))
		for i, row := range ts.rows {
			nr := make(map[int32]float64, len(row))
			for j, v := range row {
				nr[j] = v
			}
			c.rows[i] = nr
		}
	}
	return c
}

func (e *Engine) appendVars(task ffi.Task, num int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("appendvars", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if num < 0 {
		return ts.fail(types.ResErrArgumentType, "num is negative")
	}
	ts.growVars(num)
	return 0
}

func (e *Engine) appendCons(task ffi.Task, num int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("appendcons", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if num < 0 {
		return ts.fail(types.ResErrArgumentType, "num is negative")
	}
	ts.growCons(num)
	return 0
}

func (e *Engine) putCj(task ffi.Task, j int32, cj float64) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("putcj", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if rc := ts.checkVar(j); rc != 0 {
		return rc
	}
	ts.c[j] = cj
	if cj >= largeCj || cj <= -largeCj {
		return ts.fail(types.ResWrnLargeCj, "the objective coefficient is very large")
	}
	return 0
}

func (e *Engine) putCList(task ffi.Task, num int32, subj *int32, val *float64) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("putclist", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	js, vs := view(subj, num), view(val, num)
	for _, j := range js {
		if rc := ts.checkVar(j); rc != 0 {
			return rc
		}
	}
	for k, j := range js {
		ts.c[j] = vs[k]
	}
	return 0
}

func (e *Engine) putAij(task ffi.Task, i, j int32, aij float64) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("putaij", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if rc := ts.checkCon(i); rc != 0 {
		return rc
	}
	if rc := ts.checkVar(j); rc != 0 {
		return rc
	}
	ts.setAij(i, j, aij)
	return 0
}

func (e *Engine) putARow(task ffi.Task, i, nzi int32, subi *int32, vali *float64) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("putarow", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if rc := ts.checkCon(i); rc != 0 {
		return rc
	}
	js, vs := view(subi, nzi), view(vali, nzi)
	for _, j := range js {
		if rc := ts.checkVar(j); rc != 0 {
			return rc
		}
	}
	if ts.rows != nil {
		delete(ts.rows, i)
	}
	for k, j := range js {
		ts.setAij(i, j, vs[k])
	}
	return 0
}

func (e *Engine) putACol(task ffi.Task, j, nzj int32, subi *int32, vali *float64) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("putacol", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if rc := ts.checkVar(j); rc != 0 {
		return rc
	}
	is, vs := view(subi, nzj), view(vali, nzj)
	for _, i := range is {
		if rc := ts.checkCon(i); rc != 0 {
			return rc
		}
	}
	for _, row := range ts.rows {
		delete(row, j)
	}
	for k, i := range is {
		ts.setAij(i, j, vs[k])
	}
	return 0
}

func (ts *taskState) storeVarBound(j int32, bk types.Boundkey, bl, bu float64) int32 {
	if !types.Boundkeys.Contains(int32(bk)) {
		return ts.fail(types.ResErrArgumentType, "invalid bound key")
	}
	ts.varBk[j], ts.varBl[j], ts.varBu[j] = bk, bl, bu
	return 0
}

func (ts *taskState) storeConBound(i int32, bk types.Boundkey, bl, bu float64) int32 {
	if !types.Boundkeys.Contains(int32(bk)) {
		return ts.fail(types.ResErrArgumentType, "invalid bound key")
	}
	ts.conBk[i], ts.conBl[i], ts.conBu[i] = bk, bl, bu
	return 0
}

func (e *Engine) putVarBound(task ffi.Task, j, bk int32, bl, bu float64) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("putvarbound", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if rc := ts.checkVar(j); rc != 0 {
		return rc
	}
	return ts.storeVarBound(j, types.Boundkey(bk), bl, bu)
}

func (e *Engine) putVarBoundSlice(task ffi.Task, first, last int32, bk *int32, bl, bu *float64) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("putvarboundslice", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if first < 0 || last < first {
		return ts.fail(types.ResErrIndexIsTooSmall, "invalid variable range")
	}
	if last > ts.numvar {
		return ts.fail(types.ResErrIndexIsTooLarge, "the variable range is out of bounds")
	}
	n := last - first
	bks, bls, bus := view(bk, n), view(bl, n), view(bu, n)
	for k := int32(0); k < n; k++ {
		if rc := ts.storeVarBound(first+k, types.Boundkey(bks[k]), bls[k], bus[k]); rc != 0 {
			return rc
		}
	}
	return 0
}

func (e *Engine) putVarBoundList(task ffi.Task, num int32, subj, bk *int32, bl, bu *float64) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("putvarboundlist", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	js, bks, bls, bus := view(subj, num), view(bk, num), view(bl, num), view(bu, num)
	for _, j := range js {
		if rc := ts.checkVar(j); rc != 0 {
			return rc
		}
	}
	for k, j := range js {
		if rc := ts.storeVarBound(j, types.Boundkey(bks[k]), bls[k], bus[k]); rc != 0 {
			return rc
		}
	}
	return 0
}

func (e *Engine) putConBound(task ffi.Task, i, bk int32, bl, bu float64) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("putconbound", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if rc := ts.checkCon(i); rc != 0 {
		return rc
	}
	return ts.storeConBound(i, types.Boundkey(bk), bl, bu)
}

func (e *Engine) putConBoundSlice(task ffi.Task, first, last int32, bk *int32, bl, bu *float64) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("putconboundslice", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if first < 0 || last < first {
		return ts.fail(types.ResErrIndexIsTooSmall, "invalid constraint range")
	}
	if last > ts.numcon {
		return ts.fail(types.ResErrIndexIsTooLarge, "the constraint range is out of bounds")
	}
	n := last - first
	bks, bls, bus := view(bk, n), view(bl, n), view(bu, n)
	for k := int32(0); k < n; k++ {
		if rc := ts.storeConBound(first+k, types.Boundkey(bks[k]), bls[k], bus[k]); rc != 0 {
			return rc
		}
	}
	return 0
}

func (e *Engine) putVarType(task ffi.Task, j, vartype int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("putvartype", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if rc := ts.checkVar(j); rc != 0 {
		return rc
	}
	if !types.Vartypes.Contains(vartype) {
		return ts.fail(types.ResErrArgumentType, "invalid variable type")
	}
	ts.vartypes[j] = types.Vartype(vartype)
	return 0
}

func (e *Engine) putVarTypeList(task ffi.Task, num int32, subj, vartypes *int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("putvartypelist", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	js, vts := view(subj, num), view(vartypes, num)
	for _, j := range js {
		if rc := ts.checkVar(j); rc != 0 {
			return rc
		}
	}
	for k, j := range js {
		if !types.Vartypes.Contains(vts[k]) {
			return ts.fail(types.ResErrArgumentType, "invalid variable type")
		}
		ts.vartypes[j] = types.Vartype(vts[k])
	}
	return 0
}

func (e *Engine) getVarTypeList(task ffi.Task, num int32, subj, vartypes *int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("getvartypelist", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	js, out := view(subj, num), view(vartypes, num)
	for k, j := range js {
		if rc := ts.checkVar(j); rc != 0 {
			return rc
		}
		out[k] = int32(ts.vartypes[j])
	}
	return 0
}

func (e *Engine) putObjSense(task ffi.Task, sense int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("putobjsense", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if !types.Objsenses.Contains(sense) {
		return ts.fail(types.ResErrArgumentType, "invalid objective sense")
	}
	ts.objsense = types.Objsense(sense)
	return 0
}

func (e *Engine) getObjSense(task ffi.Task, sense *int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("getobjsense", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	*sense = int32(ts.objsense)
	return 0
}

func (e *Engine) getNumVar(task ffi.Task, numvar *int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("getnumvar", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	*numvar = ts.numvar
	return 0
}

func (e *Engine) getNumCon(task ffi.Task, numcon *int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("getnumcon", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	*numcon = ts.numcon
	return 0
}

func (e *Engine) putTaskName(task ffi.Task, name *byte) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("puttaskname", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	ts.name = cString(name)
	return 0
}

func (e *Engine) getTaskNameLen(task ffi.Task, length *int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("gettasknamelen", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	*length = int32(len(ts.name))
	return 0
}

func (e *Engine) getTaskName(task ffi.Task, size int32, name *byte) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("gettaskname", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	copyOut(name, size, ts.name)
	return 0
}

func (e *Engine) putVarName(task ffi.Task, j int32, name *byte) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("putvarname", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if rc := ts.checkVar(j); rc != 0 {
		return rc
	}
	ts.varnames[j] = cString(name)
	return 0
}

func (e *Engine) getVarNameLen(task ffi.Task, j int32, length *int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("getvarnamelen", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if rc := ts.checkVar(j); rc != 0 {
		return rc
	}
	*length = int32(len(ts.varnames[j]))
	return 0
}

func (e *Engine) getVarName(task ffi.Task, j, size int32, name *byte) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("getvarname", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if rc := ts.checkVar(j); rc != 0 {
		return rc
	}
	copyOut(name, size, ts.varnames[j])
	return 0
}

// solution gates shared by the solution getters. Callers hold e.mu.
func (ts *taskState) solutionReady(whichsol int32) int32 {
	if !types.Soltypes.Contains(whichsol) {
		return ts.fail(types.ResErrArgumentType, "invalid solution type")
	}
	if !ts.solved {
		return ts.fail(types.ResErrUndefinedSolution, "the requested solution is not defined")
	}
	if types.Soltype(whichsol) == types.SolItg && !ts.hasIntVars() {
		return ts.fail(types.ResErrUndefinedSolution, "the problem has no integer solution")
	}
	return 0
}

func (ts *taskState) hasIntVars() bool {
	for _, vt := range ts.vartypes {
		if vt == types.VartypeInt {
			return true
		}
	}
	return false
}

func (e *Engine) getSolSta(task ffi.Task, whichsol int32, solsta *int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("getsolsta", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if rc := ts.solutionReady(whichsol); rc != 0 {
		return rc
	}
	*solsta = int32(ts.solsta)
	return 0
}

func (e *Engine) getProSta(task ffi.Task, whichsol int32, prosta *int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("getprosta", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if rc := ts.solutionReady(whichsol); rc != 0 {
		return rc
	}
	*prosta = int32(ts.prosta)
	return 0
}

func (e *Engine) getXx(task ffi.Task, whichsol int32, xx *float64) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("getxx", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if rc := ts.solutionReady(whichsol); rc != 0 {
		return rc
	}
	copy(view(xx, ts.numvar), ts.xx)
	return 0
}

func (e *Engine) getXxSlice(task ffi.Task, whichsol, first, last int32, xx *float64) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("getxxslice", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if rc := ts.solutionReady(whichsol); rc != 0 {
		return rc
	}
	if first < 0 || last < first {
		return ts.fail(types.ResErrIndexIsTooSmall, "invalid variable range")
	}
	if last > ts.numvar {
		return ts.fail(types.ResErrIndexIsTooLarge, "the variable range is out of bounds")
	}
	copy(view(xx, last-first), ts.xx[first:last])
	return 0
}

func (e *Engine) getY(task ffi.Task, whichsol int32, y *float64) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("gety", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if rc := ts.solutionReady(whichsol); rc != 0 {
		return rc
	}
	copy(view(y, ts.numcon), ts.y)
	return 0
}

func (e *Engine) getPrimalObj(task ffi.Task, whichsol int32, obj *float64) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("getprimalobj", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if rc := ts.solutionReady(whichsol); rc != 0 {
		return rc
	}
	*obj = ts.pobj
	return 0
}

func iparDefault(p types.Iparam) int32 {
	switch p {
	case types.IparamIntpntMaxIterations:
		return 400
	case types.IparamSimMaxIterations:
		return 10000000
	case types.IparamBiMaxIterations:
		return 1000000
	case types.IparamMioMaxNumBranches:
		return -1
	case types.IparamLog:
		return 10
	case types.IparamLogIntpnt, types.IparamLogMio, types.IparamLogSim:
		return 1
	case types.IparamOptimizer:
		return int32(types.OptimizerFree)
	case types.IparamPresolveUse:
		return int32(types.PresolveModeFree)
	default:
		return 0
	}
}

func dparDefault(p types.Dparam) float64 {
	switch p {
	case types.DparamIntpntTolRelGap:
		return 1e-8
	case types.DparamMioTolRelGap:
		return 1e-4
	case types.DparamMioMaxTime, types.DparamOptimizerMaxTime:
		return -1
	case types.DparamSimplexAbsTolPiv:
		return 1e-7
	case types.DparamLowerObjCut:
		return -1e30
	case types.DparamUpperObjCut:
		return 1e30
	default:
		return 0
	}
}

func sparDefault(p types.Sparam) string {
	if p == types.SparamParamCommentSign {
		return "%%"
	}
	return ""
}

func (e *Engine) putIntParam(task ffi.Task, param, value int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("putintparam", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if !types.Iparams.Contains(param) {
		return ts.fail(types.ResErrParamIndex, "invalid integer parameter")
	}
	p := types.Iparam(param)
	if (p == types.IparamIntpntMaxIterations || p == types.IparamSimMaxIterations) && value < 0 {
		return ts.fail(types.ResErrParamIsTooSmall, "the iteration limit is negative")
	}
	ts.ipars[p] = value
	return 0
}

func (e *Engine) getIntParam(task ffi.Task, param int32, value *int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("getintparam", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if !types.Iparams.Contains(param) {
		return ts.fail(types.ResErrParamIndex, "invalid integer parameter")
	}
	if v, ok := ts.ipars[types.Iparam(param)]; ok {
		*value = v
	} else {
		*value = iparDefault(types.Iparam(param))
	}
	return 0
}

func (e *Engine) putDouParam(task ffi.Task, param int32, value float64) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("putdouparam", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if !types.Dparams.Contains(param) {
		return ts.fail(types.ResErrParamIndex, "invalid double parameter")
	}
	ts.dpars[types.Dparam(param)] = value
	return 0
}

func (e *Engine) getDouParam(task ffi.Task, param int32, value *float64) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("getdouparam", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if !types.Dparams.Contains(param) {
		return ts.fail(types.ResErrParamIndex, "invalid double parameter")
	}
	if v, ok := ts.dpars[types.Dparam(param)]; ok {
		*value = v
	} else {
		*value = dparDefault(types.Dparam(param))
	}
	return 0
}

func (e *Engine) putStrParam(task ffi.Task, param int32, value *byte) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("putstrparam", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if !types.Sparams.Contains(param) {
		return ts.fail(types.ResErrParamIndex, "invalid string parameter")
	}
	ts.spars[types.Sparam(param)] = cString(value)
	return 0
}

func (e *Engine) getStrParam(task ffi.Task, param, size int32, length *int32, value *byte) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("getstrparam", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if !types.Sparams.Contains(param) {
		return ts.fail(types.ResErrParamIndex, "invalid string parameter")
	}
	s, ok := ts.spars[types.Sparam(param)]
	if !ok {
		s = sparDefault(types.Sparam(param))
	}
	*length = copyOut(value, size, s)
	return 0
}

func (e *Engine) linkEnvStream(env ffi.Env, whichstream int32, usr uintptr, attach bool) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("linkfunctoenvstream", 0); rc != 0 {
		return rc
	}
	es, ok := e.envs[env]
	if !ok {
		return int32(types.ResErrNullEnv)
	}
	if whichstream < 0 || whichstream >= types.NumStreams {
		return int32(types.ResErrInvalidStream)
	}
	if !attach {
		usr = 0
	}
	es.streams[whichstream] = usr
	return 0
}

func (e *Engine) linkTaskStream(task ffi.Task, whichstream int32, usr uintptr, attach bool) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("linkfunctotaskstream", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if whichstream < 0 || whichstream >= types.NumStreams {
		return ts.fail(types.ResErrInvalidStream, "invalid stream index")
	}
	if !attach {
		usr = 0
	}
	ts.streams[whichstream] = usr
	return 0
}

func (e *Engine) putCallbackFunc(task ffi.Task, usr uintptr, attach bool) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("putcallbackfunc", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	if !attach {
		usr = 0
	}
	ts.progress = usr
	return 0
}

func (e *Engine) getLastError(task ffi.Task, lastrescode *int32, sizelastmsg int64, lastmsglen *int64, lastmsg *byte) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("getlasterror64", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	*lastrescode = ts.lastCode
	*lastmsglen = int64(len(ts.lastMsg))
	copyOut(lastmsg, int32(sizelastmsg), ts.lastMsg)
	return 0
}

func (e *Engine) getCodeDesc(code int32, symname, desc *byte) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("getcodedesc", 0); rc != 0 {
		return rc
	}
	m, err := types.Rescodes.ByValue(code)
	if err != nil {
		return int32(types.ResErrArgumentType)
	}
	copyOut(symname, ffi.MaxStrLen, types.Rescode(code).Symbol())
	copyOut(desc, ffi.MaxStrLen, strings.ReplaceAll(m.Name, "_", " "))
	return 0
}

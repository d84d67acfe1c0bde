// Package ffi declares the C ABI of the native optimization engine as a
// table of typed Go function pointers, and owns loading of the shared
// library. Nothing above this package touches a symbol directly: callers go
// through the active Funcs table, which tests swap for an in-process engine
// via Use.
package ffi

import (
	"fmt"
	"sync"
)

// Env and Task are the raw opaque handles issued by the engine. The zero
// value is the released/invalid sentinel.
type (
	Env      uintptr
	Task     uintptr
	ScHandle uintptr
)

// MaxStrLen is the engine's fixed buffer size for symbol names, code
// descriptions and last-error messages.
const MaxStrLen = 1024

// TokenLen is the length of an async job token, excluding the NUL.
const TokenLen = 32

// Dispatch hooks for native callbacks. The engine always receives the
// binding's fixed trampoline with the C shapes below; the user-data value
// identifies the callback slot. internal/api installs both hooks at init,
// before any library load can happen.
//
//	void stream(void *usr, const char *msg)
//	int32 progress(task, void *usr, int32 caller,
//	               const double *dinf, const int32 *iinf, const int64 *liinf)
var (
	StreamDispatch   func(usr uintptr, msg *byte)
	ProgressDispatch func(task Task, usr uintptr, caller int32, dinf *float64, iinf *int32, liinf *int64) int32
)

// Funcs is the engine's entry-point table. Every field keeps the C calling
// convention: handles and buffers cross as pointers with explicit counts,
// output scalars cross as pointers, and each fallible call returns the raw
// response code. The callback installers take attach=false to pass a NULL
// function pointer, which unregisters the trampoline for that slot.
type Funcs struct {
	// Environment lifecycle.
	MakeEnv        func(env *Env, dbgfile *byte) int32
	DeleteEnv      func(env *Env) int32
	PutLicensePath func(env Env, path *byte) int32
	CheckInAll     func(env Env) int32
	GetVersion     func(major, minor, revision *int32) int32

	// Task lifecycle.
	MakeTask   func(env Env, maxnumcon, maxnumvar int32, task *Task) int32
	DeleteTask func(task *Task) int32
	CloneTask  func(task Task, clone *Task) int32

	// Problem data.
	AppendVars       func(task Task, num int32) int32
	AppendCons       func(task Task, num int32) int32
	PutCj            func(task Task, j int32, cj float64) int32
	PutCList         func(task Task, num int32, subj *int32, val *float64) int32
	PutAij           func(task Task, i, j int32, aij float64) int32
	PutARow          func(task Task, i, nzi int32, subi *int32, vali *float64) int32
	PutACol          func(task Task, j, nzj int32, subi *int32, vali *float64) int32
	PutVarBound      func(task Task, j, bk int32, bl, bu float64) int32
	PutVarBoundSlice func(task Task, first, last int32, bk *int32, bl, bu *float64) int32
	PutVarBoundList  func(task Task, num int32, subj, bk *int32, bl, bu *float64) int32
	PutConBound      func(task Task, i, bk int32, bl, bu float64) int32
	PutConBoundSlice func(task Task, first, last int32, bk *int32, bl, bu *float64) int32
	PutVarType       func(task Task, j, vartype int32) int32
	PutVarTypeList   func(task Task, num int32, subj, vartypes *int32) int32
	GetVarTypeList   func(task Task, num int32, subj, vartypes *int32) int32
	PutObjSense      func(task Task, sense int32) int32
	GetObjSense      func(task Task, sense *int32) int32
	GetNumVar        func(task Task, numvar *int32) int32
	GetNumCon        func(task Task, numcon *int32) int32

	// Names; the string getters follow the query-length-then-fetch idiom.
	PutTaskName    func(task Task, name *byte) int32
	GetTaskNameLen func(task Task, length *int32) int32
	GetTaskName    func(task Task, size int32, name *byte) int32
	PutVarName     func(task Task, j int32, name *byte) int32
	GetVarNameLen  func(task Task, j int32, length *int32) int32
	GetVarName     func(task Task, j, size int32, name *byte) int32

	// Optimization and solutions.
	OptimizeTrm  func(task Task, trm *int32) int32
	GetSolSta    func(task Task, whichsol int32, solsta *int32) int32
	GetProSta    func(task Task, whichsol int32, prosta *int32) int32
	GetXx        func(task Task, whichsol int32, xx *float64) int32
	GetXxSlice   func(task Task, whichsol, first, last int32, xx *float64) int32
	GetY         func(task Task, whichsol int32, y *float64) int32
	GetPrimalObj func(task Task, whichsol int32, obj *float64) int32

	// Parameters.
	PutIntParam func(task Task, param, value int32) int32
	GetIntParam func(task Task, param int32, value *int32) int32
	PutDouParam func(task Task, param int32, value float64) int32
	GetDouParam func(task Task, param int32, value *float64) int32
	PutStrParam func(task Task, param int32, value *byte) int32
	GetStrParam func(task Task, param, size int32, length *int32, value *byte) int32

	// Callback installation. usr is the slot key echoed back on dispatch.
	LinkEnvStream   func(env Env, whichstream int32, usr uintptr, attach bool) int32
	LinkTaskStream  func(task Task, whichstream int32, usr uintptr, attach bool) int32
	PutCallbackFunc func(task Task, usr uintptr, attach bool) int32

	// Error reporting.
	GetLastError func(task Task, lastrescode *int32, sizelastmsg int64, lastmsglen *int64, lastmsg *byte) int32
	GetCodeDesc  func(code int32, symname, desc *byte) int32

	// Data files.
	WriteData func(task Task, filename *byte) int32
	ReadData  func(task Task, filename *byte) int32

	// Remote async jobs. token buffers hold TokenLen+1 bytes.
	AsyncOptimize  func(task Task, address, accesstoken, token *byte) int32
	AsyncPoll      func(task Task, address, accesstoken, token *byte, respavailable, resp, trm *int32) int32
	AsyncGetResult func(task Task, address, accesstoken, token *byte, respavailable, resp, trm *int32) int32
	AsyncStop      func(task Task, address, accesstoken, token *byte) int32

	// Separable convex extension, provided by a second shared object that
	// is loaded on first use.
	ScInit     func() int32
	ScTeardown func() int32
	ScCreate   func(task Task, handle *ScHandle) int32
	ScPutEval  func(handle ScHandle, num int32, opro, oprjo *int32, oprfo, oprgo, oprho *float64) int32
	ScDelete   func(task Task, handle *ScHandle) int32
}

var (
	activeMu sync.Mutex
	active   *Funcs
)

// Use installs f as the active engine table and returns a function that
// restores the previous one. Tests use it to run against an in-process
// engine.
func Use(f *Funcs) (restore func()) {
	activeMu.Lock()
	defer activeMu.Unlock()
	prev := active
	active = f
	return func() {
		activeMu.Lock()
		defer activeMu.Unlock()
		active = prev
	}
}

// Active returns the engine table, loading the native shared library on
// first use when none was injected.
func Active() (*Funcs, error) {
	activeMu.Lock()
	defer activeMu.Unlock()
	if active != nil {
		return active, nil
	}
	f, err := load()
	if err != nil {
		return nil, fmt.Errorf("loading native engine: %w", err)
	}
	active = f
	return active, nil
}

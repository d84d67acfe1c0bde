// Package mockengine is an in-process engine implementing the complete
// native function table. Tests and the demo install it with ffi.Use and
// exercise the whole binding without the shared library or a license.
//
// The engine keeps a per-symbol call counter and an ordered trace,
// supports injecting a failure on any symbol, stores data files in an
// in-memory database and runs async jobs on a worker pool. A solve
// produces a deterministic placeholder solution: each variable lands on
// its lower bound when finite, else its upper bound, else zero, and the
// objective value follows from it.
//
// Stream and progress callbacks are delivered synchronously through the
// ffi dispatch hooks. Callbacks must not call back into the engine.
package mockengine

import (
	"sync"
	"unsafe"

	dbm "github.com/cometbft/cometbft-db"
	"github.com/panjf2000/ants/v2"

	"github.com/sdanfort/mosek-linux/internal/ffi"
	"github.com/sdanfort/mosek-linux/types"
)

const asyncWorkers = 4

// putcj accepts but warns about coefficients at or beyond this magnitude.
const largeCj = 1e16

type failSpec struct {
	code types.Rescode
	msg  string
}

type envState struct {
	streams     [types.NumStreams]uintptr
	licensePath string
}

type taskState struct {
	env ffi.Env

	name     string
	numvar   int32
	numcon   int32
	objsense types.Objsense

	c        []float64
	rows     map[int32]map[int32]float64
	varBk    []types.Boundkey
	varBl    []float64
	varBu    []float64
	conBk    []types.Boundkey
	conBl    []float64
	conBu    []float64
	vartypes []types.Vartype
	varnames []string

	ipars map[types.Iparam]int32
	dpars map[types.Dparam]float64
	spars map[types.Sparam]string

	streams  [types.NumStreams]uintptr
	progress uintptr

	lastCode int32
	lastMsg  string

	solved bool
	solsta types.Solsta
	prosta types.Prosta
	xx     []float64
	y      []float64
	pobj   float64
}

type scState struct {
	task  ffi.Task
	opro  []types.Scopr
	oprjo []int32
	oprfo []float64
	oprgo []float64
	oprho []float64
}

// Engine is one mock engine instance. Install its table with
// ffi.Use(e.Funcs()) and restore afterwards.
type Engine struct {
	mu sync.Mutex

	nextHandle uintptr
	envs       map[ffi.Env]*envState
	tasks      map[ffi.Task]*taskState

	calls    map[string]int
	trace    []string
	failures map[string]failSpec

	files dbm.DB

	pool   *ants.Pool
	jobs   map[string]*job
	jobSeq int
	gate   chan struct{}

	scActive  bool
	scInits   int
	scTears   int
	scHandles map[ffi.ScHandle]*scState
}

func New() *Engine {
	pool, err := ants.NewPool(asyncWorkers)
	if err != nil {
		// Only reachable with an invalid pool size.
		panic(err)
	}
	return &Engine{
		nextHandle: 0x1000,
		envs:       make(map[ffi.Env]*envState),
		tasks:      make(map[ffi.Task]*taskState),
		calls:      make(map[string]int),
		failures:   make(map[string]failSpec),
		files:      dbm.NewMemDB(),
		pool:       pool,
		jobs:       make(map[string]*job),
		scHandles:  make(map[ffi.ScHandle]*scState),
	}
}

// Close releases the async worker pool.
func (e *Engine) Close() {
	e.ReleaseAsync()
	e.pool.Release()
}

// FailWith makes every call to the named symbol fail with code until
// ClearFailures. msg becomes the task's last-error message when the
// failing symbol is task-scoped.
func (e *Engine) FailWith(op string, code types.Rescode, msg string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failures[op] = failSpec{code: code, msg: msg}
}

func (e *Engine) ClearFailures() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failures = make(map[string]failSpec)
}

// Calls reports how many times the named symbol was invoked.
func (e *Engine) Calls(op string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls[op]
}

// Trace returns the symbols invoked so far, in call order.
func (e *Engine) Trace() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.trace))
	copy(out, e.trace)
	return out
}

// ScInits reports how many times the extension was initialized.
func (e *Engine) ScInits() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scInits
}

// ScTeardowns reports how many times the extension was torn down.
func (e *Engine) ScTeardowns() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scTears
}

// HasFile reports whether a data file was written under name.
func (e *Engine) HasFile(name string) bool {
	ok, err := e.files.Has([]byte(name))
	return err == nil && ok
}

// HoldAsync delays every async job submitted after the call until
// ReleaseAsync.
func (e *Engine) HoldAsync() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gate == nil {
		e.gate = make(chan struct{})
	}
}

func (e *Engine) ReleaseAsync() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gate != nil {
		close(e.gate)
		e.gate = nil
	}
}

// enter records the call and applies any injected failure. Callers hold
// e.mu.
func (e *Engine) enter(op string, task ffi.Task) int32 {
	e.calls[op]++
	e.trace = append(e.trace, op)
	if f, ok := e.failures[op]; ok {
		if ts := e.tasks[task]; ts != nil {
			ts.lastCode = int32(f.code)
			ts.lastMsg = f.msg
		}
		return int32(f.code)
	}
	return 0
}

func (e *Engine) newHandle() uintptr {
	e.nextHandle += 16
	return e.nextHandle
}

// fail records code and msg as the task's last error and returns the
// code. Callers hold e.mu.
func (ts *taskState) fail(code types.Rescode, msg string) int32 {
	ts.lastCode = int32(code)
	ts.lastMsg = msg
	return int32(code)
}

func (ts *taskState) growVars(n int32) {
	for i := int32(0); i < n; i++ {
		ts.c = append(ts.c, 0)
		ts.varBk = append(ts.varBk, types.BoundkeyFx)
		ts.varBl = append(ts.varBl, 0)
		ts.varBu = append(ts.varBu, 0)
		ts.vartypes = append(ts.vartypes, types.VartypeCont)
		ts.varnames = append(ts.varnames, "")
	}
	ts.numvar += n
}

func (ts *taskState) growCons(n int32) {
	for i := int32(0); i < n; i++ {
		ts.conBk = append(ts.conBk, types.BoundkeyFr)
		ts.conBl = append(ts.conBl, 0)
		ts.conBu = append(ts.conBu, 0)
	}
	ts.numcon += n
}

func (ts *taskState) checkVar(j int32) int32 {
	if j < 0 {
		return ts.fail(types.ResErrIndexIsTooSmall, "the variable index is negative")
	}
	if j >= ts.numvar {
		return ts.fail(types.ResErrIndexIsTooLarge, "the variable index is out of range")
	}
	return 0
}

func (ts *taskState) checkCon(i int32) int32 {
	if i < 0 {
		return ts.fail(types.ResErrIndexIsTooSmall, "the constraint index is negative")
	}
	if i >= ts.numcon {
		return ts.fail(types.ResErrIndexIsTooLarge, "the constraint index is out of range")
	}
	return 0
}

func (ts *taskState) setAij(i, j int32, v float64) {
	if ts.rows == nil {
		ts.rows = make(map[int32]map[int32]float64)
	}
	row := ts.rows[i]
	if row == nil {
		row = make(map[int32]float64)
		ts.rows[i] = row
	}
	row[j] = v
}

func (ts *taskState) nnz() int64 {
	var n int64
	for _, row := range ts.rows {
		n += int64(len(row))
	}
	return n
}

// cString copies the engine-side view of a NUL-terminated argument.
func cString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// copyOut writes s into the caller's buffer of the given size,
// truncating if needed, always NUL-terminating, and returns the full
// length of s.
func copyOut(dst *byte, size int32, s string) int32 {
	if dst == nil || size <= 0 {
		return int32(len(s))
	}
	buf := unsafe.Slice(dst, size)
	n := copy(buf[:size-1], s)
	buf[n] = 0
	return int32(len(s))
}

// emit pushes one line of engine output into a linked stream slot.
func emit(usr uintptr, msg string) {
	if usr == 0 || ffi.StreamDispatch == nil {
		return
	}
	buf := append([]byte(msg), 0)
	ffi.StreamDispatch(usr, &buf[0])
}

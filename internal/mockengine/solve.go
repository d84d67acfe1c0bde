package mockengine

import (
	"fmt"

	"github.com/sdanfort/mosek-linux/internal/ffi"
	"github.com/sdanfort/mosek-linux/types"
)

// solveIterations is how many iterations the placeholder optimizer
// "needs"; an iteration limit below it terminates with
// ResTrmMaxIterations.
const solveIterations = 4

// solvePlan snapshots everything the solve loop reads, so callbacks fire
// without the engine lock held.
type solvePlan struct {
	task     ffi.Task
	logUsr   uintptr
	progress uintptr
	name     string
	numvar   int32
	numcon   int32
	nnz      int64
	simplex  bool
	maxiter  int32
	xx       []float64
	pobj     float64
	integer  bool
}

func iparValue(ts *taskState, p types.Iparam) int32 {
	if v, ok := ts.ipars[p]; ok {
		return v
	}
	return iparDefault(p)
}

// placeholderSolution puts every variable on its lower bound when finite,
// else its upper bound, else zero.
func placeholderSolution(ts *taskState) ([]float64, float64) {
	xx := make([]float64, ts.numvar)
	for j := int32(0); j < ts.numvar; j++ {
		switch ts.varBk[j] {
		case types.BoundkeyUp:
			xx[j] = ts.varBu[j]
		case types.BoundkeyFr:
			xx[j] = 0
		default:
			xx[j] = ts.varBl[j]
		}
	}
	var obj float64
	for j, c := range ts.c {
		obj += c * xx[j]
	}
	return xx, obj
}

func (e *Engine) planSolve(task ffi.Task, ts *taskState) solvePlan {
	xx, pobj := placeholderSolution(ts)
	opt := types.Optimizertype(iparValue(ts, types.IparamOptimizer))
	simplex := opt == types.OptimizerPrimalSimplex || opt == types.OptimizerDualSimplex || opt == types.OptimizerFreeSimplex
	maxiter := iparValue(ts, types.IparamIntpntMaxIterations)
	if simplex {
		maxiter = iparValue(ts, types.IparamSimMaxIterations)
	}
	return solvePlan{
		task:     task,
		logUsr:   ts.streams[types.StreamLog],
		progress: ts.progress,
		name:     ts.name,
		numvar:   ts.numvar,
		numcon:   ts.numcon,
		nnz:      ts.nnz(),
		simplex:  simplex,
		maxiter:  maxiter,
		xx:       xx,
		pobj:     pobj,
		integer:  ts.hasIntVars(),
	}
}

func (e *Engine) optimizeTrm(task ffi.Task, trm *int32) int32 {
	e.mu.Lock()
	if rc := e.enter("optimizetrm", task); rc != 0 {
		e.mu.Unlock()
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		e.mu.Unlock()
		return int32(types.ResErrNullTask)
	}
	plan := e.planSolve(task, ts)
	e.mu.Unlock()

	t := runSolve(plan)

	e.mu.Lock()
	applyOutcome(ts, outcomeOf(plan, t))
	e.mu.Unlock()
	*trm = int32(t)
	return 0
}

// fire dispatches one progress event and reports whether the callback
// requested a stop.
func fire(p solvePlan, code types.Callbackcode, iter int32) bool {
	if p.progress == 0 || ffi.ProgressDispatch == nil {
		return false
	}
	var dinf [types.NumDinf]float64
	dinf[types.DinfOptimizerTime] = 0.001 * float64(iter+1)
	dinf[types.DinfPresolveTime] = 0.0005
	dinf[types.DinfPrimalObj] = p.pobj
	dinf[types.DinfDualObj] = p.pobj
	var iinf [types.NumIinf]int32
	iinf[types.IinfIntpntIter] = iter
	var liinf [types.NumLiinf]int64
	liinf[types.LiinfIntpntFactorNumNz] = p.nnz
	return ffi.ProgressDispatch(p.task, p.progress, int32(code), &dinf[0], &iinf[0], &liinf[0]) != 0
}

func runSolve(p solvePlan) types.Rescode {
	emit(p.logUsr, fmt.Sprintf("Problem: %s  variables: %d  constraints: %d  nonzeros: %d", p.name, p.numvar, p.numcon, p.nnz))
	begin, step, end := types.CallbackBeginIntpnt, types.CallbackIntpnt, types.CallbackEndIntpnt
	if p.simplex {
		begin, step, end = types.CallbackBeginSimplex, types.CallbackSimplex, types.CallbackEndSimplex
		emit(p.logUsr, "Optimizer started: simplex.")
	} else {
		emit(p.logUsr, "Optimizer started: interior-point.")
	}
	if fire(p, types.CallbackBeginOptimizer, 0) {
		return types.ResTrmUserCallback
	}
	if fire(p, types.CallbackBeginPresolve, 0) {
		return types.ResTrmUserCallback
	}
	if fire(p, types.CallbackEndPresolve, 0) {
		return types.ResTrmUserCallback
	}
	if fire(p, begin, 0) {
		return types.ResTrmUserCallback
	}
	iters := int32(solveIterations)
	trm := types.ResOk
	if p.maxiter < iters {
		iters = p.maxiter
		trm = types.ResTrmMaxIterations
	}
	for i := int32(0); i < iters; i++ {
		emit(p.logUsr, fmt.Sprintf("%d  objective: %.6e", i, p.pobj))
		if fire(p, step, i+1) {
			return types.ResTrmUserCallback
		}
	}
	if trm != types.ResOk {
		emit(p.logUsr, "Optimizer terminated: maximum number of iterations reached.")
	} else {
		emit(p.logUsr, "Optimizer terminated. Time: 0.00")
	}
	if fire(p, end, iters) {
		return types.ResTrmUserCallback
	}
	if fire(p, types.CallbackEndOptimizer, iters) {
		return types.ResTrmUserCallback
	}
	return trm
}

// solveOutcome is the result a solve leaves behind, local or remote.
type solveOutcome struct {
	solsta types.Solsta
	prosta types.Prosta
	xx     []float64
	y      []float64
	pobj   float64
}

// outcomeOf maps a termination code onto statuses. Any early termination
// keeps the placeholder point but downgrades both statuses to unknown.
func outcomeOf(p solvePlan, trm types.Rescode) solveOutcome {
	o := solveOutcome{
		xx:   p.xx,
		y:    make([]float64, p.numcon),
		pobj: p.pobj,
	}
	if trm == types.ResOk {
		if p.integer {
			o.solsta = types.SolstaIntegerOptimal
		} else {
			o.solsta = types.SolstaOptimal
		}
		o.prosta = types.ProstaPrimAndDualFeas
	} else {
		o.solsta = types.SolstaUnknown
		o.prosta = types.ProstaUnknown
	}
	return o
}

func applyOutcome(ts *taskState, o solveOutcome) {
	ts.solved = true
	ts.solsta, ts.prosta = o.solsta, o.prosta
	ts.xx, ts.y, ts.pobj = o.xx, o.y, o.pobj
}

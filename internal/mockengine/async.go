package mockengine

import (
	"fmt"
	"sync"

	"github.com/sdanfort/mosek-linux/internal/ffi"
	"github.com/sdanfort/mosek-linux/types"
)

// job is one submitted remote optimization. plan is immutable after
// construction; everything else is guarded by mu.
type job struct {
	mu   sync.Mutex
	plan solvePlan
	done bool
	resp types.Rescode
	trm  types.Rescode
	sol  solveOutcome
}

func (e *Engine) asyncOptimize(task ffi.Task, address, accesstoken, token *byte) int32 {
	e.mu.Lock()
	if rc := e.enter("asyncoptimize", task); rc != 0 {
		e.mu.Unlock()
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		e.mu.Unlock()
		return int32(types.ResErrNullTask)
	}
	_, _ = cString(address), cString(accesstoken)
	e.jobSeq++
	tok := fmt.Sprintf("%032x", e.jobSeq)
	plan := e.planSolve(task, ts)
	// A remote solve never reaches local callbacks.
	plan.logUsr, plan.progress = 0, 0
	j := &job{plan: plan}
	e.jobs[tok] = j
	gate := e.gate
	e.mu.Unlock()

	err := e.pool.Submit(func() {
		if gate != nil {
			<-gate
		}
		trm := runSolve(j.plan)
		j.mu.Lock()
		if !j.done {
			j.done = true
			j.resp = types.ResOk
			j.trm = trm
			j.sol = outcomeOf(j.plan, trm)
		}
		j.mu.Unlock()
	})
	if err != nil {
		e.mu.Lock()
		delete(e.jobs, tok)
		e.mu.Unlock()
		return int32(types.ResErrSpace)
	}
	copyOut(token, ffi.TokenLen+1, tok)
	return 0
}

// lookupJob resolves a token under e.mu.
func (e *Engine) lookupJob(op string, task ffi.Task, token *byte) (*taskState, *job, int32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter(op, task); rc != 0 {
		return nil, nil, rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return nil, nil, int32(types.ResErrNullTask)
	}
	j, ok := e.jobs[cString(token)]
	if !ok {
		return nil, nil, ts.fail(types.ResErrArgumentType, "unknown job token")
	}
	return ts, j, 0
}

func (e *Engine) asyncPoll(task ffi.Task, address, accesstoken, token *byte, respavailable, resp, trm *int32) int32 {
	_, _ = cString(address), cString(accesstoken)
	_, j, rc := e.lookupJob("asyncpoll", task, token)
	if rc != 0 {
		return rc
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	if !j.done {
		*respavailable = 0
		return 0
	}
	*respavailable = 1
	*resp = int32(j.resp)
	*trm = int32(j.trm)
	return 0
}

func (e *Engine) asyncGetResult(task ffi.Task, address, accesstoken, token *byte, respavailable, resp, trm *int32) int32 {
	_, _ = cString(address), cString(accesstoken)
	ts, j, rc := e.lookupJob("asyncgetresult", task, token)
	if rc != 0 {
		return rc
	}
	j.mu.Lock()
	done := j.done
	r, t, sol := j.resp, j.trm, j.sol
	j.mu.Unlock()
	if !done {
		*respavailable = 0
		return 0
	}
	e.mu.Lock()
	applyOutcome(ts, sol)
	e.mu.Unlock()
	*respavailable = 1
	*resp = int32(r)
	*trm = int32(t)
	return 0
}

// asyncStop marks the job terminated by the user. A job that already
// finished keeps its result.
func (e *Engine) asyncStop(task ffi.Task, address, accesstoken, token *byte) int32 {
	_, _ = cString(address), cString(accesstoken)
	_, j, rc := e.lookupJob("asyncstop", task, token)
	if rc != 0 {
		return rc
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	if !j.done {
		j.done = true
		j.resp = types.ResOk
		j.trm = types.ResTrmUserCallback
		j.sol = outcomeOf(j.plan, types.ResTrmUserCallback)
	}
	return 0
}

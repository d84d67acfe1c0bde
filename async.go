package mosek

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/sdanfort/mosek-linux/internal/api"
	"github.com/sdanfort/mosek-linux/types"
)

// JobToken identifies an optimization job submitted to a remote solve
// server.
type JobToken string

// AsyncOptimize submits the task's problem to the solve server at
// address and returns without waiting. The returned token names the job
// in the other Async calls.
func (t *Task) AsyncOptimize(address, accessToken string) (JobToken, error) {
	h, err := t.handle("asyncoptimize")
	if err != nil {
		return "", err
	}
	token, err := api.AsyncOptimize(t.fns, h, address, accessToken)
	return JobToken(token), err
}

// AsyncPoll asks the server whether the job has finished. When done is
// true, resp and trm carry the solve's response and termination codes
// and the result can be fetched with AsyncGetResult.
func (t *Task) AsyncPoll(address, accessToken string, token JobToken) (done bool, resp, trm types.Rescode, err error) {
	h, err := t.handle("asyncpoll")
	if err != nil {
		return false, 0, 0, err
	}
	return api.AsyncPoll(t.fns, h, address, accessToken, string(token))
}

// AsyncGetResult fetches the finished job's result into the task, making
// its solutions available to the usual retrieval calls.
func (t *Task) AsyncGetResult(address, accessToken string, token JobToken) (done bool, resp, trm types.Rescode, err error) {
	h, err := t.handle("asyncgetresult")
	if err != nil {
		return false, 0, 0, err
	}
	return api.AsyncGetResult(t.fns, h, address, accessToken, string(token))
}

// AsyncStop cancels the job on the server. Stopping a job that already
// finished is a no-op.
func (t *Task) AsyncStop(address, accessToken string, token JobToken) error {
	h, err := t.handle("asyncstop")
	if err != nil {
		return err
	}
	return api.AsyncStop(t.fns, h, address, accessToken, string(token))
}

// AwaitAsync polls the job at the given interval until it finishes, then
// fetches the result into the task and returns the solve's response and
// termination codes. Cancelling ctx ends the wait early with ctx's
// error; the job keeps running server-side unless AsyncStop is called.
func (t *Task) AwaitAsync(ctx context.Context, address, accessToken string, token JobToken, interval time.Duration) (resp, trm types.Rescode, err error) {
	if interval <= 0 {
		return 0, 0, &types.ArgumentError{
			Op: "awaitasync", Param: "interval",
			Want: "a positive duration", Got: interval.String(),
		}
	}
	lim := rate.NewLimiter(rate.Every(interval), 1)
	for {
		if err := lim.Wait(ctx); err != nil {
			return 0, 0, err
		}
		done, _, _, err := t.AsyncPoll(address, accessToken, token)
		if err != nil {
			return 0, 0, err
		}
		if done {
			_, resp, trm, err = t.AsyncGetResult(address, accessToken, token)
			return resp, trm, err
		}
	}
}

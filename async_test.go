package mosek

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdanfort/mosek-linux/types"
)

const (
	testServer      = "http://solve.example:30080"
	testAccessToken = "0f3c-4a21"
)

func TestAsyncSolveRoundTrip(t *testing.T) {
	eng, task := withTask(t)
	seedLP(t, task)

	eng.HoldAsync()
	token, err := task.AsyncOptimize(testServer, testAccessToken)
	require.NoError(t, err)
	assert.Len(t, string(token), 32)

	done, _, _, err := task.AsyncPoll(testServer, testAccessToken, token)
	require.NoError(t, err)
	assert.False(t, done, "the job is gated and cannot have finished")

	// With the job still gated, a deadline must end the wait.
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	_, _, err = task.AwaitAsync(ctx, testServer, testAccessToken, token, 5*time.Millisecond)
	require.Error(t, err)

	eng.ReleaseAsync()
	resp, trm, err := task.AwaitAsync(context.Background(), testServer, testAccessToken, token, 2*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, types.ResOk, resp)
	assert.Equal(t, types.ResOk, trm)

	// The fetched result is in the task like a local solve's.
	xx, err := task.GetXx(SolItr)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 7}, xx)
	assert.GreaterOrEqual(t, eng.Calls("asyncpoll"), 2)
	assert.Equal(t, 1, eng.Calls("asyncgetresult"))
}

func TestAsyncStop(t *testing.T) {
	eng, task := withTask(t)
	seedLP(t, task)

	eng.HoldAsync()
	token, err := task.AsyncOptimize(testServer, testAccessToken)
	require.NoError(t, err)
	require.NoError(t, task.AsyncStop(testServer, testAccessToken, token))

	resp, trm, err := task.AwaitAsync(context.Background(), testServer, testAccessToken, token, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, types.ResOk, resp)
	assert.Equal(t, types.ResTrmUserCallback, trm)

	solsta, err := task.GetSolSta(SolItr)
	require.NoError(t, err)
	assert.Equal(t, SolstaUnknown, solsta, "a stopped job carries no optimal solution")
}

func TestAwaitAsyncValidatesInterval(t *testing.T) {
	eng, task := withTask(t)

	_, _, err := task.AwaitAsync(context.Background(), testServer, testAccessToken, "deadbeef", 0)
	var argErr *types.ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "awaitasync", argErr.Op)
	assert.Equal(t, "interval", argErr.Param)
	assert.Zero(t, eng.Calls("asyncpoll"))
}

func TestAsyncUnknownToken(t *testing.T) {
	_, task := withTask(t)
	seedLP(t, task)

	_, _, _, err := task.AsyncPoll(testServer, testAccessToken, JobToken("ffffffffffffffffffffffffffffffff"))
	require.Error(t, err)
	assert.Equal(t, types.ResErrArgumentType, types.CodeOf(err))
	var e *types.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "unknown job token", e.Msg)
}

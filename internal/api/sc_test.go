package api

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sdanfort/mosek-linux/types"
)

func TestScInitLazyAndOnce(t *testing.T) {
	eng, fns, _, task := newMockTask(t)
	t.Cleanup(func() { _ = ScTeardown(fns) })

	require.Zero(t, eng.ScInits(), "nothing initializes before the first handle")

	h1, err := ScCreate(fns, task)
	require.NoError(t, err)
	h2, err := ScCreate(fns, task)
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
	require.Equal(t, 1, eng.ScInits(), "init runs once no matter how many handles")

	require.NoError(t, ScDelete(fns, task, &h1))
	require.Zero(t, h1)
	require.NoError(t, ScDelete(fns, task, &h2))
	require.Zero(t, h2)
}

func TestScTeardownAllowsReinit(t *testing.T) {
	eng, fns, _, task := newMockTask(t)
	t.Cleanup(func() { _ = ScTeardown(fns) })

	h, err := ScCreate(fns, task)
	require.NoError(t, err)
	require.NoError(t, ScDelete(fns, task, &h))

	require.NoError(t, ScTeardown(fns))
	require.Equal(t, 1, eng.ScTeardowns())
	require.NoError(t, ScTeardown(fns), "a second teardown is a no-op")
	require.Equal(t, 1, eng.ScTeardowns())

	h, err = ScCreate(fns, task)
	require.NoError(t, err)
	require.Equal(t, 2, eng.ScInits(), "teardown resets the init flag")
	require.NoError(t, ScDelete(fns, task, &h))
}

func TestScPutEval(t *testing.T) {
	eng, fns, _, task := newMockTask(t)
	t.Cleanup(func() { _ = ScTeardown(fns) })
	require.NoError(t, AppendVars(fns, task, 2))

	h, err := ScCreate(fns, task)
	require.NoError(t, err)

	opro := []types.Scopr{types.ScoprEnt, types.ScoprPow}
	oprjo := []int32{0, 1}
	oprfo := []float64{1, 2}
	oprgo := []float64{0, 2}
	oprho := []float64{0, 1}

	require.NoError(t, ScPutEval(fns, task, h, opro, oprjo, oprfo, oprgo, oprho))
	require.Equal(t, 1, eng.Calls("scputeval"))

	t.Run("length mismatch", func(t *testing.T) {
		err := ScPutEval(fns, task, h, opro, oprjo[:1], oprfo, oprgo, oprho)
		var argErr *types.ArgumentError
		require.ErrorAs(t, err, &argErr)
		require.Equal(t, "oprjo", argErr.Param)
		require.Equal(t, 1, eng.Calls("scputeval"))
	})
	t.Run("operator outside registry", func(t *testing.T) {
		err := ScPutEval(fns, task, h, []types.Scopr{99, 0}, oprjo, oprfo, oprgo, oprho)
		var enumErr *types.EnumError
		require.ErrorAs(t, err, &enumErr)
		require.Equal(t, "scopr", enumErr.Set)
		require.Equal(t, 1, eng.Calls("scputeval"))
	})
	t.Run("variable index out of range", func(t *testing.T) {
		err := ScPutEval(fns, task, h, opro, []int32{0, 5}, oprfo, oprgo, oprho)
		require.Equal(t, types.ResErrIndexIsTooLarge, types.CodeOf(err))
	})

	require.NoError(t, ScDelete(fns, task, &h))
}

func TestScDeleteWrongTask(t *testing.T) {
	_, fns, env, task := newMockTask(t)
	t.Cleanup(func() { _ = ScTeardown(fns) })

	other, err := MakeTask(fns, env, 0, 0)
	require.NoError(t, err)
	defer func() { _ = DeleteTask(fns, &other) }()

	h, err := ScCreate(fns, task)
	require.NoError(t, err)

	err = ScDelete(fns, other, &h)
	require.Equal(t, types.ResErrInvalidTask, types.CodeOf(err))
	require.NotZero(t, h, "a refused delete leaves the handle alone")

	require.NoError(t, ScDelete(fns, task, &h))
	require.Zero(t, h)
}

package api

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sdanfort/mosek-linux/internal/ffi"
	"github.com/sdanfort/mosek-linux/internal/mockengine"
	"github.com/sdanfort/mosek-linux/types"
)

// newMockTask builds an in-process engine with one env and one task. The
// table is passed explicitly, so no global install is needed.
func newMockTask(t *testing.T) (*mockengine.Engine, *ffi.Funcs, ffi.Env, ffi.Task) {
	t.Helper()
	eng := mockengine.New()
	t.Cleanup(eng.Close)
	fns := eng.Funcs()

	env, err := MakeEnv(fns, "")
	require.NoError(t, err)
	task, err := MakeTask(fns, env, 0, 0)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = DeleteTask(fns, &task)
		_ = DeleteEnv(fns, &env)
	})
	return eng, fns, env, task
}

// seedProblem loads the two-variable test problem: maximize nothing in
// particular, x0 in [1,5], x1 below 7, c = (3, 2). The placeholder solve
// lands on x = (1, 7) with objective 17.
func seedProblem(t *testing.T, fns *ffi.Funcs, task ffi.Task) {
	t.Helper()
	require.NoError(t, AppendVars(fns, task, 2))
	require.NoError(t, AppendCons(fns, task, 1))
	require.NoError(t, PutCj(fns, task, 0, 3))
	require.NoError(t, PutCj(fns, task, 1, 2))
	require.NoError(t, PutVarBound(fns, task, 0, types.BoundkeyRa, 1, 5))
	require.NoError(t, PutVarBound(fns, task, 1, types.BoundkeyUp, math.Inf(-1), 7))
	require.NoError(t, PutAij(fns, task, 0, 0, 1))
}

func TestVersion(t *testing.T) {
	eng := mockengine.New()
	t.Cleanup(eng.Close)

	major, minor, revision, err := Version(eng.Funcs())
	require.NoError(t, err)
	require.EqualValues(t, 10, major)
	require.EqualValues(t, 2, minor)
	require.EqualValues(t, 0, revision)
}

func TestMakeTaskRejectsNegativeHints(t *testing.T) {
	eng, fns, env, _ := newMockTask(t)

	_, err := MakeTask(fns, env, -1, 0)
	var argErr *types.ArgumentError
	require.ErrorAs(t, err, &argErr)
	require.Equal(t, "maxnumcon", argErr.Param)
	require.Equal(t, 1, eng.Calls("maketask"), "the invalid hint must not reach the engine")
}

func TestAppendAndCounts(t *testing.T) {
	_, fns, _, task := newMockTask(t)

	require.NoError(t, AppendVars(fns, task, 3))
	require.NoError(t, AppendCons(fns, task, 2))

	nv, err := GetNumVar(fns, task)
	require.NoError(t, err)
	require.Equal(t, 3, nv)
	nc, err := GetNumCon(fns, task)
	require.NoError(t, err)
	require.Equal(t, 2, nc)
}

func TestDeleteTaskZeroesHandle(t *testing.T) {
	eng, fns, env, _ := newMockTask(t)

	task, err := MakeTask(fns, env, 0, 0)
	require.NoError(t, err)
	require.NotZero(t, task)

	require.NoError(t, DeleteTask(fns, &task))
	require.Zero(t, task)
	_ = eng
}

func TestErrorTranslation(t *testing.T) {
	t.Run("message from last error", func(t *testing.T) {
		eng, fns, _, task := newMockTask(t)
		eng.FailWith("appendvars", types.ResErrSpace, "out of space")

		err := AppendVars(fns, task, 1)
		var mskErr *types.Error
		require.ErrorAs(t, err, &mskErr)
		require.Equal(t, types.ResErrSpace, mskErr.Code)
		require.Equal(t, "MSK_RES_ERR_SPACE", mskErr.Sym)
		require.Equal(t, "out of space", mskErr.Msg)
		require.Equal(t, 1, eng.Calls("getlasterror64"))
		require.Equal(t, types.ResErrSpace, types.CodeOf(err))
	})

	t.Run("empty detail falls back to description", func(t *testing.T) {
		eng, fns, _, task := newMockTask(t)
		eng.FailWith("appendvars", types.ResErrSpace, "")

		err := AppendVars(fns, task, 1)
		var mskErr *types.Error
		require.ErrorAs(t, err, &mskErr)
		require.Equal(t, "err space", mskErr.Msg)
	})

	t.Run("last error unavailable falls back to description", func(t *testing.T) {
		eng, fns, _, task := newMockTask(t)
		eng.FailWith("appendvars", types.ResErrSpace, "out of space")
		eng.FailWith("getlasterror64", types.ResErrNullTask, "")

		err := AppendVars(fns, task, 1)
		var mskErr *types.Error
		require.ErrorAs(t, err, &mskErr)
		require.Equal(t, "err space", mskErr.Msg)
	})

	t.Run("no message anywhere", func(t *testing.T) {
		eng, fns, _, task := newMockTask(t)
		eng.FailWith("appendvars", types.ResErrSpace, "")
		eng.FailWith("getlasterror64", types.ResErrNullTask, "")
		eng.FailWith("getcodedesc", types.ResErrNullTask, "")

		err := AppendVars(fns, task, 1)
		var mskErr *types.Error
		require.ErrorAs(t, err, &mskErr)
		require.Equal(t, "no message", mskErr.Msg)
		require.Equal(t, "MSK_RES_ERR_SPACE", mskErr.Sym)
		require.EqualError(t, mskErr, "mosek: MSK_RES_ERR_SPACE (1051): no message")
	})
}

func TestTaskNameRoundTrip(t *testing.T) {
	eng, fns, _, task := newMockTask(t)

	name, err := GetTaskName(fns, task)
	require.NoError(t, err)
	require.Empty(t, name)

	require.NoError(t, PutTaskName(fns, task, "production-model"))
	name, err = GetTaskName(fns, task)
	require.NoError(t, err)
	require.Equal(t, "production-model", name)

	// names longer than any fixed buffer survive the length-then-fetch
	// idiom
	long := strings.Repeat("n", 3000)
	require.NoError(t, PutTaskName(fns, task, long))
	name, err = GetTaskName(fns, task)
	require.NoError(t, err)
	require.Equal(t, long, name)
	require.Equal(t, 3, eng.Calls("gettasknamelen"))
	require.Equal(t, 3, eng.Calls("gettaskname"))
}

func TestVarNameRoundTrip(t *testing.T) {
	_, fns, _, task := newMockTask(t)
	require.NoError(t, AppendVars(fns, task, 2))

	require.NoError(t, PutVarName(fns, task, 1, "x_total"))
	name, err := GetVarName(fns, task, 1)
	require.NoError(t, err)
	require.Equal(t, "x_total", name)

	_, err = GetVarName(fns, task, 5)
	require.Equal(t, types.ResErrIndexIsTooLarge, types.CodeOf(err))
	var mskErr *types.Error
	require.ErrorAs(t, err, &mskErr)
	require.Equal(t, "the variable index is out of range", mskErr.Msg)
}

func TestOptimizeSolution(t *testing.T) {
	_, fns, _, task := newMockTask(t)
	seedProblem(t, fns, task)

	trm, err := OptimizeTrm(fns, task)
	require.NoError(t, err)
	require.Equal(t, types.ResOk, trm)

	solsta, err := GetSolSta(fns, task, types.SolItr)
	require.NoError(t, err)
	require.Equal(t, types.SolstaOptimal, solsta)

	prosta, err := GetProSta(fns, task, types.SolItr)
	require.NoError(t, err)
	require.Equal(t, types.ProstaPrimAndDualFeas, prosta)

	xx := make([]float64, 2)
	require.NoError(t, GetXx(fns, task, types.SolItr, xx))
	require.Equal(t, []float64{1, 7}, xx)

	slice := make([]float64, 1)
	require.NoError(t, GetXxSlice(fns, task, types.SolItr, 1, 2, slice))
	require.Equal(t, []float64{7}, slice)

	y := make([]float64, 1)
	require.NoError(t, GetY(fns, task, types.SolItr, y))
	require.Equal(t, []float64{0}, y)

	obj, err := GetPrimalObj(fns, task, types.SolItr)
	require.NoError(t, err)
	require.InDelta(t, 17, obj, 1e-9)
}

func TestGetXxChecksLengthFirst(t *testing.T) {
	eng, fns, _, task := newMockTask(t)
	seedProblem(t, fns, task)
	_, err := OptimizeTrm(fns, task)
	require.NoError(t, err)

	short := make([]float64, 1)
	err = GetXx(fns, task, types.SolItr, short)
	var argErr *types.ArgumentError
	require.ErrorAs(t, err, &argErr)
	require.Equal(t, "length 2", argErr.Want)
	require.Zero(t, eng.Calls("getxx"), "a short buffer must never reach the engine")
	require.Positive(t, eng.Calls("getnumvar"))
}

func TestSolutionUndefinedBeforeOptimize(t *testing.T) {
	_, fns, _, task := newMockTask(t)
	seedProblem(t, fns, task)

	xx := make([]float64, 2)
	err := GetXx(fns, task, types.SolItr, xx)
	require.Equal(t, types.ResErrUndefinedSolution, types.CodeOf(err))
	var mskErr *types.Error
	require.ErrorAs(t, err, &mskErr)
	require.Contains(t, mskErr.Msg, "not defined")
}

func TestIntegerSolutionRequiresIntVars(t *testing.T) {
	_, fns, _, task := newMockTask(t)
	seedProblem(t, fns, task)

	_, err := OptimizeTrm(fns, task)
	require.NoError(t, err)
	_, err = GetSolSta(fns, task, types.SolItg)
	require.Equal(t, types.ResErrUndefinedSolution, types.CodeOf(err))

	require.NoError(t, PutVarType(fns, task, 0, types.VartypeInt))
	_, err = OptimizeTrm(fns, task)
	require.NoError(t, err)
	solsta, err := GetSolSta(fns, task, types.SolItg)
	require.NoError(t, err)
	require.Equal(t, types.SolstaIntegerOptimal, solsta)
}

func TestMaxIterationsTermination(t *testing.T) {
	_, fns, _, task := newMockTask(t)
	seedProblem(t, fns, task)

	require.NoError(t, PutIntParam(fns, task, types.IparamIntpntMaxIterations, 2))
	trm, err := OptimizeTrm(fns, task)
	require.NoError(t, err, "hitting the iteration limit is a result, not a failure")
	require.Equal(t, types.ResTrmMaxIterations, trm)
	require.Equal(t, types.ResponseTrm, trm.Type())
}

func TestProblemEditing(t *testing.T) {
	_, fns, _, task := newMockTask(t)
	require.NoError(t, AppendVars(fns, task, 3))
	require.NoError(t, AppendCons(fns, task, 2))

	require.NoError(t, PutCList(fns, task, []int32{0, 2}, []float64{1.5, -2}))
	require.NoError(t, PutARow(fns, task, 0, []int32{0, 1}, []float64{1, 1}))
	require.NoError(t, PutACol(fns, task, 2, []int32{0, 1}, []float64{3, 4}))
	require.NoError(t, PutAij(fns, task, 1, 0, 9))

	require.NoError(t, PutVarBoundList(fns, task,
		[]int32{0, 2},
		[]types.Boundkey{types.BoundkeyFx, types.BoundkeyFx},
		[]float64{2, 3}, []float64{2, 3}))
	require.NoError(t, PutConBound(fns, task, 0, types.BoundkeyUp, math.Inf(-1), 10))
	require.NoError(t, PutConBoundSlice(fns, task, 0, 2,
		[]types.Boundkey{types.BoundkeyFr, types.BoundkeyFr},
		make([]float64, 2), make([]float64, 2)))

	require.NoError(t, PutObjSense(fns, task, types.ObjsenseMaximize))
	sense, err := GetObjSense(fns, task)
	require.NoError(t, err)
	require.Equal(t, types.ObjsenseMaximize, sense)

	trm, err := OptimizeTrm(fns, task)
	require.NoError(t, err)
	require.Equal(t, types.ResOk, trm)

	xx := make([]float64, 3)
	require.NoError(t, GetXx(fns, task, types.SolItr, xx))
	require.Equal(t, []float64{2, 0, 3}, xx)
	obj, err := GetPrimalObj(fns, task, types.SolItr)
	require.NoError(t, err)
	require.InDelta(t, 1.5*2-2*3, obj, 1e-9)
}

func TestPutCListLengthMismatch(t *testing.T) {
	eng, fns, _, task := newMockTask(t)
	require.NoError(t, AppendVars(fns, task, 2))

	err := PutCList(fns, task, []int32{0, 1}, []float64{1})
	var argErr *types.ArgumentError
	require.ErrorAs(t, err, &argErr)
	require.Zero(t, eng.Calls("putclist"))
}

func TestPutVarBoundSliceValidation(t *testing.T) {
	eng, fns, _, task := newMockTask(t)
	require.NoError(t, AppendVars(fns, task, 3))

	bl, bu := make([]float64, 2), make([]float64, 2)

	t.Run("bad bound key", func(t *testing.T) {
		err := PutVarBoundSlice(fns, task, 0, 2, []types.Boundkey{types.BoundkeyLo, 9}, bl, bu)
		var enumErr *types.EnumError
		require.ErrorAs(t, err, &enumErr)
		require.Zero(t, eng.Calls("putvarboundslice"))
	})
	t.Run("short data slice", func(t *testing.T) {
		err := PutVarBoundSlice(fns, task, 0, 3, []types.Boundkey{types.BoundkeyFr, types.BoundkeyFr, types.BoundkeyFr}, bl, bu)
		var argErr *types.ArgumentError
		require.ErrorAs(t, err, &argErr)
		require.Zero(t, eng.Calls("putvarboundslice"))
	})
	t.Run("inverted range", func(t *testing.T) {
		err := PutVarBoundSlice(fns, task, 2, 0, nil, nil, nil)
		require.Error(t, err)
		require.Zero(t, eng.Calls("putvarboundslice"))
	})
	t.Run("valid", func(t *testing.T) {
		err := PutVarBoundSlice(fns, task, 0, 2, []types.Boundkey{types.BoundkeyLo, types.BoundkeyLo}, []float64{1, 2}, bu)
		require.NoError(t, err)
		require.Equal(t, 1, eng.Calls("putvarboundslice"))
	})
}

func TestVarTypeRoundTrip(t *testing.T) {
	eng, fns, _, task := newMockTask(t)
	require.NoError(t, AppendVars(fns, task, 2))

	require.NoError(t, PutVarTypeList(fns, task, []int32{0, 1},
		[]types.Vartype{types.VartypeInt, types.VartypeCont}))

	out := make([]types.Vartype, 2)
	require.NoError(t, GetVarTypeList(fns, task, []int32{0, 1}, out))
	require.Equal(t, []types.Vartype{types.VartypeInt, types.VartypeCont}, out)

	err := PutVarType(fns, task, 0, types.Vartype(5))
	var enumErr *types.EnumError
	require.ErrorAs(t, err, &enumErr)
	require.Zero(t, eng.Calls("putvartype"))
}

func TestParams(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		_, fns, _, task := newMockTask(t)
		v, err := GetIntParam(fns, task, types.IparamLog)
		require.NoError(t, err)
		require.EqualValues(t, 10, v, "defaults are visible before any put")

		require.NoError(t, PutIntParam(fns, task, types.IparamLog, 4))
		v, err = GetIntParam(fns, task, types.IparamLog)
		require.NoError(t, err)
		require.EqualValues(t, 4, v)
	})

	t.Run("double", func(t *testing.T) {
		_, fns, _, task := newMockTask(t)
		v, err := GetDouParam(fns, task, types.DparamIntpntTolRelGap)
		require.NoError(t, err)
		require.Equal(t, 1e-8, v)

		require.NoError(t, PutDouParam(fns, task, types.DparamOptimizerMaxTime, 30.5))
		v, err = GetDouParam(fns, task, types.DparamOptimizerMaxTime)
		require.NoError(t, err)
		require.Equal(t, 30.5, v)
	})

	t.Run("string", func(t *testing.T) {
		_, fns, _, task := newMockTask(t)
		s, err := GetStrParam(fns, task, types.SparamParamCommentSign)
		require.NoError(t, err)
		require.Equal(t, "%%", s)

		require.NoError(t, PutStrParam(fns, task, types.SparamDataFileName, "prod.task"))
		s, err = GetStrParam(fns, task, types.SparamDataFileName)
		require.NoError(t, err)
		require.Equal(t, "prod.task", s)
	})

	t.Run("unknown index rejected before the call", func(t *testing.T) {
		eng, fns, _, task := newMockTask(t)
		err := PutIntParam(fns, task, types.Iparam(99), 1)
		var enumErr *types.EnumError
		require.ErrorAs(t, err, &enumErr)
		require.Zero(t, eng.Calls("putintparam"))
	})

	t.Run("engine rejects negative iteration limit", func(t *testing.T) {
		_, fns, _, task := newMockTask(t)
		err := PutIntParam(fns, task, types.IparamIntpntMaxIterations, -1)
		require.Equal(t, types.ResErrParamIsTooSmall, types.CodeOf(err))
	})
}

func TestGetStrParamRetriesOnTruncation(t *testing.T) {
	eng, fns, _, task := newMockTask(t)

	long := strings.Repeat("x", 2000)
	require.NoError(t, PutStrParam(fns, task, types.SparamDataFileName, long))

	got, err := GetStrParam(fns, task, types.SparamDataFileName)
	require.NoError(t, err)
	require.Equal(t, long, got)
	require.Equal(t, 2, eng.Calls("getstrparam"), "a value beyond the fixed buffer needs one retry")
}

func TestPutCjWarningStillApplies(t *testing.T) {
	_, fns, _, task := newMockTask(t)
	require.NoError(t, AppendVars(fns, task, 1))
	require.NoError(t, PutVarBound(fns, task, 0, types.BoundkeyFx, 1, 1))

	err := PutCj(fns, task, 0, 1e16)
	require.Error(t, err)
	require.Equal(t, types.ResWrnLargeCj, types.CodeOf(err))
	require.True(t, types.CodeOf(err).IsWarning())
	var mskErr *types.Error
	require.ErrorAs(t, err, &mskErr)
	require.Equal(t, "the objective coefficient is very large", mskErr.Msg)

	trm, err := OptimizeTrm(fns, task)
	require.NoError(t, err)
	require.Equal(t, types.ResOk, trm)
	obj, err := GetPrimalObj(fns, task, types.SolItr)
	require.NoError(t, err)
	require.Equal(t, 1e16, obj, "the coefficient is applied despite the warning")
}

func TestCloneTask(t *testing.T) {
	_, fns, _, task := newMockTask(t)
	seedProblem(t, fns, task)
	_, err := OptimizeTrm(fns, task)
	require.NoError(t, err)

	clone, err := CloneTask(fns, task)
	require.NoError(t, err)
	defer func() { _ = DeleteTask(fns, &clone) }()

	nv, err := GetNumVar(fns, clone)
	require.NoError(t, err)
	require.Equal(t, 2, nv)

	// the solution travels with the clone
	xx := make([]float64, 2)
	require.NoError(t, GetXx(fns, clone, types.SolItr, xx))
	require.Equal(t, []float64{1, 7}, xx)

	// edits to the clone leave the original alone
	require.NoError(t, PutCj(fns, clone, 0, 100))
	_, err = OptimizeTrm(fns, clone)
	require.NoError(t, err)
	cloneObj, err := GetPrimalObj(fns, clone, types.SolItr)
	require.NoError(t, err)
	require.InDelta(t, 114, cloneObj, 1e-9)

	origObj, err := GetPrimalObj(fns, task, types.SolItr)
	require.NoError(t, err)
	require.InDelta(t, 17, origObj, 1e-9)
}

func TestWriteReadData(t *testing.T) {
	eng, fns, env, task := newMockTask(t)
	seedProblem(t, fns, task)
	require.NoError(t, PutTaskName(fns, task, "lp1"))
	_, err := OptimizeTrm(fns, task)
	require.NoError(t, err)

	require.NoError(t, WriteData(fns, task, "lp1.task"))
	require.True(t, eng.HasFile("lp1.task"))

	fresh, err := MakeTask(fns, env, 0, 0)
	require.NoError(t, err)
	defer func() { _ = DeleteTask(fns, &fresh) }()

	require.NoError(t, ReadData(fns, fresh, "lp1.task"))
	nv, err := GetNumVar(fns, fresh)
	require.NoError(t, err)
	require.Equal(t, 2, nv)
	name, err := GetTaskName(fns, fresh)
	require.NoError(t, err)
	require.Equal(t, "lp1", name)

	// problem data travels, the solution does not
	xx := make([]float64, 2)
	err = GetXx(fns, fresh, types.SolItr, xx)
	require.Equal(t, types.ResErrUndefinedSolution, types.CodeOf(err))

	trm, err := OptimizeTrm(fns, fresh)
	require.NoError(t, err)
	require.Equal(t, types.ResOk, trm)
	require.NoError(t, GetXx(fns, fresh, types.SolItr, xx))
	require.Equal(t, []float64{1, 7}, xx)

	t.Run("extension required", func(t *testing.T) {
		err := WriteData(fns, task, "noext")
		require.Equal(t, types.ResErrDataFileExt, types.CodeOf(err))
	})
	t.Run("missing file", func(t *testing.T) {
		err := ReadData(fns, fresh, "absent.task")
		require.Equal(t, types.ResErrFileOpen, types.CodeOf(err))
	})
}

func TestAsyncOptimize(t *testing.T) {
	const addr, atok = "solve.example.com:30080", "secret"
	eng, fns, _, task := newMockTask(t)
	seedProblem(t, fns, task)

	eng.HoldAsync()
	token, err := AsyncOptimize(fns, task, addr, atok)
	require.NoError(t, err)
	require.Len(t, token, ffi.TokenLen)

	done, _, _, err := AsyncPoll(fns, task, addr, atok, token)
	require.NoError(t, err)
	require.False(t, done, "the job is gated and cannot have finished")

	eng.ReleaseAsync()
	require.Eventually(t, func() bool {
		done, _, _, err := AsyncPoll(fns, task, addr, atok, token)
		return err == nil && done
	}, time.Second, 5*time.Millisecond)

	done, resp, trm, err := AsyncGetResult(fns, task, addr, atok, token)
	require.NoError(t, err)
	require.True(t, done)
	require.Equal(t, types.ResOk, resp)
	require.Equal(t, types.ResOk, trm)

	xx := make([]float64, 2)
	require.NoError(t, GetXx(fns, task, types.SolItr, xx))
	require.Equal(t, []float64{1, 7}, xx)
}

func TestAsyncStop(t *testing.T) {
	const addr, atok = "solve.example.com:30080", "secret"
	eng, fns, _, task := newMockTask(t)
	seedProblem(t, fns, task)

	eng.HoldAsync()
	token, err := AsyncOptimize(fns, task, addr, atok)
	require.NoError(t, err)

	require.NoError(t, AsyncStop(fns, task, addr, atok, token))
	done, _, trm, err := AsyncPoll(fns, task, addr, atok, token)
	require.NoError(t, err)
	require.True(t, done)
	require.Equal(t, types.ResTrmUserCallback, trm)
	eng.ReleaseAsync()

	done, _, _, err = AsyncGetResult(fns, task, addr, atok, token)
	require.NoError(t, err)
	require.True(t, done)
	solsta, err := GetSolSta(fns, task, types.SolItr)
	require.NoError(t, err)
	require.Equal(t, types.SolstaUnknown, solsta, "a stopped job reports no claimed status")

	// stopping again is a no-op
	require.NoError(t, AsyncStop(fns, task, addr, atok, token))
}

func TestAsyncUnknownToken(t *testing.T) {
	const addr, atok = "solve.example.com:30080", "secret"
	_, fns, _, task := newMockTask(t)

	_, _, _, err := AsyncPoll(fns, task, addr, atok, strings.Repeat("0", ffi.TokenLen))
	require.Equal(t, types.ResErrArgumentType, types.CodeOf(err))
	var mskErr *types.Error
	require.ErrorAs(t, err, &mskErr)
	require.Equal(t, "unknown job token", mskErr.Msg)
}

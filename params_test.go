package mosek

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdanfort/mosek-linux/types"
)

func TestTypedParams(t *testing.T) {
	_, task := withTask(t)

	require.NoError(t, task.PutIntParam(types.IparamLog, 4))
	iv, err := task.GetIntParam(types.IparamLog)
	require.NoError(t, err)
	assert.Equal(t, int32(4), iv)

	require.NoError(t, task.PutDouParam(types.DparamOptimizerMaxTime, 30.5))
	dv, err := task.GetDouParam(types.DparamOptimizerMaxTime)
	require.NoError(t, err)
	assert.Equal(t, 30.5, dv)

	require.NoError(t, task.PutStrParam(types.SparamDataFileName, "prod.task"))
	sv, err := task.GetStrParam(types.SparamDataFileName)
	require.NoError(t, err)
	assert.Equal(t, "prod.task", sv)
}

func TestPutParamByName(t *testing.T) {
	_, task := withTask(t)

	require.NoError(t, task.PutParam("MSK_IPAR_LOG", "7"))
	iv, err := task.GetIntParam(types.IparamLog)
	require.NoError(t, err)
	assert.Equal(t, int32(7), iv)

	require.NoError(t, task.PutParam("MSK_DPAR_INTPNT_TOL_REL_GAP", "1e-9"))
	dv, err := task.GetDouParam(types.DparamIntpntTolRelGap)
	require.NoError(t, err)
	assert.Equal(t, 1e-9, dv)

	require.NoError(t, task.PutParam("MSK_SPAR_DATA_FILE_NAME", "prod.task"))
	sv, err := task.GetStrParam(types.SparamDataFileName)
	require.NoError(t, err)
	assert.Equal(t, "prod.task", sv)
}

func TestPutParamSymbolicValues(t *testing.T) {
	_, task := withTask(t)

	require.NoError(t, task.PutParam("MSK_IPAR_OPTIMIZER", "MSK_OPTIMIZER_PRIMAL_SIMPLEX"))
	iv, err := task.GetIntParam(types.IparamOptimizer)
	require.NoError(t, err)
	assert.Equal(t, int32(types.OptimizerPrimalSimplex), iv)

	// The bare member name works too.
	require.NoError(t, task.PutParam("MSK_IPAR_OPTIMIZER", "free_simplex"))
	iv, err = task.GetIntParam(types.IparamOptimizer)
	require.NoError(t, err)
	assert.Equal(t, int32(types.OptimizerFreeSimplex), iv)

	require.NoError(t, task.PutParam("MSK_IPAR_PRESOLVE_USE", "MSK_PRESOLVE_MODE_OFF"))
	require.NoError(t, task.PutParam("MSK_IPAR_LOG_INTPNT", "MSK_OFF"))
	iv, err = task.GetIntParam(types.IparamLogIntpnt)
	require.NoError(t, err)
	assert.Equal(t, int32(0), iv)
	require.NoError(t, task.PutParam("MSK_IPAR_LOG_INTPNT", "MSK_ON"))
	iv, err = task.GetIntParam(types.IparamLogIntpnt)
	require.NoError(t, err)
	assert.Equal(t, int32(1), iv)
}

func TestPutParamRejectsBadNames(t *testing.T) {
	eng, task := withTask(t)

	var argErr *types.ArgumentError

	err := task.PutParam("IPAR_LOG", "1")
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "parname", argErr.Param)
	assert.Contains(t, argErr.Want, "MSK_IPAR_")

	err = task.PutParam("MSK_IPAR_NO_SUCH_PARAM", "1")
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "parname", argErr.Param)
	var enumErr *types.EnumError
	assert.ErrorAs(t, err, &enumErr)

	err = task.PutParam("MSK_IPAR_LOG", "verbose")
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "parvalue", argErr.Param)

	err = task.PutParam("MSK_DPAR_OPTIMIZER_MAX_TIME", "fast")
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "parvalue", argErr.Param)

	assert.Zero(t, eng.Calls("putintparam"))
	assert.Zero(t, eng.Calls("putdouparam"))
}

func TestReadParamString(t *testing.T) {
	_, task := withTask(t)

	err := task.ReadParamString(`
MSK_IPAR_LOG 1                     %% keep it quiet
MSK_DPAR_INTPNT_TOL_REL_GAP 1e-9

%% solver selection
MSK_IPAR_OPTIMIZER MSK_OPTIMIZER_PRIMAL_SIMPLEX
MSK_SPAR_DATA_FILE_NAME prod.task
`)
	require.NoError(t, err)

	iv, err := task.GetIntParam(types.IparamLog)
	require.NoError(t, err)
	assert.Equal(t, int32(1), iv)
	dv, err := task.GetDouParam(types.DparamIntpntTolRelGap)
	require.NoError(t, err)
	assert.Equal(t, 1e-9, dv)
	iv, err = task.GetIntParam(types.IparamOptimizer)
	require.NoError(t, err)
	assert.Equal(t, int32(types.OptimizerPrimalSimplex), iv)
	sv, err := task.GetStrParam(types.SparamDataFileName)
	require.NoError(t, err)
	assert.Equal(t, "prod.task", sv)
}

func TestReadParamStringMalformed(t *testing.T) {
	_, task := withTask(t)

	err := task.ReadParamString("MSK_IPAR_LOG\n")
	var argErr *types.ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "readparamstring", argErr.Op)
	assert.Contains(t, argErr.Got, "line 1")

	err = task.ReadParamString("MSK_IPAR_LOG 1\nMSK_IPAR_LOG 1 2\n")
	require.ErrorAs(t, err, &argErr)
	assert.Contains(t, argErr.Got, "line 2")

	// A rejected assignment reports its line.
	err = task.ReadParamString("MSK_IPAR_LOG 1\n\nMSK_IPAR_LOG squelch\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.ErrorAs(t, err, &argErr)
	assert.Equal(t, "parvalue", argErr.Param)
}

func TestReadParamStringCustomCommentSign(t *testing.T) {
	_, task := withTask(t)

	require.NoError(t, task.PutStrParam(types.SparamParamCommentSign, "#"))
	err := task.ReadParamString("MSK_IPAR_LOG 3 # trailing note\n# full line\n")
	require.NoError(t, err)

	iv, err := task.GetIntParam(types.IparamLog)
	require.NoError(t, err)
	assert.Equal(t, int32(3), iv)
}

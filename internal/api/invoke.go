package api

import (
	"sort"

	"github.com/sdanfort/mosek-linux/internal/ffi"
	"github.com/sdanfort/mosek-linux/types"
)

// The dynamic operation table. Each entry couples an argument contract
// with the closure that runs the call on bound values; Invoke is the one
// validate-convert-call routine over it. The closures receive values in
// the exact kinds the converters produce (int32 for ints and enums,
// float64, *byte for strings, []float64/[]int32 for buffers) and delegate
// to the same typed wrappers the static methods use, so both surfaces
// share every length and index check.
type opEntry struct {
	sig Sig
	run func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error)
}

var taskOps = map[string]opEntry{}

func op(name string, run func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error), params ...Param) {
	if _, ok := taskOps[name]; ok {
		panic("operation " + name + " bound twice")
	}
	taskOps[name] = opEntry{sig: Sig{Op: name, Params: params}, run: run}
}

func param(name string, c Converter) Param { return Param{Name: name, Conv: c} }

// Invoke runs the named operation with dynamically typed arguments. The
// returned value is the operation's result, or nil for operations that
// only report status. Buffer arguments follow the borrow-or-convert rule;
// converted temporaries are written back to the caller's slice only after
// the native call succeeded.
func Invoke(fns *ffi.Funcs, task ffi.Task, opname string, args ...any) (any, error) {
	e, ok := taskOps[opname]
	if !ok {
		return nil, &types.ArgumentError{Op: opname, Want: "a bound operation", Got: "no such operation"}
	}
	vals, finish, err := Bind(e.sig, args)
	if err != nil {
		return nil, err
	}
	out, err := e.run(fns, task, vals)
	if err != nil {
		return nil, err
	}
	if finish != nil {
		finish()
	}
	return out, nil
}

// Ops returns the names of every invokable operation, sorted.
func Ops() []string {
	names := make([]string, 0, len(taskOps))
	for name := range taskOps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	op("appendvars", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return nil, AppendVars(fns, task, int(vals[0].(int32)))
	}, param("num", Int()))

	op("appendcons", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return nil, AppendCons(fns, task, int(vals[0].(int32)))
	}, param("num", Int()))

	op("putcj", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return nil, PutCj(fns, task, int(vals[0].(int32)), vals[1].(float64))
	}, param("j", Int()), param("cj", Float()))

	op("putclist", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return nil, PutCList(fns, task, vals[0].([]int32), vals[1].([]float64))
	}, param("subj", IntSlice()), param("val", F64Slice()))

	op("putaij", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return nil, PutAij(fns, task, int(vals[0].(int32)), int(vals[1].(int32)), vals[2].(float64))
	}, param("i", Int()), param("j", Int()), param("aij", Float()))

	op("putarow", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return nil, PutARow(fns, task, int(vals[0].(int32)), vals[1].([]int32), vals[2].([]float64))
	}, param("i", Int()), param("subi", IntSlice()), param("vali", F64Slice()))

	op("putacol", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return nil, PutACol(fns, task, int(vals[0].(int32)), vals[1].([]int32), vals[2].([]float64))
	}, param("j", Int()), param("subi", IntSlice()), param("vali", F64Slice()))

	op("putvarbound", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return nil, PutVarBound(fns, task, int(vals[0].(int32)), types.Boundkey(vals[1].(int32)), vals[2].(float64), vals[3].(float64))
	}, param("j", Int()), param("bk", Enum[types.Boundkey](types.Boundkeys)), param("bl", Float()), param("bu", Float()))

	op("putconbound", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return nil, PutConBound(fns, task, int(vals[0].(int32)), types.Boundkey(vals[1].(int32)), vals[2].(float64), vals[3].(float64))
	}, param("i", Int()), param("bk", Enum[types.Boundkey](types.Boundkeys)), param("bl", Float()), param("bu", Float()))

	op("putvartype", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return nil, PutVarType(fns, task, int(vals[0].(int32)), types.Vartype(vals[1].(int32)))
	}, param("j", Int()), param("vartype", Enum[types.Vartype](types.Vartypes)))

	op("putobjsense", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return nil, PutObjSense(fns, task, types.Objsense(vals[0].(int32)))
	}, param("sense", Enum[types.Objsense](types.Objsenses)))

	op("getobjsense", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return GetObjSense(fns, task)
	})

	op("getnumvar", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return GetNumVar(fns, task)
	})

	op("getnumcon", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return GetNumCon(fns, task)
	})

	op("puttaskname", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return nil, PutTaskName(fns, task, goString(vals[0].(*byte)))
	}, param("taskname", Str()))

	op("gettaskname", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return GetTaskName(fns, task)
	})

	op("putvarname", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return nil, PutVarName(fns, task, int(vals[0].(int32)), goString(vals[1].(*byte)))
	}, param("j", Int()), param("varname", Str()))

	op("getvarname", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return GetVarName(fns, task, int(vals[0].(int32)))
	}, param("j", Int()))

	op("optimizetrm", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return OptimizeTrm(fns, task)
	})

	op("getsolsta", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return GetSolSta(fns, task, types.Soltype(vals[0].(int32)))
	}, param("whichsol", Enum[types.Soltype](types.Soltypes)))

	op("getprosta", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return GetProSta(fns, task, types.Soltype(vals[0].(int32)))
	}, param("whichsol", Enum[types.Soltype](types.Soltypes)))

	op("getxx", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return nil, GetXx(fns, task, types.Soltype(vals[0].(int32)), vals[1].([]float64))
	}, param("whichsol", Enum[types.Soltype](types.Soltypes)), param("xx", F64Slice()))

	op("getxxslice", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return nil, GetXxSlice(fns, task, types.Soltype(vals[0].(int32)), int(vals[1].(int32)), int(vals[2].(int32)), vals[3].([]float64))
	}, param("whichsol", Enum[types.Soltype](types.Soltypes)), param("first", Int()), param("last", Int()), param("xx", F64Slice()))

	op("gety", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return nil, GetY(fns, task, types.Soltype(vals[0].(int32)), vals[1].([]float64))
	}, param("whichsol", Enum[types.Soltype](types.Soltypes)), param("y", F64Slice()))

	op("getprimalobj", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return GetPrimalObj(fns, task, types.Soltype(vals[0].(int32)))
	}, param("whichsol", Enum[types.Soltype](types.Soltypes)))

	op("putintparam", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return nil, PutIntParam(fns, task, types.Iparam(vals[0].(int32)), vals[1].(int32))
	}, param("param", Enum[types.Iparam](types.Iparams)), param("parvalue", Int()))

	op("getintparam", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return GetIntParam(fns, task, types.Iparam(vals[0].(int32)))
	}, param("param", Enum[types.Iparam](types.Iparams)))

	op("putdouparam", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return nil, PutDouParam(fns, task, types.Dparam(vals[0].(int32)), vals[1].(float64))
	}, param("param", Enum[types.Dparam](types.Dparams)), param("parvalue", Float()))

	op("getdouparam", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return GetDouParam(fns, task, types.Dparam(vals[0].(int32)))
	}, param("param", Enum[types.Dparam](types.Dparams)))

	op("putstrparam", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return nil, PutStrParam(fns, task, types.Sparam(vals[0].(int32)), goString(vals[1].(*byte)))
	}, param("param", Enum[types.Sparam](types.Sparams)), param("parvalue", Str()))

	op("getstrparam", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return GetStrParam(fns, task, types.Sparam(vals[0].(int32)))
	}, param("param", Enum[types.Sparam](types.Sparams)))

	op("writedata", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return nil, WriteData(fns, task, goString(vals[0].(*byte)))
	}, param("filename", Str()))

	op("readdata", func(fns *ffi.Funcs, task ffi.Task, vals []any) (any, error) {
		return nil, ReadData(fns, task, goString(vals[0].(*byte)))
	}, param("filename", Str()))
}

// Package api implements the call layer over the native function table:
// argument contracts, buffer bridging, callback dispatch and status
// translation. Every function takes the table explicitly, so the whole
// layer runs unchanged against the loaded shared library or against an
// in-process engine injected for tests.
package api

import (
	"github.com/sdanfort/mosek-linux/internal/ffi"
	"github.com/sdanfort/mosek-linux/types"
)

// MakeEnv creates a native environment. dbgfile, when non-empty, names a
// file the engine logs memory debug information to.
func MakeEnv(fns *ffi.Funcs, dbgfile string) (ffi.Env, error) {
	var dbg *byte
	if dbgfile != "" {
		p, err := cstr("makeenv", "dbgfile", dbgfile)
		if err != nil {
			return 0, err
		}
		dbg = p
	}
	var env ffi.Env
	if rc := fns.MakeEnv(&env, dbg); rc != 0 {
		return 0, envError(fns, rc)
	}
	return env, nil
}

// DeleteEnv destroys the environment and zeroes the handle.
func DeleteEnv(fns *ffi.Funcs, env *ffi.Env) error {
	if rc := fns.DeleteEnv(env); rc != 0 {
		return envError(fns, rc)
	}
	return nil
}

func PutLicensePath(fns *ffi.Funcs, env ffi.Env, path string) error {
	p, err := cstr("putlicensepath", "licensepath", path)
	if err != nil {
		return err
	}
	if rc := fns.PutLicensePath(env, p); rc != 0 {
		return envError(fns, rc)
	}
	return nil
}

// CheckInAll returns every checked-out license feature to the server.
func CheckInAll(fns *ffi.Funcs, env ffi.Env) error {
	if rc := fns.CheckInAll(env); rc != 0 {
		return envError(fns, rc)
	}
	return nil
}

// Version reports the engine's version triple.
func Version(fns *ffi.Funcs) (major, minor, revision int32, err error) {
	if rc := fns.GetVersion(&major, &minor, &revision); rc != 0 {
		return 0, 0, 0, envError(fns, rc)
	}
	return major, minor, revision, nil
}

// MakeTask creates a task in env. maxnumcon and maxnumvar are capacity
// hints, not limits.
func MakeTask(fns *ffi.Funcs, env ffi.Env, maxnumcon, maxnumvar int) (ffi.Task, error) {
	con, err := idx32("maketask", "maxnumcon", maxnumcon)
	if err != nil {
		return 0, err
	}
	vr, err := idx32("maketask", "maxnumvar", maxnumvar)
	if err != nil {
		return 0, err
	}
	var task ffi.Task
	if rc := fns.MakeTask(env, con, vr, &task); rc != 0 {
		return 0, envError(fns, rc)
	}
	return task, nil
}

// DeleteTask destroys the task and zeroes the handle. The failure path
// cannot interrogate the task, so only the static code description is
// attached.
func DeleteTask(fns *ffi.Funcs, task *ffi.Task) error {
	if rc := fns.DeleteTask(task); rc != 0 {
		return envError(fns, rc)
	}
	return nil
}

func CloneTask(fns *ffi.Funcs, task ffi.Task) (ffi.Task, error) {
	var clone ffi.Task
	if rc := fns.CloneTask(task, &clone); rc != 0 {
		return 0, taskError(fns, task, rc)
	}
	return clone, nil
}

func AppendVars(fns *ffi.Funcs, task ffi.Task, num int) error {
	n, err := idx32("appendvars", "num", num)
	if err != nil {
		return err
	}
	if rc := fns.AppendVars(task, n); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

func AppendCons(fns *ffi.Funcs, task ffi.Task, num int) error {
	n, err := idx32("appendcons", "num", num)
	if err != nil {
		return err
	}
	if rc := fns.AppendCons(task, n); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

func PutCj(fns *ffi.Funcs, task ffi.Task, j int, cj float64) error {
	jj, err := idx32("putcj", "j", j)
	if err != nil {
		return err
	}
	if rc := fns.PutCj(task, jj, cj); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

// PutCList sets objective coefficients for the variables in subj. val
// must pair with subj element for element.
func PutCList(fns *ffi.Funcs, task ffi.Task, subj []int32, val []float64) error {
	if err := lenEq("putclist", "val", len(val), len(subj)); err != nil {
		return err
	}
	num, err := idx32("putclist", "num", len(subj))
	if err != nil {
		return err
	}
	if rc := fns.PutCList(task, num, i32Ptr(subj), f64Ptr(val)); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

func PutAij(fns *ffi.Funcs, task ffi.Task, i, j int, aij float64) error {
	ii, err := idx32("putaij", "i", i)
	if err != nil {
		return err
	}
	jj, err := idx32("putaij", "j", j)
	if err != nil {
		return err
	}
	if rc := fns.PutAij(task, ii, jj, aij); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

// PutARow replaces row i of the constraint matrix with the sparse entries
// (subi[k], vali[k]).
func PutARow(fns *ffi.Funcs, task ffi.Task, i int, subi []int32, vali []float64) error {
	ii, err := idx32("putarow", "i", i)
	if err != nil {
		return err
	}
	if err := lenEq("putarow", "vali", len(vali), len(subi)); err != nil {
		return err
	}
	nzi, err := idx32("putarow", "nzi", len(subi))
	if err != nil {
		return err
	}
	if rc := fns.PutARow(task, ii, nzi, i32Ptr(subi), f64Ptr(vali)); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

func PutACol(fns *ffi.Funcs, task ffi.Task, j int, subi []int32, vali []float64) error {
	jj, err := idx32("putacol", "j", j)
	if err != nil {
		return err
	}
	if err := lenEq("putacol", "vali", len(vali), len(subi)); err != nil {
		return err
	}
	nzj, err := idx32("putacol", "nzj", len(subi))
	if err != nil {
		return err
	}
	if rc := fns.PutACol(task, jj, nzj, i32Ptr(subi), f64Ptr(vali)); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

func PutVarBound(fns *ffi.Funcs, task ffi.Task, j int, bk types.Boundkey, bl, bu float64) error {
	jj, err := idx32("putvarbound", "j", j)
	if err != nil {
		return err
	}
	if err := checkEnum("putvarbound", "bk", types.Boundkeys, bk); err != nil {
		return err
	}
	if rc := fns.PutVarBound(task, jj, int32(bk), bl, bu); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

// PutVarBoundSlice sets bounds for the variable range [first, last). All
// three data slices must hold exactly last-first elements.
func PutVarBoundSlice(fns *ffi.Funcs, task ffi.Task, first, last int, bk []types.Boundkey, bl, bu []float64) error {
	f, l, n, err := span("putvarboundslice", first, last)
	if err != nil {
		return err
	}
	if err := lenEq("putvarboundslice", "bk", len(bk), n); err != nil {
		return err
	}
	if err := lenEq("putvarboundslice", "bl", len(bl), n); err != nil {
		return err
	}
	if err := lenEq("putvarboundslice", "bu", len(bu), n); err != nil {
		return err
	}
	if err := checkEnums("putvarboundslice", "bk", types.Boundkeys, bk); err != nil {
		return err
	}
	if rc := fns.PutVarBoundSlice(task, f, l, enumPtr(bk), f64Ptr(bl), f64Ptr(bu)); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

func PutVarBoundList(fns *ffi.Funcs, task ffi.Task, subj []int32, bk []types.Boundkey, bl, bu []float64) error {
	num, err := idx32("putvarboundlist", "num", len(subj))
	if err != nil {
		return err
	}
	if err := lenEq("putvarboundlist", "bk", len(bk), len(subj)); err != nil {
		return err
	}
	if err := lenEq("putvarboundlist", "bl", len(bl), len(subj)); err != nil {
		return err
	}
	if err := lenEq("putvarboundlist", "bu", len(bu), len(subj)); err != nil {
		return err
	}
	if err := checkEnums("putvarboundlist", "bk", types.Boundkeys, bk); err != nil {
		return err
	}
	if rc := fns.PutVarBoundList(task, num, i32Ptr(subj), enumPtr(bk), f64Ptr(bl), f64Ptr(bu)); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

func PutConBound(fns *ffi.Funcs, task ffi.Task, i int, bk types.Boundkey, bl, bu float64) error {
	ii, err := idx32("putconbound", "i", i)
	if err != nil {
		return err
	}
	if err := checkEnum("putconbound", "bk", types.Boundkeys, bk); err != nil {
		return err
	}
	if rc := fns.PutConBound(task, ii, int32(bk), bl, bu); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

func PutConBoundSlice(fns *ffi.Funcs, task ffi.Task, first, last int, bk []types.Boundkey, bl, bu []float64) error {
	f, l, n, err := span("putconboundslice", first, last)
	if err != nil {
		return err
	}
	if err := lenEq("putconboundslice", "bk", len(bk), n); err != nil {
		return err
	}
	if err := lenEq("putconboundslice", "bl", len(bl), n); err != nil {
		return err
	}
	if err := lenEq("putconboundslice", "bu", len(bu), n); err != nil {
		return err
	}
	if err := checkEnums("putconboundslice", "bk", types.Boundkeys, bk); err != nil {
		return err
	}
	if rc := fns.PutConBoundSlice(task, f, l, enumPtr(bk), f64Ptr(bl), f64Ptr(bu)); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

func PutVarType(fns *ffi.Funcs, task ffi.Task, j int, vt types.Vartype) error {
	jj, err := idx32("putvartype", "j", j)
	if err != nil {
		return err
	}
	if err := checkEnum("putvartype", "vartype", types.Vartypes, vt); err != nil {
		return err
	}
	if rc := fns.PutVarType(task, jj, int32(vt)); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

func PutVarTypeList(fns *ffi.Funcs, task ffi.Task, subj []int32, vts []types.Vartype) error {
	num, err := idx32("putvartypelist", "num", len(subj))
	if err != nil {
		return err
	}
	if err := lenEq("putvartypelist", "vartypes", len(vts), len(subj)); err != nil {
		return err
	}
	if err := checkEnums("putvartypelist", "vartypes", types.Vartypes, vts); err != nil {
		return err
	}
	if rc := fns.PutVarTypeList(task, num, i32Ptr(subj), enumPtr(vts)); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

// GetVarTypeList fills out with the types of the variables in subj. The
// engine-written values are checked against the registry before they
// reach the caller.
func GetVarTypeList(fns *ffi.Funcs, task ffi.Task, subj []int32, out []types.Vartype) error {
	num, err := idx32("getvartypelist", "num", len(subj))
	if err != nil {
		return err
	}
	if err := lenEq("getvartypelist", "vartypes", len(out), len(subj)); err != nil {
		return err
	}
	if rc := fns.GetVarTypeList(task, num, i32Ptr(subj), enumPtr(out)); rc != 0 {
		return taskError(fns, task, rc)
	}
	return checkEnums("getvartypelist", "vartypes", types.Vartypes, out)
}

func PutObjSense(fns *ffi.Funcs, task ffi.Task, sense types.Objsense) error {
	if err := checkEnum("putobjsense", "sense", types.Objsenses, sense); err != nil {
		return err
	}
	if rc := fns.PutObjSense(task, int32(sense)); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

func GetObjSense(fns *ffi.Funcs, task ffi.Task) (types.Objsense, error) {
	var v int32
	if rc := fns.GetObjSense(task, &v); rc != 0 {
		return 0, taskError(fns, task, rc)
	}
	sense := types.Objsense(v)
	if err := checkEnum("getobjsense", "sense", types.Objsenses, sense); err != nil {
		return 0, err
	}
	return sense, nil
}

func GetNumVar(fns *ffi.Funcs, task ffi.Task) (int, error) {
	var n int32
	if rc := fns.GetNumVar(task, &n); rc != 0 {
		return 0, taskError(fns, task, rc)
	}
	return int(n), nil
}

func GetNumCon(fns *ffi.Funcs, task ffi.Task) (int, error) {
	var n int32
	if rc := fns.GetNumCon(task, &n); rc != 0 {
		return 0, taskError(fns, task, rc)
	}
	return int(n), nil
}

func PutTaskName(fns *ffi.Funcs, task ffi.Task, name string) error {
	p, err := cstr("puttaskname", "taskname", name)
	if err != nil {
		return err
	}
	if rc := fns.PutTaskName(task, p); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

// GetTaskName follows the query-length-then-fetch idiom: ask for the name
// length, allocate length+1 for the terminator, fetch.
func GetTaskName(fns *ffi.Funcs, task ffi.Task) (string, error) {
	var n int32
	if rc := fns.GetTaskNameLen(task, &n); rc != 0 {
		return "", taskError(fns, task, rc)
	}
	buf := make([]byte, int(n)+1)
	if rc := fns.GetTaskName(task, int32(len(buf)), &buf[0]); rc != 0 {
		return "", taskError(fns, task, rc)
	}
	return trimNul(buf), nil
}

func PutVarName(fns *ffi.Funcs, task ffi.Task, j int, name string) error {
	jj, err := idx32("putvarname", "j", j)
	if err != nil {
		return err
	}
	p, err := cstr("putvarname", "name", name)
	if err != nil {
		return err
	}
	if rc := fns.PutVarName(task, jj, p); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

func GetVarName(fns *ffi.Funcs, task ffi.Task, j int) (string, error) {
	jj, err := idx32("getvarname", "j", j)
	if err != nil {
		return "", err
	}
	var n int32
	if rc := fns.GetVarNameLen(task, jj, &n); rc != 0 {
		return "", taskError(fns, task, rc)
	}
	buf := make([]byte, int(n)+1)
	if rc := fns.GetVarName(task, jj, int32(len(buf)), &buf[0]); rc != 0 {
		return "", taskError(fns, task, rc)
	}
	return trimNul(buf), nil
}

// OptimizeTrm runs the optimizer. The termination code describes why the
// optimizer stopped and is a result, not a failure; hard failures come
// back as the error.
func OptimizeTrm(fns *ffi.Funcs, task ffi.Task) (types.Rescode, error) {
	var trm int32
	if rc := fns.OptimizeTrm(task, &trm); rc != 0 {
		return 0, taskError(fns, task, rc)
	}
	return types.Rescode(trm), nil
}

func GetSolSta(fns *ffi.Funcs, task ffi.Task, which types.Soltype) (types.Solsta, error) {
	if err := checkEnum("getsolsta", "whichsol", types.Soltypes, which); err != nil {
		return 0, err
	}
	var v int32
	if rc := fns.GetSolSta(task, int32(which), &v); rc != 0 {
		return 0, taskError(fns, task, rc)
	}
	sta := types.Solsta(v)
	if err := checkEnum("getsolsta", "solsta", types.Solstas, sta); err != nil {
		return 0, err
	}
	return sta, nil
}

func GetProSta(fns *ffi.Funcs, task ffi.Task, which types.Soltype) (types.Prosta, error) {
	if err := checkEnum("getprosta", "whichsol", types.Soltypes, which); err != nil {
		return 0, err
	}
	var v int32
	if rc := fns.GetProSta(task, int32(which), &v); rc != 0 {
		return 0, taskError(fns, task, rc)
	}
	sta := types.Prosta(v)
	if err := checkEnum("getprosta", "prosta", types.Prostas, sta); err != nil {
		return 0, err
	}
	return sta, nil
}

// GetXx fills xx with the primal solution. xx must hold exactly numvar
// elements; the engine writes into the caller's array directly.
func GetXx(fns *ffi.Funcs, task ffi.Task, which types.Soltype, xx []float64) error {
	if err := checkEnum("getxx", "whichsol", types.Soltypes, which); err != nil {
		return err
	}
	n, err := GetNumVar(fns, task)
	if err != nil {
		return err
	}
	if err := lenEq("getxx", "xx", len(xx), n); err != nil {
		return err
	}
	if rc := fns.GetXx(task, int32(which), f64Ptr(xx)); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

func GetXxSlice(fns *ffi.Funcs, task ffi.Task, which types.Soltype, first, last int, xx []float64) error {
	if err := checkEnum("getxxslice", "whichsol", types.Soltypes, which); err != nil {
		return err
	}
	f, l, n, err := span("getxxslice", first, last)
	if err != nil {
		return err
	}
	if err := lenEq("getxxslice", "xx", len(xx), n); err != nil {
		return err
	}
	if rc := fns.GetXxSlice(task, int32(which), f, l, f64Ptr(xx)); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

// GetY fills y with the dual solution; y must hold exactly numcon
// elements.
func GetY(fns *ffi.Funcs, task ffi.Task, which types.Soltype, y []float64) error {
	if err := checkEnum("gety", "whichsol", types.Soltypes, which); err != nil {
		return err
	}
	n, err := GetNumCon(fns, task)
	if err != nil {
		return err
	}
	if err := lenEq("gety", "y", len(y), n); err != nil {
		return err
	}
	if rc := fns.GetY(task, int32(which), f64Ptr(y)); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

func GetPrimalObj(fns *ffi.Funcs, task ffi.Task, which types.Soltype) (float64, error) {
	if err := checkEnum("getprimalobj", "whichsol", types.Soltypes, which); err != nil {
		return 0, err
	}
	var obj float64
	if rc := fns.GetPrimalObj(task, int32(which), &obj); rc != 0 {
		return 0, taskError(fns, task, rc)
	}
	return obj, nil
}

func PutIntParam(fns *ffi.Funcs, task ffi.Task, param types.Iparam, value int32) error {
	if err := checkEnum("putintparam", "param", types.Iparams, param); err != nil {
		return err
	}
	if rc := fns.PutIntParam(task, int32(param), value); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

func GetIntParam(fns *ffi.Funcs, task ffi.Task, param types.Iparam) (int32, error) {
	if err := checkEnum("getintparam", "param", types.Iparams, param); err != nil {
		return 0, err
	}
	var v int32
	if rc := fns.GetIntParam(task, int32(param), &v); rc != 0 {
		return 0, taskError(fns, task, rc)
	}
	return v, nil
}

func PutDouParam(fns *ffi.Funcs, task ffi.Task, param types.Dparam, value float64) error {
	if err := checkEnum("putdouparam", "param", types.Dparams, param); err != nil {
		return err
	}
	if rc := fns.PutDouParam(task, int32(param), value); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

func GetDouParam(fns *ffi.Funcs, task ffi.Task, param types.Dparam) (float64, error) {
	if err := checkEnum("getdouparam", "param", types.Dparams, param); err != nil {
		return 0, err
	}
	var v float64
	if rc := fns.GetDouParam(task, int32(param), &v); rc != 0 {
		return 0, taskError(fns, task, rc)
	}
	return v, nil
}

func PutStrParam(fns *ffi.Funcs, task ffi.Task, param types.Sparam, value string) error {
	if err := checkEnum("putstrparam", "param", types.Sparams, param); err != nil {
		return err
	}
	p, err := cstr("putstrparam", "parvalue", value)
	if err != nil {
		return err
	}
	if rc := fns.PutStrParam(task, int32(param), p); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

// GetStrParam fetches a string parameter. The first attempt uses the
// engine's fixed buffer size; a value that filled the buffer may have
// been truncated, so the fetch retries once with the reported length.
func GetStrParam(fns *ffi.Funcs, task ffi.Task, param types.Sparam) (string, error) {
	if err := checkEnum("getstrparam", "param", types.Sparams, param); err != nil {
		return "", err
	}
	size := int32(ffi.MaxStrLen)
	for {
		buf := make([]byte, size)
		var n int32
		if rc := fns.GetStrParam(task, int32(param), size, &n, &buf[0]); rc != 0 {
			return "", taskError(fns, task, rc)
		}
		if int(n) < len(buf) {
			return trimNul(buf), nil
		}
		size = n + 1
	}
}

func WriteData(fns *ffi.Funcs, task ffi.Task, filename string) error {
	p, err := cstr("writedata", "filename", filename)
	if err != nil {
		return err
	}
	if rc := fns.WriteData(task, p); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

func ReadData(fns *ffi.Funcs, task ffi.Task, filename string) error {
	p, err := cstr("readdata", "filename", filename)
	if err != nil {
		return err
	}
	if rc := fns.ReadData(task, p); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

// AsyncOptimize submits the task to a remote solver and returns the job
// token used by the poll, fetch and stop calls.
func AsyncOptimize(fns *ffi.Funcs, task ffi.Task, address, accessToken string) (string, error) {
	addr, err := cstr("asyncoptimize", "address", address)
	if err != nil {
		return "", err
	}
	atok, err := cstr("asyncoptimize", "accesstoken", accessToken)
	if err != nil {
		return "", err
	}
	buf := make([]byte, ffi.TokenLen+1)
	if rc := fns.AsyncOptimize(task, addr, atok, &buf[0]); rc != 0 {
		return "", taskError(fns, task, rc)
	}
	return trimNul(buf), nil
}

func asyncArgs(op, address, accessToken, token string) (addr, atok, tok *byte, err error) {
	if addr, err = cstr(op, "address", address); err != nil {
		return nil, nil, nil, err
	}
	if atok, err = cstr(op, "accesstoken", accessToken); err != nil {
		return nil, nil, nil, err
	}
	if tok, err = cstr(op, "token", token); err != nil {
		return nil, nil, nil, err
	}
	return addr, atok, tok, nil
}

// AsyncPoll asks the remote solver whether the job finished. resp and trm
// are only meaningful when done is true.
func AsyncPoll(fns *ffi.Funcs, task ffi.Task, address, accessToken, token string) (done bool, resp, trm types.Rescode, err error) {
	addr, atok, tok, err := asyncArgs("asyncpoll", address, accessToken, token)
	if err != nil {
		return false, 0, 0, err
	}
	var avail, r, t int32
	if rc := fns.AsyncPoll(task, addr, atok, tok, &avail, &r, &t); rc != 0 {
		return false, 0, 0, taskError(fns, task, rc)
	}
	return avail != 0, types.Rescode(r), types.Rescode(t), nil
}

// AsyncGetResult fetches a finished job's result into the task. done
// false means the job is still running and the task was not touched.
func AsyncGetResult(fns *ffi.Funcs, task ffi.Task, address, accessToken, token string) (done bool, resp, trm types.Rescode, err error) {
	addr, atok, tok, err := asyncArgs("asyncgetresult", address, accessToken, token)
	if err != nil {
		return false, 0, 0, err
	}
	var avail, r, t int32
	if rc := fns.AsyncGetResult(task, addr, atok, tok, &avail, &r, &t); rc != 0 {
		return false, 0, 0, taskError(fns, task, rc)
	}
	return avail != 0, types.Rescode(r), types.Rescode(t), nil
}

// AsyncStop cancels a submitted job. Stopping a finished job is not an
// error.
func AsyncStop(fns *ffi.Funcs, task ffi.Task, address, accessToken, token string) error {
	addr, atok, tok, err := asyncArgs("asyncstop", address, accessToken, token)
	if err != nil {
		return err
	}
	if rc := fns.AsyncStop(task, addr, atok, tok); rc != 0 {
		return taskError(fns, task, rc)
	}
	return nil
}

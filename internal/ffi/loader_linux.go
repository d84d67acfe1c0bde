//go:build linux

package ffi

import (
	"os"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// This file registers the libmosek64 symbols used by the binding. Every
// variable below is a Go function pointer whose calling convention matches
// the corresponding C function exactly; the typed Funcs table is filled
// with thin casting wrappers around them.

var (
	loadOnce sync.Once
	loadErr  error
	dlHandle uintptr
	loaded   *Funcs

	// Callback function pointers handed to the engine. Both are created
	// once; dispatch fans out through the usr slot key.
	streamCB   uintptr
	progressCB uintptr

	msk_makeenv           func(env, dbgfile uintptr) uintptr
	msk_deleteenv         func(env uintptr) uintptr
	msk_putlicensepath    func(env, path uintptr) uintptr
	msk_checkinall        func(env uintptr) uintptr
	msk_getversion        func(major, minor, revision uintptr) uintptr
	msk_maketask          func(env uintptr, maxnumcon, maxnumvar int32, task uintptr) uintptr
	msk_deletetask        func(task uintptr) uintptr
	msk_clonetask         func(task, clone uintptr) uintptr
	msk_appendvars        func(task uintptr, num int32) uintptr
	msk_appendcons        func(task uintptr, num int32) uintptr
	msk_putcj             func(task uintptr, j int32, cj float64) uintptr
	msk_putclist          func(task uintptr, num int32, subj, val uintptr) uintptr
	msk_putaij            func(task uintptr, i, j int32, aij float64) uintptr
	msk_putarow           func(task uintptr, i, nzi int32, subi, vali uintptr) uintptr
	msk_putacol           func(task uintptr, j, nzj int32, subi, vali uintptr) uintptr
	msk_putvarbound       func(task uintptr, j, bk int32, bl, bu float64) uintptr
	msk_putvarboundslice  func(task uintptr, first, last int32, bk, bl, bu uintptr) uintptr
	msk_putvarboundlist   func(task uintptr, num int32, subj, bk, bl, bu uintptr) uintptr
	msk_putconbound       func(task uintptr, i, bk int32, bl, bu float64) uintptr
	msk_putconboundslice  func(task uintptr, first, last int32, bk, bl, bu uintptr) uintptr
	msk_putvartype        func(task uintptr, j, vartype int32) uintptr
	msk_putvartypelist    func(task uintptr, num int32, subj, vartypes uintptr) uintptr
	msk_getvartypelist    func(task uintptr, num int32, subj, vartypes uintptr) uintptr
	msk_putobjsense       func(task uintptr, sense int32) uintptr
	msk_getobjsense       func(task, sense uintptr) uintptr
	msk_getnumvar         func(task, numvar uintptr) uintptr
	msk_getnumcon         func(task, numcon uintptr) uintptr
	msk_puttaskname       func(task, name uintptr) uintptr
	msk_gettasknamelen    func(task, length uintptr) uintptr
	msk_gettaskname       func(task uintptr, size int32, name uintptr) uintptr
	msk_putvarname        func(task uintptr, j int32, name uintptr) uintptr
	msk_getvarnamelen     func(task uintptr, j int32, length uintptr) uintptr
	msk_getvarname        func(task uintptr, j, size int32, name uintptr) uintptr
	msk_optimizetrm       func(task, trm uintptr) uintptr
	msk_getsolsta         func(task uintptr, whichsol int32, solsta uintptr) uintptr
	msk_getprosta         func(task uintptr, whichsol int32, prosta uintptr) uintptr
	msk_getxx             func(task uintptr, whichsol int32, xx uintptr) uintptr
	msk_getxxslice        func(task uintptr, whichsol, first, last int32, xx uintptr) uintptr
	msk_gety              func(task uintptr, whichsol int32, y uintptr) uintptr
	msk_getprimalobj      func(task uintptr, whichsol int32, obj uintptr) uintptr
	msk_putintparam       func(task uintptr, param, value int32) uintptr
	msk_getintparam       func(task uintptr, param int32, value uintptr) uintptr
	msk_putdouparam       func(task uintptr, param int32, value float64) uintptr
	msk_getdouparam       func(task uintptr, param int32, value uintptr) uintptr
	msk_putstrparam       func(task uintptr, param int32, value uintptr) uintptr
	msk_getstrparam       func(task uintptr, param, size int32, length, value uintptr) uintptr
	msk_linkenvstream     func(env uintptr, whichstream int32, usr, fn uintptr) uintptr
	msk_linktaskstream    func(task uintptr, whichstream int32, usr, fn uintptr) uintptr
	msk_putcallbackfunc   func(task, fn, usr uintptr) uintptr
	msk_getlasterror      func(task, lastrescode uintptr, sizelastmsg int64, lastmsglen, lastmsg uintptr) uintptr
	msk_getcodedesc       func(code int32, symname, str uintptr) uintptr
	msk_writedata         func(task, filename uintptr) uintptr
	msk_readdata          func(task, filename uintptr) uintptr
	msk_asyncoptimize     func(task, address, accesstoken, token uintptr) uintptr
	msk_asyncpoll         func(task, address, accesstoken, token, respavailable, resp, trm uintptr) uintptr
	msk_asyncgetresult    func(task, address, accesstoken, token, respavailable, resp, trm uintptr) uintptr
	msk_asyncstop         func(task, address, accesstoken, token uintptr) uintptr

	scOnce       sync.Once
	scErr        error
	sc_init      func() uintptr
	sc_teardown  func() uintptr
	sc_create    func(task, handle uintptr) uintptr
	sc_puteval   func(handle uintptr, num int32, opro, oprjo, oprfo, oprgo, oprho uintptr) uintptr
	sc_delete    func(task, handle uintptr) uintptr
)

func dlname() string {
	if p := os.Getenv("MOSEK_LIBRARY_PATH"); p != "" {
		return p
	}
	return "libmosek64.so"
}

func scDlname() string {
	if p := os.Getenv("MOSEK_SCOPT_LIBRARY_PATH"); p != "" {
		return p
	}
	return "libmosekscopt64.so"
}

func up(p unsafe.Pointer) uintptr { return uintptr(p) }

// rcErrNoInitEnv is reported when the extension shared object cannot be
// opened; genuine extension failures come back from the symbols themselves.
const rcErrNoInitEnv = 1063

// load opens the shared object, registers every symbol and returns the
// typed table. It runs at most once.
func load() (*Funcs, error) {
	loadOnce.Do(func() {
		h, err := purego.Dlopen(dlname(), purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			loadErr = err
			return
		}
		dlHandle = h

		purego.RegisterLibFunc(&msk_makeenv, dlHandle, "MSK_makeenv")
		purego.RegisterLibFunc(&msk_deleteenv, dlHandle, "MSK_deleteenv")
		purego.RegisterLibFunc(&msk_putlicensepath, dlHandle, "MSK_putlicensepath")
		purego.RegisterLibFunc(&msk_checkinall, dlHandle, "MSK_checkinall")
		purego.RegisterLibFunc(&msk_getversion, dlHandle, "MSK_getversion")
		purego.RegisterLibFunc(&msk_maketask, dlHandle, "MSK_maketask")
		purego.RegisterLibFunc(&msk_deletetask, dlHandle, "MSK_deletetask")
		purego.RegisterLibFunc(&msk_clonetask, dlHandle, "MSK_clonetask")
		purego.RegisterLibFunc(&msk_appendvars, dlHandle, "MSK_appendvars")
		purego.RegisterLibFunc(&msk_appendcons, dlHandle, "MSK_appendcons")
		purego.RegisterLibFunc(&msk_putcj, dlHandle, "MSK_putcj")
		purego.RegisterLibFunc(&msk_putclist, dlHandle, "MSK_putclist")
		purego.RegisterLibFunc(&msk_putaij, dlHandle, "MSK_putaij")
		purego.RegisterLibFunc(&msk_putarow, dlHandle, "MSK_putarow")
		purego.RegisterLibFunc(&msk_putacol, dlHandle, "MSK_putacol")
		purego.RegisterLibFunc(&msk_putvarbound, dlHandle, "MSK_putvarbound")
		purego.RegisterLibFunc(&msk_putvarboundslice, dlHandle, "MSK_putvarboundslice")
		purego.RegisterLibFunc(&msk_putvarboundlist, dlHandle, "MSK_putvarboundlist")
		purego.RegisterLibFunc(&msk_putconbound, dlHandle, "MSK_putconbound")
		purego.RegisterLibFunc(&msk_putconboundslice, dlHandle, "MSK_putconboundslice")
		purego.RegisterLibFunc(&msk_putvartype, dlHandle, "MSK_putvartype")
		purego.RegisterLibFunc(&msk_putvartypelist, dlHandle, "MSK_putvartypelist")
		purego.RegisterLibFunc(&msk_getvartypelist, dlHandle, "MSK_getvartypelist")
		purego.RegisterLibFunc(&msk_putobjsense, dlHandle, "MSK_putobjsense")
		purego.RegisterLibFunc(&msk_getobjsense, dlHandle, "MSK_getobjsense")
		purego.RegisterLibFunc(&msk_getnumvar, dlHandle, "MSK_getnumvar")
		purego.RegisterLibFunc(&msk_getnumcon, dlHandle, "MSK_getnumcon")
		purego.RegisterLibFunc(&msk_puttaskname, dlHandle, "MSK_puttaskname")
		purego.RegisterLibFunc(&msk_gettasknamelen, dlHandle, "MSK_gettasknamelen")
		purego.RegisterLibFunc(&msk_gettaskname, dlHandle, "MSK_gettaskname")
		purego.RegisterLibFunc(&msk_putvarname, dlHandle, "MSK_putvarname")
		purego.RegisterLibFunc(&msk_getvarnamelen, dlHandle, "MSK_getvarnamelen")
		purego.RegisterLibFunc(&msk_getvarname, dlHandle, "MSK_getvarname")
		purego.RegisterLibFunc(&msk_optimizetrm, dlHandle, "MSK_optimizetrm")
		purego.RegisterLibFunc(&msk_getsolsta, dlHandle, "MSK_getsolsta")
		purego.RegisterLibFunc(&msk_getprosta, dlHandle, "MSK_getprosta")
		purego.RegisterLibFunc(&msk_getxx, dlHandle, "MSK_getxx")
		purego.RegisterLibFunc(&msk_getxxslice, dlHandle, "MSK_getxxslice")
		purego.RegisterLibFunc(&msk_gety, dlHandle, "MSK_gety")
		purego.RegisterLibFunc(&msk_getprimalobj, dlHandle, "MSK_getprimalobj")
		purego.RegisterLibFunc(&msk_putintparam, dlHandle, "MSK_putintparam")
		purego.RegisterLibFunc(&msk_getintparam, dlHandle, "MSK_getintparam")
		purego.RegisterLibFunc(&msk_putdouparam, dlHandle, "MSK_putdouparam")
		purego.RegisterLibFunc(&msk_getdouparam, dlHandle, "MSK_getdouparam")
		purego.RegisterLibFunc(&msk_putstrparam, dlHandle, "MSK_putstrparam")
		purego.RegisterLibFunc(&msk_getstrparam, dlHandle, "MSK_getstrparam")
		purego.RegisterLibFunc(&msk_linkenvstream, dlHandle, "MSK_linkfunctoenvstream")
		purego.RegisterLibFunc(&msk_linktaskstream, dlHandle, "MSK_linkfunctotaskstream")
		purego.RegisterLibFunc(&msk_putcallbackfunc, dlHandle, "MSK_putcallbackfunc")
		purego.RegisterLibFunc(&msk_getlasterror, dlHandle, "MSK_getlasterror64")
		purego.RegisterLibFunc(&msk_getcodedesc, dlHandle, "MSK_getcodedesc")
		purego.RegisterLibFunc(&msk_writedata, dlHandle, "MSK_writedata")
		purego.RegisterLibFunc(&msk_readdata, dlHandle, "MSK_readdata")
		purego.RegisterLibFunc(&msk_asyncoptimize, dlHandle, "MSK_asyncoptimize")
		purego.RegisterLibFunc(&msk_asyncpoll, dlHandle, "MSK_asyncpoll")
		purego.RegisterLibFunc(&msk_asyncgetresult, dlHandle, "MSK_asyncgetresult")
		purego.RegisterLibFunc(&msk_asyncstop, dlHandle, "MSK_asyncstop")

		streamCB = purego.NewCallback(func(usr, msg uintptr) uintptr {
			if StreamDispatch != nil {
				StreamDispatch(usr, (*byte)(unsafe.Pointer(msg)))
			}
			return 0
		})
		progressCB = purego.NewCallback(func(task, usr, caller, dinf, iinf, liinf uintptr) uintptr {
			if ProgressDispatch == nil {
				return 0
			}
			rc := ProgressDispatch(Task(task), usr, int32(caller),
				(*float64)(unsafe.Pointer(dinf)),
				(*int32)(unsafe.Pointer(iinf)),
				(*int64)(unsafe.Pointer(liinf)))
			return uintptr(rc)
		})

		loaded = bindFuncs()
	})
	if loadErr != nil {
		return nil, loadErr
	}
	return loaded, nil
}

// ensureScLoaded opens the extension shared object on first use.
func ensureScLoaded() error {
	scOnce.Do(func() {
		h, err := purego.Dlopen(scDlname(), purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			scErr = err
			return
		}
		purego.RegisterLibFunc(&sc_init, h, "MSK_scinitialize")
		purego.RegisterLibFunc(&sc_teardown, h, "MSK_scteardown")
		purego.RegisterLibFunc(&sc_create, h, "MSK_scbegin")
		purego.RegisterLibFunc(&sc_puteval, h, "MSK_scputeval")
		purego.RegisterLibFunc(&sc_delete, h, "MSK_scend")
	})
	return scErr
}

// bindFuncs wraps the registered symbols into the typed table.
func bindFuncs() *Funcs {
	return &Funcs{
		MakeEnv: func(env *Env, dbgfile *byte) int32 {
			return int32(msk_makeenv(up(unsafe.Pointer(env)), up(unsafe.Pointer(dbgfile))))
		},
		DeleteEnv: func(env *Env) int32 {
			return int32(msk_deleteenv(up(unsafe.Pointer(env))))
		},
		PutLicensePath: func(env Env, path *byte) int32 {
			return int32(msk_putlicensepath(uintptr(env), up(unsafe.Pointer(path))))
		},
		CheckInAll: func(env Env) int32 {
			return int32(msk_checkinall(uintptr(env)))
		},
		GetVersion: func(major, minor, revision *int32) int32 {
			return int32(msk_getversion(up(unsafe.Pointer(major)), up(unsafe.Pointer(minor)), up(unsafe.Pointer(revision))))
		},
		MakeTask: func(env Env, maxnumcon, maxnumvar int32, task *Task) int32 {
			return int32(msk_maketask(uintptr(env), maxnumcon, maxnumvar, up(unsafe.Pointer(task))))
		},
		DeleteTask: func(task *Task) int32 {
			return int32(msk_deletetask(up(unsafe.Pointer(task))))
		},
		CloneTask: func(task Task, clone *Task) int32 {
			return int32(msk_clonetask(uintptr(task), up(unsafe.Pointer(clone))))
		},
		AppendVars: func(task Task, num int32) int32 {
			return int32(msk_appendvars(uintptr(task), num))
		},
		AppendCons: func(task Task, num int32) int32 {
			return int32(msk_appendcons(uintptr(task), num))
		},
		PutCj: func(task Task, j int32, cj float64) int32 {
			return int32(msk_putcj(uintptr(task), j, cj))
		},
		PutCList: func(task Task, num int32, subj *int32, val *float64) int32 {
			return int32(msk_putclist(uintptr(task), num, up(unsafe.Pointer(subj)), up(unsafe.Pointer(val))))
		},
		PutAij: func(task Task, i, j int32, aij float64) int32 {
			return int32(msk_putaij(uintptr(task), i, j, aij))
		},
		PutARow: func(task Task, i, nzi int32, subi *int32, vali *float64) int32 {
			return int32(msk_putarow(uintptr(task), i, nzi, up(unsafe.Pointer(subi)), up(unsafe.Pointer(vali))))
		},
		PutACol: func(task Task, j, nzj int32, subi *int32, vali *float64) int32 {
			return int32(msk_putacol(uintptr(task), j, nzj, up(unsafe.Pointer(subi)), up(unsafe.Pointer(vali))))
		},
		PutVarBound: func(task Task, j, bk int32, bl, bu float64) int32 {
			return int32(msk_putvarbound(uintptr(task), j, bk, bl, bu))
		},
		PutVarBoundSlice: func(task Task, first, last int32, bk *int32, bl, bu *float64) int32 {
			return int32(msk_putvarboundslice(uintptr(task), first, last,
				up(unsafe.Pointer(bk)), up(unsafe.Pointer(bl)), up(unsafe.Pointer(bu))))
		},
		PutVarBoundList: func(task Task, num int32, subj, bk *int32, bl, bu *float64) int32 {
			return int32(msk_putvarboundlist(uintptr(task), num,
				up(unsafe.Pointer(subj)), up(unsafe.Pointer(bk)), up(unsafe.Pointer(bl)), up(unsafe.Pointer(bu))))
		},
		PutConBound: func(task Task, i, bk int32, bl, bu float64) int32 {
			return int32(msk_putconbound(uintptr(task), i, bk, bl, bu))
		},
		PutConBoundSlice: func(task Task, first, last int32, bk *int32, bl, bu *float64) int32 {
			return int32(msk_putconboundslice(uintptr(task), first, last,
				up(unsafe.Pointer(bk)), up(unsafe.Pointer(bl)), up(unsafe.Pointer(bu))))
		},
		PutVarType: func(task Task, j, vartype int32) int32 {
			return int32(msk_putvartype(uintptr(task), j, vartype))
		},
		PutVarTypeList: func(task Task, num int32, subj, vartypes *int32) int32 {
			return int32(msk_putvartypelist(uintptr(task), num, up(unsafe.Pointer(subj)), up(unsafe.Pointer(vartypes))))
		},
		GetVarTypeList: func(task Task, num int32, subj, vartypes *int32) int32 {
			return int32(msk_getvartypelist(uintptr(task), num, up(unsafe.Pointer(subj)), up(unsafe.Pointer(vartypes))))
		},
		PutObjSense: func(task Task, sense int32) int32 {
			return int32(msk_putobjsense(uintptr(task), sense))
		},
		GetObjSense: func(task Task, sense *int32) int32 {
			return int32(msk_getobjsense(uintptr(task), up(unsafe.Pointer(sense))))
		},
		GetNumVar: func(task Task, numvar *int32) int32 {
			return int32(msk_getnumvar(uintptr(task), up(unsafe.Pointer(numvar))))
		},
		GetNumCon: func(task Task, numcon *int32) int32 {
			return int32(msk_getnumcon(uintptr(task), up(unsafe.Pointer(numcon))))
		},
		PutTaskName: func(task Task, name *byte) int32 {
			return int32(msk_puttaskname(uintptr(task), up(unsafe.Pointer(name))))
		},
		GetTaskNameLen: func(task Task, length *int32) int32 {
			return int32(msk_gettasknamelen(uintptr(task), up(unsafe.Pointer(length))))
		},
		GetTaskName: func(task Task, size int32, name *byte) int32 {
			return int32(msk_gettaskname(uintptr(task), size, up(unsafe.Pointer(name))))
		},
		PutVarName: func(task Task, j int32, name *byte) int32 {
			return int32(msk_putvarname(uintptr(task), j, up(unsafe.Pointer(name))))
		},
		GetVarNameLen: func(task Task, j int32, length *int32) int32 {
			return int32(msk_getvarnamelen(uintptr(task), j, up(unsafe.Pointer(length))))
		},
		GetVarName: func(task Task, j, size int32, name *byte) int32 {
			return int32(msk_getvarname(uintptr(task), j, size, up(unsafe.Pointer(name))))
		},
		OptimizeTrm: func(task Task, trm *int32) int32 {
			return int32(msk_optimizetrm(uintptr(task), up(unsafe.Pointer(trm))))
		},
		GetSolSta: func(task Task, whichsol int32, solsta *int32) int32 {
			return int32(msk_getsolsta(uintptr(task), whichsol, up(unsafe.Pointer(solsta))))
		},
		GetProSta: func(task Task, whichsol int32, prosta *int32) int32 {
			return int32(msk_getprosta(uintptr(task), whichsol, up(unsafe.Pointer(prosta))))
		},
		GetXx: func(task Task, whichsol int32, xx *float64) int32 {
			return int32(msk_getxx(uintptr(task), whichsol, up(unsafe.Pointer(xx))))
		},
		GetXxSlice: func(task Task, whichsol, first, last int32, xx *float64) int32 {
			return int32(msk_getxxslice(uintptr(task), whichsol, first, last, up(unsafe.Pointer(xx))))
		},
		GetY: func(task Task, whichsol int32, y *float64) int32 {
			return int32(msk_gety(uintptr(task), whichsol, up(unsafe.Pointer(y))))
		},
		GetPrimalObj: func(task Task, whichsol int32, obj *float64) int32 {
			return int32(msk_getprimalobj(uintptr(task), whichsol, up(unsafe.Pointer(obj))))
		},
		PutIntParam: func(task Task, param, value int32) int32 {
			return int32(msk_putintparam(uintptr(task), param, value))
		},
		GetIntParam: func(task Task, param int32, value *int32) int32 {
			return int32(msk_getintparam(uintptr(task), param, up(unsafe.Pointer(value))))
		},
		PutDouParam: func(task Task, param int32, value float64) int32 {
			return int32(msk_putdouparam(uintptr(task), param, value))
		},
		GetDouParam: func(task Task, param int32, value *float64) int32 {
			return int32(msk_getdouparam(uintptr(task), param, up(unsafe.Pointer(value))))
		},
		PutStrParam: func(task Task, param int32, value *byte) int32 {
			return int32(msk_putstrparam(uintptr(task), param, up(unsafe.Pointer(value))))
		},
		GetStrParam: func(task Task, param, size int32, length *int32, value *byte) int32 {
			return int32(msk_getstrparam(uintptr(task), param, size, up(unsafe.Pointer(length)), up(unsafe.Pointer(value))))
		},
		LinkEnvStream: func(env Env, whichstream int32, usr uintptr, attach bool) int32 {
			fn := uintptr(0)
			if attach {
				fn = streamCB
			}
			return int32(msk_linkenvstream(uintptr(env), whichstream, usr, fn))
		},
		LinkTaskStream: func(task Task, whichstream int32, usr uintptr, attach bool) int32 {
			fn := uintptr(0)
			if attach {
				fn = streamCB
			}
			return int32(msk_linktaskstream(uintptr(task), whichstream, usr, fn))
		},
		PutCallbackFunc: func(task Task, usr uintptr, attach bool) int32 {
			fn := uintptr(0)
			if attach {
				fn = progressCB
			}
			return int32(msk_putcallbackfunc(uintptr(task), fn, usr))
		},
		GetLastError: func(task Task, lastrescode *int32, sizelastmsg int64, lastmsglen *int64, lastmsg *byte) int32 {
			return int32(msk_getlasterror(uintptr(task), up(unsafe.Pointer(lastrescode)),
				sizelastmsg, up(unsafe.Pointer(lastmsglen)), up(unsafe.Pointer(lastmsg))))
		},
		GetCodeDesc: func(code int32, symname, desc *byte) int32 {
			return int32(msk_getcodedesc(code, up(unsafe.Pointer(symname)), up(unsafe.Pointer(desc))))
		},
		WriteData: func(task Task, filename *byte) int32 {
			return int32(msk_writedata(uintptr(task), up(unsafe.Pointer(filename))))
		},
		ReadData: func(task Task, filename *byte) int32 {
			return int32(msk_readdata(uintptr(task), up(unsafe.Pointer(filename))))
		},
		AsyncOptimize: func(task Task, address, accesstoken, token *byte) int32 {
			return int32(msk_asyncoptimize(uintptr(task), up(unsafe.Pointer(address)),
				up(unsafe.Pointer(accesstoken)), up(unsafe.Pointer(token))))
		},
		AsyncPoll: func(task Task, address, accesstoken, token *byte, respavailable, resp, trm *int32) int32 {
			return int32(msk_asyncpoll(uintptr(task), up(unsafe.Pointer(address)),
				up(unsafe.Pointer(accesstoken)), up(unsafe.Pointer(token)),
				up(unsafe.Pointer(respavailable)), up(unsafe.Pointer(resp)), up(unsafe.Pointer(trm))))
		},
		AsyncGetResult: func(task Task, address, accesstoken, token *byte, respavailable, resp, trm *int32) int32 {
			return int32(msk_asyncgetresult(uintptr(task), up(unsafe.Pointer(address)),
				up(unsafe.Pointer(accesstoken)), up(unsafe.Pointer(token)),
				up(unsafe.Pointer(respavailable)), up(unsafe.Pointer(resp)), up(unsafe.Pointer(trm))))
		},
		AsyncStop: func(task Task, address, accesstoken, token *byte) int32 {
			return int32(msk_asyncstop(uintptr(task), up(unsafe.Pointer(address)),
				up(unsafe.Pointer(accesstoken)), up(unsafe.Pointer(token))))
		},
		ScInit: func() int32 {
			if err := ensureScLoaded(); err != nil {
				return rcErrNoInitEnv
			}
			return int32(sc_init())
		},
		ScTeardown: func() int32 {
			if scErr != nil {
				return 0
			}
			return int32(sc_teardown())
		},
		ScCreate: func(task Task, handle *ScHandle) int32 {
			return int32(sc_create(uintptr(task), up(unsafe.Pointer(handle))))
		},
		ScPutEval: func(handle ScHandle, num int32, opro, oprjo *int32, oprfo, oprgo, oprho *float64) int32 {
			return int32(sc_puteval(uintptr(handle), num, up(unsafe.Pointer(opro)), up(unsafe.Pointer(oprjo)),
				up(unsafe.Pointer(oprfo)), up(unsafe.Pointer(oprgo)), up(unsafe.Pointer(oprho))))
		},
		ScDelete: func(task Task, handle *ScHandle) int32 {
			return int32(sc_delete(uintptr(task), up(unsafe.Pointer(handle))))
		},
	}
}

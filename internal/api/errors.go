package api

import (
	"github.com/sdanfort/mosek-linux/internal/ffi"
	"github.com/sdanfort/mosek-linux/types"
)

// taskError translates a non-zero response code from a task-scoped call
// into *types.Error, fetching the detail message recorded on the failing
// task. Warnings translate too; callers that tolerate them can test the
// code's class.
func taskError(fns *ffi.Funcs, task ffi.Task, rc int32) error {
	if rc == 0 {
		return nil
	}
	code := types.Rescode(rc)
	sym, msg := describe(fns, task, code)
	return &types.Error{Code: code, Sym: sym, Msg: msg}
}

// envError is taskError for calls with no task to interrogate; only the
// static code description is available.
func envError(fns *ffi.Funcs, rc int32) error {
	return taskError(fns, 0, rc)
}

// describe fetches the symbol and message for a failure code. The
// last-error fetch is itself a native call and may fail or refer to a
// different code; both cases fall back to the static description and
// finally to "no message".
func describe(fns *ffi.Funcs, task ffi.Task, code types.Rescode) (sym, msg string) {
	if task != 0 && fns.GetLastError != nil {
		var last int32
		var msgLen int64
		buf := make([]byte, ffi.MaxStrLen)
		rc := fns.GetLastError(task, &last, int64(len(buf)), &msgLen, &buf[0])
		if rc == 0 && types.Rescode(last) == code {
			msg = trimNul(buf)
		}
	}
	sym = code.Symbol()
	if fns.GetCodeDesc != nil {
		symBuf := make([]byte, ffi.MaxStrLen)
		descBuf := make([]byte, ffi.MaxStrLen)
		if fns.GetCodeDesc(int32(code), &symBuf[0], &descBuf[0]) == 0 {
			if s := trimNul(symBuf); s != "" {
				sym = s
			}
			if msg == "" {
				msg = trimNul(descBuf)
			}
		}
	}
	if msg == "" {
		msg = "no message"
	}
	return sym, msg
}

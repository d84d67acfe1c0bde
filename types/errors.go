package types

import (
	"errors"
	"fmt"
)

// ErrDisposed is wrapped by errors reported for operations on a released
// handle.
var ErrDisposed = errors.New("handle is disposed")

// Error is a failure reported by the engine: a non-zero response code
// together with the detail message fetched from the failing handle.
type Error struct {
	Code Rescode
	Sym  string // engine symbol, e.g. "MSK_RES_ERR_LICENSE"
	Msg  string
}

func (e *Error) Error() string {
	sym := e.Sym
	if sym == "" {
		sym = fmt.Sprintf("rescode(%d)", int32(e.Code))
	}
	if e.Msg == "" {
		return fmt.Sprintf("mosek: %s (%d)", sym, int32(e.Code))
	}
	return fmt.Sprintf("mosek: %s (%d): %s", sym, int32(e.Code), e.Msg)
}

// CodeOf returns the response code carried by err, or ResOk if err carries
// none.
func CodeOf(err error) Rescode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ResOk
}

// ArgumentError is a contract violation detected by the binding before any
// engine call: wrong argument count, an argument of the wrong kind, a
// too-short buffer, or an operation on a disposed handle.
type ArgumentError struct {
	Op    string
	Param string // empty when the failure is not tied to one parameter
	Pos   int    // 1-based argument position, 0 when not applicable
	Want  string
	Got   string
	Err   error // optional cause, e.g. ErrDisposed or *EnumError
}

func (e *ArgumentError) Error() string {
	msg := "mosek: " + e.Op
	if e.Param != "" {
		if e.Pos > 0 {
			msg += fmt.Sprintf(": argument %s (%d)", e.Param, e.Pos)
		} else {
			msg += ": argument " + e.Param
		}
	}
	if e.Want != "" || e.Got != "" {
		msg += fmt.Sprintf(": want %s, got %s", e.Want, e.Got)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ArgumentError) Unwrap() error { return e.Err }

// EnumError is a failed enum registry lookup.
type EnumError struct {
	Set     string
	Name    string
	Value   int32
	ByValue bool
}

func (e *EnumError) Error() string {
	if e.ByValue {
		return fmt.Sprintf("enum %s: no member with value %d", e.Set, e.Value)
	}
	return fmt.Sprintf("enum %s: no member named %q", e.Set, e.Name)
}

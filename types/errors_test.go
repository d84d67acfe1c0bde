package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormat(t *testing.T) {
	err := &Error{Code: ResErrLicense, Sym: "MSK_RES_ERR_LICENSE", Msg: "no license found"}
	assert.Equal(t, "mosek: MSK_RES_ERR_LICENSE (1000): no license found", err.Error())

	err = &Error{Code: ResErrSpace, Sym: "MSK_RES_ERR_SPACE"}
	assert.Equal(t, "mosek: MSK_RES_ERR_SPACE (1051)", err.Error())

	err = &Error{Code: Rescode(4321), Msg: "boom"}
	assert.Equal(t, "mosek: rescode(4321) (4321): boom", err.Error())
}

func TestCodeOf(t *testing.T) {
	base := &Error{Code: ResErrFileOpen, Msg: "cannot open"}
	wrapped := fmt.Errorf("reading problem: %w", base)
	assert.Equal(t, ResErrFileOpen, CodeOf(wrapped))
	assert.Equal(t, ResOk, CodeOf(errors.New("unrelated")))
	assert.Equal(t, ResOk, CodeOf(nil))
}

func TestArgumentError(t *testing.T) {
	err := &ArgumentError{Op: "putvarboundslice", Param: "bl", Pos: 4, Want: "length 5", Got: "length 3"}
	assert.Equal(t, "mosek: putvarboundslice: argument bl (4): want length 5, got length 3", err.Error())

	disposed := &ArgumentError{Op: "appendvars", Err: ErrDisposed}
	require.ErrorIs(t, disposed, ErrDisposed)
	assert.Equal(t, "mosek: appendvars: handle is disposed", disposed.Error())

	arity := &ArgumentError{Op: "putcj", Want: "2 arguments", Got: "3"}
	assert.Equal(t, "mosek: putcj: want 2 arguments, got 3", arity.Error())
}

func TestEnumErrorFormat(t *testing.T) {
	err := &EnumError{Set: "boundkey", Name: "sideways"}
	assert.Equal(t, `enum boundkey: no member named "sideways"`, err.Error())

	err = &EnumError{Set: "soltype", Value: 9, ByValue: true}
	assert.Equal(t, "enum soltype: no member with value 9", err.Error())
}

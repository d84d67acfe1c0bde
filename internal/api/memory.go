package api

import (
	"fmt"
	"math"
	"strconv"
	"unsafe"

	"github.com/sdanfort/mosek-linux/types"
)

// Buffer bridging. A slice whose element type already matches the native
// element crosses as a borrowed pointer: the engine reads and writes the
// caller's backing array directly and no copy is made. Everything else
// goes through an owned temporary that is filled before the call and
// written back element-wise only after the call succeeded. The function
// table takes typed pointers, so borrowed buffers stay reachable for the
// duration of the call.

func f64Ptr(s []float64) *float64 {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

func i32Ptr(s []int32) *int32 {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

func i64Ptr(s []int64) *int64 {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

// enumPtr views a slice of int32-backed enum values as the native int32
// buffer. The layouts are identical, so the binding is borrowed.
func enumPtr[E ~int32](s []E) *int32 {
	if len(s) == 0 {
		return nil
	}
	return (*int32)(unsafe.Pointer(&s[0]))
}

// checkEnums validates every element of an enum buffer against its
// registry. It runs on input buffers before the native call and on
// engine-filled output buffers after a successful call; either way a value
// outside the registry fails the operation.
func checkEnums[E ~int32](op, param string, set *types.EnumSet, s []E) error {
	for i, v := range s {
		if !set.Contains(int32(v)) {
			return &types.ArgumentError{
				Op: op, Param: fmt.Sprintf("%s[%d]", param, i),
				Err: &types.EnumError{Set: set.Name(), Value: int32(v), ByValue: true},
			}
		}
	}
	return nil
}

// checkEnum is checkEnums for a single scalar argument.
func checkEnum[E ~int32](op, param string, set *types.EnumSet, v E) error {
	if !set.Contains(int32(v)) {
		return &types.ArgumentError{
			Op: op, Param: param,
			Err: &types.EnumError{Set: set.Name(), Value: int32(v), ByValue: true},
		}
	}
	return nil
}

// i32Temp is an owned int32 temporary standing in for a Go []int whose
// element size does not match the native element.
type i32Temp struct {
	buf []int32
	src []int
}

func newI32Temp(op, param string, src []int) (i32Temp, error) {
	buf := make([]int32, len(src))
	for i, v := range src {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return i32Temp{}, &types.ArgumentError{
				Op: op, Param: fmt.Sprintf("%s[%d]", param, i),
				Want: "value in int32 range", Got: strconv.Itoa(v),
			}
		}
		buf[i] = int32(v)
	}
	return i32Temp{buf: buf, src: src}, nil
}

func (t i32Temp) ptr() *int32 {
	return i32Ptr(t.buf)
}

// writeBack copies engine-written values into the original slice. Only
// call it after the native call succeeded; a failed call must leave the
// caller's data untouched.
func (t i32Temp) writeBack() {
	for i, v := range t.buf {
		t.src[i] = int(v)
	}
}

// f64FromF32 widens []float32 input into the native element type. The
// result is owned.
func f64FromF32(src []float32) []float64 {
	buf := make([]float64, len(src))
	for i, v := range src {
		buf[i] = float64(v)
	}
	return buf
}

// f64Temp is the owned float64 temporary for a []float32 caller buffer.
// Writing back narrows; a caller who hands a float32 buffer to an output
// parameter accepts that precision.
type f64Temp struct {
	buf []float64
	src []float32
}

func newF64Temp(src []float32) f64Temp {
	return f64Temp{buf: f64FromF32(src), src: src}
}

func (t f64Temp) writeBack() {
	for i, v := range t.buf {
		t.src[i] = float32(v)
	}
}

// lenEq enforces the pre-call length contract for a slice parameter.
func lenEq(op, param string, got, want int) error {
	if got != want {
		return &types.ArgumentError{
			Op: op, Param: param,
			Want: "length " + strconv.Itoa(want), Got: "length " + strconv.Itoa(got),
		}
	}
	return nil
}

// idx32 converts a caller index or count into the native int32, rejecting
// negatives and overflow before any engine call.
func idx32(op, param string, v int) (int32, error) {
	if v < 0 || v > math.MaxInt32 {
		return 0, &types.ArgumentError{
			Op: op, Param: param,
			Want: "index in [0, 2^31)", Got: strconv.Itoa(v),
		}
	}
	return int32(v), nil
}

// span validates a half-open [first, last) index range and returns the
// native pair together with the range length.
func span(op string, first, last int) (int32, int32, int, error) {
	f, err := idx32(op, "first", first)
	if err != nil {
		return 0, 0, 0, err
	}
	l, err := idx32(op, "last", last)
	if err != nil {
		return 0, 0, 0, err
	}
	if last < first {
		return 0, 0, 0, &types.ArgumentError{
			Op: op, Param: "last",
			Want: "last >= first", Got: fmt.Sprintf("first=%d last=%d", first, last),
		}
	}
	return f, l, last - first, nil
}

// i32Of is idx32 for values that may be negative, such as parameter
// settings.
func i32Of(op, param string, v int) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, &types.ArgumentError{
			Op: op, Param: param,
			Want: "value in int32 range", Got: strconv.Itoa(v),
		}
	}
	return int32(v), nil
}

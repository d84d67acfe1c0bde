package api

import (
	"fmt"
	"math"
	"strconv"

	"github.com/sdanfort/mosek-linux/types"
)

// Converter validates one dynamically supplied argument and produces the
// value handed to the native call.
type Converter interface {
	// convert returns the converted value and, for owned temporaries, a
	// finish hook that copies engine-written data back into the caller's
	// buffer. finish must run only after the native call succeeded.
	convert(op, param string, pos int, v any) (out any, finish func(), err error)
}

// Param is one position in an operation signature.
type Param struct {
	Name string
	Conv Converter
}

// Sig is the ordered argument contract of one invokable operation. The
// parameter order is the native call order; there are no optional or
// keyword arguments.
type Sig struct {
	Op     string
	Params []Param
}

// Bind checks args against sig position by position and converts them.
// The returned finish hook composes the converters' post-success work; it
// is nil when no argument needs any. A nil error guarantees every value
// in vals has the exact kind the native closure expects.
func Bind(sig Sig, args []any) (vals []any, finish func(), err error) {
	if len(args) != len(sig.Params) {
		return nil, nil, &types.ArgumentError{
			Op:   sig.Op,
			Want: fmt.Sprintf("%d arguments", len(sig.Params)),
			Got:  fmt.Sprintf("%d", len(args)),
		}
	}
	vals = make([]any, len(args))
	var finishers []func()
	for i, p := range sig.Params {
		out, fin, err := p.Conv.convert(sig.Op, p.Name, i+1, args[i])
		if err != nil {
			return nil, nil, err
		}
		vals[i] = out
		if fin != nil {
			finishers = append(finishers, fin)
		}
	}
	if len(finishers) > 0 {
		finish = func() {
			for _, f := range finishers {
				f()
			}
		}
	}
	return vals, finish, nil
}

func wrongKind(op, param string, pos int, want string, got any) error {
	return &types.ArgumentError{
		Op: op, Param: param, Pos: pos,
		Want: want, Got: fmt.Sprintf("%T", got),
	}
}

// Int accepts Go integer kinds and converts to the native int32. Floats
// and enum newtypes never coerce.
func Int() Converter { return intConv{} }

type intConv struct{}

func (intConv) convert(op, param string, pos int, v any) (any, func(), error) {
	switch n := v.(type) {
	case int32:
		return n, nil, nil
	case int:
		if n < math.MinInt32 || n > math.MaxInt32 {
			return nil, nil, &types.ArgumentError{
				Op: op, Param: param, Pos: pos,
				Want: "value in int32 range", Got: fmt.Sprintf("%d", n),
			}
		}
		return int32(n), nil, nil
	case int64:
		if n < math.MinInt32 || n > math.MaxInt32 {
			return nil, nil, &types.ArgumentError{
				Op: op, Param: param, Pos: pos,
				Want: "value in int32 range", Got: fmt.Sprintf("%d", n),
			}
		}
		return int32(n), nil, nil
	default:
		return nil, nil, wrongKind(op, param, pos, "int", v)
	}
}

// Float accepts float64 and the kinds that widen to it without loss of
// the caller's intent. A float where an int is expected fails; an int
// where a float is expected widens.
func Float() Converter { return floatConv{} }

type floatConv struct{}

func (floatConv) convert(op, param string, pos int, v any) (any, func(), error) {
	switch n := v.(type) {
	case float64:
		return n, nil, nil
	case float32:
		return float64(n), nil, nil
	case int:
		return float64(n), nil, nil
	case int32:
		return float64(n), nil, nil
	case int64:
		return float64(n), nil, nil
	default:
		return nil, nil, wrongKind(op, param, pos, "float64", v)
	}
}

// Str accepts string and converts to a NUL-terminated C string.
func Str() Converter { return strConv{} }

type strConv struct{}

func (strConv) convert(op, param string, pos int, v any) (any, func(), error) {
	s, ok := v.(string)
	if !ok {
		return nil, nil, wrongKind(op, param, pos, "string", v)
	}
	p, err := cstr(op, param, s)
	if err != nil {
		return nil, nil, err
	}
	return p, nil, nil
}

// Enum accepts E itself, a raw built-in integer holding a member value,
// or a member name string. A value of a different enum type shares the
// int32 representation but not the kind; it is rejected, never
// reinterpreted.
func Enum[E ~int32](set *types.EnumSet) Converter { return enumConv[E]{set: set} }

type enumConv[E ~int32] struct {
	set *types.EnumSet
}

func (c enumConv[E]) convert(op, param string, pos int, v any) (any, func(), error) {
	switch x := v.(type) {
	case E:
		return c.member(op, param, pos, int64(x))
	case string:
		m, err := c.set.ByName(x)
		if err != nil {
			return nil, nil, &types.ArgumentError{Op: op, Param: param, Pos: pos, Err: err}
		}
		return m.Value, nil, nil
	case int:
		return c.member(op, param, pos, int64(x))
	case int32:
		return c.member(op, param, pos, int64(x))
	case int64:
		return c.member(op, param, pos, x)
	default:
		return nil, nil, wrongKind(op, param, pos, c.set.Name()+" member", v)
	}
}

func (c enumConv[E]) member(op, param string, pos int, val int64) (any, func(), error) {
	if val >= math.MinInt32 && val <= math.MaxInt32 && c.set.Contains(int32(val)) {
		return int32(val), nil, nil
	}
	return nil, nil, &types.ArgumentError{
		Op: op, Param: param, Pos: pos,
		Want: "member of " + c.set.Name(),
		Got:  strconv.FormatInt(val, 10),
	}
}

// F64Slice accepts []float64 as a borrowed buffer and []float32 through
// an owned widened temporary whose finish hook narrows engine-written
// values back into the caller's slice.
func F64Slice() Converter { return f64SliceConv{} }

type f64SliceConv struct{}

func (f64SliceConv) convert(op, param string, pos int, v any) (any, func(), error) {
	switch s := v.(type) {
	case []float64:
		return s, nil, nil
	case []float32:
		t := newF64Temp(s)
		return t.buf, t.writeBack, nil
	default:
		return nil, nil, wrongKind(op, param, pos, "[]float64", v)
	}
}

// IntSlice accepts []int32 as a borrowed buffer and []int through an
// owned int32 temporary. The temporary's finish hook copies values the
// engine wrote back into the caller's slice, so []int works for output
// parameters too.
func IntSlice() Converter { return intSliceConv{} }

type intSliceConv struct{}

func (intSliceConv) convert(op, param string, pos int, v any) (any, func(), error) {
	switch s := v.(type) {
	case []int32:
		return s, nil, nil
	case []int:
		t, err := newI32Temp(op, param, s)
		if err != nil {
			return nil, nil, err
		}
		return t.buf, t.writeBack, nil
	default:
		return nil, nil, wrongKind(op, param, pos, "[]int32", v)
	}
}

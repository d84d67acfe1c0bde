package api

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sdanfort/mosek-linux/types"
)

// bindOne runs a single-parameter signature through Bind.
func bindOne(t *testing.T, conv Converter, v any) (any, func(), error) {
	t.Helper()
	sig := Sig{Op: "op", Params: []Param{{Name: "arg", Conv: conv}}}
	vals, finish, err := Bind(sig, []any{v})
	if err != nil {
		return nil, nil, err
	}
	return vals[0], finish, nil
}

func TestBindArity(t *testing.T) {
	sig := Sig{Op: "putaij", Params: []Param{
		{Name: "i", Conv: Int()},
		{Name: "j", Conv: Int()},
		{Name: "aij", Conv: Float()},
	}}

	_, _, err := Bind(sig, []any{1, 2})
	var argErr *types.ArgumentError
	require.ErrorAs(t, err, &argErr)
	require.Equal(t, "putaij", argErr.Op)
	require.Equal(t, "3 arguments", argErr.Want)
	require.Equal(t, "2", argErr.Got)

	_, _, err = Bind(sig, []any{1, 2, 3.0, 4})
	require.ErrorAs(t, err, &argErr)
	require.Equal(t, "4", argErr.Got)
}

func TestBindReportsPosition(t *testing.T) {
	sig := Sig{Op: "putaij", Params: []Param{
		{Name: "i", Conv: Int()},
		{Name: "j", Conv: Int()},
		{Name: "aij", Conv: Float()},
	}}

	_, _, err := Bind(sig, []any{1, "two", 3.0})
	var argErr *types.ArgumentError
	require.ErrorAs(t, err, &argErr)
	require.Equal(t, "j", argErr.Param)
	require.Equal(t, 2, argErr.Pos)
}

func TestIntConverter(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    int32
		wantErr bool
	}{
		{name: "int", in: 7, want: 7},
		{name: "int32", in: int32(-3), want: -3},
		{name: "int64", in: int64(9), want: 9},
		{name: "int64 overflow", in: int64(1) << 40, wantErr: true},
		{name: "float rejected", in: 3.0, wantErr: true},
		{name: "string rejected", in: "7", wantErr: true},
		{name: "enum rejected", in: types.BoundkeyLo, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, finish, err := bindOne(t, Int(), tc.in)
			if tc.wantErr {
				var argErr *types.ArgumentError
				require.ErrorAs(t, err, &argErr)
				return
			}
			require.NoError(t, err)
			require.Nil(t, finish)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestFloatConverter(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    float64
		wantErr bool
	}{
		{name: "float64", in: 2.5, want: 2.5},
		{name: "float32 widens", in: float32(1.5), want: 1.5},
		{name: "int widens", in: 3, want: 3},
		{name: "int64 widens", in: int64(-4), want: -4},
		{name: "string rejected", in: "2.5", wantErr: true},
		{name: "bool rejected", in: true, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := bindOne(t, Float(), tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestStrConverter(t *testing.T) {
	out, finish, err := bindOne(t, Str(), "model")
	require.NoError(t, err)
	require.Nil(t, finish)
	require.Equal(t, "model", goString(out.(*byte)))

	_, _, err = bindOne(t, Str(), "a\x00b")
	require.Error(t, err)

	_, _, err = bindOne(t, Str(), 42)
	var argErr *types.ArgumentError
	require.ErrorAs(t, err, &argErr)
	require.Equal(t, "int", argErr.Got)
}

func TestEnumConverter(t *testing.T) {
	conv := Enum[types.Boundkey](types.Boundkeys)

	t.Run("typed member", func(t *testing.T) {
		out, _, err := bindOne(t, conv, types.BoundkeyRa)
		require.NoError(t, err)
		require.Equal(t, int32(4), out)
	})
	t.Run("member name", func(t *testing.T) {
		out, _, err := bindOne(t, conv, "up")
		require.NoError(t, err)
		require.Equal(t, int32(1), out)
	})
	t.Run("raw int member value", func(t *testing.T) {
		out, _, err := bindOne(t, conv, 2)
		require.NoError(t, err)
		require.Equal(t, int32(2), out)
	})
	t.Run("raw non-member value", func(t *testing.T) {
		_, _, err := bindOne(t, conv, 42)
		var argErr *types.ArgumentError
		require.ErrorAs(t, err, &argErr)
		require.Equal(t, "member of boundkey", argErr.Want)
		require.Equal(t, "42", argErr.Got)
	})
	t.Run("unknown name", func(t *testing.T) {
		_, _, err := bindOne(t, conv, "sideways")
		var enumErr *types.EnumError
		require.ErrorAs(t, err, &enumErr)
		require.Equal(t, "boundkey", enumErr.Set)
		require.Equal(t, "sideways", enumErr.Name)
	})
	t.Run("other enum kind rejected", func(t *testing.T) {
		// StreamLog shares the representation of BoundkeyLo but not the
		// kind; it must never pass as a bound key.
		_, _, err := bindOne(t, conv, types.StreamLog)
		var argErr *types.ArgumentError
		require.ErrorAs(t, err, &argErr)
		require.Contains(t, argErr.Got, "Streamtype")
		require.Contains(t, argErr.Want, "boundkey")
	})
	t.Run("typed non-member rejected", func(t *testing.T) {
		_, _, err := bindOne(t, conv, types.Boundkey(99))
		require.Error(t, err)
	})
}

func TestF64SliceConverter(t *testing.T) {
	t.Run("float64 borrows", func(t *testing.T) {
		buf := []float64{1, 2}
		out, finish, err := bindOne(t, F64Slice(), buf)
		require.NoError(t, err)
		require.Nil(t, finish, "a borrowed buffer needs no post-call work")
		got := out.([]float64)
		require.Same(t, &buf[0], &got[0])
	})
	t.Run("float32 copies and writes back", func(t *testing.T) {
		buf := []float32{1, 2}
		out, finish, err := bindOne(t, F64Slice(), buf)
		require.NoError(t, err)
		require.NotNil(t, finish)
		tmp := out.([]float64)
		require.Equal(t, []float64{1, 2}, tmp)

		tmp[0] = 8.5
		require.Equal(t, []float32{1, 2}, buf)
		finish()
		require.Equal(t, []float32{8.5, 2}, buf)
	})
	t.Run("other kinds rejected", func(t *testing.T) {
		_, _, err := bindOne(t, F64Slice(), []int{1})
		require.Error(t, err)
	})
}

func TestIntSliceConverter(t *testing.T) {
	t.Run("int32 borrows", func(t *testing.T) {
		buf := []int32{1, 2}
		out, finish, err := bindOne(t, IntSlice(), buf)
		require.NoError(t, err)
		require.Nil(t, finish)
		got := out.([]int32)
		require.Same(t, &buf[0], &got[0])
	})
	t.Run("int copies and writes back", func(t *testing.T) {
		buf := []int{1, 2}
		out, finish, err := bindOne(t, IntSlice(), buf)
		require.NoError(t, err)
		require.NotNil(t, finish)
		tmp := out.([]int32)

		tmp[1] = 20
		finish()
		require.Equal(t, []int{1, 20}, buf)
	})
	t.Run("element out of range", func(t *testing.T) {
		_, _, err := bindOne(t, IntSlice(), []int{1 << 31})
		var argErr *types.ArgumentError
		require.ErrorAs(t, err, &argErr)
		require.Equal(t, "arg[0]", argErr.Param)
	})
	t.Run("other kinds rejected", func(t *testing.T) {
		_, _, err := bindOne(t, IntSlice(), []float64{1})
		require.Error(t, err)
	})
}

func TestBindComposesFinishers(t *testing.T) {
	sig := Sig{Op: "getvartypelist", Params: []Param{
		{Name: "subj", Conv: IntSlice()},
		{Name: "vartypes", Conv: IntSlice()},
	}}

	subj := []int{0, 1}
	out := []int{0, 0}
	vals, finish, err := Bind(sig, []any{subj, out})
	require.NoError(t, err)
	require.NotNil(t, finish)

	// simulate engine writes into both temporaries
	vals[0].([]int32)[1] = 11
	vals[1].([]int32)[0] = 1
	require.Equal(t, []int{0, 1}, subj)
	require.Equal(t, []int{0, 0}, out)

	finish()
	require.Equal(t, []int{0, 11}, subj)
	require.Equal(t, []int{1, 0}, out)
}

func TestBindNoFinishForBorrowed(t *testing.T) {
	sig := Sig{Op: "putclist", Params: []Param{
		{Name: "subj", Conv: IntSlice()},
		{Name: "val", Conv: F64Slice()},
	}}

	vals, finish, err := Bind(sig, []any{[]int32{0}, []float64{1.5}})
	require.NoError(t, err)
	require.Nil(t, finish, "borrowed buffers compose to no finish hook")
	require.Len(t, vals, 2)
}

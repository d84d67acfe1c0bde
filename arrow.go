package mosek

import (
	"fmt"

	"github.com/apache/arrow/go/v13/arrow/array"

	"github.com/sdanfort/mosek-linux/internal/api"
	"github.com/sdanfort/mosek-linux/types"
)

// Arrow columns already hold dense numeric data in the engine's memory
// layout. The adapters below borrow a column's storage as a plain slice,
// so data prepared in Arrow feeds native calls without a copy; slicing
// an array is handled, since a column's value window is already
// offset-adjusted. Arrow validity bitmaps have no native counterpart, so
// a column carrying nulls is rejected rather than silently zero-filled.

// Float64Column borrows the values of col as a []float64. The slice
// aliases the array's buffer and stays valid while the caller retains
// the array.
func Float64Column(col *array.Float64) ([]float64, error) {
	if n := col.NullN(); n != 0 {
		return nil, &types.ArgumentError{
			Op: "float64column", Param: "col",
			Want: "no null entries", Got: fmt.Sprintf("%d nulls", n),
		}
	}
	return col.Float64Values(), nil
}

// Int32Column borrows the values of col as a []int32.
func Int32Column(col *array.Int32) ([]int32, error) {
	if n := col.NullN(); n != 0 {
		return nil, &types.ArgumentError{
			Op: "int32column", Param: "col",
			Want: "no null entries", Got: fmt.Sprintf("%d nulls", n),
		}
	}
	return col.Int32Values(), nil
}

// PutCColumns sets objective coefficients from Arrow columns: variable
// subj[k] gets coefficient val[k]. Both columns must be null-free and of
// equal length.
func (t *Task) PutCColumns(subj *array.Int32, val *array.Float64) error {
	h, err := t.handle("putclist")
	if err != nil {
		return err
	}
	sj, err := Int32Column(subj)
	if err != nil {
		return err
	}
	v, err := Float64Column(val)
	if err != nil {
		return err
	}
	return api.PutCList(t.fns, h, sj, v)
}

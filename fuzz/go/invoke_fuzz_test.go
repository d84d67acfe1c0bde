//go:build go1.18

package gofuzz

import (
	"errors"
	"testing"

	mosek "github.com/sdanfort/mosek-linux"
	"github.com/sdanfort/mosek-linux/types"
)

// FuzzInvoke throws argument vectors of arbitrary length and kind at
// every bound operation. The contract layer must either run the call or
// reject it with a classified error; it must never panic and never let a
// malformed argument through to the engine.
func FuzzInvoke(f *testing.F) {
	f.Add(uint8(0), int64(2), 1.5, "ra")
	f.Add(uint8(7), int64(0), -1e30, "up")
	f.Add(uint8(130), int64(-1), 0.0, "type_int")
	f.Add(uint8(255), int64(1<<40), 7.25, "itr")
	f.Add(uint8(31), int64(3), 2.0, "")

	f.Fuzz(func(t *testing.T, opIdx uint8, i int64, x float64, s string) {
		task := newFuzzTask(t)
		if err := task.AppendVars(2); err != nil {
			t.Fatal(err)
		}
		if err := task.AppendCons(1); err != nil {
			t.Fatal(err)
		}

		ops := mosek.Ops()
		op := ops[int(opIdx)%len(ops)]

		pool := []any{int(i), s, x, []float64{x, x}, []int32{int32(i), 0}, types.SolItr}
		n := (int(opIdx) >> 4) % (len(pool) + 1)
		_, err := task.Invoke(op, pool[:n]...)
		if err == nil {
			return
		}
		var argErr *types.ArgumentError
		var enumErr *types.EnumError
		var engErr *types.Error
		if !errors.As(err, &argErr) && !errors.As(err, &enumErr) && !errors.As(err, &engErr) {
			t.Fatalf("op %s: unclassified error %T: %v", op, err, err)
		}
	})
}

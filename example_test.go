package mosek_test

import (
	"fmt"

	mosek "github.com/sdanfort/mosek-linux"
	"github.com/sdanfort/mosek-linux/internal/ffi"
	"github.com/sdanfort/mosek-linux/internal/mockengine"
)

func check(err error) {
	if err != nil {
		panic(err)
	}
}

// Example builds and solves the linear program
//
//	maximize    3 x0 + 2 x1
//	subject to  x0 + x1 <= 10,  1 <= x0 <= 5,  x1 <= 7
//
// against the in-process mock engine, so it runs without a native
// library or a license.
func Example() {
	eng := mockengine.New()
	defer eng.Close()
	restore := ffi.Use(eng.Funcs())
	defer restore()

	env, err := mosek.MakeEnv()
	check(err)
	defer env.Dispose()

	task, err := env.MakeTask(1, 2)
	check(err)
	defer task.Dispose()

	check(task.AppendVars(2))
	check(task.AppendCons(1))
	check(task.PutCList([]int32{0, 1}, []float64{3, 2}))
	check(task.PutVarBound(0, mosek.BoundkeyRa, 1, 5))
	check(task.PutVarBound(1, mosek.BoundkeyUp, -1e30, 7))
	check(task.PutARow(0, []int32{0, 1}, []float64{1, 1}))
	check(task.PutConBound(0, mosek.BoundkeyUp, -1e30, 10))
	check(task.PutObjSense(mosek.ObjsenseMaximize))

	_, err = task.Optimize()
	check(err)

	solsta, err := task.GetSolSta(mosek.SolItr)
	check(err)
	xx, err := task.GetXx(mosek.SolItr)
	check(err)
	obj, err := task.GetPrimalObj(mosek.SolItr)
	check(err)

	fmt.Println("status:", solsta)
	fmt.Println("x:", xx)
	fmt.Printf("objective: %g\n", obj)

	// Output:
	// status: optimal
	// x: [1 7]
	// objective: 17
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	mosek "github.com/sdanfort/mosek-linux"
	"github.com/sdanfort/mosek-linux/internal/ffi"
	"github.com/sdanfort/mosek-linux/internal/mockengine"
	"github.com/sdanfort/mosek-linux/types"
)

// This is just a demo to ensure the whole binding runs end to end. With
// -mock (the default) it solves against the in-process mock engine, so
// no native library or license is needed.
func main() {
	mock := flag.Bool("mock", true, "use the in-process mock engine")
	optimizer := flag.String("optimizer", "", "value for MSK_IPAR_OPTIMIZER, e.g. MSK_OPTIMIZER_PRIMAL_SIMPLEX")
	remote := flag.String("remote", "", "solve server address; empty solves locally")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	mosek.SetLogger(logger)

	if *mock {
		eng := mockengine.New()
		defer eng.Close()
		restore := ffi.Use(eng.Funcs())
		defer restore()
	}

	major, minor, revision, err := mosek.Version()
	if err != nil {
		panic(err)
	}
	fmt.Printf("MOSEK %d.%d.%d\n", major, minor, revision)

	cache, err := os.MkdirTemp("", "mosek-demo")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(cache)

	env, err := mosek.MakeEnv(mosek.WithCacheDir(cache))
	if err != nil {
		panic(err)
	}
	defer env.Dispose()

	task, err := env.MakeTask(1, 2)
	if err != nil {
		panic(err)
	}
	defer task.Dispose()

	// maximize 3 x0 + 2 x1  s.t.  x0 + x1 <= 10,  1 <= x0 <= 5,  x1 <= 7
	if err := task.PutTaskName("demo-lp"); err != nil {
		panic(err)
	}
	must(task.AppendVars(2))
	must(task.AppendCons(1))
	must(task.PutCList([]int32{0, 1}, []float64{3, 2}))
	must(task.PutVarBound(0, mosek.BoundkeyRa, 1, 5))
	must(task.PutVarBound(1, mosek.BoundkeyUp, -1e30, 7))
	must(task.PutARow(0, []int32{0, 1}, []float64{1, 1}))
	must(task.PutConBound(0, mosek.BoundkeyUp, -1e30, 10))
	must(task.PutObjSense(mosek.ObjsenseMaximize))

	must(task.LinkStream(mosek.StreamLog, mosek.StreamToLogger(logger, zerolog.InfoLevel)))
	must(task.PutCallback(func(code types.Callbackcode, dinf []float64, iinf []int32, liinf []int64) bool {
		logger.Debug().Stringer("code", code).Msg("progress")
		return false
	}))

	if *optimizer != "" {
		must(task.PutParam("MSK_IPAR_OPTIMIZER", *optimizer))
	}

	trm := types.ResOk
	if *remote != "" {
		token, err := task.AsyncOptimize(*remote, "")
		if err != nil {
			panic(err)
		}
		fmt.Printf("submitted job %s\n", token)
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		_, trm, err = task.AwaitAsync(ctx, *remote, "", token, time.Second)
		if err != nil {
			panic(err)
		}
	} else {
		var err error
		trm, err = task.Optimize()
		if err != nil {
			panic(err)
		}
	}
	fmt.Printf("termination: %v\n", trm)

	solsta, err := task.GetSolSta(mosek.SolItr)
	if err != nil {
		panic(err)
	}
	xx, err := task.GetXx(mosek.SolItr)
	if err != nil {
		panic(err)
	}
	obj, err := task.GetPrimalObj(mosek.SolItr)
	if err != nil {
		panic(err)
	}
	fmt.Printf("status: %v\nx: %v\nobjective: %g\n", solsta, xx, obj)

	must(task.WriteData("demo.task"))
	loaded, err := env.MakeTask(0, 0)
	if err != nil {
		panic(err)
	}
	defer loaded.Dispose()
	must(loaded.ReadData("demo.task"))
	n, err := loaded.GetNumVar()
	if err != nil {
		panic(err)
	}
	fmt.Printf("round-tripped task file with %d variables\n", n)
	fmt.Println("finished")
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

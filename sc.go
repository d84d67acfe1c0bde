package mosek

import (
	"fmt"
	"math"
	"strconv"

	"github.com/sdanfort/mosek-linux/internal/api"
	"github.com/sdanfort/mosek-linux/internal/ffi"
	"github.com/sdanfort/mosek-linux/types"
)

// SCTerm is one separable convex term added to the objective. Opr
// selects the shape: F*x*ln(x) (ScoprEnt), F*exp(G*x+H) (ScoprExp),
// F*ln(G*x+H) (ScoprLog) or F*(x+H)^G (ScoprPow), each applied to
// variable J.
type SCTerm struct {
	Opr types.Scopr
	J   int
	F   float64
	G   float64
	H   float64
}

// PutSCEval replaces the task's separable convex terms. The first call
// initializes the extension library (shared process-wide until
// ScTeardown) and attaches an auxiliary handle to the task; later calls
// reuse the handle and replace its operator list. Dispose deletes the
// auxiliary handle before the task itself.
func (t *Task) PutSCEval(terms []SCTerm) error {
	h, err := t.handle("scputeval")
	if err != nil {
		return err
	}
	opro := make([]types.Scopr, len(terms))
	oprjo := make([]int32, len(terms))
	oprfo := make([]float64, len(terms))
	oprgo := make([]float64, len(terms))
	oprho := make([]float64, len(terms))
	for k, term := range terms {
		if term.J < 0 || term.J > math.MaxInt32 {
			return &types.ArgumentError{
				Op: "scputeval", Param: fmt.Sprintf("terms[%d].J", k),
				Want: "index in [0, 2^31)", Got: strconv.Itoa(term.J),
			}
		}
		opro[k] = term.Opr
		oprjo[k] = int32(term.J)
		oprfo[k] = term.F
		oprgo[k] = term.G
		oprho[k] = term.H
	}
	sc, err := t.scHandle(h)
	if err != nil {
		return err
	}
	return api.ScPutEval(t.fns, h, sc, opro, oprjo, oprfo, oprgo, oprho)
}

// ClearSCEval removes the separable terms by deleting the task's
// auxiliary handle. The next PutSCEval attaches a fresh one; a previous
// handle is always deleted before a new one is attached. Clearing a task
// with no terms is a no-op.
func (t *Task) ClearSCEval() error {
	h, err := t.handle("scdelete")
	if err != nil {
		return err
	}
	t.scMu.Lock()
	defer t.scMu.Unlock()
	if t.sc == 0 {
		return nil
	}
	sc := t.sc
	t.sc = 0
	return api.ScDelete(t.fns, h, &sc)
}

// scHandle returns the task's auxiliary extension handle, creating it on
// first use.
func (t *Task) scHandle(h ffi.Task) (ffi.ScHandle, error) {
	t.scMu.Lock()
	defer t.scMu.Unlock()
	if t.sc != 0 {
		return t.sc, nil
	}
	sc, err := api.ScCreate(t.fns, h)
	if err != nil {
		return 0, err
	}
	t.sc = sc
	return sc, nil
}

// ScTeardown releases the separable convex extension's process-wide
// state. Call it only when no task still holds separable terms; the next
// PutSCEval after a teardown initializes the extension again.
func ScTeardown() error {
	fns, err := ffi.Active()
	if err != nil {
		return err
	}
	return api.ScTeardown(fns)
}

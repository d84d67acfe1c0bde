package mosek

import (
	"github.com/sdanfort/mosek-linux/internal/api"
	"github.com/sdanfort/mosek-linux/types"
)

// Optimize runs the selected optimizer on the problem. The returned code
// is the termination status: ResOk for a normal finish, or a trm code
// such as ResTrmMaxIterations naming the limit that ended the run early.
// A non-nil error means the solve failed outright and no new solution
// was produced.
func (t *Task) Optimize() (types.Rescode, error) {
	h, err := t.handle("optimizetrm")
	if err != nil {
		return 0, err
	}
	return api.OptimizeTrm(t.fns, h)
}

// GetSolSta returns the status of the given solution.
func (t *Task) GetSolSta(which types.Soltype) (types.Solsta, error) {
	h, err := t.handle("getsolsta")
	if err != nil {
		return 0, err
	}
	return api.GetSolSta(t.fns, h, which)
}

// GetProSta returns the problem status derived from the given solution.
func (t *Task) GetProSta(which types.Soltype) (types.Prosta, error) {
	h, err := t.handle("getprosta")
	if err != nil {
		return 0, err
	}
	return api.GetProSta(t.fns, h, which)
}

// GetXx returns the primal solution values, one per variable.
func (t *Task) GetXx(which types.Soltype) ([]float64, error) {
	h, err := t.handle("getxx")
	if err != nil {
		return nil, err
	}
	n, err := api.GetNumVar(t.fns, h)
	if err != nil {
		return nil, err
	}
	xx := make([]float64, n)
	if err := api.GetXx(t.fns, h, which, xx); err != nil {
		return nil, err
	}
	return xx, nil
}

// GetXxInto fills xx with the primal solution values. len(xx) must equal
// the number of variables; the engine writes straight into the caller's
// array.
func (t *Task) GetXxInto(which types.Soltype, xx []float64) error {
	h, err := t.handle("getxx")
	if err != nil {
		return err
	}
	return api.GetXx(t.fns, h, which, xx)
}

// GetXxSlice returns the primal values of the variables in [first, last).
func (t *Task) GetXxSlice(which types.Soltype, first, last int) ([]float64, error) {
	h, err := t.handle("getxxslice")
	if err != nil {
		return nil, err
	}
	n := last - first
	if n < 0 {
		n = 0
	}
	xx := make([]float64, n)
	if err := api.GetXxSlice(t.fns, h, which, first, last, xx); err != nil {
		return nil, err
	}
	return xx, nil
}

// GetY returns the dual values, one per constraint.
func (t *Task) GetY(which types.Soltype) ([]float64, error) {
	h, err := t.handle("gety")
	if err != nil {
		return nil, err
	}
	n, err := api.GetNumCon(t.fns, h)
	if err != nil {
		return nil, err
	}
	y := make([]float64, n)
	if err := api.GetY(t.fns, h, which, y); err != nil {
		return nil, err
	}
	return y, nil
}

// GetYInto fills y with the dual values; len(y) must equal the number of
// constraints.
func (t *Task) GetYInto(which types.Soltype, y []float64) error {
	h, err := t.handle("gety")
	if err != nil {
		return err
	}
	return api.GetY(t.fns, h, which, y)
}

// GetPrimalObj returns the primal objective value of the given solution.
func (t *Task) GetPrimalObj(which types.Soltype) (float64, error) {
	h, err := t.handle("getprimalobj")
	if err != nil {
		return 0, err
	}
	return api.GetPrimalObj(t.fns, h, which)
}

package mosek

import (
	"github.com/sdanfort/mosek-linux/internal/api"
	"github.com/sdanfort/mosek-linux/types"
)

// AppendVars adds num variables to the problem. New variables start
// free with a zero objective coefficient and an empty matrix column.
func (t *Task) AppendVars(num int) error {
	h, err := t.handle("appendvars")
	if err != nil {
		return err
	}
	return api.AppendVars(t.fns, h, num)
}

// AppendCons adds num constraints to the problem.
func (t *Task) AppendCons(num int) error {
	h, err := t.handle("appendcons")
	if err != nil {
		return err
	}
	return api.AppendCons(t.fns, h, num)
}

// PutCj sets the objective coefficient of variable j.
func (t *Task) PutCj(j int, cj float64) error {
	h, err := t.handle("putcj")
	if err != nil {
		return err
	}
	return api.PutCj(t.fns, h, j, cj)
}

// PutCList sets objective coefficients for the listed variables:
// subj[k] gets coefficient val[k].
func (t *Task) PutCList(subj []int32, val []float64) error {
	h, err := t.handle("putclist")
	if err != nil {
		return err
	}
	return api.PutCList(t.fns, h, subj, val)
}

// PutAij sets one entry of the constraint matrix.
func (t *Task) PutAij(i, j int, aij float64) error {
	h, err := t.handle("putaij")
	if err != nil {
		return err
	}
	return api.PutAij(t.fns, h, i, j, aij)
}

// PutARow replaces row i of the constraint matrix with the sparse
// entries (subi[k], vali[k]).
func (t *Task) PutARow(i int, subi []int32, vali []float64) error {
	h, err := t.handle("putarow")
	if err != nil {
		return err
	}
	return api.PutARow(t.fns, h, i, subi, vali)
}

// PutACol replaces column j of the constraint matrix.
func (t *Task) PutACol(j int, subi []int32, vali []float64) error {
	h, err := t.handle("putacol")
	if err != nil {
		return err
	}
	return api.PutACol(t.fns, h, j, subi, vali)
}

// PutVarBound sets the bound of variable j. bl and bu are read per the
// bound key; an infinite side is conventionally +-1e30 but any value is
// accepted for a side the key ignores.
func (t *Task) PutVarBound(j int, bk types.Boundkey, bl, bu float64) error {
	h, err := t.handle("putvarbound")
	if err != nil {
		return err
	}
	return api.PutVarBound(t.fns, h, j, bk, bl, bu)
}

// PutVarBoundSlice sets bounds for the variables in [first, last): entry
// k of the slices applies to variable first+k.
func (t *Task) PutVarBoundSlice(first, last int, bk []types.Boundkey, bl, bu []float64) error {
	h, err := t.handle("putvarboundslice")
	if err != nil {
		return err
	}
	return api.PutVarBoundSlice(t.fns, h, first, last, bk, bl, bu)
}

// PutVarBoundList sets bounds for the listed variables.
func (t *Task) PutVarBoundList(subj []int32, bk []types.Boundkey, bl, bu []float64) error {
	h, err := t.handle("putvarboundlist")
	if err != nil {
		return err
	}
	return api.PutVarBoundList(t.fns, h, subj, bk, bl, bu)
}

// PutConBound sets the bound of constraint i.
func (t *Task) PutConBound(i int, bk types.Boundkey, bl, bu float64) error {
	h, err := t.handle("putconbound")
	if err != nil {
		return err
	}
	return api.PutConBound(t.fns, h, i, bk, bl, bu)
}

// PutConBoundSlice sets bounds for the constraints in [first, last).
func (t *Task) PutConBoundSlice(first, last int, bk []types.Boundkey, bl, bu []float64) error {
	h, err := t.handle("putconboundslice")
	if err != nil {
		return err
	}
	return api.PutConBoundSlice(t.fns, h, first, last, bk, bl, bu)
}

// PutVarType declares variable j continuous or integer.
func (t *Task) PutVarType(j int, vt types.Vartype) error {
	h, err := t.handle("putvartype")
	if err != nil {
		return err
	}
	return api.PutVarType(t.fns, h, j, vt)
}

// PutVarTypeList declares the type of each listed variable.
func (t *Task) PutVarTypeList(subj []int32, vts []types.Vartype) error {
	h, err := t.handle("putvartypelist")
	if err != nil {
		return err
	}
	return api.PutVarTypeList(t.fns, h, subj, vts)
}

// GetVarTypeList returns the type of each listed variable.
func (t *Task) GetVarTypeList(subj []int32) ([]types.Vartype, error) {
	h, err := t.handle("getvartypelist")
	if err != nil {
		return nil, err
	}
	out := make([]types.Vartype, len(subj))
	if err := api.GetVarTypeList(t.fns, h, subj, out); err != nil {
		return nil, err
	}
	return out, nil
}

// PutObjSense selects minimization or maximization.
func (t *Task) PutObjSense(sense types.Objsense) error {
	h, err := t.handle("putobjsense")
	if err != nil {
		return err
	}
	return api.PutObjSense(t.fns, h, sense)
}

// GetObjSense returns the optimization direction.
func (t *Task) GetObjSense() (types.Objsense, error) {
	h, err := t.handle("getobjsense")
	if err != nil {
		return 0, err
	}
	return api.GetObjSense(t.fns, h)
}

// GetNumVar returns the number of variables in the problem.
func (t *Task) GetNumVar() (int, error) {
	h, err := t.handle("getnumvar")
	if err != nil {
		return 0, err
	}
	return api.GetNumVar(t.fns, h)
}

// GetNumCon returns the number of constraints in the problem.
func (t *Task) GetNumCon() (int, error) {
	h, err := t.handle("getnumcon")
	if err != nil {
		return 0, err
	}
	return api.GetNumCon(t.fns, h)
}

// PutTaskName names the task; the name travels with written task files.
func (t *Task) PutTaskName(name string) error {
	h, err := t.handle("puttaskname")
	if err != nil {
		return err
	}
	return api.PutTaskName(t.fns, h, name)
}

func (t *Task) GetTaskName() (string, error) {
	h, err := t.handle("gettaskname")
	if err != nil {
		return "", err
	}
	return api.GetTaskName(t.fns, h)
}

// PutVarName names variable j.
func (t *Task) PutVarName(j int, name string) error {
	h, err := t.handle("putvarname")
	if err != nil {
		return err
	}
	return api.PutVarName(t.fns, h, j, name)
}

func (t *Task) GetVarName(j int) (string, error) {
	h, err := t.handle("getvarname")
	if err != nil {
		return "", err
	}
	return api.GetVarName(t.fns, h, j)
}

// WriteData writes the task's problem data to filename. The format
// follows the file extension (see types.Dataformat); solutions are not
// part of the data and are not written.
func (t *Task) WriteData(filename string) error {
	h, err := t.handle("writedata")
	if err != nil {
		return err
	}
	return api.WriteData(t.fns, h, filename)
}

// ReadData replaces the task's problem data with the contents of
// filename.
func (t *Task) ReadData(filename string) error {
	h, err := t.handle("readdata")
	if err != nil {
		return err
	}
	return api.ReadData(t.fns, h, filename)
}

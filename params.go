package mosek

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sdanfort/mosek-linux/internal/api"
	"github.com/sdanfort/mosek-linux/types"
)

// PutIntParam sets an integer parameter.
func (t *Task) PutIntParam(param types.Iparam, value int32) error {
	h, err := t.handle("putintparam")
	if err != nil {
		return err
	}
	return api.PutIntParam(t.fns, h, param, value)
}

// GetIntParam returns the value of an integer parameter.
func (t *Task) GetIntParam(param types.Iparam) (int32, error) {
	h, err := t.handle("getintparam")
	if err != nil {
		return 0, err
	}
	return api.GetIntParam(t.fns, h, param)
}

// PutDouParam sets a double parameter.
func (t *Task) PutDouParam(param types.Dparam, value float64) error {
	h, err := t.handle("putdouparam")
	if err != nil {
		return err
	}
	return api.PutDouParam(t.fns, h, param, value)
}

// GetDouParam returns the value of a double parameter.
func (t *Task) GetDouParam(param types.Dparam) (float64, error) {
	h, err := t.handle("getdouparam")
	if err != nil {
		return 0, err
	}
	return api.GetDouParam(t.fns, h, param)
}

// PutStrParam sets a string parameter.
func (t *Task) PutStrParam(param types.Sparam, value string) error {
	h, err := t.handle("putstrparam")
	if err != nil {
		return err
	}
	return api.PutStrParam(t.fns, h, param, value)
}

// GetStrParam returns the value of a string parameter.
func (t *Task) GetStrParam(param types.Sparam) (string, error) {
	h, err := t.handle("getstrparam")
	if err != nil {
		return "", err
	}
	return api.GetStrParam(t.fns, h, param)
}

// Generic parameter names follow the engine convention: "MSK_IPAR_"
// integer, "MSK_DPAR_" double, "MSK_SPAR_" string, each followed by the
// upper-cased member name of the respective registry.
const (
	iparPrefix = "MSK_IPAR_"
	dparPrefix = "MSK_DPAR_"
	sparPrefix = "MSK_SPAR_"
)

// Integer parameters whose values are members of an enumeration, with
// the prefix the engine's symbolic value constants carry.
var iparamValueSets = map[types.Iparam]struct {
	set    *types.EnumSet
	prefix string
}{
	types.IparamOptimizer:   {types.Optimizertypes, "MSK_OPTIMIZER_"},
	types.IparamPresolveUse: {types.Presolvemodes, "MSK_PRESOLVE_MODE_"},
}

// PutParam sets a parameter through the generic string namespace. The
// name selects the parameter kind by prefix; the value is parsed to the
// parameter's type. Integer parameters also accept symbolic values:
// "MSK_ON"/"MSK_OFF", and for enumerated parameters the engine constant
// ("MSK_OPTIMIZER_FREE_SIMPLEX") or the bare member name
// ("free_simplex").
func (t *Task) PutParam(name, value string) error {
	h, err := t.handle("putparam")
	if err != nil {
		return err
	}
	switch {
	case strings.HasPrefix(name, iparPrefix):
		m, err := types.Iparams.ByName(strings.ToLower(strings.TrimPrefix(name, iparPrefix)))
		if err != nil {
			return &types.ArgumentError{Op: "putparam", Param: "parname", Got: name, Err: err}
		}
		par := types.Iparam(m.Value)
		v, err := parseIparValue(par, value)
		if err != nil {
			return err
		}
		return api.PutIntParam(t.fns, h, par, v)
	case strings.HasPrefix(name, dparPrefix):
		m, err := types.Dparams.ByName(strings.ToLower(strings.TrimPrefix(name, dparPrefix)))
		if err != nil {
			return &types.ArgumentError{Op: "putparam", Param: "parname", Got: name, Err: err}
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return &types.ArgumentError{Op: "putparam", Param: "parvalue", Want: "a float", Got: value}
		}
		return api.PutDouParam(t.fns, h, types.Dparam(m.Value), v)
	case strings.HasPrefix(name, sparPrefix):
		m, err := types.Sparams.ByName(strings.ToLower(strings.TrimPrefix(name, sparPrefix)))
		if err != nil {
			return &types.ArgumentError{Op: "putparam", Param: "parname", Got: name, Err: err}
		}
		return api.PutStrParam(t.fns, h, types.Sparam(m.Value), value)
	default:
		return &types.ArgumentError{
			Op: "putparam", Param: "parname",
			Want: "MSK_IPAR_*, MSK_DPAR_* or MSK_SPAR_* name", Got: name,
		}
	}
}

func parseIparValue(par types.Iparam, s string) (int32, error) {
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		return int32(n), nil
	}
	switch s {
	case "MSK_ON":
		return 1, nil
	case "MSK_OFF":
		return 0, nil
	}
	vs, ok := iparamValueSets[par]
	if !ok {
		return 0, &types.ArgumentError{Op: "putparam", Param: "parvalue", Want: "an integer", Got: s}
	}
	name := s
	if cut, found := strings.CutPrefix(name, vs.prefix); found {
		name = cut
	}
	m, err := vs.set.ByName(strings.ToLower(name))
	if err != nil {
		return 0, &types.ArgumentError{Op: "putparam", Param: "parvalue", Got: s, Err: err}
	}
	return m.Value, nil
}

// ReadParamString applies parameter assignments from data, one
// "NAME value" pair per line. Text from the comment sign (the
// SparamParamCommentSign value, "%%" unless changed) to the end of the
// line is ignored, as are blank lines. Processing stops at the first
// malformed line or rejected assignment.
func (t *Task) ReadParamString(data string) error {
	h, err := t.handle("readparamstring")
	if err != nil {
		return err
	}
	comment := "%%"
	if cs, err := api.GetStrParam(t.fns, h, types.SparamParamCommentSign); err == nil && cs != "" {
		comment = cs
	}
	for i, line := range strings.Split(data, "\n") {
		if j := strings.Index(line, comment); j >= 0 {
			line = line[:j]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return &types.ArgumentError{
				Op: "readparamstring",
				Want: "NAME value", Got: fmt.Sprintf("%q at line %d", strings.TrimSpace(line), i+1),
			}
		}
		if err := t.PutParam(fields[0], fields[1]); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return nil
}

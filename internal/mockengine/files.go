package mockengine

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/sdanfort/mosek-linux/internal/ffi"
	"github.com/sdanfort/mosek-linux/types"
)

// snapshot is the stored form of a task's data. The constraint matrix
// crosses as triplets sorted by row then column, so identical tasks
// produce identical files.
type snapshot struct {
	Name     string                   `json:"name"`
	NumVar   int32                    `json:"numvar"`
	NumCon   int32                    `json:"numcon"`
	Objsense types.Objsense           `json:"objsense"`
	C        []float64                `json:"c"`
	Subi     []int32                  `json:"subi"`
	Subj     []int32                  `json:"subj"`
	Valij    []float64                `json:"valij"`
	VarBk    []types.Boundkey         `json:"varbk"`
	VarBl    []float64                `json:"varbl"`
	VarBu    []float64                `json:"varbu"`
	ConBk    []types.Boundkey         `json:"conbk"`
	ConBl    []float64                `json:"conbl"`
	ConBu    []float64                `json:"conbu"`
	Vartypes []types.Vartype          `json:"vartypes"`
	VarNames []string                 `json:"varnames"`
	IPars    map[types.Iparam]int32   `json:"ipars,omitempty"`
	DPars    map[types.Dparam]float64 `json:"dpars,omitempty"`
	SPars    map[types.Sparam]string  `json:"spars,omitempty"`
}

func snapshotOf(ts *taskState) snapshot {
	s := snapshot{
		Name:     ts.name,
		NumVar:   ts.numvar,
		NumCon:   ts.numcon,
		Objsense: ts.objsense,
		C:        ts.c,
		VarBk:    ts.varBk,
		VarBl:    ts.varBl,
		VarBu:    ts.varBu,
		ConBk:    ts.conBk,
		ConBl:    ts.conBl,
		ConBu:    ts.conBu,
		Vartypes: ts.vartypes,
		VarNames: ts.varnames,
		IPars:    ts.ipars,
		DPars:    ts.dpars,
		SPars:    ts.spars,
	}
	is := make([]int32, 0, len(ts.rows))
	for i := range ts.rows {
		is = append(is, i)
	}
	sort.Slice(is, func(a, b int) bool { return is[a] < is[b] })
	for _, i := range is {
		row := ts.rows[i]
		js := make([]int32, 0, len(row))
		for j := range row {
			js = append(js, j)
		}
		sort.Slice(js, func(a, b int) bool { return js[a] < js[b] })
		for _, j := range js {
			s.Subi = append(s.Subi, i)
			s.Subj = append(s.Subj, j)
			s.Valij = append(s.Valij, row[j])
		}
	}
	return s
}

func (s snapshot) consistent() bool {
	nv, nc := int(s.NumVar), int(s.NumCon)
	if nv < 0 || nc < 0 {
		return false
	}
	if len(s.C) != nv || len(s.VarBk) != nv || len(s.VarBl) != nv || len(s.VarBu) != nv ||
		len(s.Vartypes) != nv || len(s.VarNames) != nv {
		return false
	}
	if len(s.ConBk) != nc || len(s.ConBl) != nc || len(s.ConBu) != nc {
		return false
	}
	if len(s.Subj) != len(s.Subi) || len(s.Valij) != len(s.Subi) {
		return false
	}
	for k := range s.Subi {
		if s.Subi[k] < 0 || s.Subi[k] >= s.NumCon || s.Subj[k] < 0 || s.Subj[k] >= s.NumVar {
			return false
		}
	}
	return true
}

func applySnapshot(ts *taskState, s snapshot) {
	ts.name = s.Name
	ts.numvar = s.NumVar
	ts.numcon = s.NumCon
	ts.objsense = s.Objsense
	ts.c = s.C
	ts.varBk, ts.varBl, ts.varBu = s.VarBk, s.VarBl, s.VarBu
	ts.conBk, ts.conBl, ts.conBu = s.ConBk, s.ConBl, s.ConBu
	ts.vartypes = s.Vartypes
	ts.varnames = s.VarNames
	ts.rows = nil
	for k := range s.Subi {
		ts.setAij(s.Subi[k], s.Subj[k], s.Valij[k])
	}
	ts.ipars = make(map[types.Iparam]int32, len(s.IPars))
	for k, v := range s.IPars {
		ts.ipars[k] = v
	}
	ts.dpars = make(map[types.Dparam]float64, len(s.DPars))
	for k, v := range s.DPars {
		ts.dpars[k] = v
	}
	ts.spars = make(map[types.Sparam]string, len(s.SPars))
	for k, v := range s.SPars {
		ts.spars[k] = v
	}
	ts.solved = false
	ts.solsta, ts.prosta = 0, 0
	ts.xx, ts.y = nil, nil
	ts.pobj = 0
	ts.lastCode, ts.lastMsg = 0, ""
}

// hasDataExt mirrors the engine's format-from-extension rule.
func hasDataExt(name string) bool {
	i := strings.LastIndexByte(name, '.')
	return i > strings.LastIndexByte(name, '/') && i >= 0 && i < len(name)-1
}

func (e *Engine) writeData(task ffi.Task, filename *byte) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("writedata", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	name := cString(filename)
	if !hasDataExt(name) {
		return ts.fail(types.ResErrDataFileExt, "the file name has no recognized extension")
	}
	data, err := json.Marshal(snapshotOf(ts))
	if err != nil {
		return ts.fail(types.ResErrFileWrite, "cannot encode task data")
	}
	if err := e.files.Set([]byte(name), data); err != nil {
		return ts.fail(types.ResErrFileWrite, "cannot write file "+name)
	}
	return 0
}

func (e *Engine) readData(task ffi.Task, filename *byte) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.enter("readdata", task); rc != 0 {
		return rc
	}
	ts, ok := e.tasks[task]
	if !ok {
		return int32(types.ResErrNullTask)
	}
	name := cString(filename)
	data, err := e.files.Get([]byte(name))
	if err != nil || data == nil {
		return ts.fail(types.ResErrFileOpen, "cannot open file '"+name+"'")
	}
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil || !s.consistent() {
		return ts.fail(types.ResErrFileRead, "file '"+name+"' is not a valid task file")
	}
	applySnapshot(ts, s)
	return 0
}

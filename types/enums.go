package types

// The enumerations below mirror the engine's published constant tables for
// the surface bound by this module. The numeric values are part of the wire
// contract with libmosek64 and must never be renumbered; the registries give
// name<->value lookup for the dynamic parameter surface and String().

// Boundkey classifies a variable or constraint bound.
type Boundkey int32

const (
	BoundkeyLo Boundkey = 0 // finite lower bound only
	BoundkeyUp Boundkey = 1 // finite upper bound only
	BoundkeyFx Boundkey = 2 // fixed, lower == upper
	BoundkeyFr Boundkey = 3 // free
	BoundkeyRa Boundkey = 4 // finite range
)

var Boundkeys = register(MustDefine("boundkey",
	[]string{"lo", "up", "fx", "fr", "ra"},
	[]int32{0, 1, 2, 3, 4}))

func (v Boundkey) String() string { return Boundkeys.nameOf(int32(v)) }

// Objsense selects the optimization direction.
type Objsense int32

const (
	ObjsenseMinimize Objsense = 0
	ObjsenseMaximize Objsense = 1
)

var Objsenses = register(MustDefine("objsense",
	[]string{"minimize", "maximize"},
	[]int32{0, 1}))

func (v Objsense) String() string { return Objsenses.nameOf(int32(v)) }

// Streamtype identifies one of the text output channels of an Env or Task.
type Streamtype int32

const (
	StreamLog Streamtype = 0
	StreamMsg Streamtype = 1
	StreamErr Streamtype = 2
	StreamWrn Streamtype = 3
)

// NumStreams is the number of stream channels per handle.
const NumStreams = 4

var Streamtypes = register(MustDefine("streamtype",
	[]string{"log", "msg", "err", "wrn"},
	[]int32{0, 1, 2, 3}))

func (v Streamtype) String() string { return Streamtypes.nameOf(int32(v)) }

// Soltype identifies which solution a retrieval operation refers to.
type Soltype int32

const (
	SolItr Soltype = 0 // interior-point solution
	SolBas Soltype = 1 // basic solution
	SolItg Soltype = 2 // integer solution
)

var Soltypes = register(MustDefine("soltype",
	[]string{"itr", "bas", "itg"},
	[]int32{0, 1, 2}))

func (v Soltype) String() string { return Soltypes.nameOf(int32(v)) }

// Solsta is the status of a solution.
type Solsta int32

const (
	SolstaUnknown         Solsta = 0
	SolstaOptimal         Solsta = 1
	SolstaPrimFeas        Solsta = 2
	SolstaDualFeas        Solsta = 3
	SolstaPrimAndDualFeas Solsta = 4
	SolstaPrimInfeasCer   Solsta = 5
	SolstaDualInfeasCer   Solsta = 6
	SolstaPrimIllposedCer Solsta = 7
	SolstaDualIllposedCer Solsta = 8
	SolstaIntegerOptimal  Solsta = 9
)

var Solstas = register(MustDefine("solsta",
	[]string{"unknown", "optimal", "prim_feas", "dual_feas", "prim_and_dual_feas",
		"prim_infeas_cer", "dual_infeas_cer", "prim_illposed_cer", "dual_illposed_cer",
		"integer_optimal"},
	[]int32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}))

func (v Solsta) String() string { return Solstas.nameOf(int32(v)) }

// Prosta is the status of a problem.
type Prosta int32

const (
	ProstaUnknown               Prosta = 0
	ProstaPrimAndDualFeas       Prosta = 1
	ProstaPrimFeas              Prosta = 2
	ProstaDualFeas              Prosta = 3
	ProstaPrimInfeas            Prosta = 4
	ProstaDualInfeas            Prosta = 5
	ProstaPrimAndDualInfeas     Prosta = 6
	ProstaIllPosed              Prosta = 7
	ProstaPrimInfeasOrUnbounded Prosta = 8
)

var Prostas = register(MustDefine("prosta",
	[]string{"unknown", "prim_and_dual_feas", "prim_feas", "dual_feas", "prim_infeas",
		"dual_infeas", "prim_and_dual_infeas", "ill_posed", "prim_infeas_or_unbounded"},
	[]int32{0, 1, 2, 3, 4, 5, 6, 7, 8}))

func (v Prosta) String() string { return Prostas.nameOf(int32(v)) }

// Vartype is the type of a variable.
type Vartype int32

const (
	VartypeCont Vartype = 0
	VartypeInt  Vartype = 1
)

var Vartypes = register(MustDefine("variabletype",
	[]string{"type_cont", "type_int"},
	[]int32{0, 1}))

func (v Vartype) String() string { return Vartypes.nameOf(int32(v)) }

// Callbackcode tells a progress callback where in the optimizer the engine
// currently is. Subset of the engine table covering the optimizers bound
// here.
type Callbackcode int32

const (
	CallbackBeginOptimizer Callbackcode = 0
	CallbackEndOptimizer   Callbackcode = 1
	CallbackBeginPresolve  Callbackcode = 2
	CallbackEndPresolve    Callbackcode = 3
	CallbackBeginIntpnt    Callbackcode = 4
	CallbackIntpnt         Callbackcode = 5
	CallbackEndIntpnt      Callbackcode = 6
	CallbackBeginSimplex   Callbackcode = 7
	CallbackSimplex        Callbackcode = 8
	CallbackEndSimplex     Callbackcode = 9
	CallbackBeginMio       Callbackcode = 10
	CallbackNewIntMio      Callbackcode = 11
	CallbackEndMio         Callbackcode = 12
)

var Callbackcodes = register(MustDefine("callbackcode",
	[]string{"begin_optimizer", "end_optimizer", "begin_presolve", "end_presolve",
		"begin_intpnt", "intpnt", "end_intpnt", "begin_simplex", "simplex",
		"end_simplex", "begin_mio", "new_int_mio", "end_mio"},
	[]int32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}))

func (v Callbackcode) String() string { return Callbackcodes.nameOf(int32(v)) }

// Optimizertype selects the optimizer via IparamOptimizer.
type Optimizertype int32

const (
	OptimizerConic         Optimizertype = 0
	OptimizerDualSimplex   Optimizertype = 1
	OptimizerFree          Optimizertype = 2
	OptimizerFreeSimplex   Optimizertype = 3
	OptimizerIntpnt        Optimizertype = 4
	OptimizerMixedInt      Optimizertype = 5
	OptimizerPrimalSimplex Optimizertype = 6
)

var Optimizertypes = register(MustDefine("optimizertype",
	[]string{"conic", "dual_simplex", "free", "free_simplex", "intpnt",
		"mixed_int", "primal_simplex"},
	[]int32{0, 1, 2, 3, 4, 5, 6}))

func (v Optimizertype) String() string { return Optimizertypes.nameOf(int32(v)) }

// Presolvemode controls the presolve step via IparamPresolveUse.
type Presolvemode int32

const (
	PresolveModeOff  Presolvemode = 0
	PresolveModeOn   Presolvemode = 1
	PresolveModeFree Presolvemode = 2
)

var Presolvemodes = register(MustDefine("presolvemode",
	[]string{"off", "on", "free"},
	[]int32{0, 1, 2}))

func (v Presolvemode) String() string { return Presolvemodes.nameOf(int32(v)) }

// Iparam is an integer parameter index.
type Iparam int32

const (
	IparamBiMaxIterations     Iparam = 0
	IparamIntpntMaxIterations Iparam = 1
	IparamLog                 Iparam = 2
	IparamLogIntpnt           Iparam = 3
	IparamLogMio              Iparam = 4
	IparamLogSim              Iparam = 5
	IparamMioMaxNumBranches   Iparam = 6
	IparamNumThreads          Iparam = 7
	IparamOptimizer           Iparam = 8
	IparamPresolveUse         Iparam = 9
	IparamSimMaxIterations    Iparam = 10
)

var Iparams = register(MustDefine("iparam",
	[]string{"bi_max_iterations", "intpnt_max_iterations", "log", "log_intpnt",
		"log_mio", "log_sim", "mio_max_num_branches", "num_threads", "optimizer",
		"presolve_use", "sim_max_iterations"},
	[]int32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}))

func (v Iparam) String() string { return Iparams.nameOf(int32(v)) }

// Dparam is a double parameter index.
type Dparam int32

const (
	DparamIntpntTolRelGap  Dparam = 0
	DparamLowerObjCut      Dparam = 1
	DparamMioMaxTime       Dparam = 2
	DparamMioTolRelGap     Dparam = 3
	DparamOptimizerMaxTime Dparam = 4
	DparamSimplexAbsTolPiv Dparam = 5
	DparamUpperObjCut      Dparam = 6
)

var Dparams = register(MustDefine("dparam",
	[]string{"intpnt_tol_rel_gap", "lower_obj_cut", "mio_max_time",
		"mio_tol_rel_gap", "optimizer_max_time", "simplex_abs_tol_piv",
		"upper_obj_cut"},
	[]int32{0, 1, 2, 3, 4, 5, 6}))

func (v Dparam) String() string { return Dparams.nameOf(int32(v)) }

// Sparam is a string parameter index.
type Sparam int32

const (
	SparamBasSolFileName     Sparam = 0
	SparamDataFileName       Sparam = 1
	SparamDebugFileName      Sparam = 2
	SparamIntSolFileName     Sparam = 3
	SparamParamCommentSign   Sparam = 4
	SparamParamReadFileName  Sparam = 5
	SparamParamWriteFileName Sparam = 6
)

var Sparams = register(MustDefine("sparam",
	[]string{"bas_sol_file_name", "data_file_name", "debug_file_name",
		"int_sol_file_name", "param_comment_sign", "param_read_file_name",
		"param_write_file_name"},
	[]int32{0, 1, 2, 3, 4, 5, 6}))

func (v Sparam) String() string { return Sparams.nameOf(int32(v)) }

// Transpose selects whether a matrix operand is applied transposed.
type Transpose int32

const (
	TransposeNo  Transpose = 0
	TransposeYes Transpose = 1
)

var Transposes = register(MustDefine("transpose",
	[]string{"no", "yes"},
	[]int32{0, 1}))

func (v Transpose) String() string { return Transposes.nameOf(int32(v)) }

// Dataformat names the task file formats understood by data read/write.
// The extension member selects the format from the file name suffix; data
// operations taking only a file name behave as if it were passed.
type Dataformat int32

const (
	DataFormatExtension Dataformat = 0
	DataFormatLp        Dataformat = 1
	DataFormatMps       Dataformat = 2
	DataFormatFreeMps   Dataformat = 4
	DataFormatTask      Dataformat = 5
	DataFormatPtf       Dataformat = 6
	DataFormatJSONTask  Dataformat = 8
)

var Dataformats = register(MustDefine("dataformat",
	[]string{"extension", "lp", "mps", "free_mps", "task", "ptf", "json_task"},
	[]int32{0, 1, 2, 4, 5, 6, 8}))

func (v Dataformat) String() string { return Dataformats.nameOf(int32(v)) }

// Scopr is a separable convex operator kind: f*x*ln(x), f*exp(g*x+h),
// f*ln(g*x+h) and f*(x+h)^g respectively.
type Scopr int32

const (
	ScoprEnt Scopr = 0
	ScoprExp Scopr = 1
	ScoprLog Scopr = 2
	ScoprPow Scopr = 3
)

var Scoprs = register(MustDefine("scopr",
	[]string{"ent", "exp", "log", "pow"},
	[]int32{0, 1, 2, 3}))

func (v Scopr) String() string { return Scoprs.nameOf(int32(v)) }

// Progress information item indexes into the dinf/iinf/liinf snapshot
// arrays handed to progress callbacks.
type (
	Dinfitem  int32
	Iinfitem  int32
	Liinfitem int32
)

const (
	DinfOptimizerTime Dinfitem = 0
	DinfPresolveTime  Dinfitem = 1
	DinfPrimalObj     Dinfitem = 2
	DinfDualObj       Dinfitem = 3
	DinfMioObjBound   Dinfitem = 4

	// NumDinf is the length of the dinf snapshot array.
	NumDinf = 5
)

const (
	IinfIntpntIter       Iinfitem = 0
	IinfSimPrimalIter    Iinfitem = 1
	IinfMioNumBranch     Iinfitem = 2
	IinfOptimizeResponse Iinfitem = 3

	// NumIinf is the length of the iinf snapshot array.
	NumIinf = 4
)

const (
	LiinfMioSimplexIter    Liinfitem = 0
	LiinfIntpntFactorNumNz Liinfitem = 1

	// NumLiinf is the length of the liinf snapshot array.
	NumLiinf = 2
)

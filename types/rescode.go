package types

import "strings"

// Rescode is a response code returned by every fallible engine call. The
// value ranges are part of the engine contract: 0 is success, (0,1000) are
// warnings, [1000,10000) are errors and [10000,20000) are termination codes
// reported by optimize-style calls.
type Rescode int32

const (
	ResOk Rescode = 0

	// Warnings.
	ResWrnOpenParamFile Rescode = 50
	ResWrnLargeBound    Rescode = 51
	ResWrnLargeCj       Rescode = 57
	ResWrnLargeAij      Rescode = 62
	ResWrnZeroAij       Rescode = 63

	// Errors.
	ResErrLicense            Rescode = 1000
	ResErrLicenseExpired     Rescode = 1001
	ResErrLicenseVersion     Rescode = 1002
	ResErrSizeLicense        Rescode = 1005
	ResErrMissingLicenseFile Rescode = 1008
	ResErrSpace              Rescode = 1051
	ResErrFileOpen           Rescode = 1052
	ResErrFileRead           Rescode = 1053
	ResErrFileWrite          Rescode = 1054
	ResErrDataFileExt        Rescode = 1055
	ResErrInvalidFileName    Rescode = 1056
	ResErrNullEnv            Rescode = 1060
	ResErrNullTask           Rescode = 1061
	ResErrInvalidStream      Rescode = 1062
	ResErrNoInitEnv          Rescode = 1063
	ResErrInvalidTask        Rescode = 1064
	ResErrNullPointer        Rescode = 1065
	ResErrLivingTasks        Rescode = 1066
	ResErrBlankName          Rescode = 1070
	ResErrDupName            Rescode = 1071
	ResErrIndexIsTooSmall    Rescode = 1203
	ResErrIndexIsTooLarge    Rescode = 1204
	ResErrParamName          Rescode = 1205
	ResErrParamNameDou       Rescode = 1206
	ResErrParamNameInt       Rescode = 1207
	ResErrParamNameStr       Rescode = 1208
	ResErrParamIndex         Rescode = 1210
	ResErrParamIsTooLarge    Rescode = 1215
	ResErrParamIsTooSmall    Rescode = 1216
	ResErrParamValueStr      Rescode = 1217
	ResErrParamType          Rescode = 1218
	ResErrUndefinedSolution  Rescode = 1265
	ResErrArgumentLenNeq     Rescode = 1570
	ResErrArgumentType       Rescode = 1571

	// Termination codes.
	ResTrmMaxIterations         Rescode = 10000
	ResTrmMaxTime               Rescode = 10001
	ResTrmObjectiveRange        Rescode = 10002
	ResTrmStall                 Rescode = 10006
	ResTrmUserCallback          Rescode = 10007
	ResTrmMioNumRelaxs          Rescode = 10008
	ResTrmMioNumBranches        Rescode = 10009
	ResTrmNumMaxNumIntSolutions Rescode = 10015
	ResTrmInternal              Rescode = 10030
	ResTrmInternalStop          Rescode = 10031
)

var Rescodes = register(MustDefine("rescode",
	[]string{
		"ok",
		"wrn_open_param_file", "wrn_large_bound", "wrn_large_cj", "wrn_large_aij",
		"wrn_zero_aij",
		"err_license", "err_license_expired", "err_license_version",
		"err_size_license", "err_missing_license_file", "err_space",
		"err_file_open", "err_file_read", "err_file_write", "err_data_file_ext",
		"err_invalid_file_name", "err_null_env", "err_null_task",
		"err_invalid_stream", "err_no_init_env", "err_invalid_task",
		"err_null_pointer", "err_living_tasks", "err_blank_name", "err_dup_name",
		"err_index_is_too_small", "err_index_is_too_large", "err_param_name",
		"err_param_name_dou", "err_param_name_int", "err_param_name_str",
		"err_param_index", "err_param_is_too_large", "err_param_is_too_small",
		"err_param_value_str", "err_param_type", "err_undefined_solution",
		"err_argument_lenneq", "err_argument_type",
		"trm_max_iterations", "trm_max_time", "trm_objective_range", "trm_stall",
		"trm_user_callback", "trm_mio_num_relaxs", "trm_mio_num_branches",
		"trm_num_max_num_int_solutions", "trm_internal", "trm_internal_stop",
	},
	[]int32{
		0,
		50, 51, 57, 62,
		63,
		1000, 1001, 1002,
		1005, 1008, 1051,
		1052, 1053, 1054, 1055,
		1056, 1060, 1061,
		1062, 1063, 1064,
		1065, 1066, 1070, 1071,
		1203, 1204, 1205,
		1206, 1207, 1208,
		1210, 1215, 1216,
		1217, 1218, 1265,
		1570, 1571,
		10000, 10001, 10002, 10006,
		10007, 10008, 10009,
		10015, 10030, 10031,
	}))

func (r Rescode) String() string { return Rescodes.nameOf(int32(r)) }

// Symbol returns the engine's symbolic constant name for the code, e.g.
// "MSK_RES_ERR_LICENSE", or "" if the code is not in the bound table.
func (r Rescode) Symbol() string {
	m, err := Rescodes.ByValue(int32(r))
	if err != nil {
		return ""
	}
	return "MSK_RES_" + strings.ToUpper(m.Name)
}

// Rescodetype classifies a response code by its value range.
type Rescodetype int32

const (
	ResponseOk  Rescodetype = 0
	ResponseWrn Rescodetype = 1
	ResponseTrm Rescodetype = 2
	ResponseErr Rescodetype = 3
	ResponseUnk Rescodetype = 4
)

var Rescodetypes = register(MustDefine("rescodetype",
	[]string{"ok", "wrn", "trm", "err", "unk"},
	[]int32{0, 1, 2, 3, 4}))

func (v Rescodetype) String() string { return Rescodetypes.nameOf(int32(v)) }

// Type classifies the code into ok/warning/termination/error/unknown via
// the contract value ranges. Codes outside every range, including negative
// ones, classify as unknown.
func (r Rescode) Type() Rescodetype {
	switch {
	case r == 0:
		return ResponseOk
	case r > 0 && r < 1000:
		return ResponseWrn
	case r >= 1000 && r < 10000:
		return ResponseErr
	case r >= 10000 && r < 20000:
		return ResponseTrm
	default:
		return ResponseUnk
	}
}

// IsWarning reports whether the code is in the warning range.
func (r Rescode) IsWarning() bool { return r.Type() == ResponseWrn }

// IsError reports whether the code is in the error range.
func (r Rescode) IsError() bool { return r.Type() == ResponseErr }

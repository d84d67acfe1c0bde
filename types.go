package mosek

import "github.com/sdanfort/mosek-linux/types"

// Aliases for the value types everyday calls touch, so most programs
// import only this package. The full constant tables and their
// registries live in the types package.

type (
	Rescode       = types.Rescode
	Error         = types.Error
	ArgumentError = types.ArgumentError
	EnumError     = types.EnumError

	Boundkey   = types.Boundkey
	Objsense   = types.Objsense
	Streamtype = types.Streamtype
	Soltype    = types.Soltype
	Solsta     = types.Solsta
	Prosta     = types.Prosta
	Vartype    = types.Vartype

	Callbackcode     = types.Callbackcode
	StreamCallback   = types.StreamCallback
	ProgressCallback = types.ProgressCallback
)

const (
	ResOk = types.ResOk

	BoundkeyLo = types.BoundkeyLo
	BoundkeyUp = types.BoundkeyUp
	BoundkeyFx = types.BoundkeyFx
	BoundkeyFr = types.BoundkeyFr
	BoundkeyRa = types.BoundkeyRa

	ObjsenseMinimize = types.ObjsenseMinimize
	ObjsenseMaximize = types.ObjsenseMaximize

	StreamLog = types.StreamLog
	StreamMsg = types.StreamMsg
	StreamErr = types.StreamErr
	StreamWrn = types.StreamWrn

	SolItr = types.SolItr
	SolBas = types.SolBas
	SolItg = types.SolItg

	SolstaUnknown         = types.SolstaUnknown
	SolstaOptimal         = types.SolstaOptimal
	SolstaPrimAndDualFeas = types.SolstaPrimAndDualFeas
	SolstaIntegerOptimal  = types.SolstaIntegerOptimal

	VartypeCont = types.VartypeCont
	VartypeInt  = types.VartypeInt
)

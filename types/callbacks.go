package types

// StreamCallback receives one chunk of text from an Env or Task output
// stream. The text is decoded before delivery; it never contains the
// terminating NUL.
type StreamCallback func(msg string)

// ProgressCallback is invoked by the optimizer at the point identified by
// code. The info slices are snapshots indexed by Dinfitem, Iinfitem and
// Liinfitem; they may be nil when the engine passes no data. Returning true
// asks the optimizer to terminate, which surfaces as ResTrmUserCallback.
type ProgressCallback func(code Callbackcode, dinf []float64, iinf []int32, liinf []int64) bool

package mosek

import (
	"github.com/sdanfort/mosek-linux/internal/api"
)

// Invoke runs a named engine operation with loosely typed arguments, for
// callers that receive operation names and values from external input
// rather than writing static calls. Arguments are checked against the
// operation's contract position by position: integers must be integer
// kinds, enum arguments accept the enum's own type, a member value or a
// member name, and slices follow the borrow-or-convert buffer rules. Any
// mismatch fails before the engine is called. The result is the
// operation's return value, or nil for status-only operations.
//
//	n, err := task.Invoke("getnumvar")
//	_, err = task.Invoke("putvarbound", 0, "ra", 1.0, 5.0)
func (t *Task) Invoke(op string, args ...any) (any, error) {
	h, err := t.handle(op)
	if err != nil {
		return nil, err
	}
	return api.Invoke(t.fns, h, op, args...)
}

// Ops returns the names of the operations Invoke accepts, sorted.
func Ops() []string { return api.Ops() }

package mosek

import (
	"github.com/sdanfort/mosek-linux/types"
)

// LinkStream attaches fn to one of the task's text output channels,
// replacing any callback already on that channel. The first attach on a
// channel links natively; replacements only swap the Go function. A nil
// fn detaches.
func (t *Task) LinkStream(which types.Streamtype, fn types.StreamCallback) error {
	h, err := t.handle("linktaskstream")
	if err != nil {
		return err
	}
	return t.cbs.LinkTaskStream(t.fns, h, which, fn)
}

// UnlinkStream detaches the callback on the given channel. Detaching a
// channel with no callback is a no-op.
func (t *Task) UnlinkStream(which types.Streamtype) error {
	h, err := t.handle("linktaskstream")
	if err != nil {
		return err
	}
	return t.cbs.LinkTaskStream(t.fns, h, which, nil)
}

// PutCallback installs fn as the task's progress callback. The optimizer
// invokes it at the points named by types.Callbackcode; returning true
// requests termination, surfacing as ResTrmUserCallback. A nil fn
// detaches.
func (t *Task) PutCallback(fn types.ProgressCallback) error {
	h, err := t.handle("putcallbackfunc")
	if err != nil {
		return err
	}
	return t.cbs.SetProgress(t.fns, h, fn)
}

// RemoveCallback detaches the progress callback.
func (t *Task) RemoveCallback() error {
	h, err := t.handle("putcallbackfunc")
	if err != nil {
		return err
	}
	return t.cbs.SetProgress(t.fns, h, nil)
}

// LinkStream attaches fn to one of the environment's text output
// channels; environment streams carry license and housekeeping messages.
// A nil fn detaches.
func (e *Env) LinkStream(which types.Streamtype, fn types.StreamCallback) error {
	h, err := e.handle("linkenvstream")
	if err != nil {
		return err
	}
	return e.cbs.LinkEnvStream(e.fns, h, which, fn)
}

// UnlinkStream detaches the callback on the given environment channel.
func (e *Env) UnlinkStream(which types.Streamtype) error {
	h, err := e.handle("linkenvstream")
	if err != nil {
		return err
	}
	return e.cbs.LinkEnvStream(e.fns, h, which, nil)
}

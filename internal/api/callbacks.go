package api

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/rs/zerolog"

	"github.com/sdanfort/mosek-linux/internal/ffi"
	"github.com/sdanfort/mosek-linux/types"
)

// Callback dispatch. The engine holds at most one fixed trampoline per
// channel; the user data it passes back is a token into the registries
// below. A token with no registry entry is silently dropped, so a
// detached or released slot can never reach Go code again even if the
// engine still fires it.

var (
	slotTokens    atomic.Uintptr // 0 is reserved for "not attached"
	streamSlots   sync.Map       // uintptr -> *streamSlot
	progressSlots sync.Map       // uintptr -> *progressSlot

	logger atomic.Value // zerolog.Logger
)

func init() {
	logger.Store(zerolog.Nop())
	ffi.StreamDispatch = dispatchStream
	ffi.ProgressDispatch = dispatchProgress
}

// SetLogger replaces the logger used inside native callback frames, where
// no error can be returned to the caller. The default discards.
func SetLogger(l zerolog.Logger) { logger.Store(l) }

func callbackLog() *zerolog.Logger {
	l := logger.Load().(zerolog.Logger)
	return &l
}

// streamSlot is one (handle, channel) stream attachment. The slot and
// its token live from first attach to detach; replacing the callback
// swaps fn without touching the native link.
type streamSlot struct {
	which types.Streamtype
	mu    sync.Mutex
	fn    types.StreamCallback
}

func (s *streamSlot) set(fn types.StreamCallback) {
	s.mu.Lock()
	s.fn = fn
	s.mu.Unlock()
}

func (s *streamSlot) get() types.StreamCallback {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fn
}

type progressSlot struct {
	mu sync.Mutex
	fn types.ProgressCallback
}

func (s *progressSlot) set(fn types.ProgressCallback) {
	s.mu.Lock()
	s.fn = fn
	s.mu.Unlock()
}

func (s *progressSlot) get() types.ProgressCallback {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fn
}

func dispatchStream(usr uintptr, msg *byte) {
	v, ok := streamSlots.Load(usr)
	if !ok {
		return
	}
	slot := v.(*streamSlot)
	fn := slot.get()
	if fn == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			callbackLog().Error().
				Int("channel", int(slot.which)).
				Interface("panic", r).
				Msg("stream callback panicked")
		}
	}()
	fn(goString(msg))
}

func dispatchProgress(task ffi.Task, usr uintptr, caller int32, dinf *float64, iinf *int32, liinf *int64) (stop int32) {
	v, ok := progressSlots.Load(usr)
	if !ok {
		return 0
	}
	fn := v.(*progressSlot).get()
	if fn == nil {
		return 0
	}
	// A panicking callback cannot report an error, so treat it as a stop
	// request; the optimizer then returns ResTrmUserCallback.
	defer func() {
		if r := recover(); r != nil {
			callbackLog().Error().
				Str("caller", types.Callbackcode(caller).String()).
				Interface("panic", r).
				Msg("progress callback panicked")
			stop = 1
		}
	}()
	if fn(types.Callbackcode(caller), infCopy(dinf, types.NumDinf), infCopy(iinf, types.NumIinf), infCopy(liinf, types.NumLiinf)) {
		return 1
	}
	return 0
}

// infCopy snapshots a native info array. The native storage is only valid
// for the duration of the callback frame, so user code gets a copy it may
// keep.
func infCopy[T any](p *T, n int) []T {
	if p == nil {
		return nil
	}
	out := make([]T, n)
	copy(out, unsafe.Slice(p, n))
	return out
}

func nextToken() uintptr { return slotTokens.Add(1) }

// CallbackTable tracks the callback tokens attached to one handle. Each
// stream channel is an independent slot; attaching one never disturbs the
// others. The zero value is ready to use.
type CallbackTable struct {
	mu       sync.Mutex
	streams  [types.NumStreams]uintptr
	progress uintptr
}

func checkStream(op string, which types.Streamtype) error {
	if !types.Streamtypes.Contains(int32(which)) {
		return &types.ArgumentError{
			Op: op, Param: "whichstream",
			Err: &types.EnumError{Set: types.Streamtypes.Name(), Value: int32(which), ByValue: true},
		}
	}
	return nil
}

// LinkTaskStream attaches fn to one of the task's stream channels,
// replacing any previous callback on that channel. A nil fn detaches.
func (t *CallbackTable) LinkTaskStream(fns *ffi.Funcs, task ffi.Task, which types.Streamtype, fn types.StreamCallback) error {
	if err := checkStream("linktaskstream", which); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.linkStream(which, fn, func(usr uintptr, attach bool) int32 {
		return fns.LinkTaskStream(task, int32(which), usr, attach)
	}, func(rc int32) error { return taskError(fns, task, rc) })
}

// LinkEnvStream is LinkTaskStream for environment streams.
func (t *CallbackTable) LinkEnvStream(fns *ffi.Funcs, env ffi.Env, which types.Streamtype, fn types.StreamCallback) error {
	if err := checkStream("linkenvstream", which); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.linkStream(which, fn, func(usr uintptr, attach bool) int32 {
		return fns.LinkEnvStream(env, int32(which), usr, attach)
	}, func(rc int32) error { return envError(fns, rc) })
}

func (t *CallbackTable) linkStream(which types.Streamtype, fn types.StreamCallback, link func(usr uintptr, attach bool) int32, fail func(rc int32) error) error {
	token := t.streams[which]
	if fn == nil {
		if token == 0 {
			return nil
		}
		// Silence the slot and drop its token before unlinking, so a
		// message emitted mid-detach is discarded instead of reaching a
		// dead callback.
		if v, ok := streamSlots.Load(token); ok {
			v.(*streamSlot).set(nil)
		}
		streamSlots.Delete(token)
		t.streams[which] = 0
		if rc := link(0, false); rc != 0 {
			return fail(rc)
		}
		return nil
	}
	if token != 0 {
		// Channel already linked natively; only the Go function changes.
		if v, ok := streamSlots.Load(token); ok {
			v.(*streamSlot).set(fn)
			return nil
		}
		t.streams[which] = 0
	}
	// First attach: register an empty slot, link natively, then arm the
	// function. A message fired into the gap finds a nil fn and is
	// dropped.
	token = nextToken()
	slot := &streamSlot{which: which}
	streamSlots.Store(token, slot)
	if rc := link(token, true); rc != 0 {
		streamSlots.Delete(token)
		return fail(rc)
	}
	t.streams[which] = token
	slot.set(fn)
	return nil
}

// SetProgress installs fn as the task's progress callback, replacing any
// previous one without relinking. A nil fn detaches.
func (t *CallbackTable) SetProgress(fns *ffi.Funcs, task ffi.Task, fn types.ProgressCallback) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	token := t.progress
	if fn == nil {
		if token == 0 {
			return nil
		}
		if v, ok := progressSlots.Load(token); ok {
			v.(*progressSlot).set(nil)
		}
		progressSlots.Delete(token)
		t.progress = 0
		if rc := fns.PutCallbackFunc(task, 0, false); rc != 0 {
			return taskError(fns, task, rc)
		}
		return nil
	}
	if token != 0 {
		if v, ok := progressSlots.Load(token); ok {
			v.(*progressSlot).set(fn)
			return nil
		}
		t.progress = 0
	}
	token = nextToken()
	slot := &progressSlot{}
	progressSlots.Store(token, slot)
	if rc := fns.PutCallbackFunc(task, token, true); rc != 0 {
		progressSlots.Delete(token)
		return taskError(fns, task, rc)
	}
	t.progress = token
	slot.set(fn)
	return nil
}

// ReleaseAll forgets every token owned by the handle. Called during
// handle teardown, after which the engine no longer fires callbacks; any
// late dispatch finds no entry and is dropped.
func (t *CallbackTable) ReleaseAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, token := range t.streams {
		if token != 0 {
			streamSlots.Delete(token)
			t.streams[i] = 0
		}
	}
	if t.progress != 0 {
		progressSlots.Delete(t.progress)
		t.progress = 0
	}
}

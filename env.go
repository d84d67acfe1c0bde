package mosek

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"golang.org/x/sys/unix"

	"github.com/sdanfort/mosek-linux/internal/api"
	"github.com/sdanfort/mosek-linux/internal/ffi"
	"github.com/sdanfort/mosek-linux/types"
)

// Env is a top-level engine environment: it carries license state and
// spawns Tasks. An Env is live from MakeEnv until Dispose. A finalizer
// covers environments dropped without Dispose, but relying on it delays
// the release of the native handle and of any checked-out license.
type Env struct {
	h    atomic.Uintptr
	fns  *ffi.Funcs
	cbs  api.CallbackTable
	lock *os.File // flock on the license cache dir, nil when unused
}

// EnvOption configures MakeEnv.
type EnvOption func(*envConfig)

type envConfig struct {
	licensePath string
	cacheDir    string
	debugFile   string
}

// WithLicensePath points the environment at a license file or directory
// instead of the engine's default search path.
func WithLicensePath(path string) EnvOption {
	return func(c *envConfig) { c.licensePath = path }
}

// WithCacheDir claims dir for this environment's license cache. The claim
// is an exclusive flock held until Dispose; MakeEnv fails when another
// process holds it.
func WithCacheDir(dir string) EnvOption {
	return func(c *envConfig) { c.cacheDir = dir }
}

// WithDebugFile makes the engine append its low-level debug output to
// path.
func WithDebugFile(path string) EnvOption {
	return func(c *envConfig) { c.debugFile = path }
}

// MakeEnv creates an engine environment. On failure nothing is left
// behind: a claimed cache dir is released again and a partially
// constructed native handle is deleted.
func MakeEnv(opts ...EnvOption) (*Env, error) {
	var cfg envConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	fns, err := ffi.Active()
	if err != nil {
		return nil, err
	}
	var lock *os.File
	if cfg.cacheDir != "" {
		lock, err = claimCacheDir(cfg.cacheDir)
		if err != nil {
			return nil, err
		}
	}
	h, err := api.MakeEnv(fns, cfg.debugFile)
	if err != nil {
		releaseCacheDir(lock)
		return nil, err
	}
	if cfg.licensePath != "" {
		if perr := api.PutLicensePath(fns, h, cfg.licensePath); perr != nil {
			_ = api.DeleteEnv(fns, &h)
			releaseCacheDir(lock)
			return nil, perr
		}
	}
	e := &Env{fns: fns, lock: lock}
	e.h.Store(uintptr(h))
	runtime.SetFinalizer(e, (*Env).finalize)
	return e, nil
}

func claimCacheDir(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("license cache dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, ".mosek.lock"), os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("license cache dir: %w", err)
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("license cache dir %s is already claimed: %w", dir, err)
	}
	return f, nil
}

func releaseCacheDir(f *os.File) {
	if f == nil {
		return
	}
	_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
	_ = f.Close()
}

// handle returns the live native handle, or a disposed-handle failure
// named after op.
func (e *Env) handle(op string) (ffi.Env, error) {
	h := ffi.Env(e.h.Load())
	if h == 0 {
		return 0, &types.ArgumentError{Op: op, Err: types.ErrDisposed}
	}
	return h, nil
}

// Dispose releases the native environment. The first call wins; further
// calls and the finalizer find the released sentinel and do nothing.
// Tasks spawned from the environment are not tracked here; they stay
// valid for as long as the engine keeps them valid.
func (e *Env) Dispose() error {
	old := e.h.Swap(0)
	if old == 0 {
		return nil
	}
	runtime.SetFinalizer(e, nil)
	e.cbs.ReleaseAll()
	h := ffi.Env(old)
	err := api.DeleteEnv(e.fns, &h)
	releaseCacheDir(e.lock)
	e.lock = nil
	return err
}

func (e *Env) finalize() { _ = e.Dispose() }

// PutLicensePath redirects the license search to path.
func (e *Env) PutLicensePath(path string) error {
	h, err := e.handle("putlicensepath")
	if err != nil {
		return err
	}
	return api.PutLicensePath(e.fns, h, path)
}

// CheckInAll returns all checked-out license features to the server.
func (e *Env) CheckInAll() error {
	h, err := e.handle("checkinall")
	if err != nil {
		return err
	}
	return api.CheckInAll(e.fns, h)
}

// MakeTask creates an empty task in the environment. maxnumcon and
// maxnumvar are preallocation hints, not limits; zero is always safe.
func (e *Env) MakeTask(maxnumcon, maxnumvar int) (*Task, error) {
	h, err := e.handle("maketask")
	if err != nil {
		return nil, err
	}
	th, err := api.MakeTask(e.fns, h, maxnumcon, maxnumvar)
	if err != nil {
		return nil, err
	}
	return newTask(e.fns, th, false), nil
}

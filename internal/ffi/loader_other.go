//go:build !linux

package ffi

import "errors"

// The native engine ships as a Linux shared object only. Other platforms
// can still run the full binding against an injected table (see Use).
func load() (*Funcs, error) {
	return nil, errors.New("libmosek64 loading is only supported on linux")
}

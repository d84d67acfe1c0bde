package api

import (
	"bytes"
	"strings"
	"unicode/utf8"
	"unsafe"

	"github.com/sdanfort/mosek-linux/types"
)

// maxCString bounds scans of engine-provided NUL-terminated text so a
// missing terminator cannot walk off into unmapped memory forever.
const maxCString = 1 << 20

// cstr returns s as a NUL-terminated buffer for the engine. Interior NUL
// bytes cannot cross the boundary and are rejected rather than silently
// truncated.
func cstr(op, param, s string) (*byte, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, &types.ArgumentError{Op: op, Param: param, Want: "string without NUL bytes", Got: "embedded NUL"}
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return &buf[0], nil
}

// goString copies the NUL-terminated text at p into a Go string. Invalid
// UTF-8 is replaced, never passed through. A nil pointer yields "".
func goString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for n < maxCString && *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return decodeText(unsafe.Slice(p, n))
}

// trimNul interprets buf as NUL-terminated text.
func trimNul(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return decodeText(buf)
}

func decodeText(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}

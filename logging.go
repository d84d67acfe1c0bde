package mosek

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/sdanfort/mosek-linux/types"
)

// StreamToLogger adapts a zerolog logger into a stream callback, so
// engine log output lands in structured logs. Stream text arrives in
// chunks that normally end in a newline; each chunk becomes one event at
// lvl with trailing newlines removed, and chunks that are only
// whitespace are dropped.
func StreamToLogger(l zerolog.Logger, lvl zerolog.Level) types.StreamCallback {
	return func(msg string) {
		msg = strings.TrimRight(msg, "\n")
		if strings.TrimSpace(msg) == "" {
			return
		}
		l.WithLevel(lvl).Msg(msg)
	}
}

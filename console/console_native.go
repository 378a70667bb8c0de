//go:build !js && !wasm

package console

// Native builds have no browser console; messages go to the process slog logger
// so CLI runs and tests see the same call sites the browser does.

import (
	"fmt"
	"strings"

	"github.com/vcrobe/supasite/internal/logging"
)

// Log writes a debug record.
func Log(args ...any) {
	logging.Get().Debug(join(args))
}

// Warn writes a warning record.
func Warn(args ...any) {
	logging.Get().Warn(join(args))
}

// Error writes an error record.
func Error(args ...any) {
	logging.Get().Error(join(args))
}

func join(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, " ")
}

package output

import (
	"io"

	logxi "github.com/mgutz/logxi/v1"
)

// NewDiagnostics creates the named logger used for per-frame diagnostics.
// Frames are logged at info level; verbose adds debug output.
func NewDiagnostics(w io.Writer, name string, verbose bool) logxi.Logger {
	logger := logxi.NewLogger(logxi.NewConcurrentWriter(w), name)
	if verbose {
		logger.SetLevel(logxi.LevelDebug)
	} else {
		logger.SetLevel(logxi.LevelInfo)
	}
	return logger
}

// Package logging sets up the file logger. The TUI owns the terminal, so
// log output goes to <data dir>/chime.log rather than stderr.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

const fileName = "chime.log"

// New builds a logger writing to w at the given level name. Unknown level
// names fall back to info.
func New(w io.Writer, level string) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "chime",
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}

// Open appends to chime.log inside dir. The returned closer must be called
// on exit. If the file cannot be opened the logger discards everything.
func Open(dir, level string) (*log.Logger, io.Closer) {
	f, err := os.OpenFile(filepath.Join(dir, fileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return New(io.Discard, level), io.NopCloser(nil)
	}
	return New(f, level), f
}

// Discard is a logger for tests and for callers that do not care.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

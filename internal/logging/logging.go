// Package logging wires the process-wide logr sink. Defaults to quiet
// (discard) unless DEBUG is set, in which case diagnostics are appended to
// a log file next to the temp dir; stderr is unusable while the
// alternate-screen TUI is active.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

func New() logr.Logger {
	if os.Getenv("DEBUG") == "" {
		return logr.Discard()
	}
	f, err := os.OpenFile(filepath.Join(os.TempDir(), "datagrid-debug.log"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return logr.Discard()
	}
	return funcr.New(func(prefix, args string) {
		fmt.Fprintln(f, prefix, args)
	}, funcr.Options{})
}

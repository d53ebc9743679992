package pancam

import (
	"log/slog"
	"sync/atomic"
)

var pkgLogger atomic.Pointer[slog.Logger]

// SetLogger replaces the logger used by trackers created without WithLogger.
// Passing nil restores slog.Default.
func SetLogger(l *slog.Logger) {
	pkgLogger.Store(l)
}

func defaultLogger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

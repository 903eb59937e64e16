package queryops

import (
	"golang.org/x/exp/slog"
)

// SetLogger replaces the logger used for debug output. Passing nil
// restores slog.Default.
func SetLogger(userLogger *slog.Logger) {
	if userLogger == nil {
		userLogger = slog.Default()
	}
	logger = userLogger
}

var logger *slog.Logger = slog.Default()

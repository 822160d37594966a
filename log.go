package scrollbox

import (
	"context"
	"log/slog"
	"os"
)

// boxLogLevel controls the log level for scroll box debug logging.
// Default is LevelInfo, which suppresses Debug messages.
var boxLogLevel = new(slog.LevelVar)

// boxLogger is the package logger. Replace it with SetLogger.
var boxLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: boxLogLevel}))

// SetVerbose enables or disables debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		boxLogLevel.Set(slog.LevelDebug)
	} else {
		boxLogLevel.Set(slog.LevelInfo)
	}
}

// SetLogger replaces the package logger. A nil logger restores the default
// stderr text logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: boxLogLevel}))
	}
	boxLogger = l
}

// boxVerbose returns true if debug logging is enabled.
func boxVerbose() bool {
	return boxLogger.Enabled(context.Background(), slog.LevelDebug)
}

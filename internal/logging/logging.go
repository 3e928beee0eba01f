// Package logging builds the process logger. The TUI owns the
// terminal while the alt screen is up, so backend errors go to a file
// under the data dir instead of stderr.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const logFileName = "happy.log"

// New returns a file-backed logger rooted at basePath. Logging is
// best-effort: if the file cannot be opened the returned logger is a
// nop, never an error — a broken log path must not take down the UI.
func New(basePath string) *zap.Logger {
	if basePath == "" {
		return zap.NewNop()
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return zap.NewNop()
	}
	f, err := os.OpenFile(filepath.Join(basePath, logFileName),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zap.NewNop()
	}

	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.AddSync(f),
		zapcore.InfoLevel,
	)
	return zap.New(core)
}

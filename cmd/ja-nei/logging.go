package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logDir      = "logs"
	logFileName = "ja-nei.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns a no-op logger and nil file unless debug is set
// With debug, JSON lines are appended to logs/ja-nei.log; a file grown past
// maxLogSize is moved aside with a timestamp first
// The terminal belongs to the UI, so nothing is ever logged to stdout/stderr
func setupLogging(debug bool) (*zap.Logger, *os.File) {
	if !debug {
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return zap.NewNop(), nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("ja-nei-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zap.NewNop(), nil
	}

	encoder := zapcore.NewJSONEncoder(zap.NewDevelopmentEncoderConfig())
	logger := zap.New(zapcore.NewCore(encoder, zapcore.AddSync(f), zapcore.DebugLevel), zap.AddCaller())
	logger.Info("logging started", zap.Int("pid", os.Getpid()))
	return logger, f
}

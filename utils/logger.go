package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogger builds the process logger: JSON records on stdout at level, and
// every error-level record appended to <logsDir>/errors.log. An empty logsDir
// disables the file sink.
func InitLogger(level, logsDir string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encCfg)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), lvl),
	}

	if logsDir != "" {
		if err := os.MkdirAll(logsDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create logs directory: %v", err)
		}
		errorLogFile, err := os.OpenFile(filepath.Join(logsDir, "errors.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open error log file: %v", err)
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(errorLogFile), zapcore.ErrorLevel))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

// LogPanic records a recovered panic with the caller's context.
func LogPanic(logger *zap.Logger, recovered interface{}, context string) {
	logger.Error("panic recovered",
		zap.String("context", context),
		zap.Any("panic", recovered),
		zap.Stack("stack"),
	)
}

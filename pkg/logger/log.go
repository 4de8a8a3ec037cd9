package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"inspections-console/pkg/config"
)

// NewLogger пишет только в файл: stdout занят меню.
func NewLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("неверный уровень логирования %q: %w", cfg.Level, err)
	}

	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("не удалось создать каталог логов: %w", err)
		}
	}

	fileConfig := zap.Config{
		Encoding:         "console",
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{cfg.Output},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}
	fileConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	fileLogger, err := fileConfig.Build()
	if err != nil {
		return nil, err
	}

	return fileLogger.With(zap.String("session", uuid.NewString())), nil
}

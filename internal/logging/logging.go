package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"portfolio/internal/config"
)

// New builds the application logger: human-readable console output plus a
// size-rotated JSON log file.
func New(cfg config.LogConfig, env string) *zap.Logger {
	fileSink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	})

	level := zap.InfoLevel
	if env == "dev" {
		level = zap.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	consoleEncCfg := zap.NewDevelopmentEncoderConfig()
	consoleEncCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), fileSink, level),
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEncCfg), zapcore.AddSync(os.Stdout), level),
	)

	return zap.New(core, zap.AddCaller())
}

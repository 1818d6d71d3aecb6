package logger

import (
	"fmt"

	"github.com/Leopold1975/questions_board/internal/pkg/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Info(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Error(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type zapLogger struct {
	s *zap.SugaredLogger
}

func New(cfg config.Logger) (Logger, error) {
	lvl := zapcore.InfoLevel

	if cfg.Level != "" {
		var err error

		lvl, err = zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("parse level error: %w", err)
		}
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)

	if len(cfg.Output) != 0 {
		zcfg.OutputPaths = cfg.Output
	}

	if len(cfg.ErrOutput) != 0 {
		zcfg.ErrorOutputPaths = cfg.ErrOutput
	}

	l, err := zcfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("build logger error: %w", err)
	}

	return &zapLogger{s: l.Sugar()}, nil
}

// Nop returns a logger that drops everything. Handy in tests.
func Nop() Logger {
	return &zapLogger{s: zap.NewNop().Sugar()}
}

func (z *zapLogger) Info(format string, args ...interface{}) {
	z.s.Infof(format, args...)
}

func (z *zapLogger) Infof(format string, args ...interface{}) {
	z.s.Infof(format, args...)
}

func (z *zapLogger) Error(format string, args ...interface{}) {
	z.s.Errorf(format, args...)
}

func (z *zapLogger) Errorf(format string, args ...interface{}) {
	z.s.Errorf(format, args...)
}

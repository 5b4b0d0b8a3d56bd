package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // debug | production
	Encoding     string // console | json
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the service Logger from config. It never fails: bad values
// fall back to debug/console so logging is available during misconfiguration.
func Init(cfg ZapConfig) Logger {
	level := zapcore.DebugLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	if cfg.Mode == "production" {
		encoderCfg = zap.NewProductionEncoderConfig()
	}
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding != "json" {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == "json" {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)
	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	return &zapLogger{sugar: logger.Sugar()}
}

func (l *zapLogger) Debug(ctx context.Context, args ...interface{}) { l.sugar.Debug(args...) }
func (l *zapLogger) Debugf(ctx context.Context, format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}
func (l *zapLogger) Info(ctx context.Context, args ...interface{}) { l.sugar.Info(args...) }
func (l *zapLogger) Infof(ctx context.Context, format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}
func (l *zapLogger) Warn(ctx context.Context, args ...interface{}) { l.sugar.Warn(args...) }
func (l *zapLogger) Warnf(ctx context.Context, format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}
func (l *zapLogger) Error(ctx context.Context, args ...interface{}) { l.sugar.Error(args...) }
func (l *zapLogger) Errorf(ctx context.Context, format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}
func (l *zapLogger) DPanic(ctx context.Context, args ...interface{}) { l.sugar.DPanic(args...) }
func (l *zapLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {
	l.sugar.DPanicf(format, args...)
}
func (l *zapLogger) Panic(ctx context.Context, args ...interface{}) { l.sugar.Panic(args...) }
func (l *zapLogger) Panicf(ctx context.Context, format string, args ...interface{}) {
	l.sugar.Panicf(format, args...)
}
func (l *zapLogger) Fatal(ctx context.Context, args ...interface{}) { l.sugar.Fatal(args...) }
func (l *zapLogger) Fatalf(ctx context.Context, format string, args ...interface{}) {
	l.sugar.Fatalf(format, args...)
}

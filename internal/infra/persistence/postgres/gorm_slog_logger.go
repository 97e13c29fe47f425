package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// gormSlogLogger sends GORM output to slog. Record-not-found is never logged since
// catalog and plan lookups treat it as a normal outcome.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

// newGormSlogLogger logs every statement in debug mode; otherwise only failures and
// statements slower than slowThreshold.
func newGormSlogLogger(base *slog.Logger, debug bool, slowThreshold time.Duration) gormlogger.Interface {
	level := gormlogger.Warn
	if debug {
		level = gormlogger.Info
	}
	if base == nil {
		level = gormlogger.Silent
	} else {
		base = base.With(slog.String("component", "gorm"))
	}

	return &gormSlogLogger{
		logger:        base,
		level:         level,
		slowThreshold: slowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Info, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Warn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Error, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, level gormlogger.LogLevel, msg string, args ...any) {
	if l.level < level {
		return
	}

	l.logger.LogAttrs(ctx, slogLevel(level), "Database message", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.logStatement(ctx, slog.LevelError, "Query failed", fc, elapsed, slog.String("error", err.Error()))
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		l.logStatement(ctx, slog.LevelWarn, "Slow query", fc, elapsed, slog.Duration("slowThreshold", l.slowThreshold))
	case l.level >= gormlogger.Info:
		l.logStatement(ctx, slog.LevelDebug, "Query", fc, elapsed)
	}
}

func (l *gormSlogLogger) logStatement(ctx context.Context, level slog.Level, msg string, fc func() (string, int64), elapsed time.Duration, extra ...slog.Attr) {
	sql, rows := fc()

	attrs := append([]slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}, extra...)

	l.logger.LogAttrs(ctx, level, msg, attrs...)
}

func slogLevel(level gormlogger.LogLevel) slog.Level {
	switch level {
	case gormlogger.Error:
		return slog.LevelError
	case gormlogger.Warn:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQuery is the duration after which a query is logged as warning.
const slowQuery = 200 * time.Millisecond

// queryLogger sends gorm's log output to zerolog.
//
// If the context of a query carries a zerolog logger, e.g. one with the
// request ID set, that logger is used. Otherwise, the fallback is used.
type queryLogger struct {
	fallback zerolog.Logger
}

func (l *queryLogger) from(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if ctxLogger := zerolog.Ctx(ctx); ctxLogger.GetLevel() != zerolog.Disabled {
			return ctxLogger
		}
	}

	return &l.fallback
}

func (l *queryLogger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *queryLogger) Info(ctx context.Context, s string, args ...interface{}) {
	l.from(ctx).Info().Msgf(s, args...)
}

func (l *queryLogger) Warn(ctx context.Context, s string, args ...interface{}) {
	l.from(ctx).Warn().Msgf(s, args...)
}

func (l *queryLogger) Error(ctx context.Context, s string, args ...interface{}) {
	l.from(ctx).Error().Msgf(s, args...)
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	logger := l.from(ctx)

	// Not found is an expected result, the API answers it with a 404
	if err != nil && !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error().Err(err).Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Msg("query failed")
		return
	}

	if elapsed > slowQuery {
		logger.Warn().Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Msg("slow query")
		return
	}

	logger.Debug().Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Msg("query")
}

package services

import (
	"context"
	"log/slog"

	"github.com/deudalibre/debt_payoff_app/internal/middleware"
)

// BaseService is embedded by every service implementation and carries the
// shared logging helpers. Services always log through the request-scoped
// logger when one is present in the context.
type BaseService struct{}

// GetLogger returns the request-scoped logger from the context, falling back
// to the process default.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	if logger := middleware.GetLoggerFromCtx(ctx); logger != nil {
		return logger
	}
	return slog.Default()
}

// LogError logs msg at error level with the error attached as an attr.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, attrs ...any) {
	args := append([]any{slog.String("error", err.Error())}, attrs...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs msg at info level.
func (s *BaseService) LogInfo(ctx context.Context, msg string, attrs ...any) {
	s.GetLogger(ctx).Info(msg, attrs...)
}

// LogDebug logs msg at debug level.
func (s *BaseService) LogDebug(ctx context.Context, msg string, attrs ...any) {
	s.GetLogger(ctx).Debug(msg, attrs...)
}

package logger

import (
	"context"
	"fmt"
	"log/slog"
)

type Noop struct{}

func (Noop) InfofCtx(ctx context.Context, template string, args ...any)  {}
func (Noop) ErrorfCtx(ctx context.Context, template string, args ...any) {}

func NewSlog(log *slog.Logger) Slog {
	return Slog{log: log}
}

// Slog adapts a *slog.Logger to the template based Logger interface.
type Slog struct {
	log *slog.Logger
}

func (s Slog) InfofCtx(ctx context.Context, template string, args ...any) {
	s.log.InfoContext(ctx, fmt.Sprintf(template, args...))
}

func (s Slog) ErrorfCtx(ctx context.Context, template string, args ...any) {
	s.log.ErrorContext(ctx, fmt.Sprintf(template, args...))
}

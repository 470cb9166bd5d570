package audit

import (
	"context"
	"log/slog"
)

// Logger writes audit events to the structured log.
type Logger struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Logger {
	return &Logger{logger: logger.With("module", "Audit")}
}

func (l *Logger) Write(ctx context.Context, ev Event) error {
	attrs := []any{
		"shop_id", ev.ShopID,
		"entity", ev.Entity,
		"occurred_at", ev.OccurredAt,
	}
	if ev.EntityID != nil {
		attrs = append(attrs, "entity_id", *ev.EntityID)
	}
	if ev.Metadata != nil {
		attrs = append(attrs, "metadata", ev.Metadata)
	}

	l.logger.InfoContext(ctx, ev.Action, attrs...)
	return nil
}

package events

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/order"
)

// AuditLogSubscriber writes one structured log line per status change.
type AuditLogSubscriber struct {
	logger *slog.Logger
}

func NewAuditLogSubscriber(logger *slog.Logger) *AuditLogSubscriber {
	return &AuditLogSubscriber{logger: logger.With("component", "order-audit")}
}

func (s *AuditLogSubscriber) OnOrderStatusChanged(ctx context.Context, event order.StatusChanged) error {
	attrs := []any{
		"order_id", event.OrderID.String(),
		"customer_id", event.CustomerID.String(),
		"from", event.From.String(),
		"to", event.To.String(),
		"actor", event.Actor.String(),
		"occurred_at", event.OccurredAt,
	}
	if event.PartnerID != nil {
		attrs = append(attrs, "partner_id", event.PartnerID.String())
	}
	if event.Notes != "" {
		attrs = append(attrs, "notes", event.Notes)
	}

	s.logger.InfoContext(ctx, "order status changed", attrs...)
	return nil
}

package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/outbox"
)

// OutboxRepository gives the relay access to messages written by the order repository.
type OutboxRepository interface {
	// FetchUnpublished locks up to limit unpublished messages, oldest first,
	// skipping rows locked by other relays.
	FetchUnpublished(ctx context.Context, limit int) ([]outbox.Message, error)

	MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error

	// MarkFailed increments the attempt counter of the messages.
	MarkFailed(ctx context.Context, ids []kernel.UUID) error
}

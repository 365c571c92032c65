package commands

import (
	"context"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/outbox"
	"laundry/internal/core/ports"
)

// RelayOutboxCommandHandler moves outbox messages to the broker. Delivery is at
// least once: a batch that fails to publish stays unpublished with its attempt
// counter increased and is retried on the next run.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.MessagePublisher
}

func NewRelayOutboxCommandHandler(uowFactory OutboxUoWFactory, publisher ports.MessagePublisher) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle returns the number of messages published. The fetched rows stay
// locked until the transaction ends, so concurrent relays pick other rows.
func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outboxRepo := uow.OutboxRepository()

	messages, err := outboxRepo.FetchUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	ids := messageIDs(messages)

	if publishErr := h.publisher.Publish(ctx, messages...); publishErr != nil {
		if err = outboxRepo.MarkFailed(ctx, ids); err != nil {
			return 0, err
		}
		if err = uow.Commit(ctx); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("publish outbox batch: %w", publishErr)
	}

	if err = outboxRepo.MarkPublished(ctx, ids, time.Now().UTC()); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(messages), nil
}

func messageIDs(messages []outbox.Message) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}
	return ids
}

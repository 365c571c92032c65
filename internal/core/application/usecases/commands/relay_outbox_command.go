package commands

import (
	"errors"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

const maxRelayBatchSize = 1000

var ErrRelayOutboxCommandIsNotConstructed = errors.New(
	"RelayOutboxCommand must be created via NewRelayOutboxCommand constructor",
)

// RelayOutboxCommand publishes one batch of unpublished outbox messages.
//
// Example:
//
//	cmd, _ := NewRelayOutboxCommand(100)
//	handler := NewRelayOutboxCommandHandler(uowFactory, publisher)
//
//	// Run periodically to drain the outbox
//	ticker := time.NewTicker(time.Second)
//	for range ticker.C {
//	    if _, err := handler.Handle(ctx, cmd); err != nil {
//	        log.Printf("Relay failed: %v", err)
//	    }
//	}
type RelayOutboxCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

func NewRelayOutboxCommand(batchSize int) (RelayOutboxCommand, error) {
	if batchSize <= 0 || batchSize > maxRelayBatchSize {
		return RelayOutboxCommand{}, errs.NewValueIsOutOfRangeError("batch_size", batchSize, 1, maxRelayBatchSize)
	}

	return RelayOutboxCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RelayOutboxCommand) Validate() error {
	return c.guard.Validate(ErrRelayOutboxCommandIsNotConstructed)
}

func (c RelayOutboxCommand) BatchSize() int { return c.batchSize }

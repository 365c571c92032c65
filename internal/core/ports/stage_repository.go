package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/stage"
)

// StageRepository stores the append-only processing stage timeline.
type StageRepository interface {
	Add(ctx context.Context, s *stage.ProcessingStage) error

	// Complete persists the completion time of a stage. It never overwrites an
	// existing completion time.
	Complete(ctx context.Context, s *stage.ProcessingStage) error

	// GetForUpdate retrieves a stage under a row lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*stage.ProcessingStage, error)

	// ListByOrder returns the timeline ordered by start time then insertion.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*stage.ProcessingStage, error)
}

package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrCompleteStageCommandIsNotConstructed = errors.New(
	"CompleteStageCommand must be created via NewCompleteStageCommand constructor",
)

// CompleteStageCommand closes a running stage of the timeline.
type CompleteStageCommand struct {
	stageID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCompleteStageCommand(stageID kernel.UUID) (CompleteStageCommand, error) {
	if err := stageID.Validate(); err != nil {
		return CompleteStageCommand{}, err
	}

	return CompleteStageCommand{
		stageID: stageID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteStageCommand) Validate() error {
	return c.guard.Validate(ErrCompleteStageCommandIsNotConstructed)
}

func (c CompleteStageCommand) StageID() kernel.UUID { return c.stageID }

package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/stage"
)

// CompleteStageCommandHandler sets the completion time of a stage. Completing
// an already completed stage returns it unchanged.
type CompleteStageCommandHandler struct {
	uowFactory StageUoWFactory
}

func NewCompleteStageCommandHandler(uowFactory StageUoWFactory) CompleteStageCommandHandler {
	return CompleteStageCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CompleteStageCommandHandler) Handle(ctx context.Context, cmd CompleteStageCommand) (*stage.ProcessingStage, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stageRepo := uow.StageRepository()

	ps, err := stageRepo.GetForUpdate(ctx, cmd.StageID())
	if err != nil {
		return nil, err
	}

	if ps.IsCompleted() {
		return ps, nil
	}

	ps.Complete(time.Now().UTC())

	if err = stageRepo.Complete(ctx, ps); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ps, nil
}

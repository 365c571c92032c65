package commands

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/stage"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

// RecordStageResult describes what recording a stage did to the order.
//
// A stage is stored even when the status it projects is not reachable from the
// order's current status. StatusTransitionFailed and FailureReason report that
// case. PendingItems is only computed for ready_for_delivery and counts the
// order lines whose processing record is missing or not yet packaged.
type RecordStageResult struct {
	Stage                  *stage.ProcessingStage
	Order                  *order.Order
	ProjectedStatus        *order.Status
	StatusTransitionFailed bool
	FailureReason          string
	PendingItems           int
}

// RecordStageCommandHandler stores partner stage reports and projects them onto
// the coarse order status.
type RecordStageCommandHandler struct {
	uowFactory UoWFactory
	emitter    EventEmitter
	allocator  services.PartnerAllocator
}

func NewRecordStageCommandHandler(uowFactory UoWFactory, emitter EventEmitter) RecordStageCommandHandler {
	return RecordStageCommandHandler{
		uowFactory: uowFactory,
		emitter:    emitter,
		allocator:  services.NewPartnerAllocator(),
	}
}

func (h RecordStageCommandHandler) Handle(ctx context.Context, cmd RecordStageCommand) (RecordStageResult, error) {
	if err := cmd.Validate(); err != nil {
		return RecordStageResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RecordStageResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return RecordStageResult{}, err
	}

	now := time.Now().UTC()
	report := cmd.Report()

	ps, err := stage.NewProcessingStage(kernel.NewUUID(), o.ID(), report, now)
	if err != nil {
		return RecordStageResult{}, err
	}

	if err = uow.StageRepository().Add(ctx, ps); err != nil {
		return RecordStageResult{}, err
	}

	result := RecordStageResult{Stage: ps, Order: o}

	if projected, ok := report.Stage.ProjectedStatus(); ok {
		result.ProjectedStatus = &projected
		if err = h.project(ctx, uow, o, projected, report, now, &result); err != nil {
			return RecordStageResult{}, err
		}
	}

	if report.Stage == stage.ReadyForDelivery {
		if result.PendingItems, err = countPendingItems(ctx, uow, o); err != nil {
			return RecordStageResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return RecordStageResult{}, err
	}

	h.emitter.Emit(ctx, uow.DomainEvents()...)
	return result, nil
}

// project moves the order to the projected status. An order already in that
// status is left alone, which makes repeated submissions of a stage harmless.
func (h RecordStageCommandHandler) project(
	ctx context.Context,
	uow UoW,
	o *order.Order,
	projected order.Status,
	report stage.Report,
	at time.Time,
	result *RecordStageResult,
) error {
	if o.Status() == projected {
		return nil
	}

	held := o.HoldsPartnerCapacity()
	err := o.Transition(projected, report.PerformedBy, projectionNotes(report), at)
	if errors.Is(err, errs.ErrInvalidTransition) {
		result.StatusTransitionFailed = true
		result.FailureReason = err.Error()
		return nil
	}
	if err != nil {
		return err
	}

	if err = releaseCapacity(ctx, uow, h.allocator, held, o); err != nil {
		return err
	}

	return uow.OrderRepository().Update(ctx, o)
}

func projectionNotes(report stage.Report) string {
	if report.Notes != "" {
		return report.Notes
	}
	return "stage " + report.Stage.String()
}

func countPendingItems(ctx context.Context, uow ItemRepoFactory, o *order.Order) (int, error) {
	records, err := uow.ItemProcessingRepository().ListByOrder(ctx, o.ID())
	if err != nil {
		return 0, err
	}

	ready := make(map[kernel.UUID]bool, len(records))
	for _, r := range records {
		ready[r.OrderItemID()] = r.Status().IsReadyForDelivery()
	}

	pending := 0
	for _, it := range o.Items() {
		if !ready[it.ID()] {
			pending++
		}
	}
	return pending, nil
}

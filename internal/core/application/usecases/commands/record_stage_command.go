package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/stage"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrRecordStageCommandIsNotConstructed = errors.New(
	"RecordStageCommand must be created via NewRecordStageCommand constructor",
)

// ErrAssignmentStageNotReportable is the cause attached when a caller tries to
// record an assignment stage directly. Those stages are only written by the
// assign, accept and reject flows.
var ErrAssignmentStageNotReportable = errors.New("assignment stages are recorded by the assignment flow")

// RecordStageCommand appends a partner reported stage to an order's timeline.
//
// Example:
//
//	cmd, err := NewRecordStageCommand(orderID, stage.Report{
//	    Stage:       stage.PickupCompleted,
//	    PerformedBy: partnerUserID,
//	    Photos:      []string{"orders/42/pickup.jpg"},
//	})
type RecordStageCommand struct {
	orderID kernel.UUID
	report  stage.Report

	guard guard.ConstructorGuard
}

func NewRecordStageCommand(orderID kernel.UUID, report stage.Report) (RecordStageCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		report.Stage.Validate(),
		report.PerformedBy.Validate(),
	); err != nil {
		return RecordStageCommand{}, err
	}
	if report.Stage.Category() == stage.CategoryAssignment {
		return RecordStageCommand{}, errs.NewValueIsInvalidErrorWithCause("stage", ErrAssignmentStageNotReportable)
	}

	return RecordStageCommand{
		orderID: orderID,
		report:  report,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RecordStageCommand) Validate() error {
	return c.guard.Validate(ErrRecordStageCommandIsNotConstructed)
}

func (c RecordStageCommand) OrderID() kernel.UUID { return c.orderID }
func (c RecordStageCommand) Report() stage.Report { return c.report }

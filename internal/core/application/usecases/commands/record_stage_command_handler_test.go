package commands_test

import (
	"errors"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/item"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/stage"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRecordStageCommand(t *testing.T, orderID kernel.UUID, r stage.Report) commands.RecordStageCommand {
	t.Helper()
	if r.PerformedBy == (kernel.UUID{}) {
		r.PerformedBy = kernel.NewUUID()
	}
	cmd, err := commands.NewRecordStageCommand(orderID, r)
	require.NoError(t, err)
	return cmd
}

func TestNewRecordStageCommand(t *testing.T) {
	t.Run("should reject unknown stages", func(t *testing.T) {
		_, err := commands.NewRecordStageCommand(kernel.NewUUID(), stage.Report{
			Stage:       stage.Stage("teleported"),
			PerformedBy: kernel.NewUUID(),
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject assignment stages", func(t *testing.T) {
		for _, s := range []stage.Stage{stage.Assigned, stage.Accepted, stage.Rejected} {
			_, err := commands.NewRecordStageCommand(kernel.NewUUID(), stage.Report{
				Stage:       s,
				PerformedBy: kernel.NewUUID(),
			})

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, s.String())
			assert.ErrorContains(t, err, commands.ErrAssignmentStageNotReportable.Error(), s.String())
		}
	})
}

func TestRecordStageCommandHandler_Handle(t *testing.T) {
	t.Run("should store the stage and project pickup_completed onto picked_up", func(t *testing.T) {
		ctx := t.Context()
		o := newAcceptedOrder(t, newPartner(t, 3, 0))
		cmd := newRecordStageCommand(t, o.ID(), stage.Report{Stage: stage.PickupCompleted, Photos: []string{"orders/a/pickup.jpg"}})

		uow, r := newMockUoW()
		emitter := new(MockEmitter)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			r.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
			r.stages.On("Add", ctx, mock.AnythingOfType("*stage.ProcessingStage")).Return(nil).Once(),
			r.orders.On("Update", ctx, o).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("DomainEvents").Return(nil).Once(),
			emitter.On("Emit", ctx, mock.Anything).Return().Once(),
		)

		result, err := commands.NewRecordStageCommandHandler(newUoWFactory(uow), emitter).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.False(t, result.StatusTransitionFailed)
		require.NotNil(t, result.ProjectedStatus)
		assert.Equal(t, order.PickedUp, *result.ProjectedStatus)
		assert.Equal(t, order.PickedUp, o.Status())
		assert.Equal(t, stage.CategoryPickup, result.Stage.Category())
		assert.Equal(t, []string{"orders/a/pickup.jpg"}, result.Stage.Photos())
		uow.AssertExpectations(t)
	})

	t.Run("should keep the stage when the projection is illegal", func(t *testing.T) {
		ctx := t.Context()
		o := newOrder(t)
		cmd := newRecordStageCommand(t, o.ID(), stage.Report{Stage: stage.Washing})

		uow, r := newMockUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		r.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
		r.stages.On("Add", ctx, mock.Anything).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("DomainEvents").Return(nil).Once()
		emitter := new(MockEmitter)
		emitter.On("Emit", ctx, mock.Anything).Return().Once()

		result, err := commands.NewRecordStageCommandHandler(newUoWFactory(uow), emitter).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, result.StatusTransitionFailed)
		assert.Contains(t, result.FailureReason, "pending")
		assert.Contains(t, result.FailureReason, "in_progress")
		assert.Equal(t, order.Pending, o.Status())
		assert.NotNil(t, result.Stage)
		r.stages.AssertExpectations(t)
		r.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should treat a repeated projection as a no-op", func(t *testing.T) {
		ctx := t.Context()
		o := newAcceptedOrder(t, newPartner(t, 3, 0))
		advance(t, o, order.PickedUp, order.InProgress)
		cmd := newRecordStageCommand(t, o.ID(), stage.Report{Stage: stage.Washing})

		uow, r := newMockUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		r.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
		r.stages.On("Add", ctx, mock.Anything).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("DomainEvents").Return(nil).Once()
		emitter := new(MockEmitter)
		emitter.On("Emit", ctx, mock.Anything).Return().Once()

		result, err := commands.NewRecordStageCommandHandler(newUoWFactory(uow), emitter).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.False(t, result.StatusTransitionFailed)
		assert.Empty(t, o.NewHistory())
		r.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should store stages without projection and leave the order alone", func(t *testing.T) {
		ctx := t.Context()
		o := newOrder(t)
		cmd := newRecordStageCommand(t, o.ID(), stage.Report{Stage: stage.IssueReported, IssueDescription: "missing button"})

		uow, r := newMockUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		r.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
		r.stages.On("Add", ctx, mock.Anything).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("DomainEvents").Return(nil).Once()
		emitter := new(MockEmitter)
		emitter.On("Emit", ctx, mock.Anything).Return().Once()

		result, err := commands.NewRecordStageCommandHandler(newUoWFactory(uow), emitter).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Nil(t, result.ProjectedStatus)
		assert.True(t, result.Stage.HasIssue())
		assert.Equal(t, stage.CategoryIssue, result.Stage.Category())
	})

	t.Run("should release capacity once delivered", func(t *testing.T) {
		ctx := t.Context()
		p := newPartner(t, 3, 0)
		o := newAcceptedOrder(t, p)
		advance(t, o, order.PickedUp, order.InProgress, order.Ready, order.OutForDelivery)
		cmd := newRecordStageCommand(t, o.ID(), stage.Report{Stage: stage.Delivered, Photos: []string{"proof.jpg"}})

		uow, r := newMockUoW()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			r.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
			r.stages.On("Add", ctx, mock.Anything).Return(nil).Once(),
			r.partners.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once(),
			r.partners.On("Update", ctx, p).Return(nil).Once(),
			r.orders.On("Update", ctx, o).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
		)
		uow.On("DomainEvents").Return(nil).Once()
		emitter := new(MockEmitter)
		emitter.On("Emit", ctx, mock.Anything).Return().Once()

		_, err := commands.NewRecordStageCommandHandler(newUoWFactory(uow), emitter).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.NotNil(t, o.CompletedAt())
		assert.Equal(t, 0, p.CurrentLoad())
	})

	t.Run("should reject a delivery without proof photo", func(t *testing.T) {
		ctx := t.Context()
		o := newOrder(t)
		cmd := newRecordStageCommand(t, o.ID(), stage.Report{Stage: stage.Delivered})

		uow, r := newMockUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		r.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()

		_, err := commands.NewRecordStageCommandHandler(newUoWFactory(uow), new(MockEmitter)).Handle(ctx, cmd)

		require.ErrorIs(t, err, stage.ErrPhotoIsRequired)
		r.stages.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("should report item lines not yet packaged on ready_for_delivery", func(t *testing.T) {
		ctx := t.Context()
		o := newAcceptedOrder(t, newPartner(t, 3, 0))
		advance(t, o, order.PickedUp, order.InProgress)
		cmd := newRecordStageCommand(t, o.ID(), stage.Report{Stage: stage.ReadyForDelivery})

		line := o.Items()[0]
		record, err := item.NewProcessing(kernel.NewUUID(), o.ID(), line.ID())
		require.NoError(t, err)
		require.NoError(t, record.Apply(item.Update{Status: item.Inspecting, ProcessedBy: kernel.NewUUID()}, time.Now()))

		uow, r := newMockUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		r.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
		r.stages.On("Add", ctx, mock.Anything).Return(nil).Once()
		r.orders.On("Update", ctx, o).Return(nil).Once()
		r.items.On("ListByOrder", ctx, o.ID()).Return([]*item.Processing{record}, nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("DomainEvents").Return(nil).Once()
		emitter := new(MockEmitter)
		emitter.On("Emit", ctx, mock.Anything).Return().Once()

		result, err := commands.NewRecordStageCommandHandler(newUoWFactory(uow), emitter).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Ready, o.Status())
		assert.Equal(t, 1, result.PendingItems)
	})

	t.Run("should not commit when storing the stage fails", func(t *testing.T) {
		ctx := t.Context()
		o := newOrder(t)
		cmd := newRecordStageCommand(t, o.ID(), stage.Report{Stage: stage.PickupScheduled})

		uow, r := newMockUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		r.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
		r.stages.On("Add", ctx, mock.Anything).Return(errors.New("insert failed")).Once()

		_, err := commands.NewRecordStageCommandHandler(newUoWFactory(uow), new(MockEmitter)).Handle(ctx, cmd)

		require.EqualError(t, err, "insert failed")
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/stage"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRejectOrderCommand(t *testing.T) {
	t.Run("should require a reason", func(t *testing.T) {
		_, err := commands.NewRejectOrderCommand(kernel.NewUUID(), "   ", kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, order.ErrReasonIsRequired)
	})

	t.Run("should trim the reason", func(t *testing.T) {
		cmd, err := commands.NewRejectOrderCommand(kernel.NewUUID(), " fully booked ", kernel.NewUUID())

		require.NoError(t, err)
		assert.Equal(t, "fully booked", cmd.Reason())
	})
}

func TestRejectOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should clear the assignment and keep the load", func(t *testing.T) {
		ctx := t.Context()
		p := newPartner(t, 3, 1)
		o := newAssignedOrder(t, p)
		cmd, err := commands.NewRejectOrderCommand(o.ID(), "machine broken", kernel.NewUUID())
		require.NoError(t, err)

		uow, r := newMockUoW()
		emitter := new(MockEmitter)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			r.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
			r.stages.On("Add", ctx, mock.MatchedBy(func(s *stage.ProcessingStage) bool {
				return s.Stage() == stage.Rejected && s.Notes() == "machine broken"
			})).Return(nil).Once(),
			r.orders.On("Update", ctx, o).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("DomainEvents").Return(nil).Once(),
			emitter.On("Emit", ctx, mock.Anything).Return().Once(),
		)

		got, err := commands.NewRejectOrderCommandHandler(newUoWFactory(uow), emitter).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, got.Status())
		assert.Nil(t, got.AssignedPartner())
		assert.NotNil(t, got.PartnerRejectedAt())
		assert.Equal(t, "machine broken", got.RejectionReason())
		assert.Empty(t, got.NewHistory())
		assert.Equal(t, 1, p.CurrentLoad())
		r.partners.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
		uow.AssertExpectations(t)
	})

	t.Run("should fail with already decided after acceptance", func(t *testing.T) {
		ctx := t.Context()
		o := newAcceptedOrder(t, newPartner(t, 3, 0))
		cmd, err := commands.NewRejectOrderCommand(o.ID(), "changed mind", kernel.NewUUID())
		require.NoError(t, err)

		uow, r := newMockUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		r.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()

		_, err = commands.NewRejectOrderCommandHandler(newUoWFactory(uow), new(MockEmitter)).Handle(ctx, cmd)

		require.ErrorIs(t, err, order.ErrAlreadyDecided)
		assert.Equal(t, order.Confirmed, o.Status())
		r.stages.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})
}

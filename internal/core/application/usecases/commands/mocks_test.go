package commands_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/item"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/outbox"
	"laundry/internal/core/domain/model/partner"
	"laundry/internal/core/domain/model/stage"
	"laundry/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const servedPincode = "560034"

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetHistory(ctx context.Context, id kernel.UUID) ([]order.StatusChange, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.StatusChange), args.Error(1)
}

func (m *MockOrderRepository) GetFirstUnassigned(ctx context.Context, rejectedBefore time.Time) (*order.Order, error) {
	args := m.Called(ctx, rejectedBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockPartnerRepository struct{ mock.Mock }

func (m *MockPartnerRepository) Add(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Update(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) FindEligible(ctx context.Context, pincode kernel.Pincode) ([]*partner.Partner, error) {
	args := m.Called(ctx, pincode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partner.Partner), args.Error(1)
}

type MockStageRepository struct{ mock.Mock }

func (m *MockStageRepository) Add(ctx context.Context, s *stage.ProcessingStage) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStageRepository) Complete(ctx context.Context, s *stage.ProcessingStage) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStageRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*stage.ProcessingStage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stage.ProcessingStage), args.Error(1)
}

func (m *MockStageRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*stage.ProcessingStage, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*stage.ProcessingStage), args.Error(1)
}

type MockItemRepository struct{ mock.Mock }

func (m *MockItemRepository) Add(ctx context.Context, p *item.Processing) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, p *item.Processing) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockItemRepository) GetByOrderItem(ctx context.Context, id kernel.UUID) (*item.Processing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Processing), args.Error(1)
}

func (m *MockItemRepository) GetByOrderItemForUpdate(ctx context.Context, id kernel.UUID) (*item.Processing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Processing), args.Error(1)
}

func (m *MockItemRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*item.Processing, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*item.Processing), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) FetchUnpublished(ctx context.Context, limit int) ([]outbox.Message, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]outbox.Message), args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	args := m.Called(ctx, ids, at)
	return args.Error(0)
}

func (m *MockOutboxRepository) MarkFailed(ctx context.Context, ids []kernel.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PartnerRepository() ports.PartnerRepository {
	args := m.Called()
	return args.Get(0).(ports.PartnerRepository)
}

func (m *MockUoW) StageRepository() ports.StageRepository {
	args := m.Called()
	return args.Get(0).(ports.StageRepository)
}

func (m *MockUoW) ItemProcessingRepository() ports.ItemProcessingRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemProcessingRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

func (m *MockUoW) DomainEvents() []order.StatusChanged {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]order.StatusChanged)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPartnerUoWFactory struct{ mock.Mock }

func (m *MockPartnerUoWFactory) Create() commands.PartnerUoW {
	args := m.Called()
	return args.Get(0).(commands.PartnerUoW)
}

type MockStageUoWFactory struct{ mock.Mock }

func (m *MockStageUoWFactory) Create() commands.StageUoW {
	args := m.Called()
	return args.Get(0).(commands.StageUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	args := m.Called()
	return args.Get(0).(commands.OutboxUoW)
}

type MockEmitter struct{ mock.Mock }

func (m *MockEmitter) Emit(ctx context.Context, events ...order.StatusChanged) {
	m.Called(ctx, events)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, messages ...outbox.Message) error {
	args := m.Called(ctx, messages)
	return args.Error(0)
}

// repos bundles the repository mocks handed out by a MockUoW.
type repos struct {
	orders   *MockOrderRepository
	partners *MockPartnerRepository
	stages   *MockStageRepository
	items    *MockItemRepository
	outbox   *MockOutboxRepository
}

// newMockUoW wires repository accessors that may be called any number of times
// and a rollback that runs in the deferred cleanup of every handler.
func newMockUoW() (*MockUoW, repos) {
	r := repos{
		orders:   new(MockOrderRepository),
		partners: new(MockPartnerRepository),
		stages:   new(MockStageRepository),
		items:    new(MockItemRepository),
		outbox:   new(MockOutboxRepository),
	}

	uow := new(MockUoW)
	uow.On("OrderRepository").Return(r.orders).Maybe()
	uow.On("PartnerRepository").Return(r.partners).Maybe()
	uow.On("StageRepository").Return(r.stages).Maybe()
	uow.On("ItemProcessingRepository").Return(r.items).Maybe()
	uow.On("OutboxRepository").Return(r.outbox).Maybe()
	uow.On("Rollback", mock.Anything).Return(nil).Maybe()

	return uow, r
}

func newUoWFactory(uow *MockUoW) *MockUoWFactory {
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory
}

func mustPincode(t *testing.T) kernel.Pincode {
	t.Helper()
	pincode, err := kernel.NewPincode(servedPincode)
	require.NoError(t, err)
	return pincode
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	line, err := order.NewItem(kernel.NewUUID(), "shirt", "wash_and_iron", 3)
	require.NoError(t, err)
	financials, err := order.NewFinancials(decimal.NewFromInt(300), decimal.NewFromInt(40), decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		order.Addresses{Pickup: kernel.NewUUID(), Delivery: kernel.NewUUID()},
		mustPincode(t), []*order.Item{line}, financials, time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func newPartner(t *testing.T, capacity, load int) *partner.Partner {
	t.Helper()
	p, err := partner.NewPartner(kernel.NewUUID(), "Fresh Fold", "BLR-EAST", capacity, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, p.AddServiceArea(mustPincode(t)))
	require.NoError(t, p.Verify(time.Now().UTC()))
	for range load {
		require.NoError(t, p.TakeOrder())
	}
	return p
}

// newAcceptedOrder returns a confirmed order accepted by p, with p's load charged.
func newAcceptedOrder(t *testing.T, p *partner.Partner) *order.Order {
	t.Helper()
	o := newOrder(t)
	require.NoError(t, o.AssignPartner(p.ID()))
	require.NoError(t, p.TakeOrder())
	require.NoError(t, o.Accept(kernel.NewUUID(), time.Now().UTC()))
	o.MarkPersisted(1)
	o.ClearDomainEvents()
	return o
}

// advance walks an order through the given statuses and forgets the changes.
func advance(t *testing.T, o *order.Order, statuses ...order.Status) {
	t.Helper()
	for _, s := range statuses {
		require.NoError(t, o.Transition(s, kernel.NewUUID(), "", time.Now().UTC()))
	}
	o.MarkPersisted(o.Version() + 1)
	o.ClearDomainEvents()
}

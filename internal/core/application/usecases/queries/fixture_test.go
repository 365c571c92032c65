package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/postgres/itemrepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/partnerrepo"
	"laundry/internal/adapters/out/postgres/stagerepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/partner"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// noopTracker satisfies the repositories' aggregate tracker; query tests never
// drain events.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// fixture is a migrated in-memory database plus the repositories used to seed it.
type fixture struct {
	t        *testing.T
	db       *gorm.DB
	orders   *orderrepo.GormOrderRepository
	partners *partnerrepo.GormPartnerRepository
	stages   *stagerepo.GormStageRepository
	items    *itemrepo.GormItemProcessingRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres_adapter.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return &fixture{
		t:        t,
		db:       db,
		orders:   orderrepo.NewGormOrderRepository(db, noopTracker{}),
		partners: partnerrepo.NewGormPartnerRepository(db, noopTracker{}),
		stages:   stagerepo.NewGormStageRepository(db),
		items:    itemrepo.NewGormItemProcessingRepository(db),
	}
}

func (f *fixture) pincode(raw string) kernel.Pincode {
	p, err := kernel.NewPincode(raw)
	require.NoError(f.t, err)
	return p
}

// newPartner builds a verified, active partner serving pincodes.
func (f *fixture) newPartner(name string, capacity, load int, rating float64, pincodes ...string) *partner.Partner {
	p, err := partner.NewPartner(kernel.NewUUID(), name, "BLR-EAST", capacity, time.Now().UTC())
	require.NoError(f.t, err)
	for _, raw := range pincodes {
		require.NoError(f.t, p.AddServiceArea(f.pincode(raw)))
	}
	require.NoError(f.t, p.Verify(time.Now().UTC()))
	require.NoError(f.t, p.SetAverageRating(rating))
	for range load {
		require.NoError(f.t, p.TakeOrder())
	}
	return p
}

func (f *fixture) savePartners(partners ...*partner.Partner) {
	for _, p := range partners {
		require.NoError(f.t, f.partners.Add(context.Background(), p))
	}
}

func (f *fixture) newOrder(rawPincode string, createdAt time.Time) *order.Order {
	shirt, err := order.NewItem(kernel.NewUUID(), "shirt", "wash_and_iron", 3)
	require.NoError(f.t, err)
	blanket, err := order.NewItem(kernel.NewUUID(), "blanket", "dry_clean", 1)
	require.NoError(f.t, err)

	financials, err := order.NewFinancials(
		decimal.RequireFromString("450.00"),
		decimal.RequireFromString("40.00"),
		decimal.RequireFromString("50.00"),
		decimal.RequireFromString("22.50"),
	)
	require.NoError(f.t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		order.Addresses{Pickup: kernel.NewUUID(), Delivery: kernel.NewUUID()},
		f.pincode(rawPincode), []*order.Item{shirt, blanket}, financials, createdAt.UTC(),
	)
	require.NoError(f.t, err)
	return o
}

func (f *fixture) saveOrder(o *order.Order) *order.Order {
	require.NoError(f.t, f.orders.Add(context.Background(), o))
	return o
}

// walk moves a saved order through statuses and persists the result.
func (f *fixture) walk(o *order.Order, actor kernel.UUID, statuses ...order.Status) {
	at := o.CreatedAt()
	for _, s := range statuses {
		at = at.Add(time.Minute)
		require.NoError(f.t, o.Transition(s, actor, "", at))
	}
	require.NoError(f.t, f.orders.Update(context.Background(), o))
}

package partner_test

import (
	"sync"
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/partner"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var registeredAt = time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

func pincode(t *testing.T, raw string) kernel.Pincode {
	t.Helper()
	p, err := kernel.NewPincode(raw)
	require.NoError(t, err)
	return p
}

func activePartner(t *testing.T, capacity int, areas ...string) *partner.Partner {
	t.Helper()
	p, err := partner.NewPartner(kernel.NewUUID(), "Fresh Fold", "blr-east", capacity, registeredAt)
	require.NoError(t, err)
	for _, a := range areas {
		require.NoError(t, p.AddServiceArea(pincode(t, a)))
	}
	require.NoError(t, p.Verify(registeredAt.Add(time.Hour)))
	return p
}

func TestNewPartner(t *testing.T) {
	t.Run("should register pending partner", func(t *testing.T) {
		p, err := partner.NewPartner(kernel.NewUUID(), "  Fresh Fold ", "blr-east", 10, registeredAt)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "Fresh Fold", p.BusinessName())
		assert.Equal(t, "BLR-EAST", p.Zone())
		assert.Equal(t, partner.Pending, p.Status())
		assert.False(t, p.IsVerified())
		assert.Equal(t, 0, p.CurrentLoad())
		assert.Equal(t, 10, p.FreeCapacity())
		assert.Empty(t, p.ServiceAreas())
	})

	t.Run("should join validation errors", func(t *testing.T) {
		p, err := partner.NewPartner(kernel.UUID{}, "", " ", 0, registeredAt)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, partner.ErrBusinessNameIsRequired)
		assert.ErrorIs(t, err, partner.ErrZoneIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var p partner.Partner
		assert.ErrorIs(t, p.Validate(), partner.ErrPartnerIsNotConstructed)
	})
}

func TestPartner_CapacityLedger(t *testing.T) {
	t.Run("should fill up to capacity and refuse one more", func(t *testing.T) {
		p := activePartner(t, 2, "560001")

		require.NoError(t, p.TakeOrder())
		require.NoError(t, p.TakeOrder())
		err := p.TakeOrder()

		require.ErrorIs(t, err, partner.ErrCapacityExceeded)
		assert.Equal(t, 2, p.CurrentLoad())
		assert.Equal(t, 0, p.FreeCapacity())
	})

	t.Run("should release load and never go below zero", func(t *testing.T) {
		p := activePartner(t, 2, "560001")
		require.NoError(t, p.TakeOrder())

		require.NoError(t, p.ReleaseOrder())
		err := p.ReleaseOrder()

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, 0, p.CurrentLoad())
	})

	t.Run("should keep capacity above current load", func(t *testing.T) {
		p := activePartner(t, 3, "560001")
		require.NoError(t, p.TakeOrder())
		require.NoError(t, p.TakeOrder())

		require.ErrorIs(t, p.SetDailyCapacity(1), errs.ErrValueIsOutOfRange)
		require.NoError(t, p.SetDailyCapacity(2))
		assert.Equal(t, 2, p.DailyCapacity())
	})

	t.Run("should never exceed capacity when guarded by a lock", func(t *testing.T) {
		p := activePartner(t, 5, "560001")
		var (
			mu       sync.Mutex
			wg       sync.WaitGroup
			accepted int
		)

		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				mu.Lock()
				defer mu.Unlock()
				if p.TakeOrder() == nil {
					accepted++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 5, accepted)
		assert.Equal(t, 5, p.CurrentLoad())
	})
}

func TestPartner_Eligibility(t *testing.T) {
	served := "560001"

	t.Run("should be eligible when active verified serving and not full", func(t *testing.T) {
		p := activePartner(t, 1, served)
		assert.True(t, p.IsEligibleFor(pincode(t, served)))
		assert.False(t, p.IsEligibleFor(pincode(t, "110001")))
	})

	t.Run("should not be eligible when full", func(t *testing.T) {
		p := activePartner(t, 1, served)
		require.NoError(t, p.TakeOrder())
		assert.False(t, p.IsEligibleFor(pincode(t, served)))
	})

	t.Run("should not be eligible before verification", func(t *testing.T) {
		p, err := partner.NewPartner(kernel.NewUUID(), "Spin Cycle", "blr", 3, registeredAt)
		require.NoError(t, err)
		require.NoError(t, p.AddServiceArea(pincode(t, served)))
		assert.False(t, p.IsEligibleFor(pincode(t, served)))
	})

	t.Run("should not be eligible once suspended", func(t *testing.T) {
		p := activePartner(t, 3, served)
		require.NoError(t, p.Suspend())
		assert.Equal(t, partner.Suspended, p.Status())
		assert.False(t, p.IsEligibleFor(pincode(t, served)))
	})
}

func TestPartner_Lifecycle(t *testing.T) {
	t.Run("should keep the first verification time", func(t *testing.T) {
		p := activePartner(t, 3)
		first := *p.VerifiedAt()
		require.NoError(t, p.Suspend())

		require.NoError(t, p.Verify(registeredAt.Add(48*time.Hour)))

		assert.Equal(t, partner.Active, p.Status())
		assert.Equal(t, first, *p.VerifiedAt())
	})

	t.Run("should reject only pending registrations", func(t *testing.T) {
		p, err := partner.NewPartner(kernel.NewUUID(), "Spin Cycle", "blr", 3, registeredAt)
		require.NoError(t, err)
		require.NoError(t, p.Reject())
		assert.Equal(t, partner.Rejected, p.Status())

		active := activePartner(t, 3)
		assert.ErrorIs(t, active.Reject(), errs.ErrInvalidTransition)
	})

	t.Run("should deactivate active partners only", func(t *testing.T) {
		p, err := partner.NewPartner(kernel.NewUUID(), "Spin Cycle", "blr", 3, registeredAt)
		require.NoError(t, err)
		assert.ErrorIs(t, p.Deactivate(), errs.ErrInvalidTransition)

		active := activePartner(t, 3)
		require.NoError(t, active.Deactivate())
		assert.Equal(t, partner.Inactive, active.Status())
	})
}

func TestPartner_ServiceAreas(t *testing.T) {
	t.Run("should ignore duplicates", func(t *testing.T) {
		p := activePartner(t, 3, "560001", "560001", "560002")
		assert.Len(t, p.ServiceAreas(), 2)
	})

	t.Run("should remove an area", func(t *testing.T) {
		p := activePartner(t, 3, "560001", "560002")

		require.NoError(t, p.RemoveServiceArea(pincode(t, "560001")))

		assert.False(t, p.Serves(pincode(t, "560001")))
		assert.True(t, p.Serves(pincode(t, "560002")))
		assert.ErrorIs(t, p.RemoveServiceArea(pincode(t, "560001")), errs.ErrObjectNotFound)
	})
}

func TestPartner_Rating(t *testing.T) {
	p := activePartner(t, 3)

	require.NoError(t, p.SetAverageRating(4.6))
	assert.InDelta(t, 4.6, p.AverageRating(), 0.0001)
	assert.ErrorIs(t, p.SetAverageRating(5.1), errs.ErrValueIsOutOfRange)
	assert.ErrorIs(t, p.SetAverageRating(-0.1), errs.ErrValueIsOutOfRange)
}

func TestRestorePartner(t *testing.T) {
	t.Run("should restore from snapshot", func(t *testing.T) {
		p := activePartner(t, 3, "560001")
		require.NoError(t, p.TakeOrder())

		restored, err := partner.RestorePartner(p.Snapshot())

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(p))
		assert.Equal(t, 1, restored.CurrentLoad())
		assert.True(t, restored.IsEligibleFor(pincode(t, "560001")))
	})

	t.Run("should refuse load above capacity", func(t *testing.T) {
		state := activePartner(t, 3).Snapshot()
		state.CurrentLoad = 4

		_, err := partner.RestorePartner(state)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

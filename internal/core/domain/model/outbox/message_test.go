package outbox_test

import (
	"encoding/json"
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/outbox"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatusChangedMessage(t *testing.T) {
	partnerID := kernel.NewUUID()
	event := order.StatusChanged{
		OrderID:    kernel.NewUUID(),
		CustomerID: kernel.NewUUID(),
		PartnerID:  &partnerID,
		From:       order.Ready,
		To:         order.OutForDelivery,
		Actor:      partnerID,
		OccurredAt: time.Date(2026, 7, 1, 18, 30, 0, 0, time.UTC),
	}

	msg, err := outbox.NewStatusChangedMessage(event)

	require.NoError(t, err)
	assert.Equal(t, outbox.EventOrderStatusChanged, msg.EventType)
	assert.True(t, msg.AggregateID.IsEqual(event.OrderID))
	assert.Nil(t, msg.PublishedAt)

	var payload outbox.StatusChangedPayload
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	assert.Equal(t, "ready", payload.From)
	assert.Equal(t, "out_for_delivery", payload.To)
	require.NotNil(t, payload.PartnerID)
	assert.Equal(t, partnerID.String(), *payload.PartnerID)
}

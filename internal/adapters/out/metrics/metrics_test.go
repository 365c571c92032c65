package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_OnOrderStatusChanged(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	event := order.StatusChanged{
		OrderID:    kernel.NewUUID(),
		CustomerID: kernel.NewUUID(),
		From:       order.Ready,
		To:         order.OutForDelivery,
		Actor:      kernel.NewUUID(),
		OccurredAt: time.Now().UTC(),
	}
	require.NoError(t, m.OnOrderStatusChanged(context.Background(), event))
	require.NoError(t, m.OnOrderStatusChanged(context.Background(), event))

	assert.InDelta(t, 2, testutil.ToFloat64(m.transitions.WithLabelValues("ready", "out_for_delivery")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.transitions.WithLabelValues("pending", "confirmed")), 0)
}

func TestMetrics_ObserveOutboxRelay(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	m.ObserveOutboxRelay(3, nil)
	m.ObserveOutboxRelay(2, nil)
	m.ObserveOutboxRelay(0, errors.New("broker down"))

	assert.InDelta(t, 5, testutil.ToFloat64(m.outboxPublished), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.outboxFailures), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m, err := New()
	require.NoError(t, err)
	m.ObserveAutoAssign("assigned")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `laundry_auto_assign_runs_total{outcome="assigned"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

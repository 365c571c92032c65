package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"laundry/api"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/item"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/partner"
	"laundry/internal/core/domain/model/stage"
	"laundry/internal/generated/servers"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type useCaseFunc[In, Out any] func(ctx context.Context, in In) (Out, error)

func (f useCaseFunc[In, Out]) Handle(ctx context.Context, in In) (Out, error) {
	return f(ctx, in)
}

const headerActorID = "X-Actor-ID"

func newEcho(t *testing.T, handlers Handlers) *echo.Echo {
	t.Helper()
	doc, err := api.Load(t.Context())
	require.NoError(t, err)

	e := echo.New()
	require.NoError(t, NewServer(handlers, slog.New(slog.NewTextHandler(io.Discard, nil))).RegisterRoutes(e, doc))
	return e
}

func do(e *echo.Echo, method, target, body string, actor *kernel.UUID) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if actor != nil {
		req.Header.Set(headerActorID, actor.String())
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func testPincode(t *testing.T) kernel.Pincode {
	t.Helper()
	p, err := kernel.NewPincode("560001")
	require.NoError(t, err)
	return p
}

func testOrder(t *testing.T) *order.Order {
	t.Helper()
	line, err := order.NewItem(kernel.NewUUID(), "shirt", "wash_and_iron", 3)
	require.NoError(t, err)
	financials, err := order.NewFinancials(decimal.NewFromInt(450), decimal.NewFromInt(40), decimal.NewFromInt(50), decimal.RequireFromString("22.50"))
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		order.Addresses{Pickup: kernel.NewUUID(), Delivery: kernel.NewUUID()},
		testPincode(t), []*order.Item{line}, financials, time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func testPartner(t *testing.T) *partner.Partner {
	t.Helper()
	p, err := partner.NewPartner(kernel.NewUUID(), "Fresh Fold", "blr-east", 10, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, p.AddServiceArea(testPincode(t)))
	return p
}

func TestCreateOrder(t *testing.T) {
	actor := kernel.NewUUID()
	customer := kernel.NewUUID()

	var captured commands.CreateOrderCommand
	e := newEcho(t, Handlers{
		CreateOrder: useCaseFunc[commands.CreateOrderCommand, *order.Order](
			func(_ context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
				captured = cmd
				return order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.Addresses(), cmd.Pincode(),
					cmd.Items(), cmd.Financials(), time.Now().UTC())
			}),
	})

	body := `{
		"customer_id": "` + customer.String() + `",
		"pickup_address_id": "` + kernel.NewUUID().String() + `",
		"delivery_address_id": "` + kernel.NewUUID().String() + `",
		"pincode": "560001",
		"items": [{"garment": "shirt", "service": "wash_and_iron", "quantity": 3}],
		"financials": {"subtotal": "450", "delivery_fee": "40", "discount": "50", "tax": "22.50"}
	}`
	rec := do(e, http.MethodPost, "/api/v1/orders", body, &actor)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.True(t, captured.CustomerID().IsEqual(customer))
	require.Len(t, captured.Items(), 1)
	assert.True(t, captured.Financials().Total().Equal(decimal.RequireFromString("462.50")))

	var resp servers.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, servers.OrderStatusPending, resp.Status)
	assert.Equal(t, servers.PaymentStatusPending, resp.PaymentStatus)
	assert.Equal(t, "560001", resp.Pincode)
	assert.Nil(t, resp.AssignedPartnerId)
	assert.Equal(t, customer.Bytes(), resp.CustomerId)
}

func TestCreateOrder_Validation(t *testing.T) {
	called := false
	e := newEcho(t, Handlers{
		CreateOrder: useCaseFunc[commands.CreateOrderCommand, *order.Order](
			func(context.Context, commands.CreateOrderCommand) (*order.Order, error) {
				called = true
				return nil, nil
			}),
	})
	actor := kernel.NewUUID()

	tests := []struct {
		name  string
		body  string
		actor *kernel.UUID
	}{
		{"missing actor", `{}`, nil},
		{"malformed json", `{"customer_id":`, &actor},
		{"missing customer", `{"pincode": "560001"}`, &actor},
		{"bad pincode", `{"customer_id": "` + kernel.NewUUID().String() + `",
			"pickup_address_id": "` + kernel.NewUUID().String() + `",
			"delivery_address_id": "` + kernel.NewUUID().String() + `",
			"pincode": "0123",
			"items": [{"garment": "shirt", "service": "wash", "quantity": 1}],
			"financials": {"subtotal": "1", "delivery_fee": "0", "discount": "0", "tax": "0"}}`, &actor},
		{"no items", `{"customer_id": "` + kernel.NewUUID().String() + `",
			"pickup_address_id": "` + kernel.NewUUID().String() + `",
			"delivery_address_id": "` + kernel.NewUUID().String() + `",
			"pincode": "560001",
			"items": [],
			"financials": {"subtotal": "1", "delivery_fee": "0", "discount": "0", "tax": "0"}}`, &actor},
		{"nil customer", `{"customer_id": "00000000-0000-0000-0000-000000000000",
			"pickup_address_id": "` + kernel.NewUUID().String() + `",
			"delivery_address_id": "` + kernel.NewUUID().String() + `",
			"pincode": "560001",
			"items": [{"garment": "shirt", "service": "wash", "quantity": 1}],
			"financials": {"subtotal": "1", "delivery_fee": "0", "discount": "0", "tax": "0"}}`, &actor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodPost, "/api/v1/orders", tt.body, tt.actor)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, KindValidation, body.Kind)
			assert.Equal(t, http.StatusBadRequest, body.Code)
		})
	}
	assert.False(t, called)
}

func TestAcceptOrder_ConflictKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind servers.ErrorKind
	}{
		{"already decided", order.ErrAlreadyDecided, KindAlreadyDecided},
		{"concurrent update", errs.NewVersionIsInvalidErrorWithCause("order version"), KindConcurrentUpdate},
		{"capacity exceeded", partner.ErrCapacityExceeded, KindCapacityExceeded},
		{"invalid transition", errs.NewInvalidTransitionError("order", "delivered", "confirmed"), KindInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEcho(t, Handlers{
				AcceptOrder: useCaseFunc[commands.AcceptOrderCommand, *order.Order](
					func(context.Context, commands.AcceptOrderCommand) (*order.Order, error) {
						return nil, tt.err
					}),
			})
			actor := kernel.NewUUID()

			rec := do(e, http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/accept", "", &actor)

			require.Equal(t, http.StatusConflict, rec.Code)
			assert.Equal(t, tt.kind, decodeError(t, rec).Kind)
		})
	}
}

func TestAcceptOrder_PassesActor(t *testing.T) {
	o := testOrder(t)
	p := testPartner(t)
	require.NoError(t, o.AssignPartner(p.ID()))
	actor := kernel.NewUUID()

	e := newEcho(t, Handlers{
		AcceptOrder: useCaseFunc[commands.AcceptOrderCommand, *order.Order](
			func(_ context.Context, cmd commands.AcceptOrderCommand) (*order.Order, error) {
				assert.True(t, cmd.Actor().IsEqual(actor))
				assert.True(t, cmd.OrderID().IsEqual(o.ID()))
				if err := o.Accept(cmd.Actor(), time.Now().UTC()); err != nil {
					return nil, err
				}
				return o, nil
			}),
	})

	rec := do(e, http.MethodPost, "/api/v1/orders/"+o.ID().String()+"/accept", "", &actor)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp servers.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, servers.OrderStatusConfirmed, resp.Status)
	require.NotNil(t, resp.PartnerAcceptedAt)
	require.NotNil(t, resp.AssignedPartnerId)
	assert.Equal(t, p.ID().Bytes(), *resp.AssignedPartnerId)
}

func TestChangeOrderStatus_InvalidStatusName(t *testing.T) {
	e := newEcho(t, Handlers{})
	actor := kernel.NewUUID()

	rec := do(e, http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/status", `{"status":"washed"}`, &actor)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, KindValidation, decodeError(t, rec).Kind)
}

func TestChangeOrderStatus_DeliveredGoesThroughStages(t *testing.T) {
	called := false
	e := newEcho(t, Handlers{
		ChangeOrderStatus: useCaseFunc[commands.ChangeOrderStatusCommand, *order.Order](
			func(context.Context, commands.ChangeOrderStatusCommand) (*order.Order, error) {
				called = true
				return nil, nil
			}),
	})
	actor := kernel.NewUUID()

	rec := do(e, http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/status", `{"status":"delivered"}`, &actor)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, KindValidation, body.Kind)
	assert.Contains(t, body.Message, "proof photo")
	assert.False(t, called)
}

func TestRejectOrder_RequiresReason(t *testing.T) {
	e := newEcho(t, Handlers{})
	actor := kernel.NewUUID()

	rec := do(e, http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/reject", `{"reason":"  "}`, &actor)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, KindValidation, decodeError(t, rec).Kind)
}

func TestGetOrder_NotFound(t *testing.T) {
	id := kernel.NewUUID()
	e := newEcho(t, Handlers{
		GetOrder: useCaseFunc[queries.GetOrderQuery, queries.GetOrderQueryResponse](
			func(context.Context, queries.GetOrderQuery) (queries.GetOrderQueryResponse, error) {
				return queries.GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", id)
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/orders/"+id.String(), "", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, KindNotFound, body.Kind)
	assert.Contains(t, body.Message, id.String())
}

func TestGetOrder_InternalErrorHidesCause(t *testing.T) {
	e := newEcho(t, Handlers{
		GetOrder: useCaseFunc[queries.GetOrderQuery, queries.GetOrderQueryResponse](
			func(context.Context, queries.GetOrderQuery) (queries.GetOrderQueryResponse, error) {
				return queries.GetOrderQueryResponse{}, errors.New("pq: connection refused")
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/orders/"+kernel.NewUUID().String(), "", nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, KindInternal, body.Kind)
	assert.NotContains(t, body.Message, "pq")
}

func TestGetOrder_RendersHistory(t *testing.T) {
	id := kernel.NewUUID()
	actor := kernel.NewUUID()
	e := newEcho(t, Handlers{
		GetOrder: useCaseFunc[queries.GetOrderQuery, queries.GetOrderQueryResponse](
			func(_ context.Context, q queries.GetOrderQuery) (queries.GetOrderQueryResponse, error) {
				return queries.GetOrderQueryResponse{
					ID:                q.OrderID(),
					CustomerID:        kernel.NewUUID(),
					PickupAddressID:   kernel.NewUUID(),
					DeliveryAddressID: kernel.NewUUID(),
					Status:            "confirmed",
					Total:             decimal.RequireFromString("462.50"),
					History: []queries.StatusChangeView{
						{From: "pending", To: "confirmed", ActorID: actor, ChangedAt: time.Now().UTC()},
					},
				}, nil
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/orders/"+id.String(), "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp servers.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, id.Bytes(), resp.Id)
	require.NotNil(t, resp.History)
	require.Len(t, *resp.History, 1)
	assert.Equal(t, "confirmed", (*resp.History)[0].To)
	assert.Equal(t, actor.Bytes(), (*resp.History)[0].ActorId)
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("462.50")))
}

func TestRecordStage(t *testing.T) {
	o := testOrder(t)
	actor := kernel.NewUUID()

	newResult := func(cmd commands.RecordStageCommand, failed bool) commands.RecordStageResult {
		s, err := stage.NewProcessingStage(kernel.NewUUID(), cmd.OrderID(), cmd.Report(), time.Now().UTC())
		require.NoError(t, err)
		projected := order.PickedUp
		result := commands.RecordStageResult{Stage: s, Order: o, ProjectedStatus: &projected}
		if failed {
			result.StatusTransitionFailed = true
			result.FailureReason = "order cannot move from pending to picked_up"
		}
		return result
	}

	tests := []struct {
		name   string
		failed bool
		code   int
	}{
		{"projection applied", false, http.StatusCreated},
		{"projection rejected", true, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEcho(t, Handlers{
				RecordStage: useCaseFunc[commands.RecordStageCommand, commands.RecordStageResult](
					func(_ context.Context, cmd commands.RecordStageCommand) (commands.RecordStageResult, error) {
						assert.Equal(t, stage.PickupCompleted, cmd.Report().Stage)
						assert.True(t, cmd.Report().PerformedBy.IsEqual(actor))
						return newResult(cmd, tt.failed), nil
					}),
			})

			rec := do(e, http.MethodPost, "/api/v1/orders/"+o.ID().String()+"/stages",
				`{"stage":"pickup_completed","photos":["orders/1/pickup.jpg"]}`, &actor)

			require.Equal(t, tt.code, rec.Code, rec.Body.String())
			var resp servers.RecordStageResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.failed, resp.StatusTransitionFailed)
			assert.Equal(t, servers.StageNamePickupCompleted, resp.Stage.Stage)
			assert.Equal(t, servers.StageCategoryPickup, resp.Stage.Category)
			require.NotNil(t, resp.ProjectedStatus)
			assert.Equal(t, servers.OrderStatusPickedUp, *resp.ProjectedStatus)
		})
	}
}

func TestRecordStage_RefusesAssignmentStages(t *testing.T) {
	called := false
	e := newEcho(t, Handlers{
		RecordStage: useCaseFunc[commands.RecordStageCommand, commands.RecordStageResult](
			func(context.Context, commands.RecordStageCommand) (commands.RecordStageResult, error) {
				called = true
				return commands.RecordStageResult{}, nil
			}),
	})
	actor := kernel.NewUUID()

	for _, name := range []string{"assigned", "accepted", "rejected"} {
		t.Run(name, func(t *testing.T) {
			rec := do(e, http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/stages",
				`{"stage":"`+name+`"}`, &actor)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, KindValidation, decodeError(t, rec).Kind)
		})
	}
	assert.False(t, called)
}

func TestGetOrderStages_RendersPhotoURLs(t *testing.T) {
	d := 20 * time.Minute
	completed := time.Now().UTC()
	e := newEcho(t, Handlers{
		GetOrderStages: useCaseFunc[queries.GetOrderStagesQuery, []queries.StageView](
			func(context.Context, queries.GetOrderStagesQuery) ([]queries.StageView, error) {
				return []queries.StageView{{
					ID:          kernel.NewUUID(),
					Stage:       "delivered",
					Category:    "delivery",
					PerformedBy: kernel.NewUUID(),
					Photos:      []queries.PhotoView{{Key: "orders/1/proof.jpg", URL: "https://cdn/orders/1/proof.jpg"}},
					StartedAt:   completed.Add(-d),
					CompletedAt: &completed,
					Duration:    &d,
				}}, nil
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/orders/"+kernel.NewUUID().String()+"/stages", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []servers.Stage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	require.NotNil(t, resp[0].Photos[0].Url)
	assert.Equal(t, "https://cdn/orders/1/proof.jpg", *resp[0].Photos[0].Url)
	require.NotNil(t, resp[0].DurationSeconds)
	assert.InDelta(t, 1200, *resp[0].DurationSeconds, 0.001)
}

func TestUpdateItemStatus_AlreadyFinalized(t *testing.T) {
	e := newEcho(t, Handlers{
		UpdateItemStatus: useCaseFunc[commands.UpdateItemStatusCommand, *item.Processing](
			func(_ context.Context, cmd commands.UpdateItemStatusCommand) (*item.Processing, error) {
				assert.Equal(t, item.Washing, cmd.Update().Status)
				return nil, item.ErrAlreadyFinalized
			}),
	})
	actor := kernel.NewUUID()

	rec := do(e, http.MethodPost,
		"/api/v1/orders/"+kernel.NewUUID().String()+"/items/"+kernel.NewUUID().String()+"/status",
		`{"status":"washing"}`, &actor)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, KindItemAlreadyFinalized, decodeError(t, rec).Kind)
}

func TestUpdateItemStatus_RendersProcessing(t *testing.T) {
	orderID := kernel.NewUUID()
	orderItemID := kernel.NewUUID()
	actor := kernel.NewUUID()

	e := newEcho(t, Handlers{
		UpdateItemStatus: useCaseFunc[commands.UpdateItemStatusCommand, *item.Processing](
			func(_ context.Context, cmd commands.UpdateItemStatusCommand) (*item.Processing, error) {
				p, err := item.NewProcessing(kernel.NewUUID(), cmd.OrderID(), cmd.OrderItemID())
				if err != nil {
					return nil, err
				}
				if err = p.Apply(cmd.Update(), time.Now().UTC()); err != nil {
					return nil, err
				}
				return p, nil
			}),
	})

	rec := do(e, http.MethodPost,
		"/api/v1/orders/"+orderID.String()+"/items/"+orderItemID.String()+"/status",
		`{"status":"inspecting","initial_condition":"good","has_stains":true,"stain_notes":"collar"}`, &actor)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp servers.ItemProcessing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, servers.ItemStatusInspecting, resp.Status)
	require.NotNil(t, resp.InitialCondition)
	assert.Equal(t, servers.ItemConditionGood, *resp.InitialCondition)
	assert.True(t, resp.HasStains)
	assert.NotNil(t, resp.InspectionAt)
	require.NotNil(t, resp.ProcessedBy)
	assert.Equal(t, actor.Bytes(), *resp.ProcessedBy)
}

func TestVerifyPartner_TargetsActive(t *testing.T) {
	p := testPartner(t)
	actor := kernel.NewUUID()

	e := newEcho(t, Handlers{
		ChangePartnerStatus: useCaseFunc[commands.ChangePartnerStatusCommand, *partner.Partner](
			func(_ context.Context, cmd commands.ChangePartnerStatusCommand) (*partner.Partner, error) {
				assert.Equal(t, partner.Active, cmd.Target())
				if err := p.Verify(time.Now().UTC()); err != nil {
					return nil, err
				}
				return p, nil
			}),
	})

	rec := do(e, http.MethodPost, "/api/v1/partners/"+p.ID().String()+"/verify", "", &actor)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp servers.Partner
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, servers.PartnerStatusActive, resp.Status)
	assert.True(t, resp.IsVerified)
	assert.Equal(t, "BLR-EAST", resp.Zone)
	assert.Equal(t, []string{"560001"}, resp.ServiceAreas)
}

func TestRegisterPartner(t *testing.T) {
	actor := kernel.NewUUID()
	e := newEcho(t, Handlers{
		RegisterPartner: useCaseFunc[commands.RegisterPartnerCommand, *partner.Partner](
			func(_ context.Context, cmd commands.RegisterPartnerCommand) (*partner.Partner, error) {
				p, err := partner.NewPartner(cmd.PartnerID(), cmd.BusinessName(), cmd.Zone(), cmd.DailyCapacity(), time.Now().UTC())
				if err != nil {
					return nil, err
				}
				for _, area := range cmd.ServiceAreas() {
					if err = p.AddServiceArea(area); err != nil {
						return nil, err
					}
				}
				return p, nil
			}),
	})

	rec := do(e, http.MethodPost, "/api/v1/partners",
		`{"business_name":"Fresh Fold","zone":"blr-east","daily_capacity":25,"service_areas":["560001","560002"]}`, &actor)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp servers.Partner
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, servers.PartnerStatusPending, resp.Status)
	assert.False(t, resp.IsVerified)
	assert.Equal(t, 25, resp.DailyCapacity)
	assert.Len(t, resp.ServiceAreas, 2)

	rec = do(e, http.MethodPost, "/api/v1/partners",
		`{"business_name":"Fresh Fold","zone":"blr-east","daily_capacity":25,"service_areas":["abc"]}`, &actor)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAvailablePartners(t *testing.T) {
	first := kernel.NewUUID()
	e := newEcho(t, Handlers{
		GetAvailablePartners: useCaseFunc[queries.GetAvailablePartnersQuery, []queries.GetAvailablePartnersQueryResponse](
			func(_ context.Context, q queries.GetAvailablePartnersQuery) ([]queries.GetAvailablePartnersQueryResponse, error) {
				assert.Equal(t, "560001", q.Pincode().String())
				return []queries.GetAvailablePartnersQueryResponse{
					{ID: first, BusinessName: "Fresh Fold", DailyCapacity: 10, CurrentLoad: 2, AverageRating: 4.5},
					{ID: kernel.NewUUID(), BusinessName: "Spin City", DailyCapacity: 8, CurrentLoad: 5, AverageRating: 4.9},
				}, nil
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/partners/available?pincode=560001", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []servers.AvailablePartner
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, first.Bytes(), resp[0].Id)
	assert.Equal(t, 8, resp[0].SpareCapacity)
	assert.Equal(t, 3, resp[1].SpareCapacity)

	rec = do(e, http.MethodGet, "/api/v1/partners/available", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	rec := do(newEcho(t, Handlers{}), http.MethodGet, "/api/v1/couriers", "", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, KindNotFound, decodeError(t, rec).Kind)
}

func TestRequestParameters(t *testing.T) {
	tests := []struct {
		name   string
		target string
		actor  string
	}{
		{"malformed path id", "/api/v1/orders/not-a-uuid/accept", kernel.NewUUID().String()},
		{"malformed actor", "/api/v1/orders/" + kernel.NewUUID().String() + "/accept", "someone"},
		{"nil actor", "/api/v1/orders/" + kernel.NewUUID().String() + "/accept", "00000000-0000-0000-0000-000000000000"},
		{"nil path id", "/api/v1/orders/00000000-0000-0000-0000-000000000000/accept", kernel.NewUUID().String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			e := newEcho(t, Handlers{
				AcceptOrder: useCaseFunc[commands.AcceptOrderCommand, *order.Order](
					func(context.Context, commands.AcceptOrderCommand) (*order.Order, error) {
						called = true
						return nil, nil
					}),
			})

			req := httptest.NewRequest(http.MethodPost, tt.target, nil)
			req.Header.Set(headerActorID, tt.actor)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Equal(t, KindValidation, decodeError(t, rec).Kind)
			assert.False(t, called)
		})
	}
}

package http

import (
	"errors"
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context, params servers.CreateOrderParams) error {
	if _, err := kernelID("actor_id", params.XActorID); err != nil {
		return err
	}

	var req servers.CreateOrderJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return err
	}

	customerID, customerErr := kernelID("customer_id", req.CustomerId)
	pickup, pickupErr := kernelID("pickup_address_id", req.PickupAddressId)
	delivery, deliveryErr := kernelID("delivery_address_id", req.DeliveryAddressId)
	pincode, pincodeErr := kernel.NewPincode(req.Pincode)
	if err := errors.Join(customerErr, pickupErr, deliveryErr, pincodeErr); err != nil {
		return err
	}

	items := make([]*order.Item, 0, len(req.Items))
	for _, it := range req.Items {
		line, err := order.NewItem(kernel.NewUUID(), it.Garment, it.Service, it.Quantity)
		if err != nil {
			return err
		}
		items = append(items, line)
	}

	financials, err := order.NewFinancials(
		req.Financials.Subtotal,
		req.Financials.DeliveryFee,
		req.Financials.Discount,
		req.Financials.Tax,
	)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		customerID,
		order.Addresses{Pickup: pickup, Delivery: delivery},
		pincode,
		items,
		financials,
	)
	if err != nil {
		return err
	}

	o, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, orderFromDomain(o))
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(c echo.Context, id servers.ID) error {
	orderID, err := kernelID("order_id", id)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return err
	}

	resp, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderFromQuery(resp))
}

// GetOpenOrders handles GET /api/v1/orders/open.
func (s *Server) GetOpenOrders(c echo.Context) error {
	rows, err := s.handlers.GetOpenOrders.Handle(c.Request().Context(), queries.NewGetOpenOrdersQuery())
	if err != nil {
		return err
	}

	response := make([]servers.OpenOrder, len(rows))
	for i, row := range rows {
		response[i] = servers.OpenOrder{
			Id:                apiID(row.ID),
			CustomerId:        apiID(row.CustomerID),
			Pincode:           row.Pincode,
			Status:            servers.OrderStatus(row.Status),
			AssignedPartnerId: apiIDPtr(row.AssignedPartnerID),
			CreatedAt:         row.CreatedAt,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles POST /api/v1/orders/{id}/status.
func (s *Server) ChangeOrderStatus(c echo.Context, id servers.ID, params servers.ChangeOrderStatusParams) error {
	orderID, orderErr := kernelID("order_id", id)
	actor, actorErr := kernelID("actor_id", params.XActorID)
	if err := errors.Join(orderErr, actorErr); err != nil {
		return err
	}

	var req servers.ChangeOrderStatusJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return err
	}

	status, err := order.ParseStatus(string(req.Status))
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status, actor, valueOf(req.Notes))
	if err != nil {
		return err
	}

	o, err := s.handlers.ChangeOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderFromDomain(o))
}

// AssignPartner handles POST /api/v1/orders/{id}/assign.
func (s *Server) AssignPartner(c echo.Context, id servers.ID, params servers.AssignPartnerParams) error {
	orderID, orderErr := kernelID("order_id", id)
	actor, actorErr := kernelID("actor_id", params.XActorID)
	if err := errors.Join(orderErr, actorErr); err != nil {
		return err
	}

	var req servers.AssignPartnerJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return err
	}

	partnerID, err := kernelID("partner_id", req.PartnerId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignPartnerCommand(orderID, partnerID, actor)
	if err != nil {
		return err
	}

	o, err := s.handlers.AssignPartner.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderFromDomain(o))
}

// AcceptOrder handles POST /api/v1/orders/{id}/accept.
func (s *Server) AcceptOrder(c echo.Context, id servers.ID, params servers.AcceptOrderParams) error {
	orderID, orderErr := kernelID("order_id", id)
	actor, actorErr := kernelID("actor_id", params.XActorID)
	if err := errors.Join(orderErr, actorErr); err != nil {
		return err
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, actor)
	if err != nil {
		return err
	}

	o, err := s.handlers.AcceptOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderFromDomain(o))
}

// RejectOrder handles POST /api/v1/orders/{id}/reject.
func (s *Server) RejectOrder(c echo.Context, id servers.ID, params servers.RejectOrderParams) error {
	orderID, orderErr := kernelID("order_id", id)
	actor, actorErr := kernelID("actor_id", params.XActorID)
	if err := errors.Join(orderErr, actorErr); err != nil {
		return err
	}

	var req servers.RejectOrderJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, req.Reason, actor)
	if err != nil {
		return err
	}

	o, err := s.handlers.RejectOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderFromDomain(o))
}

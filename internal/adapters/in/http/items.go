package http

import (
	"errors"
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/item"
	"laundry/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// UpdateItemStatus handles POST /api/v1/orders/{id}/items/{item_id}/status.
func (s *Server) UpdateItemStatus(
	c echo.Context,
	id servers.ID,
	itemID servers.ItemID,
	params servers.UpdateItemStatusParams,
) error {
	orderID, orderErr := kernelID("order_id", id)
	orderItemID, itemErr := kernelID("order_item_id", itemID)
	actor, actorErr := kernelID("actor_id", params.XActorID)
	if err := errors.Join(orderErr, itemErr, actorErr); err != nil {
		return err
	}

	var req servers.UpdateItemStatusJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return err
	}

	status, err := item.ParseStatus(string(req.Status))
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateItemStatusCommand(orderID, orderItemID, itemUpdate(req, status, actor))
	if err != nil {
		return err
	}

	processing, err := s.handlers.UpdateItemStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, itemFromDomain(processing))
}

// GetItemProcessing handles GET /api/v1/orders/{id}/items/{item_id}/processing.
func (s *Server) GetItemProcessing(c echo.Context, id servers.ID, itemID servers.ItemID) error {
	orderID, orderErr := kernelID("order_id", id)
	orderItemID, itemErr := kernelID("order_item_id", itemID)
	if err := errors.Join(orderErr, itemErr); err != nil {
		return err
	}

	query, err := queries.NewGetItemProcessingQuery(orderID, orderItemID)
	if err != nil {
		return err
	}

	resp, err := s.handlers.GetItemProcessing.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, itemFromQuery(resp))
}

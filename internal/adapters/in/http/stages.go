package http

import (
	"errors"
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/stage"
	"laundry/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// RecordStage handles POST /api/v1/orders/{id}/stages. The stage is stored even
// when its projected status cannot be applied; that case answers 200 with
// status_transition_failed set instead of 201.
func (s *Server) RecordStage(c echo.Context, id servers.ID, params servers.RecordStageParams) error {
	orderID, orderErr := kernelID("order_id", id)
	actor, actorErr := kernelID("actor_id", params.XActorID)
	if err := errors.Join(orderErr, actorErr); err != nil {
		return err
	}

	var req servers.RecordStageJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return err
	}

	name, err := stage.Parse(string(req.Stage))
	if err != nil {
		return err
	}

	cmd, err := commands.NewRecordStageCommand(orderID, stage.Report{
		Stage:            name,
		PerformedBy:      actor,
		Notes:            valueOf(req.Notes),
		Photos:           valueOf(req.Photos),
		HasIssue:         valueOf(req.HasIssue),
		IssueDescription: valueOf(req.IssueDescription),
	})
	if err != nil {
		return err
	}

	result, err := s.handlers.RecordStage.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	code := http.StatusCreated
	if result.StatusTransitionFailed {
		code = http.StatusOK
	}
	return c.JSON(code, recordStageFromResult(result))
}

// GetOrderStages handles GET /api/v1/orders/{id}/stages.
func (s *Server) GetOrderStages(c echo.Context, id servers.ID) error {
	orderID, err := kernelID("order_id", id)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderStagesQuery(orderID)
	if err != nil {
		return err
	}

	views, err := s.handlers.GetOrderStages.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Stage, len(views))
	for i, v := range views {
		response[i] = stageFromQuery(v)
	}
	return c.JSON(http.StatusOK, response)
}

// CompleteStage handles POST /api/v1/stages/{id}/complete.
func (s *Server) CompleteStage(c echo.Context, id servers.ID, params servers.CompleteStageParams) error {
	stageID, stageErr := kernelID("stage_id", id)
	_, actorErr := kernelID("actor_id", params.XActorID)
	if err := errors.Join(stageErr, actorErr); err != nil {
		return err
	}

	cmd, err := commands.NewCompleteStageCommand(stageID)
	if err != nil {
		return err
	}

	completed, err := s.handlers.CompleteStage.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stageFromDomain(completed))
}

package http

import (
	"context"
	"log/slog"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/item"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/partner"
	"laundry/internal/core/domain/model/stage"
	"laundry/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

// BasePath is the prefix every API route is served under.
const BasePath = "/api/v1"

// UseCase is the shape shared by every command and query handler.
type UseCase[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	// Command handlers
	CreateOrder         UseCase[commands.CreateOrderCommand, *order.Order]
	ChangeOrderStatus   UseCase[commands.ChangeOrderStatusCommand, *order.Order]
	AssignPartner       UseCase[commands.AssignPartnerCommand, *order.Order]
	AcceptOrder         UseCase[commands.AcceptOrderCommand, *order.Order]
	RejectOrder         UseCase[commands.RejectOrderCommand, *order.Order]
	RecordStage         UseCase[commands.RecordStageCommand, commands.RecordStageResult]
	CompleteStage       UseCase[commands.CompleteStageCommand, *stage.ProcessingStage]
	UpdateItemStatus    UseCase[commands.UpdateItemStatusCommand, *item.Processing]
	RegisterPartner     UseCase[commands.RegisterPartnerCommand, *partner.Partner]
	ChangePartnerStatus UseCase[commands.ChangePartnerStatusCommand, *partner.Partner]
	AddServiceArea      UseCase[commands.AddPartnerServiceAreaCommand, *partner.Partner]

	// Query handlers
	GetOrder             UseCase[queries.GetOrderQuery, queries.GetOrderQueryResponse]
	GetOpenOrders        UseCase[queries.GetOpenOrdersQuery, []queries.GetOpenOrdersQueryResponse]
	GetOrderStages       UseCase[queries.GetOrderStagesQuery, []queries.StageView]
	GetItemProcessing    UseCase[queries.GetItemProcessingQuery, queries.GetItemProcessingQueryResponse]
	GetAvailablePartners UseCase[queries.GetAvailablePartnersQuery, []queries.GetAvailablePartnersQueryResponse]
}

// Server implements the generated ServerInterface. It translates requests into
// commands and queries and renders their results with the generated models.
// Errors are returned to echo and rendered by ErrorHandler.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
	}
}

// RegisterRoutes installs the error handler and mounts the generated routes
// under BasePath behind request validation against doc.
func (s *Server) RegisterRoutes(e *echo.Echo, doc *openapi3.T) error {
	validate, err := ValidateRequests(doc)
	if err != nil {
		return err
	}

	e.HTTPErrorHandler = ErrorHandler(s.logger)
	servers.RegisterHandlers(e.Group(BasePath, validate), s)
	return nil
}

package http

import (
	"errors"
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/partner"
	"laundry/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// RegisterPartner handles POST /api/v1/partners.
func (s *Server) RegisterPartner(c echo.Context, params servers.RegisterPartnerParams) error {
	if _, err := kernelID("actor_id", params.XActorID); err != nil {
		return err
	}

	var req servers.RegisterPartnerJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return err
	}

	raw := valueOf(req.ServiceAreas)
	areas := make([]kernel.Pincode, 0, len(raw))
	var parseErrs []error
	for _, r := range raw {
		pincode, err := kernel.NewPincode(r)
		if err != nil {
			parseErrs = append(parseErrs, err)
			continue
		}
		areas = append(areas, pincode)
	}
	if err := errors.Join(parseErrs...); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterPartnerCommand(req.BusinessName, req.Zone, req.DailyCapacity, areas)
	if err != nil {
		return err
	}

	p, err := s.handlers.RegisterPartner.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, partnerFromDomain(p))
}

// VerifyPartner handles POST /api/v1/partners/{id}/verify.
func (s *Server) VerifyPartner(c echo.Context, id servers.ID, params servers.VerifyPartnerParams) error {
	return s.changePartnerStatus(c, id, params.XActorID, partner.Active)
}

// ChangePartnerStatus handles POST /api/v1/partners/{id}/status.
func (s *Server) ChangePartnerStatus(c echo.Context, id servers.ID, params servers.ChangePartnerStatusParams) error {
	var req servers.ChangePartnerStatusJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return err
	}

	target, err := partner.ParseStatus(string(req.Status))
	if err != nil {
		return err
	}
	return s.changePartnerStatus(c, id, params.XActorID, target)
}

func (s *Server) changePartnerStatus(c echo.Context, id servers.ID, actor servers.ActorID, target partner.Status) error {
	partnerID, partnerErr := kernelID("partner_id", id)
	_, actorErr := kernelID("actor_id", actor)
	if err := errors.Join(partnerErr, actorErr); err != nil {
		return err
	}

	cmd, err := commands.NewChangePartnerStatusCommand(partnerID, target)
	if err != nil {
		return err
	}

	p, err := s.handlers.ChangePartnerStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, partnerFromDomain(p))
}

// AddPartnerServiceArea handles POST /api/v1/partners/{id}/service-areas.
func (s *Server) AddPartnerServiceArea(c echo.Context, id servers.ID, params servers.AddPartnerServiceAreaParams) error {
	partnerID, partnerErr := kernelID("partner_id", id)
	_, actorErr := kernelID("actor_id", params.XActorID)
	if err := errors.Join(partnerErr, actorErr); err != nil {
		return err
	}

	var req servers.AddPartnerServiceAreaJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return err
	}

	pincode, err := kernel.NewPincode(req.Pincode)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddPartnerServiceAreaCommand(partnerID, pincode)
	if err != nil {
		return err
	}

	p, err := s.handlers.AddServiceArea.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, partnerFromDomain(p))
}

// GetAvailablePartners handles GET /api/v1/partners/available?pincode=.
func (s *Server) GetAvailablePartners(c echo.Context, params servers.GetAvailablePartnersParams) error {
	pincode, err := kernel.NewPincode(params.Pincode)
	if err != nil {
		return err
	}

	query, err := queries.NewGetAvailablePartnersQuery(pincode)
	if err != nil {
		return err
	}

	rows, err := s.handlers.GetAvailablePartners.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.AvailablePartner, len(rows))
	for i, row := range rows {
		response[i] = servers.AvailablePartner{
			Id:            apiID(row.ID),
			BusinessName:  row.BusinessName,
			Zone:          row.Zone,
			DailyCapacity: row.DailyCapacity,
			CurrentLoad:   row.CurrentLoad,
			SpareCapacity: row.SpareCapacity(),
			AverageRating: row.AverageRating,
		}
	}
	return c.JSON(http.StatusOK, response)
}

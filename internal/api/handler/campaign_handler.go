package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/prospectio/outreach-system/internal/api/metrics"
	"github.com/prospectio/outreach-system/internal/core/ports"
)

// CampaignHandler handles the owner-scoped campaign CRUD routes.
type CampaignHandler struct {
	service ports.CampaignService
}

func NewCampaignHandler(service ports.CampaignService) *CampaignHandler {
	return &CampaignHandler{service: service}
}

// Create handles POST /api/campaigns.
//
// @Summary      Create a campaign
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCampaignRequest  true  "Campaign details"
// @Success      201   {object}  domain.Campaign
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/campaigns [post]
func (h *CampaignHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createCampaignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if missing := req.missingFields(); len(missing) > 0 {
		return echo.NewHTTPError(http.StatusBadRequest,
			"missing required fields: "+strings.Join(missing, ", "))
	}

	campaign, err := h.service.Create(c.Request().Context(), userID, ports.CreateCampaignInput{
		Name:          req.Name,
		Description:   req.Description,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		TargetRole:    req.TargetRole,
		Location:      req.Location,
		Seniority:     req.Seniority,
		OutreachType:  req.OutreachType,
		EmailTemplate: req.EmailTemplate,
	})
	if err != nil {
		return err
	}

	metrics.CampaignsCreatedTotal.WithLabelValues(req.OutreachType).Inc()
	return c.JSON(http.StatusCreated, campaign)
}

// List handles GET /api/campaigns.
//
// @Summary      List the caller's campaigns
// @Tags         campaigns
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Campaign
// @Failure      401  {object}  errorResponse
// @Router       /api/campaigns [get]
func (h *CampaignHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	campaigns, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, campaigns)
}

// Get handles GET /api/campaigns/:id.
//
// @Summary      Get a campaign
// @Tags         campaigns
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Campaign id"
// @Success      200  {object}  domain.Campaign
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/campaigns/{id} [get]
func (h *CampaignHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	campaign, err := h.service.Get(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, campaign)
}

// Update handles PUT /api/campaigns/:id. Requests naming any field outside
// the allow-list are rejected in their entirety; no partial application.
//
// @Summary      Update a campaign
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Campaign id"
// @Param        body  body      updateCampaignBody  true  "Fields to update"
// @Success      200   {object}  domain.Campaign
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/campaigns/{id} [put]
func (h *CampaignHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var body updateCampaignBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := body.validateKeys(); err != nil {
		return err
	}

	input, err := body.toInput()
	if err != nil {
		return err
	}

	campaign, err := h.service.Update(c.Request().Context(), c.Param("id"), userID, input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, campaign)
}

// Delete handles DELETE /api/campaigns/:id and returns the deleted
// campaign.
//
// @Summary      Delete a campaign
// @Tags         campaigns
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Campaign id"
// @Success      200  {object}  domain.Campaign
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/campaigns/{id} [delete]
func (h *CampaignHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	campaign, err := h.service.Delete(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, campaign)
}

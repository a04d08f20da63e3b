package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/prospectio/outreach-system/internal/api/metrics"
	"github.com/prospectio/outreach-system/internal/core/domain"
	"github.com/prospectio/outreach-system/internal/core/ports"
)

// SearchHandler handles the external search trigger routes. The LinkedIn
// pair separates searching from persisting; the GitHub route does both in
// one call.
type SearchHandler struct {
	service ports.SearchService
}

func NewSearchHandler(service ports.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// SearchLinkedin handles POST /api/linkedin/search. Results are returned to
// the caller without touching any campaign.
//
// @Summary      Search LinkedIn profiles
// @Tags         linkedin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      linkedinSearchRequest  true  "Search criteria"
// @Success      200   {object}  linkedinSearchResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/linkedin/search [post]
func (h *SearchHandler) SearchLinkedin(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	var req linkedinSearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	profiles, err := h.service.SearchLinkedin(c.Request().Context(), domain.SearchParams{
		Location:   req.Location,
		TargetRole: req.TargetRole,
		Seniority:  req.Seniority,
	})
	observeSearch(domain.SourceLinkedin, start, len(profiles), err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, linkedinSearchResponse{Profiles: profiles})
}

// UpdateCampaignResults handles POST /api/linkedin/update-campaign: it
// persists previously fetched profiles onto the campaign, replacing any
// prior LinkedIn result set.
//
// @Summary      Store LinkedIn results on a campaign
// @Tags         linkedin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateCampaignResultsRequest  true  "Profiles and the criteria that produced them"
// @Success      200   {object}  contactsResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/linkedin/update-campaign [post]
func (h *SearchHandler) UpdateCampaignResults(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateCampaignResultsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	contacts, err := h.service.ApplyResults(
		c.Request().Context(),
		req.CampaignID,
		userID,
		domain.SourceLinkedin,
		req.Profiles,
		domain.SearchParams{
			Location:   req.SearchParams.Location,
			TargetRole: req.SearchParams.TargetRole,
			Seniority:  req.SearchParams.Seniority,
		},
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, contactsResponse{Contacts: contacts})
}

// SearchGithub handles POST /api/github/search. Unlike the LinkedIn pair,
// the fetched results are written onto the campaign as part of the same
// request.
//
// @Summary      Search GitHub developers and store results
// @Tags         github
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      githubSearchRequest  true  "Search criteria and target campaign"
// @Success      200   {object}  contactsResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/github/search [post]
func (h *SearchHandler) SearchGithub(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req githubSearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	contacts, err := h.service.SearchGithub(c.Request().Context(), req.CampaignID, userID, domain.SearchParams{
		Location:   req.Location,
		TargetRole: req.TargetRole,
		Seniority:  req.Seniority,
	})
	observeSearch(domain.SourceGithub, start, len(contacts), err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, contactsResponse{Contacts: contacts})
}

func observeSearch(source domain.SearchSource, start time.Time, contacts int, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.SearchesTotal.WithLabelValues(string(source), result).Inc()
	metrics.SearchDuration.WithLabelValues(string(source)).Observe(time.Since(start).Seconds())
	if err == nil {
		metrics.ContactsFetchedTotal.WithLabelValues(string(source)).Add(float64(contacts))
	}
}

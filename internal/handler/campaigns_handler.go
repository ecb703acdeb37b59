package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/outflo/campaign-manager/internal/dto"
	"github.com/outflo/campaign-manager/internal/repository"
	"github.com/outflo/campaign-manager/internal/service"
	"github.com/outflo/campaign-manager/internal/validation"
)

const campaignNotFoundMessage = "Campaign not found"

// CampaignsHandler exposes campaign CRUD endpoints.
type CampaignsHandler struct {
	service *service.CampaignService
}

// NewCampaignsHandler creates a new handler instance.
func NewCampaignsHandler(service *service.CampaignService) *CampaignsHandler {
	return &CampaignsHandler{service: service}
}

// List handles GET /campaigns requests. Soft-deleted campaigns never appear.
func (h *CampaignsHandler) List(c echo.Context) error {
	filter := dto.ListFilter{
		Page:    parseIntDefault(c.QueryParam("page"), 0),
		PerPage: parseIntDefault(c.QueryParam("per_page"), 0),
	}

	campaigns, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "Failed to fetch campaigns")
	}

	return SuccessList(c, len(campaigns), campaigns)
}

// Get handles GET /campaigns/:id requests.
func (h *CampaignsHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return Error(c, http.StatusNotFound, campaignNotFoundMessage)
	}

	campaign, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return mapCampaignError(c, err)
	}

	return Success(c, http.StatusOK, campaign)
}

// Create handles POST /campaigns requests.
func (h *CampaignsHandler) Create(c echo.Context) error {
	var req dto.CreateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	campaign, err := h.service.Create(c.Request().Context(), &req)
	if err != nil {
		return mapCampaignError(c, err)
	}

	return Success(c, http.StatusCreated, campaign)
}

// Update handles PUT /campaigns/:id requests with a partial payload.
func (h *CampaignsHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return Error(c, http.StatusNotFound, campaignNotFoundMessage)
	}

	var req dto.UpdateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	campaign, err := h.service.Update(c.Request().Context(), id, &req)
	if err != nil {
		return mapCampaignError(c, err)
	}

	return Success(c, http.StatusOK, campaign)
}

// Delete handles DELETE /campaigns/:id requests with soft-delete semantics.
func (h *CampaignsHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return Error(c, http.StatusNotFound, campaignNotFoundMessage)
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return mapCampaignError(c, err)
	}

	return SuccessMessage(c, "Campaign deleted successfully")
}

// mapCampaignError translates service errors into the API error taxonomy:
// validation failures are client errors, not-found covers soft-deleted rows,
// anything else is a server failure.
func mapCampaignError(c echo.Context, err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return Error(c, http.StatusBadRequest, verr.Message)
	}
	if errors.Is(err, repository.ErrCampaignNotFound) {
		return Error(c, http.StatusNotFound, campaignNotFoundMessage)
	}
	return Error(c, http.StatusInternalServerError, "Server Error")
}

func parseIntDefault(input string, fallback int) int {
	if input == "" {
		return fallback
	}
	if value, err := strconv.Atoi(input); err == nil {
		return value
	}
	return fallback
}

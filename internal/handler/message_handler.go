package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/outflo/campaign-manager/internal/dto"
	"github.com/outflo/campaign-manager/internal/service"
	"github.com/outflo/campaign-manager/internal/validation"
)

// MessageHandler exposes the personalized-message endpoint.
type MessageHandler struct {
	service *service.MessageService
}

// NewMessageHandler creates a new handler instance.
func NewMessageHandler(service *service.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// Generate handles POST /personalized-message requests. Schema violations are
// the only client errors; every other outcome is a 200 with a message from
// whichever tier was available.
func (h *MessageHandler) Generate(c echo.Context) error {
	var req dto.MessageRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	result, err := h.service.Generate(c.Request().Context(), req)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return Error(c, http.StatusBadRequest, verr.Message)
		}
		return Error(c, http.StatusInternalServerError, "Server Error")
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: result.Message,
		Source:  result.Source,
		Note:    result.Note,
	})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIResponse describes the standard envelope returned by the API.
type APIResponse struct {
	Success bool   `json:"success"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Success sends a successful response carrying a data payload.
func Success(c echo.Context, status int, data any) error {
	if status == 0 {
		status = http.StatusOK
	}
	return c.JSON(status, APIResponse{
		Success: true,
		Data:    data,
	})
}

// SuccessList sends a successful response for collection endpoints, adding
// the item count alongside the payload.
func SuccessList(c echo.Context, count int, data any) error {
	return c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Count:   &count,
		Data:    data,
	})
}

// SuccessMessage sends a successful acknowledgment without a data payload.
func SuccessMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: message,
	})
}

// Error sends an error response using the shared envelope format.
func Error(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, APIResponse{
		Success: false,
		Error:   message,
	})
}

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccess(t *testing.T) {
	c, rec := newTestContext()

	if err := Success(c, 0, map[string]string{"foo": "bar"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var payload APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !payload.Success || payload.Error != "" {
		t.Fatalf("unexpected response: %+v", payload)
	}
	if payload.Count != nil {
		t.Fatalf("expected no count on single-item response")
	}
}

func TestSuccessList(t *testing.T) {
	c, rec := newTestContext()

	if err := SuccessList(c, 3, []string{"a", "b", "c"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var payload APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Count == nil || *payload.Count != 3 {
		t.Fatalf("expected count 3, got %v", payload.Count)
	}
}

func TestSuccessMessage(t *testing.T) {
	c, rec := newTestContext()

	if err := SuccessMessage(c, "Campaign deleted successfully"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var payload APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !payload.Success || payload.Message != "Campaign deleted successfully" {
		t.Fatalf("unexpected response: %+v", payload)
	}
}

func TestErrorEnvelope(t *testing.T) {
	c, rec := newTestContext()

	if err := Error(c, 0, "boom"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected default status 500, got %d", rec.Code)
	}

	var payload APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Success || payload.Error != "boom" {
		t.Fatalf("unexpected response: %+v", payload)
	}
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/outflo/campaign-manager/internal/dto"
	"github.com/outflo/campaign-manager/internal/entity"
	"github.com/outflo/campaign-manager/internal/repository"
	"github.com/outflo/campaign-manager/internal/service"
)

type memoryCampaignsRepo struct {
	campaigns map[uuid.UUID]*entity.Campaign
	order     []uuid.UUID
}

func newMemoryCampaignsRepo() *memoryCampaignsRepo {
	return &memoryCampaignsRepo{campaigns: map[uuid.UUID]*entity.Campaign{}}
}

func (m *memoryCampaignsRepo) List(ctx context.Context, filter dto.ListFilter) ([]entity.Campaign, error) {
	var out []entity.Campaign
	for i := len(m.order) - 1; i >= 0; i-- {
		c := m.campaigns[m.order[i]]
		if c.Status != entity.StatusDeleted {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *memoryCampaignsRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	c, ok := m.campaigns[id]
	if !ok || c.Status == entity.StatusDeleted {
		return nil, repository.ErrCampaignNotFound
	}
	clone := *c
	return &clone, nil
}

func (m *memoryCampaignsRepo) Create(ctx context.Context, campaign *entity.Campaign) error {
	now := time.Now()
	campaign.CreatedAt = now
	campaign.UpdatedAt = now
	clone := *campaign
	m.campaigns[campaign.ID] = &clone
	m.order = append(m.order, campaign.ID)
	return nil
}

func (m *memoryCampaignsRepo) Update(ctx context.Context, campaign *entity.Campaign) error {
	existing, ok := m.campaigns[campaign.ID]
	if !ok || existing.Status == entity.StatusDeleted {
		return repository.ErrCampaignNotFound
	}
	campaign.UpdatedAt = time.Now()
	clone := *campaign
	m.campaigns[campaign.ID] = &clone
	return nil
}

func (m *memoryCampaignsRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	existing, ok := m.campaigns[id]
	if !ok || existing.Status == entity.StatusDeleted {
		return repository.ErrCampaignNotFound
	}
	existing.Status = entity.StatusDeleted
	return nil
}

func newCampaignsHandler() (*CampaignsHandler, *memoryCampaignsRepo) {
	repo := newMemoryCampaignsRepo()
	return NewCampaignsHandler(service.NewCampaignService(repo)), repo
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for k, v := range params {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}

	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return payload
}

func TestCampaignsHandler_Create(t *testing.T) {
	h, _ := newCampaignsHandler()

	body := `{"name":"Launch","description":"Q1 outreach","leads":["https://linkedin.com/in/jdoe"],"accountIDs":["acc1"]}`
	rec := doJSON(t, h.Create, http.MethodPost, "/campaigns", body, nil)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	payload := decodeEnvelope(t, rec)
	if payload["success"] != true {
		t.Fatalf("expected success envelope, got %v", payload)
	}
	data := payload["data"].(map[string]any)
	if data["status"] != "ACTIVE" {
		t.Fatalf("expected ACTIVE status, got %v", data["status"])
	}
	if data["leadCount"].(float64) != 1 {
		t.Fatalf("expected leadCount 1, got %v", data["leadCount"])
	}
}

func TestCampaignsHandler_Create_InvalidLead(t *testing.T) {
	h, _ := newCampaignsHandler()

	body := `{"name":"Launch","description":"Q1 outreach","leads":["https://notlinkedin.com/in/jdoe"]}`
	rec := doJSON(t, h.Create, http.MethodPost, "/campaigns", body, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	payload := decodeEnvelope(t, rec)
	if payload["error"] != "Invalid LinkedIn profile URL format" {
		t.Fatalf("unexpected error message: %v", payload["error"])
	}
}

func TestCampaignsHandler_Update_NotFound(t *testing.T) {
	h, _ := newCampaignsHandler()

	rec := doJSON(t, h.Update, http.MethodPut, "/campaigns/"+uuid.NewString(), `{"status":"INACTIVE"}`,
		map[string]string{"id": uuid.NewString()})

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	payload := decodeEnvelope(t, rec)
	if payload["error"] != "Campaign not found" {
		t.Fatalf("unexpected error message: %v", payload["error"])
	}
}

func TestCampaignsHandler_Update_EmptyPayload(t *testing.T) {
	h, repo := newCampaignsHandler()
	seedCampaign(t, repo)

	rec := doJSON(t, h.Update, http.MethodPut, "/campaigns/"+repo.order[0].String(), `{}`,
		map[string]string{"id": repo.order[0].String()})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	payload := decodeEnvelope(t, rec)
	if payload["error"] != "At least one field must be provided for update" {
		t.Fatalf("unexpected error message: %v", payload["error"])
	}
}

func TestCampaignsHandler_DeleteThenGet(t *testing.T) {
	h, repo := newCampaignsHandler()
	seedCampaign(t, repo)
	id := repo.order[0].String()

	rec := doJSON(t, h.Delete, http.MethodDelete, "/campaigns/"+id, "", map[string]string{"id": id})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	payload := decodeEnvelope(t, rec)
	if payload["message"] != "Campaign deleted successfully" {
		t.Fatalf("unexpected message: %v", payload["message"])
	}

	rec = doJSON(t, h.Get, http.MethodGet, "/campaigns/"+id, "", map[string]string{"id": id})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}

	// a second delete reports not-found, never a second transition
	rec = doJSON(t, h.Delete, http.MethodDelete, "/campaigns/"+id, "", map[string]string{"id": id})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on repeat delete, got %d", rec.Code)
	}
}

func TestCampaignsHandler_List_ExcludesDeleted(t *testing.T) {
	h, repo := newCampaignsHandler()
	seedCampaign(t, repo)
	seedCampaign(t, repo)

	id := repo.order[0]
	if err := repo.SoftDelete(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := doJSON(t, h.List, http.MethodGet, "/campaigns", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	payload := decodeEnvelope(t, rec)
	if payload["count"].(float64) != 1 {
		t.Fatalf("expected count 1, got %v", payload["count"])
	}
	items := payload["data"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected 1 campaign, got %d", len(items))
	}
}

func TestCampaignsHandler_Get_InvalidID(t *testing.T) {
	h, _ := newCampaignsHandler()

	rec := doJSON(t, h.Get, http.MethodGet, "/campaigns/not-a-uuid", "", map[string]string{"id": "not-a-uuid"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unparseable id, got %d", rec.Code)
	}
}

func seedCampaign(t *testing.T, repo *memoryCampaignsRepo) {
	t.Helper()
	campaign := &entity.Campaign{
		ID:          uuid.New(),
		Name:        "Launch",
		Description: "Q1 outreach",
		Status:      entity.StatusActive,
		Leads:       []string{},
		AccountIDs:  []string{},
	}
	if err := repo.Create(context.Background(), campaign); err != nil {
		t.Fatalf("failed to seed campaign: %v", err)
	}
}

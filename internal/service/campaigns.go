package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/outflo/campaign-manager/internal/dto"
	"github.com/outflo/campaign-manager/internal/entity"
	"github.com/outflo/campaign-manager/internal/repository"
	"github.com/outflo/campaign-manager/internal/validation"
)

// CampaignService exposes CRUD operations over the campaign store.
type CampaignService struct {
	repo repository.CampaignsRepository
}

// NewCampaignService creates a new instance of CampaignService.
func NewCampaignService(repo repository.CampaignsRepository) *CampaignService {
	return &CampaignService{repo: repo}
}

// List returns all campaigns that are not soft-deleted, newest first.
// Pagination kicks in only when per_page is requested.
func (s *CampaignService) List(ctx context.Context, filter dto.ListFilter) ([]entity.Campaign, error) {
	if filter.PerPage > 0 {
		if filter.Page <= 0 {
			filter.Page = 1
		}
		if filter.PerPage > 100 {
			filter.PerPage = 100
		}
	}
	campaigns, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if campaigns == nil {
		campaigns = []entity.Campaign{}
	}
	return campaigns, nil
}

// Get fetches a single campaign by id.
func (s *CampaignService) Get(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the payload and persists a new campaign. Status is always
// forced to ACTIVE at creation.
func (s *CampaignService) Create(ctx context.Context, req *dto.CreateCampaignRequest) (*entity.Campaign, error) {
	if err := validation.ValidateCreateCampaign(req); err != nil {
		return nil, err
	}

	campaign := &entity.Campaign{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Status:      entity.StatusActive,
		Leads:       req.Leads,
		AccountIDs:  req.AccountIDs,
	}
	if err := s.repo.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// Update validates the partial payload, applies the present fields and
// persists the result. The payload is validated before the lookup, so a bad
// payload for an absent id still reports the validation error.
func (s *CampaignService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCampaignRequest) (*entity.Campaign, error) {
	if err := validation.ValidateUpdateCampaign(req); err != nil {
		return nil, err
	}

	campaign, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		campaign.Name = *req.Name
	}
	if req.Description != nil {
		campaign.Description = *req.Description
	}
	if req.Status != nil {
		campaign.Status = entity.Status(*req.Status)
	}
	if req.Leads != nil {
		campaign.Leads = *req.Leads
	}
	if req.AccountIDs != nil {
		campaign.AccountIDs = *req.AccountIDs
	}

	if err := s.repo.Update(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// Delete soft-deletes the campaign. Absent and already deleted campaigns
// report not-found.
func (s *CampaignService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}

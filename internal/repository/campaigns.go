package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/outflo/campaign-manager/internal/dto"
	"github.com/outflo/campaign-manager/internal/entity"
)

// ErrCampaignNotFound covers both absent ids and soft-deleted campaigns.
var ErrCampaignNotFound = errors.New("campaign not found")

// CampaignsRepository describes persistence operations for campaigns.
type CampaignsRepository interface {
	List(ctx context.Context, filter dto.ListFilter) ([]entity.Campaign, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error)
	Create(ctx context.Context, campaign *entity.Campaign) error
	Update(ctx context.Context, campaign *entity.Campaign) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// pgxPool is the subset of pgxpool.Pool the repository depends on.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ pgxPool = (*pgxpool.Pool)(nil)

// PGXCampaignsRepository implements CampaignsRepository using pgx.
type PGXCampaignsRepository struct {
	pool pgxPool
}

// NewPGXCampaignsRepository wires a pgx backed repository.
func NewPGXCampaignsRepository(pool *pgxpool.Pool) *PGXCampaignsRepository {
	return &PGXCampaignsRepository{pool: pool}
}

const campaignColumns = `id, name, description, status, leads, account_ids, created_at, updated_at`

// List returns campaigns that are not soft-deleted, newest first. Pagination
// is optional; the zero filter returns the full set.
func (r *PGXCampaignsRepository) List(ctx context.Context, filter dto.ListFilter) ([]entity.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE status <> 'DELETED' ORDER BY created_at DESC`

	var args []any
	if filter.PerPage > 0 {
		page := filter.Page
		if page <= 0 {
			page = 1
		}
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, filter.PerPage, (page-1)*filter.PerPage)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()

	return scanCampaigns(rows)
}

// GetByID returns the campaign unless it is absent or soft-deleted.
func (r *PGXCampaignsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 AND status <> 'DELETED'`, id)

	campaign, err := scanCampaign(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCampaignNotFound
		}
		return nil, fmt.Errorf("fetch campaign: %w", err)
	}
	return campaign, nil
}

// Create inserts a new campaign and fills in the store-assigned timestamps.
// Both timestamps come from the same statement clock, so they are equal at
// creation.
func (r *PGXCampaignsRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	if campaign == nil {
		return fmt.Errorf("campaign payload is nil")
	}

	row := r.pool.QueryRow(ctx, `
        INSERT INTO campaigns (id, name, description, status, leads, account_ids)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at, updated_at`,
		campaign.ID,
		campaign.Name,
		campaign.Description,
		string(campaign.Status),
		stringSliceOrEmpty(campaign.Leads),
		stringSliceOrEmpty(campaign.AccountIDs),
	)
	if err := row.Scan(&campaign.CreatedAt, &campaign.UpdatedAt); err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

// Update persists the campaign fields and bumps updated_at. Soft-deleted
// campaigns are never touched and report not-found instead.
func (r *PGXCampaignsRepository) Update(ctx context.Context, campaign *entity.Campaign) error {
	if campaign == nil {
		return fmt.Errorf("campaign payload is nil")
	}

	row := r.pool.QueryRow(ctx, `
        UPDATE campaigns
        SET name = $2, description = $3, status = $4, leads = $5, account_ids = $6, updated_at = NOW()
        WHERE id = $1 AND status <> 'DELETED'
        RETURNING updated_at`,
		campaign.ID,
		campaign.Name,
		campaign.Description,
		string(campaign.Status),
		stringSliceOrEmpty(campaign.Leads),
		stringSliceOrEmpty(campaign.AccountIDs),
	)
	if err := row.Scan(&campaign.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrCampaignNotFound
		}
		return fmt.Errorf("update campaign: %w", err)
	}
	return nil
}

// SoftDelete marks the campaign DELETED. Deleting an absent or already
// deleted campaign reports not-found, never a second transition.
func (r *PGXCampaignsRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET status = 'DELETED', updated_at = NOW() WHERE id = $1 AND status <> 'DELETED'`, id)
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCampaignNotFound
	}
	return nil
}

func scanCampaigns(rows pgx.Rows) ([]entity.Campaign, error) {
	var campaigns []entity.Campaign
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		campaigns = append(campaigns, *campaign)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate campaigns: %w", err)
	}
	return campaigns, nil
}

func scanCampaign(row pgx.Row) (*entity.Campaign, error) {
	var (
		c      entity.Campaign
		status string
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&status,
		&c.Leads,
		&c.AccountIDs,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Status = entity.Status(status)
	c.Leads = stringSliceOrEmpty(c.Leads)
	c.AccountIDs = stringSliceOrEmpty(c.AccountIDs)
	return &c, nil
}

func stringSliceOrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

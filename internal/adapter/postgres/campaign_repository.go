package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"budget-tracker/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Every statement carries the owner id in its WHERE clause.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `c.id, c.owner_id, c.name, c.budget, c.channel, c.start_date, c.end_date, c.status, c.created_at`

func campaignFields(c *domain.Campaign) []any {
	return []any{&c.ID, &c.OwnerID, &c.Name, &c.Budget, &c.Channel, &c.StartDate, &c.EndDate, &c.Status, &c.CreatedAt}
}

// CreateCampaign inserts a campaign and fills in its id and creation time.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	return r.pool.QueryRow(ctx, `
        INSERT INTO campaigns (owner_id, name, budget, channel, start_date, end_date, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at`,
		c.OwnerID, c.Name, c.Budget, c.Channel, c.StartDate, c.EndDate, c.Status,
	).Scan(&c.ID, &c.CreatedAt)
}

// GetCampaign returns a campaign by id for its owner.
func (r *CampaignRepository) GetCampaign(ctx context.Context, ownerID, id int64) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns c WHERE c.id = $1 AND c.owner_id = $2`, id, ownerID).
		Scan(campaignFields(&c)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCampaign overwrites the mutable fields of a campaign.
func (r *CampaignRepository) UpdateCampaign(ctx context.Context, c domain.Campaign) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
        UPDATE campaigns
        SET name = $1, budget = $2, channel = $3, start_date = $4, end_date = $5, status = $6
        WHERE id = $7 AND owner_id = $8`,
		c.Name, c.Budget, c.Channel, c.StartDate, c.EndDate, c.Status, c.ID, c.OwnerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteCampaign deletes a campaign; metric entries go with it through the
// ON DELETE CASCADE foreign key.
func (r *CampaignRepository) DeleteCampaign(ctx context.Context, ownerID, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListCampaignTotals returns the owner's campaigns joined with the sums of
// their metric entries. The LEFT JOIN keeps campaigns without entries.
func (r *CampaignRepository) ListCampaignTotals(ctx context.Context, ownerID int64, filter domain.CampaignFilter) ([]domain.CampaignTotals, error) {
	args := []any{ownerID}
	var where strings.Builder
	if filter.Channel != "" {
		args = append(args, filter.Channel)
		fmt.Fprintf(&where, " AND c.channel = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		fmt.Fprintf(&where, " AND c.status = $%d", len(args))
	}

	query := fmt.Sprintf(`
        SELECT
            %s,
            COALESCE(SUM(m.spend), 0)::double precision,
            COALESCE(SUM(m.impressions), 0)::bigint,
            COALESCE(SUM(m.clicks), 0)::bigint,
            COALESCE(SUM(m.conversions), 0)::bigint
        FROM campaigns c
        LEFT JOIN metric_entries m ON m.campaign_id = c.id
        WHERE c.owner_id = $1%s
        GROUP BY c.id
        ORDER BY c.created_at DESC, c.id DESC`, campaignColumns, where.String())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignTotals, error) {
		var ct domain.CampaignTotals
		dst := append(campaignFields(&ct.Campaign),
			&ct.Totals.Spend,
			&ct.Totals.Impressions,
			&ct.Totals.Clicks,
			&ct.Totals.Conversions,
		)
		err := row.Scan(dst...)
		return ct, err
	})
}

// CreateMetricEntry inserts an entry only when the campaign belongs to
// ownerID; the check and the insert are a single statement.
func (r *CampaignRepository) CreateMetricEntry(ctx context.Context, ownerID int64, e *domain.MetricEntry) (bool, error) {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO metric_entries (campaign_id, date, impressions, clicks, conversions, spend)
        SELECT c.id, $3::date, $4::bigint, $5::bigint, $6::bigint, $7::double precision
        FROM campaigns c
        WHERE c.id = $1 AND c.owner_id = $2
        RETURNING id`,
		e.CampaignID, ownerID, e.Date, e.Impressions, e.Clicks, e.Conversions, e.Spend,
	).Scan(&e.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListMetricEntries returns the entries of an owned campaign, newest first.
func (r *CampaignRepository) ListMetricEntries(ctx context.Context, ownerID, campaignID int64) ([]domain.MetricEntry, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT m.id, m.campaign_id, m.date, m.impressions, m.clicks, m.conversions, m.spend
        FROM metric_entries m
        JOIN campaigns c ON c.id = m.campaign_id
        WHERE m.campaign_id = $1 AND c.owner_id = $2
        ORDER BY m.date DESC, m.id DESC`, campaignID, ownerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MetricEntry, error) {
		var e domain.MetricEntry
		err := row.Scan(&e.ID, &e.CampaignID, &e.Date, &e.Impressions, &e.Clicks, &e.Conversions, &e.Spend)
		return e, err
	})
}

package port

import (
	"context"

	"budget-tracker/internal/core/domain"
)

// AccountRepository defines persistence for accounts. It is an outbound port
// in hexagonal architecture.
type AccountRepository interface {
	// CreateAccount inserts the account and fills in ID and CreatedAt. A
	// taken handle or email yields domain.ErrDuplicateAccount.
	CreateAccount(ctx context.Context, acc *domain.Account) error
	// GetAccountByHandle returns nil when no account has the handle.
	GetAccountByHandle(ctx context.Context, handle string) (*domain.Account, error)
}

// CampaignRepository defines persistence for campaigns and their metric
// entries. Every method is scoped to ownerID inside the query itself, so a
// campaign owned by someone else looks exactly like a missing one.
type CampaignRepository interface {
	// CreateCampaign inserts c and fills in ID and CreatedAt.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns nil when the campaign does not exist for ownerID.
	GetCampaign(ctx context.Context, ownerID, id int64) (*domain.Campaign, error)
	// UpdateCampaign overwrites the mutable fields of c. It reports false when
	// no campaign with c.ID is owned by c.OwnerID.
	UpdateCampaign(ctx context.Context, c domain.Campaign) (bool, error)
	// DeleteCampaign removes the campaign and, by cascade, its metric
	// entries. It reports false when nothing was deleted.
	DeleteCampaign(ctx context.Context, ownerID, id int64) (bool, error)
	// ListCampaignTotals returns every campaign of ownerID matching filter
	// with its summed metric entries, newest campaign first.
	ListCampaignTotals(ctx context.Context, ownerID int64, filter domain.CampaignFilter) ([]domain.CampaignTotals, error)

	// CreateMetricEntry inserts e only if its campaign is owned by ownerID.
	// It reports false when the campaign is missing or not owned.
	CreateMetricEntry(ctx context.Context, ownerID int64, e *domain.MetricEntry) (bool, error)
	// ListMetricEntries returns the entries of a campaign owned by ownerID,
	// newest date first.
	ListMetricEntries(ctx context.Context, ownerID, campaignID int64) ([]domain.MetricEntry, error)
}

package port

import (
	"context"

	"budget-tracker/internal/core/domain"
)

// AccountUseCase defines registration and credential checks. Session
// handling stays in the HTTP adapter; this port never sees cookies.
type AccountUseCase interface {
	// Register validates the form, hashes the password and stores the
	// account. Validation failures are *validate.Error values and a taken
	// handle or email is domain.ErrDuplicateAccount.
	Register(ctx context.Context, form domain.RegistrationForm) (*domain.Account, error)

	// Authenticate returns the account matching handle and password, or
	// domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, handle, password string) (*domain.Account, error)
}

// CampaignUseCase defines the campaign operations available to a logged-in
// account. ownerID is always the acting account; it is never taken from
// client input.
type CampaignUseCase interface {
	// Dashboard lists the owner's campaigns matching filter with totals,
	// ROI and budget usage attached.
	Dashboard(ctx context.Context, ownerID int64, filter domain.CampaignFilter) ([]CampaignSummary, error)

	// GetCampaign returns domain.ErrCampaignNotFound for missing or foreign ids.
	GetCampaign(ctx context.Context, ownerID, id int64) (*domain.Campaign, error)

	// CreateCampaign validates form and stores a new active campaign.
	CreateCampaign(ctx context.Context, ownerID int64, form domain.CampaignForm) (*domain.Campaign, error)

	// UpdateCampaign validates form (status required) and overwrites the
	// campaign.
	UpdateCampaign(ctx context.Context, ownerID, id int64, form domain.CampaignForm) (*domain.Campaign, error)

	// DeleteCampaign removes the campaign together with its metric entries.
	DeleteCampaign(ctx context.Context, ownerID, id int64) error

	// CampaignMetrics returns a campaign with all of its metric entries and
	// their summary.
	CampaignMetrics(ctx context.Context, ownerID, id int64) (*CampaignDetail, error)

	// AddMetrics validates form and records a new metric entry.
	AddMetrics(ctx context.Context, ownerID, campaignID int64, form domain.MetricForm) (*domain.MetricEntry, error)
}

// CampaignSummary is a dashboard row: the campaign, its metric totals and the
// figures derived from them. It is a DTO and carries no behaviour.
type CampaignSummary struct {
	Campaign          domain.Campaign
	Totals            domain.Totals
	ROI               float64
	BudgetUsedPercent float64
}

// CampaignDetail is a campaign with its individual metric entries.
type CampaignDetail struct {
	CampaignSummary
	Entries []domain.MetricEntry
}

package usecase

import (
	"context"
	"fmt"

	"budget-tracker/internal/core/calc"
	"budget-tracker/internal/core/domain"
	"budget-tracker/internal/core/port"
	"budget-tracker/internal/core/validate"
)

// CampaignUseCase provides business logic for campaigns and their metrics.
// It orchestrates validation, the repository and the calculator to implement
// the port.CampaignUseCase interface.
type CampaignUseCase struct {
	repo port.CampaignRepository

	// conversionValue is the revenue attributed to one conversion when
	// computing ROI. It is fixed to calc.DefaultConversionValue.
	conversionValue float64
}

// NewCampaignUseCase creates a new usecase with the provided repository.
func NewCampaignUseCase(repo port.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, conversionValue: calc.DefaultConversionValue}
}

// Dashboard returns every campaign of ownerID matching filter, newest first,
// with ROI and budget usage derived from the summed metric entries.
func (u *CampaignUseCase) Dashboard(ctx context.Context, ownerID int64, filter domain.CampaignFilter) ([]port.CampaignSummary, error) {
	rows, err := u.repo.ListCampaignTotals(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("list campaign totals: %w", err)
	}
	summaries := make([]port.CampaignSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, u.summarize(row.Campaign, row.Totals))
	}
	return summaries, nil
}

// GetCampaign returns the campaign or domain.ErrCampaignNotFound.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, ownerID, id int64) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}
	return c, nil
}

// CreateCampaign validates the submission and stores a new active campaign.
// Nothing is written when validation fails.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, ownerID int64, form domain.CampaignForm) (*domain.Campaign, error) {
	in, err := validate.Campaign(form, false)
	if err != nil {
		return nil, err
	}
	c := &domain.Campaign{
		OwnerID:   ownerID,
		Name:      in.Name,
		Budget:    in.Budget,
		Channel:   in.Channel,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Status:    in.Status,
	}
	if err = u.repo.CreateCampaign(ctx, c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return c, nil
}

// UpdateCampaign overwrites name, budget, channel, dates and status. The
// campaign is looked up first so that unknown ids are reported as not found
// even when the submission is also invalid.
func (u *CampaignUseCase) UpdateCampaign(ctx context.Context, ownerID, id int64, form domain.CampaignForm) (*domain.Campaign, error) {
	current, err := u.GetCampaign(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	in, err := validate.Campaign(form, true)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.Name = in.Name
	updated.Budget = in.Budget
	updated.Channel = in.Channel
	updated.StartDate = in.StartDate
	updated.EndDate = in.EndDate
	updated.Status = in.Status

	ok, err := u.repo.UpdateCampaign(ctx, updated)
	if err != nil {
		return nil, fmt.Errorf("update campaign: %w", err)
	}
	if !ok {
		// deleted between the lookup and the update
		return nil, domain.ErrCampaignNotFound
	}
	return &updated, nil
}

// DeleteCampaign removes the campaign and its metric entries.
func (u *CampaignUseCase) DeleteCampaign(ctx context.Context, ownerID, id int64) error {
	ok, err := u.repo.DeleteCampaign(ctx, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	if !ok {
		return domain.ErrCampaignNotFound
	}
	return nil
}

// CampaignMetrics returns the campaign with its entries and derived figures.
func (u *CampaignUseCase) CampaignMetrics(ctx context.Context, ownerID, id int64) (*port.CampaignDetail, error) {
	c, err := u.GetCampaign(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	entries, err := u.repo.ListMetricEntries(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("list metric entries: %w", err)
	}
	var totals domain.Totals
	for _, e := range entries {
		totals.Add(domain.Totals{
			Spend:       e.Spend,
			Impressions: e.Impressions,
			Clicks:      e.Clicks,
			Conversions: e.Conversions,
		})
	}
	return &port.CampaignDetail{
		CampaignSummary: u.summarize(*c, totals),
		Entries:         entries,
	}, nil
}

// AddMetrics records a metric entry for a campaign owned by ownerID. The
// ownership check happens before validation and again inside the insert.
func (u *CampaignUseCase) AddMetrics(ctx context.Context, ownerID, campaignID int64, form domain.MetricForm) (*domain.MetricEntry, error) {
	if _, err := u.GetCampaign(ctx, ownerID, campaignID); err != nil {
		return nil, err
	}
	in, err := validate.Metric(form)
	if err != nil {
		return nil, err
	}
	e := &domain.MetricEntry{
		CampaignID:  campaignID,
		Date:        in.Date,
		Impressions: in.Impressions,
		Clicks:      in.Clicks,
		Conversions: in.Conversions,
		Spend:       in.Spend,
	}
	ok, err := u.repo.CreateMetricEntry(ctx, ownerID, e)
	if err != nil {
		return nil, fmt.Errorf("create metric entry: %w", err)
	}
	if !ok {
		return nil, domain.ErrCampaignNotFound
	}
	return e, nil
}

func (u *CampaignUseCase) summarize(c domain.Campaign, t domain.Totals) port.CampaignSummary {
	return port.CampaignSummary{
		Campaign:          c,
		Totals:            t,
		ROI:               calc.ROI(t.Conversions, t.Spend, u.conversionValue),
		BudgetUsedPercent: calc.BudgetUsage(c.Budget, t.Spend),
	}
}

package domain

import "time"

// DefaultCampaignStatus is assigned to every newly created campaign.
const DefaultCampaignStatus = "active"

// Campaign represents a marketing campaign owned by a single account.
// Budget is a monetary amount in the account's currency.
type Campaign struct {
	ID        int64
	OwnerID   int64
	Name      string
	Budget    float64
	Channel   string // free-form, e.g. "Instagram"
	StartDate time.Time
	EndDate   time.Time
	Status    string // active by default, otherwise user defined
	CreatedAt time.Time
}

// CampaignFilter narrows the dashboard listing. Empty fields mean no filter.
type CampaignFilter struct {
	Channel string
	Status  string
}

// Totals holds the sums of all metric entries recorded for a campaign.
type Totals struct {
	Spend       float64
	Impressions int64
	Clicks      int64
	Conversions int64
}

// Add accumulates o into t.
func (t *Totals) Add(o Totals) {
	t.Spend += o.Spend
	t.Impressions += o.Impressions
	t.Clicks += o.Clicks
	t.Conversions += o.Conversions
}

// CampaignTotals is a campaign joined with the aggregate of its metric entries.
// Campaigns without entries carry zero totals.
type CampaignTotals struct {
	Campaign Campaign
	Totals   Totals
}

// CampaignInput is a validated campaign create or update submission.
type CampaignInput struct {
	Name      string
	Budget    float64
	Channel   string
	StartDate time.Time
	EndDate   time.Time
	Status    string
}

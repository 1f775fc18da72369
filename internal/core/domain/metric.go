package domain

import "time"

// MetricEntry is one performance record for a campaign. Several entries may
// share a date; they are summed, never replaced.
type MetricEntry struct {
	ID          int64
	CampaignID  int64
	Date        time.Time
	Impressions int64
	Clicks      int64
	Conversions int64
	Spend       float64
}

// MetricInput is a validated metric entry submission.
type MetricInput struct {
	Date        time.Time
	Impressions int64
	Clicks      int64
	Conversions int64
	Spend       float64
}

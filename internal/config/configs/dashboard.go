package configs

// Dashboard holds presentation settings for the campaign dashboard.
type Dashboard struct {
	// AlertThreshold is the budget usage percentage at which a campaign is
	// flagged. The comparison is inclusive.
	AlertThreshold float64 `env:"ALERT_THRESHOLD" envDefault:"80"`
}

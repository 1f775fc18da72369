package domain

// The form types carry raw submitted values before validation. Absent and
// empty fields are both represented by the empty string.

// CampaignForm is a campaign create or edit submission.
type CampaignForm struct {
	Name      string `json:"name"`
	Budget    string `json:"budget"`
	Channel   string `json:"channel"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status,omitempty"`
}

// MetricForm is a metric entry submission.
type MetricForm struct {
	Date        string `json:"date"`
	Impressions string `json:"impressions"`
	Clicks      string `json:"clicks"`
	Conversions string `json:"conversions"`
	Spend       string `json:"spend"`
}

// RegistrationForm is an account registration submission.
type RegistrationForm struct {
	Handle          string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"-"`
	ConfirmPassword string `json:"-"`
}

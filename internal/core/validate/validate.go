// Package validate turns raw form submissions into domain inputs. Every
// rejection is an *Error carrying a message that can be shown to the user as
// is; nothing in this package panics on malformed input.
package validate

import (
	"math"
	"strconv"
	"strings"
	"time"

	"budget-tracker/internal/core/domain"
)

// DateLayout is the only accepted calendar date format.
const DateLayout = "2006-01-02"

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// User facing rejection reasons.
const (
	ReasonRequired         = "All fields are required."
	ReasonBudget           = "Budget must be a positive number."
	ReasonDateRange        = "End date must be on or after start date."
	ReasonMetricValues     = "Invalid metric values."
	ReasonPasswordMismatch = "Passwords do not match."
	ReasonPasswordLength   = "Password must be at least 6 characters."
	ReasonLoginRequired    = "Please enter both username and password."
)

// Error is a rejected submission.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

func reject(reason string) error {
	return &Error{Reason: reason}
}

func present(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// Budget parses raw and reports whether it is a finite number strictly
// greater than zero.
func Budget(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

// Date parses a YYYY-MM-DD calendar date.
func Date(raw string) (time.Time, bool) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// DateRange parses both dates and reports whether end is on or after start.
// A single day range is valid.
func DateRange(start, end string) (time.Time, time.Time, bool) {
	s, ok := Date(start)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	e, ok := Date(end)
	if !ok || e.Before(s) {
		return time.Time{}, time.Time{}, false
	}
	return s, e, true
}

// Campaign validates a create (requireStatus false) or update (requireStatus
// true) submission. On create the status is always domain.DefaultCampaignStatus.
func Campaign(form domain.CampaignForm, requireStatus bool) (domain.CampaignInput, error) {
	if !present(form.Name, form.Budget, form.Channel, form.StartDate, form.EndDate) {
		return domain.CampaignInput{}, reject(ReasonRequired)
	}
	if requireStatus && !present(form.Status) {
		return domain.CampaignInput{}, reject(ReasonRequired)
	}
	budget, ok := Budget(form.Budget)
	if !ok {
		return domain.CampaignInput{}, reject(ReasonBudget)
	}
	start, end, ok := DateRange(form.StartDate, form.EndDate)
	if !ok {
		return domain.CampaignInput{}, reject(ReasonDateRange)
	}

	in := domain.CampaignInput{
		Name:      strings.TrimSpace(form.Name),
		Budget:    budget,
		Channel:   strings.TrimSpace(form.Channel),
		StartDate: start,
		EndDate:   end,
		Status:    domain.DefaultCampaignStatus,
	}
	if requireStatus {
		in.Status = strings.TrimSpace(form.Status)
	}
	return in, nil
}

// count parses a non-negative integer; empty means zero.
func count(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// amount parses a non-negative finite number; empty means zero.
func amount(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}

// Metric validates a metric entry submission. Any bad field rejects the whole
// submission.
func Metric(form domain.MetricForm) (domain.MetricInput, error) {
	if !present(form.Date) {
		return domain.MetricInput{}, reject(ReasonRequired)
	}
	date, ok := Date(form.Date)
	if !ok {
		return domain.MetricInput{}, reject(ReasonMetricValues)
	}

	var in domain.MetricInput
	in.Date = date
	for _, f := range []struct {
		raw string
		dst *int64
	}{
		{form.Impressions, &in.Impressions},
		{form.Clicks, &in.Clicks},
		{form.Conversions, &in.Conversions},
	} {
		if *f.dst, ok = count(f.raw); !ok {
			return domain.MetricInput{}, reject(ReasonMetricValues)
		}
	}
	if in.Spend, ok = amount(form.Spend); !ok {
		return domain.MetricInput{}, reject(ReasonMetricValues)
	}
	return in, nil
}

// Registration checks an account registration submission.
func Registration(form domain.RegistrationForm) error {
	if !present(form.Handle, form.Email, form.Password) {
		return reject(ReasonRequired)
	}
	if form.Password != form.ConfirmPassword {
		return reject(ReasonPasswordMismatch)
	}
	if len(form.Password) < MinPasswordLength {
		return reject(ReasonPasswordLength)
	}
	return nil
}

// Login checks that both credentials were supplied.
func Login(handle, password string) error {
	if !present(handle, password) {
		return reject(ReasonLoginRequired)
	}
	return nil
}

package httpadapter

import (
	"net/http"
	"time"

	"budget-tracker/internal/adapter/session"
	"budget-tracker/internal/core/calc"
	"budget-tracker/internal/core/domain"
	"budget-tracker/internal/core/port"
	"budget-tracker/internal/core/validate"
)

type campaignView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Budget    float64   `json:"budget"`
	Channel   string    `json:"channel"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func newCampaignView(c domain.Campaign) campaignView {
	return campaignView{
		ID:        c.ID,
		Name:      c.Name,
		Budget:    c.Budget,
		Channel:   c.Channel,
		StartDate: c.StartDate.Format(validate.DateLayout),
		EndDate:   c.EndDate.Format(validate.DateLayout),
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
	}
}

type totalsView struct {
	Spend          float64 `json:"spend"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Conversions    int64   `json:"conversions"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversion_rate"`
}

func newTotalsView(t domain.Totals) totalsView {
	return totalsView{
		Spend:          calc.Round2(t.Spend),
		Impressions:    t.Impressions,
		Clicks:         t.Clicks,
		Conversions:    t.Conversions,
		CTR:            calc.CTR(t.Clicks, t.Impressions),
		ConversionRate: calc.ConversionRate(t.Conversions, t.Clicks),
	}
}

// summaryView is a dashboard row.
type summaryView struct {
	Campaign          campaignView `json:"campaign"`
	Totals            totalsView   `json:"totals"`
	ROI               float64      `json:"roi"`
	BudgetUsedPercent float64      `json:"budget_used_percent"`
	BudgetAlert       bool         `json:"budget_alert"`
}

func (h *Handler) newSummaryView(s port.CampaignSummary) summaryView {
	return summaryView{
		Campaign:          newCampaignView(s.Campaign),
		Totals:            newTotalsView(s.Totals),
		ROI:               s.ROI,
		BudgetUsedPercent: s.BudgetUsedPercent,
		BudgetAlert:       calc.BudgetAlert(s.Campaign.Budget, s.Totals.Spend, h.alertThreshold),
	}
}

type portfolioView struct {
	Budget            float64    `json:"budget"`
	Totals            totalsView `json:"totals"`
	ROI               float64    `json:"roi"`
	BudgetUsedPercent float64    `json:"budget_used_percent"`
	Alerts            int        `json:"alerts"`
}

type filterView struct {
	Channel string `json:"channel"`
	Status  string `json:"status"`
}

type dashboardView struct {
	Account        string        `json:"account"`
	Filter         filterView    `json:"filter"`
	AlertThreshold float64       `json:"alert_threshold"`
	Campaigns      []summaryView `json:"campaigns"`
	Portfolio      portfolioView `json:"portfolio"`
}

// handleDashboard lists the account's campaigns, optionally narrowed by the
// channel and status query parameters, with a portfolio roll-up.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	filter := domain.CampaignFilter{
		Channel: r.URL.Query().Get("channel"),
		Status:  r.URL.Query().Get("status"),
	}
	summaries, err := h.campaigns.Dashboard(r.Context(), accountID(r), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	view := dashboardView{
		Account:        session.FromContext(r.Context()).Handle,
		Filter:         filterView(filter),
		AlertThreshold: h.alertThreshold,
		Campaigns:      make([]summaryView, 0, len(summaries)),
	}
	var (
		budget float64
		totals domain.Totals
	)
	for _, s := range summaries {
		row := h.newSummaryView(s)
		if row.BudgetAlert {
			view.Portfolio.Alerts++
		}
		view.Campaigns = append(view.Campaigns, row)
		budget += s.Campaign.Budget
		totals.Add(s.Totals)
	}
	view.Portfolio.Budget = calc.Round2(budget)
	view.Portfolio.Totals = newTotalsView(totals)
	view.Portfolio.ROI = calc.ROI(totals.Conversions, totals.Spend, calc.DefaultConversionValue)
	view.Portfolio.BudgetUsedPercent = calc.BudgetUsage(budget, totals.Spend)

	h.render(w, r, http.StatusOK, view)
}

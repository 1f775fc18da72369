package httpadapter

import (
	"net/http"

	"budget-tracker/internal/core/domain"
	"budget-tracker/internal/core/validate"
)

var (
	campaignFields = []string{"name", "budget", "channel", "start_date", "end_date"}
	editFields     = []string{"name", "budget", "channel", "start_date", "end_date", "status"}
)

func campaignForm(r *http.Request) domain.CampaignForm {
	return domain.CampaignForm{
		Name:      r.PostFormValue("name"),
		Budget:    r.PostFormValue("budget"),
		Channel:   r.PostFormValue("channel"),
		StartDate: r.PostFormValue("start_date"),
		EndDate:   r.PostFormValue("end_date"),
		Status:    r.PostFormValue("status"),
	}
}

func (h *Handler) handleCreateCampaignForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, formView{Title: "Create New Campaign", Fields: campaignFields})
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	form := campaignForm(r)
	if _, err := h.campaigns.CreateCampaign(r.Context(), accountID(r), form); err != nil {
		h.handleError(w, r, err, form)
		return
	}
	h.metrics.CampaignsCreated.Inc()
	h.redirect(w, r, "/dashboard", categorySuccess, "Campaign created successfully!")
}

type editView struct {
	formView
	Campaign campaignView `json:"campaign"`
}

func (h *Handler) handleEditCampaignForm(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.handleError(w, r, err, nil)
		return
	}
	c, err := h.campaigns.GetCampaign(r.Context(), accountID(r), id)
	if err != nil {
		h.handleError(w, r, err, nil)
		return
	}
	h.render(w, r, http.StatusOK, editView{
		formView: formView{Title: "Edit Campaign", Fields: editFields},
		Campaign: newCampaignView(*c),
	})
}

func (h *Handler) handleEditCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.handleError(w, r, err, nil)
		return
	}
	form := campaignForm(r)
	if _, err = h.campaigns.UpdateCampaign(r.Context(), accountID(r), id, form); err != nil {
		h.handleError(w, r, err, form)
		return
	}
	h.metrics.CampaignsUpdated.Inc()
	h.redirect(w, r, "/dashboard", categorySuccess, "Campaign updated successfully!")
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.handleError(w, r, err, nil)
		return
	}
	if err = h.campaigns.DeleteCampaign(r.Context(), accountID(r), id); err != nil {
		h.handleError(w, r, err, nil)
		return
	}
	h.metrics.CampaignsDeleted.Inc()
	h.redirect(w, r, "/dashboard", categorySuccess, "Campaign deleted successfully!")
}

type metricEntryView struct {
	ID             int64   `json:"id"`
	Date           string  `json:"date"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Conversions    int64   `json:"conversions"`
	Spend          float64 `json:"spend"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversion_rate"`
}

func newMetricEntryView(e domain.MetricEntry) metricEntryView {
	t := newTotalsView(domain.Totals{
		Spend:       e.Spend,
		Impressions: e.Impressions,
		Clicks:      e.Clicks,
		Conversions: e.Conversions,
	})
	return metricEntryView{
		ID:             e.ID,
		Date:           e.Date.Format(validate.DateLayout),
		Impressions:    e.Impressions,
		Clicks:         e.Clicks,
		Conversions:    e.Conversions,
		Spend:          t.Spend,
		CTR:            t.CTR,
		ConversionRate: t.ConversionRate,
	}
}

type metricsView struct {
	formView
	Summary summaryView       `json:"summary"`
	Entries []metricEntryView `json:"entries"`
}

// handleCampaignMetrics shows a campaign's metric entries, newest first,
// along with the metric entry form.
func (h *Handler) handleCampaignMetrics(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.handleError(w, r, err, nil)
		return
	}
	d, err := h.campaigns.CampaignMetrics(r.Context(), accountID(r), id)
	if err != nil {
		h.handleError(w, r, err, nil)
		return
	}
	view := metricsView{
		formView: formView{
			Title:  "Add Metrics",
			Fields: []string{"date", "impressions", "clicks", "conversions", "spend"},
		},
		Summary: h.newSummaryView(d.CampaignSummary),
		Entries: make([]metricEntryView, 0, len(d.Entries)),
	}
	for _, e := range d.Entries {
		view.Entries = append(view.Entries, newMetricEntryView(e))
	}
	h.render(w, r, http.StatusOK, view)
}

func (h *Handler) handleAddMetrics(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.handleError(w, r, err, nil)
		return
	}
	form := domain.MetricForm{
		Date:        r.PostFormValue("date"),
		Impressions: r.PostFormValue("impressions"),
		Clicks:      r.PostFormValue("clicks"),
		Conversions: r.PostFormValue("conversions"),
		Spend:       r.PostFormValue("spend"),
	}
	e, err := h.campaigns.AddMetrics(r.Context(), accountID(r), id, form)
	if err != nil {
		h.handleError(w, r, err, form)
		return
	}
	h.metrics.MetricEntries.Inc()
	h.metrics.RecordedSpend.Add(e.Spend)
	h.redirect(w, r, "/dashboard", categorySuccess, "Metrics added successfully!")
}

package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"budget-tracker/internal/adapter/session"
	"budget-tracker/internal/core/domain"
	"budget-tracker/internal/core/validate"
)

// Notice categories.
const (
	categorySuccess = "success"
	categoryInfo    = "info"
	categoryWarning = "warning"
	categoryDanger  = "danger"
)

// envelope is the body of every page response. Notices are the flash
// messages queued for this client plus any raised by the request itself.
type envelope struct {
	Notices []session.Flash `json:"notices"`
	Data    any             `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// render writes a page. Queued notices are consumed; the session is saved
// only when it had persisted notices to drop.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, data any, extra ...session.Flash) {
	s := session.FromContext(r.Context())
	notices := s.PopFlashes()
	if len(notices) > 0 && s.ID() != "" {
		if err := h.sessions.Save(r.Context(), w, s); err != nil {
			h.fail(w, r, err)
			return
		}
	}
	notices = append(notices, extra...)
	if notices == nil {
		notices = []session.Flash{}
	}
	writeJSON(w, status, envelope{Notices: notices, Data: data})
}

// redirect queues a notice, saves the session and sends the client to url.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, url, category, message string) {
	s := session.FromContext(r.Context())
	s.AddFlash(category, message)
	if err := h.sessions.Save(r.Context(), w, s); err != nil {
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, url, http.StatusFound)
}

// reject re-renders a form with the submitted values and the reason it was
// not accepted.
func (h *Handler) reject(w http.ResponseWriter, r *http.Request, status int, reason string, form any) {
	h.render(w, r, status, formView{Values: form}, session.Flash{Category: categoryDanger, Message: reason})
}

// fail logs err and answers with a generic 500.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("request failed",
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// handleError maps use case errors onto responses. form is echoed back on
// rejected submissions.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error, form any) {
	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		h.reject(w, r, http.StatusUnprocessableEntity, verr.Reason, form)
	case errors.Is(err, domain.ErrCampaignNotFound):
		h.redirect(w, r, "/dashboard", categoryDanger, "Campaign not found.")
	case errors.Is(err, domain.ErrDuplicateAccount):
		h.reject(w, r, http.StatusUnprocessableEntity, "Username or email already exists.", form)
	case errors.Is(err, domain.ErrInvalidCredentials):
		h.reject(w, r, http.StatusUnauthorized, "Invalid username or password.", form)
	default:
		h.fail(w, r, err)
	}
}

// campaignID parses the {id} path parameter. Malformed ids are reported as
// not found, the same as ids of other accounts.
func campaignID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrCampaignNotFound
	}
	return id, nil
}

// formView describes a form page: its title, field names and, on rejection,
// the values that were submitted.
type formView struct {
	Title  string   `json:"title,omitempty"`
	Fields []string `json:"fields,omitempty"`
	Values any      `json:"values,omitempty"`
}

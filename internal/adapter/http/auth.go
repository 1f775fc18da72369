package httpadapter

import (
	"errors"
	"fmt"
	"net/http"

	"budget-tracker/internal/adapter/session"
	"budget-tracker/internal/core/domain"
	"budget-tracker/internal/core/validate"
)

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if _, ok := session.FromContext(r.Context()).AccountID(); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, formView{
		Title:  "Create Your Account",
		Fields: []string{"username", "email", "password", "confirm_password"},
	})
}

// handleRegister creates an account. The client is not logged in
// afterwards; it is sent to the login page.
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	form := domain.RegistrationForm{
		Handle:          r.PostFormValue("username"),
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
	}
	if _, err := h.accounts.Register(r.Context(), form); err != nil {
		h.metrics.Registrations.WithLabelValues(resultLabel(err)).Inc()
		h.handleError(w, r, err, form)
		return
	}
	h.metrics.Registrations.WithLabelValues("ok").Inc()
	h.redirect(w, r, "/login", categorySuccess, "Registration successful! Please log in.")
}

func (h *Handler) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, formView{
		Title:  "Login to Your Account",
		Fields: []string{"username", "password"},
	})
}

// handleLogin checks credentials and binds the account to a fresh session id.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	handle := r.PostFormValue("username")
	acc, err := h.accounts.Authenticate(r.Context(), handle, r.PostFormValue("password"))
	if err != nil {
		h.metrics.Logins.WithLabelValues(resultLabel(err)).Inc()
		h.handleError(w, r, err, map[string]string{"username": handle})
		return
	}
	h.metrics.Logins.WithLabelValues("ok").Inc()

	s := session.FromContext(r.Context())
	s.SetAccount(acc.ID, acc.Handle)
	s.AddFlash(categorySuccess, fmt.Sprintf("Welcome back, %s!", acc.Handle))
	if err = h.sessions.Renew(r.Context(), w, s); err != nil {
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	s.Clear()
	s.AddFlash(categoryInfo, "You have been logged out.")
	if err := h.sessions.Renew(r.Context(), w, s); err != nil {
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

// resultLabel classifies a failed registration or login for metrics.
func resultLabel(err error) string {
	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		return "invalid"
	case errors.Is(err, domain.ErrDuplicateAccount):
		return "duplicate"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "rejected"
	default:
		return "error"
	}
}

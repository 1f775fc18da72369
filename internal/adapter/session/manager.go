package session

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"budget-tracker/internal/config/configs"
)

type contextKey struct{}

// Session is the state of one client for the duration of a request. Changes
// are persisted by Manager.Save or Manager.Renew.
type Session struct {
	id string
	Data
}

// ID returns the session id, empty until the session is first saved.
func (s *Session) ID() string {
	return s.id
}

// AccountID returns the logged-in account, if any.
func (s *Session) AccountID() (int64, bool) {
	return s.Data.AccountID, s.Data.AccountID != 0
}

// SetAccount marks the session as logged in.
func (s *Session) SetAccount(id int64, handle string) {
	s.Data.AccountID = id
	s.Data.Handle = handle
}

// Clear drops the login and any pending notices.
func (s *Session) Clear() {
	s.Data = Data{}
}

// AddFlash queues a notice for the next response.
func (s *Session) AddFlash(category, message string) {
	s.Flashes = append(s.Flashes, Flash{Category: category, Message: message})
}

// PopFlashes returns and removes the queued notices.
func (s *Session) PopFlashes() []Flash {
	f := s.Flashes
	s.Flashes = nil
	return f
}

// Manager binds sessions to requests through a cookie.
type Manager struct {
	store  Store
	cfg    configs.Session
	logger *slog.Logger
}

// NewManager returns a manager persisting sessions in store.
func NewManager(store Store, cfg configs.Session, logger *slog.Logger) *Manager {
	if cfg.CookieName == "" {
		cfg.CookieName = "session_id"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	return &Manager{store: store, cfg: cfg, logger: logger}
}

// Middleware loads the session named by the request cookie into the request
// context. Requests without a valid cookie get a fresh, unsaved session.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := &Session{}
		if c, err := r.Cookie(m.cfg.CookieName); err == nil && c.Value != "" {
			data, err := m.store.Get(r.Context(), c.Value)
			if err != nil {
				m.logger.Error("load session", slog.Any("error", err))
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			if data != nil {
				s.id = c.Value
				s.Data = *data
			}
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, s)))
	})
}

// FromContext returns the request session. Outside Middleware it returns an
// empty session that is never persisted.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(contextKey{}).(*Session); ok {
		return s
	}
	return &Session{}
}

// Save persists s and, for a new session, issues the cookie.
func (m *Manager) Save(ctx context.Context, w http.ResponseWriter, s *Session) error {
	if s.id == "" {
		s.id = uuid.NewString()
	}
	if err := m.store.Set(ctx, s.id, s.Data, m.cfg.TTL); err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    s.id,
		Path:     "/",
		MaxAge:   int(m.cfg.TTL.Seconds()),
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Renew moves s to a new id and saves it. It is used whenever the login state
// changes so that an id seen before login is never valid after it.
func (m *Manager) Renew(ctx context.Context, w http.ResponseWriter, s *Session) error {
	if s.id != "" {
		if err := m.store.Delete(ctx, s.id); err != nil {
			return err
		}
	}
	s.id = ""
	return m.Save(ctx, w, s)
}

// Package session keeps the login state of browser clients on the server.
// The client only holds an opaque random id in a cookie; everything else
// lives in a Store.
package session

import (
	"context"
	"time"
)

// Flash is a one-shot notice shown with the next response.
type Flash struct {
	Category string `json:"category"` // success, info, warning, danger
	Message  string `json:"message"`
}

// Data is the persisted part of a session.
type Data struct {
	AccountID int64   `json:"account_id,omitempty"`
	Handle    string  `json:"handle,omitempty"`
	Flashes   []Flash `json:"flashes,omitempty"`
}

// Store persists session data by id.
type Store interface {
	// Get returns nil when the id is unknown or expired.
	Get(ctx context.Context, id string) (*Data, error)
	Set(ctx context.Context, id string, data Data, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

package configs

import "time"

// Session configures the login session cookie.
type Session struct {
	CookieName string        `env:"COOKIE_NAME" envDefault:"session_id"`
	TTL        time.Duration `env:"TTL" envDefault:"24h"`
	// Secure marks the cookie HTTPS only.
	Secure bool `env:"SECURE" envDefault:"false"`
}

package domain

import "errors"

var (
	// ErrCampaignNotFound is returned for campaigns that do not exist or are
	// owned by another account. Callers cannot tell the two apart.
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrDuplicateAccount is returned when the handle or email is taken.
	ErrDuplicateAccount = errors.New("username or email already exists")

	// ErrInvalidCredentials covers both unknown handles and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Package tokens provides repository interface and types for persisted
// session tokens, so a login survives process restarts until the server
// revokes it.
package tokens

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=tokensmock github.com/critfall/dmscreen/internal/repositories/tokens Repository

// Session is a persisted bearer token for one named profile.
type Session struct {
	// Profile names the credential set, e.g. "default"
	Profile string

	// Token is the raw bearer token as the server issued it
	Token string

	// SavedAt records when the token was persisted
	SavedAt time.Time

	// ExpiresAt is when the persisted copy lapses; the server may revoke
	// the token earlier
	ExpiresAt time.Time
}

// SaveInput contains parameters for persisting a session token
type SaveInput struct {
	Profile string
	Token   string
	TTL     time.Duration // zero gets the default
}

// SaveOutput contains the persisted session
type SaveOutput struct {
	Session *Session
}

// LoadInput identifies the profile to load
type LoadInput struct {
	Profile string
}

// LoadOutput contains the loaded session
type LoadOutput struct {
	Session *Session
}

// ClearInput identifies the profile to clear
type ClearInput struct {
	Profile string
}

// ClearOutput contains the result of clearing a session
type ClearOutput struct {
	Cleared bool
}

// Repository defines the interface for session token storage
type Repository interface {
	// Save persists a token for the profile, replacing any previous one
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Load retrieves the persisted token; NotFound when none exists
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// Clear removes the persisted token
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)
}

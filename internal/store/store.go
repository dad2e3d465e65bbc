// Package store keeps the normalized in-memory copy of server-owned records
// and is the single mutation entry point over it. Every write goes through a
// slice operation that calls the remote gateway and merges the returned
// record; the store never trusts its own optimistic guess. Reads go through
// pure selector functions that join slices at read time.
package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/critfall/dmscreen/internal/api"
	"github.com/critfall/dmscreen/internal/errors"
	"github.com/critfall/dmscreen/internal/pkg/clock"
	"github.com/critfall/dmscreen/internal/pkg/idgen"
)

// Config holds the dependencies for the store
type Config struct {
	// Gateway performs all remote calls
	Gateway api.Gateway

	// Tokens is the shared token holder read by every outgoing request.
	// The store is its only writer.
	Tokens *api.TokenHolder

	// Clock stamps lifecycle settlement; nil gets the real clock
	Clock clock.Clock

	// IDGenerator tags dispatched operations in log output; nil gets a
	// simple generator
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Gateway == nil {
		vb.RequiredField("Gateway")
	}
	if c.Tokens == nil {
		vb.RequiredField("Tokens")
	}
	return vb.Build()
}

// Store is the composed state tree: one session slice plus five entity
// slices. All mutations run through its methods; the mutex makes every
// read/write atomic with respect to the others, so in-flight network
// requests are the only suspension points and completions are applied in
// the order responses arrive.
type Store struct {
	gateway api.Gateway
	tokens  *api.TokenHolder
	clock   clock.Clock
	ids     idgen.Generator

	mu               sync.Mutex
	session          sessionState
	games            gamesState
	players          playersState
	monsters         monstersState
	conditions       conditionsState
	playerConditions playerConditionsState
}

// New creates a store with empty collections and an anonymous session
func New(cfg *Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	ids := cfg.IDGenerator
	if ids == nil {
		ids = &idgen.SimpleGenerator{}
	}

	return &Store{
		gateway: cfg.Gateway,
		tokens:  cfg.Tokens,
		clock:   c,
		ids:     ids,
		session: newSessionState(),
		games:   gamesState{lifecycle: newLifecycle()},
		players: playersState{lifecycle: newLifecycle()},
		monsters: monstersState{
			lifecycle: newLifecycle(),
		},
		conditions:       conditionsState{lifecycle: newLifecycle()},
		playerConditions: playerConditionsState{lifecycle: newLifecycle()},
	}, nil
}

// begin moves a slice to loading and returns the request id used in logs.
// The caller must not hold the lock.
func (s *Store) begin(ctx context.Context, l *lifecycle, op string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	l.begin()
	reqID := s.ids.Generate()
	slog.DebugContext(ctx, "store operation dispatched", "op", op, "request_id", reqID)
	return reqID
}

// beginProtected is begin plus the session gate check. Operations issued
// while anonymous or while a login is still in flight are rejected before
// any network call; the slice lifecycle is left untouched because no
// request ever existed.
func (s *Store) beginProtected(ctx context.Context, l *lifecycle, op string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.session.gate {
	case GateAuthenticated:
	case GateAuthenticating:
		return "", errors.FailedPrecondition("authentication in flight, retry after login settles")
	default:
		return "", errors.Unauthenticated("login required")
	}

	l.begin()
	reqID := s.ids.Generate()
	slog.DebugContext(ctx, "store operation dispatched", "op", op, "request_id", reqID)
	return reqID, nil
}

// settle applies one completion under the lock. On failure it captures the
// error into the slice and, for authentication failures, forces the session
// back to anonymous no matter which slice the 401 came from. apply runs
// only on success, with the lock held.
func (s *Store) settle(ctx context.Context, l *lifecycle, op, reqID string, err error, apply func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		l.fail(err, s.clock.Now())
		slog.ErrorContext(ctx, "store operation failed",
			"op", op,
			"request_id", reqID,
			"code", errors.GetCode(err).String(),
			"error", errors.GetMessage(err))
		if errors.IsUnauthenticated(err) {
			s.invalidateSessionLocked(ctx)
		}
		return err
	}

	apply()
	l.succeed(s.clock.Now())
	slog.DebugContext(ctx, "store operation settled", "op", op, "request_id", reqID)
	return nil
}

// invalidateSessionLocked clears the token and user and drops the gate to
// anonymous. Other slices keep their already-loaded data; stale records may
// stay visible until the presentation layer navigates away. That matches
// the source behavior and is deliberate.
func (s *Store) invalidateSessionLocked(ctx context.Context) {
	s.tokens.Clear()
	s.session.user = nil
	s.session.gate = GateAnonymous
	slog.InfoContext(ctx, "session invalidated, forced logout")
}

// Token implements api.TokenSource for callers that want to read the
// current token through the store rather than the shared holder.
func (s *Store) Token() string {
	return s.tokens.Token()
}

package store

import (
	"context"
	"log/slog"

	"github.com/critfall/dmscreen/internal/api"
	"github.com/critfall/dmscreen/internal/entities"
	"github.com/critfall/dmscreen/internal/errors"
)

// Gate is the session gate state.
type Gate string

// Gate states. The only transitions are anonymous -> authenticating ->
// authenticated, and any state -> anonymous on logout or a 401 from any
// slice's network call.
const (
	GateAnonymous      Gate = "anonymous"
	GateAuthenticating Gate = "authenticating"
	GateAuthenticated  Gate = "authenticated"
)

// sessionState is the session slice: the authenticated user plus the gate.
// The token itself lives in the shared api.TokenHolder.
type sessionState struct {
	lifecycle
	gate Gate
	user *entities.User
}

func newSessionState() sessionState {
	return sessionState{
		lifecycle: newLifecycle(),
		gate:      GateAnonymous,
	}
}

// Login exchanges credentials for a token and user. While the login is in
// flight the gate reads authenticating and protected operations are
// rejected. A failed login restores the gate it found.
func (s *Store) Login(ctx context.Context, email, password string) (*entities.User, error) {
	s.mu.Lock()
	if s.session.gate == GateAuthenticating {
		s.mu.Unlock()
		return nil, errors.FailedPrecondition("login already in flight")
	}
	prevGate := s.session.gate
	s.session.gate = GateAuthenticating
	s.session.begin()
	s.session.clearError()
	reqID := s.ids.Generate()
	s.mu.Unlock()

	slog.DebugContext(ctx, "store operation dispatched", "op", "session.login", "request_id", reqID)

	out, err := s.gateway.Login(ctx, &api.LoginInput{Email: email, Password: password})

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		if errors.IsResourceExhausted(err) {
			err = errors.WrapWithCode(err, errors.CodeResourceExhausted,
				"too many attempts, please try again later")
		}
		s.session.fail(err, s.clock.Now())
		s.session.gate = prevGate
		slog.ErrorContext(ctx, "login failed",
			"request_id", reqID,
			"code", errors.GetCode(err).String())
		return nil, err
	}

	s.tokens.Set(out.Token)
	user := out.User
	s.session.user = &user
	s.session.gate = GateAuthenticated
	s.session.succeed(s.clock.Now())
	slog.InfoContext(ctx, "login succeeded", "request_id", reqID, "user_id", user.ID)

	result := user
	return &result, nil
}

// Register creates a new DM account. It works while anonymous and does
// not open the gate; the new account still logs in.
func (s *Store) Register(ctx context.Context, draft api.UserDraft) (*entities.User, error) {
	reqID := s.begin(ctx, &s.session.lifecycle, "session.register")

	out, gerr := s.gateway.Register(ctx, &api.RegisterInput{Draft: draft})

	var user entities.User
	err := s.settle(ctx, &s.session.lifecycle, "session.register", reqID, gerr, func() {
		user = out.User
	})
	if err != nil {
		return nil, err
	}
	result := user
	return &result, nil
}

// InstallToken installs a previously persisted token without a network
// call and opens the gate. The token is assumed valid until the first 401
// proves otherwise.
func (s *Store) InstallToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens.Set(token)
	s.session.gate = GateAuthenticated
}

// FetchCurrentUser rehydrates the user for the installed token
func (s *Store) FetchCurrentUser(ctx context.Context) (*entities.User, error) {
	reqID, err := s.beginProtected(ctx, &s.session.lifecycle, "session.fetch_current_user")
	if err != nil {
		return nil, err
	}

	out, gerr := s.gateway.CurrentUser(ctx)

	var user entities.User
	err = s.settle(ctx, &s.session.lifecycle, "session.fetch_current_user", reqID, gerr, func() {
		user = out.User
		s.session.user = &user
	})
	if err != nil {
		return nil, err
	}
	result := user
	return &result, nil
}

// Logout revokes the token server-side and clears the session either way:
// a rejected logout still ends the local session, matching a user who
// expects the logout button to work offline.
func (s *Store) Logout(ctx context.Context) error {
	reqID, err := s.beginProtected(ctx, &s.session.lifecycle, "session.logout")
	if err != nil {
		return err
	}

	gerr := s.gateway.Logout(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.invalidateSessionLocked(ctx)
	if gerr != nil {
		s.session.fail(gerr, s.clock.Now())
		slog.ErrorContext(ctx, "logout request failed, session cleared locally",
			"request_id", reqID,
			"code", errors.GetCode(gerr).String())
		return gerr
	}

	s.session.lifecycle = newLifecycle()
	slog.DebugContext(ctx, "store operation settled", "op", "session.logout", "request_id", reqID)
	return nil
}

// ClearSessionError resets the captured login error (local, no network)
func (s *Store) ClearSessionError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.clearError()
}

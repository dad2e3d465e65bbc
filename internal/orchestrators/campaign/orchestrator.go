// Package campaign implements the campaign orchestrator: multi-slice
// flows that the store's single-slice operations do not cover, such as
// session bootstrap, round advancement and cross-entity cleanup after
// deletes.
package campaign

//go:generate mockgen -destination=mock/mock_service.go -package=campaignmock github.com/critfall/dmscreen/internal/orchestrators/campaign Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/critfall/dmscreen/internal/api"
	"github.com/critfall/dmscreen/internal/errors"
	"github.com/critfall/dmscreen/internal/repositories/tokens"
	"github.com/critfall/dmscreen/internal/store"
)

// DefaultProfile is the persisted-token slot used when the caller does
// not name one.
const DefaultProfile = "default"

// Service defines the interface for campaign session operations
type Service interface {
	// Register creates a new DM account without logging it in
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// BeginSession logs in, preloads every slice and persists the token
	BeginSession(ctx context.Context, input *BeginSessionInput) (*BeginSessionOutput, error)

	// Resume restores a persisted token without asking for credentials
	Resume(ctx context.Context, input *ResumeInput) (*ResumeOutput, error)

	// EndSession logs out and discards the persisted token
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// ApplyCondition validates and applies a condition to a player
	ApplyCondition(ctx context.Context, input *ApplyConditionInput) (*ApplyConditionOutput, error)

	// AdvanceRound ticks every active condition down one round
	AdvanceRound(ctx context.Context, input *AdvanceRoundInput) (*AdvanceRoundOutput, error)

	// DeleteGame deletes a game, leaving its players and monsters orphaned
	DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error)

	// DeletePlayer deletes a player and detaches its condition rows
	DeletePlayer(ctx context.Context, input *DeletePlayerInput) (*DeletePlayerOutput, error)

	// DeleteCondition deletes a catalog entry and detaches its rows
	DeleteCondition(ctx context.Context, input *DeleteConditionInput) (*DeleteConditionOutput, error)
}

// Config holds the dependencies for the campaign orchestrator
type Config struct {
	Store     *store.Store
	TokenRepo tokens.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Store == nil {
		vb.RequiredField("Store")
	}
	if c.TokenRepo == nil {
		vb.RequiredField("TokenRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	store     *store.Store
	tokenRepo tokens.Repository

	mu    sync.Mutex
	round int
}

// NewOrchestrator creates a new campaign orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		store:     cfg.Store,
		tokenRepo: cfg.TokenRepo,
	}, nil
}

var _ Service = (*orchestrator)(nil)

// Register creates a new DM account without logging it in
func (o *orchestrator) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("email", input.Email, vb)
	errors.ValidateRequired("password", input.Password, vb)
	if input.PasswordConfirmation != input.Password {
		vb.Field("password_confirmation", "does not match password")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	user, err := o.store.Register(ctx, api.UserDraft{
		Email:                input.Email,
		Password:             input.Password,
		PasswordConfirmation: input.PasswordConfirmation,
	})
	if err != nil {
		return nil, err
	}

	return &RegisterOutput{User: user}, nil
}

// BeginSession logs in, preloads every slice and persists the token
func (o *orchestrator) BeginSession(ctx context.Context, input *BeginSessionInput) (*BeginSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("email", input.Email, vb)
	errors.ValidateRequired("password", input.Password, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	user, err := o.store.Login(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	profile := input.Profile
	if profile == "" {
		profile = DefaultProfile
	}

	warnings := o.preload(ctx)

	// A failed save costs the next restart a login prompt, nothing more.
	if _, err := o.tokenRepo.Save(ctx, tokens.SaveInput{
		Profile: profile,
		Token:   o.store.Token(),
		TTL:     input.TokenTTL,
	}); err != nil {
		slog.WarnContext(ctx, "failed to persist session token",
			"profile", profile,
			"error", errors.GetMessage(err))
		warnings = append(warnings, "token persistence")
	}

	return &BeginSessionOutput{User: user, Warnings: warnings}, nil
}

// Resume restores a persisted token without asking for credentials
func (o *orchestrator) Resume(ctx context.Context, input *ResumeInput) (*ResumeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	profile := input.Profile
	if profile == "" {
		profile = DefaultProfile
	}

	loaded, err := o.tokenRepo.Load(ctx, tokens.LoadInput{Profile: profile})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.Unauthenticatedf("no persisted session for profile %q, log in first", profile)
		}
		return nil, errors.Wrap(err, "failed to load persisted session")
	}

	o.store.InstallToken(loaded.Session.Token)

	user, err := o.store.FetchCurrentUser(ctx)
	if err != nil {
		// A revoked token reads as 401; the persisted copy is dead weight.
		if errors.IsUnauthenticated(err) {
			if _, clearErr := o.tokenRepo.Clear(ctx, tokens.ClearInput{Profile: profile}); clearErr != nil {
				slog.WarnContext(ctx, "failed to clear revoked session token",
					"profile", profile,
					"error", errors.GetMessage(clearErr))
			}
		}
		return nil, err
	}

	warnings := o.preload(ctx)

	return &ResumeOutput{User: user, Warnings: warnings}, nil
}

// EndSession logs out and discards the persisted token
func (o *orchestrator) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	profile := input.Profile
	if profile == "" {
		profile = DefaultProfile
	}

	logoutErr := o.store.Logout(ctx)

	// The persisted copy goes regardless of what the server said.
	cleared, err := o.tokenRepo.Clear(ctx, tokens.ClearInput{Profile: profile})
	if err != nil {
		slog.WarnContext(ctx, "failed to clear persisted session token",
			"profile", profile,
			"error", errors.GetMessage(err))
	}

	if logoutErr != nil {
		return nil, logoutErr
	}

	out := &EndSessionOutput{}
	if cleared != nil {
		out.TokenCleared = cleared.Cleared
	}
	return out, nil
}

// ApplyCondition validates and applies a condition to a player
func (o *orchestrator) ApplyCondition(ctx context.Context, input *ApplyConditionInput) (*ApplyConditionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidatePositiveID("player_id", input.PlayerID, vb)
	errors.ValidatePositiveID("condition_id", input.ConditionID, vb)
	errors.ValidateMin("condition_length", input.ConditionLength, 0, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	// The placeholder entry exists so old sheets render; it is never
	// applied to anyone.
	for _, c := range o.store.Conditions() {
		if c.ID == input.ConditionID && c.Sentinel() {
			return nil, errors.InvalidArgument("the placeholder condition cannot be applied")
		}
	}

	row, err := o.store.CreatePlayerCondition(ctx, api.PlayerConditionDraft{
		PlayerID:        input.PlayerID,
		ConditionID:     input.ConditionID,
		ConditionLength: input.ConditionLength,
	})
	if err != nil {
		return nil, err
	}

	return &ApplyConditionOutput{PlayerCondition: row}, nil
}

// AdvanceRound ticks every active condition down one round
func (o *orchestrator) AdvanceRound(ctx context.Context, _ *AdvanceRoundInput) (*AdvanceRoundOutput, error) {
	o.store.DecrementConditionLengths(ctx)

	active := 0
	for _, row := range o.store.PlayerConditions() {
		if row.ConditionLength > 0 {
			active++
		}
	}

	o.mu.Lock()
	o.round++
	round := o.round
	o.mu.Unlock()

	slog.InfoContext(ctx, "round advanced", "round", round, "active_conditions", active)
	return &AdvanceRoundOutput{Round: round, ActiveConditions: active}, nil
}

// DeleteGame deletes a game, leaving its players and monsters orphaned
func (o *orchestrator) DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	if err := o.store.DeleteGame(ctx, input.ID); err != nil {
		return nil, err
	}

	out := &DeleteGameOutput{
		OrphanedPlayers:  len(o.store.PlayersOfGame(input.ID)),
		OrphanedMonsters: len(o.store.MonstersOfGame(input.ID)),
	}
	if out.OrphanedPlayers > 0 || out.OrphanedMonsters > 0 {
		slog.WarnContext(ctx, "deleted game leaves orphaned records",
			"game_id", input.ID,
			"players", out.OrphanedPlayers,
			"monsters", out.OrphanedMonsters)
	}
	return out, nil
}

// DeletePlayer deletes a player and detaches its condition rows
func (o *orchestrator) DeletePlayer(ctx context.Context, input *DeletePlayerInput) (*DeletePlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	if err := o.store.DeletePlayer(ctx, input.ID); err != nil {
		return nil, err
	}
	o.store.DetachConditionsForPlayer(input.ID)

	return &DeletePlayerOutput{}, nil
}

// DeleteCondition deletes a catalog entry and detaches its rows
func (o *orchestrator) DeleteCondition(ctx context.Context, input *DeleteConditionInput) (*DeleteConditionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	for _, c := range o.store.Conditions() {
		if c.ID == input.ID && c.Sentinel() {
			return nil, errors.InvalidArgument("the placeholder condition cannot be deleted")
		}
	}

	if err := o.store.DeleteCondition(ctx, input.ID); err != nil {
		return nil, err
	}
	o.store.DetachConditionsForCondition(input.ID)

	return &DeleteConditionOutput{}, nil
}

// preload fetches every slice in parallel. A slice that fails to load is
// reported as a warning; the session is still usable without it.
func (o *orchestrator) preload(ctx context.Context) []string {
	type task struct {
		name string
		run  func(context.Context) error
	}

	tasks := []task{
		{"games", func(ctx context.Context) error { _, err := o.store.FetchGames(ctx); return err }},
		{"players", func(ctx context.Context) error { _, err := o.store.FetchPlayers(ctx); return err }},
		{"monsters", func(ctx context.Context) error { _, err := o.store.FetchMonsters(ctx); return err }},
		{"conditions", func(ctx context.Context) error { _, err := o.store.FetchConditions(ctx); return err }},
		{"player_conditions", func(ctx context.Context) error { _, err := o.store.FetchPlayerConditions(ctx); return err }},
	}

	var wg sync.WaitGroup
	failed := make([]string, len(tasks))
	for i, t := range tasks {
		wg.Add(1)
		go func(i int, t task) {
			defer wg.Done()
			if err := t.run(ctx); err != nil {
				failed[i] = t.name
				slog.WarnContext(ctx, "slice preload failed",
					"slice", t.name,
					"error", errors.GetMessage(err))
			}
		}(i, t)
	}
	wg.Wait()

	var warnings []string
	for _, name := range failed {
		if name != "" {
			warnings = append(warnings, name)
		}
	}
	return warnings
}

package campaign

import (
	"time"

	"github.com/critfall/dmscreen/internal/entities"
)

// RegisterInput carries the new DM account fields
type RegisterInput struct {
	Email                string
	Password             string
	PasswordConfirmation string
}

// RegisterOutput is the created account; logging in is a separate step
type RegisterOutput struct {
	User *entities.User
}

// BeginSessionInput carries the DM's credentials and the profile under
// which the issued token is persisted.
type BeginSessionInput struct {
	Email    string
	Password string

	// Profile names the persisted token slot; empty gets "default"
	Profile string

	// TokenTTL bounds the persisted copy; zero gets the repository default
	TokenTTL time.Duration
}

// BeginSessionOutput is the authenticated user plus any slices that
// failed to preload. A warning is not a failed login.
type BeginSessionOutput struct {
	User     *entities.User
	Warnings []string
}

// ResumeInput identifies the persisted token to resume from
type ResumeInput struct {
	Profile string
}

// ResumeOutput is the rehydrated user plus preload warnings
type ResumeOutput struct {
	User     *entities.User
	Warnings []string
}

// EndSessionInput identifies the persisted token to discard
type EndSessionInput struct {
	Profile string
}

// EndSessionOutput reports whether a persisted token was discarded
type EndSessionOutput struct {
	TokenCleared bool
}

// ApplyConditionInput names the player, the catalog entry and the
// duration in rounds
type ApplyConditionInput struct {
	PlayerID        int
	ConditionID     int
	ConditionLength int
}

// ApplyConditionOutput is the created application row
type ApplyConditionOutput struct {
	PlayerCondition *entities.PlayerCondition
}

// AdvanceRoundInput is empty; the orchestrator tracks the round counter
type AdvanceRoundInput struct{}

// AdvanceRoundOutput reports the new round number and how many
// applications still have rounds remaining
type AdvanceRoundOutput struct {
	Round            int
	ActiveConditions int
}

// DeleteGameInput identifies the game to delete
type DeleteGameInput struct {
	ID int
}

// DeleteGameOutput reports how many loaded records still reference the
// deleted game
type DeleteGameOutput struct {
	OrphanedPlayers  int
	OrphanedMonsters int
}

// DeletePlayerInput identifies the player to delete
type DeletePlayerInput struct {
	ID int
}

// DeletePlayerOutput is empty; detached rows are dropped locally
type DeletePlayerOutput struct{}

// DeleteConditionInput identifies the catalog entry to delete
type DeleteConditionInput struct {
	ID int
}

// DeleteConditionOutput is empty
type DeleteConditionOutput struct{}

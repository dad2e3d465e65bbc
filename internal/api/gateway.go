// Package api defines the remote gateway contract for the dmscreen server
// and its HTTP implementation. Write bodies wrap the entity under its
// singular name; reads return the bare entity or array. The server owns
// every id.
package api

//go:generate mockgen -destination=mock/mock_gateway.go -package=apimock github.com/critfall/dmscreen/internal/api Gateway

import (
	"context"

	"github.com/critfall/dmscreen/internal/entities"
)

// TokenSource supplies the bearer token for authenticated requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Gateway defines the interface for the remote REST API.
// Every method maps to exactly one HTTP request; errors are returned in the
// internal/errors taxonomy (Unavailable for transport failures,
// Unauthenticated for 401, InvalidArgument with field metadata for 422,
// NotFound for 404).
type Gateway interface {
	// Register creates a new DM account
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login exchanges credentials for a token and the authenticated user
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// CurrentUser fetches the user the current token belongs to
	CurrentUser(ctx context.Context) (*CurrentUserOutput, error)

	// Logout revokes the current token server-side
	Logout(ctx context.Context) error

	// ListGames lists the authenticated DM's games
	ListGames(ctx context.Context) (*ListGamesOutput, error)

	// GetGame fetches a single game
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// CreateGame creates a game from an unsaved draft
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// UpdateGame patches named fields only, never a full-record overwrite
	UpdateGame(ctx context.Context, input *UpdateGameInput) (*UpdateGameOutput, error)

	// DeleteGame deletes a game; dependents are left orphaned
	DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error)

	// ListPlayers lists all player sheets visible to the DM
	ListPlayers(ctx context.Context) (*ListPlayersOutput, error)

	// GetPlayer fetches a single player sheet
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error)

	// CreatePlayer creates a player sheet from an unsaved draft
	CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*CreatePlayerOutput, error)

	// UpdatePlayer patches named fields only
	UpdatePlayer(ctx context.Context, input *UpdatePlayerInput) (*UpdatePlayerOutput, error)

	// DeletePlayer deletes a player sheet
	DeletePlayer(ctx context.Context, input *DeletePlayerInput) (*DeletePlayerOutput, error)

	// ListMonsters lists all monsters visible to the DM
	ListMonsters(ctx context.Context) (*ListMonstersOutput, error)

	// GetMonster fetches a single monster
	GetMonster(ctx context.Context, input *GetMonsterInput) (*GetMonsterOutput, error)

	// CreateMonster creates a monster from an unsaved draft
	CreateMonster(ctx context.Context, input *CreateMonsterInput) (*CreateMonsterOutput, error)

	// UpdateMonster patches named fields only
	UpdateMonster(ctx context.Context, input *UpdateMonsterInput) (*UpdateMonsterOutput, error)

	// DeleteMonster deletes a monster
	DeleteMonster(ctx context.Context, input *DeleteMonsterInput) (*DeleteMonsterOutput, error)

	// ListConditions lists the global condition catalog
	ListConditions(ctx context.Context) (*ListConditionsOutput, error)

	// GetCondition fetches a single catalog entry
	GetCondition(ctx context.Context, input *GetConditionInput) (*GetConditionOutput, error)

	// CreateCondition creates a catalog entry
	CreateCondition(ctx context.Context, input *CreateConditionInput) (*CreateConditionOutput, error)

	// UpdateCondition patches a catalog entry
	UpdateCondition(ctx context.Context, input *UpdateConditionInput) (*UpdateConditionOutput, error)

	// DeleteCondition deletes a catalog entry
	DeleteCondition(ctx context.Context, input *DeleteConditionInput) (*DeleteConditionOutput, error)

	// ListPlayerConditions lists every active condition application
	ListPlayerConditions(ctx context.Context) (*ListPlayerConditionsOutput, error)

	// GetPlayerCondition fetches a single condition application
	GetPlayerCondition(ctx context.Context, input *GetPlayerConditionInput) (*GetPlayerConditionOutput, error)

	// CreatePlayerCondition applies a condition to a player
	CreatePlayerCondition(ctx context.Context, input *CreatePlayerConditionInput) (*CreatePlayerConditionOutput, error)

	// UpdatePlayerCondition patches the remaining-duration counter
	UpdatePlayerCondition(ctx context.Context, input *UpdatePlayerConditionInput) (*UpdatePlayerConditionOutput, error)

	// DeletePlayerCondition removes a condition application
	DeletePlayerCondition(ctx context.Context, input *DeletePlayerConditionInput) (*DeletePlayerConditionOutput, error)
}

// UserDraft is an unsaved account; the server assigns the id
type UserDraft struct {
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// RegisterInput carries the new account draft
type RegisterInput struct {
	Draft UserDraft
}

// RegisterOutput is the created account. No token: a new account still
// logs in.
type RegisterOutput struct {
	User entities.User
}

// LoginInput carries the login credentials
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginOutput is the token and user returned on successful login
type LoginOutput struct {
	Token string        `json:"token"`
	User  entities.User `json:"user"`
}

// CurrentUserOutput is the user the current token belongs to
type CurrentUserOutput struct {
	User entities.User `json:"user"`
}

// GameDraft is an unsaved game; the server assigns the id
type GameDraft struct {
	Name string `json:"name"`
	DMID int    `json:"dm_id"`
}

// GamePatch names the game fields to change; nil fields are left untouched
type GamePatch struct {
	Name *string `json:"name,omitempty"`
	DMID *int    `json:"dm_id,omitempty"`
}

// ListGamesOutput is the full game list
type ListGamesOutput struct {
	Games []entities.Game
}

// GetGameInput identifies the game to fetch
type GetGameInput struct {
	ID int
}

// GetGameOutput is a single fetched game
type GetGameOutput struct {
	Game entities.Game
}

// CreateGameInput carries the game draft
type CreateGameInput struct {
	Draft GameDraft
}

// CreateGameOutput is the created game with its server-assigned id
type CreateGameOutput struct {
	Game entities.Game
}

// UpdateGameInput identifies the game and names the fields to change
type UpdateGameInput struct {
	ID    int
	Patch GamePatch
}

// UpdateGameOutput is the updated game as the server stored it
type UpdateGameOutput struct {
	Game entities.Game
}

// DeleteGameInput identifies the game to delete
type DeleteGameInput struct {
	ID int
}

// DeleteGameOutput is empty; the id echo lives in the store layer
type DeleteGameOutput struct{}

// PlayerDraft is an unsaved player sheet; the server assigns the id
type PlayerDraft struct {
	Name            string                `json:"name"`
	Character       string                `json:"character"`
	CharacterClass  string                `json:"character_class"`
	Image           string                `json:"image"`
	Level           int                   `json:"level"`
	CurrentHP       int                   `json:"current_hp"`
	TotalHP         int                   `json:"total_hp"`
	ArmorClass      int                   `json:"armor_class"`
	Speed           int                   `json:"speed"`
	InitiativeBonus int                   `json:"initiative_bonus"`
	Strength        entities.AbilityScore `json:"strength"`
	Dexterity       entities.AbilityScore `json:"dexterity"`
	Constitution    entities.AbilityScore `json:"constitution"`
	Intelligence    entities.AbilityScore `json:"intelligence"`
	Wisdom          entities.AbilityScore `json:"wisdom"`
	Charisma        entities.AbilityScore `json:"charisma"`
	Displayed       bool                  `json:"displayed"`
	GameID          int                   `json:"game_id"`
}

// PlayerPatch names the player fields to change; nil fields are left untouched.
// CurrentHP is deliberately not clamped here: [0, total_hp] bounds are a
// presentation concern, not a store invariant.
type PlayerPatch struct {
	Name            *string                `json:"name,omitempty"`
	Character       *string                `json:"character,omitempty"`
	CharacterClass  *string                `json:"character_class,omitempty"`
	Image           *string                `json:"image,omitempty"`
	Level           *int                   `json:"level,omitempty"`
	CurrentHP       *int                   `json:"current_hp,omitempty"`
	TotalHP         *int                   `json:"total_hp,omitempty"`
	ArmorClass      *int                   `json:"armor_class,omitempty"`
	Speed           *int                   `json:"speed,omitempty"`
	InitiativeBonus *int                   `json:"initiative_bonus,omitempty"`
	Strength        *entities.AbilityScore `json:"strength,omitempty"`
	Dexterity       *entities.AbilityScore `json:"dexterity,omitempty"`
	Constitution    *entities.AbilityScore `json:"constitution,omitempty"`
	Intelligence    *entities.AbilityScore `json:"intelligence,omitempty"`
	Wisdom          *entities.AbilityScore `json:"wisdom,omitempty"`
	Charisma        *entities.AbilityScore `json:"charisma,omitempty"`
	Displayed       *bool                  `json:"displayed,omitempty"`
	GameID          *int                   `json:"game_id,omitempty"`
}

// ListPlayersOutput is the full player list
type ListPlayersOutput struct {
	Players []entities.Player
}

// GetPlayerInput identifies the player to fetch
type GetPlayerInput struct {
	ID int
}

// GetPlayerOutput is a single fetched player
type GetPlayerOutput struct {
	Player entities.Player
}

// CreatePlayerInput carries the player draft
type CreatePlayerInput struct {
	Draft PlayerDraft
}

// CreatePlayerOutput is the created player with its server-assigned id
type CreatePlayerOutput struct {
	Player entities.Player
}

// UpdatePlayerInput identifies the player and names the fields to change
type UpdatePlayerInput struct {
	ID    int
	Patch PlayerPatch
}

// UpdatePlayerOutput is the updated player as the server stored it
type UpdatePlayerOutput struct {
	Player entities.Player
}

// DeletePlayerInput identifies the player to delete
type DeletePlayerInput struct {
	ID int
}

// DeletePlayerOutput is empty
type DeletePlayerOutput struct{}

// MonsterDraft is an unsaved monster; the server assigns the id
type MonsterDraft struct {
	Name        string             `json:"name"`
	Size        entities.Size      `json:"size"`
	Alignment   entities.Alignment `json:"alignment"`
	ArmorClass  int                `json:"armor_class"`
	HitPoints   int                `json:"hit_points"`
	Speed       int                `json:"speed"`
	Resistances string             `json:"resistances"`
	Attacks     string             `json:"attacks"`
	PBonus      int                `json:"p_bonus"`
	Displayed   bool               `json:"displayed"`
	GameID      int                `json:"game_id"`
}

// MonsterPatch names the monster fields to change; nil fields are left untouched
type MonsterPatch struct {
	Name        *string             `json:"name,omitempty"`
	Size        *entities.Size      `json:"size,omitempty"`
	Alignment   *entities.Alignment `json:"alignment,omitempty"`
	ArmorClass  *int                `json:"armor_class,omitempty"`
	HitPoints   *int                `json:"hit_points,omitempty"`
	Speed       *int                `json:"speed,omitempty"`
	Resistances *string             `json:"resistances,omitempty"`
	Attacks     *string             `json:"attacks,omitempty"`
	PBonus      *int                `json:"p_bonus,omitempty"`
	Displayed   *bool               `json:"displayed,omitempty"`
	GameID      *int                `json:"game_id,omitempty"`
}

// ListMonstersOutput is the full monster list
type ListMonstersOutput struct {
	Monsters []entities.Monster
}

// GetMonsterInput identifies the monster to fetch
type GetMonsterInput struct {
	ID int
}

// GetMonsterOutput is a single fetched monster
type GetMonsterOutput struct {
	Monster entities.Monster
}

// CreateMonsterInput carries the monster draft
type CreateMonsterInput struct {
	Draft MonsterDraft
}

// CreateMonsterOutput is the created monster with its server-assigned id
type CreateMonsterOutput struct {
	Monster entities.Monster
}

// UpdateMonsterInput identifies the monster and names the fields to change
type UpdateMonsterInput struct {
	ID    int
	Patch MonsterPatch
}

// UpdateMonsterOutput is the updated monster as the server stored it
type UpdateMonsterOutput struct {
	Monster entities.Monster
}

// DeleteMonsterInput identifies the monster to delete
type DeleteMonsterInput struct {
	ID int
}

// DeleteMonsterOutput is empty
type DeleteMonsterOutput struct{}

// ConditionDraft is an unsaved catalog entry
type ConditionDraft struct {
	Name string `json:"name"`
}

// ConditionPatch names the catalog fields to change
type ConditionPatch struct {
	Name *string `json:"name,omitempty"`
}

// ListConditionsOutput is the full catalog
type ListConditionsOutput struct {
	Conditions []entities.Condition
}

// GetConditionInput identifies the catalog entry to fetch
type GetConditionInput struct {
	ID int
}

// GetConditionOutput is a single catalog entry
type GetConditionOutput struct {
	Condition entities.Condition
}

// CreateConditionInput carries the catalog draft
type CreateConditionInput struct {
	Draft ConditionDraft
}

// CreateConditionOutput is the created catalog entry
type CreateConditionOutput struct {
	Condition entities.Condition
}

// UpdateConditionInput identifies the entry and names the fields to change
type UpdateConditionInput struct {
	ID    int
	Patch ConditionPatch
}

// UpdateConditionOutput is the updated catalog entry
type UpdateConditionOutput struct {
	Condition entities.Condition
}

// DeleteConditionInput identifies the catalog entry to delete
type DeleteConditionInput struct {
	ID int
}

// DeleteConditionOutput is empty
type DeleteConditionOutput struct{}

// PlayerConditionDraft is an unsaved condition application
type PlayerConditionDraft struct {
	PlayerID        int `json:"player_id"`
	ConditionID     int `json:"condition_id"`
	ConditionLength int `json:"condition_length"`
}

// PlayerConditionPatch names the application fields to change
type PlayerConditionPatch struct {
	ConditionLength *int `json:"condition_length,omitempty"`
}

// ListPlayerConditionsOutput is every active condition application
type ListPlayerConditionsOutput struct {
	PlayerConditions []entities.PlayerCondition
}

// GetPlayerConditionInput identifies the application to fetch
type GetPlayerConditionInput struct {
	ID int
}

// GetPlayerConditionOutput is a single fetched application
type GetPlayerConditionOutput struct {
	PlayerCondition entities.PlayerCondition
}

// CreatePlayerConditionInput carries the application draft
type CreatePlayerConditionInput struct {
	Draft PlayerConditionDraft
}

// CreatePlayerConditionOutput is the created application
type CreatePlayerConditionOutput struct {
	PlayerCondition entities.PlayerCondition
}

// UpdatePlayerConditionInput identifies the application and the new duration
type UpdatePlayerConditionInput struct {
	ID    int
	Patch PlayerConditionPatch
}

// UpdatePlayerConditionOutput is the updated application
type UpdatePlayerConditionOutput struct {
	PlayerCondition entities.PlayerCondition
}

// DeletePlayerConditionInput identifies the application to remove
type DeletePlayerConditionInput struct {
	ID int
}

// DeletePlayerConditionOutput is empty
type DeletePlayerConditionOutput struct{}

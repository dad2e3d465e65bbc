package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/critfall/dmscreen/internal/entities"
	"github.com/critfall/dmscreen/internal/errors"
)

const defaultTimeout = 30 * time.Second

// Config holds the dependencies for the HTTP gateway
type Config struct {
	// BaseURL is the API root, e.g. "https://dm.example.com/api"
	BaseURL string

	// Tokens supplies the bearer token per request. Required: even the
	// login request consults it (and gets an empty token back).
	Tokens TokenSource

	// HTTPClient overrides the default client; nil gets a 30s-timeout default
	HTTPClient *http.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("BaseURL", c.BaseURL, vb)
	if c.Tokens == nil {
		vb.RequiredField("Tokens")
	}
	return vb.Build()
}

type httpGateway struct {
	baseURL string
	tokens  TokenSource
	client  *http.Client
}

// NewHTTP creates a Gateway speaking the server's REST+JSON contract
func NewHTTP(cfg *Config) (Gateway, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	return &httpGateway{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		tokens:  cfg.Tokens,
		client:  client,
	}, nil
}

// errorBody is the server's failure payload: either a plain message or a
// field -> messages map for validation failures.
type errorBody struct {
	Error  string              `json:"error"`
	Errors map[string][]string `json:"errors"`
}

// do issues one request and decodes the response into out (when non-nil).
// Failures come back in the internal/errors taxonomy; the body is drained
// either way so connections can be reused.
func (g *httpGateway) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "failed to encode %s %s body", method, path)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrapf(err, "failed to build %s %s request", method, path)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := g.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		// No response received at all: transport failure.
		return errors.WrapWithCode(err, errors.CodeUnavailable,
			fmt.Sprintf("%s %s: no response from server", method, path))
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		return g.decodeError(ctx, method, path, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode %s %s response", method, path)
	}
	return nil
}

func (g *httpGateway) decodeError(ctx context.Context, method, path string, resp *http.Response) error {
	code := errors.CodeFromHTTPStatus(resp.StatusCode)

	var payload errorBody
	// A non-JSON error body is fine; the status code already tells the story.
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	message := payload.Error
	if message == "" {
		message = fmt.Sprintf("%s %s failed with status %d", method, path, resp.StatusCode)
	}

	slog.DebugContext(ctx, "api request failed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"code", code.String())

	err := errors.New(code, message)
	if len(payload.Errors) > 0 {
		err = err.WithMeta("validation_errors", payload.Errors)
	}
	return err
}

func (g *httpGateway) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	body := map[string]UserDraft{"user": input.Draft}
	var user entities.User
	if err := g.do(ctx, http.MethodPost, "/users", body, &user); err != nil {
		return nil, err
	}
	return &RegisterOutput{User: user}, nil
}

func (g *httpGateway) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var out LoginOutput
	if err := g.do(ctx, http.MethodPost, "/login", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *httpGateway) CurrentUser(ctx context.Context) (*CurrentUserOutput, error) {
	var out CurrentUserOutput
	if err := g.do(ctx, http.MethodGet, "/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *httpGateway) Logout(ctx context.Context) error {
	return g.do(ctx, http.MethodDelete, "/logout", nil, nil)
}

func (g *httpGateway) ListGames(ctx context.Context) (*ListGamesOutput, error) {
	var games []entities.Game
	if err := g.do(ctx, http.MethodGet, "/games", nil, &games); err != nil {
		return nil, err
	}
	return &ListGamesOutput{Games: games}, nil
}

func (g *httpGateway) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var game entities.Game
	if err := g.do(ctx, http.MethodGet, fmt.Sprintf("/games/%d", input.ID), nil, &game); err != nil {
		return nil, err
	}
	return &GetGameOutput{Game: game}, nil
}

func (g *httpGateway) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	body := map[string]GameDraft{"game": input.Draft}
	var game entities.Game
	if err := g.do(ctx, http.MethodPost, "/games", body, &game); err != nil {
		return nil, err
	}
	return &CreateGameOutput{Game: game}, nil
}

func (g *httpGateway) UpdateGame(ctx context.Context, input *UpdateGameInput) (*UpdateGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	body := map[string]GamePatch{"game": input.Patch}
	var game entities.Game
	if err := g.do(ctx, http.MethodPatch, fmt.Sprintf("/games/%d", input.ID), body, &game); err != nil {
		return nil, err
	}
	return &UpdateGameOutput{Game: game}, nil
}

func (g *httpGateway) DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if err := g.do(ctx, http.MethodDelete, fmt.Sprintf("/games/%d", input.ID), nil, nil); err != nil {
		return nil, err
	}
	return &DeleteGameOutput{}, nil
}

func (g *httpGateway) ListPlayers(ctx context.Context) (*ListPlayersOutput, error) {
	var players []entities.Player
	if err := g.do(ctx, http.MethodGet, "/players", nil, &players); err != nil {
		return nil, err
	}
	return &ListPlayersOutput{Players: players}, nil
}

func (g *httpGateway) GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var player entities.Player
	if err := g.do(ctx, http.MethodGet, fmt.Sprintf("/players/%d", input.ID), nil, &player); err != nil {
		return nil, err
	}
	return &GetPlayerOutput{Player: player}, nil
}

func (g *httpGateway) CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*CreatePlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	body := map[string]PlayerDraft{"player": input.Draft}
	var player entities.Player
	if err := g.do(ctx, http.MethodPost, "/players", body, &player); err != nil {
		return nil, err
	}
	return &CreatePlayerOutput{Player: player}, nil
}

func (g *httpGateway) UpdatePlayer(ctx context.Context, input *UpdatePlayerInput) (*UpdatePlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	body := map[string]PlayerPatch{"player": input.Patch}
	var player entities.Player
	if err := g.do(ctx, http.MethodPatch, fmt.Sprintf("/players/%d", input.ID), body, &player); err != nil {
		return nil, err
	}
	return &UpdatePlayerOutput{Player: player}, nil
}

func (g *httpGateway) DeletePlayer(ctx context.Context, input *DeletePlayerInput) (*DeletePlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if err := g.do(ctx, http.MethodDelete, fmt.Sprintf("/players/%d", input.ID), nil, nil); err != nil {
		return nil, err
	}
	return &DeletePlayerOutput{}, nil
}

func (g *httpGateway) ListMonsters(ctx context.Context) (*ListMonstersOutput, error) {
	var monsters []entities.Monster
	if err := g.do(ctx, http.MethodGet, "/monsters", nil, &monsters); err != nil {
		return nil, err
	}
	return &ListMonstersOutput{Monsters: monsters}, nil
}

func (g *httpGateway) GetMonster(ctx context.Context, input *GetMonsterInput) (*GetMonsterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var monster entities.Monster
	if err := g.do(ctx, http.MethodGet, fmt.Sprintf("/monsters/%d", input.ID), nil, &monster); err != nil {
		return nil, err
	}
	return &GetMonsterOutput{Monster: monster}, nil
}

func (g *httpGateway) CreateMonster(ctx context.Context, input *CreateMonsterInput) (*CreateMonsterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	body := map[string]MonsterDraft{"monster": input.Draft}
	var monster entities.Monster
	if err := g.do(ctx, http.MethodPost, "/monsters", body, &monster); err != nil {
		return nil, err
	}
	return &CreateMonsterOutput{Monster: monster}, nil
}

func (g *httpGateway) UpdateMonster(ctx context.Context, input *UpdateMonsterInput) (*UpdateMonsterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	body := map[string]MonsterPatch{"monster": input.Patch}
	var monster entities.Monster
	if err := g.do(ctx, http.MethodPatch, fmt.Sprintf("/monsters/%d", input.ID), body, &monster); err != nil {
		return nil, err
	}
	return &UpdateMonsterOutput{Monster: monster}, nil
}

func (g *httpGateway) DeleteMonster(ctx context.Context, input *DeleteMonsterInput) (*DeleteMonsterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if err := g.do(ctx, http.MethodDelete, fmt.Sprintf("/monsters/%d", input.ID), nil, nil); err != nil {
		return nil, err
	}
	return &DeleteMonsterOutput{}, nil
}

func (g *httpGateway) ListConditions(ctx context.Context) (*ListConditionsOutput, error) {
	var conditions []entities.Condition
	if err := g.do(ctx, http.MethodGet, "/conditions", nil, &conditions); err != nil {
		return nil, err
	}
	return &ListConditionsOutput{Conditions: conditions}, nil
}

func (g *httpGateway) GetCondition(ctx context.Context, input *GetConditionInput) (*GetConditionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var condition entities.Condition
	if err := g.do(ctx, http.MethodGet, fmt.Sprintf("/conditions/%d", input.ID), nil, &condition); err != nil {
		return nil, err
	}
	return &GetConditionOutput{Condition: condition}, nil
}

func (g *httpGateway) CreateCondition(ctx context.Context, input *CreateConditionInput) (*CreateConditionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	body := map[string]ConditionDraft{"condition": input.Draft}
	var condition entities.Condition
	if err := g.do(ctx, http.MethodPost, "/conditions", body, &condition); err != nil {
		return nil, err
	}
	return &CreateConditionOutput{Condition: condition}, nil
}

func (g *httpGateway) UpdateCondition(ctx context.Context, input *UpdateConditionInput) (*UpdateConditionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	body := map[string]ConditionPatch{"condition": input.Patch}
	var condition entities.Condition
	if err := g.do(ctx, http.MethodPatch, fmt.Sprintf("/conditions/%d", input.ID), body, &condition); err != nil {
		return nil, err
	}
	return &UpdateConditionOutput{Condition: condition}, nil
}

func (g *httpGateway) DeleteCondition(ctx context.Context, input *DeleteConditionInput) (*DeleteConditionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if err := g.do(ctx, http.MethodDelete, fmt.Sprintf("/conditions/%d", input.ID), nil, nil); err != nil {
		return nil, err
	}
	return &DeleteConditionOutput{}, nil
}

func (g *httpGateway) ListPlayerConditions(ctx context.Context) (*ListPlayerConditionsOutput, error) {
	var rows []entities.PlayerCondition
	if err := g.do(ctx, http.MethodGet, "/player_conditions", nil, &rows); err != nil {
		return nil, err
	}
	return &ListPlayerConditionsOutput{PlayerConditions: rows}, nil
}

func (g *httpGateway) GetPlayerCondition(
	ctx context.Context,
	input *GetPlayerConditionInput,
) (*GetPlayerConditionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var row entities.PlayerCondition
	if err := g.do(ctx, http.MethodGet, fmt.Sprintf("/player_conditions/%d", input.ID), nil, &row); err != nil {
		return nil, err
	}
	return &GetPlayerConditionOutput{PlayerCondition: row}, nil
}

func (g *httpGateway) CreatePlayerCondition(
	ctx context.Context,
	input *CreatePlayerConditionInput,
) (*CreatePlayerConditionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	body := map[string]PlayerConditionDraft{"player_condition": input.Draft}
	var row entities.PlayerCondition
	if err := g.do(ctx, http.MethodPost, "/player_conditions", body, &row); err != nil {
		return nil, err
	}
	return &CreatePlayerConditionOutput{PlayerCondition: row}, nil
}

func (g *httpGateway) UpdatePlayerCondition(
	ctx context.Context,
	input *UpdatePlayerConditionInput,
) (*UpdatePlayerConditionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	body := map[string]PlayerConditionPatch{"player_condition": input.Patch}
	var row entities.PlayerCondition
	if err := g.do(ctx, http.MethodPatch, fmt.Sprintf("/player_conditions/%d", input.ID), body, &row); err != nil {
		return nil, err
	}
	return &UpdatePlayerConditionOutput{PlayerCondition: row}, nil
}

func (g *httpGateway) DeletePlayerCondition(
	ctx context.Context,
	input *DeletePlayerConditionInput,
) (*DeletePlayerConditionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if err := g.do(ctx, http.MethodDelete, fmt.Sprintf("/player_conditions/%d", input.ID), nil, nil); err != nil {
		return nil, err
	}
	return &DeletePlayerConditionOutput{}, nil
}

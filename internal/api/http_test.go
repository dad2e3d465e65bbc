package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/critfall/dmscreen/internal/api"
	"github.com/critfall/dmscreen/internal/entities"
	"github.com/critfall/dmscreen/internal/errors"
)

type staticTokens struct {
	token string
}

func (s *staticTokens) Token() string { return s.token }

type HTTPGatewayTestSuite struct {
	suite.Suite
	ctx    context.Context
	tokens *staticTokens

	// Captured by the test server per request
	lastMethod string
	lastPath   string
	lastAuth   string
	lastBody   []byte

	respond func(w http.ResponseWriter)

	server  *httptest.Server
	gateway api.Gateway
}

func (s *HTTPGatewayTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.tokens = &staticTokens{token: "tok-123"}
	s.respond = func(w http.ResponseWriter) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lastMethod = r.Method
		s.lastPath = r.URL.Path
		s.lastAuth = r.Header.Get("Authorization")
		s.lastBody, _ = io.ReadAll(r.Body)
		s.respond(w)
	}))

	gateway, err := api.NewHTTP(&api.Config{
		BaseURL: s.server.URL,
		Tokens:  s.tokens,
	})
	s.Require().NoError(err)
	s.gateway = gateway
}

func (s *HTTPGatewayTestSuite) TearDownTest() {
	s.server.Close()
}

func TestHTTPGatewaySuite(t *testing.T) {
	suite.Run(t, new(HTTPGatewayTestSuite))
}

func (s *HTTPGatewayTestSuite) TestConfigValidation() {
	_, err := api.NewHTTP(&api.Config{Tokens: s.tokens})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = api.NewHTTP(&api.Config{BaseURL: "http://example.test"})
	s.Require().Error(err)
}

func (s *HTTPGatewayTestSuite) TestBearerTokenHeader() {
	s.respond = func(w http.ResponseWriter) {
		_, _ = w.Write([]byte(`[]`))
	}

	_, err := s.gateway.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal("Bearer tok-123", s.lastAuth)
	s.Assert().Equal(http.MethodGet, s.lastMethod)
	s.Assert().Equal("/players", s.lastPath)
}

func (s *HTTPGatewayTestSuite) TestEmptyTokenOmitsHeader() {
	s.tokens.token = ""
	s.respond = func(w http.ResponseWriter) {
		_, _ = w.Write([]byte(`{"token":"t","user":{"id":1,"email":"dm@example.com"}}`))
	}

	out, err := s.gateway.Login(s.ctx, &api.LoginInput{Email: "dm@example.com", Password: "x"})
	s.Require().NoError(err)
	s.Assert().Empty(s.lastAuth)
	s.Assert().Equal("t", out.Token)
	s.Assert().Equal("dm@example.com", out.User.Email)
}

func (s *HTTPGatewayTestSuite) TestRegisterWrapsUserAndPostsToUsers() {
	s.tokens.token = ""
	s.respond = func(w http.ResponseWriter) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":9,"email":"new@example.com"}`))
	}

	out, err := s.gateway.Register(s.ctx, &api.RegisterInput{
		Draft: api.UserDraft{
			Email:                "new@example.com",
			Password:             "hunter2",
			PasswordConfirmation: "hunter2",
		},
	})
	s.Require().NoError(err)
	s.Assert().Equal(9, out.User.ID)
	s.Assert().Equal(http.MethodPost, s.lastMethod)
	s.Assert().Equal("/users", s.lastPath)

	var body map[string]api.UserDraft
	s.Require().NoError(json.Unmarshal(s.lastBody, &body))
	s.Require().Contains(body, "user")
	s.Assert().Equal("new@example.com", body["user"].Email)
	s.Assert().Equal("hunter2", body["user"].PasswordConfirmation)
}

func (s *HTTPGatewayTestSuite) TestCreateWrapsEntityUnderSingularName() {
	s.respond = func(w http.ResponseWriter) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":9,"name":"Curse of Strahd","dm_id":1}`))
	}

	out, err := s.gateway.CreateGame(s.ctx, &api.CreateGameInput{
		Draft: api.GameDraft{Name: "Curse of Strahd", DMID: 1},
	})
	s.Require().NoError(err)
	s.Assert().Equal(9, out.Game.ID)

	var body map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(s.lastBody, &body))
	s.Require().Contains(body, "game")

	var draft api.GameDraft
	s.Require().NoError(json.Unmarshal(body["game"], &draft))
	s.Assert().Equal("Curse of Strahd", draft.Name)
	s.Assert().Equal(1, draft.DMID)
}

func (s *HTTPGatewayTestSuite) TestPatchSendsNamedFieldsOnly() {
	s.respond = func(w http.ResponseWriter) {
		_, _ = w.Write([]byte(`{"id":5,"name":"Gimli","displayed":true,"game_id":2,
			"strength":{"score":17,"save":5},"dexterity":{"score":10,"save":0},
			"constitution":{"score":16,"save":4},"intelligence":{"score":8,"save":-1},
			"wisdom":{"score":12,"save":1},"charisma":{"score":9,"save":-1}}`))
	}

	displayed := true
	_, err := s.gateway.UpdatePlayer(s.ctx, &api.UpdatePlayerInput{
		ID:    5,
		Patch: api.PlayerPatch{Displayed: &displayed},
	})
	s.Require().NoError(err)
	s.Assert().Equal(http.MethodPatch, s.lastMethod)
	s.Assert().Equal("/players/5", s.lastPath)

	// The wrapped patch must carry only the displayed field.
	s.Assert().JSONEq(`{"player":{"displayed":true}}`, string(s.lastBody))
}

func (s *HTTPGatewayTestSuite) TestValidationFailureCarriesFieldErrors() {
	s.respond = func(w http.ResponseWriter) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errors":{"condition_length":["must be greater than or equal to 0"]}}`))
	}

	_, err := s.gateway.CreatePlayerCondition(s.ctx, &api.CreatePlayerConditionInput{
		Draft: api.PlayerConditionDraft{PlayerID: 7, ConditionID: 3, ConditionLength: -1},
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	fields := errors.FieldErrors(err)
	s.Require().NotNil(fields)
	s.Assert().Equal([]string{"must be greater than or equal to 0"}, fields["condition_length"])
}

func (s *HTTPGatewayTestSuite) TestUnauthorizedMapsToUnauthenticated() {
	s.respond = func(w http.ResponseWriter) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"token expired"}`))
	}

	_, err := s.gateway.ListMonsters(s.ctx)
	s.Require().Error(err)
	s.Assert().True(errors.IsUnauthenticated(err))
	s.Assert().Equal("token expired", errors.GetMessage(err))
}

func (s *HTTPGatewayTestSuite) TestTransportFailureMapsToUnavailable() {
	s.server.Close()

	_, err := s.gateway.ListGames(s.ctx)
	s.Require().Error(err)
	s.Assert().True(errors.IsUnavailable(err))
}

func (s *HTTPGatewayTestSuite) TestListDecodesBareArray() {
	s.respond = func(w http.ResponseWriter) {
		_, _ = w.Write([]byte(`[{"id":1,"name":"Poisoned"},{"id":2,"name":"None"}]`))
	}

	out, err := s.gateway.ListConditions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(out.Conditions, 2)
	s.Assert().Equal(entities.Condition{ID: 1, Name: "Poisoned"}, out.Conditions[0])
}

func (s *HTTPGatewayTestSuite) TestDeleteHitsResourcePath() {
	s.respond = func(w http.ResponseWriter) {
		w.WriteHeader(http.StatusNoContent)
	}

	_, err := s.gateway.DeletePlayerCondition(s.ctx, &api.DeletePlayerConditionInput{ID: 14})
	s.Require().NoError(err)
	s.Assert().Equal(http.MethodDelete, s.lastMethod)
	s.Assert().Equal("/player_conditions/14", s.lastPath)
}

func (s *HTTPGatewayTestSuite) TestCurrentUserUnwrapsUser() {
	s.respond = func(w http.ResponseWriter) {
		_, _ = w.Write([]byte(`{"user":{"id":4,"email":"dm@example.com"}}`))
	}

	out, err := s.gateway.CurrentUser(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(4, out.User.ID)
}

package campaign_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/critfall/dmscreen/internal/api"
	apimock "github.com/critfall/dmscreen/internal/api/mock"
	"github.com/critfall/dmscreen/internal/entities"
	"github.com/critfall/dmscreen/internal/errors"
	"github.com/critfall/dmscreen/internal/orchestrators/campaign"
	"github.com/critfall/dmscreen/internal/repositories/tokens"
	tokensmock "github.com/critfall/dmscreen/internal/repositories/tokens/mock"
	"github.com/critfall/dmscreen/internal/store"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	gateway      *apimock.MockGateway
	tokenRepo    *tokensmock.MockRepository
	store        *store.Store
	orchestrator campaign.Service
	ctx          context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.gateway = apimock.NewMockGateway(s.ctrl)
	s.tokenRepo = tokensmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	st, err := store.New(&store.Config{
		Gateway: s.gateway,
		Tokens:  &api.TokenHolder{},
	})
	s.Require().NoError(err)
	s.store = st

	s.orchestrator, err = campaign.NewOrchestrator(&campaign.Config{
		Store:     s.store,
		TokenRepo: s.tokenRepo,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// expectPreload wires the five parallel bootstrap fetches with empty
// responses; individual tests override single slices as needed.
func (s *OrchestratorTestSuite) expectPreload() {
	s.gateway.EXPECT().ListGames(gomock.Any()).Return(&api.ListGamesOutput{}, nil)
	s.gateway.EXPECT().ListPlayers(gomock.Any()).Return(&api.ListPlayersOutput{}, nil)
	s.gateway.EXPECT().ListMonsters(gomock.Any()).Return(&api.ListMonstersOutput{}, nil)
	s.gateway.EXPECT().ListConditions(gomock.Any()).Return(&api.ListConditionsOutput{}, nil)
	s.gateway.EXPECT().ListPlayerConditions(gomock.Any()).Return(&api.ListPlayerConditionsOutput{}, nil)
}

func (s *OrchestratorTestSuite) TestConfig_Validation() {
	_, err := campaign.NewOrchestrator(&campaign.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRegister() {
	s.gateway.EXPECT().
		Register(gomock.Any(), &api.RegisterInput{Draft: api.UserDraft{
			Email:                "new@example.com",
			Password:             "hunter2",
			PasswordConfirmation: "hunter2",
		}}).
		Return(&api.RegisterOutput{User: entities.User{ID: 9, Email: "new@example.com"}}, nil)

	out, err := s.orchestrator.Register(s.ctx, &campaign.RegisterInput{
		Email:                "new@example.com",
		Password:             "hunter2",
		PasswordConfirmation: "hunter2",
	})
	s.Require().NoError(err)
	s.Equal(9, out.User.ID)

	// Creating the account does not log it in.
	s.False(s.store.IsAuthenticated())
}

func (s *OrchestratorTestSuite) TestRegister_ValidatesInput() {
	// No gateway expectation: invalid input must never reach the server.
	_, err := s.orchestrator.Register(s.ctx, &campaign.RegisterInput{
		Password:             "hunter2",
		PasswordConfirmation: "different",
	})
	s.Require().Error(err)

	fields := errors.FieldErrors(err)
	s.Contains(fields, "email")
	s.Contains(fields, "password_confirmation")
}

func (s *OrchestratorTestSuite) TestBeginSession() {
	s.gateway.EXPECT().
		Login(gomock.Any(), &api.LoginInput{Email: "dm@example.com", Password: "hunter2"}).
		Return(&api.LoginOutput{Token: "tok-abc", User: entities.User{ID: 7, Email: "dm@example.com"}}, nil)
	s.expectPreload()
	s.tokenRepo.EXPECT().
		Save(gomock.Any(), tokens.SaveInput{Profile: "default", Token: "tok-abc"}).
		Return(&tokens.SaveOutput{}, nil)

	out, err := s.orchestrator.BeginSession(s.ctx, &campaign.BeginSessionInput{
		Email:    "dm@example.com",
		Password: "hunter2",
	})
	s.Require().NoError(err)
	s.Equal(7, out.User.ID)
	s.Empty(out.Warnings)
	s.True(s.store.IsAuthenticated())
}

func (s *OrchestratorTestSuite) TestBeginSession_ValidatesCredentials() {
	out, err := s.orchestrator.BeginSession(s.ctx, &campaign.BeginSessionInput{})
	s.Require().Error(err)
	s.Nil(out)

	fields := errors.FieldErrors(err)
	s.Contains(fields, "email")
	s.Contains(fields, "password")
}

func (s *OrchestratorTestSuite) TestBeginSession_PartialPreloadIsWarning() {
	s.gateway.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(&api.LoginOutput{Token: "tok-abc", User: entities.User{ID: 7}}, nil)
	s.gateway.EXPECT().ListGames(gomock.Any()).Return(&api.ListGamesOutput{}, nil)
	s.gateway.EXPECT().ListPlayers(gomock.Any()).Return(&api.ListPlayersOutput{}, nil)
	s.gateway.EXPECT().ListMonsters(gomock.Any()).Return(nil, errors.Unavailable("no response from server"))
	s.gateway.EXPECT().ListConditions(gomock.Any()).Return(&api.ListConditionsOutput{}, nil)
	s.gateway.EXPECT().ListPlayerConditions(gomock.Any()).Return(&api.ListPlayerConditionsOutput{}, nil)
	s.tokenRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(&tokens.SaveOutput{}, nil)

	out, err := s.orchestrator.BeginSession(s.ctx, &campaign.BeginSessionInput{
		Email:    "dm@example.com",
		Password: "hunter2",
	})
	s.Require().NoError(err)
	s.Equal([]string{"monsters"}, out.Warnings)
}

func (s *OrchestratorTestSuite) TestBeginSession_TokenSaveFailureIsWarning() {
	s.gateway.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(&api.LoginOutput{Token: "tok-abc", User: entities.User{ID: 7}}, nil)
	s.expectPreload()
	s.tokenRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	out, err := s.orchestrator.BeginSession(s.ctx, &campaign.BeginSessionInput{
		Email:    "dm@example.com",
		Password: "hunter2",
	})
	s.Require().NoError(err)
	s.Contains(out.Warnings, "token persistence")
	s.True(s.store.IsAuthenticated())
}

func (s *OrchestratorTestSuite) TestBeginSession_LoginFailure() {
	s.gateway.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unauthenticated("bad credentials"))

	_, err := s.orchestrator.BeginSession(s.ctx, &campaign.BeginSessionInput{
		Email:    "dm@example.com",
		Password: "wrong",
	})
	s.Require().Error(err)
	s.True(errors.IsUnauthenticated(err))
	s.False(s.store.IsAuthenticated())
}

func (s *OrchestratorTestSuite) TestResume() {
	s.tokenRepo.EXPECT().
		Load(gomock.Any(), tokens.LoadInput{Profile: "default"}).
		Return(&tokens.LoadOutput{Session: &tokens.Session{Profile: "default", Token: "tok-abc"}}, nil)
	s.gateway.EXPECT().
		CurrentUser(gomock.Any()).
		Return(&api.CurrentUserOutput{User: entities.User{ID: 7, Email: "dm@example.com"}}, nil)
	s.expectPreload()

	out, err := s.orchestrator.Resume(s.ctx, &campaign.ResumeInput{})
	s.Require().NoError(err)
	s.Equal("dm@example.com", out.User.Email)
	s.True(s.store.IsAuthenticated())
	s.Equal("tok-abc", s.store.Token())
}

func (s *OrchestratorTestSuite) TestResume_NoPersistedSession() {
	s.tokenRepo.EXPECT().
		Load(gomock.Any(), tokens.LoadInput{Profile: "default"}).
		Return(nil, errors.NotFound("no persisted session"))

	_, err := s.orchestrator.Resume(s.ctx, &campaign.ResumeInput{})
	s.Require().Error(err)
	s.True(errors.IsUnauthenticated(err))
}

func (s *OrchestratorTestSuite) TestResume_RevokedTokenIsCleared() {
	s.tokenRepo.EXPECT().
		Load(gomock.Any(), tokens.LoadInput{Profile: "default"}).
		Return(&tokens.LoadOutput{Session: &tokens.Session{Profile: "default", Token: "tok-stale"}}, nil)
	s.gateway.EXPECT().
		CurrentUser(gomock.Any()).
		Return(nil, errors.Unauthenticated("token expired"))
	s.tokenRepo.EXPECT().
		Clear(gomock.Any(), tokens.ClearInput{Profile: "default"}).
		Return(&tokens.ClearOutput{Cleared: true}, nil)

	_, err := s.orchestrator.Resume(s.ctx, &campaign.ResumeInput{})
	s.Require().Error(err)
	s.True(errors.IsUnauthenticated(err))
	s.False(s.store.IsAuthenticated())
}

func (s *OrchestratorTestSuite) TestEndSession() {
	s.store.InstallToken("tok-abc")
	s.gateway.EXPECT().Logout(gomock.Any()).Return(nil)
	s.tokenRepo.EXPECT().
		Clear(gomock.Any(), tokens.ClearInput{Profile: "default"}).
		Return(&tokens.ClearOutput{Cleared: true}, nil)

	out, err := s.orchestrator.EndSession(s.ctx, &campaign.EndSessionInput{})
	s.Require().NoError(err)
	s.True(out.TokenCleared)
	s.False(s.store.IsAuthenticated())
}

func (s *OrchestratorTestSuite) TestEndSession_ClearsTokenEvenOnServerError() {
	s.store.InstallToken("tok-abc")
	s.gateway.EXPECT().Logout(gomock.Any()).Return(errors.Internal("boom"))
	s.tokenRepo.EXPECT().
		Clear(gomock.Any(), tokens.ClearInput{Profile: "default"}).
		Return(&tokens.ClearOutput{Cleared: true}, nil)

	_, err := s.orchestrator.EndSession(s.ctx, &campaign.EndSessionInput{})
	s.Require().Error(err)
	s.False(s.store.IsAuthenticated())
}

func (s *OrchestratorTestSuite) seedCatalog(conditions ...entities.Condition) {
	s.store.InstallToken("tok-abc")
	s.gateway.EXPECT().
		ListConditions(gomock.Any()).
		Return(&api.ListConditionsOutput{Conditions: conditions}, nil)
	_, err := s.store.FetchConditions(s.ctx)
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestApplyCondition() {
	s.seedCatalog(entities.Condition{ID: 2, Name: "Poisoned"})

	draft := api.PlayerConditionDraft{PlayerID: 5, ConditionID: 2, ConditionLength: 3}
	s.gateway.EXPECT().
		CreatePlayerCondition(gomock.Any(), &api.CreatePlayerConditionInput{Draft: draft}).
		Return(&api.CreatePlayerConditionOutput{
			PlayerCondition: entities.PlayerCondition{ID: 11, PlayerID: 5, ConditionID: 2, ConditionLength: 3},
		}, nil)

	out, err := s.orchestrator.ApplyCondition(s.ctx, &campaign.ApplyConditionInput{
		PlayerID:        5,
		ConditionID:     2,
		ConditionLength: 3,
	})
	s.Require().NoError(err)
	s.Equal(11, out.PlayerCondition.ID)
}

func (s *OrchestratorTestSuite) TestApplyCondition_ValidatesBeforeNetwork() {
	// No gateway expectation: invalid input must never reach the server.
	_, err := s.orchestrator.ApplyCondition(s.ctx, &campaign.ApplyConditionInput{
		PlayerID:        0,
		ConditionID:     -1,
		ConditionLength: -1,
	})
	s.Require().Error(err)

	fields := errors.FieldErrors(err)
	s.Contains(fields, "player_id")
	s.Contains(fields, "condition_id")
	s.Contains(fields, "condition_length")
}

func (s *OrchestratorTestSuite) TestApplyCondition_AllowsZeroLength() {
	s.seedCatalog(entities.Condition{ID: 2, Name: "Poisoned"})

	// An already-expired row is legal; decrement floors at zero anyway.
	draft := api.PlayerConditionDraft{PlayerID: 5, ConditionID: 2, ConditionLength: 0}
	s.gateway.EXPECT().
		CreatePlayerCondition(gomock.Any(), &api.CreatePlayerConditionInput{Draft: draft}).
		Return(&api.CreatePlayerConditionOutput{
			PlayerCondition: entities.PlayerCondition{ID: 12, PlayerID: 5, ConditionID: 2},
		}, nil)

	out, err := s.orchestrator.ApplyCondition(s.ctx, &campaign.ApplyConditionInput{
		PlayerID:    5,
		ConditionID: 2,
	})
	s.Require().NoError(err)
	s.Equal(12, out.PlayerCondition.ID)
}

func (s *OrchestratorTestSuite) TestApplyCondition_RejectsSentinel() {
	s.seedCatalog(entities.Condition{ID: 1, Name: "None"})

	_, err := s.orchestrator.ApplyCondition(s.ctx, &campaign.ApplyConditionInput{
		PlayerID:        5,
		ConditionID:     1,
		ConditionLength: 3,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAdvanceRound() {
	s.store.InstallToken("tok-abc")
	s.gateway.EXPECT().
		ListPlayerConditions(gomock.Any()).
		Return(&api.ListPlayerConditionsOutput{PlayerConditions: []entities.PlayerCondition{
			{ID: 1, PlayerID: 5, ConditionLength: 2},
			{ID: 2, PlayerID: 5, ConditionLength: 1},
		}}, nil)
	_, err := s.store.FetchPlayerConditions(s.ctx)
	s.Require().NoError(err)

	out, err := s.orchestrator.AdvanceRound(s.ctx, &campaign.AdvanceRoundInput{})
	s.Require().NoError(err)
	s.Equal(1, out.Round)
	s.Equal(1, out.ActiveConditions)

	out, err = s.orchestrator.AdvanceRound(s.ctx, &campaign.AdvanceRoundInput{})
	s.Require().NoError(err)
	s.Equal(2, out.Round)
	s.Equal(0, out.ActiveConditions)
}

func (s *OrchestratorTestSuite) TestDeleteGame_ReportsOrphans() {
	s.store.InstallToken("tok-abc")
	s.gateway.EXPECT().
		ListPlayers(gomock.Any()).
		Return(&api.ListPlayersOutput{Players: []entities.Player{
			{ID: 1, GameID: 4},
			{ID: 2, GameID: 7},
		}}, nil)
	_, err := s.store.FetchPlayers(s.ctx)
	s.Require().NoError(err)

	s.gateway.EXPECT().
		DeleteGame(gomock.Any(), &api.DeleteGameInput{ID: 4}).
		Return(&api.DeleteGameOutput{}, nil)

	out, err := s.orchestrator.DeleteGame(s.ctx, &campaign.DeleteGameInput{ID: 4})
	s.Require().NoError(err)
	s.Equal(1, out.OrphanedPlayers)
	s.Equal(0, out.OrphanedMonsters)

	// The orphan keeps its dangling game_id; nothing rewrites it.
	s.Equal(4, s.store.PlayersOfGame(4)[0].GameID)
}

func (s *OrchestratorTestSuite) TestDeletePlayer_DetachesConditionRows() {
	s.store.InstallToken("tok-abc")
	s.gateway.EXPECT().
		ListPlayerConditions(gomock.Any()).
		Return(&api.ListPlayerConditionsOutput{PlayerConditions: []entities.PlayerCondition{
			{ID: 1, PlayerID: 5, ConditionID: 2},
			{ID: 2, PlayerID: 6, ConditionID: 2},
		}}, nil)
	_, err := s.store.FetchPlayerConditions(s.ctx)
	s.Require().NoError(err)

	s.gateway.EXPECT().
		DeletePlayer(gomock.Any(), &api.DeletePlayerInput{ID: 5}).
		Return(&api.DeletePlayerOutput{}, nil)

	_, err = s.orchestrator.DeletePlayer(s.ctx, &campaign.DeletePlayerInput{ID: 5})
	s.Require().NoError(err)

	rows := s.store.PlayerConditions()
	s.Require().Len(rows, 1)
	s.Equal(6, rows[0].PlayerID)
}

func (s *OrchestratorTestSuite) TestDeleteCondition_DetachesRows() {
	s.seedCatalog(
		entities.Condition{ID: 1, Name: "None"},
		entities.Condition{ID: 2, Name: "Poisoned"},
	)
	s.gateway.EXPECT().
		ListPlayerConditions(gomock.Any()).
		Return(&api.ListPlayerConditionsOutput{PlayerConditions: []entities.PlayerCondition{
			{ID: 1, PlayerID: 5, ConditionID: 2},
		}}, nil)
	_, err := s.store.FetchPlayerConditions(s.ctx)
	s.Require().NoError(err)

	s.gateway.EXPECT().
		DeleteCondition(gomock.Any(), &api.DeleteConditionInput{ID: 2}).
		Return(&api.DeleteConditionOutput{}, nil)

	_, err = s.orchestrator.DeleteCondition(s.ctx, &campaign.DeleteConditionInput{ID: 2})
	s.Require().NoError(err)
	s.Empty(s.store.PlayerConditions())
}

func (s *OrchestratorTestSuite) TestDeleteCondition_RejectsSentinel() {
	s.seedCatalog(entities.Condition{ID: 1, Name: "None"})

	_, err := s.orchestrator.DeleteCondition(s.ctx, &campaign.DeleteConditionInput{ID: 1})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

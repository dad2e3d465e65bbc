package store_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/critfall/dmscreen/internal/api"
	"github.com/critfall/dmscreen/internal/entities"
	"github.com/critfall/dmscreen/internal/errors"
	"github.com/critfall/dmscreen/internal/store"
)

type PlayersTestSuite struct {
	storeSuite
}

func (s *PlayersTestSuite) SetupTest() {
	s.storeSuite.SetupTest()
	s.authenticate()
}

func (s *PlayersTestSuite) seedPlayers(players ...entities.Player) {
	s.gateway.EXPECT().
		ListPlayers(s.ctx).
		Return(&api.ListPlayersOutput{Players: players}, nil)
	_, err := s.store.FetchPlayers(s.ctx)
	s.Require().NoError(err)
}

func (s *PlayersTestSuite) TestFetchPlayers_ReplacesList() {
	s.seedPlayers(entities.Player{ID: 1, Character: "Mordai"})

	s.gateway.EXPECT().
		ListPlayers(s.ctx).
		Return(&api.ListPlayersOutput{Players: []entities.Player{
			{ID: 2, Character: "Sariel"},
			{ID: 3, Character: "Grum"},
		}}, nil)

	players, err := s.store.FetchPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 2)

	// A refetch is a replacement, not a merge: player 1 is gone.
	loaded := s.store.Players()
	s.Len(loaded, 2)
	s.Equal(2, loaded[0].ID)
	s.Equal(store.StatusSucceeded, s.store.PlayersView().Status)
}

func (s *PlayersTestSuite) TestFetchPlayer_FillsDetailOnly() {
	s.seedPlayers(entities.Player{ID: 1, Character: "Mordai", CurrentHP: 20})

	s.gateway.EXPECT().
		GetPlayer(s.ctx, &api.GetPlayerInput{ID: 9}).
		Return(&api.GetPlayerOutput{Player: entities.Player{ID: 9, Character: "Vex"}}, nil)

	player, err := s.store.FetchPlayer(s.ctx, 9)
	s.Require().NoError(err)
	s.Equal("Vex", player.Character)

	// The list is untouched; the detail singleton is independent of it.
	s.Len(s.store.Players(), 1)
	detail, ok := s.store.CurrentPlayer()
	s.Require().True(ok)
	s.Equal(9, detail.ID)
}

func (s *PlayersTestSuite) TestCreatePlayer_AppendsServerRecord() {
	s.seedPlayers(entities.Player{ID: 1})

	draft := api.PlayerDraft{Character: "Vex", Level: 3, GameID: 4}
	s.gateway.EXPECT().
		CreatePlayer(s.ctx, &api.CreatePlayerInput{Draft: draft}).
		Return(&api.CreatePlayerOutput{Player: entities.Player{ID: 42, Character: "Vex", Level: 3, GameID: 4}}, nil)

	created, err := s.store.CreatePlayer(s.ctx, draft)
	s.Require().NoError(err)
	s.Equal(42, created.ID)

	loaded := s.store.Players()
	s.Len(loaded, 2)
	s.Equal(42, loaded[1].ID)
}

func (s *PlayersTestSuite) TestUpdatePlayer_MergesListAndDetail() {
	s.seedPlayers(entities.Player{ID: 5, Character: "Grum", CurrentHP: 20})
	s.Require().NoError(s.store.SetCurrentPlayer(5))

	hp := 12
	s.gateway.EXPECT().
		UpdatePlayer(s.ctx, &api.UpdatePlayerInput{ID: 5, Patch: api.PlayerPatch{CurrentHP: &hp}}).
		Return(&api.UpdatePlayerOutput{Player: entities.Player{ID: 5, Character: "Grum", CurrentHP: 12}}, nil)

	updated, err := s.store.UpdatePlayer(s.ctx, 5, api.PlayerPatch{CurrentHP: &hp})
	s.Require().NoError(err)
	s.Equal(12, updated.CurrentHP)

	s.Equal(12, s.store.Players()[0].CurrentHP)
	detail, ok := s.store.CurrentPlayer()
	s.Require().True(ok)
	s.Equal(12, detail.CurrentHP)
}

func (s *PlayersTestSuite) TestUpdatePlayer_FailureKeepsCommittedData() {
	s.seedPlayers(entities.Player{ID: 5, CurrentHP: 20})

	hp := 12
	s.gateway.EXPECT().
		UpdatePlayer(s.ctx, &api.UpdatePlayerInput{ID: 5, Patch: api.PlayerPatch{CurrentHP: &hp}}).
		Return(nil, errors.Unavailable("no response from server"))

	_, err := s.store.UpdatePlayer(s.ctx, 5, api.PlayerPatch{CurrentHP: &hp})
	s.Require().Error(err)

	// No rollback needed because nothing was applied optimistically.
	s.Equal(20, s.store.Players()[0].CurrentHP)
	view := s.store.PlayersView()
	s.Equal(store.StatusFailed, view.Status)
	s.NotNil(view.Err)
}

func (s *PlayersTestSuite) TestDeletePlayer_RemovesRecordAndDetail() {
	s.seedPlayers(entities.Player{ID: 5}, entities.Player{ID: 6})
	s.Require().NoError(s.store.SetCurrentPlayer(5))

	s.gateway.EXPECT().
		DeletePlayer(s.ctx, &api.DeletePlayerInput{ID: 5}).
		Return(&api.DeletePlayerOutput{}, nil)

	s.Require().NoError(s.store.DeletePlayer(s.ctx, 5))

	loaded := s.store.Players()
	s.Len(loaded, 1)
	s.Equal(6, loaded[0].ID)
	_, ok := s.store.CurrentPlayer()
	s.False(ok)
}

func (s *PlayersTestSuite) TestTogglePlayerDisplay_ComposesPatchFromLocalState() {
	s.seedPlayers(entities.Player{ID: 5, Displayed: false})

	displayed := true
	s.gateway.EXPECT().
		UpdatePlayer(s.ctx, &api.UpdatePlayerInput{ID: 5, Patch: api.PlayerPatch{Displayed: &displayed}}).
		Return(&api.UpdatePlayerOutput{Player: entities.Player{ID: 5, Displayed: true}}, nil)

	updated, err := s.store.TogglePlayerDisplay(s.ctx, 5)
	s.Require().NoError(err)
	s.True(updated.Displayed)
	s.True(s.store.Players()[0].Displayed)
}

func (s *PlayersTestSuite) TestTogglePlayerDisplay_IsInvolutive() {
	s.seedPlayers(entities.Player{ID: 5, Displayed: false})

	on, off := true, false
	s.gateway.EXPECT().
		UpdatePlayer(s.ctx, &api.UpdatePlayerInput{ID: 5, Patch: api.PlayerPatch{Displayed: &on}}).
		Return(&api.UpdatePlayerOutput{Player: entities.Player{ID: 5, Displayed: true}}, nil)
	s.gateway.EXPECT().
		UpdatePlayer(s.ctx, &api.UpdatePlayerInput{ID: 5, Patch: api.PlayerPatch{Displayed: &off}}).
		Return(&api.UpdatePlayerOutput{Player: entities.Player{ID: 5, Displayed: false}}, nil)

	_, err := s.store.TogglePlayerDisplay(s.ctx, 5)
	s.Require().NoError(err)
	_, err = s.store.TogglePlayerDisplay(s.ctx, 5)
	s.Require().NoError(err)

	s.False(s.store.Players()[0].Displayed)
}

func (s *PlayersTestSuite) TestTogglePlayerDisplay_NotLoaded() {
	// No gateway expectation: the toggle needs local state to compose the
	// patch and must fail before any request.
	_, err := s.store.TogglePlayerDisplay(s.ctx, 99)
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *PlayersTestSuite) TestSetPlayerHP_ValueIsNotClamped() {
	s.seedPlayers(entities.Player{ID: 5, CurrentHP: 3, TotalHP: 30})

	hp := -5
	s.gateway.EXPECT().
		UpdatePlayer(s.ctx, &api.UpdatePlayerInput{ID: 5, Patch: api.PlayerPatch{CurrentHP: &hp}}).
		Return(&api.UpdatePlayerOutput{Player: entities.Player{ID: 5, CurrentHP: -5, TotalHP: 30}}, nil)

	updated, err := s.store.SetPlayerHP(s.ctx, 5, -5)
	s.Require().NoError(err)
	s.Equal(-5, updated.CurrentHP)
}

func (s *PlayersTestSuite) TestConcurrentUpdates_LastResponseWins() {
	s.seedPlayers(entities.Player{ID: 5, CurrentHP: 20})

	firstEntered := make(chan struct{})
	releaseFirst := make(chan struct{})

	// Two updates race: the hp=10 request is dispatched first but its
	// response is held until after the hp=3 response lands. The store
	// applies completions in arrival order, so hp=10 wins.
	s.gateway.EXPECT().
		UpdatePlayer(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *api.UpdatePlayerInput) (*api.UpdatePlayerOutput, error) {
			if *input.Patch.CurrentHP == 10 {
				close(firstEntered)
				<-releaseFirst
			}
			return &api.UpdatePlayerOutput{
				Player: entities.Player{ID: 5, CurrentHP: *input.Patch.CurrentHP},
			}, nil
		}).
		Times(2)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := s.store.SetPlayerHP(s.ctx, 5, 10)
		s.NoError(err)
	}()

	<-firstEntered
	_, err := s.store.SetPlayerHP(s.ctx, 5, 3)
	s.Require().NoError(err)

	close(releaseFirst)
	wg.Wait()

	s.Equal(10, s.store.Players()[0].CurrentHP)
	s.Equal(store.StatusSucceeded, s.store.PlayersView().Status)
}

func (s *PlayersTestSuite) TestSetCurrentPlayer_CopiesFromList() {
	s.seedPlayers(entities.Player{ID: 5, Character: "Grum"})

	s.Require().NoError(s.store.SetCurrentPlayer(5))
	detail, ok := s.store.CurrentPlayer()
	s.Require().True(ok)
	s.Equal("Grum", detail.Character)

	s.store.ClearCurrentPlayer()
	_, ok = s.store.CurrentPlayer()
	s.False(ok)
}

func (s *PlayersTestSuite) TestClearPlayersError() {
	s.gateway.EXPECT().
		ListPlayers(s.ctx).
		Return(nil, errors.Internal("boom"))
	_, err := s.store.FetchPlayers(s.ctx)
	s.Require().Error(err)
	s.NotNil(s.store.PlayersView().Err)

	s.store.ClearPlayersError()
	s.Nil(s.store.PlayersView().Err)
	s.Equal(store.StatusFailed, s.store.PlayersView().Status)
}

func TestPlayersSuite(t *testing.T) {
	suite.Run(t, new(PlayersTestSuite))
}

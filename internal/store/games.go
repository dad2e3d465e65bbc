package store

import (
	"context"

	"github.com/critfall/dmscreen/internal/api"
	"github.com/critfall/dmscreen/internal/entities"
	"github.com/critfall/dmscreen/internal/errors"
)

// gamesState is the game slice. The server scopes the list to the
// authenticated DM; the client never filters by dm_id itself.
type gamesState struct {
	lifecycle
	list    []entities.Game
	current *entities.Game
}

func findGameIndex(list []entities.Game, id int) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

// FetchGames replaces the game collection with the DM's list
func (s *Store) FetchGames(ctx context.Context) ([]entities.Game, error) {
	reqID, err := s.beginProtected(ctx, &s.games.lifecycle, "games.fetch_all")
	if err != nil {
		return nil, err
	}

	out, gerr := s.gateway.ListGames(ctx)

	err = s.settle(ctx, &s.games.lifecycle, "games.fetch_all", reqID, gerr, func() {
		s.games.list = out.Games
	})
	if err != nil {
		return nil, err
	}
	return append([]entities.Game(nil), out.Games...), nil
}

// FetchGame fetches one game into the detail singleton
func (s *Store) FetchGame(ctx context.Context, id int) (*entities.Game, error) {
	reqID, err := s.beginProtected(ctx, &s.games.lifecycle, "games.fetch_one")
	if err != nil {
		return nil, err
	}

	out, gerr := s.gateway.GetGame(ctx, &api.GetGameInput{ID: id})

	var game entities.Game
	err = s.settle(ctx, &s.games.lifecycle, "games.fetch_one", reqID, gerr, func() {
		game = out.Game
		s.games.current = &game
	})
	if err != nil {
		return nil, err
	}
	result := game
	return &result, nil
}

// CreateGame posts the draft and appends the server-assigned record
func (s *Store) CreateGame(ctx context.Context, draft api.GameDraft) (*entities.Game, error) {
	reqID, err := s.beginProtected(ctx, &s.games.lifecycle, "games.create")
	if err != nil {
		return nil, err
	}

	out, gerr := s.gateway.CreateGame(ctx, &api.CreateGameInput{Draft: draft})

	var game entities.Game
	err = s.settle(ctx, &s.games.lifecycle, "games.create", reqID, gerr, func() {
		game = out.Game
		s.games.list = append(s.games.list, game)
	})
	if err != nil {
		return nil, err
	}
	result := game
	return &result, nil
}

// UpdateGame patches named fields only and merges the returned record
func (s *Store) UpdateGame(ctx context.Context, id int, patch api.GamePatch) (*entities.Game, error) {
	reqID, err := s.beginProtected(ctx, &s.games.lifecycle, "games.update")
	if err != nil {
		return nil, err
	}

	out, gerr := s.gateway.UpdateGame(ctx, &api.UpdateGameInput{ID: id, Patch: patch})

	var game entities.Game
	err = s.settle(ctx, &s.games.lifecycle, "games.update", reqID, gerr, func() {
		game = out.Game
		if i := findGameIndex(s.games.list, game.ID); i != -1 {
			s.games.list[i] = game
		}
		if s.games.current != nil && s.games.current.ID == game.ID {
			detail := game
			s.games.current = &detail
		}
	})
	if err != nil {
		return nil, err
	}
	result := game
	return &result, nil
}

// DeleteGame removes the record by id. Players and monsters that
// referenced it keep their dangling game_id; see the coordinator.
func (s *Store) DeleteGame(ctx context.Context, id int) error {
	reqID, err := s.beginProtected(ctx, &s.games.lifecycle, "games.delete")
	if err != nil {
		return err
	}

	_, gerr := s.gateway.DeleteGame(ctx, &api.DeleteGameInput{ID: id})

	return s.settle(ctx, &s.games.lifecycle, "games.delete", reqID, gerr, func() {
		if i := findGameIndex(s.games.list, id); i != -1 {
			s.games.list = append(s.games.list[:i], s.games.list[i+1:]...)
		}
		if s.games.current != nil && s.games.current.ID == id {
			s.games.current = nil
		}
	})
}

// SetCurrentGame copies a loaded record into the detail singleton
// (local, no network)
func (s *Store) SetCurrentGame(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := findGameIndex(s.games.list, id)
	if i == -1 {
		return errors.NotFoundf("game %d is not loaded", id)
	}
	detail := s.games.list[i]
	s.games.current = &detail
	return nil
}

// ClearCurrentGame drops the detail singleton (local, no network)
func (s *Store) ClearCurrentGame() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games.current = nil
}

// ClearGamesError resets the captured error (local, no network)
func (s *Store) ClearGamesError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games.clearError()
}

package store

import (
	"context"

	"github.com/critfall/dmscreen/internal/api"
	"github.com/critfall/dmscreen/internal/entities"
	"github.com/critfall/dmscreen/internal/errors"
)

// playersState is the player slice: the full list plus the detail
// singleton. The detail view is deliberately separate from the list so a
// detail page never needs the full list loaded.
type playersState struct {
	lifecycle
	list    []entities.Player
	current *entities.Player
}

func findPlayerIndex(list []entities.Player, id int) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

// FetchPlayers replaces the entire player collection with the server's list
func (s *Store) FetchPlayers(ctx context.Context) ([]entities.Player, error) {
	reqID, err := s.beginProtected(ctx, &s.players.lifecycle, "players.fetch_all")
	if err != nil {
		return nil, err
	}

	out, gerr := s.gateway.ListPlayers(ctx)

	err = s.settle(ctx, &s.players.lifecycle, "players.fetch_all", reqID, gerr, func() {
		s.players.list = out.Players
	})
	if err != nil {
		return nil, err
	}
	return append([]entities.Player(nil), out.Players...), nil
}

// FetchPlayer fetches one player and replaces the detail singleton with it.
// The list is left alone.
func (s *Store) FetchPlayer(ctx context.Context, id int) (*entities.Player, error) {
	reqID, err := s.beginProtected(ctx, &s.players.lifecycle, "players.fetch_one")
	if err != nil {
		return nil, err
	}

	out, gerr := s.gateway.GetPlayer(ctx, &api.GetPlayerInput{ID: id})

	var player entities.Player
	err = s.settle(ctx, &s.players.lifecycle, "players.fetch_one", reqID, gerr, func() {
		player = out.Player
		s.players.current = &player
	})
	if err != nil {
		return nil, err
	}
	result := player
	return &result, nil
}

// CreatePlayer posts the draft and appends the server-assigned record
func (s *Store) CreatePlayer(ctx context.Context, draft api.PlayerDraft) (*entities.Player, error) {
	reqID, err := s.beginProtected(ctx, &s.players.lifecycle, "players.create")
	if err != nil {
		return nil, err
	}

	out, gerr := s.gateway.CreatePlayer(ctx, &api.CreatePlayerInput{Draft: draft})

	var player entities.Player
	err = s.settle(ctx, &s.players.lifecycle, "players.create", reqID, gerr, func() {
		player = out.Player
		s.players.list = append(s.players.list, player)
	})
	if err != nil {
		return nil, err
	}
	result := player
	return &result, nil
}

// UpdatePlayer patches named fields only and replaces the one matching
// record in the list and, if it matches, the detail singleton
func (s *Store) UpdatePlayer(ctx context.Context, id int, patch api.PlayerPatch) (*entities.Player, error) {
	reqID, err := s.beginProtected(ctx, &s.players.lifecycle, "players.update")
	if err != nil {
		return nil, err
	}

	out, gerr := s.gateway.UpdatePlayer(ctx, &api.UpdatePlayerInput{ID: id, Patch: patch})

	var player entities.Player
	err = s.settle(ctx, &s.players.lifecycle, "players.update", reqID, gerr, func() {
		player = out.Player
		if i := findPlayerIndex(s.players.list, player.ID); i != -1 {
			s.players.list[i] = player
		}
		if s.players.current != nil && s.players.current.ID == player.ID {
			detail := player
			s.players.current = &detail
		}
	})
	if err != nil {
		return nil, err
	}
	result := player
	return &result, nil
}

// DeletePlayer removes the record by id and clears a matching detail
// singleton. Detaching dependent condition rows is the coordinator's job.
func (s *Store) DeletePlayer(ctx context.Context, id int) error {
	reqID, err := s.beginProtected(ctx, &s.players.lifecycle, "players.delete")
	if err != nil {
		return err
	}

	_, gerr := s.gateway.DeletePlayer(ctx, &api.DeletePlayerInput{ID: id})

	return s.settle(ctx, &s.players.lifecycle, "players.delete", reqID, gerr, func() {
		if i := findPlayerIndex(s.players.list, id); i != -1 {
			s.players.list = append(s.players.list[:i], s.players.list[i+1:]...)
		}
		if s.players.current != nil && s.players.current.ID == id {
			s.players.current = nil
		}
	})
}

// TogglePlayerDisplay flips the displayed flag. The current value is read
// from local state to compose the patch; the server does not compute the
// toggle. The flip commits only when the response lands (pessimistic).
func (s *Store) TogglePlayerDisplay(ctx context.Context, id int) (*entities.Player, error) {
	s.mu.Lock()
	i := findPlayerIndex(s.players.list, id)
	if i == -1 {
		s.mu.Unlock()
		return nil, errors.NotFoundf("player %d is not loaded", id)
	}
	next := !s.players.list[i].Displayed
	s.mu.Unlock()

	return s.UpdatePlayer(ctx, id, api.PlayerPatch{Displayed: &next})
}

// SetPlayerHP sets current_hp. The value is not clamped to [0, total_hp]
// here; bounds are a presentation concern, not a store invariant.
func (s *Store) SetPlayerHP(ctx context.Context, id, hp int) (*entities.Player, error) {
	return s.UpdatePlayer(ctx, id, api.PlayerPatch{CurrentHP: &hp})
}

// SetCurrentPlayer copies a loaded record into the detail singleton
// (local, no network)
func (s *Store) SetCurrentPlayer(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := findPlayerIndex(s.players.list, id)
	if i == -1 {
		return errors.NotFoundf("player %d is not loaded", id)
	}
	detail := s.players.list[i]
	s.players.current = &detail
	return nil
}

// ClearCurrentPlayer drops the detail singleton (local, no network)
func (s *Store) ClearCurrentPlayer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players.current = nil
}

// ClearPlayersError resets the captured error (local, no network)
func (s *Store) ClearPlayersError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players.clearError()
}

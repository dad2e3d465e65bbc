package store

import (
	"context"
	"log/slog"

	"github.com/critfall/dmscreen/internal/api"
	"github.com/critfall/dmscreen/internal/entities"
)

// playerConditionsState is the join slice between players and the
// condition catalog. Rows carry a remaining length in rounds; resolution
// against the catalog happens in selectors, not here.
type playerConditionsState struct {
	lifecycle
	list    []entities.PlayerCondition
	current *entities.PlayerCondition
}

func findPlayerConditionIndex(list []entities.PlayerCondition, id int) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

// FetchPlayerConditions replaces the join rows with the server's list
func (s *Store) FetchPlayerConditions(ctx context.Context) ([]entities.PlayerCondition, error) {
	reqID, err := s.beginProtected(ctx, &s.playerConditions.lifecycle, "player_conditions.fetch_all")
	if err != nil {
		return nil, err
	}

	out, gerr := s.gateway.ListPlayerConditions(ctx)

	err = s.settle(ctx, &s.playerConditions.lifecycle, "player_conditions.fetch_all", reqID, gerr, func() {
		s.playerConditions.list = out.PlayerConditions
	})
	if err != nil {
		return nil, err
	}
	return append([]entities.PlayerCondition(nil), out.PlayerConditions...), nil
}

// FetchPlayerCondition fetches one row into the detail singleton
func (s *Store) FetchPlayerCondition(ctx context.Context, id int) (*entities.PlayerCondition, error) {
	reqID, err := s.beginProtected(ctx, &s.playerConditions.lifecycle, "player_conditions.fetch_one")
	if err != nil {
		return nil, err
	}

	out, gerr := s.gateway.GetPlayerCondition(ctx, &api.GetPlayerConditionInput{ID: id})

	var row entities.PlayerCondition
	err = s.settle(ctx, &s.playerConditions.lifecycle, "player_conditions.fetch_one", reqID, gerr, func() {
		row = out.PlayerCondition
		s.playerConditions.current = &row
	})
	if err != nil {
		return nil, err
	}
	result := row
	return &result, nil
}

// CreatePlayerCondition posts the draft and appends the server-assigned row
func (s *Store) CreatePlayerCondition(ctx context.Context, draft api.PlayerConditionDraft) (*entities.PlayerCondition, error) {
	reqID, err := s.beginProtected(ctx, &s.playerConditions.lifecycle, "player_conditions.create")
	if err != nil {
		return nil, err
	}

	out, gerr := s.gateway.CreatePlayerCondition(ctx, &api.CreatePlayerConditionInput{Draft: draft})

	var row entities.PlayerCondition
	err = s.settle(ctx, &s.playerConditions.lifecycle, "player_conditions.create", reqID, gerr, func() {
		row = out.PlayerCondition
		s.playerConditions.list = append(s.playerConditions.list, row)
	})
	if err != nil {
		return nil, err
	}
	result := row
	return &result, nil
}

// UpdatePlayerCondition patches named fields only and merges the returned row
func (s *Store) UpdatePlayerCondition(ctx context.Context, id int, patch api.PlayerConditionPatch) (*entities.PlayerCondition, error) {
	reqID, err := s.beginProtected(ctx, &s.playerConditions.lifecycle, "player_conditions.update")
	if err != nil {
		return nil, err
	}

	out, gerr := s.gateway.UpdatePlayerCondition(ctx, &api.UpdatePlayerConditionInput{ID: id, Patch: patch})

	var row entities.PlayerCondition
	err = s.settle(ctx, &s.playerConditions.lifecycle, "player_conditions.update", reqID, gerr, func() {
		row = out.PlayerCondition
		if i := findPlayerConditionIndex(s.playerConditions.list, row.ID); i != -1 {
			s.playerConditions.list[i] = row
		}
		if s.playerConditions.current != nil && s.playerConditions.current.ID == row.ID {
			detail := row
			s.playerConditions.current = &detail
		}
	})
	if err != nil {
		return nil, err
	}
	result := row
	return &result, nil
}

// DeletePlayerCondition removes the row by id
func (s *Store) DeletePlayerCondition(ctx context.Context, id int) error {
	reqID, err := s.beginProtected(ctx, &s.playerConditions.lifecycle, "player_conditions.delete")
	if err != nil {
		return err
	}

	_, gerr := s.gateway.DeletePlayerCondition(ctx, &api.DeletePlayerConditionInput{ID: id})

	return s.settle(ctx, &s.playerConditions.lifecycle, "player_conditions.delete", reqID, gerr, func() {
		if i := findPlayerConditionIndex(s.playerConditions.list, id); i != -1 {
			s.playerConditions.list = append(s.playerConditions.list[:i], s.playerConditions.list[i+1:]...)
		}
		if s.playerConditions.current != nil && s.playerConditions.current.ID == id {
			s.playerConditions.current = nil
		}
	})
}

// DecrementConditionLengths ticks every row down one round, floored at
// zero. Rows at zero stay in the slice; they read as expired, and removal
// stays an explicit delete. Local only, nothing is written back.
func (s *Store) DecrementConditionLengths(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.playerConditions.list {
		if s.playerConditions.list[i].ConditionLength > 0 {
			s.playerConditions.list[i].ConditionLength--
		}
	}
	if s.playerConditions.current != nil && s.playerConditions.current.ConditionLength > 0 {
		s.playerConditions.current.ConditionLength--
	}
	slog.DebugContext(ctx, "condition lengths decremented", "rows", len(s.playerConditions.list))
}

// DetachConditionsForPlayer drops rows referencing a deleted player
// (local, no network). The server cascades its own side of the delete.
func (s *Store) DetachConditionsForPlayer(playerID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.playerConditions.list[:0]
	for _, row := range s.playerConditions.list {
		if row.PlayerID != playerID {
			kept = append(kept, row)
		}
	}
	s.playerConditions.list = kept
	if s.playerConditions.current != nil && s.playerConditions.current.PlayerID == playerID {
		s.playerConditions.current = nil
	}
}

// DetachConditionsForCondition drops rows referencing a deleted catalog
// entry (local, no network).
func (s *Store) DetachConditionsForCondition(conditionID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.playerConditions.list[:0]
	for _, row := range s.playerConditions.list {
		if row.ConditionID != conditionID {
			kept = append(kept, row)
		}
	}
	s.playerConditions.list = kept
	if s.playerConditions.current != nil && s.playerConditions.current.ConditionID == conditionID {
		s.playerConditions.current = nil
	}
}

// ClearCurrentPlayerCondition drops the detail singleton (local, no network)
func (s *Store) ClearCurrentPlayerCondition() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playerConditions.current = nil
}

// ClearPlayerConditionsError resets the captured error (local, no network)
func (s *Store) ClearPlayerConditionsError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playerConditions.clearError()
}

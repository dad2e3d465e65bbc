package store

import (
	"context"

	"github.com/critfall/dmscreen/internal/api"
	"github.com/critfall/dmscreen/internal/entities"
)

// conditionsState is the global condition catalog slice. The catalog is
// not scoped to a game and includes the "None" sentinel, which selectors
// filter out of pickers.
type conditionsState struct {
	lifecycle
	list    []entities.Condition
	current *entities.Condition
}

func findConditionIndex(list []entities.Condition, id int) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

// FetchConditions replaces the catalog with the server's list
func (s *Store) FetchConditions(ctx context.Context) ([]entities.Condition, error) {
	reqID, err := s.beginProtected(ctx, &s.conditions.lifecycle, "conditions.fetch_all")
	if err != nil {
		return nil, err
	}

	out, gerr := s.gateway.ListConditions(ctx)

	err = s.settle(ctx, &s.conditions.lifecycle, "conditions.fetch_all", reqID, gerr, func() {
		s.conditions.list = out.Conditions
	})
	if err != nil {
		return nil, err
	}
	return append([]entities.Condition(nil), out.Conditions...), nil
}

// FetchCondition fetches one catalog entry into the detail singleton
func (s *Store) FetchCondition(ctx context.Context, id int) (*entities.Condition, error) {
	reqID, err := s.beginProtected(ctx, &s.conditions.lifecycle, "conditions.fetch_one")
	if err != nil {
		return nil, err
	}

	out, gerr := s.gateway.GetCondition(ctx, &api.GetConditionInput{ID: id})

	var condition entities.Condition
	err = s.settle(ctx, &s.conditions.lifecycle, "conditions.fetch_one", reqID, gerr, func() {
		condition = out.Condition
		s.conditions.current = &condition
	})
	if err != nil {
		return nil, err
	}
	result := condition
	return &result, nil
}

// CreateCondition posts the draft and appends the server-assigned entry
func (s *Store) CreateCondition(ctx context.Context, draft api.ConditionDraft) (*entities.Condition, error) {
	reqID, err := s.beginProtected(ctx, &s.conditions.lifecycle, "conditions.create")
	if err != nil {
		return nil, err
	}

	out, gerr := s.gateway.CreateCondition(ctx, &api.CreateConditionInput{Draft: draft})

	var condition entities.Condition
	err = s.settle(ctx, &s.conditions.lifecycle, "conditions.create", reqID, gerr, func() {
		condition = out.Condition
		s.conditions.list = append(s.conditions.list, condition)
	})
	if err != nil {
		return nil, err
	}
	result := condition
	return &result, nil
}

// UpdateCondition patches the catalog entry and merges the returned record
func (s *Store) UpdateCondition(ctx context.Context, id int, patch api.ConditionPatch) (*entities.Condition, error) {
	reqID, err := s.beginProtected(ctx, &s.conditions.lifecycle, "conditions.update")
	if err != nil {
		return nil, err
	}

	out, gerr := s.gateway.UpdateCondition(ctx, &api.UpdateConditionInput{ID: id, Patch: patch})

	var condition entities.Condition
	err = s.settle(ctx, &s.conditions.lifecycle, "conditions.update", reqID, gerr, func() {
		condition = out.Condition
		if i := findConditionIndex(s.conditions.list, condition.ID); i != -1 {
			s.conditions.list[i] = condition
		}
		if s.conditions.current != nil && s.conditions.current.ID == condition.ID {
			detail := condition
			s.conditions.current = &detail
		}
	})
	if err != nil {
		return nil, err
	}
	result := condition
	return &result, nil
}

// DeleteCondition removes the catalog entry. Detaching dependent
// player-condition rows is the coordinator's job.
func (s *Store) DeleteCondition(ctx context.Context, id int) error {
	reqID, err := s.beginProtected(ctx, &s.conditions.lifecycle, "conditions.delete")
	if err != nil {
		return err
	}

	_, gerr := s.gateway.DeleteCondition(ctx, &api.DeleteConditionInput{ID: id})

	return s.settle(ctx, &s.conditions.lifecycle, "conditions.delete", reqID, gerr, func() {
		if i := findConditionIndex(s.conditions.list, id); i != -1 {
			s.conditions.list = append(s.conditions.list[:i], s.conditions.list[i+1:]...)
		}
		if s.conditions.current != nil && s.conditions.current.ID == id {
			s.conditions.current = nil
		}
	})
}

// ClearCurrentCondition drops the detail singleton (local, no network)
func (s *Store) ClearCurrentCondition() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conditions.current = nil
}

// ClearConditionsError resets the captured error (local, no network)
func (s *Store) ClearConditionsError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conditions.clearError()
}

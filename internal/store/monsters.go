package store

import (
	"context"

	"github.com/critfall/dmscreen/internal/api"
	"github.com/critfall/dmscreen/internal/entities"
	"github.com/critfall/dmscreen/internal/errors"
)

// monstersState is the monster slice, shaped like the player slice.
type monstersState struct {
	lifecycle
	list    []entities.Monster
	current *entities.Monster
}

func findMonsterIndex(list []entities.Monster, id int) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

// FetchMonsters replaces the entire monster collection with the server's list
func (s *Store) FetchMonsters(ctx context.Context) ([]entities.Monster, error) {
	reqID, err := s.beginProtected(ctx, &s.monsters.lifecycle, "monsters.fetch_all")
	if err != nil {
		return nil, err
	}

	out, gerr := s.gateway.ListMonsters(ctx)

	err = s.settle(ctx, &s.monsters.lifecycle, "monsters.fetch_all", reqID, gerr, func() {
		s.monsters.list = out.Monsters
	})
	if err != nil {
		return nil, err
	}
	return append([]entities.Monster(nil), out.Monsters...), nil
}

// FetchMonster fetches one monster into the detail singleton
func (s *Store) FetchMonster(ctx context.Context, id int) (*entities.Monster, error) {
	reqID, err := s.beginProtected(ctx, &s.monsters.lifecycle, "monsters.fetch_one")
	if err != nil {
		return nil, err
	}

	out, gerr := s.gateway.GetMonster(ctx, &api.GetMonsterInput{ID: id})

	var monster entities.Monster
	err = s.settle(ctx, &s.monsters.lifecycle, "monsters.fetch_one", reqID, gerr, func() {
		monster = out.Monster
		s.monsters.current = &monster
	})
	if err != nil {
		return nil, err
	}
	result := monster
	return &result, nil
}

// CreateMonster posts the draft and appends the server-assigned record
func (s *Store) CreateMonster(ctx context.Context, draft api.MonsterDraft) (*entities.Monster, error) {
	reqID, err := s.beginProtected(ctx, &s.monsters.lifecycle, "monsters.create")
	if err != nil {
		return nil, err
	}

	out, gerr := s.gateway.CreateMonster(ctx, &api.CreateMonsterInput{Draft: draft})

	var monster entities.Monster
	err = s.settle(ctx, &s.monsters.lifecycle, "monsters.create", reqID, gerr, func() {
		monster = out.Monster
		s.monsters.list = append(s.monsters.list, monster)
	})
	if err != nil {
		return nil, err
	}
	result := monster
	return &result, nil
}

// UpdateMonster patches named fields only and merges the returned record
func (s *Store) UpdateMonster(ctx context.Context, id int, patch api.MonsterPatch) (*entities.Monster, error) {
	reqID, err := s.beginProtected(ctx, &s.monsters.lifecycle, "monsters.update")
	if err != nil {
		return nil, err
	}

	out, gerr := s.gateway.UpdateMonster(ctx, &api.UpdateMonsterInput{ID: id, Patch: patch})

	var monster entities.Monster
	err = s.settle(ctx, &s.monsters.lifecycle, "monsters.update", reqID, gerr, func() {
		monster = out.Monster
		if i := findMonsterIndex(s.monsters.list, monster.ID); i != -1 {
			s.monsters.list[i] = monster
		}
		if s.monsters.current != nil && s.monsters.current.ID == monster.ID {
			detail := monster
			s.monsters.current = &detail
		}
	})
	if err != nil {
		return nil, err
	}
	result := monster
	return &result, nil
}

// DeleteMonster removes the record by id
func (s *Store) DeleteMonster(ctx context.Context, id int) error {
	reqID, err := s.beginProtected(ctx, &s.monsters.lifecycle, "monsters.delete")
	if err != nil {
		return err
	}

	_, gerr := s.gateway.DeleteMonster(ctx, &api.DeleteMonsterInput{ID: id})

	return s.settle(ctx, &s.monsters.lifecycle, "monsters.delete", reqID, gerr, func() {
		if i := findMonsterIndex(s.monsters.list, id); i != -1 {
			s.monsters.list = append(s.monsters.list[:i], s.monsters.list[i+1:]...)
		}
		if s.monsters.current != nil && s.monsters.current.ID == id {
			s.monsters.current = nil
		}
	})
}

// ToggleMonsterDisplay flips the displayed flag from local state,
// pessimistically
func (s *Store) ToggleMonsterDisplay(ctx context.Context, id int) (*entities.Monster, error) {
	s.mu.Lock()
	i := findMonsterIndex(s.monsters.list, id)
	if i == -1 {
		s.mu.Unlock()
		return nil, errors.NotFoundf("monster %d is not loaded", id)
	}
	next := !s.monsters.list[i].Displayed
	s.mu.Unlock()

	return s.UpdateMonster(ctx, id, api.MonsterPatch{Displayed: &next})
}

// SetCurrentMonster copies a loaded record into the detail singleton
// (local, no network)
func (s *Store) SetCurrentMonster(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := findMonsterIndex(s.monsters.list, id)
	if i == -1 {
		return errors.NotFoundf("monster %d is not loaded", id)
	}
	detail := s.monsters.list[i]
	s.monsters.current = &detail
	return nil
}

// ClearCurrentMonster drops the detail singleton (local, no network)
func (s *Store) ClearCurrentMonster() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.monsters.current = nil
}

// ClearMonstersError resets the captured error (local, no network)
func (s *Store) ClearMonstersError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.monsters.clearError()
}

package store

import (
	"github.com/critfall/dmscreen/internal/entities"
	"github.com/critfall/dmscreen/internal/errors"
)

// Selectors. Every reader returns copies so callers can never mutate the
// store's records from outside a slice operation. Joins happen here at
// read time; no slice stores another slice's data.

// SliceView is the lifecycle snapshot of one slice.
type SliceView struct {
	Status Status
	Err    *errors.Error
}

// SessionView is a snapshot of the session slice.
type SessionView struct {
	Gate   Gate
	User   *entities.User
	Status Status
	Err    *errors.Error
}

// AppliedCondition is a player-condition row joined to its catalog entry.
// Condition is nil when the catalog entry is missing locally; the row is
// still returned so the caller can show the raw ids.
type AppliedCondition struct {
	entities.PlayerCondition
	Condition *entities.Condition
}

// Session returns the current session snapshot
func (s *Store) Session() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := SessionView{
		Gate:   s.session.gate,
		Status: s.session.status,
		Err:    s.session.err,
	}
	if s.session.user != nil {
		user := *s.session.user
		view.User = &user
	}
	return view
}

// IsAuthenticated reports whether the gate is open
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.gate == GateAuthenticated
}

// Games returns a copy of the loaded game list
func (s *Store) Games() []entities.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Game(nil), s.games.list...)
}

// Players returns a copy of the loaded player list
func (s *Store) Players() []entities.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Player(nil), s.players.list...)
}

// Monsters returns a copy of the loaded monster list
func (s *Store) Monsters() []entities.Monster {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Monster(nil), s.monsters.list...)
}

// Conditions returns a copy of the loaded condition catalog
func (s *Store) Conditions() []entities.Condition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Condition(nil), s.conditions.list...)
}

// PlayerConditions returns a copy of the loaded join rows
func (s *Store) PlayerConditions() []entities.PlayerCondition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.PlayerCondition(nil), s.playerConditions.list...)
}

// CurrentGame returns a copy of the game detail singleton, if set
func (s *Store) CurrentGame() (entities.Game, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.games.current == nil {
		return entities.Game{}, false
	}
	return *s.games.current, true
}

// CurrentPlayer returns a copy of the player detail singleton, if set
func (s *Store) CurrentPlayer() (entities.Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.players.current == nil {
		return entities.Player{}, false
	}
	return *s.players.current, true
}

// CurrentMonster returns a copy of the monster detail singleton, if set
func (s *Store) CurrentMonster() (entities.Monster, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.monsters.current == nil {
		return entities.Monster{}, false
	}
	return *s.monsters.current, true
}

// CurrentCondition returns a copy of the catalog detail singleton, if set
func (s *Store) CurrentCondition() (entities.Condition, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conditions.current == nil {
		return entities.Condition{}, false
	}
	return *s.conditions.current, true
}

// GamesView returns the game slice lifecycle snapshot
func (s *Store) GamesView() SliceView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SliceView{Status: s.games.status, Err: s.games.err}
}

// PlayersView returns the player slice lifecycle snapshot
func (s *Store) PlayersView() SliceView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SliceView{Status: s.players.status, Err: s.players.err}
}

// MonstersView returns the monster slice lifecycle snapshot
func (s *Store) MonstersView() SliceView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SliceView{Status: s.monsters.status, Err: s.monsters.err}
}

// ConditionsView returns the catalog slice lifecycle snapshot
func (s *Store) ConditionsView() SliceView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SliceView{Status: s.conditions.status, Err: s.conditions.err}
}

// PlayerConditionsView returns the join slice lifecycle snapshot
func (s *Store) PlayerConditionsView() SliceView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SliceView{Status: s.playerConditions.status, Err: s.playerConditions.err}
}

// PlayersOfGame returns the loaded players belonging to a game
func (s *Store) PlayersOfGame(gameID int) []entities.Player {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []entities.Player
	for _, p := range s.players.list {
		if p.GameID == gameID {
			result = append(result, p)
		}
	}
	return result
}

// MonstersOfGame returns the loaded monsters belonging to a game
func (s *Store) MonstersOfGame(gameID int) []entities.Monster {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []entities.Monster
	for _, m := range s.monsters.list {
		if m.GameID == gameID {
			result = append(result, m)
		}
	}
	return result
}

// DisplayedPlayers returns the players flagged for the table view
func (s *Store) DisplayedPlayers() []entities.Player {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []entities.Player
	for _, p := range s.players.list {
		if p.Displayed {
			result = append(result, p)
		}
	}
	return result
}

// DisplayedMonsters returns the monsters flagged for the table view
func (s *Store) DisplayedMonsters() []entities.Monster {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []entities.Monster
	for _, m := range s.monsters.list {
		if m.Displayed {
			result = append(result, m)
		}
	}
	return result
}

// ConditionsOnPlayer joins the player's condition rows to the catalog.
// Rows whose catalog entry is not loaded come back with a nil Condition
// rather than being dropped.
func (s *Store) ConditionsOnPlayer(playerID int) []AppliedCondition {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []AppliedCondition
	for _, row := range s.playerConditions.list {
		if row.PlayerID != playerID {
			continue
		}
		applied := AppliedCondition{PlayerCondition: row}
		if i := findConditionIndex(s.conditions.list, row.ConditionID); i != -1 {
			condition := s.conditions.list[i]
			applied.Condition = &condition
		}
		result = append(result, applied)
	}
	return result
}

// ActiveConditionsOnPlayer is ConditionsOnPlayer restricted to rows with
// rounds remaining. Expired rows (length zero) are filtered, not deleted.
func (s *Store) ActiveConditionsOnPlayer(playerID int) []AppliedCondition {
	all := s.ConditionsOnPlayer(playerID)
	var result []AppliedCondition
	for _, applied := range all {
		if applied.ConditionLength > 0 {
			result = append(result, applied)
		}
	}
	return result
}

// SelectableConditions returns the catalog minus the "None" sentinel,
// for "apply a condition" pickers.
func (s *Store) SelectableConditions() []entities.Condition {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []entities.Condition
	for _, c := range s.conditions.list {
		if c.Sentinel() {
			continue
		}
		result = append(result, c)
	}
	return result
}

// GameName resolves a game id to its name from the loaded list. The
// second return is false when the game is not loaded; callers render the
// id instead.
func (s *Store) GameName(gameID int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := findGameIndex(s.games.list, gameID); i != -1 {
		return s.games.list[i].Name, true
	}
	return "", false
}

package entities

// AbilityScore is one of the six ability scores on a character sheet,
// with its saving throw modifier.
type AbilityScore struct {
	Score int `json:"score"`
	Save  int `json:"save"`
}

// Player is a player character sheet. Displayed is pure view state: true
// means the character currently appears in the shared game view panel. It
// is never derived from other fields and must be toggled explicitly.
type Player struct {
	ID              int          `json:"id"`
	Name            string       `json:"name"`
	Character       string       `json:"character"`
	CharacterClass  string       `json:"character_class"`
	Image           string       `json:"image"`
	Level           int          `json:"level"`
	CurrentHP       int          `json:"current_hp"`
	TotalHP         int          `json:"total_hp"`
	ArmorClass      int          `json:"armor_class"`
	Speed           int          `json:"speed"`
	InitiativeBonus int          `json:"initiative_bonus"`
	Strength        AbilityScore `json:"strength"`
	Dexterity       AbilityScore `json:"dexterity"`
	Constitution    AbilityScore `json:"constitution"`
	Intelligence    AbilityScore `json:"intelligence"`
	Wisdom          AbilityScore `json:"wisdom"`
	Charisma        AbilityScore `json:"charisma"`
	Displayed       bool         `json:"displayed"`
	GameID          int          `json:"game_id"`
}

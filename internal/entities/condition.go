package entities

// SentinelConditionName is the placeholder catalog entry. It must never be
// offered by "apply a condition" pickers.
const SentinelConditionName = "None"

// Condition is a global catalog entry, not scoped to any game.
type Condition struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Sentinel reports whether this is the placeholder entry.
func (c Condition) Sentinel() bool {
	return c.Name == SentinelConditionName
}

// PlayerCondition is one active application of a Condition to a Player,
// with a remaining-duration counter. ConditionLength never goes below zero.
type PlayerCondition struct {
	ID              int `json:"id"`
	PlayerID        int `json:"player_id"`
	ConditionID     int `json:"condition_id"`
	ConditionLength int `json:"condition_length"`
}

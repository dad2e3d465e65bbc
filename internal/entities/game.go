package entities

// Game is a campaign owned by a DM. Players and monsters reference it by
// GameID; deleting a game leaves them orphaned rather than cascading.
type Game struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	DMID int    `json:"dm_id"`
}

package run

// Character is a playable gunslinger. BaseHealth is the health the player
// starts every run with.
type Character struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Class       string   `json:"class"`
	Description string   `json:"description"`
	BaseHealth  int      `json:"base_health"`
	Abilities   []string `json:"abilities,omitempty"`
}

// DefaultCharacterID is selected when nothing else is asked for.
const DefaultCharacterID = "rusty_gunslinger"

var Characters = []Character{
	{
		ID:          DefaultCharacterID,
		Name:        "Rusty",
		Class:       "Gunslinger",
		Description: "A weathered gunslinger seeking justice in the cyber frontier",
		BaseHealth:  21,
		Abilities:   []string{"Sidearm Mastery", "Quick Draw"},
	},
}

// FindCharacter looks id up in Characters.
func FindCharacter(id string) (Character, bool) {
	for _, c := range Characters {
		if c.ID == id {
			return c, true
		}
	}
	return Character{}, false
}

// PlayerData is the part of the player that outlives a single battle.
type PlayerData struct {
	Health     int       `json:"health"`
	MaxHealth  int       `json:"max_health"`
	GamesWon   int       `json:"games_won"`
	GamesLost  int       `json:"games_lost"`
	Reputation int       `json:"reputation"`
	Character  Character `json:"character"`
}

// LowHealth reports whether the player is down to a quarter of the maximum
// or less.
func (p PlayerData) LowHealth() bool {
	return p.Health > 0 && p.Health*4 <= p.MaxHealth
}

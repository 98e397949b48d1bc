package models

// Player belongs to a team roster. Shirt numbers are not guaranteed
// unique within a team.
type Player struct {
	Number    int    `json:"number"`
	Name      string `json:"name"`
	IsCaptain bool   `json:"isCaptain,omitempty"`
}

type Team struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Group   string   `json:"group"`
	Color   string   `json:"color"`
	Players []Player `json:"players"`
	Manager *string  `json:"manager,omitempty"`
}

// Captain returns the roster's captain, if one is set.
func (t *Team) Captain() (*Player, bool) {
	for i := range t.Players {
		if t.Players[i].IsCaptain {
			return &t.Players[i], true
		}
	}
	return nil, false
}

package protocol

type Welcome struct {
	PlayerID string `json:"playerId"`
	Role     string `json:"role"`
	Room     string `json:"room"`
	TickMs   int64  `json:"tickMs"`
}

type State struct {
	Tick    int             `json:"tick"`
	MatchID string          `json:"matchId"`
	Gamer   FighterSnapshot `json:"gamer"`
	Puncher FighterSnapshot `json:"puncher"`
	Over    bool            `json:"over"`
	Winner  string          `json:"winner,omitempty"` // gamer, puncher or draw
}

type FighterSnapshot struct {
	Position int    `json:"position"`
	Pose     string `json:"pose"`
	Life     int    `json:"life"`
	MaxLife  int    `json:"maxLife"`
	Damage   int    `json:"damage"` // taken on the last tick
	Impact   string `json:"impact"` // own fists that connected on the last tick
	LowLife  bool   `json:"lowLife,omitempty"`
}

type Error struct {
	Message string `json:"message"`
}

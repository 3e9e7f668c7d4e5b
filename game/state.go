package game

// Authoritative round state. Values, not pointers: Update returns a new copy.

type Side uint8

const (
	SideGamer Side = iota
	SidePuncher
)

func (s Side) String() string {
	if s == SidePuncher {
		return "puncher"
	}
	return "gamer"
}

type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeGamerWins
	OutcomePuncherWins
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeGamerWins:
		return "gamer"
	case OutcomePuncherWins:
		return "puncher"
	case OutcomeDraw:
		return "draw"
	default:
		return ""
	}
}

type Fighter struct {
	Position int
	Pose     Pose
	Life     int
	// Landed is set once the current pose has dealt damage. A new pose clears it.
	Landed bool
}

func NewFighter(maxLife int) Fighter {
	return Fighter{Position: 0, Pose: PoseIdle, Life: maxLife}
}

// LowLife reports whether life has dropped under LowLifeFraction of maxLife.
func (f Fighter) LowLife(maxLife int) bool {
	return float64(f.Life) < float64(maxLife)*LowLifeFraction
}

type RoundState struct {
	Tick    int
	Gamer   Fighter
	Puncher Fighter

	// Damage taken by each side on the last tick. A pose hits at most once.
	GamerDamage   int
	PuncherDamage int

	// Which fists of each side connected on the last tick.
	GamerImpact   Impact
	PuncherImpact Impact

	Outcome Outcome
	Rules   Rules
}

func NewRound(rules Rules) RoundState {
	return RoundState{
		Gamer:   NewFighter(rules.MaxLife),
		Puncher: NewFighter(rules.MaxLife),
		Rules:   rules,
	}
}

func (s RoundState) Over() bool {
	return s.Outcome != OutcomeNone
}

func (s *RoundState) fighter(side Side) *Fighter {
	if side == SidePuncher {
		return &s.Puncher
	}
	return &s.Gamer
}

func ClampPosition(p int) int {
	return clamp(p, PositionMin, PositionMax)
}

func ClampLife(life, maxLife int) int {
	return clamp(life, 0, maxLife)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

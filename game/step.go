package game

// Event is one state change fed into Update.
type Event interface {
	apply(s *RoundState)
}

// MoveEvent steps a fighter one position left (Dir < 0) or right (Dir > 0).
type MoveEvent struct {
	Side Side
	Dir  int
}

type PoseEvent struct {
	Side Side
	Pose Pose
}

// AIEvent applies a puncher decision from NextAIMove.
type AIEvent struct {
	Move Move
}

func (e MoveEvent) apply(s *RoundState) {
	f := s.fighter(e.Side)
	switch {
	case e.Dir < 0:
		f.Position = ClampPosition(f.Position - 1)
	case e.Dir > 0:
		f.Position = ClampPosition(f.Position + 1)
	}
}

func (e PoseEvent) apply(s *RoundState) {
	if !e.Pose.Valid() {
		return
	}
	f := s.fighter(e.Side)
	f.Pose = e.Pose
	f.Landed = false
}

func (e AIEvent) apply(s *RoundState) {
	if !e.Move.Pose.Valid() {
		return
	}
	s.Puncher.Position = ClampPosition(e.Move.Position)
	s.Puncher.Pose = e.Move.Pose
	s.Puncher.Landed = false
}

// Update runs one tick: apply events, trade blows in both directions at once, then
// settle the outcome. A pose that already landed does not hit again on later ticks.
// A finished round is returned untouched.
func Update(s RoundState, events ...Event) RoundState {
	if s.Over() {
		return s
	}

	next := s
	next.Tick++
	for _, ev := range events {
		if ev != nil {
			ev.apply(&next)
		}
	}

	gamerTaken, puncherImpact := strike(&next.Puncher, next.Gamer.Position)
	puncherTaken, gamerImpact := strike(&next.Gamer, next.Puncher.Position)

	next.GamerDamage = mitigate(gamerTaken, next.Gamer.Pose, next.Rules.BlockMitigation)
	next.PuncherDamage = mitigate(puncherTaken, next.Puncher.Pose, next.Rules.BlockMitigation)
	next.GamerImpact = gamerImpact
	next.PuncherImpact = puncherImpact

	next.Gamer.Life = ClampLife(next.Gamer.Life-next.GamerDamage, next.Rules.MaxLife)
	next.Puncher.Life = ClampLife(next.Puncher.Life-next.PuncherDamage, next.Rules.MaxLife)

	next.Outcome = settle(next.Gamer.Life, next.Puncher.Life)
	return next
}

func strike(attacker *Fighter, defenderPos int) (int, Impact) {
	if attacker.Landed {
		return 0, ImpactNone
	}
	damage, impact := ComputeDamage(attacker.Pose, attacker.Position, defenderPos)
	if damage > 0 {
		attacker.Landed = true
	}
	return damage, impact
}

func mitigate(damage int, defender Pose, block int) int {
	if defender != PoseBlock || damage == 0 {
		return damage
	}
	return max(0, damage-block)
}

func settle(gamerLife, puncherLife int) Outcome {
	switch {
	case gamerLife == 0 && puncherLife == 0:
		return OutcomeDraw
	case gamerLife == 0:
		return OutcomePuncherWins
	case puncherLife == 0:
		return OutcomeGamerWins
	}
	return OutcomeNone
}

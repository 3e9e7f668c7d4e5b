package game

import "math"

// Move is the puncher's decision for one tick.
type Move struct {
	Position int
	Pose     Pose
}

// NextAIMove drifts the fighter by floor(2 - U*3) and alternates its pose between idle
// and a random active pose. The opponent does not influence the decision.
func NextAIMove(self, _ Fighter, rnd Random) Move {
	step := int(math.Floor(2 - rnd.Float64()*3))
	mv := Move{
		Position: ClampPosition(self.Position + step),
		Pose:     PoseIdle,
	}
	if self.Pose == PoseIdle {
		i := int(rnd.Float64() * float64(len(ActivePoses)))
		mv.Pose = ActivePoses[min(i, len(ActivePoses)-1)]
	}
	return mv
}

// ComputeDamage resolves one attacker's fists against a defender. The left fist sits at
// attackerPos-1 and the right at attackerPos+1; each active fist deals damage by its
// distance to defenderPos.
func ComputeDamage(attackerPose Pose, attackerPos, defenderPos int) (int, Impact) {
	var left, right int
	if attackerPose.LeftFist() {
		left = fistHit((attackerPos - 1) - defenderPos)
	}
	if attackerPose.RightFist() {
		right = fistHit((attackerPos + 1) - defenderPos)
	}

	impact := ImpactNone
	switch {
	case left > 0 && right > 0:
		impact = ImpactBoth
	case left > 0:
		impact = ImpactLeft
	case right > 0:
		impact = ImpactRight
	}
	return left + right, impact
}

func fistHit(offset int) int {
	if offset < 0 {
		offset = -offset
	}
	if offset >= len(fistDamage) {
		return 0
	}
	return fistDamage[offset]
}

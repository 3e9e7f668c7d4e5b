package game

import "time"

const (
	PositionMin     = -5
	PositionMax     = 5
	MaxLife         = 20
	TickInterval    = 300 * time.Millisecond // AI decision cadence
	PoseDuration    = 300 * time.Millisecond // active pose reverts to idle after this
	BlockMitigation = 0                      // damage a block absorbs; 0 keeps blocks cosmetic
	LowLifeFraction = 0.3                    // below this share of max life a fighter is "low"
)

// Damage dealt by one fist, indexed by distance between fist and target.
// Anything at or beyond len(fistDamage) deals nothing.
var fistDamage = [...]int{4, 2, 1}

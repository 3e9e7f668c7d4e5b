package match

import "punch/game"

type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionLeftPunch
	ActionRightPunch
	ActionBothPunch
	ActionBlock
)

var actionNames = map[string]Action{
	"moveLeft":   ActionMoveLeft,
	"moveRight":  ActionMoveRight,
	"leftPunch":  ActionLeftPunch,
	"rightPunch": ActionRightPunch,
	"bothPunch":  ActionBothPunch,
	"block":      ActionBlock,

	// keyboard bindings of the browser client
	"ArrowLeft":  ActionMoveLeft,
	"ArrowRight": ActionMoveRight,
	"a":          ActionLeftPunch,
	"s":          ActionBothPunch,
	"d":          ActionRightPunch,
	"f":          ActionBlock,
}

// ParseAction resolves an action name or key binding. Unknown input maps to ActionNone.
func ParseAction(s string) Action {
	return actionNames[s]
}

// Pose is the gamer pose an action sets, or idle for movement.
func (a Action) Pose() game.Pose {
	switch a {
	case ActionLeftPunch:
		return game.PoseLeftPunch
	case ActionRightPunch:
		return game.PoseRightPunch
	case ActionBothPunch:
		return game.PoseBothPunch
	case ActionBlock:
		return game.PoseBlock
	}
	return game.PoseIdle
}

func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "moveLeft"
	case ActionMoveRight:
		return "moveRight"
	case ActionLeftPunch:
		return "leftPunch"
	case ActionRightPunch:
		return "rightPunch"
	case ActionBothPunch:
		return "bothPunch"
	case ActionBlock:
		return "block"
	}
	return "none"
}

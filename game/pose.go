package game

type Pose uint8

const (
	PoseIdle Pose = iota
	PoseBlock
	PoseLeftPunch
	PoseRightPunch
	PoseBothPunch
)

// ActivePoses are the poses the puncher picks from when leaving idle.
var ActivePoses = [...]Pose{PoseBlock, PoseLeftPunch, PoseRightPunch, PoseBothPunch}

var poseNames = [...]string{
	PoseIdle:       "idle",
	PoseBlock:      "block",
	PoseLeftPunch:  "leftPunch",
	PoseRightPunch: "rightPunch",
	PoseBothPunch:  "bothPunch",
}

func (p Pose) String() string {
	if int(p) < len(poseNames) {
		return poseNames[p]
	}
	return "unknown"
}

func (p Pose) Valid() bool {
	return int(p) < len(poseNames)
}

// LeftFist reports whether the pose throws the left fist.
func (p Pose) LeftFist() bool {
	return p == PoseLeftPunch || p == PoseBothPunch
}

// RightFist reports whether the pose throws the right fist.
func (p Pose) RightFist() bool {
	return p == PoseRightPunch || p == PoseBothPunch
}

// ParsePose maps a wire name back to a Pose.
func ParsePose(s string) (Pose, bool) {
	for i, name := range poseNames {
		if name == s {
			return Pose(i), true
		}
	}
	return PoseIdle, false
}

type Impact uint8

const (
	ImpactNone Impact = iota
	ImpactLeft
	ImpactRight
	ImpactBoth
)

func (i Impact) String() string {
	switch i {
	case ImpactLeft:
		return "left"
	case ImpactRight:
		return "right"
	case ImpactBoth:
		return "both"
	default:
		return "none"
	}
}

package room

import "punch/match"

type Conn interface {
	Send([]byte) error
	Close() error
}

// Join: issued once after hello parsed
type Join struct {
	Conn  Conn
	Name  string
	Reply chan<- JoinResult
}

type JoinResult struct {
	PlayerID string
	Role     string
}

// Input: one gamer action
type Input struct {
	PlayerID string
	Action   match.Action
}

// Leave: issued on disconnect
type Leave struct {
	PlayerID string
}

// timerFired carries a match timer callback onto the room goroutine.
type timerFired struct {
	f func()
}

package protocol

// Messages coming in from the client.

type Hello struct {
	V    int    `json:"v"`              // version
	Name string `json:"name,omitempty"` // optional name
	Room string `json:"room,omitempty"` // room code, overrides the ?room= query
}

// Input carries one gamer intent: an action name (moveLeft, leftPunch, ...) or one of the
// keyboard keys the browser client binds (ArrowLeft, a, s, d, f).
type Input struct {
	Action string `json:"action"`
}

package protocol

import (
	"encoding/json"
)

const (
	MsgHello   = "hello"
	MsgInput   = "input"
	MsgWelcome = "welcome"
	MsgState   = "state"
	MsgError   = "error"
)

const Version = 1

const (
	RoleGamer     = "gamer"
	RoleSpectator = "spectator"
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}

package protocol

import (
	"encoding/json"
	"errors"
	"fmt"

	"punch/game"
)

var (
	ErrEmptyEnvelope = errors.New("empty envelope")
	ErrEmptyPayload  = errors.New("empty payload")
)

func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, fmt.Errorf("encode: envelope type is empty")
	}
	if payload == nil {
		return nil, fmt.Errorf("encode %q: %w", t, ErrEmptyPayload)
	}
	pb, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %q: %w", t, err)
	}

	return json.Marshal(Envelope{T: t, P: pb})
}

func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, ErrEmptyEnvelope
	}
	var e Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	return e, nil
}

func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.P) == 0 {
		return out, fmt.Errorf("decode %q: %w", env.T, ErrEmptyPayload)
	}
	if err := json.Unmarshal(env.P, &out); err != nil {
		return out, fmt.Errorf("decode %q: %w", env.T, err)
	}
	return out, nil
}

// NewState flattens a round into its wire snapshot.
func NewState(matchID string, s game.RoundState) State {
	st := State{
		Tick:    s.Tick,
		MatchID: matchID,
		Gamer:   fighterSnapshot(s.Gamer, s.Rules.MaxLife, s.GamerDamage, s.GamerImpact),
		Puncher: fighterSnapshot(s.Puncher, s.Rules.MaxLife, s.PuncherDamage, s.PuncherImpact),
		Over:    s.Over(),
	}
	if st.Over {
		st.Winner = s.Outcome.String()
	}
	return st
}

func fighterSnapshot(f game.Fighter, maxLife, damage int, impact game.Impact) FighterSnapshot {
	return FighterSnapshot{
		Position: f.Position,
		Pose:     f.Pose.String(),
		Life:     f.Life,
		MaxLife:  maxLife,
		Damage:   damage,
		Impact:   impact.String(),
		LowLife:  f.LowLife(maxLife),
	}
}

package protocol

import (
	"errors"
	"testing"

	"punch/game"
)

func TestEncodeRejectsEmpty(t *testing.T) {
	if _, err := Encode("", Input{}); err == nil {
		t.Fatalf("expected error for empty type")
	}
	if _, err := Encode(MsgInput, nil); !errors.Is(err, ErrEmptyPayload) {
		t.Fatalf("err = %v, want ErrEmptyPayload", err)
	}
}

func TestDecodeInputEnvelope(t *testing.T) {
	b, err := Encode(MsgInput, Input{Action: "bothPunch"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	env, err := DecodeEnvelope(b)
	if err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.T != MsgInput {
		t.Fatalf("type = %q, want %q", env.T, MsgInput)
	}
	in, err := DecodePayload[Input](env)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if in.Action != "bothPunch" {
		t.Fatalf("action = %q", in.Action)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := DecodeEnvelope(nil); !errors.Is(err, ErrEmptyEnvelope) {
		t.Fatalf("err = %v, want ErrEmptyEnvelope", err)
	}
	if _, err := DecodeEnvelope([]byte("{not json")); err == nil {
		t.Fatalf("expected error for malformed envelope")
	}
	if _, err := DecodePayload[Input](Envelope{T: MsgInput}); !errors.Is(err, ErrEmptyPayload) {
		t.Fatalf("err = %v, want ErrEmptyPayload", err)
	}
}

func TestNewStateSnapshot(t *testing.T) {
	s := game.Update(game.NewRound(game.DefaultRules()),
		game.PoseEvent{Side: game.SidePuncher, Pose: game.PoseBothPunch},
	)
	st := NewState("m1", s)

	if st.Tick != 1 || st.MatchID != "m1" || st.Over || st.Winner != "" {
		t.Fatalf("unexpected header: %+v", st)
	}
	if st.Gamer.Life != 16 || st.Gamer.Damage != 4 || st.Gamer.MaxLife != game.MaxLife {
		t.Fatalf("unexpected gamer: %+v", st.Gamer)
	}
	if st.Puncher.Pose != "bothPunch" || st.Puncher.Impact != "both" {
		t.Fatalf("unexpected puncher: %+v", st.Puncher)
	}
	if st.Gamer.Impact != "none" || st.Gamer.LowLife {
		t.Fatalf("unexpected gamer flags: %+v", st.Gamer)
	}
}

func TestNewStateWinner(t *testing.T) {
	s := game.NewRound(game.DefaultRules())
	s.Puncher.Life = 1
	s = game.Update(s, game.PoseEvent{Side: game.SideGamer, Pose: game.PoseLeftPunch})
	st := NewState("m1", s)
	if !st.Over || st.Winner != "gamer" {
		t.Fatalf("over=%v winner=%q, want true and gamer", st.Over, st.Winner)
	}
	if !st.Puncher.LowLife {
		t.Fatalf("knocked out puncher should report low life")
	}
}

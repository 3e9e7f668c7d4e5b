package protocol

import "testing"

func TestMessageConstants(t *testing.T) {
	if MsgHello != "hello" {
		t.Fatalf("MsgHello = %q, want %q", MsgHello, "hello")
	}
	if MsgInput != "input" {
		t.Fatalf("MsgInput = %q, want %q", MsgInput, "input")
	}
	if MsgWelcome != "welcome" {
		t.Fatalf("MsgWelcome = %q, want %q", MsgWelcome, "welcome")
	}
	if MsgState != "state" {
		t.Fatalf("MsgState = %q, want %q", MsgState, "state")
	}
	if MsgError != "error" {
		t.Fatalf("MsgError = %q, want %q", MsgError, "error")
	}
}

func TestRoleConstants(t *testing.T) {
	if RoleGamer == RoleSpectator {
		t.Fatalf("roles must differ")
	}
	if Version <= 0 {
		t.Fatalf("Version must be > 0")
	}
}

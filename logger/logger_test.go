package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	cases := []struct {
		cfg  Config
		want zapcore.Level
	}{
		{Config{}, zapcore.InfoLevel},
		{Config{Level: "debug", Development: true}, zapcore.DebugLevel},
		{Config{Level: "warn"}, zapcore.WarnLevel},
	}
	for _, tc := range cases {
		l, err := New(tc.cfg)
		if err != nil {
			t.Fatalf("New(%+v): %v", tc.cfg, err)
		}
		if !l.Core().Enabled(tc.want) {
			t.Fatalf("New(%+v): level %s not enabled", tc.cfg, tc.want)
		}
		if tc.want > zapcore.DebugLevel && l.Core().Enabled(tc.want-1) {
			t.Fatalf("New(%+v): level below %s enabled", tc.cfg, tc.want)
		}
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Fatal("expected error")
	}
}

package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"err":     zerolog.ErrorLevel,
		"info":    zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("%q: want %v got %v", in, want, got)
		}
	}
}

func TestL_InitializesLazily(t *testing.T) {
	base = zerolog.Logger{}
	l := L()
	if l == nil {
		t.Fatal("nil logger")
	}
	if l.GetLevel() == zerolog.NoLevel {
		t.Error("logger not initialized")
	}
}

func TestComponent(t *testing.T) {
	cl := Component("loader")
	if cl.GetLevel() == zerolog.NoLevel {
		t.Error("component logger not initialized")
	}
}

package bot

import (
	"testing"
	"time"
)

func TestCommandLimiter_Burst(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newCommandLimiter()
	l.now = func() time.Time { return now }

	for i := 0; i < l.burst; i++ {
		if !l.Allow("g", "u") {
			t.Fatalf("call %d should be allowed", i)
		}
	}
	if l.Allow("g", "u") {
		t.Fatalf("expected burst to be exhausted")
	}
	if !l.Allow("g", "other") {
		t.Fatalf("other user should not share the limiter")
	}

	now = now.Add(time.Minute)
	if !l.Allow("g", "u") {
		t.Fatalf("expected tokens to refill")
	}
}

func TestCommandLimiter_Cleanup(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newCommandLimiter()
	l.now = func() time.Time { return now }

	l.Allow("g", "a")
	now = now.Add(l.idle + time.Second)
	l.Allow("g", "b")

	if _, ok := l.limiters["g:a"]; ok {
		t.Fatalf("expected idle limiter to be removed")
	}
	if len(l.limiters) != 1 {
		t.Fatalf("expected 1 limiter, got %d", len(l.limiters))
	}
}

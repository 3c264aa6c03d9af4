package api

import (
	"testing"
	"time"
)

func TestLoginThrottleWindowAndReset(t *testing.T) {
	t.Parallel()

	throttle := newLoginThrottle(1, time.Hour)
	key := "127.0.0.1"
	now := time.Now().UTC()

	throttle.recordFailure(key, now.Add(-2*time.Hour))
	if throttle.blocked(key, now) {
		t.Fatal("expected old failure to fall out of the window")
	}

	throttle.recordFailure(key, now.Add(-30*time.Minute))
	if !throttle.blocked(key, now) {
		t.Fatal("expected one recent failure to hit limit 1")
	}

	throttle.reset(key)
	if throttle.blocked(key, now) {
		t.Fatal("expected no failures after reset")
	}
}

func TestLoginThrottleKeysAreIndependent(t *testing.T) {
	t.Parallel()

	throttle := newLoginThrottle(2, time.Minute)
	now := time.Now().UTC()

	throttle.recordFailure("a", now)
	throttle.recordFailure("a", now)
	if !throttle.blocked("a", now) {
		t.Fatal("expected key a to be blocked")
	}
	if throttle.blocked("b", now) {
		t.Fatal("expected key b to be unaffected")
	}
}

package cache

import (
	"testing"
	"time"
)

func TestGetSetRoundTrip(t *testing.T) {
	c := New(15*time.Minute, true)
	c.Set("k", 42)

	got, ok := c.Get("k")
	if !ok {
		t.Fatal("expected hit")
	}
	if got != 42 {
		t.Errorf("got %v, want 42", got)
	}
}

func TestExpiry(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	c := New(15*time.Minute, true)
	c.now = func() time.Time { return current }

	c.Set("k", "v")

	current = current.Add(15 * time.Minute)
	if _, ok := c.Get("k"); !ok {
		t.Error("entry at exactly the TTL should still be served")
	}

	current = current.Add(time.Second)
	if _, ok := c.Get("k"); ok {
		t.Error("entry past the TTL should miss")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry should be evicted, len = %d", c.Len())
	}
}

func TestDisabled(t *testing.T) {
	c := New(15*time.Minute, false)
	c.Set("k", "v")

	if _, ok := c.Get("k"); ok {
		t.Error("disabled cache should never hit")
	}
	if c.Len() != 0 {
		t.Errorf("disabled cache should store nothing, len = %d", c.Len())
	}
}

func TestLookupTypeMismatch(t *testing.T) {
	c := New(15*time.Minute, true)
	c.Set("k", "a string")

	if _, ok := Lookup[int](c, "k"); ok {
		t.Error("wrong type should count as a miss")
	}
	if got, ok := Lookup[string](c, "k"); !ok || got != "a string" {
		t.Errorf("Lookup[string] = %q, %v", got, ok)
	}
}

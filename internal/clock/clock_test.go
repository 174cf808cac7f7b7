package clock

import (
	"testing"
	"time"
)

func TestReal_ReturnsLocalTime(t *testing.T) {
	before := time.Now()
	got := Real{}.Now()
	after := time.Now()

	if got.Before(before) || got.After(after) {
		t.Errorf("Real.Now() = %v, want between %v and %v", got, before, after)
	}
	if got.Location() != time.Local {
		t.Errorf("Real.Now() location = %v, want Local", got.Location())
	}
}

func TestFixed_ReturnsPresetInstant(t *testing.T) {
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := Fixed{T: want}

	for i := 0; i < 3; i++ {
		if got := c.Now(); !got.Equal(want) {
			t.Fatalf("call %d: Now() = %v, want %v", i, got, want)
		}
	}
}

func TestFunc_CallsThrough(t *testing.T) {
	calls := 0
	c := Func(func() time.Time {
		calls++
		return time.Unix(int64(calls), 0)
	})

	c.Now()
	c.Now()

	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

package scheduler

import (
	"testing"
	"time"
)

func TestUntilNextMidnight(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{
			"midday",
			time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC),
			12 * time.Hour,
		},
		{
			"one second before midnight",
			time.Date(2026, 8, 26, 23, 59, 59, 0, time.UTC),
			time.Second,
		},
		{
			"exactly midnight waits a full day",
			time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC),
			24 * time.Hour,
		},
		{
			"month boundary",
			time.Date(2026, 8, 31, 18, 0, 0, 0, time.UTC),
			6 * time.Hour,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := untilNextMidnight(tc.now); got != tc.want {
				t.Fatalf("untilNextMidnight = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestMidnightStartStopIdempotent(t *testing.T) {
	m := NewMidnight(time.UTC, func(time.Time) {})

	m.Start()
	m.Start() // second Start is a no-op
	m.Stop()
	m.Stop() // second Stop must not panic on a closed channel
}

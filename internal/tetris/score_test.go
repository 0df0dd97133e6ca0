package tetris

import (
	"testing"
	"time"
)

func TestScoreDelta(t *testing.T) {
	tests := []struct {
		name string
		res  ClearResult
		want int
	}{
		{"no lines", ClearResult{}, 0},
		{"single", ClearResult{Lines: 1}, 100},
		{"quad", ClearResult{Lines: 4}, 400},
		{"single with one gold block", ClearResult{Lines: 1, GoldLine: true, GoldBlocks: 1}, 300},
		{"double with three gold blocks", ClearResult{Lines: 2, GoldLine: true, GoldBlocks: 3}, 800},
		{"gold blocks without gold line are ignored", ClearResult{Lines: 1, GoldBlocks: 2}, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ScoreDelta(tc.res); got != tc.want {
				t.Errorf("ScoreDelta(%+v) = %d, want %d", tc.res, got, tc.want)
			}
		})
	}
}

func TestLevelForScore(t *testing.T) {
	tests := []struct {
		score, want int
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{1999, 2},
		{2000, 3},
		{10500, 11},
	}

	for _, tc := range tests {
		if got := LevelForScore(tc.score); got != tc.want {
			t.Errorf("LevelForScore(%d) = %d, want %d", tc.score, got, tc.want)
		}
	}
}

func TestGravityInterval(t *testing.T) {
	base := 800 * time.Millisecond

	if got := GravityInterval(1, base, DefaultSpeedFactor); got != base {
		t.Errorf("level 1 interval = %v, want %v", got, base)
	}
	if got := GravityInterval(2, base, DefaultSpeedFactor); got != 720*time.Millisecond {
		t.Errorf("level 2 interval = %v, want 720ms", got)
	}

	// Monotonically decreasing in level.
	prev := GravityInterval(1, base, DefaultSpeedFactor)
	for level := 2; level <= 30; level++ {
		cur := GravityInterval(level, base, DefaultSpeedFactor)
		if cur >= prev {
			t.Fatalf("interval not decreasing at level %d: %v >= %v", level, cur, prev)
		}
		prev = cur
	}

	// Never collapses to zero; the scheduler needs a positive period.
	if got := GravityInterval(1000, base, DefaultSpeedFactor); got < time.Millisecond {
		t.Errorf("extreme level interval = %v, want >= 1ms", got)
	}

	// Levels below 1 are clamped.
	if got := GravityInterval(0, base, DefaultSpeedFactor); got != base {
		t.Errorf("level 0 interval = %v, want %v", got, base)
	}
}

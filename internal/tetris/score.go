package tetris

import (
	"math"
	"time"
)

// Scoring and leveling policy.
const (
	PointsPerLine  = 100  // per cleared row
	GoldBlockBonus = 200  // per gold template block on a cleared row
	LevelStep      = 1000 // score needed per level
)

// DefaultSpeedFactor is the per-level gravity multiplier: each level
// shortens the gravity interval to 90% of the previous one.
const DefaultSpeedFactor = 0.9

// ScoreDelta returns the points awarded for a line-clear result.
func ScoreDelta(res ClearResult) int {
	delta := res.Lines * PointsPerLine
	if res.GoldLine {
		delta += res.GoldBlocks * GoldBlockBonus
	}
	return delta
}

// LevelForScore derives the level from the total score: level 1 at 0,
// one level per LevelStep points.
func LevelForScore(score int) int {
	return score/LevelStep + 1
}

// GravityInterval returns how long the scheduler should wait between
// gravity ticks at the given level: base * factor^(level-1). The reducer
// only exposes the level; the platform recomputes this whenever the
// level changes.
func GravityInterval(level int, base time.Duration, factor float64) time.Duration {
	if level < 1 {
		level = 1
	}
	d := float64(base) * math.Pow(factor, float64(level-1))
	if d < float64(time.Millisecond) {
		d = float64(time.Millisecond)
	}
	return time.Duration(d)
}

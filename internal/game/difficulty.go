package game

import "github.com/snackfall/snackfall/internal/config"

// Difficulty derives all per-level parameters from the cumulative score.
// Every value is a pure function of the score (a monotone step function),
// never accumulated independently, so the parameters cannot drift and never
// decrease within a session.
type Difficulty struct {
	scoring config.ScoringConfig
	session config.SessionConfig
}

// NewDifficulty creates a difficulty controller from the loaded config.
func NewDifficulty(cfg config.GameConfig) *Difficulty {
	return &Difficulty{
		scoring: cfg.Scoring,
		session: cfg.Session,
	}
}

// Level returns the level for a given score: floor(score/step) + 1.
// With progression disabled (fixed preset) the level stays at 1.
func (d *Difficulty) Level(score int) int {
	if !d.session.Progression {
		return 1
	}
	step := d.scoring.LevelScoreStep
	if step <= 0 {
		return 1
	}
	return score/step + 1
}

// GameSpeed returns the fall-speed multiplier for a level.
func (d *Difficulty) GameSpeed(level int) float64 {
	return d.session.BaseGameSpeed + d.session.GameSpeedPerLevel*float64(level-1)
}

// SpawnRate returns the per-tick spawn probability for a level.
func (d *Difficulty) SpawnRate(level int) float64 {
	return d.session.BaseSpawnRate + d.session.SpawnRatePerLevel*float64(level-1)
}

// BadFoodChance returns the probability that a spawned object is Bad,
// capped at the configured maximum.
func (d *Difficulty) BadFoodChance(level int) float64 {
	chance := d.session.BaseBadChance + d.session.BadChancePerLevel*float64(level-1)
	if chance > d.session.MaxBadChance {
		return d.session.MaxBadChance
	}
	return chance
}

// PointValue returns the score awarded by a Good object at a level.
func (d *Difficulty) PointValue(level int) int {
	return d.scoring.BasePoints + d.scoring.PointsPerLevel*level
}

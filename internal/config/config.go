// Package config provides YAML-based game configuration loading and
// difficulty presets for Snackfall.
package config

// GameConfig contains all tunable parameters for a Snackfall session.
type GameConfig struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Player  PlayerConfig  `yaml:"player"`
	Food    FoodConfig    `yaml:"food"`
	Scoring ScoringConfig `yaml:"scoring"`
	Session SessionConfig `yaml:"session"`
	Timing  TimingConfig  `yaml:"timing"`
}

// ArenaConfig defines the virtual arena dimensions in arena units.
// The simulation runs in these units and is mapped to screen cells at
// render time, so gameplay is independent of terminal size.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines player entity parameters.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`         // Hitbox and visual width in arena units
	Height       float64 `yaml:"height"`        // Hitbox and visual height in arena units
	Speed        float64 `yaml:"speed"`         // Horizontal displacement per tick
	GroundOffset float64 `yaml:"ground_offset"` // Gap between player bottom and arena bottom
}

// FoodConfig defines falling-object parameters.
type FoodConfig struct {
	VisualWidth       float64 `yaml:"visual_width"`
	VisualHeight      float64 `yaml:"visual_height"`
	HitboxWidth       float64 `yaml:"hitbox_width"`  // Must be <= visual_width
	HitboxHeight      float64 `yaml:"hitbox_height"` // Must be <= visual_height
	BaseFallSpeed     float64 `yaml:"base_fall_speed"`
	FallSpeedPerLevel float64 `yaml:"fall_speed_per_level"`
	FallSpeedJitter   float64 `yaml:"fall_speed_jitter"` // Uniform random addition in [0, jitter)
}

// ScoringConfig defines point values and level thresholds.
type ScoringConfig struct {
	BasePoints     int `yaml:"base_points"`      // Good-food points before level bonus
	PointsPerLevel int `yaml:"points_per_level"` // Extra points per level
	LevelScoreStep int `yaml:"level_score_step"` // Score needed per level-up
}

// SessionConfig defines session-wide difficulty parameters.
// All per-level values are re-derived from the level, never accumulated,
// so they cannot drift within a session.
type SessionConfig struct {
	Lives             int     `yaml:"lives"`
	BaseGameSpeed     float64 `yaml:"base_game_speed"`
	GameSpeedPerLevel float64 `yaml:"game_speed_per_level"`
	BaseSpawnRate     float64 `yaml:"base_spawn_rate"` // Probability per tick
	SpawnRatePerLevel float64 `yaml:"spawn_rate_per_level"`
	BaseBadChance     float64 `yaml:"base_bad_chance"` // Probability a spawn is Bad
	BadChancePerLevel float64 `yaml:"bad_chance_per_level"`
	MaxBadChance      float64 `yaml:"max_bad_chance"`
	Progression       bool    `yaml:"progression"` // If false, level stays at 1
}

// TimingConfig defines all tick-derived durations in milliseconds.
// Reversion of Eating/Hit and the dramatic-sequence delays are modeled as
// tick countdowns, never wall-clock timers.
type TimingConfig struct {
	IdleFrameMs     float64 `yaml:"idle_frame_ms"`
	WalkingFrameMs  float64 `yaml:"walking_frame_ms"`
	EatingFrameMs   float64 `yaml:"eating_frame_ms"`
	HitFrameMs      float64 `yaml:"hit_frame_ms"`
	EatingHoldMs    float64 `yaml:"eating_hold_ms"`    // Eating reverts to Idle after this
	HitHoldMs       float64 `yaml:"hit_hold_ms"`       // Hit reverts to Idle after this
	BannerDelayMs   float64 `yaml:"banner_delay_ms"`   // Dramatic sequence: banner appears
	FinalizeDelayMs float64 `yaml:"finalize_delay_ms"` // Dramatic sequence: session finalizes
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Session.Lives = 5
		cfg.Session.Progression = true
	case DifficultyNormal:
		cfg.Session.Progression = true
	case DifficultyHard:
		cfg.Session.Lives = 2
		cfg.Session.BaseBadChance = 0.25
		cfg.Session.Progression = true
	case DifficultyFixed:
		// Level stays at 1; spawn rate, speed and bad chance never scale.
		cfg.Session.Progression = false
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/snackfall.yaml
var defaultYAML []byte

// Default returns the default Snackfall configuration.
// Kept in sync with defaults/snackfall.yaml as a fallback if the embedded
// file fails to parse.
func Default() GameConfig {
	return GameConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 480,
		},
		Player: PlayerConfig{
			Width:        70,
			Height:       80,
			Speed:        5.0,
			GroundOffset: 10,
		},
		Food: FoodConfig{
			VisualWidth:       30,
			VisualHeight:      30,
			HitboxWidth:       20,
			HitboxHeight:      20,
			BaseFallSpeed:     1.5,
			FallSpeedPerLevel: 0.3,
			FallSpeedJitter:   1.5,
		},
		Scoring: ScoringConfig{
			BasePoints:     10,
			PointsPerLevel: 5,
			LevelScoreStep: 200,
		},
		Session: SessionConfig{
			Lives:             3,
			BaseGameSpeed:     0.7,
			GameSpeedPerLevel: 0.1,
			BaseSpawnRate:     0.004,
			SpawnRatePerLevel: 0.002,
			BaseBadChance:     0.2,
			BadChancePerLevel: 0.05,
			MaxBadChance:      0.5,
			Progression:       true,
		},
		Timing: TimingConfig{
			IdleFrameMs:     200,
			WalkingFrameMs:  100,
			EatingFrameMs:   180,
			HitFrameMs:      150,
			EatingHoldMs:    150,
			HitHoldMs:       1200,
			BannerDelayMs:   1500,
			FinalizeDelayMs: 4000,
		},
	}
}

// DefaultYAML returns the embedded default YAML config.
func DefaultYAML() []byte {
	return defaultYAML
}

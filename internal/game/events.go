package game

import "github.com/snackfall/snackfall/internal/core"

// Event is a discrete simulation event emitted during a Step.
// The platform layer consumes events for HUD refresh, effects and session
// handling; the simulation never depends on who is listening.
type Event interface {
	gameEvent()
}

// ScoreChangedEvent is emitted whenever the score changes.
type ScoreChangedEvent struct {
	Score int
}

func (ScoreChangedEvent) gameEvent() {}

// LivesChangedEvent is emitted whenever the remaining lives change.
// Lives is already clamped at 0 for display.
type LivesChangedEvent struct {
	Lives int
}

func (LivesChangedEvent) gameEvent() {}

// LevelUpEvent is emitted when the score crosses a level threshold.
type LevelUpEvent struct {
	Level int
}

func (LevelUpEvent) gameEvent() {}

// FoodCaughtEvent is emitted when the player catches a Good object.
// Coordinates are the object's center in arena units.
type FoodCaughtEvent struct {
	X, Y   float64
	Points int
	Color  core.Color
}

func (FoodCaughtEvent) gameEvent() {}

// PlayerHitEvent is emitted when the player collides with a Bad object.
type PlayerHitEvent struct {
	X, Y float64
}

func (PlayerHitEvent) gameEvent() {}

// ScreenShakeEvent is emitted on a non-fatal Bad collision.
type ScreenShakeEvent struct{}

func (ScreenShakeEvent) gameEvent() {}

// DramaticStartedEvent is emitted exactly once, when lives reach 0 and the
// terminal game-over sequence begins.
type DramaticStartedEvent struct{}

func (DramaticStartedEvent) gameEvent() {}

// BannerShownEvent is emitted once, partway through the dramatic sequence,
// when the game-over banner should appear.
type BannerShownEvent struct{}

func (BannerShownEvent) gameEvent() {}

// SessionEndedEvent is emitted once, when the dramatic sequence completes
// and the session finalizes.
type SessionEndedEvent struct {
	FinalScore int
	FinalLevel int
}

func (SessionEndedEvent) gameEvent() {}

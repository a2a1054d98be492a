package game

import (
	"fmt"
	"hash/fnv"
)

// Snapshot captures the observable simulation state at one tick. Two
// sessions with the same seed and input history produce identical
// snapshots, which the determinism tests rely on.
type Snapshot struct {
	Tick        uint64
	Score       int
	Level       int
	Lives       int
	PlayerX     float64
	PlayerState AnimState
	Facing      Facing
	FoodCount   int
	Dramatic    bool
	GameOver    bool
}

// Snapshot returns the current observable state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		Score:       g.score,
		Level:       g.level,
		Lives:       g.lives,
		PlayerX:     g.player.X,
		PlayerState: g.player.State,
		Facing:      g.player.Facing,
		FoodCount:   g.foods.Count(),
		Dramatic:    g.dramatic,
		GameOver:    g.gameOver,
	}
}

// Hash returns a stable digest of the snapshot for cheap equality checks
// across replayed sessions.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%d|%d|%d|%.4f|%d|%d|%d|%t|%t",
		s.Tick, s.Score, s.Level, s.Lives,
		s.PlayerX, s.PlayerState, s.Facing,
		s.FoodCount, s.Dramatic, s.GameOver)
	return h.Sum64()
}

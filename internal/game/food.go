package game

import (
	"math/rand"

	"github.com/snackfall/snackfall/internal/config"
	"github.com/snackfall/snackfall/internal/core"
)

// Category classifies a falling object.
type Category int

const (
	CategoryGood Category = iota
	CategoryBad
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	if c == CategoryBad {
		return "Bad"
	}
	return "Good"
}

// Food is a single falling object. Its hitbox is smaller than its visual
// rectangle and always centered inside it, so near-misses that only graze
// the artwork do not count as collisions.
type Food struct {
	X, Y      float64 // Visual top-left in arena units
	W, H      float64 // Visual dimensions
	HitW      float64 // Hitbox dimensions, <= visual
	HitH      float64
	FallSpeed float64 // Arena units per tick, before the game-speed multiplier
	Category  Category
	Points    int // Score value; 0 for Bad
}

// Rect returns the visual rectangle.
func (f *Food) Rect() core.RectF {
	return core.NewRectF(f.X, f.Y, f.W, f.H)
}

// HitRect returns the collision rectangle, centered within the visual bounds.
func (f *Food) HitRect() core.RectF {
	return core.NewRectF(
		f.X+(f.W-f.HitW)/2,
		f.Y+(f.H-f.HitH)/2,
		f.HitW,
		f.HitH,
	)
}

// FoodManager owns the set of live falling objects: spawning, vertical
// physics and off-screen pruning.
type FoodManager struct {
	foods  []Food
	rng    *rand.Rand
	arenaW float64
	arenaH float64
	cfg    config.FoodConfig
}

// NewFoodManager creates a food manager with the given RNG seed.
func NewFoodManager(seed int64, cfg config.GameConfig) *FoodManager {
	return &FoodManager{
		foods:  make([]Food, 0, 16),
		rng:    rand.New(rand.NewSource(seed)),
		arenaW: cfg.Arena.Width,
		arenaH: cfg.Arena.Height,
		cfg:    cfg.Food,
	}
}

// Reset clears all objects and reseeds the RNG.
func (fm *FoodManager) Reset(seed int64) {
	fm.foods = fm.foods[:0]
	fm.rng = rand.New(rand.NewSource(seed))
}

// MaybeSpawn performs the per-tick spawn decision: one uniform draw against
// spawnRate, and on success a category draw, a horizontal position draw and
// a fall-speed jitter draw. Objects spawn fully above the arena. Returns the
// spawned object, or nil if the draw failed.
func (fm *FoodManager) MaybeSpawn(level int, spawnRate, badChance float64, pointValue int) *Food {
	if fm.rng.Float64() >= spawnRate {
		return nil
	}

	category := CategoryGood
	points := pointValue
	if fm.rng.Float64() < badChance {
		category = CategoryBad
		points = 0
	}

	f := Food{
		X:        fm.rng.Float64() * (fm.arenaW - fm.cfg.VisualWidth),
		Y:        -fm.cfg.VisualHeight,
		W:        fm.cfg.VisualWidth,
		H:        fm.cfg.VisualHeight,
		HitW:     fm.cfg.HitboxWidth,
		HitH:     fm.cfg.HitboxHeight,
		Category: category,
		Points:   points,
		FallSpeed: fm.cfg.BaseFallSpeed +
			fm.cfg.FallSpeedPerLevel*float64(level) +
			fm.rng.Float64()*fm.cfg.FallSpeedJitter,
	}
	fm.foods = append(fm.foods, f)
	return &fm.foods[len(fm.foods)-1]
}

// Advance moves every live object down by fallSpeed*gameSpeed and removes
// objects whose y exceeds the arena bottom. A miss has no side effect: no
// life penalty, no score change.
func (fm *FoodManager) Advance(gameSpeed float64) {
	live := fm.foods[:0]
	for _, f := range fm.foods {
		f.Y += f.FallSpeed * gameSpeed
		if f.Y > fm.arenaH {
			continue
		}
		live = append(live, f)
	}
	fm.foods = live
}

// Foods returns the current set of live objects.
func (fm *FoodManager) Foods() []Food {
	return fm.foods
}

// Remove deletes the object at index i, preserving order.
func (fm *FoodManager) Remove(i int) {
	fm.foods = append(fm.foods[:i], fm.foods[i+1:]...)
}

// Count returns the number of live objects.
func (fm *FoodManager) Count() int {
	return len(fm.foods)
}

// Package game implements the Snackfall simulation: a player catching
// falling food for points while dodging the bad pieces. The package is pure
// logic with no platform dependencies; the TUI layer drives it through
// Reset/Step/Render and consumes the events each Step emits.
package game

import (
	"github.com/snackfall/snackfall/internal/config"
	"github.com/snackfall/snackfall/internal/core"
)

// GameID is the identifier used for score storage.
const GameID = "snackfall"

// GameTitle is the display name.
const GameTitle = "Snackfall"

// configPath stores the custom config path set via CLI.
var configPath string

// difficultyPreset stores the difficulty preset set via CLI.
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State  core.GameState
	Events []Event // Valid until the next Step call
}

// Game holds one session of the Snackfall simulation. All state is mutated
// only by the tick pipeline on a single logical thread; input is read once
// per Step at the tick boundary.
type Game struct {
	runtime   core.RuntimeConfig
	cfg       config.GameConfig
	msPerTick float64
	tick      uint64

	player     *Player
	foods      *FoodManager
	effects    *EffectManager
	sprites    *SpriteSet
	difficulty *Difficulty

	score         int
	level         int
	lives         int
	gameSpeed     float64
	spawnRate     float64
	badFoodChance float64

	paused   bool
	gameOver bool

	// Dramatic game-over sequence state. Entry is guarded so simultaneous
	// fatal hits in one tick trigger it exactly once.
	dramatic      bool
	dramaticTicks int
	bannerShown   bool

	events []Event
}

// New creates a new game instance. Call Reset before stepping.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return GameTitle
}

// Reset initializes or restarts the session: score, level, lives and all
// derived difficulty parameters return to their starting values, the food
// set and effects are cleared and the player is recentered.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}
	g.msPerTick = 1000.0 / float64(g.runtime.TickRate)

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.difficulty = NewDifficulty(cfg)
	g.player = NewPlayer(cfg)

	if g.foods == nil {
		g.foods = NewFoodManager(runtime.Seed, cfg)
	} else {
		g.foods.Reset(runtime.Seed)
	}
	if g.effects == nil {
		g.effects = NewEffectManager(runtime.Seed + 1)
	} else {
		g.effects.Reset(runtime.Seed + 1)
	}
	if g.sprites == nil {
		g.sprites = DefaultSprites()
	}

	g.tick = 0
	g.score = 0
	g.level = 1
	g.lives = cfg.Session.Lives
	g.gameSpeed = g.difficulty.GameSpeed(1)
	g.spawnRate = g.difficulty.SpawnRate(1)
	g.badFoodChance = g.difficulty.BadFoodChance(1)

	g.paused = false
	g.gameOver = false
	g.dramatic = false
	g.dramaticTicks = 0
	g.bannerShown = false
	g.events = g.events[:0]
}

// SetSprites installs a sprite set, replacing the default one.
// A nil or not-ready set is fine; rendering falls back to flat shapes.
func (g *Game) SetSprites(s *SpriteSet) {
	if s == nil {
		s = NewSpriteSet()
	}
	g.sprites = s
}

// Step advances the simulation by one tick. The pipeline order is fixed:
// movement, animation, spawn, physics, collision, difficulty, terminal
// check, effects. Once the session has finalized Step is a no-op guard.
func (g *Game) Step(in core.InputFrame) StepResult {
	g.events = g.events[:0]

	if g.gameOver {
		return StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return StepResult{State: g.State()}
	}

	g.tick++

	g.player.Move(in.Has(core.ActionLeft), in.Has(core.ActionRight))
	g.player.Advance(g.msPerTick, g.sprites.FrameCount(g.player.State))

	if !g.dramatic {
		g.foods.MaybeSpawn(g.level, g.spawnRate, g.badFoodChance, g.difficulty.PointValue(g.level))
	}

	g.foods.Advance(g.gameSpeed)

	if !g.dramatic {
		g.resolveCollisions()
	}

	g.advanceDramatic()
	g.effects.Advance()

	return StepResult{State: g.State(), Events: g.events}
}

// resolveCollisions tests every live object's hitbox against the player's
// full rectangle and applies score/life effects. Consumed objects are
// removed. Once a fatal hit enters the dramatic sequence, the rest of the
// tick's collisions are absorbed.
func (g *Game) resolveCollisions() {
	playerRect := g.player.Rect()

	i := 0
	for i < g.foods.Count() {
		f := g.foods.Foods()[i]
		if !f.HitRect().Intersects(playerRect) {
			i++
			continue
		}

		cx, cy := f.Rect().CenterX(), f.Rect().CenterY()
		g.foods.Remove(i)

		if f.Category == CategoryGood {
			g.player.StartEating()
			_, color := g.sprites.FoodGlyph(CategoryGood)
			g.effects.Burst(cx, cy, color)
			g.events = append(g.events, FoodCaughtEvent{X: cx, Y: cy, Points: f.Points, Color: color})
			g.applyScore(f.Points)
			continue
		}

		g.applyHit(cx, cy)
		if g.dramatic {
			return
		}
	}
}

// applyScore adds points and recomputes difficulty. Level and all derived
// parameters are re-derived from the score, so a large award that crosses
// several thresholds lands on the right values.
func (g *Game) applyScore(points int) {
	g.score += points
	g.events = append(g.events, ScoreChangedEvent{Score: g.score})

	newLevel := g.difficulty.Level(g.score)
	if newLevel > g.level {
		g.level = newLevel
		g.gameSpeed = g.difficulty.GameSpeed(newLevel)
		g.spawnRate = g.difficulty.SpawnRate(newLevel)
		g.badFoodChance = g.difficulty.BadFoodChance(newLevel)
		g.events = append(g.events, LevelUpEvent{Level: newLevel})
	}
}

// applyHit handles a Bad-object collision. Lives clamp at 0; hits that land
// after the fatal one in the same tick are absorbed.
func (g *Game) applyHit(x, y float64) {
	g.events = append(g.events, PlayerHitEvent{X: x, Y: y})

	if g.lives <= 0 {
		return
	}
	g.lives--
	g.events = append(g.events, LivesChangedEvent{Lives: g.lives})

	if g.lives == 0 {
		g.enterDramatic()
		return
	}

	g.player.StartHit()
	g.effects.Shake()
	g.events = append(g.events, ScreenShakeEvent{})
}

// enterDramatic starts the terminal game-over sequence exactly once.
func (g *Game) enterDramatic() {
	if g.dramatic {
		return
	}
	g.dramatic = true
	g.dramaticTicks = 0
	g.bannerShown = false
	g.player.HoldHit()
	g.events = append(g.events, DramaticStartedEvent{})
}

// advanceDramatic progresses the game-over sequence: the banner appears
// after a fixed delay and the session finalizes after a further fixed
// delay, all counted in ticks.
func (g *Game) advanceDramatic() {
	if !g.dramatic || g.gameOver {
		return
	}
	g.dramaticTicks++

	if !g.bannerShown && g.dramaticTicks >= g.ticksFor(g.cfg.Timing.BannerDelayMs) {
		g.bannerShown = true
		g.events = append(g.events, BannerShownEvent{})
	}

	if g.dramaticTicks >= g.ticksFor(g.cfg.Timing.FinalizeDelayMs) {
		g.gameOver = true
		g.events = append(g.events, SessionEndedEvent{FinalScore: g.score, FinalLevel: g.level})
	}
}

// ticksFor converts a millisecond duration to a tick count, minimum 1.
func (g *Game) ticksFor(ms float64) int {
	t := int(ms * float64(g.runtime.TickRate) / 1000.0)
	if t < 1 {
		t = 1
	}
	return t
}

// State returns the current session state for the platform layer.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		Lives:    g.lives,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Player returns the player entity.
func (g *Game) Player() *Player {
	return g.player
}

// Foods returns the falling-object manager.
func (g *Game) Foods() *FoodManager {
	return g.foods
}

// Effects returns the cosmetic-effect manager.
func (g *Game) Effects() *EffectManager {
	return g.effects
}

// Dramatic reports whether the terminal sequence is in progress.
func (g *Game) Dramatic() bool {
	return g.dramatic
}

// BannerShown reports whether the game-over banner has appeared.
func (g *Game) BannerShown() bool {
	return g.bannerShown
}

// Config returns the loaded game configuration.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}

package game

import (
	"github.com/snackfall/snackfall/internal/config"
	"github.com/snackfall/snackfall/internal/core"
)

// AnimState identifies which sprite sequence and frame timing applies.
type AnimState int

const (
	StateIdle AnimState = iota
	StateWalking
	StateEating
	StateHit
)

// String returns a human-readable name for the animation state.
func (s AnimState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateWalking:
		return "Walking"
	case StateEating:
		return "Eating"
	case StateHit:
		return "Hit"
	default:
		return "Unknown"
	}
}

// Facing is the player's horizontal orientation.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Player is the player-controlled character: position, facing and the
// animation state machine. Created once per session reset and mutated every
// tick; never destroyed.
type Player struct {
	X      float64 // Left edge, clamped to [0, arenaW-Width]
	Y      float64 // Top edge, fixed for the whole session
	Width  float64
	Height float64
	Speed  float64 // Displacement per tick
	Facing Facing

	State AnimState
	Frame int // Wraps modulo the active sequence's frame count

	timerMs     float64 // Accumulated time toward the next frame advance
	holdMs      float64 // Remaining sticky duration for Eating/Hit
	holdForever bool    // Dramatic sequence: Hit cycles indefinitely

	arenaW float64
	timing config.TimingConfig
}

// NewPlayer creates a player centered at the bottom of the arena.
func NewPlayer(cfg config.GameConfig) *Player {
	return &Player{
		X:      (cfg.Arena.Width - cfg.Player.Width) / 2,
		Y:      cfg.Arena.Height - cfg.Player.Height - cfg.Player.GroundOffset,
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
		Speed:  cfg.Player.Speed,
		Facing: FacingRight,
		State:  StateIdle,
		arenaW: cfg.Arena.Width,
		timing: cfg.Timing,
	}
}

// Rect returns the player's full collision rectangle.
func (p *Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// Move applies one tick of horizontal movement. Both directions may be
// asserted in the same tick; each adjustment applies and clamps
// independently. Movement also drives the Idle/Walking transition unless the
// current state is sticky (Eating/Hit), in which case position still changes
// but the animation state does not.
func (p *Player) Move(left, right bool) {
	if left && p.X > 0 {
		p.X = core.ClampF(p.X-p.Speed, 0, p.arenaW-p.Width)
		p.Facing = FacingLeft
	}
	if right && p.X < p.arenaW-p.Width {
		p.X = core.ClampF(p.X+p.Speed, 0, p.arenaW-p.Width)
		p.Facing = FacingRight
	}

	if p.sticky() {
		return
	}
	if left || right {
		p.setState(StateWalking)
	} else {
		p.setState(StateIdle)
	}
}

// sticky reports whether movement input may not override the current state.
func (p *Player) sticky() bool {
	return p.State == StateEating || p.State == StateHit
}

// setState switches animation state, resetting frame and timer on change.
func (p *Player) setState(s AnimState) {
	if p.State == s {
		return
	}
	p.State = s
	p.Frame = 0
	p.timerMs = 0
}

// StartEating enters the Eating state for its fixed hold duration.
func (p *Player) StartEating() {
	p.State = StateEating
	p.Frame = 0
	p.timerMs = 0
	p.holdMs = p.timing.EatingHoldMs
	p.holdForever = false
}

// StartHit enters the Hit state for its fixed hold duration.
func (p *Player) StartHit() {
	p.State = StateHit
	p.Frame = 0
	p.timerMs = 0
	p.holdMs = p.timing.HitHoldMs
	p.holdForever = false
}

// HoldHit enters the Hit state and holds it indefinitely, cycling frames.
// Used by the dramatic game-over sequence.
func (p *Player) HoldHit() {
	p.State = StateHit
	p.Frame = 0
	p.timerMs = 0
	p.holdMs = 0
	p.holdForever = true
}

// Advance progresses the animation by one tick of dtMs milliseconds.
// frameCount is the number of frames registered for the active state; with
// zero frames the index is left untouched and the renderer falls back to a
// default pose. Sticky states revert to Idle when their hold expires,
// regardless of input, unless held forever.
func (p *Player) Advance(dtMs float64, frameCount int) {
	if p.sticky() && !p.holdForever {
		p.holdMs -= dtMs
		if p.holdMs <= 0 {
			p.setState(StateIdle)
		}
	}

	p.timerMs += dtMs
	if p.timerMs >= p.frameDuration() {
		p.timerMs = 0
		if frameCount > 0 {
			p.Frame = (p.Frame + 1) % frameCount
		}
	}
}

// frameDuration returns the active state's per-frame duration in ms.
func (p *Player) frameDuration() float64 {
	switch p.State {
	case StateWalking:
		return p.timing.WalkingFrameMs
	case StateEating:
		return p.timing.EatingFrameMs
	case StateHit:
		return p.timing.HitFrameMs
	default:
		return p.timing.IdleFrameMs
	}
}

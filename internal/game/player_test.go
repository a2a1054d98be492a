package game

import (
	"testing"

	"github.com/snackfall/snackfall/internal/config"
)

func newTestPlayer() *Player {
	return NewPlayer(config.Default())
}

func TestPlayerStartsCentered(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg)

	wantX := (cfg.Arena.Width - cfg.Player.Width) / 2
	if p.X != wantX {
		t.Errorf("start X = %v, want %v", p.X, wantX)
	}
	wantY := cfg.Arena.Height - cfg.Player.Height - cfg.Player.GroundOffset
	if p.Y != wantY {
		t.Errorf("start Y = %v, want %v", p.Y, wantY)
	}
	if p.State != StateIdle {
		t.Errorf("start state = %v, want Idle", p.State)
	}
	if p.Facing != FacingRight {
		t.Errorf("start facing = %v, want right", p.Facing)
	}
}

func TestPlayerMoveClampsToArena(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg)

	for i := 0; i < 1000; i++ {
		p.Move(true, false)
	}
	if p.X != 0 {
		t.Errorf("after sustained left, X = %v, want 0", p.X)
	}
	if p.Facing != FacingLeft {
		t.Errorf("facing = %v, want left", p.Facing)
	}

	for i := 0; i < 1000; i++ {
		p.Move(false, true)
	}
	if want := cfg.Arena.Width - cfg.Player.Width; p.X != want {
		t.Errorf("after sustained right, X = %v, want %v", p.X, want)
	}
}

func TestPlayerMoveBothDirectionsSameTick(t *testing.T) {
	p := newTestPlayer()
	start := p.X

	p.Move(true, true)
	if p.X != start {
		t.Errorf("both directions away from edges: X = %v, want %v", p.X, start)
	}
	if p.State != StateWalking {
		t.Errorf("state = %v, want Walking", p.State)
	}

	// At the left edge only the right adjustment applies.
	p.X = 0
	p.Move(true, true)
	if p.X != p.Speed {
		t.Errorf("both directions at left edge: X = %v, want %v", p.X, p.Speed)
	}
}

func TestPlayerIdleWalkingTransition(t *testing.T) {
	p := newTestPlayer()

	p.Move(false, true)
	if p.State != StateWalking {
		t.Fatalf("state after input = %v, want Walking", p.State)
	}
	p.Move(false, false)
	if p.State != StateIdle {
		t.Errorf("state after no input = %v, want Idle", p.State)
	}
}

func TestPlayerStickyEatingMovesButKeepsState(t *testing.T) {
	p := newTestPlayer()
	start := p.X

	p.StartEating()
	p.Move(false, true)

	if p.X != start+p.Speed {
		t.Errorf("X = %v, want %v (movement applies during Eating)", p.X, start+p.Speed)
	}
	if p.State != StateEating {
		t.Errorf("state = %v, want Eating (sticky against movement)", p.State)
	}
}

func TestPlayerEatingRevertsAfterHold(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg)
	dt := 1000.0 / 60.0

	p.StartEating()
	ticks := int(cfg.Timing.EatingHoldMs/dt) + 2
	for i := 0; i < ticks; i++ {
		p.Advance(dt, 2)
	}
	if p.State != StateIdle {
		t.Errorf("state after hold expired = %v, want Idle", p.State)
	}
}

func TestPlayerHitRevertsAfterHold(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg)
	dt := 1000.0 / 60.0

	p.StartHit()
	// Halfway through the hold the state must still be Hit.
	half := int(cfg.Timing.HitHoldMs / dt / 2)
	for i := 0; i < half; i++ {
		p.Advance(dt, 2)
	}
	if p.State != StateHit {
		t.Fatalf("state mid-hold = %v, want Hit", p.State)
	}

	for i := 0; i < half+2; i++ {
		p.Advance(dt, 2)
	}
	if p.State != StateIdle {
		t.Errorf("state after hold expired = %v, want Idle", p.State)
	}
}

func TestPlayerHoldHitNeverReverts(t *testing.T) {
	p := newTestPlayer()
	dt := 1000.0 / 60.0

	p.HoldHit()
	for i := 0; i < 10000; i++ {
		p.Advance(dt, 2)
	}
	if p.State != StateHit {
		t.Errorf("state = %v, want Hit held indefinitely", p.State)
	}
}

func TestPlayerFrameWraps(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg)

	p.Move(false, true) // Walking
	seen := make(map[int]bool)
	for i := 0; i < 100; i++ {
		p.Advance(cfg.Timing.WalkingFrameMs, 4)
		seen[p.Frame] = true
		if p.Frame < 0 || p.Frame > 3 {
			t.Fatalf("frame %d out of range [0,3]", p.Frame)
		}
	}
	for f := 0; f < 4; f++ {
		if !seen[f] {
			t.Errorf("frame %d never reached", f)
		}
	}
}

func TestPlayerZeroFrameCount(t *testing.T) {
	p := newTestPlayer()

	for i := 0; i < 100; i++ {
		p.Advance(1000, 0)
	}
	if p.Frame != 0 {
		t.Errorf("frame = %d, want 0 with no registered frames", p.Frame)
	}
}

package game

import (
	"testing"

	"github.com/snackfall/snackfall/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

// placeFood injects an object directly into the live set, bypassing the
// spawn draw, so collision scenarios are exact.
func placeFood(g *Game, cat Category, points int, overlap bool) {
	p := g.player
	x := p.X + 20
	if !overlap {
		x = p.X + 200
	}
	f := Food{
		X: x, Y: p.Y + 20,
		W: 30, H: 30, HitW: 20, HitH: 20,
		FallSpeed: 0, Category: cat, Points: points,
	}
	g.foods.foods = append(g.foods.foods, f)
}

func eventsOf[T Event](events []Event) []T {
	var out []T
	for _, e := range events {
		if v, ok := e.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func scriptedInput(tick int) core.InputFrame {
	in := core.NewInputFrame()
	switch {
	case tick%120 < 40:
		in.Set(core.ActionLeft)
	case tick%120 >= 60 && tick%120 < 100:
		in.Set(core.ActionRight)
	}
	return in
}

func TestStepIsDeterministic(t *testing.T) {
	a := newTestGame(42)
	b := newTestGame(42)

	for tick := 0; tick < 600; tick++ {
		a.Step(scriptedInput(tick))
		b.Step(scriptedInput(tick))

		ha, hb := a.Snapshot().Hash(), b.Snapshot().Hash()
		if ha != hb {
			t.Fatalf("tick %d: snapshot hashes diverged: %x vs %x\n%+v\n%+v",
				tick, ha, hb, a.Snapshot(), b.Snapshot())
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := newTestGame(1)
	b := newTestGame(2)

	diverged := false
	for tick := 0; tick < 5000; tick++ {
		a.Step(core.NewInputFrame())
		b.Step(core.NewInputFrame())
		if a.Snapshot().FoodCount != b.Snapshot().FoodCount {
			diverged = true
			break
		}
	}
	if !diverged {
		t.Error("seeds 1 and 2 produced identical spawn timelines over 5000 ticks")
	}
}

func TestCatchGoodFoodAwardsPoints(t *testing.T) {
	g := newTestGame(1)
	g.spawnRate = 0
	placeFood(g, CategoryGood, 15, true)

	res := g.Step(core.NewInputFrame())

	if res.State.Score != 15 {
		t.Errorf("score = %d, want 15", res.State.Score)
	}
	if g.player.State != StateEating {
		t.Errorf("player state = %v, want Eating", g.player.State)
	}
	if g.foods.Count() != 0 {
		t.Errorf("food count = %d, want 0 (consumed)", g.foods.Count())
	}
	if got := eventsOf[FoodCaughtEvent](res.Events); len(got) != 1 || got[0].Points != 15 {
		t.Errorf("FoodCaught events = %+v, want one with 15 points", got)
	}
	if got := eventsOf[ScoreChangedEvent](res.Events); len(got) != 1 || got[0].Score != 15 {
		t.Errorf("ScoreChanged events = %+v, want one with score 15", got)
	}
}

func TestLevelUpRecomputesParameters(t *testing.T) {
	g := newTestGame(1)
	g.spawnRate = 0
	placeFood(g, CategoryGood, 200, true)

	res := g.Step(core.NewInputFrame())

	if res.State.Level != 2 {
		t.Fatalf("level = %d, want 2", res.State.Level)
	}
	if !almostEqual(g.gameSpeed, 0.8) {
		t.Errorf("gameSpeed = %v, want 0.8", g.gameSpeed)
	}
	if !almostEqual(g.spawnRate, 0.006) {
		t.Errorf("spawnRate = %v, want 0.006", g.spawnRate)
	}
	if !almostEqual(g.badFoodChance, 0.25) {
		t.Errorf("badFoodChance = %v, want 0.25", g.badFoodChance)
	}
	if got := eventsOf[LevelUpEvent](res.Events); len(got) != 1 || got[0].Level != 2 {
		t.Errorf("LevelUp events = %+v, want one with level 2", got)
	}
}

func TestBadFoodCostsLife(t *testing.T) {
	g := newTestGame(1)
	g.spawnRate = 0
	placeFood(g, CategoryBad, 0, true)

	res := g.Step(core.NewInputFrame())

	if res.State.Lives != 2 {
		t.Errorf("lives = %d, want 2", res.State.Lives)
	}
	if res.State.Score != 0 {
		t.Errorf("score = %d, want 0 (bad food never scores)", res.State.Score)
	}
	if g.player.State != StateHit {
		t.Errorf("player state = %v, want Hit", g.player.State)
	}
	if got := eventsOf[LivesChangedEvent](res.Events); len(got) != 1 || got[0].Lives != 2 {
		t.Errorf("LivesChanged events = %+v, want one with 2 lives", got)
	}
	if len(eventsOf[ScreenShakeEvent](res.Events)) != 1 {
		t.Error("expected a screen shake on a non-fatal hit")
	}
	if g.Dramatic() {
		t.Error("non-fatal hit entered the dramatic sequence")
	}
}

func TestFatalHitEntersDramaticOnce(t *testing.T) {
	g := newTestGame(1)
	g.spawnRate = 0
	g.lives = 1
	placeFood(g, CategoryBad, 0, true)
	placeFood(g, CategoryBad, 0, true)

	res := g.Step(core.NewInputFrame())

	if res.State.Lives != 0 {
		t.Errorf("lives = %d, want 0 (clamped)", res.State.Lives)
	}
	if !g.Dramatic() {
		t.Fatal("fatal hit did not enter the dramatic sequence")
	}
	if res.State.GameOver {
		t.Error("session finalized immediately; the dramatic delay was skipped")
	}
	if got := len(eventsOf[DramaticStartedEvent](res.Events)); got != 1 {
		t.Errorf("DramaticStarted events = %d, want exactly 1", got)
	}
	// The second overlapping object is absorbed, not processed.
	if g.foods.Count() != 1 {
		t.Errorf("food count = %d, want 1 (collision resolution stopped)", g.foods.Count())
	}
	if g.player.State != StateHit {
		t.Errorf("player state = %v, want Hit held", g.player.State)
	}
}

func TestDramaticSequenceTiming(t *testing.T) {
	g := newTestGame(1)
	g.spawnRate = 0
	g.lives = 1
	placeFood(g, CategoryBad, 0, true)
	g.Step(core.NewInputFrame()) // dramatic tick 1

	bannerStep, finalStep := 0, 0
	for step := 2; step <= 300; step++ {
		res := g.Step(core.NewInputFrame())
		if len(eventsOf[BannerShownEvent](res.Events)) > 0 {
			bannerStep = step
		}
		if got := eventsOf[SessionEndedEvent](res.Events); len(got) > 0 {
			finalStep = step
			if got[0].FinalScore != 0 || got[0].FinalLevel != 1 {
				t.Errorf("SessionEnded = %+v, want score 0 level 1", got[0])
			}
			break
		}
	}

	// 1500ms and 4000ms at 60 ticks/s.
	if bannerStep != 90 {
		t.Errorf("banner shown at dramatic tick %d, want 90", bannerStep)
	}
	if finalStep != 240 {
		t.Errorf("session finalized at dramatic tick %d, want 240", finalStep)
	}
	if !g.State().GameOver {
		t.Error("GameOver not set after finalize")
	}
}

func TestStepAfterGameOverIsNoop(t *testing.T) {
	g := newTestGame(1)
	g.spawnRate = 0
	g.lives = 1
	placeFood(g, CategoryBad, 0, true)
	for i := 0; i < 300 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.State().GameOver {
		t.Fatal("session never finalized")
	}

	before := g.Snapshot()
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	res := g.Step(in)

	if len(res.Events) != 0 {
		t.Errorf("events after game over = %+v, want none", res.Events)
	}
	if g.Snapshot() != before {
		t.Errorf("state changed after game over: %+v vs %+v", g.Snapshot(), before)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(1)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	res := g.Step(in)
	if !res.State.Paused {
		t.Fatal("pause action did not pause")
	}

	before := g.Snapshot()
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Snapshot() != before {
		t.Error("simulation advanced while paused")
	}

	res = g.Step(in)
	if res.State.Paused {
		t.Fatal("second pause action did not resume")
	}
	if g.Snapshot().Tick != before.Tick+1 {
		t.Errorf("tick = %d, want %d after resume", g.Snapshot().Tick, before.Tick+1)
	}
}

func TestMissHasNoPenalty(t *testing.T) {
	g := newTestGame(1)
	g.spawnRate = 0
	g.foods.foods = append(g.foods.foods, Food{
		X: 0, Y: g.cfg.Arena.Height - 1,
		W: 30, H: 30, HitW: 20, HitH: 20,
		FallSpeed: 50, Category: CategoryGood, Points: 15,
	})

	res := g.Step(core.NewInputFrame())

	if g.foods.Count() != 0 {
		t.Errorf("food count = %d, want 0 (pruned off-screen)", g.foods.Count())
	}
	if res.State.Score != 0 || res.State.Lives != 3 {
		t.Errorf("score/lives = %d/%d, want 0/3 (a miss has no side effect)",
			res.State.Score, res.State.Lives)
	}
	if len(res.Events) != 0 {
		t.Errorf("events = %+v, want none", res.Events)
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	g := newTestGame(7)
	g.spawnRate = 0
	g.lives = 1
	placeFood(g, CategoryBad, 0, true)
	for i := 0; i < 300 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})

	snap := g.Snapshot()
	if snap.Tick != 0 || snap.Score != 0 || snap.Level != 1 || snap.Lives != 3 {
		t.Errorf("snapshot after reset = %+v, want fresh session", snap)
	}
	if snap.Dramatic || snap.GameOver {
		t.Errorf("terminal flags survived reset: %+v", snap)
	}
	if snap.FoodCount != 0 {
		t.Errorf("food count after reset = %d, want 0", snap.FoodCount)
	}
}

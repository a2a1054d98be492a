package game

import (
	"math/rand"

	"github.com/snackfall/snackfall/internal/core"
)

// Particle is a single cosmetic particle with its own remaining lifetime,
// advanced once per tick alongside the main loop. No timers, no callbacks:
// cleanup on session reset is just clearing the list.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Color  core.Color
	Life   int // Remaining ticks
}

const (
	particlesPerBurst = 8
	particleLife      = 30 // Ticks
	shakeDuration     = 12 // Ticks
)

// EffectManager owns all active cosmetic effects. It runs on its own RNG so
// cosmetics never perturb the simulation's random draws.
type EffectManager struct {
	particles []Particle
	shake     int
	rng       *rand.Rand
}

// NewEffectManager creates an effect manager with the given RNG seed.
func NewEffectManager(seed int64) *EffectManager {
	return &EffectManager{
		particles: make([]Particle, 0, 64),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Reset clears all active effects and reseeds the RNG.
func (em *EffectManager) Reset(seed int64) {
	em.particles = em.particles[:0]
	em.shake = 0
	em.rng = rand.New(rand.NewSource(seed))
}

// Burst spawns a radial particle burst at (x, y) in arena units.
func (em *EffectManager) Burst(x, y float64, c core.Color) {
	for i := 0; i < particlesPerBurst; i++ {
		em.particles = append(em.particles, Particle{
			X:     x,
			Y:     y,
			VX:    (em.rng.Float64() - 0.5) * 6,
			VY:    (em.rng.Float64() - 0.8) * 5,
			Color: c,
			Life:  particleLife,
		})
	}
}

// Shake starts (or restarts) a screen shake.
func (em *EffectManager) Shake() {
	em.shake = shakeDuration
}

// Advance progresses every effect by one tick and prunes expired ones.
func (em *EffectManager) Advance() {
	live := em.particles[:0]
	for _, p := range em.particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += 0.2 // Light gravity
		p.Life--
		if p.Life <= 0 {
			continue
		}
		live = append(live, p)
	}
	em.particles = live

	if em.shake > 0 {
		em.shake--
	}
}

// Particles returns the active particles.
func (em *EffectManager) Particles() []Particle {
	return em.particles
}

// ShakeOffset returns the current horizontal render offset in cells,
// alternating each tick while a shake is active.
func (em *EffectManager) ShakeOffset() int {
	if em.shake <= 0 {
		return 0
	}
	if em.shake%2 == 0 {
		return 1
	}
	return -1
}

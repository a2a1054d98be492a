package game

import "github.com/snackfall/snackfall/internal/core"

// SpriteFrame is one pose of cell art: equal-width rows of runes.
type SpriteFrame []string

// SpriteSeq is an ordered sequence of frames drawn in one color.
type SpriteSeq struct {
	Frames []SpriteFrame
	Color  core.Color
}

// SpriteSet is the asset collaborator boundary: drawable sequences keyed by
// animation state plus glyphs for the food categories, with a readiness
// flag. The renderer indexes frames modulo sequence length and never fails
// on a missing asset; the fallback order is state sequence, then the Idle
// sequence, then a flat-color shape.
type SpriteSet struct {
	ready     bool
	seqs      map[AnimState]SpriteSeq
	goodGlyph rune
	badGlyph  rune
	goodColor core.Color
	badColor  core.Color

	// Flat-color fallback used when no sequence resolves.
	FallbackGlyph rune
	FallbackColor core.Color
}

// NewSpriteSet creates an empty, not-ready sprite set. The game ticks
// normally against it; rendering falls back to flat shapes.
func NewSpriteSet() *SpriteSet {
	return &SpriteSet{
		seqs:          make(map[AnimState]SpriteSeq),
		goodGlyph:     '●',
		badGlyph:      '✖',
		goodColor:     core.ColorBrightGreen,
		badColor:      core.ColorBrightRed,
		FallbackGlyph: '█',
		FallbackColor: core.ColorGray,
	}
}

// Register installs the frame sequence for an animation state.
func (s *SpriteSet) Register(state AnimState, seq SpriteSeq) {
	s.seqs[state] = seq
}

// SetReady flips the readiness flag.
func (s *SpriteSet) SetReady(ready bool) {
	s.ready = ready
}

// Ready reports whether assets are loaded. Not-ready is a normal transient
// state, never an error.
func (s *SpriteSet) Ready() bool {
	return s.ready
}

// FrameCount returns the number of frames registered for a state, without
// fallback. The animation timer only advances the frame index when this is
// non-zero.
func (s *SpriteSet) FrameCount(state AnimState) int {
	return len(s.seqs[state].Frames)
}

// Frame resolves the drawable frame for a state and index, applying the
// fallback chain: state sequence, then Idle, then nothing (the caller draws
// the flat fallback shape). The index wraps modulo the resolved sequence
// length.
func (s *SpriteSet) Frame(state AnimState, idx int) (SpriteFrame, core.Color, bool) {
	if !s.ready {
		return nil, s.FallbackColor, false
	}
	seq, ok := s.seqs[state]
	if !ok || len(seq.Frames) == 0 {
		seq, ok = s.seqs[StateIdle]
		if !ok || len(seq.Frames) == 0 {
			return nil, s.FallbackColor, false
		}
	}
	return seq.Frames[idx%len(seq.Frames)], seq.Color, true
}

// FoodGlyph returns the glyph and color for a food category.
func (s *SpriteSet) FoodGlyph(c Category) (rune, core.Color) {
	if !s.ready {
		return s.FallbackGlyph, s.FallbackColor
	}
	if c == CategoryBad {
		return s.badGlyph, s.badColor
	}
	return s.goodGlyph, s.goodColor
}

// DefaultSprites returns the built-in character art for all four states.
func DefaultSprites() *SpriteSet {
	s := NewSpriteSet()

	s.Register(StateIdle, SpriteSeq{
		Color: core.ColorBrightYellow,
		Frames: []SpriteFrame{
			{
				"  ___  ",
				" (o o) ",
				" /| |\\ ",
				"  d b  ",
			},
			{
				"  ___  ",
				" (- -) ",
				" /| |\\ ",
				"  d b  ",
			},
		},
	})

	s.Register(StateWalking, SpriteSeq{
		Color: core.ColorBrightYellow,
		Frames: []SpriteFrame{
			{
				"  ___  ",
				" (o o) ",
				" /| |\\ ",
				" _/ b  ",
			},
			{
				"  ___  ",
				" (o o) ",
				" /| |\\ ",
				"  d \\_ ",
			},
			{
				"  ___  ",
				" (o o) ",
				" /| |\\ ",
				" _/ \\_ ",
			},
			{
				"  ___  ",
				" (o o) ",
				" /| |\\ ",
				"  d b  ",
			},
		},
	})

	s.Register(StateEating, SpriteSeq{
		Color: core.ColorBrightGreen,
		Frames: []SpriteFrame{
			{
				"  ___  ",
				" (>o<) ",
				" /| |\\ ",
				"  d b  ",
			},
			{
				"  ___  ",
				" (^u^) ",
				" /| |\\ ",
				"  d b  ",
			},
		},
	})

	s.Register(StateHit, SpriteSeq{
		Color: core.ColorBrightRed,
		Frames: []SpriteFrame{
			{
				"  ___  ",
				" (x x) ",
				" /| |\\ ",
				"  d b  ",
			},
			{
				"  ___  ",
				" (X X) ",
				" \\| |/ ",
				"  d b  ",
			},
		},
	})

	s.SetReady(true)
	return s
}

package edgeart

import "image"

// Session carries the state shared between render passes: the seed and
// the generator it drives. Passes must not overlap.
type Session struct {
	seed int64
	rng  *PRNG
}

// NewSession returns a session seeded with seed.
func NewSession(seed int64) *Session {
	return &Session{seed: seed, rng: NewPRNG(seed)}
}

// Seed returns the current seed.
func (s *Session) Seed() int64 { return s.seed }

// Shuffle moves to the next seed and restarts the generator.
func (s *Session) Shuffle() {
	s.seed++
	s.rng.Seed(s.seed)
}

// Render runs one pass of p over src. With the sequential drop out the
// generator restarts from the seed, so the same options always yield the
// same drawing. The random drop out keeps consuming the running sequence.
func (s *Session) Render(p *Processor, src image.Image, c Canvas) (*Stats, error) {
	if p.DropOut == Sequential {
		s.rng.Seed(s.seed)
	}
	return p.Draw(src, c, s.rng)
}

package obstacle

import "github.com/lixenwraith/flapper/vmath"

// GapSource supplies the vertical offset of a new obstacle gap
// Implementations may return anything; Track clamps before use
type GapSource interface {
	NextGapOffset() float64
}

// RandomGapSource draws offsets uniformly from [-Range, +Range)
type RandomGapSource struct {
	Range float64
	rng   *vmath.FastRand
}

// NewRandomGapSource creates a seeded source; equal seeds yield equal sequences
func NewRandomGapSource(seed uint64, gapRange float64) *RandomGapSource {
	return &RandomGapSource{
		Range: gapRange,
		rng:   vmath.NewFastRand(seed),
	}
}

func (s *RandomGapSource) NextGapOffset() float64 {
	return s.rng.Range(-s.Range, s.Range)
}

// SequenceSource replays fixed offsets in order, wrapping at the end
// An empty sequence always yields 0
type SequenceSource struct {
	Offsets []float64
	next    int
}

func (s *SequenceSource) NextGapOffset() float64 {
	if len(s.Offsets) == 0 {
		return 0
	}
	v := s.Offsets[s.next%len(s.Offsets)]
	s.next++
	return v
}

// Draws returns how many offsets have been taken
func (s *SequenceSource) Draws() int {
	return s.next
}

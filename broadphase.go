package ballpit

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

var ErrUnknownBroadPhase = errors.New("unknown broad phase")

const (
	BroadPhaseSweepX = "sweep"
	BroadPhaseSweepY = "sweep-y"
	BroadPhaseScan   = "scan"
	BroadPhaseGrid   = "grid"
)

// Pair holds two body indices with I < J.
type Pair struct {
	I, J int
}

func makePair(a, b int) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{I: a, J: b}
}

// BroadPhase produces candidate pairs whose bounding intervals overlap.
// Implementations append to dst and return it. Candidates may include pairs
// that do not truly collide; they never omit a pair that does.
type BroadPhase interface {
	Pairs(bodies []Body, dst []Pair) []Pair
}

func NewBroadPhase(name string) (BroadPhase, error) {
	switch name {
	case "", BroadPhaseSweepX:
		return NewSweepAndPrune(0), nil
	case BroadPhaseSweepY:
		return NewSweepAndPrune(1), nil
	case BroadPhaseScan:
		return PairScan{}, nil
	case BroadPhaseGrid:
		return NewSpatialHashGrid(0), nil
	}
	return nil, fmt.Errorf("broad phase %q: %w", name, ErrUnknownBroadPhase)
}

// SweepAndPrune sorts bodies by the minimum of their interval on one axis
// and sweeps an active list across them. Bodies are not moved; the sort runs
// over an index permutation that is reused between frames.
type SweepAndPrune struct {
	Axis int

	order  []int
	active []int
}

func NewSweepAndPrune(axis int) *SweepAndPrune {
	return &SweepAndPrune{Axis: axis}
}

func (s *SweepAndPrune) Pairs(bodies []Body, dst []Pair) []Pair {
	axis := s.Axis

	s.order = s.order[:0]
	for i := range bodies {
		s.order = append(s.order, i)
	}
	slices.SortFunc(s.order, func(a, b int) int {
		return cmp.Compare(bodies[a].Min(axis), bodies[b].Min(axis))
	})

	s.active = s.active[:0]
	for _, cur := range s.order {
		lo := bodies[cur].Min(axis)

		// Evict intervals that end before this one starts. Touching intervals
		// stay, since exact contact still counts as a collision.
		kept := s.active[:0]
		for _, other := range s.active {
			if bodies[other].Max(axis) >= lo {
				kept = append(kept, other)
			}
		}
		s.active = kept

		for _, other := range s.active {
			dst = append(dst, makePair(other, cur))
		}
		s.active = append(s.active, cur)
	}
	return dst
}

// PairScan tests every unordered pair exactly once.
type PairScan struct{}

func (PairScan) Pairs(bodies []Body, dst []Pair) []Pair {
	for i := 0; i < len(bodies)-1; i++ {
		for j := i + 1; j < len(bodies); j++ {
			dst = append(dst, Pair{I: i, J: j})
		}
	}
	return dst
}

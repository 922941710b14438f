package search

import (
	"github.com/hawell/seedfinder/internal/lcg"
	"github.com/hawell/seedfinder/internal/targets"
)

type Result struct {
	Found    bool
	Distance uint64
	Seed     uint32
}

func NotFound() Result {
	return Result{}
}

func Found(distance uint64, seed uint32) Result {
	return Result{Found: true, Distance: distance, Seed: seed}
}

type Finder interface {
	Find(start uint32) Result
}

// Searcher walks the generator forward from a start seed until it lands on a
// target. No query advances the generator more than maxRolls times.
type Searcher struct {
	targets  *targets.Set
	maxRolls uint64
}

func NewSearcher(targets *targets.Set, maxRolls uint64) *Searcher {
	return &Searcher{
		targets:  targets,
		maxRolls: maxRolls,
	}
}

func (s *Searcher) MaxRolls() uint64 {
	return s.maxRolls
}

func (s *Searcher) Find(start uint32) Result {
	if s.targets.Contains(start) {
		return Found(0, start)
	}
	gen := lcg.NewGenerator(start)
	// a target first reached on roll maxRolls is outside the window
	for rolls := uint64(1); rolls < s.maxRolls; rolls++ {
		seed := gen.Next()
		if s.targets.Contains(seed) {
			return Found(rolls, seed)
		}
	}
	return NotFound()
}

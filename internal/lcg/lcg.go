package lcg

// Constants of the Microsoft Visual C runtime rand() recurrence.
const (
	Multiplier uint32 = 214013
	Increment  uint32 = 2531011
)

// Step advances seed by one roll. Arithmetic wraps modulo 2^32.
func Step(seed uint32) uint32 {
	return seed*Multiplier + Increment
}

type Generator struct {
	seed uint32
}

func NewGenerator(seed uint32) *Generator {
	return &Generator{seed: seed}
}

func (g *Generator) Seed() uint32 {
	return g.seed
}

func (g *Generator) Next() uint32 {
	g.seed = Step(g.seed)
	return g.seed
}

func (g *Generator) Advance(n uint64) uint32 {
	for i := uint64(0); i < n; i++ {
		g.seed = Step(g.seed)
	}
	return g.seed
}

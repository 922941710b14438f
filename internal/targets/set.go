package targets

import (
	"encoding/binary"
	"github.com/hashicorp/go-immutable-radix"
)

// small sets are probed with a linear scan, which beats a map lookup in the
// search loop for the usual handful of targets.
const linearProbeLimit = 8

// Set is an immutable collection of target seeds.
type Set struct {
	tree   *iradix.Tree
	linear []uint32
	lookup map[uint32]struct{}
}

func seedKey(seed uint32) []byte {
	key := make([]byte, 4)
	binary.BigEndian.PutUint32(key, seed)
	return key
}

func NewSet(seeds ...uint32) *Set {
	b := newBuilder()
	for _, seed := range seeds {
		b.add(seed)
	}
	return b.build()
}

func (s *Set) Contains(seed uint32) bool {
	if s.lookup == nil {
		for _, t := range s.linear {
			if t == seed {
				return true
			}
		}
		return false
	}
	_, ok := s.lookup[seed]
	return ok
}

func (s *Set) Len() int {
	return s.tree.Len()
}

// Seeds returns the members in ascending order.
func (s *Set) Seeds() []uint32 {
	seeds := make([]uint32, 0, s.tree.Len())
	s.tree.Root().Walk(func(k []byte, v interface{}) bool {
		seeds = append(seeds, v.(uint32))
		return false
	})
	return seeds
}

type builder struct {
	txn  *iradix.Txn
	size int
}

func newBuilder() *builder {
	return &builder{txn: iradix.New().Txn()}
}

// add inserts seed and reports whether it was already present.
func (b *builder) add(seed uint32) bool {
	_, updated := b.txn.Insert(seedKey(seed), seed)
	if !updated {
		b.size++
	}
	return updated
}

func (b *builder) build() *Set {
	s := &Set{tree: b.txn.Commit()}
	seeds := s.Seeds()
	if len(seeds) <= linearProbeLimit {
		s.linear = seeds
		return s
	}
	s.lookup = make(map[uint32]struct{}, len(seeds))
	for _, seed := range seeds {
		s.lookup[seed] = struct{}{}
	}
	return s
}

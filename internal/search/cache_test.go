package search

import (
	. "github.com/onsi/gomega"
	"testing"
)

type countingFinder struct {
	calls  map[uint32]int
	result Result
}

func (f *countingFinder) Find(start uint32) Result {
	f.calls[start]++
	return f.result
}

func TestCachedSearcher(t *testing.T) {
	g := NewGomegaWithT(t)

	inner := &countingFinder{calls: map[uint32]int{}, result: Found(42, 0xEA0EEDC2)}
	c, err := NewCachedSearcher(inner, 16)
	g.Expect(err).To(BeNil())
	defer c.ShutDown()

	g.Expect(c.Find(1)).To(Equal(Found(42, 0xEA0EEDC2)))
	c.cache.Wait()
	g.Expect(c.Find(1)).To(Equal(Found(42, 0xEA0EEDC2)))
	g.Expect(inner.calls[1]).To(Equal(1))

	g.Expect(c.Find(2)).To(Equal(Found(42, 0xEA0EEDC2)))
	g.Expect(inner.calls[2]).To(Equal(1))
}

func TestConfigNewFinder(t *testing.T) {
	g := NewGomegaWithT(t)

	cfg := DefaultConfig()
	g.Expect(cfg.MaxRolls()).To(Equal(uint64(174020400)))

	f, err := cfg.NewFinder(defaultTargets)
	g.Expect(err).To(BeNil())
	g.Expect(f).To(BeAssignableToTypeOf(&CachedSearcher{}))
	g.Expect(f.Find(0x5248791C)).To(Equal(Found(1000, 0xD082D644)))

	cfg.CacheSize = 0
	cfg.WindowHours = 1
	f, err = cfg.NewFinder(defaultTargets)
	g.Expect(err).To(BeNil())
	g.Expect(f).To(BeAssignableToTypeOf(&Searcher{}))
	g.Expect(f.(*Searcher).MaxRolls()).To(Equal(uint64(17402040)))
}

func TestConfigValidate(t *testing.T) {
	g := NewGomegaWithT(t)

	g.Expect(DefaultConfig().Validate()).To(Succeed())

	cfg := DefaultConfig()
	cfg.RollsPerSecond = 0
	g.Expect(cfg.Validate()).To(Equal(ErrInvalidRate))

	cfg = DefaultConfig()
	cfg.WindowHours = -1
	g.Expect(cfg.Validate()).To(Equal(ErrInvalidWindow))
}

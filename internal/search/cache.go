package search

import (
	"github.com/dgraph-io/ristretto"
)

// CachedSearcher remembers results of previous queries so that asking for the
// same start seed twice does not repeat the walk.
type CachedSearcher struct {
	finder Finder
	cache  *ristretto.Cache
}

func NewCachedSearcher(finder Finder, size int) (*CachedSearcher, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        int64(size) * 10,
		MaxCost:            int64(size),
		BufferItems:        64,
		Metrics:            false,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &CachedSearcher{
		finder: finder,
		cache:  cache,
	}, nil
}

func (c *CachedSearcher) Find(start uint32) Result {
	if v, found := c.cache.Get(uint64(start)); found {
		return v.(Result)
	}
	res := c.finder.Find(start)
	c.cache.Set(uint64(start), res, 1)
	return res
}

func (c *CachedSearcher) ShutDown() {
	c.cache.Close()
}

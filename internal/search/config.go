package search

import (
	"errors"
	"fmt"
	"github.com/hawell/seedfinder/configs"
	"github.com/hawell/seedfinder/internal/targets"
	"time"
)

type Config struct {
	RollsPerSecond float64 `json:"rolls_per_second"`
	WindowHours    int     `json:"window_hours"`
	CacheSize      int     `json:"cache_size"`
}

func DefaultConfig() Config {
	return Config{
		RollsPerSecond: RollsPerSecond,
		WindowHours:    int(DefaultWindow / time.Hour),
		CacheSize:      1024,
	}
}

func (c Config) Window() time.Duration {
	return time.Duration(c.WindowHours) * time.Hour
}

func (c Config) MaxRolls() uint64 {
	return MaxRolls(c.RollsPerSecond, c.Window())
}

// NewFinder returns a searcher over set bounded by the configured window,
// wrapped in a result cache when CacheSize is positive.
func (c Config) NewFinder(set *targets.Set) (Finder, error) {
	searcher := NewSearcher(set, c.MaxRolls())
	if c.CacheSize <= 0 {
		return searcher, nil
	}
	cached, err := NewCachedSearcher(searcher, c.CacheSize)
	if err != nil {
		return nil, err
	}
	return cached, nil
}

var (
	ErrInvalidRate   = errors.New("rolls per second must be positive")
	ErrInvalidWindow = errors.New("window hours must be positive")
)

func (c Config) Validate() error {
	if c.RollsPerSecond <= 0 {
		return ErrInvalidRate
	}
	if c.WindowHours <= 0 {
		return ErrInvalidWindow
	}
	return nil
}

func (c Config) Verify() {
	fmt.Println("checking search...")
	configs.CheckPositive("rolls per second", c.RollsPerSecond)
	configs.CheckPositive("window hours", float64(c.WindowHours))
	msg := fmt.Sprintf("checking cache size : %d", c.CacheSize)
	if c.CacheSize <= 0 {
		configs.PrintWarning(msg, "result cache disabled")
	} else {
		configs.PrintResult(msg, nil)
	}
}

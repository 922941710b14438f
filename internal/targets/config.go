package targets

import (
	"fmt"
	"github.com/hawell/seedfinder/configs"
	"github.com/hawell/seedfinder/internal/hexseed"
	"go.uber.org/zap"
	"strings"
)

type Config struct {
	File  string   `json:"file"`
	Seeds []string `json:"seeds"`
}

func DefaultConfig() Config {
	seeds := make([]string, 0, len(DefaultSeeds))
	for _, seed := range DefaultSeeds {
		seeds = append(seeds, hexseed.Format(seed))
	}
	return Config{
		File:  "",
		Seeds: seeds,
	}
}

// Build loads the target set from File when it is set, otherwise from Seeds.
func (c Config) Build(logger *zap.Logger) (*Set, Report, error) {
	if c.File != "" {
		return LoadFile(c.File, logger)
	}
	return Load(strings.NewReader(strings.Join(c.Seeds, "\n")), logger)
}

func (c Config) Verify() {
	fmt.Println("checking targets...")
	if c.File != "" {
		configs.CheckFile(c.File)
	} else {
		for _, s := range c.Seeds {
			msg := fmt.Sprintf("checking seed : %s", s)
			_, err := hexseed.Parse(s)
			configs.PrintResult(msg, err)
		}
	}
	_, report, err := c.Build(zap.NewNop())
	msg := "checking target seeds"
	if err == nil && len(report.Rejected) > 0 {
		configs.PrintWarning(msg, fmt.Sprintf("%d unparsable lines skipped", len(report.Rejected)))
		return
	}
	configs.PrintResult(msg, err)
}

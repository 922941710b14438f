package targets

import (
	"bufio"
	"github.com/hawell/seedfinder/internal/hexseed"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"io"
	"os"
	"strings"
)

var (
	ErrTargetsUnavailable = errors.New("target source unavailable")
	ErrNoValidTargets     = errors.New("no valid target seeds")
)

// DefaultSeeds are the two seeds searched for when no target file is given.
var DefaultSeeds = []uint32{0xEA0EEDC2, 0xD082D644}

type RejectedLine struct {
	Line int
	Text string
	Err  error
}

type Report struct {
	Accepted   int
	Duplicates int
	Rejected   []RejectedLine
}

// Load reads one hex seed per line. Unparsable lines are logged, recorded in the
// report and skipped; blank lines and lines starting with '#' are ignored.
func Load(r io.Reader, logger *zap.Logger) (*Set, Report, error) {
	var report Report
	b := newBuilder()

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		text := hexseed.StripSpaces(line)
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, "#") {
			logger.Debug("skipping comment line", zap.Int("line", lineNo), zap.String("text", line))
			continue
		}
		seed, err := hexseed.Parse(text)
		if err != nil {
			logger.Warn("skipping unparsable target seed",
				zap.Int("line", lineNo),
				zap.String("text", line),
				zap.Error(err),
			)
			report.Rejected = append(report.Rejected, RejectedLine{Line: lineNo, Text: line, Err: err})
			continue
		}
		if b.add(seed) {
			report.Duplicates++
			logger.Debug("duplicate target seed", zap.Int("line", lineNo), zap.String("seed", hexseed.Format(seed)))
			continue
		}
		report.Accepted++
	}
	if err := scanner.Err(); err != nil {
		return nil, report, errors.Wrapf(ErrTargetsUnavailable, "read failed: %s", err)
	}
	if b.size == 0 {
		return nil, report, ErrNoValidTargets
	}
	return b.build(), report, nil
}

func LoadFile(path string, logger *zap.Logger) (*Set, Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Report{}, errors.Wrapf(ErrTargetsUnavailable, "%s: %s", path, err)
	}
	defer f.Close()

	set, report, err := Load(f, logger)
	if err != nil {
		return nil, report, errors.Wrap(err, path)
	}
	logger.Info("target seeds loaded",
		zap.String("path", path),
		zap.Int("accepted", report.Accepted),
		zap.Int("duplicates", report.Duplicates),
		zap.Int("rejected", len(report.Rejected)),
	)
	return set, report, nil
}

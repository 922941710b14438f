package session

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/hawell/seedfinder/internal/hexseed"
	"github.com/hawell/seedfinder/internal/search"
	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"
	"time"
)

type State int

const (
	StateAwaitInput State = iota
	StateValidate
	StateReport
	StateDone
)

func (s State) String() string {
	switch s {
	case StateAwaitInput:
		return "await-input"
	case StateValidate:
		return "validate"
	case StateReport:
		return "report"
	case StateDone:
		return "done"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

const (
	banner        = "===========================\nSSBM Event 4 Seed Diff Calc\n===========================\n"
	supplyMessage = "Please supply seeds (x to quit)\n"
	promptMessage = "Please input current seed: "
	invalidInput  = "!---- Please Input a Valid Hex Number (x to quit) ----!"
)

type Session struct {
	port           Port
	finder         search.Finder
	rollsPerSecond float64
	windowHours    int
	au             aurora.Aurora
	logger         *zap.Logger

	state State
	retry bool
	input string
	seed  uint32
}

func NewSession(port Port, finder search.Finder, config *search.Config, au aurora.Aurora, logger *zap.Logger) *Session {
	return &Session{
		port:           port,
		finder:         finder,
		rollsPerSecond: config.RollsPerSecond,
		windowHours:    config.WindowHours,
		au:             au,
		logger:         logger,
		state:          StateAwaitInput,
	}
}

func (s *Session) State() State {
	return s.state
}

// Run cycles through the session states until the user quits or input ends.
func (s *Session) Run() {
	s.port.Write(banner)
	for s.state != StateDone {
		s.Step()
	}
}

// Step executes the current state and returns the next one.
func (s *Session) Step() State {
	next := StateDone
	switch s.state {
	case StateAwaitInput:
		next = s.awaitInput()
	case StateValidate:
		next = s.validate()
	case StateReport:
		next = s.report()
	}
	s.state = next
	return next
}

func (s *Session) awaitInput() State {
	if !s.retry {
		s.port.Write("\n" + supplyMessage)
	}
	s.port.Write(promptMessage)
	line, err := s.port.ReadLine()
	if err != nil {
		s.port.Write("\n")
		s.logger.Debug("input closed", zap.Error(err))
		return StateDone
	}
	s.input = line
	return StateValidate
}

func (s *Session) validate() State {
	if hexseed.IsQuit(s.input) {
		return StateDone
	}
	seed, err := hexseed.Parse(s.input)
	if err != nil {
		s.logger.Debug("rejected input", zap.String("input", s.input), zap.Error(err))
		s.port.Write(fmt.Sprintf("\n\n%s\n\n", s.au.Bold(s.au.Red(invalidInput))))
		s.retry = true
		return StateAwaitInput
	}
	s.seed = seed
	s.retry = false
	return StateReport
}

func (s *Session) report() State {
	s.find(s.seed)
	return StateAwaitInput
}

// Query answers a single seed without prompting.
func (s *Session) Query(input string) (search.Result, error) {
	seed, err := hexseed.Parse(input)
	if err != nil {
		return search.NotFound(), err
	}
	return s.find(seed), nil
}

func (s *Session) find(seed uint32) search.Result {
	id := uuid.NewString()
	start := time.Now()
	res := s.finder.Find(seed)
	s.logger.Debug("search finished",
		zap.String("query_id", id),
		zap.String("seed", hexseed.Format(seed)),
		zap.Bool("found", res.Found),
		zap.Uint64("distance", res.Distance),
		zap.Duration("elapsed", time.Since(start)),
	)
	s.port.Write(s.format(res))
	return res
}

func (s *Session) format(res search.Result) string {
	if !res.Found {
		msg := fmt.Sprintf("Roll count exceeds the maximum search window (%d hours)!", s.windowHours)
		return fmt.Sprintf("%s\n\n", s.au.Yellow(msg))
	}
	return fmt.Sprintf("Seed found in: [%d] iterations!\nMatched seed: %s\nCSS Manip Time: %s\n",
		s.au.Green(res.Distance),
		s.au.Cyan(hexseed.Format(res.Seed)),
		search.FormatDuration(res.Distance, s.rollsPerSecond),
	)
}

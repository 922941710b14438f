package session

import (
	"github.com/hawell/seedfinder/internal/hexseed"
	"github.com/hawell/seedfinder/internal/search"
	"github.com/hawell/seedfinder/internal/targets"
	"github.com/logrusorgru/aurora"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"io"
	"strings"
)

type scriptedPort struct {
	lines []string
	out   strings.Builder
}

func (p *scriptedPort) ReadLine() (string, error) {
	if len(p.lines) == 0 {
		return "", io.EOF
	}
	line := p.lines[0]
	p.lines = p.lines[1:]
	return line, nil
}

func (p *scriptedPort) Write(s string) {
	p.out.WriteString(s)
}

const (
	supplyPrompt = "\n" + supplyMessage + promptMessage
	invalidBlock = "\n\n" + invalidInput + "\n\n"
)

var _ = Describe("Session", func() {
	var (
		port    *scriptedPort
		session *Session
		logs    *observer.ObservedLogs
		config  search.Config
	)

	newSession := func(lines ...string) {
		var core zapcore.Core
		core, logs = observer.New(zapcore.DebugLevel)
		port = &scriptedPort{lines: lines}
		config = search.DefaultConfig()
		finder := search.NewSearcher(targets.NewSet(targets.DefaultSeeds...), 5000)
		session = NewSession(port, finder, &config, aurora.NewAurora(false), zap.New(core))
	}

	It("reports the distance to the nearest target", func() {
		newSession("5248791C", "x")
		session.Run()
		Expect(session.State()).To(Equal(StateDone))
		Expect(port.out.String()).To(Equal(banner +
			supplyPrompt +
			"Seed found in: [1000] iterations!\nMatched seed: D082D644\nCSS Manip Time: 0 seconds\n" +
			supplyPrompt))
	})

	It("reports zero rolls for a target seed", func() {
		newSession("0xEA0E EDC2", "X")
		session.Run()
		Expect(port.out.String()).To(ContainSubstring("Seed found in: [0] iterations!\nMatched seed: EA0EEDC2\n"))
	})

	It("reports an exhausted search window", func() {
		newSession("00000000", "x")
		session.Run()
		Expect(port.out.String()).To(ContainSubstring("Roll count exceeds the maximum search window (10 hours)!\n\n"))
		Expect(port.out.String()).NotTo(ContainSubstring("Seed found in"))
	})

	It("re-prompts until the input is valid", func() {
		newSession("", "12G4", "100000000", "5248791C")
		session.Run()
		Expect(port.out.String()).To(Equal(banner +
			supplyPrompt +
			invalidBlock + promptMessage +
			invalidBlock + promptMessage +
			invalidBlock + promptMessage +
			"Seed found in: [1000] iterations!\nMatched seed: D082D644\nCSS Manip Time: 0 seconds\n" +
			supplyPrompt + "\n"))
		Expect(logs.FilterMessage("rejected input").Len()).To(Equal(3))
	})

	It("stops when input ends", func() {
		newSession()
		session.Run()
		Expect(session.State()).To(Equal(StateDone))
		Expect(port.out.String()).To(Equal(banner + supplyPrompt + "\n"))
	})

	It("checks the quit sentinel before validation", func() {
		newSession("  x")
		Expect(session.Step()).To(Equal(StateValidate))
		Expect(session.Step()).To(Equal(StateDone))
		Expect(port.out.String()).NotTo(ContainSubstring(invalidInput))
	})

	It("walks the states in order", func() {
		newSession("5248791C")
		Expect(session.State()).To(Equal(StateAwaitInput))
		Expect(session.Step()).To(Equal(StateValidate))
		Expect(session.Step()).To(Equal(StateReport))
		Expect(session.Step()).To(Equal(StateAwaitInput))
		Expect(session.Step()).To(Equal(StateDone))
		Expect(session.Step()).To(Equal(StateDone))
	})

	It("logs every search with a query id", func() {
		newSession("5248791C", "6D7E834B", "x")
		session.Run()
		entries := logs.FilterMessage("search finished").All()
		Expect(entries).To(HaveLen(2))
		Expect(entries[0].ContextMap()["seed"]).To(Equal("5248791C"))
		Expect(entries[0].ContextMap()["query_id"]).NotTo(Equal(entries[1].ContextMap()["query_id"]))
	})

	Describe("Query", func() {
		It("answers a single seed", func() {
			newSession()
			res, err := session.Query("6D7E834B")
			Expect(err).To(BeNil())
			Expect(res).To(Equal(search.Found(4833, 0xEA0EEDC2)))
			Expect(port.out.String()).To(Equal("Seed found in: [4833] iterations!\nMatched seed: EA0EEDC2\nCSS Manip Time: 0 seconds\n"))
		})

		It("rejects invalid seeds", func() {
			newSession()
			_, err := session.Query("-1")
			Expect(errors.Is(err, hexseed.ErrNegative)).To(BeTrue())
			Expect(port.out.String()).To(BeEmpty())
		})
	})
})

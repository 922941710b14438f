package main

import (
	"flag"
	"fmt"
	"github.com/hawell/seedfinder/internal/hexseed"
	"github.com/hawell/seedfinder/internal/logger"
	"github.com/hawell/seedfinder/internal/search"
	"github.com/hawell/seedfinder/internal/session"
	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"
	"io"
	"os"
	"strings"
)

// exit codes
const (
	exitOK = iota
	exitTargets
	exitUsage
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	flags := flag.NewFlagSet("seedfinder", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPtr := flags.String("c", "config.json", "path to config file")
	verifyPtr := flags.Bool("t", false, "verify configuration")
	generateConfigPtr := flags.String("g", "template-config.json", "generate template config file")
	targetsPtr := flags.String("f", "", "target seeds file, one hex seed per line")
	seedPtr := flags.String("s", "", "search a single seed and exit")

	if err := flags.Parse(args); err != nil {
		return exitUsage
	}
	flagset := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { flagset[f.Name] = true })

	if *verifyPtr {
		Verify(*configPtr)
		return exitOK
	}

	if flagset["g"] {
		if err := GenerateConfig(*generateConfigPtr); err != nil {
			fmt.Fprintf(stderr, "cannot save template config to file %s : %s\n", *generateConfigPtr, err)
		}
		return exitOK
	}

	cfg := DefaultConfig()
	if _, err := os.Stat(*configPtr); err == nil || flagset["c"] {
		loaded, _ := LoadConfig(*configPtr)
		cfg = *loaded
	}
	if flagset["f"] {
		cfg.Targets.File = *targetsPtr
	}

	l, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(stderr, "cannot create logger : %s\n", err)
		l = zap.NewNop()
	}
	defer l.Sync()
	zap.ReplaceGlobals(l)

	au := aurora.NewAurora(cfg.Color)

	set, report, err := cfg.Targets.Build(l)
	for _, rejected := range report.Rejected {
		fmt.Fprintf(stdout, "%s line %d: %q\n", au.Yellow("skipping unparsable target seed on"), rejected.Line, rejected.Text)
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s : %s\n", au.Bold(au.Red("cannot load target seeds")), err)
		l.Error("target load failed", zap.Error(err))
		return exitTargets
	}

	seeds := make([]string, 0, set.Len())
	for _, seed := range set.Seeds() {
		seeds = append(seeds, hexseed.Format(seed))
	}
	l.Info("targets ready",
		zap.Strings("seeds", seeds),
		zap.Uint64("max_rolls", cfg.Search.MaxRolls()),
	)

	finder, err := cfg.Search.NewFinder(set)
	if err != nil {
		fmt.Fprintf(stderr, "cannot create result cache : %s\n", err)
		finder = search.NewSearcher(set, cfg.Search.MaxRolls())
	}
	if cached, ok := finder.(*search.CachedSearcher); ok {
		defer cached.ShutDown()
	}

	console := session.NewConsole(stdin, stdout)
	s := session.NewSession(console, finder, &cfg.Search, au, l)

	if flagset["s"] {
		if _, err := s.Query(*seedPtr); err != nil {
			fmt.Fprintf(stderr, "invalid seed %q : %s\n", *seedPtr, err)
			return exitUsage
		}
		return exitOK
	}

	fmt.Fprintf(stdout, "Searching for %d target seeds: %s\n", set.Len(), strings.Join(seeds, ", "))
	s.Run()
	return exitOK
}

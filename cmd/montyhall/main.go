// Package main provides the Monty Hall simulator binary.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/montyhall/internal/config"
	"github.com/cory-johannsen/montyhall/internal/game/door"
	"github.com/cory-johannsen/montyhall/internal/game/montyhall"
	"github.com/cory-johannsen/montyhall/internal/observability"
	"github.com/cory-johannsen/montyhall/internal/report"
	"github.com/cory-johannsen/montyhall/internal/scripting"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the simulator and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("montyhall", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to configuration file (optional)")
	format := fs.String("format", "", "report format: text or yaml (default from config)")
	seed := fs.Uint64("seed", 0, "seed for reproducible runs; 0 uses crypto/rand")
	script := fs.String("script", "", "path to a Lua policy run after the built-in strategies")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: montyhall [flags] [trials] [flags]")
		fs.PrintDefaults()
	}
	flagTokens, trialArg := splitArgs(fs, args)
	if err := fs.Parse(flagTokens); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "loading config: %v\n", err)
		return 1
	}
	if *format != "" {
		cfg.Report.Format = *format
	}
	if *seed != 0 {
		cfg.Simulation.Seed = *seed
	}
	if *script != "" {
		cfg.Simulation.Script = *script
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "initializing logger: %v\n", err)
		return 1
	}
	defer logger.Sync() //nolint:errcheck

	trials := parseTrials(trialArg, cfg.Simulation.Trials)

	policies, closeScript, err := buildPolicies(cfg.Simulation, logger)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	defer closeScript()

	src := door.NewCryptoSource()
	if cfg.Simulation.Seed != 0 {
		src = door.NewSeededSource(cfg.Simulation.Seed)
	}
	engine := montyhall.NewEngine(door.NewLoggedPicker(src, logger))
	runner := montyhall.NewRunner(engine, logger)

	logger.Info("starting simulation",
		zap.Int("trials", trials),
		zap.Int("policies", len(policies)),
		zap.Bool("seeded", cfg.Simulation.Seed != 0),
	)

	results, err := runner.RunAll(policies, trials)
	if err != nil {
		fmt.Fprintf(stderr, "simulation failed: %v\n", err)
		return 1
	}
	if err := report.Write(cfg.Report.Format, stdout, results); err != nil {
		fmt.Fprintf(stderr, "writing report: %v\n", err)
		return 1
	}
	return 0
}

// buildPolicies resolves the configured strategies and optional script, in
// that order. The returned close func is always non-nil.
func buildPolicies(sim config.SimulationConfig, logger *zap.Logger) ([]montyhall.Policy, func(), error) {
	policies := make([]montyhall.Policy, 0, len(sim.Strategies)+1)
	for _, name := range sim.Strategies {
		s, err := montyhall.ParseStrategy(name)
		if err != nil {
			return nil, func() {}, err
		}
		policies = append(policies, s)
	}
	if sim.Script == "" {
		return policies, func() {}, nil
	}
	p, err := scripting.LoadPolicy(sim.Script, sim.ScriptInstructionLimit, logger)
	if err != nil {
		return nil, func() {}, err
	}
	return append(policies, p), p.Close, nil
}

// parseTrials returns the positional trial count, or fallback when it is
// missing, not an integer, or not positive.
func parseTrials(arg string, fallback int) int {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// splitArgs separates tokens naming a defined flag (plus their values) from
// everything else, so flags may follow the trial count and dash-prefixed
// junk such as "-1.5" or "-abc" is treated as an invalid trial count rather
// than an unknown flag. The first leftover token is the trial argument.
func splitArgs(fs *flag.FlagSet, args []string) ([]string, string) {
	var flagTokens []string
	trialArg, haveTrial := "", false
	for i := 0; i < len(args); i++ {
		a := args[i]
		name, hasValue := flagName(a)
		switch {
		case name == "h" || name == "help":
			flagTokens = append(flagTokens, a)
		case name != "" && fs.Lookup(name) != nil:
			flagTokens = append(flagTokens, a)
			if !hasValue && i+1 < len(args) {
				i++
				flagTokens = append(flagTokens, args[i])
			}
		case !haveTrial:
			trialArg, haveTrial = a, true
		}
	}
	return flagTokens, trialArg
}

// flagName returns the flag name in a "-name", "--name" or "-name=value"
// token, and whether the token carries its own value.
func flagName(tok string) (string, bool) {
	if len(tok) < 2 || tok[0] != '-' {
		return "", false
	}
	name := strings.TrimPrefix(tok[1:], "-")
	name, _, hasValue := strings.Cut(name, "=")
	return name, hasValue
}

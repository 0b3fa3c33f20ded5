// Package config provides Viper-based configuration loading for the simulator.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DefaultTrials is the trial count used when none is configured or supplied.
const DefaultTrials = 1000

// SimulationConfig holds trial-loop settings.
type SimulationConfig struct {
	// Trials is the default number of trials per strategy.
	Trials int `mapstructure:"trials"`
	// Seed selects a deterministic source when non-zero; zero uses crypto/rand.
	Seed uint64 `mapstructure:"seed"`
	// Strategies lists built-in strategies to run, in order: "stay", "switch".
	Strategies []string `mapstructure:"strategies"`
	// Script is an optional path to a Lua policy run after the built-in strategies.
	Script string `mapstructure:"script"`
	// ScriptInstructionLimit caps Lua opcodes per decision; 0 uses the default.
	ScriptInstructionLimit int `mapstructure:"script_instruction_limit"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// ReportConfig holds result output settings.
type ReportConfig struct {
	// Format is the report format: "text" or "yaml".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Report     ReportConfig     `mapstructure:"report"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateSimulation(c.Simulation); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateReport(c.Report); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateSimulation(s SimulationConfig) error {
	var errs []string
	if s.Trials < 1 {
		errs = append(errs, fmt.Sprintf("simulation.trials must be >= 1, got %d", s.Trials))
	}
	if len(s.Strategies) == 0 && s.Script == "" {
		errs = append(errs, "simulation.strategies must not be empty when no script is set")
	}
	validStrategies := map[string]bool{"stay": true, "switch": true}
	for _, name := range s.Strategies {
		if !validStrategies[strings.ToLower(name)] {
			errs = append(errs, fmt.Sprintf("simulation.strategies entries must be one of [stay, switch], got %q", name))
		}
	}
	if s.ScriptInstructionLimit < 0 {
		errs = append(errs, fmt.Sprintf("simulation.script_instruction_limit must be >= 0, got %d", s.ScriptInstructionLimit))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateReport(r ReportConfig) error {
	validFormats := map[string]bool{"text": true, "yaml": true}
	if !validFormats[r.Format] {
		return fmt.Errorf("report.format must be one of [text, yaml], got %q", r.Format)
	}
	return nil
}

// Load builds configuration from defaults, the optional YAML file at path, and
// MONTYHALL_-prefixed environment variable overrides, then validates the result.
//
// Precondition: path is empty or names a readable YAML file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with MONTYHALL_ prefix
	v.SetEnvPrefix("MONTYHALL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the built-in configuration without consulting files or the
// environment.
func Default() Config {
	return Config{
		Simulation: SimulationConfig{
			Trials:     DefaultTrials,
			Strategies: []string{"stay", "switch"},
		},
		Logging: LoggingConfig{Level: "warn", Format: "json"},
		Report:  ReportConfig{Format: "text"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("simulation.trials", d.Simulation.Trials)
	v.SetDefault("simulation.seed", d.Simulation.Seed)
	v.SetDefault("simulation.strategies", d.Simulation.Strategies)
	v.SetDefault("simulation.script", d.Simulation.Script)
	v.SetDefault("simulation.script_instruction_limit", d.Simulation.ScriptInstructionLimit)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	v.SetDefault("report.format", d.Report.Format)
}

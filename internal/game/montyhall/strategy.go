// Package montyhall runs Monty Hall trials and aggregates win counts per
// player strategy.
package montyhall

import (
	"fmt"
	"strings"
)

// Strategy is the player's rule for the final door choice.
type Strategy int

const (
	// Stay keeps the first choice.
	Stay Strategy = iota
	// Switch moves to the one door that is neither chosen nor revealed.
	Switch
)

// Policy decides which Strategy to apply to a dealt trial.
//
// Strategy implements Policy by always returning itself; scripted policies
// may choose per trial.
type Policy interface {
	// Label is the human-readable name printed in reports.
	Label() string
	// Decide returns the strategy to apply once the goat door is revealed.
	Decide(t Trial) Strategy
}

// Name returns the config/CLI name of s: "stay" or "switch".
func (s Strategy) Name() string {
	switch s {
	case Stay:
		return "stay"
	case Switch:
		return "switch"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Label returns the report label of s.
func (s Strategy) Label() string {
	switch s {
	case Stay:
		return "don't switch"
	case Switch:
		return "switch doors"
	default:
		return s.Name()
	}
}

// String implements fmt.Stringer.
func (s Strategy) String() string { return s.Name() }

// Decide implements Policy.
func (s Strategy) Decide(Trial) Strategy { return s }

// ParseStrategy converts a name ("stay" or "switch", case-insensitive) to a Strategy.
//
// Postcondition: Returns a valid Strategy or a non-nil error.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "stay":
		return Stay, nil
	case "switch":
		return Switch, nil
	default:
		return 0, fmt.Errorf("montyhall: unknown strategy %q (supported: stay, switch)", name)
	}
}

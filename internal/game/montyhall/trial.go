package montyhall

import (
	"fmt"

	"github.com/cory-johannsen/montyhall/internal/game/door"
)

// Trial is one dealt game: the prize is placed, the player has chosen, and the
// host has opened a goat door. Each field is assigned exactly once by Deal.
//
// Invariant: RevealedDoor != PrizeDoor && RevealedDoor != FirstChoice.
type Trial struct {
	PrizeDoor    door.Door
	FirstChoice  door.Door
	RevealedDoor door.Door
}

// RevealWeights returns the host's weights for opening a door given the prize
// and the player's first choice. The prize door and the chosen door get weight
// zero; every other door gets weight one. When prize == first two doors are
// eligible, otherwise exactly one.
//
// Precondition: prize and first are valid doors; panics otherwise.
func RevealWeights(prize, first door.Door) door.Weights {
	if !prize.Valid() || !first.Valid() {
		panic(fmt.Sprintf("montyhall: RevealWeights precondition violated: prize %d, first %d", prize, first))
	}
	w := door.Uniform()
	w[prize] = 0
	w[first] = 0
	return w
}

// SecondChoice returns the player's final door under s.
//
// Precondition: t satisfies the Trial invariant.
// Postcondition: Stay returns FirstChoice; Switch returns the unique door that
// is neither FirstChoice nor RevealedDoor.
func (t Trial) SecondChoice(s Strategy) door.Door {
	if s == Stay {
		return t.FirstChoice
	}
	for _, d := range door.All() {
		if d != t.FirstChoice && d != t.RevealedDoor {
			return d
		}
	}
	panic(fmt.Sprintf("montyhall: no door left to switch to in %+v", t))
}

// Score returns 1 if the second choice under s holds the prize, else 0.
func (t Trial) Score(s Strategy) int {
	if t.SecondChoice(s) == t.PrizeDoor {
		return 1
	}
	return 0
}

// Outcome is a resolved trial.
type Outcome struct {
	Trial
	Strategy     Strategy
	SecondChoice door.Door
	Score        int
}

// Won reports whether the outcome scored.
func (o Outcome) Won() bool { return o.Score == 1 }

package montyhall

import "github.com/cory-johannsen/montyhall/internal/game/door"

// Engine deals and resolves single trials.
type Engine struct {
	picker *door.Picker
}

// NewEngine creates an Engine drawing doors from picker.
//
// Precondition: picker must be non-nil.
func NewEngine(picker *door.Picker) *Engine {
	return &Engine{picker: picker}
}

// Deal places the prize, draws the first choice independently, and reveals a
// goat door.
//
// Postcondition: the returned Trial satisfies its invariant.
func (e *Engine) Deal() Trial {
	prize := e.picker.Pick("prize", door.Uniform())
	first := e.picker.Pick("first_choice", door.Uniform())
	revealed := e.picker.Pick("reveal", RevealWeights(prize, first))
	return Trial{
		PrizeDoor:    prize,
		FirstChoice:  first,
		RevealedDoor: revealed,
	}
}

// Play deals a fresh trial and resolves it with the strategy p decides on.
//
// Precondition: p must be non-nil.
// Postcondition: result.Score is 0 or 1 and equals 1 iff
// result.SecondChoice == result.PrizeDoor.
func (e *Engine) Play(p Policy) Outcome {
	t := e.Deal()
	s := p.Decide(t)
	return Outcome{
		Trial:        t,
		Strategy:     s,
		SecondChoice: t.SecondChoice(s),
		Score:        t.Score(s),
	}
}

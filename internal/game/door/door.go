// Package door provides the three-door domain and the weighted door draw used
// by the Monty Hall trial engine.
package door

import "fmt"

// Count is the number of doors in every game.
const Count = 3

// Door identifies one of the Count doors by its zero-based index.
type Door int

// All returns every door in index order.
//
// Postcondition: len(result) == Count.
func All() []Door {
	doors := make([]Door, Count)
	for i := range doors {
		doors[i] = Door(i)
	}
	return doors
}

// Valid reports whether d is a door index in [0, Count).
func (d Door) Valid() bool {
	return d >= 0 && d < Count
}

// String returns the door as "door N" with a one-based N.
func (d Door) String() string {
	return fmt.Sprintf("door %d", int(d)+1)
}

// Weights holds one relative weight per door. Weights need not be normalized.
type Weights [Count]float64

// Uniform returns equal positive weights for every door.
func Uniform() Weights {
	return Weights{1, 1, 1}
}

// Total returns the sum of all weights.
func (w Weights) Total() float64 {
	var total float64
	for _, v := range w {
		total += v
	}
	return total
}

// Source is the randomness provider for door draws.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
	// Float64 returns a random float64 in [0.0, 1.0).
	Float64() float64
}

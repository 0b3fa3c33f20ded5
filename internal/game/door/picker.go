package door

import (
	"fmt"
	"math"
)

// Pick draws one door with probability proportional to its weight. When all
// positive weights are equal the draw uses Source.Intn over the eligible
// doors; otherwise it scans cumulative weights with Source.Float64.
//
// Precondition: every weight is finite and >= 0, and at least one weight is
// positive. A violation is a programming error and panics.
// Postcondition: w[result] > 0.
func Pick(w Weights, src Source) Door {
	for i, v := range w {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			panic(fmt.Sprintf("door: Pick precondition violated: weight %v for door %d", v, i))
		}
	}
	total := w.Total()
	if total <= 0 {
		panic(fmt.Sprintf("door: Pick precondition violated: weights %v sum to %v", w, total))
	}

	if eligible, ok := equalWeighted(w); ok {
		return eligible[src.Intn(len(eligible))]
	}

	r := src.Float64() * total
	var cum float64
	last := Door(-1)
	for i, v := range w {
		if v == 0 {
			continue
		}
		cum += v
		last = Door(i)
		if r < cum {
			return last
		}
	}
	// Rounding can leave r == cum; the last positive-weight door absorbs it.
	return last
}

// equalWeighted returns the positive-weight doors when they all carry the
// same weight, in which case the draw is uniform over them.
func equalWeighted(w Weights) ([]Door, bool) {
	eligible := make([]Door, 0, Count)
	var first float64
	for i, v := range w {
		if v == 0 {
			continue
		}
		if len(eligible) > 0 && v != first {
			return nil, false
		}
		first = v
		eligible = append(eligible, Door(i))
	}
	return eligible, true
}

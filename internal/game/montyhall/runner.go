package montyhall

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Result aggregates the scores of one policy over a run of trials.
//
// Invariant: 0 <= Wins <= Trials.
type Result struct {
	RunID  string
	Label  string
	Trials int
	Wins   int
}

// Percentage returns 100 * Wins / Trials, or 0 when Trials is zero.
func (r Result) Percentage() float64 {
	if r.Trials == 0 {
		return 0
	}
	return 100 * float64(r.Wins) / float64(r.Trials)
}

// String returns the summary line:
//
//	"Strategy: switch doors | Trials: 1000 | Wins: 667 (66.70%)"
func (r Result) String() string {
	return fmt.Sprintf("Strategy: %s | Trials: %d | Wins: %d (%.2f%%)",
		r.Label, r.Trials, r.Wins, r.Percentage())
}

// Runner plays repeated trials on an Engine and tallies wins.
type Runner struct {
	engine *Engine
	logger *zap.Logger
}

// NewRunner creates a Runner.
//
// Precondition: engine and logger must be non-nil.
func NewRunner(engine *Engine, logger *zap.Logger) *Runner {
	return &Runner{engine: engine, logger: logger}
}

// Run plays exactly trials independent trials under p and sums the scores.
//
// Precondition: p must be non-nil.
// Postcondition: Returns a Result with Trials == trials, or an error if trials < 1.
func (r *Runner) Run(p Policy, trials int) (Result, error) {
	if trials < 1 {
		return Result{}, fmt.Errorf("montyhall: trial count must be >= 1, got %d", trials)
	}

	start := time.Now()
	res := Result{
		RunID:  uuid.NewString(),
		Label:  p.Label(),
		Trials: trials,
	}
	r.logger.Info("run started",
		zap.String("run_id", res.RunID),
		zap.String("strategy", res.Label),
		zap.Int("trials", trials),
	)

	for i := 0; i < trials; i++ {
		if r.engine.Play(p).Won() {
			res.Wins++
		}
	}

	r.logger.Info("run finished",
		zap.String("run_id", res.RunID),
		zap.String("strategy", res.Label),
		zap.Int("wins", res.Wins),
		zap.Float64("win_pct", res.Percentage()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res, nil
}

// RunAll runs each policy in order with the same trial count.
//
// Postcondition: len(results) == len(policies) on success.
func (r *Runner) RunAll(policies []Policy, trials int) ([]Result, error) {
	results := make([]Result, 0, len(policies))
	for _, p := range policies {
		res, err := r.Run(p, trials)
		if err != nil {
			return nil, fmt.Errorf("running %q: %w", p.Label(), err)
		}
		results = append(results, res)
	}
	return results, nil
}

package door

import "go.uber.org/zap"

// Picker wraps a Source and logger to provide logged door draws.
// All draws are logged at debug level with label, weights, and result.
type Picker struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedPicker creates a Picker that draws with src and logs each draw to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedPicker(src Source, logger *zap.Logger) *Picker {
	return &Picker{src: src, logger: logger}
}

// Pick draws a door from w and logs the draw at debug level.
//
// Precondition: w satisfies the preconditions of the package-level Pick.
// Postcondition: w[result] > 0.
func (p *Picker) Pick(label string, w Weights) Door {
	d := Pick(w, p.src)
	if ce := p.logger.Check(zap.DebugLevel, "door draw"); ce != nil {
		ce.Write(
			zap.String("draw", label),
			zap.Float64s("weights", w[:]),
			zap.Int("door", int(d)),
		)
	}
	return d
}

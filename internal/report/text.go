package report

import (
	"fmt"
	"io"

	"github.com/cory-johannsen/montyhall/internal/game/montyhall"
)

// WriteText writes one summary line per result, in order.
func WriteText(w io.Writer, results []montyhall.Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return fmt.Errorf("report: writing text line: %w", err)
		}
	}
	return nil
}

// Package report renders simulation results for the console.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/cory-johannsen/montyhall/internal/game/montyhall"
)

// WriteFunc renders results to w.
type WriteFunc func(w io.Writer, results []montyhall.Result) error

var writers = map[string]WriteFunc{
	"text": WriteText,
	"yaml": WriteYAML,
}

// Formats returns the registered format names in sorted order.
func Formats() []string {
	names := make([]string, 0, len(writers))
	for name := range writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Write renders results in the named format.
//
// Postcondition: Returns an error for an unknown format or a failed write.
func Write(format string, w io.Writer, results []montyhall.Result) error {
	fn, ok := writers[format]
	if !ok {
		return fmt.Errorf("report: unknown format %q (supported: %v)", format, Formats())
	}
	return fn(w, results)
}

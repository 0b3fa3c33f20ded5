package report

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/montyhall/internal/game/montyhall"
)

// Summary is the YAML shape of a single Result.
type Summary struct {
	RunID      string `yaml:"run_id"`
	Strategy   string `yaml:"strategy"`
	Trials     int    `yaml:"trials"`
	Wins       int    `yaml:"wins"`
	Percentage string `yaml:"win_percentage"`
}

// Document is the top-level YAML report.
type Document struct {
	Results []Summary `yaml:"results"`
}

// NewDocument converts results to their YAML shape. Percentages keep the
// two-decimal rendering used by the text report.
func NewDocument(results []montyhall.Result) Document {
	doc := Document{Results: make([]Summary, 0, len(results))}
	for _, r := range results {
		doc.Results = append(doc.Results, Summary{
			RunID:      r.RunID,
			Strategy:   r.Label,
			Trials:     r.Trials,
			Wins:       r.Wins,
			Percentage: strconv.FormatFloat(r.Percentage(), 'f', 2, 64),
		})
	}
	return doc
}

// WriteYAML writes results as a single YAML document.
func WriteYAML(w io.Writer, results []montyhall.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(results)); err != nil {
		return fmt.Errorf("report: encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("report: closing yaml encoder: %w", err)
	}
	return nil
}

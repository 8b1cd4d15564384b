// Package catalog ships the built-in sample mazes. They are compiled into
// the binary from samples.yaml; there is no way to load mazes at runtime.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazepath/maze"
)

//go:embed samples.yaml
var samplesYAML []byte

var (
	// ErrDecode indicates the sample document could not be parsed.
	ErrDecode = errors.New("catalog: cannot decode samples")
	// ErrEmpty indicates the document holds no mazes.
	ErrEmpty = errors.New("catalog: no sample mazes")
	// ErrDuplicateName indicates two samples share a name.
	ErrDuplicateName = errors.New("catalog: duplicate sample name")
)

// Sample is one named demonstration maze.
type Sample struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Rows        []string `yaml:"rows"`
}

// Grid parses the sample rows into a validated maze.Grid.
func (s Sample) Grid() (*maze.Grid, error) {
	g, err := maze.ParseRows(s.Rows)
	if err != nil {
		return nil, fmt.Errorf("catalog: sample %q: %w", s.Name, err)
	}
	return g, nil
}

type document struct {
	Mazes []Sample `yaml:"mazes"`
}

// Load returns the embedded samples in document order. Every sample is
// validated, so a nil error guarantees Grid succeeds for each of them.
func Load() ([]Sample, error) {
	return decode(samplesYAML)
}

func decode(data []byte) ([]Sample, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if len(doc.Mazes) == 0 {
		return nil, ErrEmpty
	}
	seen := make(map[string]bool, len(doc.Mazes))
	for _, s := range doc.Mazes {
		if seen[s.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, s.Name)
		}
		seen[s.Name] = true
		if _, err := s.Grid(); err != nil {
			return nil, err
		}
	}
	return doc.Mazes, nil
}

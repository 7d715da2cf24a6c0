// Package formats provides pluggable layout file format parsers.
package formats

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/pipeslide/internal/games/pipeslide/core"
	"gopkg.in/yaml.v3"
)

// GapToken marks an empty slot in a grid row.
const GapToken = "."

// ErrGridShape is returned when the grid does not match rows x cols.
var ErrGridShape = errors.New("grid does not match board size")

// YAMLLayout represents the YAML structure for a layout file.
type YAMLLayout struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Rows     int               `yaml:"rows,omitempty"`
	Cols     int               `yaml:"cols,omitempty"`
	Active   int               `yaml:"active,omitempty"`
	Gaps     []int             `yaml:"gaps,omitempty"` // Extra gaps on top of "." tokens
	Grid     []string          `yaml:"grid"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Layout represents a parsed layout ready for use.
type Layout struct {
	ID       string
	Name     string
	Rows     int
	Cols     int
	Layout   core.Layout
	Metadata map[string]string
}

// ParseYAML parses a YAML layout file.
// Rows and cols default to the grid's dimensions.
func ParseYAML(data []byte) (Layout, error) {
	var yl YAMLLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Layout{}, errors.New("missing id")
	}

	cells := make([][]string, len(yl.Grid))
	for r, line := range yl.Grid {
		cells[r] = strings.Fields(line)
	}

	rows, cols := yl.Rows, yl.Cols
	if rows == 0 {
		rows = len(cells)
	}
	if cols == 0 && len(cells) > 0 {
		cols = len(cells[0])
	}
	if len(cells) != rows {
		return Layout{}, fmt.Errorf("%w: %d grid rows, want %d", ErrGridShape, len(cells), rows)
	}

	out := Layout{
		ID:       yl.ID,
		Name:     yl.Name,
		Rows:     rows,
		Cols:     cols,
		Metadata: yl.Metadata,
		Layout: core.Layout{
			Shapes: make(map[int]core.Shape, rows*cols),
			Active: yl.Active,
		},
	}

	for r, row := range cells {
		if len(row) != cols {
			return Layout{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrGridShape, r, len(row), cols)
		}
		for c, tok := range row {
			idx := r*cols + c
			if tok == GapToken {
				out.Layout.Gaps = append(out.Layout.Gaps, idx)
				continue
			}
			shape, err := core.ParseShape(tok)
			if err != nil {
				return Layout{}, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			out.Layout.Shapes[idx] = shape
		}
	}
	out.Layout.Gaps = append(out.Layout.Gaps, yl.Gaps...)

	return out, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// MarshalYAML renders a layout back to the file format.
func MarshalYAML(l Layout) ([]byte, error) {
	gaps := make(map[int]bool, len(l.Layout.Gaps))
	for _, g := range l.Layout.Gaps {
		gaps[g] = true
	}

	yl := YAMLLayout{
		ID:       l.ID,
		Name:     l.Name,
		Rows:     l.Rows,
		Cols:     l.Cols,
		Active:   l.Layout.Active,
		Metadata: l.Metadata,
	}
	for r := range l.Rows {
		tokens := make([]string, l.Cols)
		for c := range l.Cols {
			idx := r*l.Cols + c
			switch shape, ok := l.Layout.Shapes[idx]; {
			case gaps[idx] || !ok:
				tokens[c] = GapToken + " "
			default:
				tokens[c] = shape.String()
			}
		}
		yl.Grid = append(yl.Grid, strings.TrimRight(strings.Join(tokens, " "), " "))
	}
	return yaml.Marshal(yl)
}

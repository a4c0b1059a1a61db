package room

import (
	"encoding/json"
	"errors"
	"math"

	"gopkg.in/yaml.v3"
)

// Decoding errors.
var (
	ErrInvalidCoordinate = errors.New("coordinate must be an integer")
	ErrCoordinateRange   = errors.New("coordinate is out of the integer range")
	ErrMalformedLayout   = errors.New("layout must be a sequence of rows")
)

// Cell is a single marker in a room layout.
// Only Free cells can be occupied and cleaned; every other value is non-free.
type Cell int

const (
	Free Cell = 0 // Free marks floor the robot can occupy.
	Wall Cell = 1 // Wall marks a non-traversable cell.
)

// IsFree reports whether the cell counts toward the cleanable area.
func (c Cell) IsFree() bool {
	return c == Free
}

// UnmarshalJSON decodes a cell leniently: the number 0 is Free,
// anything else (other numbers, strings, null) is treated as a Wall.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var n *float64
	if err := json.Unmarshal(data, &n); err != nil || n == nil || *n != 0 {
		*c = Wall
		return nil
	}
	*c = Free
	return nil
}

// UnmarshalYAML decodes a cell with the same lenient rules as UnmarshalJSON.
// yaml.v3 skips this method for null nodes; decode whole layouts through
// Layout so nulls become walls instead of disappearing from the row.
func (c *Cell) UnmarshalYAML(node *yaml.Node) error {
	*c = cellFromYAML(node)
	return nil
}

func cellFromYAML(node *yaml.Node) Cell {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	var n float64
	tag := node.ShortTag()
	if node.Kind != yaml.ScalarNode || (tag != "!!int" && tag != "!!float") || node.Decode(&n) != nil || n != 0 {
		return Wall
	}
	return Free
}

// Layout is a grid of cells indexed as layout[row][column].
type Layout [][]Cell

// UnmarshalYAML decodes every row element by element, so null or
// non-numeric markers keep their place as walls.
func (l *Layout) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.ShortTag() == "!!null" {
		*l = nil
		return nil
	}
	if node.Kind != yaml.SequenceNode {
		return ErrMalformedLayout
	}

	layout := make(Layout, len(node.Content))
	for y, rowNode := range node.Content {
		if rowNode.Kind == yaml.AliasNode && rowNode.Alias != nil {
			rowNode = rowNode.Alias
		}
		if rowNode.Kind != yaml.SequenceNode {
			return ErrMalformedLayout
		}
		row := make([]Cell, len(rowNode.Content))
		for x, cellNode := range rowNode.Content {
			row[x] = cellFromYAML(cellNode)
		}
		layout[y] = row
	}
	*l = layout
	return nil
}

// Position is a coordinate in a room. X indexes columns left to right,
// Y indexes rows top to bottom.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Add returns the position shifted by delta.
func (p Position) Add(delta Position) Position {
	return Position{X: p.X + delta.X, Y: p.Y + delta.Y}
}

type rawPosition struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func (r rawPosition) toPosition() (Position, error) {
	for _, f := range []float64{r.X, r.Y} {
		if f != math.Trunc(f) {
			return Position{}, ErrInvalidCoordinate
		}
		// float64(math.MaxInt) rounds up to a value one past the range.
		if f < float64(math.MinInt) || f >= float64(math.MaxInt) {
			return Position{}, ErrCoordinateRange
		}
	}
	return Position{X: int(r.X), Y: int(r.Y)}, nil
}

// UnmarshalJSON rejects fractional or non-numeric components instead of truncating them.
func (p *Position) UnmarshalJSON(data []byte) error {
	var raw rawPosition
	if err := json.Unmarshal(data, &raw); err != nil {
		return ErrInvalidCoordinate
	}
	pos, err := raw.toPosition()
	if err != nil {
		return err
	}
	*p = pos
	return nil
}

// UnmarshalYAML rejects fractional or non-numeric components instead of truncating them.
func (p *Position) UnmarshalYAML(node *yaml.Node) error {
	var raw rawPosition
	if err := node.Decode(&raw); err != nil {
		return ErrInvalidCoordinate
	}
	pos, err := raw.toPosition()
	if err != nil {
		return err
	}
	*p = pos
	return nil
}

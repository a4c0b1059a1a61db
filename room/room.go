/*
Package room models the static floor plan a cleaning robot works in.

A Room is a rectangular grid of cells, each either Free floor or a Wall, plus
the robot's declared start position. Rooms are immutable once built and may be
shared by concurrent simulations.

The package also loads named rooms from a YAML catalogue.
*/
package room

import (
	"errors"
	"strings"
)

// ErrRaggedLayout is returned when the rows of a layout differ in length.
var ErrRaggedLayout = errors.New("layout rows must all have the same length")

// Room is a rectangular grid of cells with the robot's start position.
// It is read-only after New.
type Room struct {
	width  int       // Number of columns, taken from the first row
	height int       // Number of rows
	start  *Position // Declared start; nil when the caller did not supply one
	layout [][]Cell  // Private copy of the caller's layout
}

// New builds a room from a layout and a start position.
// A nil or empty layout produces a 0x0 room. The layout is copied, so later
// changes to the caller's slices do not affect the room.
func New(layout [][]Cell, start *Position) (*Room, error) {
	height := len(layout)
	width := 0
	if height > 0 {
		width = len(layout[0])
	}

	grid := make([][]Cell, height)
	for y, row := range layout {
		if len(row) != width {
			return nil, ErrRaggedLayout
		}
		grid[y] = append([]Cell(nil), row...)
	}

	var startCopy *Position
	if start != nil {
		s := *start
		startCopy = &s
	}

	return &Room{
		width:  width,
		height: height,
		start:  startCopy,
		layout: grid,
	}, nil
}

// Width returns the number of columns.
func (r *Room) Width() int {
	return r.width
}

// Height returns the number of rows.
func (r *Room) Height() int {
	return r.height
}

// Start returns a copy of the declared start position, or nil if there is none.
func (r *Room) Start() *Position {
	if r.start == nil {
		return nil
	}
	s := *r.start
	return &s
}

// TotalFreeArea counts the Free cells in the room.
func (r *Room) TotalFreeArea() int {
	total := 0
	for _, row := range r.layout {
		for _, cell := range row {
			if cell.IsFree() {
				total++
			}
		}
	}
	return total
}

// InBounds reports whether (x, y) lies inside the room.
func (r *Room) InBounds(x, y int) bool {
	return y >= 0 && y < r.height && x >= 0 && x < r.width
}

// IsWall reports whether (x, y) blocks the robot.
// Positions outside the room are walls.
func (r *Room) IsWall(x, y int) bool {
	if !r.InBounds(x, y) {
		return true
	}
	return !r.layout[y][x].IsFree()
}

// Cell returns the marker at (x, y) and whether the position is inside the room.
func (r *Room) Cell(x, y int) (Cell, bool) {
	if !r.InBounds(x, y) {
		return Wall, false
	}
	return r.layout[y][x], true
}

// String renders the room as text: '.' for free floor, '#' for walls and
// 'R' for the start position when it is inside the room.
func (r *Room) String() string {
	var b strings.Builder
	for y, row := range r.layout {
		for x, cell := range row {
			switch {
			case r.start != nil && r.start.X == x && r.start.Y == y:
				b.WriteByte('R')
			case cell.IsFree():
				b.WriteByte('.')
			default:
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

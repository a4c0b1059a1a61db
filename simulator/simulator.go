/*
Package simulator replays a cleaning robot's command sequence over a room and
measures how much of the free floor it covered.

Every call owns its own traversal state, so a single room may be simulated by
many goroutines at once.
*/
package simulator

import (
	"errors"

	"github.com/beka-birhanu/robot-coverage/room"
)

// Command is a single move instruction.
type Command string

const (
	Up    Command = "UP"
	Down  Command = "DOWN"
	Left  Command = "LEFT"
	Right Command = "RIGHT"
)

var (
	// Directions maps each recognized command to its unit step.
	Directions = map[Command]room.Position{
		Up:    {X: 0, Y: -1},
		Down:  {X: 0, Y: 1},
		Left:  {X: -1, Y: 0},
		Right: {X: 1, Y: 0},
	}

	ErrMissingStart = errors.New("room has no start position")
	ErrNilPath      = errors.New("path must not be nil")
)

// Result describes a finished simulation run.
type Result struct {
	Coverage float64       `json:"coverage"` // Cleaned / Total, 0 when nothing could be cleaned
	Cleaned  int           `json:"cleaned"`  // Distinct free cells visited, start included
	Total    int           `json:"total"`    // Free cells in the room
	Final    room.Position `json:"final"`    // Robot position after the last command
	Absorbed int           `json:"absorbed"` // Moves blocked by a wall or the room edge
	Skipped  int           `json:"skipped"`  // Unrecognized commands
}

// Delta returns the step for cmd. ok is false for unrecognized commands.
func Delta(cmd Command) (room.Position, bool) {
	delta, ok := Directions[cmd]
	return delta, ok
}

// ParseCommands converts raw tokens into commands without any normalization,
// so "up" stays an unrecognized command.
func ParseCommands(tokens []string) []Command {
	if tokens == nil {
		return nil
	}
	path := make([]Command, len(tokens))
	for i, token := range tokens {
		path[i] = Command(token)
	}
	return path
}

// Coverage returns the fraction of the room's free cells visited while
// following path from the room's start position.
func Coverage(r *room.Room, path []Command) (float64, error) {
	result, err := Run(r, path)
	if err != nil {
		return 0, err
	}
	return result.Coverage, nil
}

// Run simulates path over r and reports the coverage with its counters.
//
// A room with no free cells, or a start that is outside the room or on a
// wall, yields a zero result without consuming any command. Moves into walls
// or past the edge leave the robot where it is.
func Run(r *room.Room, path []Command) (Result, error) {
	total := r.TotalFreeArea()
	if total == 0 {
		return Result{}, nil
	}

	start := r.Start()
	if start == nil {
		return Result{}, ErrMissingStart
	}
	pos := *start
	if !r.InBounds(pos.X, pos.Y) || r.IsWall(pos.X, pos.Y) {
		return Result{Total: total, Final: pos}, nil
	}

	if path == nil {
		return Result{}, ErrNilPath
	}

	visited := make([][]bool, r.Height())
	for y := range visited {
		visited[y] = make([]bool, r.Width())
	}
	visited[pos.Y][pos.X] = true
	result := Result{Cleaned: 1, Total: total}

	for _, cmd := range path {
		delta, ok := Delta(cmd)
		if !ok {
			result.Skipped++
			continue
		}

		next := pos.Add(delta)
		if !r.InBounds(next.X, next.Y) || r.IsWall(next.X, next.Y) {
			result.Absorbed++
			continue
		}

		pos = next
		if !visited[pos.Y][pos.X] {
			visited[pos.Y][pos.X] = true
			result.Cleaned++
		}
	}

	result.Final = pos
	result.Coverage = float64(result.Cleaned) / float64(total)
	return result, nil
}

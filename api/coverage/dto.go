// Package coverageapi exposes coverage simulations and the room catalogue over HTTP.
package coverageapi

import (
	"github.com/beka-birhanu/robot-coverage/room"
	"github.com/beka-birhanu/robot-coverage/service/i"
)

// CoverageRequest describes an ad-hoc room and the path to replay in it.
type CoverageRequest struct {
	Layout room.Layout    `json:"layout"`
	Start  *room.Position `json:"start"`
	Path   []string       `json:"path"`
}

// BatchRequest replays several paths in the same ad-hoc room.
type BatchRequest struct {
	Layout room.Layout    `json:"layout"`
	Start  *room.Position `json:"start"`
	Paths  [][]string     `json:"paths"`
}

// PathRequest replays a path in a catalogue room.
type PathRequest struct {
	Path []string `json:"path"`
}

// RunResponse is the outcome of one simulation.
type RunResponse struct {
	RunID    string        `json:"run_id"`
	Coverage float64       `json:"coverage"`
	Cleaned  int           `json:"cleaned"`
	Total    int           `json:"total"`
	Final    room.Position `json:"final"`
	Absorbed int           `json:"absorbed"`
	Skipped  int           `json:"skipped"`
}

// BatchResponse holds one RunResponse per requested path, in request order.
type BatchResponse struct {
	Runs []RunResponse `json:"runs"`
}

// RoomResponse describes a catalogue room.
type RoomResponse struct {
	Name      string         `json:"name"`
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	FreeArea  int            `json:"free_area"`
	Start     *room.Position `json:"start"`
	Rendering string         `json:"rendering"`
}

// RoomListResponse lists catalogue room names.
type RoomListResponse struct {
	Rooms []string `json:"rooms"`
}

func newRunResponse(run *i.Run) RunResponse {
	return RunResponse{
		RunID:    run.ID.String(),
		Coverage: run.Coverage,
		Cleaned:  run.Cleaned,
		Total:    run.Total,
		Final:    run.Final,
		Absorbed: run.Absorbed,
		Skipped:  run.Skipped,
	}
}

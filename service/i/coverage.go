package i

import (
	"context"

	"github.com/beka-birhanu/robot-coverage/room"
	"github.com/beka-birhanu/robot-coverage/simulator"
	"github.com/google/uuid"
)

// Run is one identified simulation result.
type Run struct {
	ID uuid.UUID
	simulator.Result
}

// CoverageRunner simulates command sequences over rooms.
type CoverageRunner interface {
	// Evaluate runs a single path over r.
	Evaluate(ctx context.Context, r *room.Room, path []simulator.Command) (*Run, error)

	// EvaluateBatch runs every path over r and returns results in input order.
	EvaluateBatch(ctx context.Context, r *room.Room, paths [][]simulator.Command) ([]*Run, error)
}

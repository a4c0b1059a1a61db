package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/beka-birhanu/robot-coverage/room"
	"github.com/beka-birhanu/robot-coverage/service/i"
	"github.com/beka-birhanu/robot-coverage/simulator"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	defaultMaxPathLength   = 100000
	defaultMaxParallelRuns = 8
)

// Coverage service errors.
var (
	ErrPathTooLong = errors.New("path exceeds the maximum length")
	ErrEmptyBatch  = errors.New("batch must contain at least one path")
	ErrNilRoom     = errors.New("room must not be nil")
)

// Coverage runs simulations and tags each one with a run ID.
type Coverage struct {
	maxPathLength   int
	maxParallelRuns int
	logger          i.Logger
}

// CoverageConfig holds the settings for a Coverage service.
type CoverageConfig struct {
	MaxPathLength   int // Longest accepted path; <= 0 uses the default
	MaxParallelRuns int // Concurrent runs per batch; <= 0 uses the default
	Logger          i.Logger
}

// NewCoverage creates a Coverage service.
func NewCoverage(c *CoverageConfig) (*Coverage, error) {
	if c == nil || c.Logger == nil {
		return nil, errors.New("coverage service requires a logger")
	}

	cs := &Coverage{
		maxPathLength:   c.MaxPathLength,
		maxParallelRuns: c.MaxParallelRuns,
		logger:          c.Logger,
	}
	if cs.maxPathLength <= 0 {
		cs.maxPathLength = defaultMaxPathLength
	}
	if cs.maxParallelRuns <= 0 {
		cs.maxParallelRuns = defaultMaxParallelRuns
	}
	return cs, nil
}

// Evaluate runs a single path over r.
func (c *Coverage) Evaluate(ctx context.Context, r *room.Room, path []simulator.Command) (*i.Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.run(r, path)
}

// EvaluateBatch runs every path concurrently over the shared room.
// The first failing path cancels the rest and its error is returned.
func (c *Coverage) EvaluateBatch(ctx context.Context, r *room.Room, paths [][]simulator.Command) ([]*i.Run, error) {
	if len(paths) == 0 {
		return nil, ErrEmptyBatch
	}

	runs := make([]*i.Run, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxParallelRuns)
	for idx, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			run, err := c.run(r, path)
			if err != nil {
				return fmt.Errorf("path %d: %w", idx, err)
			}
			runs[idx] = run
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		c.logger.Error(fmt.Sprintf("batch of %d paths failed: %v", len(paths), err))
		return nil, err
	}
	c.logger.Info(fmt.Sprintf("batch of %d paths completed", len(paths)))
	return runs, nil
}

func (c *Coverage) run(r *room.Room, path []simulator.Command) (*i.Run, error) {
	if r == nil {
		return nil, ErrNilRoom
	}
	if len(path) > c.maxPathLength {
		return nil, ErrPathTooLong
	}

	id := uuid.New()
	result, err := simulator.Run(r, path)
	if err != nil {
		c.logger.Debug(fmt.Sprintf("run %s rejected: %v", id, err))
		return nil, err
	}

	c.logger.Debug(fmt.Sprintf("run %s: %d/%d cells cleaned, %d absorbed, %d skipped",
		id, result.Cleaned, result.Total, result.Absorbed, result.Skipped))
	return &i.Run{ID: id, Result: result}, nil
}

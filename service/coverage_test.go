package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/beka-birhanu/robot-coverage/logger"
	"github.com/beka-birhanu/robot-coverage/room"
	"github.com/beka-birhanu/robot-coverage/simulator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, maxPath, parallel int) (*Coverage, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l, err := logger.New("COVERAGE", "", &buf)
	require.NoError(t, err)
	l.SetDebug(true)

	svc, err := NewCoverage(&CoverageConfig{MaxPathLength: maxPath, MaxParallelRuns: parallel, Logger: l})
	require.NoError(t, err)
	return svc, &buf
}

func openRoom(t *testing.T) *room.Room {
	t.Helper()
	r, err := room.New([][]room.Cell{
		{room.Free, room.Free, room.Free},
		{room.Free, room.Free, room.Free},
		{room.Free, room.Free, room.Free},
	}, &room.Position{X: 1, Y: 1})
	require.NoError(t, err)
	return r
}

func TestNewCoverage(t *testing.T) {
	_, err := NewCoverage(nil)
	assert.Error(t, err)

	_, err = NewCoverage(&CoverageConfig{})
	assert.Error(t, err)

	svc, _ := newTestService(t, 0, 0)
	assert.Equal(t, defaultMaxPathLength, svc.maxPathLength)
	assert.Equal(t, defaultMaxParallelRuns, svc.maxParallelRuns)
}

func TestEvaluate(t *testing.T) {
	svc, logs := newTestService(t, 4, 2)
	ctx := context.Background()

	t.Run("Valid path", func(t *testing.T) {
		run, err := svc.Evaluate(ctx, openRoom(t), []simulator.Command{simulator.Up, simulator.Right})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, run.ID)
		assert.InDelta(t, 3.0/9, run.Coverage, 1e-9)
		assert.Contains(t, logs.String(), run.ID.String())
	})

	t.Run("Path too long", func(t *testing.T) {
		path := []simulator.Command{simulator.Up, simulator.Up, simulator.Up, simulator.Up, simulator.Up}
		_, err := svc.Evaluate(ctx, openRoom(t), path)
		assert.ErrorIs(t, err, ErrPathTooLong)
	})

	t.Run("Simulator errors propagate", func(t *testing.T) {
		_, err := svc.Evaluate(ctx, openRoom(t), nil)
		assert.ErrorIs(t, err, simulator.ErrNilPath)
	})

	t.Run("Nil room", func(t *testing.T) {
		_, err := svc.Evaluate(ctx, nil, []simulator.Command{})
		assert.ErrorIs(t, err, ErrNilRoom)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := svc.Evaluate(cctx, openRoom(t), []simulator.Command{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestEvaluateBatch(t *testing.T) {
	svc, _ := newTestService(t, 10, 3)
	ctx := context.Background()
	r := openRoom(t)

	paths := [][]simulator.Command{
		{},
		{simulator.Up},
		{simulator.Up, simulator.Right},
		{simulator.Up, simulator.Right, simulator.Down, simulator.Left},
		{"JUMP"},
	}

	t.Run("Results match sequential runs", func(t *testing.T) {
		runs, err := svc.EvaluateBatch(ctx, r, paths)
		require.NoError(t, err)
		require.Len(t, runs, len(paths))

		seen := make(map[uuid.UUID]struct{})
		for idx, run := range runs {
			want, err := simulator.Run(r, paths[idx])
			require.NoError(t, err)
			assert.Equal(t, want, run.Result)
			seen[run.ID] = struct{}{}
		}
		assert.Len(t, seen, len(paths), "every run gets its own ID")
	})

	t.Run("Empty batch", func(t *testing.T) {
		_, err := svc.EvaluateBatch(ctx, r, nil)
		assert.ErrorIs(t, err, ErrEmptyBatch)
	})

	t.Run("One failing path fails the batch", func(t *testing.T) {
		_, err := svc.EvaluateBatch(ctx, r, [][]simulator.Command{{simulator.Up}, nil})
		assert.ErrorIs(t, err, simulator.ErrNilPath)
	})
}

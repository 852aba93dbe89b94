package session

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazesolver/gridgraph"
	"github.com/katalvlaran/mazesolver/pathfind"
)

func newSession(t *testing.T) (*Session, *bytes.Buffer) {
	t.Helper()
	g, err := gridgraph.Maze("Maze 1")
	require.NoError(t, err)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(g, logger), &buf
}

// gate blocks every visit until released.
func gate() (pathfind.Option, chan struct{}, chan struct{}) {
	entered := make(chan struct{}, 1)
	release := make(chan struct{})
	hook := func(gridgraph.Cell) error {
		select {
		case entered <- struct{}{}:
		default:
		}
		<-release
		return nil
	}
	return pathfind.WithOnVisit(hook), entered, release
}

func TestRun_StreamsTrace(t *testing.T) {
	s, logs := newSession(t)

	run, err := s.Run(context.Background(), pathfind.AlgoBFS)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, run.ID)

	var trace []gridgraph.Cell
	for c := range run.Trace {
		trace = append(trace, c)
	}
	out := <-run.Done
	require.NoError(t, out.Err)
	require.True(t, out.Result.Found)
	require.Equal(t, 17.0, out.Result.Cost)
	require.Len(t, trace, out.Result.Expanded)
	require.Equal(t, s.Grid().Start, trace[0])

	again, err := run.Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, out.Result, again.Result)

	require.Contains(t, logs.String(), "run_id="+run.ID.String())
	require.Contains(t, logs.String(), "found=true")
}

func TestRun_Busy(t *testing.T) {
	s, _ := newSession(t)
	hold, entered, release := gate()

	run, err := s.Run(context.Background(), pathfind.AlgoAStar, hold)
	require.NoError(t, err)
	run.Discard()
	<-entered
	require.True(t, s.Busy())

	_, err = s.Run(context.Background(), pathfind.AlgoBFS)
	require.ErrorIs(t, err, ErrBusy)
	require.ErrorIs(t, s.SetWall(gridgraph.Cell{Row: 0, Col: 1}, true), ErrBusy)
	require.ErrorIs(t, s.SetStart(gridgraph.Cell{Row: 0, Col: 1}), ErrBusy)
	require.ErrorIs(t, s.SetEnd(gridgraph.Cell{Row: 0, Col: 1}), ErrBusy)

	close(release)
	out, err := run.Wait(context.Background())
	require.NoError(t, err)
	require.NoError(t, out.Err)
	require.True(t, out.Result.Found)
	require.False(t, s.Busy())

	require.NoError(t, s.SetEnd(gridgraph.Cell{Row: 0, Col: 1}))
	next, err := s.Run(context.Background(), pathfind.AlgoBFS)
	require.NoError(t, err)
	next.Discard()
	out, err = next.Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1.0, out.Result.Cost)
}

func TestRun_Cancel(t *testing.T) {
	s, logs := newSession(t)
	hold, entered, release := gate()

	run, err := s.Run(context.Background(), pathfind.AlgoDijkstra, hold)
	require.NoError(t, err)
	<-entered
	run.Cancel()
	close(release)

	out, err := run.Wait(context.Background())
	require.NoError(t, err)
	require.ErrorIs(t, out.Err, context.Canceled)
	require.Contains(t, logs.String(), "run failed")

	// Trace is closed after Cancel even though nobody read it.
	for range run.Trace {
	}
}

func TestRun_WaitDeadline(t *testing.T) {
	s, _ := newSession(t)
	hold, entered, release := gate()

	run, err := s.Run(context.Background(), pathfind.AlgoBFS, hold)
	require.NoError(t, err)
	run.Discard()
	<-entered

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = run.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	out, err := run.Wait(context.Background())
	require.NoError(t, err)
	require.True(t, out.Result.Found)
}

func TestRun_CallerHookError(t *testing.T) {
	s, _ := newSession(t)
	boom := errors.New("boom")

	run, err := s.Run(context.Background(), pathfind.AlgoBFS,
		pathfind.WithOnVisit(func(gridgraph.Cell) error { return boom }))
	require.NoError(t, err)
	run.Discard()

	out, err := run.Wait(context.Background())
	require.NoError(t, err)
	require.ErrorIs(t, out.Err, boom)
	require.False(t, s.Busy())
}

func TestRun_Rejected(t *testing.T) {
	s, _ := newSession(t)

	_, err := s.Run(context.Background(), pathfind.Algorithm("Nope"))
	require.ErrorIs(t, err, pathfind.ErrUnknownAlgorithm)

	require.NoError(t, s.SetWall(gridgraph.DefaultEnd, true))
	_, err = s.Run(context.Background(), pathfind.AlgoBFS)
	require.ErrorIs(t, err, pathfind.ErrInvalidGrid)
	require.False(t, s.Busy())

	_, err = New(nil, nil).Run(context.Background(), pathfind.AlgoBFS)
	require.ErrorIs(t, err, pathfind.ErrGridNil)
}

func TestGrid_IsCopy(t *testing.T) {
	s, _ := newSession(t)
	g := s.Grid()
	require.NoError(t, g.SetWall(gridgraph.Cell{Row: 0, Col: 1}, true))
	require.False(t, s.Grid().IsWall(gridgraph.Cell{Row: 0, Col: 1}))
}

package mazeapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/mazesolver/gridgraph"
	"github.com/katalvlaran/mazesolver/internal/session"
	"github.com/katalvlaran/mazesolver/pathfind"
)

// Config holds the solve defaults for a MazeServer.
type Config struct {
	DefaultMaze string            // Built-in maze used when the request names none
	Timeout     time.Duration     // Upper bound for one solve, 0 = none
	Options     []pathfind.Option // Applied to every solve before request options
	Logger      *slog.Logger
}

// MazeServer handles HTTP requests for mazes, algorithms and solving.
type MazeServer struct {
	defaultMaze string
	timeout     time.Duration
	options     []pathfind.Option
	logger      *slog.Logger
}

// NewMazeServer creates a new MazeServer.
func NewMazeServer(config Config) *MazeServer {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &MazeServer{
		defaultMaze: config.DefaultMaze,
		timeout:     config.Timeout,
		options:     config.Options,
		logger:      logger,
	}
}

// Register registers the maze routes.
func (c *MazeServer) Register(route *gin.RouterGroup) {
	route.GET("/mazes", c.listMazes)
	route.GET("/algorithms", c.listAlgorithms)
	route.POST("/solve", c.solve)
}

// listMazes returns the built-in mazes in menu order.
func (c *MazeServer) listMazes(ctx *gin.Context) {
	names := gridgraph.MazeNames()
	response := make([]MazeResponse, 0, len(names))
	for _, name := range names {
		g, err := gridgraph.Maze(name)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		response = append(response, MazeResponse{
			Name:   name,
			Width:  g.Width,
			Height: g.Height,
			Start:  CellDTO{Row: g.Start.Row, Col: g.Start.Col},
			End:    CellDTO{Row: g.End.Row, Col: g.End.Col},
			Cells:  g.Values(),
		})
	}
	ctx.JSON(http.StatusOK, response)
}

// listAlgorithms returns the solvers in menu order.
func (c *MazeServer) listAlgorithms(ctx *gin.Context) {
	algos := pathfind.Algorithms()
	response := make([]AlgorithmResponse, len(algos))
	for i, a := range algos {
		response[i] = AlgorithmResponse{Name: a.String(), Optimal: a.Optimal()}
	}
	ctx.JSON(http.StatusOK, response)
}

// solve runs one algorithm to completion through a private session.
func (c *MazeServer) solve(ctx *gin.Context) {
	var request SolveRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	algo, err := pathfind.ParseAlgorithm(request.Algorithm)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := c.grid(request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	solveCtx := ctx.Request.Context()
	if c.timeout > 0 {
		var cancel context.CancelFunc
		solveCtx, cancel = context.WithTimeout(solveCtx, c.timeout)
		defer cancel()
	}

	opts := append([]pathfind.Option(nil), c.options...)
	if request.Seed != nil {
		opts = append(opts, pathfind.WithSeed(*request.Seed))
	}
	var rec pathfind.Recorder
	if request.Trace {
		opts = append(opts, rec.Option())
	}

	run, err := session.New(g, c.logger).Run(solveCtx, algo, opts...)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	run.Discard()

	// The solver observes solveCtx itself, so this wait is bounded.
	out, _ := run.Wait(context.Background())
	if out.Err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(out.Err, context.DeadlineExceeded), errors.Is(out.Err, context.Canceled):
			status = http.StatusGatewayTimeout
		case errors.Is(out.Err, pathfind.ErrGridTooLarge):
			status = http.StatusUnprocessableEntity
		}
		ctx.JSON(status, gin.H{"error": out.Err.Error(), "run_id": run.ID})
		return
	}

	response := &SolveResponse{
		RunID:     run.ID,
		Algorithm: algo.String(),
		Found:     out.Result.Found,
		Path:      fromCells(out.Result.Path),
		Expanded:  out.Result.Expanded,
		Cost:      out.Result.Cost,
		ElapsedMS: out.Elapsed.Milliseconds(),
	}
	if request.Trace {
		response.Visited = fromCells(rec.Cells())
	}
	if !out.Result.Found {
		_, walls, err := g.WallsToBreak(g.Start, g.End)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "run_id": run.ID})
			return
		}
		response.WallsToRemove = fromCells(walls)
	}
	ctx.JSON(http.StatusOK, response)
}

// grid resolves the request's grid and endpoint overrides.
func (c *MazeServer) grid(request SolveRequest) (*gridgraph.Grid, error) {
	var (
		g   *gridgraph.Grid
		err error
	)
	switch {
	case len(request.Grid) > 0 && request.Maze != "":
		return nil, errors.New("maze and grid are mutually exclusive")
	case len(request.Grid) > 0:
		if request.Start == nil || request.End == nil {
			return nil, errors.New("start and end are required with an explicit grid")
		}
		g, err = gridgraph.NewGrid(request.Grid, toCell(*request.Start), toCell(*request.End))
	default:
		name := request.Maze
		if name == "" {
			name = c.defaultMaze
		}
		g, err = gridgraph.Maze(name)
	}
	if err != nil {
		return nil, err
	}

	if request.Start != nil {
		if err = g.SetStart(toCell(*request.Start)); err != nil {
			return nil, fmt.Errorf("start: %w", err)
		}
	}
	if request.End != nil {
		if err = g.SetEnd(toCell(*request.End)); err != nil {
			return nil, fmt.Errorf("end: %w", err)
		}
	}
	return g, nil
}

package mazeapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazesolver/internal/api"
	mazeapi "github.com/katalvlaran/mazesolver/internal/api/maze"
	"github.com/katalvlaran/mazesolver/pathfind"
)

func newHandler(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	server := mazeapi.NewMazeServer(mazeapi.Config{
		DefaultMaze: "Maze 1",
		Timeout:     5 * time.Second,
		Options:     []pathfind.Option{pathfind.WithMemoryLimit(50)},
	})
	return api.NewRouter(api.Config{
		BaseURL:     "/api",
		Controllers: []api.Controller{server},
	}).Handler()
}

func do(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return do(t, h, req)
}

func TestListMazes(t *testing.T) {
	w := do(t, newHandler(t), httptest.NewRequest(http.MethodGet, "/api/v1/mazes", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var mazes []mazeapi.MazeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mazes))
	require.Len(t, mazes, 4)
	assert.Equal(t, "Maze 1", mazes[0].Name)
	assert.Equal(t, 10, mazes[0].Width)
	assert.Equal(t, 9, mazes[0].Height)
	assert.Equal(t, mazeapi.CellDTO{Row: 8, Col: 9}, mazes[0].End)
	assert.Len(t, mazes[0].Cells, 9)
}

func TestListAlgorithms(t *testing.T) {
	w := do(t, newHandler(t), httptest.NewRequest(http.MethodGet, "/api/v1/algorithms", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var algos []mazeapi.AlgorithmResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &algos))
	require.Len(t, algos, len(pathfind.Algorithms()))
	assert.Equal(t, mazeapi.AlgorithmResponse{Name: "BFS", Optimal: true}, algos[0])
}

func TestSolve(t *testing.T) {
	h := newHandler(t)

	tests := []struct {
		name    string
		body    string
		found   bool
		cost    float64
		pathLen int
		visited bool
		walls   []mazeapi.CellDTO
	}{
		{"default maze", `{"algorithm":"bfs"}`, true, 17, 18, false, nil},
		{"named maze with trace", `{"maze":"Maze 4","algorithm":"A*","trace":true}`, true, 17, 18, true, nil},
		{"explicit grid", `{"grid":[[0,0,0],[1,0,1],[0,0,0]],"start":{"row":0,"col":0},"end":{"row":2,"col":0},"algorithm":"dijkstra"}`, true, 4, 5, false, nil},
		{"not found", `{"grid":[[0,0,0],[1,1,1],[0,0,0]],"start":{"row":0,"col":0},"end":{"row":2,"col":0},"algorithm":"BFS"}`, false, 0, 0, false, []mazeapi.CellDTO{{Row: 1, Col: 0}}},
		{"seeded random walk", `{"maze":"Maze 1","algorithm":"random walk","seed":7}`, true, -1, -1, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(t, h, tt.body)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var res mazeapi.SolveResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.NotEqual(t, uuid.Nil, res.RunID)
			assert.Equal(t, tt.found, res.Found)
			assert.NotNil(t, res.Path)
			if tt.cost >= 0 {
				assert.Equal(t, tt.cost, res.Cost)
				assert.Len(t, res.Path, tt.pathLen)
			}
			if tt.visited {
				assert.Len(t, res.Visited, res.Expanded)
			} else {
				assert.Empty(t, res.Visited)
			}
			assert.Equal(t, tt.walls, res.WallsToRemove)
		})
	}
}

func TestSolve_NotFoundHasEmptyPath(t *testing.T) {
	w := post(t, newHandler(t), `{"grid":[[0,1,0]],"start":{"row":0,"col":0},"end":{"row":0,"col":2},"algorithm":"BFS"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"path":[]`)
	assert.Contains(t, w.Body.String(), `"found":false`)
	assert.Contains(t, w.Body.String(), `"walls_to_remove":[{"row":0,"col":1}]`)
}

func TestSolve_GridTooLarge(t *testing.T) {
	cells := make([][]int, 70)
	for r := range cells {
		cells[r] = make([]int, 70)
	}
	body, err := json.Marshal(mazeapi.SolveRequest{
		Grid:      cells,
		Start:     &mazeapi.CellDTO{Row: 0, Col: 0},
		End:       &mazeapi.CellDTO{Row: 69, Col: 69},
		Algorithm: "fw",
	})
	require.NoError(t, err)

	w := post(t, newHandler(t), string(body))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "too large")
	assert.Contains(t, w.Body.String(), `"run_id"`)
}

func TestSolve_BadRequest(t *testing.T) {
	h := newHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"algorithm":`},
		{"missing algorithm", `{"maze":"Maze 1"}`},
		{"unknown algorithm", `{"algorithm":"teleport"}`},
		{"unknown maze", `{"maze":"Maze 9","algorithm":"BFS"}`},
		{"maze and grid", `{"maze":"Maze 1","grid":[[0]],"start":{"row":0,"col":0},"end":{"row":0,"col":0},"algorithm":"BFS"}`},
		{"grid without endpoints", `{"grid":[[0,0]],"algorithm":"BFS"}`},
		{"ragged grid", `{"grid":[[0,0],[0]],"start":{"row":0,"col":0},"end":{"row":0,"col":1},"algorithm":"BFS"}`},
		{"end on wall", `{"grid":[[0,1]],"start":{"row":0,"col":0},"end":{"row":0,"col":1},"algorithm":"BFS"}`},
		{"start out of bounds", `{"maze":"Maze 1","start":{"row":-1,"col":0},"algorithm":"BFS"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(t, h, tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}

func TestSolve_Timeout(t *testing.T) {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve",
		bytes.NewBufferString(`{"maze":"Maze 2","algorithm":"BFS"}`)).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")

	w := do(t, newHandler(t), req)
	require.Equal(t, http.StatusGatewayTimeout, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "deadline exceeded")
}

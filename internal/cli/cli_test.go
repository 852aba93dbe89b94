package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazesolver/internal/config"
	"github.com/katalvlaran/mazesolver/pathfind"
)

// execute runs a fresh command tree and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func decode(t *testing.T, out string) solveJSON {
	t.Helper()
	var doc solveJSON
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	return doc
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)
	for _, name := range []string{"Maze 1", "Maze 4", "9x10", "COMPONENTS", "Jump Point Search", "SMA*"} {
		assert.Contains(t, out, name)
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Maze ") {
			fields := strings.Fields(line)
			assert.Equal(t, "1", fields[len(fields)-1], line)
		}
	}
}

func TestSolve_Text(t *testing.T) {
	out, _, err := execute(t, "solve", "--maze", "Maze 1", "--algorithm", "bfs")
	require.NoError(t, err)
	assert.Contains(t, out, "algorithm: BFS (optimal)")
	assert.Contains(t, out, "found: true  cells: 18  cost: 17")
	assert.Contains(t, out, "+----------+")
	assert.NotContains(t, out, ".", "visited cells are hidden without --trace")
}

func TestSolve_JSON(t *testing.T) {
	out, _, err := execute(t, "solve", "--maze", "Maze 4", "-a", "A*", "--format", "json")
	require.NoError(t, err)
	doc := decode(t, out)
	assert.Equal(t, "Maze 4", doc.Maze)
	assert.Equal(t, "A*", doc.Algorithm)
	assert.True(t, doc.Optimal)
	assert.True(t, doc.Found)
	assert.Len(t, doc.Path, 18)
	assert.Equal(t, cellJSON{Row: 0, Col: 0}, doc.Path[0])
	assert.Equal(t, cellJSON{Row: 8, Col: 9}, doc.Path[17])
	assert.Empty(t, doc.Visited)
}

func TestSolve_Trace(t *testing.T) {
	out, _, err := execute(t, "solve", "--algorithm", "dijkstra", "--format", "json", "--trace")
	require.NoError(t, err)
	doc := decode(t, out)
	assert.Len(t, doc.Visited, doc.Expanded)
}

func TestSolve_ThetaCost(t *testing.T) {
	out, _, err := execute(t, "solve", "--random", "3x3", "--loops", "20", "--seed", "5", "--algorithm", "theta")
	require.NoError(t, err)
	assert.Contains(t, out, "maze: random 3x3")
	assert.Contains(t, out, "found: true")
}

func TestSolve_Random(t *testing.T) {
	args := []string{"solve", "--random", "4x6", "--seed", "11", "--algorithm", "jps", "--format", "json"}
	first, _, err := execute(t, args...)
	require.NoError(t, err)
	second, _, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second, "seeded runs are reproducible")

	doc := decode(t, first)
	assert.Equal(t, "random 4x6", doc.Maze)
	assert.True(t, doc.Found)
	assert.Equal(t, cellJSON{Row: 1, Col: 1}, doc.Path[0])
	assert.Equal(t, cellJSON{Row: 7, Col: 11}, doc.Path[len(doc.Path)-1])
}

func TestSolve_Animate(t *testing.T) {
	out, _, err := execute(t, "solve", "--algorithm", "bfs", "--animate", "--delay", "0")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "step 1 (0,0)\n"))
	assert.Contains(t, out, "path 1/18 (0,0)\n")
	assert.Contains(t, out, "path 18/18 (8,9)\n")
	assert.Less(t, strings.Index(out, "path 1/18"), strings.Index(out, "found: true"))
}

func TestSolve_WallsToRemove(t *testing.T) {
	args := []string{"solve", "--maze", "Maze 1", "-a", "bfs", "--wall", "0,1", "--wall", "1,0"}

	out, _, err := execute(t, append(args, "--format", "json")...)
	require.NoError(t, err)
	doc := decode(t, out)
	assert.False(t, doc.Found)
	assert.Empty(t, doc.Path)
	require.Len(t, doc.Walls, 1)
	assert.Contains(t, []cellJSON{{Row: 0, Col: 1}, {Row: 1, Col: 0}}, doc.Walls[0])

	out, _, err = execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "found: false")
	assert.Contains(t, out, "walls to remove: [")

	out, _, err = execute(t, "solve", "--maze", "Maze 1", "-a", "bfs", "--format", "json")
	require.NoError(t, err)
	assert.NotContains(t, out, "walls_to_remove")
}

func TestSolve_DefaultsFromEnv(t *testing.T) {
	t.Setenv(config.EnvDefaultAlgorithm, "dfs")
	t.Setenv(config.EnvDefaultMaze, "Maze 2")
	out, _, err := execute(t, "solve", "--format", "json")
	require.NoError(t, err)
	doc := decode(t, out)
	assert.Equal(t, "DFS", doc.Algorithm)
	assert.Equal(t, "Maze 2", doc.Maze)
}

func TestSolve_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown algorithm", []string{"solve", "-a", "teleport"}, "unknown algorithm"},
		{"unknown format", []string{"solve", "--format", "yaml"}, "unknown format"},
		{"animate json", []string{"solve", "--animate", "--format", "json"}, "--animate"},
		{"bad size", []string{"solve", "--random", "big"}, "invalid --random"},
		{"bad wall", []string{"solve", "--wall", "a,b"}, "invalid --wall"},
		{"wall out of bounds", []string{"solve", "--wall", "20,20"}, "out of bounds"},
		{"zero size", []string{"solve", "--random", "0x4"}, "mazegen"},
		{"unknown maze", []string{"solve", "--maze", "Maze 7"}, "Maze 7"},
		{"maze and random", []string{"solve", "--maze", "Maze 1", "--random", "3x3"}, "none of the others"},
		{"missing env file", []string{"list", "--env-file", "/nonexistent/.env"}, "config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSolve_InvalidEnv(t *testing.T) {
	t.Setenv(config.EnvSMAMemory, "0")
	_, _, err := execute(t, "list")
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "solve", "--debug", "-a", "greedy")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "solve complete")
}

func TestCompare(t *testing.T) {
	out, _, err := execute(t, "compare", "--maze", "Maze 3", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "maze: Maze 3")
	assert.Contains(t, out, "components: 1  connected: yes")
	for _, algo := range pathfind.Algorithms() {
		assert.Contains(t, out, algo.String())
	}
}

func TestServeRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a := &app{cfg: config.Default(), logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	h := a.router(":0").Handler()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/algorithms", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Theta*"`)
}

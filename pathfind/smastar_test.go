package pathfind_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazesolver/gridgraph"
	"github.com/katalvlaran/mazesolver/pathfind"
)

// TestSMAStar_TightMemory keeps only a handful of open nodes. Any path it
// returns must still be valid, and it must terminate.
func TestSMAStar_TightMemory(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))
	grids := make([]*gridgraph.Grid, 0, 104)
	for _, name := range gridgraph.MazeNames() {
		g, _ := gridgraph.Maze(name)
		grids = append(grids, g)
	}
	for i := 0; i < 100; i++ {
		grids = append(grids, randomGrid(t, rnd))
	}

	for _, g := range grids {
		reachable := shortestSteps(g) >= 0
		for _, limit := range []int{1, 2, 3, 5, 8} {
			res, err := pathfind.SMAStar(g, pathfind.WithMemoryLimit(limit))
			require.NoError(t, err)
			if res.Found {
				requireValidPath(t, g, res)
			} else {
				assert.Nil(t, res.Path)
			}
			if !reachable {
				assert.False(t, res.Found)
			}
		}
	}
}

// TestSMAStar_AmpleMemory behaves like A* when nothing is evicted.
func TestSMAStar_AmpleMemory(t *testing.T) {
	for _, name := range gridgraph.MazeNames() {
		g, _ := gridgraph.Maze(name)
		sma, err := pathfind.SMAStar(g)
		require.NoError(t, err)
		astar, err := pathfind.AStar(g)
		require.NoError(t, err)
		assert.Equal(t, astar.Len(), sma.Len(), name)
	}
}

func TestSMAStar_BadLimit(t *testing.T) {
	g, _ := gridgraph.Maze("Maze 1")
	_, err := pathfind.SMAStar(g, pathfind.WithMemoryLimit(-5))
	require.ErrorIs(t, err, pathfind.ErrOptionViolation)
}

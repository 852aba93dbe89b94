package pathfind_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazesolver/gridgraph"
	"github.com/katalvlaran/mazesolver/pathfind"
)

// TestRandomWalk_Seeded reproduces the same walk for the same seed.
func TestRandomWalk_Seeded(t *testing.T) {
	g, _ := gridgraph.Maze("Maze 2")
	a, err := pathfind.RandomWalk(g, pathfind.WithSeed(7))
	require.NoError(t, err)
	b, err := pathfind.RandomWalk(g, pathfind.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)

	requireValidPath(t, g, a)
	assert.Equal(t, a.Path, b.Path)
	assert.Equal(t, a.Expanded, b.Expanded)
}

// TestRandomWalk_PathIsLoopFree relies on first-visit parents.
func TestRandomWalk_PathIsLoopFree(t *testing.T) {
	g, _ := gridgraph.NewEmpty(8, 8, gridgraph.Cell{}, gridgraph.Cell{Row: 7, Col: 7})
	for seed := int64(0); seed < 20; seed++ {
		res, err := pathfind.RandomWalk(g, pathfind.WithSeed(seed))
		require.NoError(t, err)
		requireValidPath(t, g, res)

		seen := make(map[gridgraph.Cell]bool)
		for _, c := range res.Path {
			require.False(t, seen[c], "seed %d revisits %v", seed, c)
			seen[c] = true
		}
	}
}

// TestRandomWalk_Termination covers every stop condition.
func TestRandomWalk_Termination(t *testing.T) {
	t.Run("Unreachable", func(t *testing.T) {
		res, err := pathfind.RandomWalk(wallStrip(t, false), pathfind.WithSeed(3))
		require.NoError(t, err)
		assert.False(t, res.Found)
		assert.Equal(t, 3, res.Expanded, "whole start component visited")
	})
	t.Run("MaxSteps", func(t *testing.T) {
		g, _ := gridgraph.Maze("Maze 1")
		res, err := pathfind.RandomWalk(g, pathfind.WithSeed(3), pathfind.WithMaxSteps(1))
		require.NoError(t, err)
		assert.False(t, res.Found)
		assert.Equal(t, 2, res.Expanded)
	})
	t.Run("NoNeighbors", func(t *testing.T) {
		g := mustGrid(t, [][]int{{0, 1, 0}}, gridgraph.Cell{}, gridgraph.Cell{Col: 2})
		res, err := pathfind.RandomWalk(g)
		require.NoError(t, err)
		assert.False(t, res.Found)
	})
}

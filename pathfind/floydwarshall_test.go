package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazesolver/gridgraph"
	"github.com/katalvlaran/mazesolver/pathfind"
)

// TestAllPairs_CrossCheck answers many (start, end) queries from one table
// and compares each with a fresh BFS.
func TestAllPairs_CrossCheck(t *testing.T) {
	g, _ := gridgraph.Maze("Maze 4")
	var rec pathfind.Recorder
	ap, err := pathfind.NewAllPairs(g, rec.Option())
	require.NoError(t, err)
	require.Equal(t, g.OpenCount(), ap.Len())
	require.Len(t, rec.Cells(), g.OpenCount(), "every cell serves once as intermediate")

	cells := g.OpenCells()
	for i := 0; i < len(cells); i += 5 {
		for j := 0; j < len(cells); j += 7 {
			a, b := cells[i], cells[j]
			pair := g.Clone()
			require.NoError(t, pair.SetStart(a))
			require.NoError(t, pair.SetEnd(b))
			want := shortestSteps(pair)

			d, ok := ap.Distance(a, b)
			require.True(t, ok, "%v→%v", a, b)
			assert.Equal(t, want, d, "%v→%v", a, b)

			path := ap.Path(a, b)
			require.Len(t, path, d+1)
			assert.Equal(t, a, path[0])
			assert.Equal(t, b, path[len(path)-1])

			back, _ := ap.Distance(b, a)
			assert.Equal(t, d, back, "undirected distances are symmetric")
		}
	}
}

// TestAllPairs_Unreachable returns no distance across a full wall row or
// for cells that are not open.
func TestAllPairs_Unreachable(t *testing.T) {
	g := wallStrip(t, false)
	ap, err := pathfind.NewAllPairs(g)
	require.NoError(t, err)

	_, ok := ap.Distance(gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 2, Col: 0})
	assert.False(t, ok)
	assert.Nil(t, ap.Path(gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 2, Col: 0}))

	_, ok = ap.Distance(gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 1, Col: 0})
	assert.False(t, ok, "wall cell")

	d, ok := ap.Distance(gridgraph.Cell{Row: 2, Col: 0}, gridgraph.Cell{Row: 2, Col: 2})
	require.True(t, ok)
	assert.Equal(t, 2, d)
	assert.Equal(t, []gridgraph.Cell{{Row: 0, Col: 2}}, ap.Path(gridgraph.Cell{Row: 0, Col: 2}, gridgraph.Cell{Row: 0, Col: 2}))
}

func TestAllPairs_Errors(t *testing.T) {
	_, err := pathfind.NewAllPairs(nil)
	require.ErrorIs(t, err, pathfind.ErrGridNil)

	g, _ := gridgraph.Maze("Maze 1")
	_, err = pathfind.NewAllPairs(g, pathfind.WithMaxSteps(-2))
	require.ErrorIs(t, err, pathfind.ErrOptionViolation)

	big, _ := gridgraph.NewEmpty(65, 64, gridgraph.Cell{}, gridgraph.Cell{Row: 63, Col: 64})
	_, err = pathfind.NewAllPairs(big)
	require.ErrorIs(t, err, pathfind.ErrGridTooLarge)
	_, err = pathfind.FloydWarshall(big)
	require.ErrorIs(t, err, pathfind.ErrGridTooLarge)
}

package gridgraph

import (
	"fmt"
	"sort"
)

// Built-in mazes share a 9×10 layout with start at the top-left corner and
// end at the bottom-right corner.
var (
	DefaultStart = Cell{Row: 0, Col: 0}
	DefaultEnd   = Cell{Row: 8, Col: 9}
)

var builtinMazes = map[string][][]int{
	"Maze 1": {
		{0, 0, 0, 1, 0, 0, 0, 0, 0, 0},
		{0, 1, 0, 1, 0, 1, 1, 1, 1, 0},
		{0, 1, 0, 0, 0, 0, 0, 0, 1, 0},
		{0, 1, 1, 1, 1, 1, 1, 0, 1, 0},
		{0, 0, 0, 0, 0, 0, 1, 0, 1, 0},
		{0, 1, 1, 1, 1, 0, 1, 0, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	"Maze 2": {
		{0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
		{1, 1, 1, 1, 1, 0, 1, 0, 1, 0},
		{0, 0, 0, 0, 0, 0, 1, 0, 1, 0},
		{0, 1, 1, 1, 1, 1, 1, 0, 1, 0},
		{0, 1, 0, 0, 0, 0, 0, 0, 1, 0},
		{0, 1, 1, 1, 1, 1, 1, 0, 1, 0},
		{0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
		{1, 1, 1, 1, 1, 0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	"Maze 3": {
		{0, 1, 0, 0, 0, 0, 0, 0, 1, 0},
		{0, 1, 0, 1, 1, 1, 1, 0, 1, 0},
		{0, 1, 0, 1, 0, 0, 0, 0, 1, 0},
		{0, 0, 0, 1, 0, 1, 1, 1, 1, 0},
		{0, 1, 1, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 0},
		{0, 1, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 0, 1, 0},
		{0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
	},
	"Maze 4": {
		{0, 0, 0, 0, 1, 0, 0, 0, 0, 0},
		{0, 1, 1, 0, 1, 0, 1, 1, 1, 0},
		{0, 0, 0, 0, 1, 0, 0, 0, 1, 0},
		{0, 1, 1, 1, 1, 0, 1, 0, 1, 0},
		{0, 0, 0, 0, 0, 0, 1, 0, 1, 0},
		{0, 1, 1, 1, 1, 1, 1, 0, 1, 0},
		{0, 1, 0, 0, 0, 0, 0, 0, 1, 0},
		{0, 1, 0, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
}

// MazeNames lists the built-in maze names in menu order.
func MazeNames() []string {
	names := make([]string, 0, len(builtinMazes))
	for name := range builtinMazes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Maze returns a fresh copy of the named built-in maze.
func Maze(name string) (*Grid, error) {
	values, ok := builtinMazes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMaze, name)
	}
	return NewGrid(values, DefaultStart, DefaultEnd)
}

// Mazes returns fresh copies of every built-in maze keyed by name.
func Mazes() map[string]*Grid {
	out := make(map[string]*Grid, len(builtinMazes))
	for _, name := range MazeNames() {
		g, _ := Maze(name) // fixtures are rectangular
		out[name] = g
	}
	return out
}

package turtle

import (
	"sort"

	"github.com/gosketch/sketch"
)

// shapes holds the builtin cursor polygons. Vertices are in shape
// space: y grows upward and the nose points along +y, so a cursor is
// rotated by heading-90 degrees when drawn.
var shapes = map[string][]sketch.Point{
	"arrow": {{X: -10, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}},
	"turtle": {
		{X: 0, Y: 16}, {X: -2, Y: 14}, {X: -1, Y: 10}, {X: -4, Y: 7},
		{X: -7, Y: 9}, {X: -9, Y: 8}, {X: -6, Y: 5}, {X: -7, Y: 1},
		{X: -5, Y: -3}, {X: -8, Y: -6}, {X: -6, Y: -8}, {X: -4, Y: -5},
		{X: 0, Y: -7}, {X: 4, Y: -5}, {X: 6, Y: -8}, {X: 8, Y: -6},
		{X: 5, Y: -3}, {X: 7, Y: 1}, {X: 6, Y: 5}, {X: 9, Y: 8},
		{X: 7, Y: 9}, {X: 4, Y: 7}, {X: 1, Y: 10}, {X: 2, Y: 14},
	},
	"circle": {
		{X: 10, Y: 0}, {X: 9.51, Y: 3.09}, {X: 8.09, Y: 5.88},
		{X: 5.88, Y: 8.09}, {X: 3.09, Y: 9.51}, {X: 0, Y: 10},
		{X: -3.09, Y: 9.51}, {X: -5.88, Y: 8.09}, {X: -8.09, Y: 5.88},
		{X: -9.51, Y: 3.09}, {X: -10, Y: 0}, {X: -9.51, Y: -3.09},
		{X: -8.09, Y: -5.88}, {X: -5.88, Y: -8.09}, {X: -3.09, Y: -9.51},
		{X: 0, Y: -10}, {X: 3.09, Y: -9.51}, {X: 5.88, Y: -8.09},
		{X: 8.09, Y: -5.88}, {X: 9.51, Y: -3.09},
	},
	"square": {
		{X: 10, Y: -10}, {X: 10, Y: 10}, {X: -10, Y: 10}, {X: -10, Y: -10},
	},
	"triangle": {
		{X: 10, Y: -5.77}, {X: 0, Y: 11.55}, {X: -10, Y: -5.77},
	},
	"classic": {
		{X: 0, Y: 0}, {X: -5, Y: -9}, {X: 0, Y: -7}, {X: 5, Y: -9},
	},
}

// Shapes returns the names of the builtin cursor shapes, sorted.
func Shapes() []string {
	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

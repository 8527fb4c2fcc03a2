package ctri

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortAndRemapOrdersLexicographically(t *testing.T) {
	paths := [][]Coord{{10, 10, 0, 5, 5, 0}}
	verts, descs, _ := ingest(paths)
	sortAndRemap(verts, descs)

	for i := 1; i < verts.len(); i++ {
		prev := verts.position(int32(i - 1))
		cur := verts.position(int32(i))
		assert.True(t, prev.Less(cur) || prev == cur)
	}
}

func TestSortAndRemapPreservesRingTopology(t *testing.T) {
	paths := [][]Coord{{0, 0, 100, 0, 100, 100, 0, 100}}
	verts, descs, _ := ingest(paths)
	sortAndRemap(verts, descs)

	assert.NoError(t, verts.assertRingValid())
	// Walking forward from any vertex four times returns to it.
	start := int32(0)
	cur := start
	for i := 0; i < 4; i++ {
		cur = verts.forward(cur)
	}
	assert.Equal(t, start, cur)
}

func TestSortAndRemapKeepsCoincidentVerticesContiguous(t *testing.T) {
	// Two paths sharing the point (0,0).
	paths := [][]Coord{
		{0, 0, 10, 0, 10, 10, 0, 10},
		{0, 0, -10, 0, -10, -10, 0, -10},
	}
	verts, descs, _ := ingest(paths)
	sortAndRemap(verts, descs)

	var positions []Point
	for i := 0; i < verts.len(); i++ {
		positions = append(positions, verts.position(int32(i)))
	}
	// Find all indices equal to (0,0); they must be contiguous.
	first, last := -1, -1
	for i, p := range positions {
		if p == (Point{0, 0}) {
			if first == -1 {
				first = i
			}
			last = i
		}
	}
	require := assert.New(t)
	require.NotEqual(-1, first)
	for i := first; i <= last; i++ {
		require.Equal(Point{0, 0}, positions[i])
	}
}

func TestSortAndRemapUpdatesLeftmostPointer(t *testing.T) {
	paths := [][]Coord{{10, 10, 0, 0, 5, 20}}
	verts, descs, _ := ingest(paths)
	sortAndRemap(verts, descs)

	assert.Equal(t, Point{0, 0}, verts.position(descs[0].leftmost))
}

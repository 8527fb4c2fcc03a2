package ctri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestLinksRingAndComputesBBox(t *testing.T) {
	paths := [][]Coord{{0, 0, 100, 0, 100, 100, 0, 100}}
	verts, descs, bbox := ingest(paths)

	require.Equal(t, 4, verts.len())
	require.Len(t, descs, 1)
	assert.Equal(t, Point{0, 0}, bbox.Min)
	assert.Equal(t, Point{100, 100}, bbox.Max)
	assert.True(t, bbox.Valid)

	// The ring closes: walking forward 4 times from vertex 0 returns to it.
	cur := int32(0)
	for i := 0; i < 4; i++ {
		cur = verts.forward(cur)
	}
	assert.Equal(t, int32(0), cur)
	assert.NoError(t, verts.assertRingValid())
}

func TestIngestTracksLeftmostPerPath(t *testing.T) {
	paths := [][]Coord{{10, 10, -5, 3, 8, 0}}
	verts, descs, _ := ingest(paths)
	assert.Equal(t, Point{-5, 3}, verts.position(descs[0].leftmost))
}

func TestIngestRejectsOddCoordinateCount(t *testing.T) {
	defer func() {
		r := recover()
		assert.NotNil(t, r, "odd coordinate count should panic via fatalf")
	}()
	ingest([][]Coord{{0, 0, 1}})
}

func TestClassifyReflexVerticesMarksConcaveApex(t *testing.T) {
	// The L shape's single reflex vertex is (100,100), the inner corner.
	paths := [][]Coord{{0, 0, 200, 0, 200, 100, 100, 100, 100, 200, 0, 200}}
	verts, descs, bbox := ingest(paths)
	reflex := newPointIndex(bbox, verts.len())
	classifyReflexVertices(verts, descs, reflex)

	foundReflexState := false
	for i := 0; i < verts.len(); i++ {
		if verts.position(int32(i)) == (Point{100, 100}) {
			if verts.state(int32(i)) == stateReflex {
				foundReflexState = true
			}
		}
	}
	assert.True(t, foundReflexState, "the inner corner must be classified reflex")

	foundInIndex := false
	reflex.forEachInRange(bbox, func(p Point) {
		if p == (Point{100, 100}) {
			foundInIndex = true
		}
	})
	assert.True(t, foundInIndex)
}

func TestClassifyReflexVerticesLeavesConvexSquareUnmarked(t *testing.T) {
	paths := [][]Coord{{0, 0, 100, 0, 100, 100, 0, 100}}
	verts, descs, bbox := ingest(paths)
	reflex := newPointIndex(bbox, verts.len())
	classifyReflexVertices(verts, descs, reflex)

	for i := 0; i < verts.len(); i++ {
		assert.Equal(t, stateDirty, verts.state(int32(i)))
	}
}

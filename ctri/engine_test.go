package ctri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signedArea2 returns twice the signed area of a triangle, positive for
// counter-clockwise winding, matching the determinant used throughout
// the predicate path.
func signedArea2(t Triangle) int64 {
	return determinant(t.A, t.B, t.C)
}

func totalArea(triangles []Triangle) int64 {
	var sum int64
	for _, t := range triangles {
		a := signedArea2(t)
		if a < 0 {
			a = -a
		}
		sum += a
	}
	return sum / 2
}

func triangleContains(t Triangle, p Point) bool {
	return pointInTriangle(p, t.A, t.B, t.C)
}

func TestTriangulateSquare(t *testing.T) {
	paths := [][]Coord{{0, 0, 100, 0, 100, 100, 0, 100}}
	triangles, err := Triangulate(paths...)
	require.NoError(t, err)
	assert.Len(t, triangles, 2)
	assert.Equal(t, int64(10000), totalArea(triangles))
	for _, tr := range triangles {
		assert.NotZero(t, signedArea2(tr), "no degenerate triangle")
	}
}

func TestTriangulateConcaveL(t *testing.T) {
	paths := [][]Coord{{0, 0, 200, 0, 200, 100, 100, 100, 100, 200, 0, 200}}
	triangles, err := Triangulate(paths...)
	require.NoError(t, err)
	assert.Len(t, triangles, 4)
	assert.Equal(t, int64(30000), totalArea(triangles))
	for _, tr := range triangles {
		assert.False(t, triangleContains(tr, Point{150, 150}), "notch must stay uncovered")
	}
}

func TestTriangulateSquareWithHole(t *testing.T) {
	paths := [][]Coord{
		{0, 0, 300, 0, 300, 300, 0, 300},
		{100, 200, 200, 200, 200, 100, 100, 100},
	}
	triangles, err := Triangulate(paths...)
	require.NoError(t, err)
	assert.Equal(t, int64(80000), totalArea(triangles))
	for _, tr := range triangles {
		assert.False(t, triangleContains(tr, Point{150, 150}), "hole must stay uncovered")
	}
}

func TestTriangulateCoincidentVertexBowtie(t *testing.T) {
	paths := [][]Coord{{0, 0, 100, 100, 0, 100, 100, 0, 0, 0}}
	triangles, err := Triangulate(paths...)
	require.NoError(t, err)
	assert.Len(t, triangles, 2)
	for _, tr := range triangles {
		assert.NotZero(t, signedArea2(tr))
	}
}

func TestTriangulateDegenerateEdge(t *testing.T) {
	paths := [][]Coord{{0, 0, 50, 0, 50, 0, 100, 0, 100, 100, 0, 100}}
	triangles, err := Triangulate(paths...)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), totalArea(triangles))
	for _, tr := range triangles {
		assert.NotZero(t, signedArea2(tr))
	}
}

func TestTriangulateTwoIslandsBridged(t *testing.T) {
	paths := [][]Coord{
		{0, 0, 100, 0, 100, 100, 0, 100},
		{200, 0, 300, 0, 300, 100, 200, 100},
	}
	triangles, err := Triangulate(paths...)
	require.NoError(t, err)
	assert.Equal(t, int64(20000), totalArea(triangles))
}

func TestTriangulateIsDeterministic(t *testing.T) {
	paths := [][]Coord{{0, 0, 200, 0, 200, 100, 100, 100, 100, 200, 0, 200}}
	first, err := Triangulate(paths...)
	require.NoError(t, err)
	second, err := Triangulate(paths...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTriangulateRejectsOddCoordinateCount(t *testing.T) {
	paths := [][]Coord{{0, 0, 100}}
	_, err := Triangulate(paths...)
	assert.Error(t, err)
}

func TestAppendTriangleCoordsFlattensSixPerTriangle(t *testing.T) {
	paths := [][]Coord{{0, 0, 100, 0, 100, 100, 0, 100}}
	coords, err := AppendTriangleCoords(nil, paths...)
	require.NoError(t, err)
	assert.Len(t, coords, 12)
}

func TestTriangulateWithDebugHaltsAfterNClips(t *testing.T) {
	paths := [][]Coord{{0, 0, 200, 0, 200, 100, 100, 100, 100, 200, 0, 200}}
	triangles, debug, err := TriangulateWithDebug(1, paths...)
	require.NoError(t, err)
	assert.Len(t, triangles, 1, "exactly one ear was clipped before halting")
	require.NotNil(t, debug)
	assert.NotEmpty(t, debug.Edges)
}

func TestTriangulateWithDebugDisabledRunsFull(t *testing.T) {
	paths := [][]Coord{{0, 0, 100, 0, 100, 100, 0, 100}}
	triangles, debug, err := TriangulateWithDebug(0, paths...)
	require.NoError(t, err)
	assert.Nil(t, debug)
	assert.Len(t, triangles, 2)
}

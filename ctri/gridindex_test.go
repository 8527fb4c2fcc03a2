package ctri

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGridGeometryProducesPositiveCellSize(t *testing.T) {
	bbox := BBox{Min: Point{0, 0}, Max: Point{100, 100}, Valid: true}
	g := newGridGeometry(bbox, 50)
	assert.GreaterOrEqual(t, g.cellSize, int32(1))
	assert.Equal(t, bbox.Min, g.origin)
}

func TestNewGridGeometryDegenerateBox(t *testing.T) {
	bbox := BBox{Min: Point{5, 5}, Max: Point{5, 5}, Valid: true}
	g := newGridGeometry(bbox, 0)
	assert.GreaterOrEqual(t, g.cellSize, int32(1))
}

func TestIsqrt(t *testing.T) {
	assert.Equal(t, int64(0), isqrt(0))
	assert.Equal(t, int64(1), isqrt(1))
	assert.Equal(t, int64(2), isqrt(4))
	assert.Equal(t, int64(3), isqrt(9))
	assert.Equal(t, int64(4), isqrt(16))
	assert.Equal(t, int64(10), isqrt(100))
	// Non-perfect squares floor down.
	assert.Equal(t, int64(3), isqrt(15))
	assert.Equal(t, int64(9), isqrt(99))
}

func TestPointIndexAddAndQuery(t *testing.T) {
	bbox := BBox{Min: Point{0, 0}, Max: Point{100, 100}, Valid: true}
	idx := newPointIndex(bbox, 10)
	idx.add(Point{5, 5})
	idx.add(Point{50, 50})
	idx.add(Point{95, 95})

	var hits []Point
	idx.forEachInRange(BBox{Min: Point{0, 0}, Max: Point{10, 10}, Valid: true}, func(p Point) {
		hits = append(hits, p)
	})
	assert.Contains(t, hits, Point{5, 5})
	assert.NotContains(t, hits, Point{95, 95})
}

func TestPointIndexEmptyQueryRange(t *testing.T) {
	bbox := BBox{Min: Point{0, 0}, Max: Point{100, 100}, Valid: true}
	idx := newPointIndex(bbox, 10)
	idx.add(Point{50, 50})

	called := false
	idx.forEachInRange(BBox{Min: Point{0, 0}, Max: Point{1, 1}, Valid: true}, func(p Point) {
		called = true
	})
	assert.False(t, called)
}

func TestBoxIndexAddUnderAllOverlappingCells(t *testing.T) {
	bbox := BBox{Min: Point{0, 0}, Max: Point{100, 100}, Valid: true}
	idx := newBoxIndex(bbox, 4)
	wide := BBox{Min: Point{0, 0}, Max: Point{100, 1}, Valid: true}
	idx.add(wide, true)

	hitsLeft, hitsRight := 0, 0
	idx.forEachInRange(BBox{Min: Point{0, 0}, Max: Point{1, 1}, Valid: true}, func(e boxEdge) {
		hitsLeft++
	})
	idx.forEachInRange(BBox{Min: Point{99, 0}, Max: Point{100, 1}, Valid: true}, func(e boxEdge) {
		hitsRight++
	})
	assert.Greater(t, hitsLeft, 0)
	assert.Greater(t, hitsRight, 0)
}

func TestBoxIndexPayloadRoundTrips(t *testing.T) {
	bbox := BBox{Min: Point{0, 0}, Max: Point{10, 10}, Valid: true}
	idx := newBoxIndex(bbox, 2)
	idx.add(BBox{Min: Point{0, 0}, Max: Point{2, 2}, Valid: true}, true)
	idx.add(BBox{Min: Point{0, 0}, Max: Point{2, 2}, Valid: true}, false)

	var slopes []bool
	idx.forEachInRange(BBox{Min: Point{0, 0}, Max: Point{2, 2}, Valid: true}, func(e boxEdge) {
		slopes = append(slopes, e.slopeUp)
	})
	assert.Contains(t, slopes, true)
	assert.Contains(t, slopes, false)
}

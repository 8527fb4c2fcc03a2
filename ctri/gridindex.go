package ctri

// A uniform spatial grid over a fixed bounding box. Cell size is chosen
// once, from the box and an estimated element count, targeting a small
// constant occupancy per cell; the grid is never resized after
// construction, so every insertion happens within the extent it was
// built for.
//
// Two variants share the bucketing scheme: pointIndex stores bare
// locations (used for reflex vertices, frozen after ingest and never
// pruned), and boxIndex stores axis-aligned bounding boxes plus a
// one-bit payload (used for the active-edge index during path joining).

type cellCoord struct{ cx, cy int32 }

// gridGeometry computes the shared cell size and origin for a grid built
// over bbox, sized for an estimated element count.
type gridGeometry struct {
	origin   Point
	cellSize int32
}

func newGridGeometry(bbox BBox, estimatedCount int) gridGeometry {
	if estimatedCount < 1 {
		estimatedCount = 1
	}
	width := int64(bbox.Max.X) - int64(bbox.Min.X) + 1
	height := int64(bbox.Max.Y) - int64(bbox.Min.Y) + 1
	area := width * height

	// Target a small constant number of elements per cell.
	const targetPerCell = 2
	cellArea := area / int64(estimatedCount) * targetPerCell
	if cellArea < 1 {
		cellArea = 1
	}
	cellSize := isqrt(cellArea)
	if cellSize < 1 {
		cellSize = 1
	}
	return gridGeometry{origin: bbox.Min, cellSize: int32(cellSize)}
}

func isqrt(n int64) int64 {
	if n <= 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

func (g gridGeometry) cellOf(p Point) cellCoord {
	cx := (int64(p.X) - int64(g.origin.X)) / int64(g.cellSize)
	cy := (int64(p.Y) - int64(g.origin.Y)) / int64(g.cellSize)
	return cellCoord{int32(cx), int32(cy)}
}

func (g gridGeometry) cellRange(b BBox) (min, max cellCoord) {
	return g.cellOf(b.Min), g.cellOf(b.Max)
}

// pointIndex maps point locations to a presence payload. Presence is all
// that matters; callers re-test exact containment against anything this
// index yields.
type pointIndex struct {
	geom    gridGeometry
	buckets map[cellCoord][]Point
}

func newPointIndex(bbox BBox, estimatedCount int) *pointIndex {
	return &pointIndex{
		geom:    newGridGeometry(bbox, estimatedCount),
		buckets: make(map[cellCoord][]Point),
	}
}

func (idx *pointIndex) add(p Point) {
	c := idx.geom.cellOf(p)
	idx.buckets[c] = append(idx.buckets[c], p)
}

// forEachInRange calls fn for every stored point whose cell lies within
// the cell range touched by query. Points are yielded even if they don't
// exactly intersect query; the caller re-tests.
func (idx *pointIndex) forEachInRange(query BBox, fn func(Point)) {
	minCell, maxCell := idx.geom.cellRange(query)
	for cy := minCell.cy; cy <= maxCell.cy; cy++ {
		for cx := minCell.cx; cx <= maxCell.cx; cx++ {
			for _, p := range idx.buckets[cellCoord{cx, cy}] {
				fn(p)
			}
		}
	}
}

// boxEdge is a box-index entry: the bounding box of an edge, plus the
// slope-sign payload needed to disambiguate which of the box's two
// diagonals is the real segment.
type boxEdge struct {
	box     BBox
	slopeUp bool
}

// boxIndex maps edge bounding boxes to a slope-sign payload.
type boxIndex struct {
	geom    gridGeometry
	buckets map[cellCoord][]boxEdge
}

func newBoxIndex(bbox BBox, estimatedCount int) *boxIndex {
	return &boxIndex{
		geom:    newGridGeometry(bbox, estimatedCount),
		buckets: make(map[cellCoord][]boxEdge),
	}
}

func (idx *boxIndex) add(box BBox, slopeUp bool) {
	e := boxEdge{box: box, slopeUp: slopeUp}
	minCell, maxCell := idx.geom.cellRange(box)
	for cy := minCell.cy; cy <= maxCell.cy; cy++ {
		for cx := minCell.cx; cx <= maxCell.cx; cx++ {
			c := cellCoord{cx, cy}
			idx.buckets[c] = append(idx.buckets[c], e)
		}
	}
}

// forEachInRange calls fn for every stored edge that shares at least one
// cell with query. An edge inserted under several cells may be yielded
// once per overlapping cell; callers of this index in this engine
// (edge-crossing rejection) tolerate duplicates since they only care
// whether any hit occurred.
func (idx *boxIndex) forEachInRange(query BBox, fn func(boxEdge)) {
	minCell, maxCell := idx.geom.cellRange(query)
	for cy := minCell.cy; cy <= maxCell.cy; cy++ {
		for cx := minCell.cx; cx <= maxCell.cx; cx++ {
			for _, e := range idx.buckets[cellCoord{cx, cy}] {
				fn(e)
			}
		}
	}
}

// Package ctri implements a constrained 2D polygon triangulator: ear
// clipping over exact 16-bit integer coordinates, with robust handling of
// coincident and collinear vertices and a bridge-based path-joining step
// for polygons with holes or disjoint islands.
package ctri

// Coord is a single axis value. All triangulation predicates are exact
// over the full signed-16-bit range.
type Coord = int16

// Point is a position on the integer grid.
type Point struct {
	X, Y Coord
}

// Less implements the lexicographic (x, then y) vertex ordering used by
// sort & remap and by path-leftmost selection.
func (p Point) Less(o Point) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}

// BBox is an axis-aligned bounding box over integer points. A zero BBox
// (Valid == false) has not yet enclosed any point.
type BBox struct {
	Min, Max Point
	Valid    bool
}

func (b *BBox) ExpandToEnclose(p Point) {
	if !b.Valid {
		b.Min, b.Max = p, p
		b.Valid = true
		return
	}
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
}

func (b BBox) Union(o BBox) BBox {
	if !b.Valid {
		return o
	}
	if !o.Valid {
		return b
	}
	b.ExpandToEnclose(o.Min)
	b.ExpandToEnclose(o.Max)
	return b
}

func (b BBox) ContainsPoint(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

func (b BBox) Intersects(o BBox) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y
}

func boxOf(a, b Point) BBox {
	box := BBox{Min: a, Max: a, Valid: true}
	box.ExpandToEnclose(b)
	return box
}

// Triangle is three emitted vertex positions, in winding order.
type Triangle struct {
	A, B, C Point
}

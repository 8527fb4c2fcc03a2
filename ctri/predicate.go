package ctri

// Exact geometric predicates. Every orientation test goes through
// determinant, which fits the worst-case 16-bit product in a signed
// 64-bit accumulator; floating point must never appear on this path.

// determinant returns the signed area of the parallelogram (b-a) x (c-a).
func determinant(a, b, c Point) int64 {
	return (int64(b.X)-int64(a.X))*(int64(c.Y)-int64(a.Y)) -
		(int64(b.Y)-int64(a.Y))*(int64(c.X)-int64(a.X))
}

// turn returns -1, 0 or +1 for a right turn, collinear run, or left turn
// through a-b-c.
func turn(a, b, c Point) int {
	d := determinant(a, b, c)
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return 0
	}
}

// pointInTriangle reports whether p lies in the closed triangle
// (v0, v1, v2); the boundary counts as inside.
func pointInTriangle(p, v0, v1, v2 Point) bool {
	d0 := determinant(v0, v1, p)
	if d0 < 0 {
		return false
	}
	d1 := determinant(v1, v2, p)
	if d1 < 0 {
		return false
	}
	d2 := determinant(v2, v0, p)
	return d2 >= 0
}

// inCone reports whether p lies in the directed wedge at c1 between the
// outgoing rays c1->c0 and c1->c2.
//
//	(out)  c0
//	      /
//	  c1 <   (in)
//	      \
//	       c2
//
// The wedge is acute when turn(c0, c1, c2) > 0, in which case p must be
// left of both c0->c1 and c1->c2 (intersection of half-planes);
// otherwise the wedge is reflex and p need only be left of one
// (union of half-planes). Boundary counts as inside.
func inCone(p, c0, c1, c2 Point) bool {
	acute := turn(c0, c1, c2) > 0
	leftOf01 := turn(c0, c1, p) >= 0
	leftOf12 := turn(c1, c2, p) >= 0
	if acute {
		return leftOf01 && leftOf12
	}
	return leftOf01 || leftOf12
}

package ctri

import "sort"

// edgesCrossLine reports how each of two segments relates to the other's
// line: -1 means it crosses the line, 0 means an endpoint touches the
// line, +1 means it lies strictly to one side. A vertex lying exactly on
// the other segment's line counts as touching/crossing rather than
// clear, since untangling which side it's "really" on would require
// non-local analysis along the path.
func edgesCrossLine(e0v0, e0v1, e1v0, e1v1 Point) (e0VsE1, e1VsE0 int) {
	if e0v0 == e0v1 && e1v0 == e1v1 && e0v0 == e1v0 {
		// Both segments are the same zero-length point.
		return 0, 0
	}

	det10 := determinant(e0v0, e0v1, e1v0)
	det11 := determinant(e0v0, e0v1, e1v1)
	e1VsE0 = combineSigns(det10, det11)

	det00 := determinant(e1v0, e1v1, e0v0)
	det01 := determinant(e1v0, e1v1, e0v1)
	e0VsE1 = combineSigns(det00, det01)

	return e0VsE1, e1VsE0
}

// combineSigns folds the sign of detB (whether the second endpoint is
// left/right/on the line) by the sign of detA (the first endpoint), the
// same way edges_intersect_sub's original determinant bookkeeping does:
// a positive result means both endpoints agree on being strictly to one
// side (no crossing); a negative result means they disagree (crossing);
// zero means at least one endpoint sits on the line.
func combineSigns(detA, detB int64) int {
	sign := 0
	if detB < 0 {
		sign = -1
	} else if detB > 0 {
		sign = 1
	}
	if detA < 0 {
		sign = -sign
	} else if detA == 0 {
		sign = 0
	}
	switch {
	case sign > 0:
		return 1
	case sign < 0:
		return -1
	default:
		return 0
	}
}

// anyEdgeIntersects reports whether any indexed edge crosses the
// interior of the candidate edge (v0, v1). A candidate is considered to
// cross an indexed edge ee iff the candidate strictly crosses the line
// of ee, and ee touches (or crosses) the line of the candidate — this
// asymmetric rule is what lets a shared-endpoint bridge pass while still
// rejecting genuine intersections.
func anyEdgeIntersects(verts *ringStore, v0, v1 int32, edges *boxIndex) bool {
	ev0, ev1 := verts.position(v0), verts.position(v1)
	query := boxOf(ev0, ev1)

	hit := false
	edges.forEachInRange(query, func(e boxEdge) {
		if hit {
			return
		}
		eev0, eev1 := e.box.Min, e.box.Max
		if !e.slopeUp {
			eev0.Y, eev1.Y = eev1.Y, eev0.Y
		}

		eVsEE, eeVsE := edgesCrossLine(ev0, ev1, eev0, eev1)
		eCrossesLineOfEE := eVsEE < 0
		eeTouchesLineOfE := eeVsE <= 0
		if eCrossesLineOfEE && eeTouchesLineOfE {
			hit = true
		}
	})
	return hit
}

// findValidBridgeVert scans vertex indices v1-1, v1-2, ... 0, returning
// the first one such that the segment (v1, candidate) crosses no edge
// already in the index. On malformed input where no such vertex exists,
// it falls back to v1-1 rather than aborting.
func findValidBridgeVert(verts *ringStore, v1 int32, edges *boxIndex) int32 {
	for i := v1 - 1; i >= 0; i-- {
		if !anyEdgeIntersects(verts, v1, i, edges) {
			return i
		}
	}
	return v1 - 1
}

func addEdge(edges *boxIndex, v0, v1 Point) {
	slopeUp := (int64(v1.X)-int64(v0.X))*(int64(v1.Y)-int64(v0.Y)) > 0
	edges.add(boxOf(v0, v1), slopeUp)
}

func addAllEdgesIntoIndex(verts *ringStore, edges *boxIndex) {
	n := int32(verts.len())
	for i := int32(0); i < n; i++ {
		addEdge(edges, verts.position(i), verts.position(verts.forward(i)))
	}
}

// joinPaths fuses multiple input paths into a single ring via zero-area
// bridges. If there is only one path, it is a no-op. Paths are visited
// left to right by leftmost vertex; each non-first path is bridged to a
// vertex of the already-joined master ring, which the sort order guarantees
// lies weakly left of it.
func joinPaths(verts *ringStore, descs []pathDesc, bbox BBox) {
	if len(descs) <= 1 {
		return
	}

	order := make([]int, len(descs))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return descs[order[i]].leftmost < descs[order[j]].leftmost
	})

	edges := newBoxIndex(bbox, verts.len())
	addAllEdgesIntoIndex(verts, edges)

	for oi := 1; oi < len(order); oi++ {
		pi := descs[order[oi]]
		v1 := pi.leftmost
		if v1 <= 0 {
			// vert 0 is already joined and v1 is coincident with it.
			continue
		}

		v2 := findValidBridgeVert(verts, v1, edges)

		n1 := int32(verts.len())
		n2 := n1 + 1
		verts.add(verts.position(v1), 0, 0)
		verts.add(verts.position(v2), 0, 0)

		oldV2Forward := verts.forward(v2)
		oldV1Backward := verts.backward(v1)

		verts.setBackward(v1, v2)
		verts.setForward(v2, v1)
		verts.setForward(n1, n2)
		verts.setBackward(n2, n1)
		verts.setForward(oldV1Backward, n1)
		verts.setBackward(n1, oldV1Backward)
		verts.setBackward(oldV2Forward, n2)
		verts.setForward(n2, oldV2Forward)

		addEdge(edges, verts.position(v1), verts.position(v2))
	}
}

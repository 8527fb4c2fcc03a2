package ctri

// earRejection classifies why findEar failed to produce an apex, purely
// so the optional debug interface can draw one glyph shape per
// rejection class (§6). It plays no role in the algorithm itself.
type earRejection int

const (
	rejNone earRejection = iota
	rejNoCandidate
	rejReflexV1
	rejEdgeBlocked
	rejValence
	rejContainsReflex
)

// findEar looks for the apex of the sharpest valid left-turn ear at edge
// v0->v1, per §4.7.
func findEar(verts *ringStore, reflex *pointIndex, v0, v1 int32) (v2 int32, reason earRejection) {
	if verts.position(v0) == verts.position(v1) {
		// Zero-length edge: treat it like an ear so it gets clipped away.
		return verts.forward(v1), rejNone
	}

	if verts.state(v1) == stateReflex {
		return -1, rejReflexV1
	}

	// Coincident range around v1: sorting guarantees it's contiguous.
	begin := v1
	for begin > 0 && verts.position(begin-1) == verts.position(v1) {
		begin--
	}
	end := v1 + 1
	n := int32(verts.len())
	for end < n && verts.position(end) == verts.position(v1) {
		end++
	}

	v0pos, v1pos := verts.position(v0), verts.position(v1)

	// Pick the innermost candidate apex among outgoing edges from the
	// coincident cluster.
	apex := int32(-1)
	for i := begin; i < end; i++ {
		cand := verts.forward(i)
		if verts.state(cand) == stateDeleted {
			continue
		}
		candPos := verts.position(cand)
		if turn(v0pos, v1pos, candPos) <= 0 {
			continue
		}
		if apex == -1 || inCone(candPos, v0pos, v1pos, verts.position(apex)) {
			apex = cand
		}
	}
	if apex == -1 {
		return -1, rejNoCandidate
	}
	apexPos := verts.position(apex)

	// Reject if any incoming edge's other endpoint sits in the cone,
	// which would mean the ear's interior is blocked by that edge.
	for i := begin; i < end; i++ {
		in := verts.backward(i)
		if verts.state(in) == stateDeleted {
			continue
		}
		u := verts.position(in)
		if u != v0pos && u != apexPos &&
			turn(v0pos, v1pos, u) > 0 &&
			inCone(u, v0pos, v1pos, apexPos) {
			return apex, rejEdgeBlocked
		}
	}

	// Valence rule: guard against clipping an ear that is a zero-area fin.
	valence0, valence1 := 0, 0
	for i := begin; i < end; i++ {
		pIn := verts.position(verts.backward(i))
		switch {
		case pIn == apexPos:
			valence1--
		case pIn == v0pos:
			valence0++
		}

		pOut := verts.position(verts.forward(i))
		switch {
		case pOut == apexPos:
			valence1++
		case pOut == v0pos:
			valence0--
		}
	}
	if valence0 < 1 && valence1 < 1 {
		return apex, rejValence
	}

	if anyReflexVertInTriangle(verts, reflex, v0pos, v1pos, apexPos) {
		return apex, rejContainsReflex
	}

	return apex, rejNone
}

// anyReflexVertInTriangle reports whether any indexed reflex point
// (other than the triangle's own corners) lies in the closed triangle
// (v0, v1, v2). Reflex points are never removed from the index even
// after their originating vertex is deleted, so this test is what keeps
// stale entries from over-rejecting valid ears: a point coincident with
// a corner is explicitly excluded.
func anyReflexVertInTriangle(verts *ringStore, reflex *pointIndex, v0, v1, v2 Point) bool {
	query := boxOf(v0, v1)
	query.ExpandToEnclose(v2)

	found := false
	reflex.forEachInRange(query, func(p Point) {
		if found {
			return
		}
		if p == v0 || p == v1 || p == v2 {
			return
		}
		if !query.ContainsPoint(p) {
			return
		}
		if pointInTriangle(p, v0, v1, v2) {
			found = true
		}
	})
	return found
}

// clipState drives the dirty-cursor ear-clipping scan.
type clipState struct {
	verts     *ringStore
	reflex    *pointIndex
	nextDirty int32
	results   []Triangle
	dbg       *debugState
}

// findAndClipEar advances the dirty cursor until it either clips an ear
// (returning true) or exhausts the vertex array (returning false).
func (cs *clipState) findAndClipEar() bool {
	n := int32(cs.verts.len())
	for cs.nextDirty < n {
		v1 := cs.nextDirty
		v0 := cs.verts.backward(v1)
		cs.nextDirty++

		if cs.verts.state(v1) == stateDeleted {
			continue
		}
		if v0 == v1 {
			continue
		}

		v2, reason := findEar(cs.verts, cs.reflex, v0, v1)
		if reason != rejNone {
			if cs.dbg != nil {
				cs.dbg.recordRejection(cs.verts, v0, v1, v2, reason)
			}
			continue
		}

		cs.splice(v0, v1, v2)
		return true
	}
	return false
}

// splice removes v1 from the ring, relinking v2's coincident cluster
// into place first if needed, and emits the clipped triangle.
func (cs *clipState) splice(v0, v1, v2 int32) {
	verts := cs.verts

	v2p := verts.backward(v2)
	if v2p != v1 {
		v1n := verts.forward(v1)
		verts.rewire(v2p, v1n)
		verts.rewire(v1, v2)
	}

	verts.markDeleted(v1)
	verts.rewire(v0, v2)
	debugAssertRingValid(verts)

	// Clipping v1 changes the angle at v0 and v2, so a REFLEX tag from
	// ingest no longer holds for them; findEar re-tests the turn itself.
	for _, v := range [...]int32{v0, v2} {
		if verts.state(v) == stateReflex {
			verts.setState(v, stateDirty)
		}
	}

	dirty := cs.nextDirty
	if v0 < dirty {
		dirty = v0
	}
	if v1 < dirty {
		dirty = v1
	}
	if v2 < dirty {
		dirty = v2
	}
	for dirty > 0 && verts.position(dirty-1) == verts.position(dirty) {
		dirty--
	}
	cs.nextDirty = dirty

	if v0 != v1 && v0 != v2 && v1 != v2 {
		cs.results = append(cs.results, Triangle{
			A: verts.position(v0),
			B: verts.position(v1),
			C: verts.position(v2),
		})
	}
}

// triangulatePlane clips every available ear, repeating until the dirty
// cursor exhausts the vertex array.
func triangulatePlane(cs *clipState) {
	for cs.findAndClipEar() {
		if cs.dbg != nil {
			if cs.dbg.shouldHalt() {
				cs.dbg.dumpRingState(cs.verts)
				return
			}
			cs.dbg.clearPass()
		}
	}
}

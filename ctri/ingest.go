package ctri

// pathDesc tracks, for a single input path, its original contiguous
// [begin, end) vertex range and the index of its lexicographically
// smallest vertex. It is only consulted during ingest and path joining.
type pathDesc struct {
	beginOrig, endOrig int32
	leftmost           int32
}

// ingest walks every input path, allocating ring vertices in contiguous
// ranges and linking each to its predecessor and successor (the path's
// last vertex links back to its first), tracking each path's bounding
// box contribution and leftmost vertex as it goes.
func ingest(paths [][]Coord) (*ringStore, []pathDesc, BBox) {
	total := 0
	for _, p := range paths {
		if len(p)&1 != 0 {
			fatalf("path has odd coordinate count %d", len(p))
		}
		total += len(p) / 2
	}

	verts := newRingStore(total)
	descs := make([]pathDesc, len(paths))
	var bbox BBox

	for i, p := range paths {
		d := &descs[i]
		d.beginOrig = int32(verts.len())
		d.leftmost = -1

		pathLen := len(p) / 2
		if pathLen == 0 {
			d.endOrig = d.beginOrig
			continue
		}
		previous := int32(verts.len()) + int32(pathLen) - 1
		for j := 0; j < len(p); j += 2 {
			idx := verts.add(Point{X: p[j], Y: p[j+1]}, previous, int32(verts.len())+1)
			previous = idx
			bbox.ExpandToEnclose(verts.position(idx))
			if d.leftmost == -1 || verts.position(idx).Less(verts.position(d.leftmost)) {
				d.leftmost = idx
			}
		}
		// Close the path.
		last := int32(verts.len()) - 1
		verts.setForward(last, d.beginOrig)
		d.endOrig = int32(verts.len())
	}

	return verts, descs, bbox
}

// classifyReflexVertices walks every consecutive triple in each ring and
// inserts the apex of any reflex (or straight) turn into the reflex
// point index, promoting that vertex's state to REFLEX.
func classifyReflexVertices(verts *ringStore, descs []pathDesc, reflex *pointIndex) {
	for _, d := range descs {
		pathSize := d.endOrig - d.beginOrig
		if pathSize <= 2 {
			continue
		}
		for j := d.beginOrig; j < d.endOrig; j++ {
			k := j - 1
			if k < d.beginOrig {
				k = d.endOrig - 1
			}
			l := k - 1
			if l < d.beginOrig {
				l = d.endOrig - 1
			}
			v0 := verts.position(l)
			v1 := verts.position(k)
			v2 := verts.position(j)
			if turn(v0, v1, v2) <= 0 {
				reflex.add(v1)
				verts.setState(k, stateReflex)
			}
		}
	}
}

package ctri

// Triangulate runs the full pipeline (ingest, reflex classification,
// sort & remap, path joining, ear clipping) over one or more closed
// polygonal paths and returns the covering triangle list.
//
// Each path is a simple polygon over the 16-bit integer grid; paths
// beyond the first are treated as holes or islands relative to the
// first and fused into a single ring via zero-area bridges before
// clipping. Paths that cross, or that wind the wrong way relative to
// what the caller intends, are not validated — per §7, the engine
// degrades gracefully rather than erroring on malformed input.
func Triangulate(paths ...[]Coord) (triangles []Triangle, err error) {
	defer func() {
		if r := recover(); r != nil {
			triangles = nil
			err = recoverTriangulateError(r)
		}
	}()
	return runPipeline(paths, nil), nil
}

// AppendTriangleCoords runs Triangulate and appends the result to dst as
// interleaved (x, y) coordinate triples, six Coords per triangle — the
// flat wire shape described in §6. It returns the grown slice.
func AppendTriangleCoords(dst []Coord, paths ...[]Coord) ([]Coord, error) {
	triangles, err := Triangulate(paths...)
	if err != nil {
		return dst, err
	}
	if cap(dst)-len(dst) < 6*len(triangles) {
		grown := make([]Coord, len(dst), len(dst)+6*len(triangles))
		copy(grown, dst)
		dst = grown
	}
	for _, t := range triangles {
		dst = append(dst, t.A.X, t.A.Y, t.B.X, t.B.Y, t.C.X, t.C.Y)
	}
	return dst, nil
}

// TriangulateWithDebug runs the pipeline with the optional debug
// interface enabled (§6): after haltAfterNClips successful clips, the
// engine stops early and returns the current ring state as a set of
// debug edges, plus glyph markers describing why recently considered
// ear candidates were rejected. A haltAfterNClips of 0 or less disables
// the debug interface and behaves exactly like Triangulate.
func TriangulateWithDebug(haltAfterNClips int, paths ...[]Coord) (triangles []Triangle, debug *DebugResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			triangles = nil
			debug = nil
			err = recoverTriangulateError(r)
		}
	}()
	dbg := newDebugState(haltAfterNClips)
	triangles = runPipeline(paths, dbg)
	if dbg != nil && dbg.halted {
		debug = &DebugResult{Edges: dbg.edges, Glyphs: dbg.glyphs}
	}
	return triangles, debug, nil
}

func runPipeline(paths [][]Coord, dbg *debugState) []Triangle {
	verts, descs, bbox := ingest(paths)

	reflex := newPointIndex(bbox, verts.len()/2+1)
	classifyReflexVertices(verts, descs, reflex)

	sortAndRemap(verts, descs)
	if len(descs) > 1 {
		joinPaths(verts, descs, bbox)
		sortAndRemap(verts, descs)
	}

	cs := &clipState{
		verts:   verts,
		reflex:  reflex,
		results: make([]Triangle, 0, verts.len()/3+1),
		dbg:     dbg,
	}
	triangulatePlane(cs)
	return cs.results
}

package ctri

// Segment is a debug-edge description: a line from Start to End.
type Segment struct {
	Start, End Point
}

// GlyphShape is the small geometric marker drawn at a rejected
// candidate ear's centroid, one shape per rejection class, matching the
// original implementation's debug markup.
type GlyphShape int

const (
	GlyphEdgeBlocked GlyphShape = iota
	GlyphValenceFailed
	GlyphContainsReflex
)

// Glyph is a rejection marker: a shape at a triangle centroid.
type Glyph struct {
	Shape    GlyphShape
	Centroid Point
}

// debugState implements the optional debug interface from §6: a
// halt-after-n-clips counter that, once exhausted, stops the engine and
// records the current ring state plus glyphs explaining why recently
// considered ears were rejected.
type debugState struct {
	haltAfterNClips int // <0 disables the debug interface entirely
	remaining       int

	edges    []Segment
	glyphs   []Glyph
	halted   bool
}

func newDebugState(haltAfterNClips int) *debugState {
	if haltAfterNClips < 0 {
		return nil
	}
	return &debugState{haltAfterNClips: haltAfterNClips, remaining: haltAfterNClips}
}

// recordRejection appends a glyph for one of the three classes findEar
// can reject an apex candidate for. apex may be -1 for rejections that
// occur before any apex is chosen (no glyph is drawn in that case,
// matching the original, which never draws glyphs for "couldn't even
// find a candidate" or "v1 is reflex").
func (d *debugState) recordRejection(verts *ringStore, v0, v1, apex int32, reason earRejection) {
	if apex < 0 {
		return
	}
	var shape GlyphShape
	switch reason {
	case rejEdgeBlocked:
		shape = GlyphEdgeBlocked
	case rejValence:
		shape = GlyphValenceFailed
	case rejContainsReflex:
		shape = GlyphContainsReflex
	default:
		return
	}
	centroid := triangleCentroid(verts.position(v0), verts.position(v1), verts.position(apex))
	d.glyphs = append(d.glyphs, Glyph{Shape: shape, Centroid: centroid})
}

func triangleCentroid(a, b, c Point) Point {
	return Point{
		X: (a.X + b.X + c.X) / 3,
		Y: (a.Y + b.Y + c.Y) / 3,
	}
}

// clearPass drops accumulated glyphs/edges between clip attempts, so
// only the most recent pass's markers survive into a halt dump.
func (d *debugState) clearPass() {
	d.glyphs = d.glyphs[:0]
	d.edges = d.edges[:0]
}

// shouldHalt decrements the halt counter after a successful clip and
// reports whether this is the step to stop at.
func (d *debugState) shouldHalt() bool {
	if d.haltAfterNClips <= 0 {
		return false
	}
	d.remaining--
	if d.remaining == 0 {
		d.halted = true
		return true
	}
	return false
}

// dumpRingState appends, for every non-deleted vertex, its outgoing and
// incoming ring edges to the debug edge buffer.
func (d *debugState) dumpRingState(verts *ringStore) {
	n := int32(verts.len())
	for i := int32(0); i < n; i++ {
		if verts.state(i) == stateDeleted {
			continue
		}
		v0 := verts.position(i)
		v1 := verts.position(verts.forward(i))
		vprev := verts.position(verts.backward(i))
		d.edges = append(d.edges, Segment{v0, v1}, Segment{v0, vprev})
	}
}

// DebugResult is what a halted debug run reports back to a caller using
// the debug interface, for a visualization tool to render.
type DebugResult struct {
	Edges  []Segment
	Glyphs []Glyph
}

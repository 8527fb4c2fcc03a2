package ctri

import (
	"fmt"
	"io"
	"time"
)

// ProfileReport is the timing breakdown TriangulateProfiled writes to
// its report writer, mirroring the original implementation's
// PROFILE_TRIANGULATE stderr report (join time, clip time, total time,
// and clip throughput).
type ProfileReport struct {
	VertCount int
	JoinTime  time.Duration
	ClipTime  time.Duration
	TotalTime time.Duration
}

func (r ProfileReport) writeTo(w io.Writer) {
	fmt.Fprintf(w, "join poly = %0.6f sec\n", r.JoinTime.Seconds())
	fmt.Fprintf(w, "clip poly = %0.6f sec\n", r.ClipTime.Seconds())
	fmt.Fprintf(w, "total for poly = %0.6f sec\n", r.TotalTime.Seconds())
	var clipsPerSec, totalPerSec float64
	if r.ClipTime > 0 {
		clipsPerSec = float64(r.VertCount) / r.ClipTime.Seconds()
	}
	if r.TotalTime > 0 {
		totalPerSec = float64(r.VertCount) / r.TotalTime.Seconds()
	}
	fmt.Fprintf(w, "vert count = %d, verts clipped / sec = %f, verts processed / sec = %f\n",
		r.VertCount, clipsPerSec, totalPerSec)
}

// TriangulateProfiled runs the pipeline exactly like Triangulate, but
// additionally times the ingest+join phase and the ear-clipping phase
// separately, writing a report to w when w is non-nil. This is an
// opt-in instrumentation hook; the core engine never times itself.
func TriangulateProfiled(w io.Writer, paths ...[]Coord) (triangles []Triangle, report ProfileReport, err error) {
	defer func() {
		if r := recover(); r != nil {
			triangles = nil
			err = recoverTriangulateError(r)
		}
	}()

	start := time.Now()

	verts, descs, bbox := ingest(paths)
	reflex := newPointIndex(bbox, verts.len()/2+1)
	classifyReflexVertices(verts, descs, reflex)
	sortAndRemap(verts, descs)
	if len(descs) > 1 {
		joinPaths(verts, descs, bbox)
		sortAndRemap(verts, descs)
	}

	joinDone := time.Now()

	cs := &clipState{
		verts:   verts,
		reflex:  reflex,
		results: make([]Triangle, 0, verts.len()/3+1),
	}
	triangulatePlane(cs)

	clipDone := time.Now()

	report = ProfileReport{
		VertCount: verts.len(),
		JoinTime:  joinDone.Sub(start),
		ClipTime:  clipDone.Sub(joinDone),
		TotalTime: clipDone.Sub(start),
	}
	if w != nil {
		report.writeTo(w)
	}

	return cs.results, report, nil
}

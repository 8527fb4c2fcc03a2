package ctri

import "sort"

// sortAndRemap sorts all vertices lexicographically (x, then y) and
// rewrites every stored vertex index — both neighbor fields of every
// vertex, plus each path's leftmost-vertex pointer — through the
// resulting permutation. This guarantees coincident vertices end up in
// contiguous index ranges, which both the ear finder's coincident-range
// scan and the bridge finder depend on.
//
// A duplicate-vertex removal pass was historically folded into this
// step and then disabled; this implementation preserves the shipped
// behavior of retaining duplicates rather than deduplicating them — the
// coincident-range logic in findEar is what actually has to cope with
// them.
func sortAndRemap(verts *ringStore, descs []pathDesc) {
	n := verts.len()
	order := make([]int32, n)
	for i := range order {
		order[i] = int32(i)
	}
	sort.Slice(order, func(i, j int) bool {
		return verts.position(order[i]).Less(verts.position(order[j]))
	})

	oldToNew := make([]int32, n)
	for newIdx, oldIdx := range order {
		oldToNew[oldIdx] = int32(newIdx)
	}

	verts.permute(order, oldToNew)

	for i := range descs {
		if descs[i].leftmost >= 0 {
			descs[i].leftmost = oldToNew[descs[i].leftmost]
		}
	}
}

//go:build ctridebug

package ctri

// debugAssertRingValid is the §7 "assertions in debug builds" consistency
// walker: built only under the ctridebug tag, it re-validates the whole
// ring after every splice. The original's check_loops_valid is gated the
// same way, compiled out of release builds since it is O(n) per splice.
func debugAssertRingValid(verts *ringStore) {
	if err := verts.assertRingValid(); err != nil {
		fatalf("%s", err)
	}
}

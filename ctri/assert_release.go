//go:build !ctridebug

package ctri

// debugAssertRingValid is a no-op outside of ctridebug builds, keeping the
// hot splice path free of an O(n) walk in ordinary use.
func debugAssertRingValid(verts *ringStore) {}

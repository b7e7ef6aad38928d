// Package geometry compares component bounding boxes: same visual row,
// immediate right-hand neighbour, and left-to-right order.
//
// All functions are pure. Boxes are read by the caller immediately before
// comparison and never cached.
package geometry

import (
	"sort"

	"github.com/mj1618/forms-cli/internal/platform"
)

// Default tolerances, in pixels.
const (
	DefaultAlignTolerance = 4
	DefaultGapTolerance   = 12
)

// Comparator holds the pixel tolerances used by the comparisons.
type Comparator struct {
	// AlignTolerance is the largest distance between vertical centers of two
	// boxes on the same row.
	AlignTolerance int
	// GapTolerance is the largest horizontal gap (or overlap) between a box
	// and its right-hand neighbour.
	GapTolerance int
}

// Default returns a comparator with the default tolerances.
func Default() Comparator {
	return Comparator{AlignTolerance: DefaultAlignTolerance, GapTolerance: DefaultGapTolerance}
}

// Aligned reports whether a and b sit on the same visual row.
func (c Comparator) Aligned(a, b platform.Bounds) bool {
	// Centers are compared doubled so odd heights stay exact.
	return abs(a.CenterY2()-b.CenterY2()) <= 2*c.AlignTolerance
}

// Adjacent reports whether b lies immediately to the right of a: aligned
// with it, starting within GapTolerance of a's right edge, and with none of
// others both aligned with a and sitting between the two. others may include
// a and b themselves; identical boxes are skipped.
func (c Comparator) Adjacent(a, b platform.Bounds, others ...platform.Bounds) bool {
	if !c.Aligned(a, b) || b.X <= a.X {
		return false
	}
	if abs(b.X-a.Right()) > c.GapTolerance {
		return false
	}
	for _, o := range others {
		if o == a || o == b {
			continue
		}
		if c.Aligned(a, o) && o.X > a.X && o.X < b.X {
			return false
		}
	}
	return true
}

// Order sorts items by horizontal position ascending. The sort is stable, so
// items at the same x keep their input (traversal) order. items is not
// modified.
func Order[T any](items []T, box func(T) platform.Bounds) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return box(out[i]).X < box(out[j]).X
	})
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

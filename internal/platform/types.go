package platform

import (
	"fmt"
	"strconv"
	"strings"
)

// Bounds represents a screen rectangle.
type Bounds struct {
	X, Y, Width, Height int
}

// BoundsFromArray converts an [x, y, width, height] array.
func BoundsFromArray(b [4]int) Bounds {
	return Bounds{X: b[0], Y: b[1], Width: b[2], Height: b[3]}
}

// Array returns the bounds as [x, y, width, height].
func (b Bounds) Array() [4]int {
	return [4]int{b.X, b.Y, b.Width, b.Height}
}

// Right is the x coordinate just past the right edge.
func (b Bounds) Right() int { return b.X + b.Width }

// Bottom is the y coordinate just past the bottom edge.
func (b Bounds) Bottom() int { return b.Y + b.Height }

// CenterY2 is twice the vertical center, exact for odd heights.
func (b Bounds) CenterY2() int { return 2*b.Y + b.Height }

// IsZero reports whether the box has no area.
func (b Bounds) IsZero() bool { return b.Width <= 0 || b.Height <= 0 }

func (b Bounds) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", b.X, b.Y, b.Width, b.Height)
}

// ParseBBox parses a "x,y,w,h" string into a Bounds.
func ParseBBox(s string) (*Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("invalid bbox %q: expected x,y,w,h", s)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid bbox %q: %w", s, err)
		}
		vals[i] = v
	}
	return &Bounds{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}

// ReadOptions controls what elements to read and how to filter them.
type ReadOptions struct {
	Types []string // Only include these type tags or groups (empty = all)
	BBox  *Bounds  // Only include elements intersecting this box (nil = no filter)
	Text  string   // Only include elements whose name or text contains this
	Prune bool     // Drop anonymous panel/other containers
}

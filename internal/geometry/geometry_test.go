package geometry

import (
	"testing"

	"github.com/mj1618/forms-cli/internal/platform"
)

func box(x, y, w, h int) platform.Bounds {
	return platform.Bounds{X: x, Y: y, Width: w, Height: h}
}

func TestAligned(t *testing.T) {
	c := Default()
	tests := []struct {
		name string
		a, b platform.Bounds
		want bool
	}{
		{"same row", box(0, 100, 50, 20), box(60, 100, 50, 20), true},
		{"within tolerance", box(0, 100, 50, 20), box(60, 104, 50, 20), true},
		{"odd height centers", box(0, 100, 50, 21), box(60, 100, 50, 20), true},
		{"taller box same center", box(0, 90, 50, 40), box(60, 100, 50, 20), true},
		{"next row", box(0, 100, 50, 20), box(0, 130, 50, 20), false},
		{"just outside", box(0, 100, 50, 20), box(60, 105, 50, 20), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Aligned(tt.a, tt.b); got != tt.want {
				t.Errorf("Aligned(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := c.Aligned(tt.b, tt.a); got != tt.want {
				t.Errorf("Aligned is not symmetric for %v, %v", tt.a, tt.b)
			}
		})
	}
}

func TestAdjacent(t *testing.T) {
	c := Default()
	a := box(10, 100, 100, 20)
	tests := []struct {
		name   string
		b      platform.Bounds
		others []platform.Bounds
		want   bool
	}{
		{"touching", box(110, 100, 100, 20), nil, true},
		{"small gap", box(120, 100, 100, 20), nil, true},
		{"overlapping border", box(108, 100, 100, 20), nil, true},
		{"gap too wide", box(130, 100, 100, 20), nil, false},
		{"left of anchor", box(0, 100, 5, 20), nil, false},
		{"other row", box(110, 130, 100, 20), nil, false},
		{"intervening component", box(120, 100, 100, 20), []platform.Bounds{box(112, 100, 6, 20)}, false},
		{"intervening on other row", box(120, 100, 100, 20), []platform.Bounds{box(112, 160, 6, 20)}, true},
		{"self in others", box(110, 100, 100, 20), []platform.Bounds{a, box(110, 100, 100, 20)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Adjacent(a, tt.b, tt.others...); got != tt.want {
				t.Errorf("Adjacent(%v, %v) = %v, want %v", a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAdjacentIsDirectional(t *testing.T) {
	c := Default()
	a, b := box(10, 100, 100, 20), box(110, 100, 100, 20)
	if !c.Adjacent(a, b) {
		t.Fatal("b should be adjacent to the right of a")
	}
	if c.Adjacent(b, a) {
		t.Error("a is left of b, not adjacent to its right")
	}
}

func TestOrder(t *testing.T) {
	type item struct {
		name string
		b    platform.Bounds
	}
	items := []item{
		{"c", box(300, 0, 10, 10)},
		{"a1", box(10, 0, 10, 10)},
		{"b", box(200, 0, 10, 10)},
		{"a2", box(10, 50, 10, 10)},
	}
	got := Order(items, func(i item) platform.Bounds { return i.b })
	want := []string{"a1", "a2", "b", "c"}
	for i, w := range want {
		if got[i].name != w {
			t.Errorf("Order()[%d] = %s, want %s", i, got[i].name, w)
		}
	}
	if items[0].name != "c" {
		t.Error("Order() modified its input")
	}
}

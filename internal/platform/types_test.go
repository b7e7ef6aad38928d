package platform

import "testing"

func TestParseBBox_Valid(t *testing.T) {
	b, err := ParseBBox("10,20,300,400")
	if err != nil {
		t.Fatal(err)
	}
	if b.X != 10 || b.Y != 20 || b.Width != 300 || b.Height != 400 {
		t.Errorf("got %+v, want {10 20 300 400}", b)
	}
}

func TestParseBBox_WithSpaces(t *testing.T) {
	b, err := ParseBBox("10, 20, 300, 400")
	if err != nil {
		t.Fatal(err)
	}
	if *b != (Bounds{10, 20, 300, 400}) {
		t.Errorf("got %+v, want {10 20 300 400}", b)
	}
}

func TestParseBBox_Invalid(t *testing.T) {
	tests := []string{
		"",
		"10,20,300",
		"10,20,300,400,500",
		"a,b,c,d",
		"10,20,abc,400",
	}
	for _, s := range tests {
		if _, err := ParseBBox(s); err == nil {
			t.Errorf("ParseBBox(%q) should fail", s)
		}
	}
}

func TestBounds_Edges(t *testing.T) {
	b := Bounds{X: 10, Y: 20, Width: 30, Height: 5}
	if b.Right() != 40 || b.Bottom() != 25 {
		t.Errorf("Right/Bottom = %d/%d, want 40/25", b.Right(), b.Bottom())
	}
	if b.CenterY2() != 45 {
		t.Errorf("CenterY2 = %d, want 45", b.CenterY2())
	}
	if b.Array() != [4]int{10, 20, 30, 5} || BoundsFromArray(b.Array()) != b {
		t.Errorf("array round trip failed for %v", b)
	}
	if b.IsZero() || !(Bounds{X: 5, Y: 5}).IsZero() {
		t.Error("IsZero misreports")
	}
}

func TestBounds_IsZero(t *testing.T) {
	tests := []struct {
		b    Bounds
		want bool
	}{
		{Bounds{X: 1, Y: 1, Width: 10, Height: 20}, false},
		{Bounds{X: 1, Y: 1, Width: 1, Height: 1}, false},
		{Bounds{}, true},
		{Bounds{X: 1, Y: 1, Width: 0, Height: 20}, true},
		{Bounds{X: 1, Y: 1, Width: 10, Height: 0}, true},
		{Bounds{X: 1, Y: 1, Width: -5, Height: 20}, true},
	}
	for _, tt := range tests {
		if got := tt.b.IsZero(); got != tt.want {
			t.Errorf("%v.IsZero() = %v, want %v", tt.b, got, tt.want)
		}
	}
}

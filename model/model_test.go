package model

import (
	"math"
	"testing"
)

// ============================================================================
// Point Tests
// ============================================================================

func TestPointDistance(t *testing.T) {
	tests := []struct {
		name     string
		p1, p2   Point
		expected float64
	}{
		{"same point", Point{0, 0}, Point{0, 0}, 0},
		{"horizontal", Point{0, 0}, Point{3, 0}, 3},
		{"3-4-5 triangle", Point{0, 0}, Point{3, 4}, 5},
		{"negative coordinates", Point{-1, -1}, Point{2, 3}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p1.Distance(tt.p2); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Distance() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// ============================================================================
// BBox Tests
// ============================================================================

func TestNewBBoxFromPoints(t *testing.T) {
	b := NewBBoxFromPoints(Point{50, 20}, Point{10, 60})
	if b.X != 10 || b.Y != 20 || b.Width != 40 || b.Height != 40 {
		t.Errorf("NewBBoxFromPoints() = %+v", b)
	}
}

func TestBBoxEdges(t *testing.T) {
	b := NewBBox(10, 20, 100, 50)
	if b.Left() != 10 || b.Right() != 110 || b.Bottom() != 20 || b.Top() != 70 {
		t.Errorf("edges = %v %v %v %v", b.Left(), b.Right(), b.Bottom(), b.Top())
	}
}

func TestBBoxContains(t *testing.T) {
	b := NewBBox(0, 0, 10, 10)
	if !b.Contains(Point{5, 5}) {
		t.Error("expected center to be contained")
	}
	if !b.Contains(Point{10, 10}) {
		t.Error("expected corner to be contained")
	}
	if b.Contains(Point{11, 5}) {
		t.Error("expected outside point to be rejected")
	}
}

func TestBBoxExpandAndClamp(t *testing.T) {
	tests := []struct {
		name     string
		box      BBox
		dx, dy   float64
		w, h     float64
		expected BBox
	}{
		{"inside page", NewBBox(400, 400, 0, 0), 100, 100, 1000, 1000, NewBBox(300, 300, 200, 200)},
		{"clipped at origin", NewBBox(100, 100, 0, 0), 300, 300, 1000, 1000, NewBBox(0, 0, 400, 400)},
		{"clipped at far edge", NewBBox(900, 950, 0, 0), 300, 300, 1000, 1000, NewBBox(600, 650, 400, 350)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.box.ExpandXY(tt.dx, tt.dy).Clamp(tt.w, tt.h)
			if got != tt.expected {
				t.Errorf("got %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestBBoxClampOutsidePage(t *testing.T) {
	got := NewBBox(2000, 2000, 10, 10).Clamp(1000, 1000)
	if !got.IsEmpty() {
		t.Errorf("expected empty box, got %+v", got)
	}
}

// ============================================================================
// Line Tests
// ============================================================================

func TestOrientationOf(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		expected       Orientation
	}{
		{"horizontal", 0, 0, 100, 0, Horizontal},
		{"horizontal reversed", 100, 0, 0, 0, Horizontal},
		{"slightly tilted", 0, 0, 100, 5, Horizontal},
		{"vertical", 0, 0, 0, 100, Vertical},
		{"vertical downwards", 0, 100, 0, 0, Vertical},
		{"diagonal", 0, 0, 100, 100, Diagonal},
		{"just outside tolerance", 0, 0, 100, 15, Diagonal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OrientationOf(tt.x1, tt.y1, tt.x2, tt.y2); got != tt.expected {
				t.Errorf("OrientationOf() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLineAxis(t *testing.T) {
	h := NewLine(90, 10, 10, 12, 1)
	if h.Orientation != Horizontal {
		t.Fatalf("orientation = %v", h.Orientation)
	}
	if h.Position() != 11 || h.MinAlong() != 10 || h.MaxAlong() != 90 {
		t.Errorf("pos=%v min=%v max=%v", h.Position(), h.MinAlong(), h.MaxAlong())
	}

	v := NewLine(40, 80, 40, 20, 1)
	if v.Position() != 40 || v.MinAlong() != 20 || v.MaxAlong() != 80 || v.Length != 60 {
		t.Errorf("pos=%v min=%v max=%v len=%v", v.Position(), v.MinAlong(), v.MaxAlong(), v.Length)
	}
}

func TestPageGeometryViews(t *testing.T) {
	g := PageGeometry{
		Width:  500,
		Height: 500,
		Lines: []Line{
			NewLine(0, 0, 300, 0, 1),
			NewLine(0, 0, 0, 200, 1),
			NewLine(0, 50, 100, 50, 1),
		},
	}
	if h := g.Horizontal(); len(h) != 2 || h[0].Length != 300 || h[1].Length != 100 {
		t.Errorf("Horizontal() = %+v", h)
	}
	if v := g.Vertical(); len(v) != 1 || v[0].Length != 200 {
		t.Errorf("Vertical() = %+v", v)
	}
}

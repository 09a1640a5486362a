package camera

import (
	"math"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	cam := New(80, 40)

	if cam.X != 0.5 || cam.Y != 0.5 {
		t.Errorf("expected camera at (0.5, 0.5), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(80, 40)

	sx, sy := cam.WorldToScreen(0.5, 0.5)
	if math.Abs(float64(sx-40)) > 0.01 || math.Abs(float64(sy-20)) > 0.01 {
		t.Errorf("expected screen center (40, 20), got (%f, %f)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(80, 40)
	cam.SetZoom(2)

	testCases := []struct{ sx, sy float32 }{
		{40, 20}, // center
		{5, 3},   // top-left
		{75, 35}, // near bottom-right
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if math.Abs(float64(sx-tc.sx)) > 0.01 || math.Abs(float64(sy-tc.sy)) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestToroidalWrap(t *testing.T) {
	cam := New(80, 40)
	cam.X = 0.05 // Near left edge

	// A point at the world's right edge is closer across the seam.
	sx, _ := cam.WorldToScreen(0.98, 0.5)
	if sx >= 40 {
		t.Errorf("expected point on left of screen, got x=%f", sx)
	}
}

func TestPanWraps(t *testing.T) {
	cam := New(80, 40)
	cam.X = 0.05

	cam.Pan(-8, 0) // a tenth of the world at zoom 1

	if cam.X < 0.9 {
		t.Errorf("expected X to wrap around, got %f", cam.X)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(80, 40)

	cam.SetZoom(0.1)
	if cam.Zoom != 1 {
		t.Errorf("expected zoom clamped to 1, got %f", cam.Zoom)
	}

	cam.ZoomBy(100)
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MaxZoom, cam.Zoom)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(80, 40)
	cam.SetZoom(4) // shows [0.375, 0.625) on each axis

	if !cam.IsVisible(0.5, 0.5) {
		t.Error("center should be visible")
	}
	if cam.IsVisible(0.9, 0.5) {
		t.Error("far point should not be visible")
	}
	if !cam.IsVisible(0.6, 0.4) {
		t.Error("point inside the view should be visible")
	}
}

func TestReset(t *testing.T) {
	cam := New(80, 40)
	cam.X = 0.1
	cam.Y = 0.9
	cam.Zoom = 2.5

	cam.Reset()

	if cam.X != 0.5 || cam.Y != 0.5 || cam.Zoom != 1.0 {
		t.Errorf("expected (0.5, 0.5) zoom 1, got (%f, %f) zoom %f", cam.X, cam.Y, cam.Zoom)
	}
}

func TestRender(t *testing.T) {
	cam := New(4, 2)
	frame := cam.Render([]Sprite{
		{X: 0, Y: 0, Glyph: '*'},
		{X: 0.99, Y: 0.99, Glyph: 'v'},
	})

	lines := strings.Split(strings.TrimSuffix(frame, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("frame has %d lines, want 2:\n%s", len(lines), frame)
	}
	for _, line := range lines {
		if len([]rune(line)) != 4 {
			t.Errorf("line %q is not 4 cells wide", line)
		}
	}
	if !strings.ContainsRune(frame, '*') || !strings.ContainsRune(frame, 'v') {
		t.Errorf("sprites missing from frame:\n%s", frame)
	}
}

func TestHeadingGlyph(t *testing.T) {
	tests := []struct {
		hx, hy float32
		want   rune
	}{
		{0, 1, 'v'},
		{0, -1, '^'},
		{1, 0, '>'},
		{-1, 0.2, '<'},
	}
	for _, tt := range tests {
		if got := HeadingGlyph(tt.hx, tt.hy); got != tt.want {
			t.Errorf("HeadingGlyph(%v, %v) = %q, want %q", tt.hx, tt.hy, got, tt.want)
		}
	}
}

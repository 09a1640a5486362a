// Package camera provides a 2D viewport onto the unit torus, drawn as a
// grid of character cells.
package camera

import (
	"math"
	"strings"
)

// Camera controls the viewport into the simulation world.
// Supports pan and zoom with toroidal world wrapping.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float32

	// Zoom level (1.0 = whole world, 2.0 = 2x magnification)
	Zoom float32

	// Viewport dimensions in character cells
	Cols, Rows int

	MaxZoom float32
}

// Sprite is one glyph placed at a world position.
type Sprite struct {
	X, Y  float32
	Glyph rune
}

// New creates a camera centered on the world showing all of it.
func New(cols, rows int) *Camera {
	return &Camera{
		X:       0.5,
		Y:       0.5,
		Zoom:    1.0,
		Cols:    cols,
		Rows:    rows,
		MaxZoom: 8.0,
	}
}

// WorldToScreen converts world coordinates to fractional cell coordinates.
// For toroidal worlds, this finds the shortest path to the viewport.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	dx := toroidalDelta(wx, c.X)
	dy := toroidalDelta(wy, c.Y)

	sx = float32(c.Cols)/2 + dx*c.Zoom*float32(c.Cols)
	sy = float32(c.Rows)/2 + dy*c.Zoom*float32(c.Rows)
	return sx, sy
}

// ScreenToWorld converts cell coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	dx := (sx - float32(c.Cols)/2) / (c.Zoom * float32(c.Cols))
	dy := (sy - float32(c.Rows)/2) / (c.Zoom * float32(c.Rows))

	wx = mod(c.X + dx)
	wy = mod(c.Y + dy)
	return wx, wy
}

// IsVisible returns true if a point at (wx, wy) lands inside the viewport.
func (c *Camera) IsVisible(wx, wy float32) bool {
	half := 1 / (2 * c.Zoom)
	return absf(toroidalDelta(wx, c.X)) <= half && absf(toroidalDelta(wy, c.Y)) <= half
}

// Pan moves the camera by the given delta in cells.
// Automatically wraps around world boundaries.
func (c *Camera) Pan(dCols, dRows float32) {
	c.X = mod(c.X + dCols/(c.Zoom*float32(c.Cols)))
	c.Y = mod(c.Y + dRows/(c.Zoom*float32(c.Rows)))
}

// SetZoom sets the zoom level, clamped to [1, MaxZoom].
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, 1, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the default position and zoom.
func (c *Camera) Reset() {
	c.X = 0.5
	c.Y = 0.5
	c.Zoom = 1.0
}

// Render draws sprites into a Rows x Cols frame, one line per row.
// Later sprites overwrite earlier ones in the same cell.
func (c *Camera) Render(sprites []Sprite) string {
	if c.Cols <= 0 || c.Rows <= 0 {
		return ""
	}

	grid := make([][]rune, c.Rows)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(".", c.Cols))
	}

	for _, s := range sprites {
		if !c.IsVisible(s.X, s.Y) {
			continue
		}
		sx, sy := c.WorldToScreen(s.X, s.Y)
		col := min(max(int(sx), 0), c.Cols-1)
		row := min(max(int(sy), 0), c.Rows-1)
		grid[row][col] = s.Glyph
	}

	var b strings.Builder
	b.Grow(c.Rows * (c.Cols + 1))
	for _, line := range grid {
		b.WriteString(string(line))
		b.WriteByte('\n')
	}
	return b.String()
}

// HeadingGlyph returns an arrow for a heading vector, with +Y drawn
// downwards.
func HeadingGlyph(hx, hy float32) rune {
	if absf(hx) > absf(hy) {
		if hx > 0 {
			return '>'
		}
		return '<'
	}
	if hy > 0 {
		return 'v'
	}
	return '^'
}

// toroidalDelta computes the shortest signed distance from 'from' to 'to'
// on the unit torus.
func toroidalDelta(to, from float32) float32 {
	d := to - from
	if d > 0.5 {
		d -= 1
	} else if d < -0.5 {
		d += 1
	}
	return d
}

// mod wraps x into [0, 1).
func mod(x float32) float32 {
	r := float32(math.Mod(float64(x), 1))
	if r < 0 {
		r += 1
	}
	if r >= 1 {
		r = 0
	}
	return r
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

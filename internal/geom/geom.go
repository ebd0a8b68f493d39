package geom

// Point is a 2D position in pixels or normalized units
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. Min is inclusive of the edge, but
// Contains only reports points strictly inside.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// RectXYWH builds a Rect from its top-left corner and size
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Center returns the midpoint of the rect
func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Contains reports whether (x, y) lies strictly inside r
func (r Rect) Contains(x, y float64) bool {
	return x > r.MinX && x < r.MaxX && y > r.MinY && y < r.MaxY
}

// Inset shrinks r by dx on the left and right and dy on the top and bottom.
// A rect inset past its own size collapses to an empty rect.
func (r Rect) Inset(dx, dy float64) Rect {
	out := Rect{MinX: r.MinX + dx, MinY: r.MinY + dy, MaxX: r.MaxX - dx, MaxY: r.MaxY - dy}
	if out.MaxX < out.MinX {
		out.MaxX = out.MinX
	}
	if out.MaxY < out.MinY {
		out.MaxY = out.MinY
	}
	return out
}

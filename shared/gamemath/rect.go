package gamemath

// Rect is an axis-aligned box with a top-left corner and a size.
type Rect struct {
	X, Y, W, H float64
}

// RectFromCenter builds a Rect of size w x h centered on (cx, cy).
func RectFromCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Overlaps reports whether r and o intersect or touch within slop. Touching
// counts so that a body resting exactly on a surface registers contact.
func (r Rect) Overlaps(o Rect, slop float64) bool {
	return r.X < o.Right()+slop && o.X < r.Right()+slop &&
		r.Y < o.Bottom()+slop && o.Y < r.Bottom()+slop
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

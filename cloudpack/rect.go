package cloudpack

import "fmt"

// Point describes a location in two-dimensional space.
type Point struct {
	// X is the location on the horizontal x-axis.
	X int `json:"x"`
	// Y is the location on the vertical y-axis.
	Y int `json:"y"`
}

// NewPoint initializes a new point with the specified coordinates.
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Eq tests whether the receiver and another point have the same values.
func (p Point) Eq(point Point) bool {
	return p.X == point.X && p.Y == point.Y
}

// String returns a string describing the point.
func (p Point) String() string {
	return fmt.Sprintf("[%v, %v]", p.X, p.Y)
}

// Offset returns the point moved by the specified relative amounts.
func (p Point) Offset(x, y int) Point {
	return Point{X: p.X + x, Y: p.Y + y}
}

// Size describes the dimensions of an entity in two-dimensional space.
type Size struct {
	// Width is the dimension on the horizontal x-axis.
	Width int `json:"width"`
	// Height is the dimension on the vertical y-axis.
	Height int `json:"height"`
	// ID is a user-defined identifier carried through placement untouched. Callers use it to
	// map a placed rectangle back to the label it represents.
	ID int `json:"-"`
}

// NewSize creates a new size with the specified dimensions.
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}

// NewSizeID creates a new size with the specified dimensions and identifier.
func NewSizeID(id, width, height int) Size {
	return Size{ID: id, Width: width, Height: height}
}

// Eq tests whether the receiver and another size have the same dimensions. The ID is ignored.
func (sz Size) Eq(size Size) bool {
	return sz.Width == size.Width && sz.Height == size.Height
}

// String returns a string describing the size.
func (sz Size) String() string {
	return fmt.Sprintf("[%v, %v]", sz.Width, sz.Height)
}

// Valid reports whether both dimensions are strictly positive.
func (sz Size) Valid() bool {
	return sz.Width > 0 && sz.Height > 0
}

// Area returns the total area (width * height).
func (sz Size) Area() int {
	return sz.Width * sz.Height
}

// Perimeter returns the total length of all sides.
func (sz Size) Perimeter() int {
	return (sz.Width + sz.Height) << 1
}

// MaxSide returns the value of the greater side.
func (sz Size) MaxSide() int {
	return max(sz.Width, sz.Height)
}

// MinSide returns the value of the lesser side.
func (sz Size) MinSide() int {
	return min(sz.Width, sz.Height)
}

// Rect describes a location (top-left corner) and a size in two-dimensional space.
type Rect struct {
	// Point is the top-left corner of the rectangle.
	Point
	// Size holds the width, height and ID of the rectangle.
	Size
}

// NewRect initializes a new rectangle using the specified point and size values.
func NewRect(x, y, w, h int) Rect {
	return Rect{
		Point: Point{X: x, Y: y},
		Size:  Size{Width: w, Height: h},
	}
}

// NewRectLTRB initializes a new rectangle using the specified left/top/right/bottom values.
func NewRectLTRB(l, t, r, b int) Rect {
	return Rect{
		Point: Point{X: l, Y: t},
		Size:  Size{Width: r - l, Height: b - t},
	}
}

// CenteredAt returns a rectangle of the given size whose center is the given point. The
// top-left corner is center - size/2 using integer division, so odd dimensions put the extra
// unit on the right/bottom side. The size's ID is preserved.
func CenteredAt(center Point, size Size) Rect {
	return Rect{
		Point: Point{X: center.X - size.Width/2, Y: center.Y - size.Height/2},
		Size:  size,
	}
}

// Eq compares two rectangles to determine if the location and size is equal.
func (r Rect) Eq(rect Rect) bool {
	return r.Point.Eq(rect.Point) && r.Size.Eq(rect.Size)
}

// String returns a string describing the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("[%v, %v, %v, %v]", r.X, r.Y, r.Width, r.Height)
}

// Left returns the coordinate of the left edge on the x-axis.
func (r Rect) Left() int {
	return r.X
}

// Top returns the coordinate of the top edge on the y-axis.
func (r Rect) Top() int {
	return r.Y
}

// Right returns the coordinate of the right edge on the x-axis.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the coordinate of the bottom edge on the y-axis.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Center returns the center point of the rectangle. Coordinates are rounded toward the
// top-left for odd dimensions, so Center(CenteredAt(p, s)) == p for every positive size.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains tests whether the specified coordinates are within the bounds of the receiver.
func (r Rect) Contains(x, y int) bool {
	return r.X <= x && x < r.X+r.Width && r.Y <= y && y < r.Y+r.Height
}

// ContainsRect tests whether the specified rectangle is contained within the receiver.
func (r Rect) ContainsRect(rect Rect) bool {
	return r.X <= rect.X &&
		rect.X+rect.Width <= r.X+r.Width &&
		r.Y <= rect.Y &&
		rect.Y+rect.Height <= r.Y+r.Height
}

// IsEmpty tests whether the width or height of the rectangle is less than 1.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersects tests whether the receiver and the specified rectangle share any interior area.
// Rectangles that only touch along an edge or a corner do not intersect.
func (r Rect) Intersects(rect Rect) bool {
	return rect.X < r.X+r.Width &&
		r.X < rect.X+rect.Width &&
		rect.Y < r.Y+r.Height &&
		r.Y < rect.Y+rect.Height
}

// Union returns the smallest rectangle that contains both the receiver and rect.
func (r Rect) Union(rect Rect) Rect {
	x1 := min(r.X, rect.X)
	x2 := max(r.X+r.Width, rect.X+rect.Width)
	y1 := min(r.Y, rect.Y)
	y2 := max(r.Y+r.Height, rect.Y+rect.Height)
	return NewRect(x1, y1, x2-x1, y2-y1)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

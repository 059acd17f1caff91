package cloudpack

// Bounds incrementally tracks the smallest axis-aligned rectangle enclosing every rectangle
// added to it. The zero value is ready to use and empty.
type Bounds struct {
	rect Rect
	set  bool
}

// Add grows the bounds to include r.
func (b *Bounds) Add(r Rect) {
	if !b.set {
		b.rect = NewRect(r.X, r.Y, r.Width, r.Height)
		b.set = true
		return
	}
	b.rect = b.rect.Union(r)
}

// Empty reports whether nothing has been added yet.
func (b *Bounds) Empty() bool {
	return !b.set
}

// Rect returns the enclosing rectangle. It is the zero Rect (which IsEmpty) until the first
// call to Add; callers must check Empty before relying on its coordinates.
func (b *Bounds) Rect() Rect {
	return b.rect
}

// Reset empties the bounds.
func (b *Bounds) Reset() {
	*b = Bounds{}
}

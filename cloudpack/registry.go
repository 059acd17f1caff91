package cloudpack

// DefaultCellSize is the edge length of the spatial index cells used by a Registry.
const DefaultCellSize = 32

type cellKey struct {
	x, y int
}

// Registry holds the rectangles committed during one layout run, in placement order, and
// answers overlap queries against all of them.
//
// Rectangles are also bucketed into a uniform grid so that a query only inspects rectangles
// sharing a cell with the candidate. The answer is identical to a linear scan.
type Registry struct {
	packed   []Rect            // placed rectangles, in insertion order
	bounds   Bounds            // union of everything in packed
	usedArea int               // sum of the areas in packed
	cellSize int               // grid cell edge length
	grid     map[cellKey][]int // cell -> indices into packed
}

// NewRegistry creates an empty registry. A cellSize below 1 selects DefaultCellSize.
func NewRegistry(cellSize int) *Registry {
	r := &Registry{}
	r.init(cellSize)
	return r
}

func (r *Registry) init(cellSize int) {
	if cellSize < 1 {
		cellSize = DefaultCellSize
	}
	r.cellSize = cellSize
	r.grid = make(map[cellKey][]int)
}

// Reset removes every rectangle, keeping the grid configuration.
func (r *Registry) Reset() {
	r.packed = r.packed[:0]
	r.bounds.Reset()
	r.usedArea = 0
	clear(r.grid)
}

// Append commits rect. The caller guarantees a positive size.
func (r *Registry) Append(rect Rect) {
	if r.grid == nil {
		r.init(r.cellSize)
	}
	index := len(r.packed)
	r.packed = append(r.packed, rect)
	r.bounds.Add(rect)
	r.usedArea += rect.Area()

	x0, y0, x1, y1 := r.cellRange(rect)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			key := cellKey{cx, cy}
			r.grid[key] = append(r.grid[key], index)
		}
	}
}

// OverlapsAny reports whether candidate shares interior area with any stored rectangle.
// Touching edges do not count as overlap.
func (r *Registry) OverlapsAny(candidate Rect) bool {
	if len(r.packed) == 0 || candidate.IsEmpty() {
		return false
	}
	if !r.bounds.Rect().Intersects(candidate) {
		return false
	}
	x0, y0, x1, y1 := r.cellRange(candidate)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			for _, i := range r.grid[cellKey{cx, cy}] {
				if r.packed[i].Intersects(candidate) {
					return true
				}
			}
		}
	}
	return false
}

// cellRange returns the inclusive range of grid cells covered by the pixels of rect. The
// cells are clipped to the registry bounds so that a huge candidate does not walk empty cells.
func (r *Registry) cellRange(rect Rect) (x0, y0, x1, y1 int) {
	left, top, right, bottom := rect.Left(), rect.Top(), rect.Right(), rect.Bottom()
	if !r.bounds.Empty() {
		b := r.bounds.Rect()
		left, top = max(left, b.Left()), max(top, b.Top())
		right, bottom = min(right, b.Right()), min(bottom, b.Bottom())
	}
	return floorDiv(left, r.cellSize), floorDiv(top, r.cellSize),
		floorDiv(right-1, r.cellSize), floorDiv(bottom-1, r.cellSize)
}

// Rects returns the placed rectangles in insertion order. The slice is owned by the registry;
// copy it before modifying.
func (r *Registry) Rects() []Rect {
	return r.packed
}

// Len returns the number of placed rectangles.
func (r *Registry) Len() int {
	return len(r.packed)
}

// Bounds returns the union of all placed rectangles, or the zero Rect when empty.
func (r *Registry) Bounds() Rect {
	return r.bounds.Rect()
}

// UsedArea returns the total area covered by placed rectangles.
func (r *Registry) UsedArea() int {
	return r.usedArea
}

package cloudpack

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

// SortFunc is the prototype of a function that compares two sizes.
// Returns:
//
//	-1: a is placed before b
//	 0: keep input order
//	 1: a is placed after b
type SortFunc func(a, b Size) int

// SortArea orders sizes by area, largest first.
func SortArea(a, b Size) int {
	return cmp.Compare(b.Area(), a.Area())
}

// SortPerimeter orders sizes by perimeter, largest first.
func SortPerimeter(a, b Size) int {
	return cmp.Compare(b.Perimeter(), a.Perimeter())
}

// SortMaxSide orders sizes by their longer side, largest first.
func SortMaxSide(a, b Size) int {
	return cmp.Compare(b.MaxSide(), a.MaxSide())
}

// SortHeight orders sizes by height, tallest first. For rendered text this is the font size.
func SortHeight(a, b Size) int {
	return cmp.Compare(b.Height, a.Height)
}

// SortWidth orders sizes by width, widest first.
func SortWidth(a, b Size) int {
	return cmp.Compare(b.Width, a.Width)
}

// ErrUnknownOrdering is returned by ResolveOrdering for names it does not recognise.
var ErrUnknownOrdering = errors.New("unknown ordering")

// Orderings lists the names accepted by ResolveOrdering.
var Orderings = []string{"input", "area", "perimeter", "maxside", "height", "width"}

// ResolveOrdering maps an ordering name to its SortFunc. "input" (or "") keeps the caller's
// order and resolves to nil.
func ResolveOrdering(name string) (SortFunc, error) {
	switch strings.ToLower(name) {
	case "", "input":
		return nil, nil
	case "area":
		return SortArea, nil
	case "perimeter":
		return SortPerimeter, nil
	case "maxside":
		return SortMaxSide, nil
	case "height":
		return SortHeight, nil
	case "width":
		return SortWidth, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOrdering, name)
}

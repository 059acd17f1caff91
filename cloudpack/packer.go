// Package cloudpack lays out rectangles as a tag cloud: each rectangle is centered on the first
// point of an Archimedean spiral where it does not overlap anything placed before it, which
// yields a compact, roughly circular arrangement around a common center.
package cloudpack

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidSize is returned when a size with a width or height below 1 is placed.
var ErrInvalidSize = errors.New("invalid size")

// SearchMode selects where the spiral search for each new rectangle begins.
type SearchMode uint8

const (
	// SearchContinue keeps a single spiral for the whole run; every placement resumes where
	// the previous one stopped. This is the default and the fastest mode.
	SearchContinue SearchMode = iota

	// SearchFromCenter starts every placement on a fresh spiral at the center, so each
	// rectangle lands on the first free spiral point nearest the center. Later small
	// rectangles can fill gaps left near the middle, at the cost of longer searches.
	SearchFromCenter
)

// String returns the name of the search mode.
func (m SearchMode) String() string {
	switch m {
	case SearchContinue:
		return "continue"
	case SearchFromCenter:
		return "center"
	}
	return fmt.Sprintf("SearchMode(%d)", uint8(m))
}

// ParseSearchMode resolves a search mode from its name.
func ParseSearchMode(name string) (SearchMode, error) {
	switch name {
	case "", "continue":
		return SearchContinue, nil
	case "center":
		return SearchFromCenter, nil
	}
	return 0, fmt.Errorf("unknown search mode %q", name)
}

// Option configures a Packer.
type Option func(*Packer)

// WithStep sets the angular step of the spiral in radians. Values <= 0 are ignored.
func WithStep(step float64) Option {
	return func(p *Packer) {
		if step > 0 {
			p.step = step
		}
	}
}

// WithDensity sets the spiral radius growth per radian. Values <= 0 are ignored.
func WithDensity(density float64) Option {
	return func(p *Packer) {
		if density > 0 {
			p.density = density
		}
	}
}

// WithSearch selects the search mode.
func WithSearch(mode SearchMode) Option {
	return func(p *Packer) { p.search = mode }
}

// WithCellSize sets the edge length of the registry's spatial index cells.
func WithCellSize(size int) Option {
	return func(p *Packer) { p.cellSize = size }
}

// Packer places rectangles one at a time around a common center. Each rectangle is centered
// on the first point of an outward spiral at which it does not overlap any rectangle placed
// before it.
//
// A Packer holds the state of exactly one layout run and is not safe for concurrent use.
// Independent clouds need independent packers.
type Packer struct {
	center   Point
	step     float64
	density  float64
	search   SearchMode
	cellSize int

	spiral   *Spiral
	registry *Registry
	steps    int

	// sortFunc orders a batch passed to PlaceAll. nil keeps the caller's order.
	sortFunc SortFunc
	sortRev  bool
}

// NewPacker creates a packer whose rectangles gather around center.
func NewPacker(center Point, opts ...Option) *Packer {
	p := &Packer{
		center:  center,
		step:    DefaultStep,
		density: DefaultDensity,
		search:  SearchContinue,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.spiral = newSpiral(p.center, p.step, p.density)
	p.registry = NewRegistry(p.cellSize)
	return p
}

// Place finds a position for a rectangle of the given size, commits it and returns it. The
// returned rectangle carries size.ID.
//
// Place fails with ErrInvalidSize when either dimension is below 1; the packer is left
// unchanged in that case. Otherwise a position is always found, although a large rectangle
// placed after many small ones can take many spiral steps. Place has no timeout; callers that
// need bounded latency must bound it themselves.
func (p *Packer) Place(size Size) (Rect, error) {
	if !size.Valid() {
		return Rect{}, fmt.Errorf("%w: %s", ErrInvalidSize, size.String())
	}
	if p.search == SearchFromCenter {
		p.spiral = newSpiral(p.center, p.step, p.density)
	}
	for {
		candidate := CenteredAt(p.spiral.Next(), size)
		p.steps++
		if !p.registry.OverlapsAny(candidate) {
			p.registry.Append(candidate)
			return candidate, nil
		}
	}
}

// PlaceAll places every size in turn, first ordering a copy of them with the configured
// sorter (see Sorter). It stops at the first invalid size and returns the rectangles placed
// so far along with an error naming the offending index.
func (p *Packer) PlaceAll(sizes ...Size) ([]Rect, error) {
	ordered := slices.Clone(sizes)
	if p.sortFunc != nil {
		if p.sortRev {
			slices.SortStableFunc(ordered, func(a, b Size) int {
				return p.sortFunc(b, a)
			})
		} else {
			slices.SortStableFunc(ordered, p.sortFunc)
		}
	} else if p.sortRev {
		slices.Reverse(ordered)
	}

	placed := make([]Rect, 0, len(ordered))
	for i, size := range ordered {
		rect, err := p.Place(size)
		if err != nil {
			return placed, fmt.Errorf("size %d (id %d): %w", i, size.ID, err)
		}
		placed = append(placed, rect)
	}
	return placed, nil
}

// Sorter sets the ordering applied by PlaceAll.
// Parameters:
//
//	compare - the function used to compare two sizes, nil keeps the input order
//	reverse - reverses the resulting order
//
// Place itself never reorders anything. Callers should feed sizes largest first to keep the
// densest packing near the center.
func (p *Packer) Sorter(compare SortFunc, reverse bool) {
	p.sortFunc = compare
	p.sortRev = reverse
}

// Center returns the point the layout gathers around.
func (p *Packer) Center() Point {
	return p.center
}

// Rects returns a copy of the placed rectangles in placement order.
func (p *Packer) Rects() []Rect {
	return slices.Clone(p.registry.Rects())
}

// Len returns the number of placed rectangles.
func (p *Packer) Len() int {
	return p.registry.Len()
}

// Bounds returns the smallest rectangle that encloses every placed rectangle. Before the first
// placement it is the zero Rect, which IsEmpty.
func (p *Packer) Bounds() Rect {
	return p.registry.Bounds()
}

// Used returns the fraction of the bounds area covered by placed rectangles, between 0.0 and
// 1.0.
func (p *Packer) Used() float64 {
	bounds := p.Bounds()
	if bounds.IsEmpty() {
		return 0
	}
	return float64(p.registry.UsedArea()) / float64(bounds.Area())
}

// Steps returns the number of spiral points examined since the run started.
func (p *Packer) Steps() int {
	return p.steps
}

// Clear starts a new run: all placed rectangles are dropped and the spiral restarts at the
// center. Configuration is kept.
func (p *Packer) Clear() {
	p.registry.Reset()
	p.spiral = newSpiral(p.center, p.step, p.density)
	p.steps = 0
}

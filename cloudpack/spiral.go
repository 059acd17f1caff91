package cloudpack

import "math"

const (
	// DefaultStep is the angle, in radians, the spiral advances on every call to Next.
	DefaultStep = 0.1

	// DefaultDensity is the growth of the spiral radius per radian of accumulated angle.
	// Consecutive turns are 2*Pi*DefaultDensity (about 1.26) units apart.
	DefaultDensity = 0.2
)

// Spiral produces candidate points along an Archimedean spiral (radius = density * angle)
// that winds outward from a fixed center. The sequence is infinite, deterministic and
// forward-only; use a new Spiral to start over.
//
// A Spiral is not safe for concurrent use.
type Spiral struct {
	center  Point
	step    float64
	density float64
	n       uint64
}

// NewSpiral creates a spiral around center using DefaultStep and DefaultDensity.
func NewSpiral(center Point) *Spiral {
	return newSpiral(center, DefaultStep, DefaultDensity)
}

func newSpiral(center Point, step, density float64) *Spiral {
	return &Spiral{center: center, step: step, density: density}
}

// Center returns the point the spiral winds around.
func (s *Spiral) Center() Point {
	return s.center
}

// Next returns the next point on the spiral. The first call returns the center itself.
func (s *Spiral) Next() Point {
	// angle = n*step, never a running sum.
	angle := float64(s.n) * s.step
	s.n++
	radius := s.density * angle
	return Point{
		X: s.center.X + int(math.Round(radius*math.Cos(angle))),
		Y: s.center.Y + int(math.Round(radius*math.Sin(angle))),
	}
}

// Taken returns how many points have been produced so far.
func (s *Spiral) Taken() uint64 {
	return s.n
}

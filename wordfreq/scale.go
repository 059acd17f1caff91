package wordfreq

import (
	"errors"
	"fmt"
)

// ErrInvalidScale is returned for a font size range that is empty or not positive.
var ErrInvalidScale = errors.New("invalid font scale")

// Scale maps occurrence counts linearly onto a font size range.
type Scale struct {
	Min float64 `json:"min" yaml:"min" toml:"min"`
	Max float64 `json:"max" yaml:"max" toml:"max"`
}

// NewScale returns a scale from lo to hi points. It requires 0 < lo < hi.
func NewScale(lo, hi float64) (Scale, error) {
	s := Scale{Min: lo, Max: hi}
	if err := s.Validate(); err != nil {
		return Scale{}, err
	}
	return s, nil
}

// Validate reports whether the range is usable.
func (s Scale) Validate() error {
	if s.Min <= 0 || s.Max <= 0 {
		return fmt.Errorf("%w: sizes must be positive (given %v..%v)", ErrInvalidScale, s.Min, s.Max)
	}
	if s.Min >= s.Max {
		return fmt.Errorf("%w: minimum %v must be below maximum %v", ErrInvalidScale, s.Min, s.Max)
	}
	return nil
}

// FontSize returns the size for count given the smallest and largest counts in the cloud.
// When every tag has the same count they all get the maximum size.
func (s Scale) FontSize(count, minCount, maxCount int) float64 {
	if maxCount <= minCount {
		return s.Max
	}
	t := float64(count-minCount) / float64(maxCount-minCount)
	t = min(max(t, 0), 1)
	return s.Min + t*(s.Max-s.Min)
}

// FontSizes returns the font size of each tag, in the same order.
func (s Scale) FontSizes(tags []Tag) []float64 {
	sizes := make([]float64, len(tags))
	if len(tags) == 0 {
		return sizes
	}
	lo, hi := tags[0].Count, tags[0].Count
	for _, t := range tags[1:] {
		lo, hi = min(lo, t.Count), max(hi, t.Count)
	}
	for i, t := range tags {
		sizes[i] = s.FontSize(t.Count, lo, hi)
	}
	return sizes
}

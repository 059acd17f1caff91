package wordfreq

import (
	"errors"
	"math"
	"testing"
)

func TestNewScaleInvalid(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
	}{
		{"equal", 1, 1},
		{"minimum above maximum", 2, 1},
		{"zero", 0, 1},
		{"negative", 1, -1},
		{"very negative", math.MinInt32, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewScale(tt.lo, tt.hi); !errors.Is(err, ErrInvalidScale) {
				t.Errorf("NewScale(%v, %v) error = %v, want ErrInvalidScale", tt.lo, tt.hi, err)
			}
		})
	}
}

func TestFontSize(t *testing.T) {
	s, err := NewScale(10, 50)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		count, lo, hi int
		want          float64
	}{
		{1, 1, 5, 10},
		{5, 1, 5, 50},
		{3, 1, 5, 30},
		{7, 7, 7, 50},
		{9, 1, 5, 50},
	}
	for _, tt := range tests {
		if got := s.FontSize(tt.count, tt.lo, tt.hi); got != tt.want {
			t.Errorf("FontSize(%d, %d, %d) = %v, want %v", tt.count, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestFontSizes(t *testing.T) {
	s, _ := NewScale(12, 72)
	f, _ := Count([]string{"1", "2", "2"})
	tags := f.Tags(0)
	sizes := s.FontSizes(tags)
	if tags[0].Label != "2" || sizes[0] != 72 || sizes[1] != 12 {
		t.Errorf("tags %v got sizes %v", tags, sizes)
	}
	if got := s.FontSizes(nil); len(got) != 0 {
		t.Errorf("FontSizes(nil) = %v", got)
	}
}

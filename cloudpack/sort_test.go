package cloudpack

import (
	"errors"
	"slices"
	"testing"
)

func TestResolveOrdering(t *testing.T) {
	for _, name := range Orderings {
		if _, err := ResolveOrdering(name); err != nil {
			t.Errorf("ResolveOrdering(%q): %v", name, err)
		}
	}
	if fn, _ := ResolveOrdering("input"); fn != nil {
		t.Error("input ordering should resolve to nil")
	}
	if _, err := ResolveOrdering("random"); !errors.Is(err, ErrUnknownOrdering) {
		t.Errorf("error = %v, want ErrUnknownOrdering", err)
	}
}

func TestSortFuncs(t *testing.T) {
	sizes := []Size{NewSizeID(0, 10, 2), NewSizeID(1, 3, 30), NewSizeID(2, 8, 8)}
	tests := []struct {
		name string
		fn   SortFunc
		want []int
	}{
		{"area", SortArea, []int{1, 2, 0}},
		{"height", SortHeight, []int{1, 2, 0}},
		{"width", SortWidth, []int{0, 2, 1}},
		{"maxside", SortMaxSide, []int{1, 0, 2}},
		{"perimeter", SortPerimeter, []int{1, 2, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Clone(sizes)
			slices.SortStableFunc(got, tt.fn)
			ids := make([]int, len(got))
			for i, s := range got {
				ids[i] = s.ID
			}
			if !slices.Equal(ids, tt.want) {
				t.Errorf("order = %v, want %v", ids, tt.want)
			}
		})
	}
}

func TestPlaceAllReverse(t *testing.T) {
	packer := NewPacker(NewPoint(0, 0))
	packer.Sorter(nil, true)
	placed, err := packer.PlaceAll(NewSizeID(1, 4, 4), NewSizeID(2, 6, 6))
	if err != nil {
		t.Fatal(err)
	}
	if placed[0].ID != 2 || placed[1].ID != 1 {
		t.Errorf("ids = %d, %d, want 2, 1", placed[0].ID, placed[1].ID)
	}
}

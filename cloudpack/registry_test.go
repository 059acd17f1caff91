package cloudpack

import (
	"math/rand"
	"testing"
)

func TestRegistryOverlapsAny(t *testing.T) {
	reg := NewRegistry(8)
	if reg.OverlapsAny(NewRect(0, 0, 5, 5)) {
		t.Fatal("empty registry reported an overlap")
	}
	reg.Append(NewRect(0, 0, 10, 10))
	reg.Append(NewRect(-30, -30, 5, 40))

	tests := []struct {
		name      string
		candidate Rect
		want      bool
	}{
		{"inside first", NewRect(3, 3, 2, 2), true},
		{"edge of first", NewRect(10, 0, 10, 10), false},
		{"corner of first", NewRect(-4, -4, 4, 4), false},
		{"inside second", NewRect(-29, 0, 1, 1), true},
		{"between", NewRect(-25, -10, 25, 5), false},
		{"covers both", NewRect(-100, -100, 200, 200), true},
		{"far away", NewRect(500, 500, 10, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reg.OverlapsAny(tt.candidate); got != tt.want {
				t.Errorf("OverlapsAny(%s) = %v, want %v", tt.candidate.String(), got, tt.want)
			}
		})
	}
}

func TestRegistryMatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for _, cell := range []int{1, 5, 32, 1000} {
		reg := NewRegistry(cell)
		var all []Rect
		for i := 0; i < 150; i++ {
			r := NewRect(rng.Intn(400)-200, rng.Intn(400)-200, rng.Intn(40)+1, rng.Intn(40)+1)
			reg.Append(r)
			all = append(all, r)
		}
		for i := 0; i < 2000; i++ {
			candidate := NewRect(rng.Intn(500)-250, rng.Intn(500)-250, rng.Intn(60)+1, rng.Intn(60)+1)
			want := false
			for _, r := range all {
				if r.Intersects(candidate) {
					want = true
					break
				}
			}
			if got := reg.OverlapsAny(candidate); got != want {
				t.Fatalf("cell %d: OverlapsAny(%s) = %v, linear scan says %v", cell, candidate.String(), got, want)
			}
		}
	}
}

func TestRegistryBookkeeping(t *testing.T) {
	reg := NewRegistry(0)
	reg.Append(NewRect(0, 0, 4, 5))
	reg.Append(NewRect(10, -2, 2, 2))
	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reg.Len())
	}
	if reg.UsedArea() != 24 {
		t.Errorf("UsedArea() = %d, want 24", reg.UsedArea())
	}
	if want := NewRectLTRB(0, -2, 12, 5); !reg.Bounds().Eq(want) {
		t.Errorf("Bounds() = %s, want %s", reg.Bounds().String(), want.String())
	}
	if !reg.Rects()[1].Eq(NewRect(10, -2, 2, 2)) {
		t.Error("insertion order not kept")
	}

	reg.Reset()
	if reg.Len() != 0 || reg.UsedArea() != 0 || !reg.Bounds().IsEmpty() {
		t.Error("Reset left state behind")
	}
	if reg.OverlapsAny(NewRect(0, 0, 4, 5)) {
		t.Error("overlap reported after Reset")
	}
}

func TestBoundsTracker(t *testing.T) {
	var b Bounds
	if !b.Empty() || !b.Rect().IsEmpty() {
		t.Fatal("zero Bounds is not empty")
	}
	b.Add(NewRect(5, 5, 1, 1))
	if got := b.Rect(); !got.Eq(NewRect(5, 5, 1, 1)) {
		t.Errorf("Rect() = %s", got.String())
	}
	b.Add(NewRect(-5, 8, 3, 3))
	if got, want := b.Rect(), NewRectLTRB(-5, 5, 6, 11); !got.Eq(want) {
		t.Errorf("Rect() = %s, want %s", got.String(), want.String())
	}
}

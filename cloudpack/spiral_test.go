package cloudpack

import (
	"math"
	"testing"
)

func TestSpiralStartsAtCenter(t *testing.T) {
	for _, c := range []Point{NewPoint(0, 0), NewPoint(250, -40)} {
		spiral := NewSpiral(c)
		if p := spiral.Next(); !p.Eq(c) {
			t.Errorf("first point = %s, want %s", p.String(), c.String())
		}
		if p := spiral.Next(); math.Hypot(float64(p.X-c.X), float64(p.Y-c.Y)) > 1 {
			t.Errorf("second point %s is too far from %s", p.String(), c.String())
		}
	}
}

func TestSpiralExtentsGrow(t *testing.T) {
	spiral := NewSpiral(NewPoint(0, 0))
	var maxX, maxY int
	for i := 0; i < 20000; i++ {
		p := spiral.Next()
		nx, ny := max(maxX, abs(p.X)), max(maxY, abs(p.Y))
		if nx < maxX || ny < maxY {
			t.Fatalf("extent shrank at point %d", i)
		}
		maxX, maxY = nx, ny
	}
	if maxX == 0 || maxY == 0 {
		t.Fatalf("spiral did not move away from the center: %d, %d", maxX, maxY)
	}
}

func TestSpiralSymmetry(t *testing.T) {
	spiral := NewSpiral(NewPoint(0, 0))
	var minX, maxX, minY, maxY int
	for i := 0; i < 20000; i++ {
		p := spiral.Next()
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	if d := abs(abs(minX) - maxX); d > 5 {
		t.Errorf("x extents differ by %d: %d..%d", d, minX, maxX)
	}
	if d := abs(abs(minY) - maxY); d > 5 {
		t.Errorf("y extents differ by %d: %d..%d", d, minY, maxY)
	}
}

func TestSpiralRadiusGrows(t *testing.T) {
	spiral := NewSpiral(NewPoint(0, 0))
	const turn = 63 // points per revolution at DefaultStep
	prev := 0.0
	for rev := 0; rev < 50; rev++ {
		farthest := 0.0
		for i := 0; i < turn; i++ {
			p := spiral.Next()
			farthest = math.Max(farthest, math.Hypot(float64(p.X), float64(p.Y)))
		}
		if farthest+1 < prev {
			t.Fatalf("revolution %d reached %.1f, previous reached %.1f", rev, farthest, prev)
		}
		prev = farthest
	}
}

func TestSpiralDeterministic(t *testing.T) {
	a := NewSpiral(NewPoint(3, 4))
	b := NewSpiral(NewPoint(3, 4))
	for i := 0; i < 5000; i++ {
		if pa, pb := a.Next(), b.Next(); !pa.Eq(pb) {
			t.Fatalf("point %d differs: %s vs %s", i, pa.String(), pb.String())
		}
	}
	if a.Taken() != 5000 {
		t.Errorf("Taken() = %d, want 5000", a.Taken())
	}
}

func TestSpiralManyCalls(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long spiral walk in short mode")
	}
	spiral := NewSpiral(NewPoint(0, 0))
	for i := 0; i < 10_000_000; i++ {
		spiral.Next()
	}
}

func BenchmarkSpiralNext(b *testing.B) {
	spiral := NewSpiral(NewPoint(0, 0))
	for i := 0; i < b.N; i++ {
		spiral.Next()
	}
}

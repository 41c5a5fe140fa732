package geom

import "testing"

func TestDirectionAxisIsZ(t *testing.T) {
	cases := map[Direction]bool{North: true, South: true, East: false, West: false}
	for d, want := range cases {
		if got := d.AxisIsZ(); got != want {
			t.Errorf("%v.AxisIsZ() = %v, want %v", d, got, want)
		}
	}
}

func TestDirectionLeftRight(t *testing.T) {
	if North.Left() != West || North.Right() != East {
		t.Fatal("North left/right mismatch")
	}
	if South.Left() != West || South.Right() != East {
		t.Fatal("South left/right mismatch")
	}
	if West.Left() != North || West.Right() != South {
		t.Fatal("West left/right mismatch")
	}
	if East.Left() != North || East.Right() != South {
		t.Fatal("East left/right mismatch")
	}
}

func TestBoxIntersects(t *testing.T) {
	a := Box{0, 0, 0, 9, 9, 9}
	touching := Box{10, 0, 0, 19, 9, 9}
	overlapping := Box{9, 9, 9, 18, 18, 18}

	if a.Intersects(touching) {
		t.Fatal("adjacent boxes (gap 0, abutting at max+1) should not intersect")
	}
	if !a.Intersects(overlapping) {
		t.Fatal("boxes sharing a corner should intersect")
	}
}

func TestBoxCenterFloorsNegativeCoordinates(t *testing.T) {
	// min+max = -31 on Z: the midpoint floors to -16, not the -15 a
	// truncating division would give.
	b := Box{MinX: 0, MinY: 0, MinZ: -20, MaxX: 10, MaxY: 10, MaxZ: -11}
	_, _, z := b.Center()
	if z != -16 {
		t.Fatalf("Center() z = %d, want -16", z)
	}
}

func TestMakeStartFootprintIsSquare(t *testing.T) {
	// For the fixed 19x10x19 start piece, width and depth wind up on the
	// same 19x19 footprint regardless of orientation.
	for _, dir := range []Direction{North, East, South, West} {
		start := MakeStart(2, 64, 2, dir, 19, 10, 19)
		spanX := start.MaxX - start.MinX
		spanZ := start.MaxZ - start.MinZ
		if spanX != 18 || spanZ != 18 {
			t.Fatalf("dir %v: start footprint span = (%d,%d), want (18,18)", dir, spanX, spanZ)
		}
	}
}

func TestOrientNorthSouthSymmetry(t *testing.T) {
	n := Orient(0, 64, 0, -8, -3, 0, 19, 10, 19, North)
	s := Orient(0, 64, 0, -8, -3, 0, 19, 10, 19, South)
	if n.MaxZ != 0 || n.MinZ != -18 {
		t.Fatalf("north box z-range = [%d,%d], want [-18,0]", n.MinZ, n.MaxZ)
	}
	if s.MinZ != 0 || s.MaxZ != 18 {
		t.Fatalf("south box z-range = [%d,%d], want [0,18]", s.MinZ, s.MaxZ)
	}
}

package types

import (
	"math"
	"math/rand"
	"testing"
)

func randomBox(rng *rand.Rand) AABB {
	return NewAABB(RandomVec3(rng, -10, 10), RandomVec3(rng, -10, 10))
}

func TestSurroundingBoxIsCommutativeAndAssociative(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		a, b, c := randomBox(rng), randomBox(rng), randomBox(rng)

		if SurroundingBox(a, b) != SurroundingBox(b, a) {
			t.Fatalf("[iter %d] expected union to be commutative for %v, %v", i, a, b)
		}

		left := SurroundingBox(a, SurroundingBox(b, c))
		right := SurroundingBox(SurroundingBox(a, b), c)
		if left != right {
			t.Fatalf("[iter %d] expected union to be associative; got %v and %v", i, left, right)
		}
	}
}

func TestNewAABBOrdersCorners(t *testing.T) {
	box := NewAABB(XYZ(1, -2, 3), XYZ(-1, 2, -3))
	if box.Min != XYZ(-1, -2, -3) || box.Max != XYZ(1, 2, 3) {
		t.Fatalf("expected corners to be ordered; got %v", box)
	}
}

func TestAABBHit(t *testing.T) {
	box := NewAABB(XYZ(-1, -1, -1), XYZ(1, 1, 1))

	type spec struct {
		ray    Ray
		expHit bool
	}
	specs := []spec{
		{NewRay(XYZ(0, 0, -5), XYZ(0, 0, 1), 0), true},
		{NewRay(XYZ(0, 0, -5), XYZ(0, 0, -1), 0), false},
		{NewRay(XYZ(2, 0, -5), XYZ(0, 0, 1), 0), false},
		{NewRay(XYZ(-5, -5, -5), XYZ(1, 1, 1), 0), true},
		// parallel to the x and y slabs while inside them
		{NewRay(XYZ(0.5, 0.5, -5), XYZ(0, 0, 1), 0), true},
		// parallel to a slab while outside it
		{NewRay(XYZ(0.5, 1.5, -5), XYZ(0, 0, 1), 0), false},
	}

	for index, s := range specs {
		if got := box.Hit(s.ray, 1e-4, math.Inf(1)); got != s.expHit {
			t.Fatalf("[spec %d] expected hit to be %t; got %t", index, s.expHit, got)
		}
	}
}

func TestAABBPadFlatBox(t *testing.T) {
	box := NewAABB(XYZ(0, 5, 0), XYZ(1, 5, 1)).Pad(2e-4)
	if box.Max[1]-box.Min[1] < 2e-4-1e-12 {
		t.Fatalf("expected flat axis to be padded; got %v", box)
	}
	if box.Min[0] != 0 || box.Max[0] != 1 {
		t.Fatalf("expected non-flat axes to be untouched; got %v", box)
	}

	r := NewRay(XYZ(0.5, 0, 0.5), XYZ(0, 1, 0), 0)
	if !box.Hit(r, 1e-4, math.Inf(1)) {
		t.Fatal("expected vertical ray to hit padded box")
	}
}

func TestAABBCorners(t *testing.T) {
	box := NewAABB(XYZ(0, 0, 0), XYZ(1, 2, 3))
	var enclosing AABB
	for i, c := range box.Corners() {
		if i == 0 {
			enclosing = AABB{c, c}
			continue
		}
		enclosing = SurroundingBox(enclosing, AABB{c, c})
	}
	if enclosing != box {
		t.Fatalf("expected corners to span %v; got %v", box, enclosing)
	}
}

func TestONBIsOrthonormal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		n := RandomUnitVector(rng)
		o := NewONB(n)

		for _, d := range []float64{o.U.Dot(o.V), o.V.Dot(o.W), o.U.Dot(o.W)} {
			if math.Abs(d) > 1e-9 {
				t.Fatalf("[iter %d] expected orthogonal axes; got dot %f", i, d)
			}
		}
		for _, l := range []float64{o.U.Len(), o.V.Len(), o.W.Len()} {
			if math.Abs(l-1) > 1e-9 {
				t.Fatalf("[iter %d] expected unit axes; got len %f", i, l)
			}
		}
		if o.Local(XYZ(0, 0, 1)).Sub(n).Len() > 1e-9 {
			t.Fatalf("[iter %d] expected local z to map to the normal", i)
		}
	}
}

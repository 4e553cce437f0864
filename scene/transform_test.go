package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/achilleasa/go-mctrace/types"
)

func randomRayTowards(rng *rand.Rand, target types.Vec3, spread float64) types.Ray {
	origin := types.RandomUnitVector(rng).Mul(20).Add(target)
	aim := target.Add(types.RandomVec3(rng, -spread, spread))
	return types.NewRay(origin, aim.Sub(origin), 0)
}

func assertSameHit(t *testing.T, iter int, rec1 HitRecord, ok1 bool, rec2 HitRecord, ok2 bool) {
	t.Helper()
	if ok1 != ok2 {
		t.Fatalf("[iter %d] expected hit to be %t; got %t", iter, ok1, ok2)
	}
	if !ok1 {
		return
	}
	if math.Abs(rec1.T-rec2.T) > 1e-9 {
		t.Fatalf("[iter %d] expected t %f; got %f", iter, rec1.T, rec2.T)
	}
	if !vecEq(rec1.Point, rec2.Point, 1e-9) {
		t.Fatalf("[iter %d] expected point %v; got %v", iter, rec1.Point, rec2.Point)
	}
	if !vecEq(rec1.Normal, rec2.Normal, 1e-9) {
		t.Fatalf("[iter %d] expected normal %v; got %v", iter, rec1.Normal, rec2.Normal)
	}
	if rec1.FrontFace != rec2.FrontFace {
		t.Fatalf("[iter %d] expected front face %t; got %t", iter, rec1.FrontFace, rec2.FrontFace)
	}
	if rec1.Material != rec2.Material {
		t.Fatalf("[iter %d] expected same material", iter)
	}
}

func TestTranslateRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	shapes := []Hittable{
		NewSphere(types.XYZ(1, 2, 3), 1.5, NewLambertianColor(1, 1, 1)),
		NewBox(types.XYZ(0, 0, 0), types.XYZ(1, 2, 3), NewMetalColor(1, 1, 1, 0)),
	}

	for _, shape := range shapes {
		box, _ := shape.BoundingBox(0, 1)
		center := box.Centroid()
		for i := 0; i < 500; i++ {
			offset := types.RandomVec3(rng, -10, 10)
			moved := NewTranslate(NewTranslate(shape, offset), offset.Neg())
			r := randomRayTowards(rng, center, 2)

			rec1, ok1 := shape.Hit(r, 0.0001, math.Inf(1), rng)
			rec2, ok2 := moved.Hit(r, 0.0001, math.Inf(1), rng)
			assertSameHit(t, i, rec1, ok1, rec2, ok2)
		}
	}
}

func TestTranslateBoundingBox(t *testing.T) {
	s := NewSphere(types.XYZ(0, 0, 0), 1, nil)
	box, _ := NewTranslate(s, types.XYZ(5, 0, 0)).BoundingBox(0, 1)
	exp := types.NewAABB(types.XYZ(4, -1, -1), types.XYZ(6, 1, 1))
	if box != exp {
		t.Fatalf("expected box %v; got %v", exp, box)
	}
}

func TestRotateByZeroIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	shape := NewBox(types.XYZ(-1, -2, -3), types.XYZ(2, 1, 0), NewLambertianColor(1, 1, 1))
	rotations := []*Rotate{NewRotateX(shape, 0), NewRotateY(shape, 0), NewRotateZ(shape, 0)}

	for _, rot := range rotations {
		for i := 0; i < 500; i++ {
			r := randomRayTowards(rng, types.XYZ(0.5, -0.5, -1.5), 3)
			rec1, ok1 := shape.Hit(r, 0.0001, math.Inf(1), rng)
			rec2, ok2 := rot.Hit(r, 0.0001, math.Inf(1), rng)
			assertSameHit(t, i, rec1, ok1, rec2, ok2)
		}
	}
}

func TestRotateY(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	// A unit sphere at +x rotated 90 degrees about y ends up at -z.
	s := NewSphere(types.XYZ(5, 0, 0), 1, nil)
	rot := NewRotateY(s, 90)

	rec, ok := rot.Hit(types.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, -1), 0), 0.0001, math.Inf(1), rng)
	if !ok {
		t.Fatal("expected rotated sphere to be hit along -z")
	}
	if math.Abs(rec.T-4) > 1e-9 {
		t.Fatalf("expected t to be 4; got %f", rec.T)
	}
	if !vecEq(rec.Normal, types.XYZ(0, 0, 1), 1e-9) {
		t.Fatalf("expected world normal (0,0,1); got %v", rec.Normal)
	}
	if !rec.FrontFace {
		t.Fatal("expected front face hit")
	}

	box, ok := rot.BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected rotated sphere to be bounded")
	}
	if !vecEq(box.Centroid(), types.XYZ(0, 0, -5), 1e-9) {
		t.Fatalf("expected box centered at (0,0,-5); got %v", box.Centroid())
	}
}

func TestRotateBoundingBoxEnclosesShape(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	shape := NewBox(types.XYZ(0, 0, 0), types.XYZ(1, 2, 3), nil)

	for _, rot := range []*Rotate{NewRotateX(shape, 30), NewRotateY(shape, -45), NewRotateZ(shape, 120)} {
		box, _ := rot.BoundingBox(0, 1)
		for i := 0; i < 500; i++ {
			r := randomRayTowards(rng, box.Centroid(), 2)
			rec, ok := rot.Hit(r, 0.0001, math.Inf(1), rng)
			if !ok {
				continue
			}
			padded := types.NewAABB(box.Min.Sub(types.XYZ(1e-6, 1e-6, 1e-6)), box.Max.Add(types.XYZ(1e-6, 1e-6, 1e-6)))
			if types.MinVec3(padded.Min, rec.Point) != padded.Min || types.MaxVec3(padded.Max, rec.Point) != padded.Max {
				t.Fatalf("[iter %d] hit point %v outside rotated bounds %v", i, rec.Point, box)
			}
		}
	}
}

func TestRotateBoundingBoxFollowsTimeInterval(t *testing.T) {
	mat := NewLambertianColor(1, 1, 1)
	moving := NewMovingSphere(types.XYZ(0, 0, 0), types.XYZ(10, 0, 0), 0, 2, 1, mat)
	objects := []Hittable{
		NewRotateY(moving, 0),
		NewRotateZ(moving, 30),
		NewSphere(types.XYZ(-20, 0, 0), 1, mat),
	}

	box, ok := objects[0].BoundingBox(0, 2)
	if !ok || box.Max[0] < 11-1e-9 {
		t.Fatalf("expected box over [0, 2] to reach x=11; got %v", box)
	}

	rng := rand.New(rand.NewSource(23))
	bvh, err := BuildBvh(objects, 0, 2, rng, SplitRandomAxis)
	if err != nil {
		t.Fatal(err)
	}
	list := NewHittableList(objects...)

	for i := 0; i < 1000; i++ {
		time := types.RandomRange(rng, 0, 2)
		target := types.XYZ(5*time, 0, 0)
		r := randomRayTowards(rng, target, 2)
		r = types.NewRay(r.Origin, r.Direction, time)

		rec1, ok1 := list.Hit(r, 0.0001, math.Inf(1), rng)
		rec2, ok2 := bvh.Hit(r, 0.0001, math.Inf(1), rng)
		assertSameHit(t, i, rec1, ok1, rec2, ok2)
	}

	// A ray through the sphere's final position at the end of the interval.
	r := types.NewRay(types.XYZ(10, 0, -5), types.XYZ(0, 0, 1), 2)
	if _, ok := bvh.Hit(r, 0.0001, math.Inf(1), rng); !ok {
		t.Fatal("expected BVH to report the hit at time 2")
	}
}

func TestTransformedLightSampling(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	rect := NewXZRect(-1, 1, -1, 1, 0, nil)
	light := NewTranslate(NewRotateY(rect, 45), types.XYZ(0, 5, 0))
	origin := types.XYZ(0.3, 0, -0.2)

	for i := 0; i < 500; i++ {
		dir := light.Random(origin, rng)
		if light.PdfValue(origin, dir, rng) <= 0 {
			t.Fatalf("[iter %d] expected sampled direction %v to have positive density", i, dir)
		}
	}
}

func TestFlipFace(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rect := NewXZRect(0, 1, 0, 1, 5, nil)
	flipped := NewFlipFace(rect)
	r := types.NewRay(types.XYZ(0.5, 0, 0.5), types.XYZ(0, 1, 0), 0)

	rec1, _ := rect.Hit(r, 0.0001, math.Inf(1), rng)
	rec2, ok := flipped.Hit(r, 0.0001, math.Inf(1), rng)
	if !ok {
		t.Fatal("expected flipped rect to be hit")
	}
	if rec1.FrontFace == rec2.FrontFace {
		t.Fatal("expected front face flag to be inverted")
	}
	if rec1.Normal != rec2.Normal || rec1.T != rec2.T {
		t.Fatal("expected geometry to be unchanged")
	}
	if flipped.PdfValue(r.Origin, r.Direction, rng) != 25 {
		t.Fatal("expected flipped rect to forward light sampling")
	}
}

func TestConstantMediumDenseScatters(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	boundary := NewSphere(types.XYZ(0, 0, 0), 100, nil)
	medium := NewConstantMediumWithPhase(boundary, 1e6, NewIsotropic(nil))

	const trials = 1000
	scattered := 0
	for i := 0; i < trials; i++ {
		origin := types.RandomUnitVector(rng).Mul(400)
		aim := types.RandomVec3(rng, -50, 50)
		r := types.NewRay(origin, aim.Sub(origin), 0)
		rec, ok := medium.Hit(r, 0.0001, math.Inf(1), rng)
		if !ok {
			continue
		}
		scattered++
		if rec.Point.Len() > 100+1e-6 {
			t.Fatalf("[iter %d] expected scatter point inside medium; got %v", i, rec.Point)
		}
		if rec.Material != medium.PhaseFunction || !rec.FrontFace || rec.Normal != types.XYZ(1, 0, 0) {
			t.Fatalf("[iter %d] unexpected medium hit record %+v", i, rec)
		}
	}

	if scattered < trials*99/100 {
		t.Fatalf("expected nearly all rays to scatter inside dense medium; got %d/%d", scattered, trials)
	}
}

func TestConstantMediumThinRarelyScatters(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	medium := NewConstantMediumWithPhase(NewSphere(types.XYZ(0, 0, 0), 1, nil), 1e-6, NewIsotropic(nil))

	scattered := 0
	for i := 0; i < 1000; i++ {
		r := types.NewRay(types.XYZ(0, 0, -5), types.XYZ(0, 0, 1), 0)
		if _, ok := medium.Hit(r, 0.0001, math.Inf(1), rng); ok {
			scattered++
		}
	}
	if scattered > 5 {
		t.Fatalf("expected almost no scattering in a thin medium; got %d", scattered)
	}
}

func TestConstantMediumRayStartingInside(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	medium := NewConstantMediumWithPhase(NewSphere(types.XYZ(0, 0, 0), 10, nil), 1e6, NewIsotropic(nil))

	rec, ok := medium.Hit(types.NewRay(types.XYZ(0, 0, 0), types.XYZ(1, 0, 0), 0), 0.0001, math.Inf(1), rng)
	if !ok {
		t.Fatal("expected ray starting inside dense medium to scatter")
	}
	if rec.T < 0.0001 || rec.T > 0.01 {
		t.Fatalf("expected scatter close to the ray origin; got t=%f", rec.T)
	}
}

// A source whose generator always yields 0 from Float64.
type zeroSource struct{}

func (zeroSource) Int63() int64 { return 0 }
func (zeroSource) Seed(int64)   {}

func TestConstantMediumWithoutDensityNeverScatters(t *testing.T) {
	rng := rand.New(zeroSource{})
	solid := NewSphere(types.XYZ(0, 0, 5), 1, NewLambertianColor(1, 1, 1))
	r := types.NewRay(types.XYZ(0, 0, -5), types.XYZ(0, 0, 1), 0)

	type spec struct {
		density float64
	}
	specs := []spec{{0}, {-1}, {math.NaN()}}

	for index, s := range specs {
		medium := NewConstantMedium(NewSphere(types.XYZ(0, 0, 0), 2, nil), s.density, nil)
		if _, ok := medium.Hit(r, 0.0001, math.Inf(1), rng); ok {
			t.Fatalf("[spec %d] expected medium with density %f not to scatter", index, s.density)
		}

		// The medium must not shrink the search window of later members.
		rec, ok := NewHittableList(medium, solid).Hit(r, 0.0001, math.Inf(1), rng)
		if !ok || math.Abs(rec.T-9) > 1e-9 {
			t.Fatalf("[spec %d] expected to hit the solid sphere at t=9; got %t, %f", index, ok, rec.T)
		}
	}
}

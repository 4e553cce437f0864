package types

// A ray with an origin, a direction and the time at which it was sampled.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float64
}

// Create a new ray.
func NewRay(origin, dir Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: dir, Time: time}
}

// Get the point at parameter t.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

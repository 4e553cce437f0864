package types

import "math"

// An axis-aligned bounding box. Min <= Max component-wise.
type AABB struct {
	Min Vec3
	Max Vec3
}

// Create a bounding box from two arbitrary corners.
func NewAABB(a, b Vec3) AABB {
	return AABB{Min: MinVec3(a, b), Max: MaxVec3(a, b)}
}

// Slab test. Zero direction components yield infinite slab bounds which
// still compare correctly so they need no special casing.
func (b AABB) Hit(r Ray, tMin, tMax float64) bool {
	for a := 0; a < 3; a++ {
		invD := 1.0 / r.Direction[a]
		t0 := (b.Min[a] - r.Origin[a]) * invD
		t1 := (b.Max[a] - r.Origin[a]) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// Get the smallest box enclosing both boxes.
func SurroundingBox(b0, b1 AABB) AABB {
	return AABB{Min: MinVec3(b0.Min, b1.Min), Max: MaxVec3(b0.Max, b1.Max)}
}

// Widen any axis thinner than eps to at least eps.
func (b AABB) Pad(eps float64) AABB {
	for a := 0; a < 3; a++ {
		if b.Max[a]-b.Min[a] < eps {
			b.Min[a] -= eps / 2
			b.Max[a] += eps / 2
		}
	}
	return b
}

// Translate box by offset.
func (b AABB) Translate(offset Vec3) AABB {
	return AABB{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}

// Get the 8 box corners.
func (b AABB) Corners() [8]Vec3 {
	var out [8]Vec3
	for i := 0; i < 8; i++ {
		out[i] = Vec3{
			pick(i&1 != 0, b.Max[0], b.Min[0]),
			pick(i&2 != 0, b.Max[1], b.Min[1]),
			pick(i&4 != 0, b.Max[2], b.Min[2]),
		}
	}
	return out
}

func (b AABB) Centroid() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Get the axis with the largest extent.
func (b AABB) LongestAxis() Axis {
	side := b.Max.Sub(b.Min)
	if side[0] > side[1] && side[0] > side[2] {
		return AxisX
	} else if side[1] > side[2] {
		return AxisY
	}
	return AxisZ
}

func (b AABB) SurfaceArea() float64 {
	side := b.Max.Sub(b.Min)
	return 2 * (side[0]*side[1] + side[1]*side[2] + side[0]*side[2])
}

// Returns true if the box has finite extents.
func (b AABB) IsFinite() bool {
	return b.Min.IsFinite() && b.Max.IsFinite() && !math.IsNaN(b.SurfaceArea())
}

func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}

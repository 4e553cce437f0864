package types

import "math"

// An orthonormal basis with w aligned to a surface normal.
type ONB struct {
	U, V, W Vec3
}

// Build a basis around n.
func NewONB(n Vec3) ONB {
	w := n.Normalize()
	a := Vec3{1, 0, 0}
	if math.Abs(w[0]) > 0.9 {
		a = Vec3{0, 1, 0}
	}
	v := w.Cross(a).Normalize()
	u := w.Cross(v)
	return ONB{U: u, V: v, W: w}
}

// Map local coordinates to world space.
func (o ONB) Local(a Vec3) Vec3 {
	return o.U.Mul(a[0]).Add(o.V.Mul(a[1])).Add(o.W.Mul(a[2]))
}

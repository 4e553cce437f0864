package scene

import (
	"math"
	"math/rand"

	"github.com/achilleasa/go-mctrace/types"
)

// Determinant threshold below which a ray is treated as parallel to a triangle.
const triangleEpsilon = 1e-10

// Triangle is a single mesh face. Vertex normals and uv coordinates are
// optional; when Normals are all zero the geometric normal is used and when
// UVs are all zero the barycentric coordinates are reported instead.
type Triangle struct {
	Vertices [3]types.Vec3
	Normals  [3]types.Vec3
	UVs      [3][2]float64
	Material Material

	edge1, edge2 types.Vec3
	normal       types.Vec3
	area         float64
	smooth       bool
	textured     bool
}

// Create a flat shaded triangle. The outward normal follows the
// counter-clockwise winding of v0, v1, v2.
func NewTriangle(v0, v1, v2 types.Vec3, mat Material) *Triangle {
	return NewMeshTriangle([3]types.Vec3{v0, v1, v2}, [3]types.Vec3{}, [3][2]float64{}, mat)
}

// Create a triangle with optional per-vertex normals and uv coordinates.
func NewMeshTriangle(vertices, normals [3]types.Vec3, uvs [3][2]float64, mat Material) *Triangle {
	tri := &Triangle{
		Vertices: vertices,
		Normals:  normals,
		UVs:      uvs,
		Material: mat,
		edge1:    vertices[1].Sub(vertices[0]),
		edge2:    vertices[2].Sub(vertices[0]),
		smooth:   normals != [3]types.Vec3{},
		textured: uvs != [3][2]float64{},
	}
	cross := tri.edge1.Cross(tri.edge2)
	tri.normal = cross.Normalize()
	tri.area = 0.5 * cross.Len()
	return tri
}

func (tri *Triangle) Area() float64 {
	return tri.area
}

// Moller-Trumbore intersection.
func (tri *Triangle) Hit(r types.Ray, tMin, tMax float64, _ *rand.Rand) (HitRecord, bool) {
	h := r.Direction.Cross(tri.edge2)
	a := tri.edge1.Dot(h)
	if math.Abs(a) < triangleEpsilon {
		return HitRecord{}, false
	}

	f := 1.0 / a
	s := r.Origin.Sub(tri.Vertices[0])
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return HitRecord{}, false
	}

	q := s.Cross(tri.edge1)
	v := f * r.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return HitRecord{}, false
	}

	t := f * tri.edge2.Dot(q)
	if !(t > tMin && t < tMax) {
		return HitRecord{}, false
	}

	w := 1 - u - v
	rec := HitRecord{
		T:        t,
		U:        u,
		V:        v,
		Point:    r.At(t),
		Material: tri.Material,
	}
	if tri.textured {
		rec.U = w*tri.UVs[0][0] + u*tri.UVs[1][0] + v*tri.UVs[2][0]
		rec.V = w*tri.UVs[0][1] + u*tri.UVs[1][1] + v*tri.UVs[2][1]
	}

	outward := tri.normal
	if tri.smooth {
		shading := tri.Normals[0].Mul(w).Add(tri.Normals[1].Mul(u)).Add(tri.Normals[2].Mul(v)).Normalize()
		if shading != (types.Vec3{}) {
			outward = shading
		}
	}
	rec.SetFaceNormal(r, outward)
	return rec, true
}

func (tri *Triangle) BoundingBox(_, _ float64) (types.AABB, bool) {
	v := tri.Vertices
	return types.AABB{
		Min: types.MinVec3(v[0], types.MinVec3(v[1], v[2])),
		Max: types.MaxVec3(v[0], types.MaxVec3(v[1], v[2])),
	}.Pad(rectPadding), true
}

// Area light density: distance² / (|cos θ| · area).
func (tri *Triangle) PdfValue(origin, dir types.Vec3, rng *rand.Rand) float64 {
	rec, ok := tri.Hit(types.NewRay(origin, dir, 0), pdfProbeEpsilon, math.Inf(1), rng)
	if !ok {
		return 0
	}

	distSq := rec.T * rec.T * dir.LenSq()
	cosine := math.Abs(dir.Dot(tri.normal) / dir.Len())
	return distSq / (cosine * tri.area)
}

// Direction from origin to a uniformly sampled point on the triangle.
func (tri *Triangle) Random(origin types.Vec3, rng *rand.Rand) types.Vec3 {
	u, v := rng.Float64(), rng.Float64()
	if u+v > 1 {
		u, v = 1-u, 1-v
	}
	p := tri.Vertices[0].Add(tri.edge1.Mul(u)).Add(tri.edge2.Mul(v))
	return p.Sub(origin)
}

func (*Triangle) hittable() {}

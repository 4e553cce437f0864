package reader

import (
	"github.com/achilleasa/go-mctrace/asset/texture"
	"github.com/achilleasa/go-mctrace/types"
)

// A triangular face.
type Face struct {
	Vertices [3]types.Vec3
	Normals  [3]types.Vec3
	UVs      [3][2]float64

	// Index into the scene material list.
	Material int
}

// A mesh is comprised of a list of faces
type Mesh struct {
	Name  string
	Faces []Face
}

// A mesh instance reuses the geometry of a mesh and places it in the world
// using a rotation followed by a translation.
type MeshInstance struct {
	Mesh int

	// Rotation angles in degrees, applied in X, Y, Z order.
	Rotation    types.Vec3
	Translation types.Vec3
}

// A material consists of a set of color and scalar parameters that define the
// surface characteristics. In addition, it may define textures to modulate
// the diffuse and emissive colors.
type Material struct {
	Name string

	// Diffuse/Albedo color.
	Kd types.Color

	// Specular color.
	Ks types.Color

	// Emissive color.
	Ke types.Color

	// Index of refraction.
	Ni float64

	// Roughness.
	Nr float64

	// Textures for modulating above parameters.
	KdTex *texture.Texture
	KeTex *texture.Texture
}

// Camera settings
type Camera struct {
	FOV  float64
	Eye  types.Vec3
	Look types.Vec3
	Up   types.Vec3
}

// The parsed scene contains all the scene elements that were loaded by a reader.
type Scene struct {
	Meshes    []*Mesh
	Instances []*MeshInstance
	Materials []*Material
	Camera    Camera
}

func newScene() *Scene {
	return &Scene{
		Camera: Camera{
			FOV:  45.0,
			Eye:  types.Vec3{0, 0, 0},
			Look: types.Vec3{0, 0, -1},
			Up:   types.Vec3{0, 1, 0},
		},
	}
}

func newMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

func newMaterial(name string) *Material {
	return &Material{Name: name}
}

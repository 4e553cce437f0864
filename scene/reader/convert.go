package reader

import (
	"math/rand"

	"github.com/achilleasa/go-mctrace/scene"
	sceneTexture "github.com/achilleasa/go-mctrace/scene/texture"
	"github.com/achilleasa/go-mctrace/types"
)

// Index of refraction above which a material is treated as a dielectric.
const minDielectricIOR = 1.0

// Map a parsed material to the closest scene material. Emissive materials
// become diffuse lights, materials with an index of refraction become
// dielectrics and materials with a specular color become metals using Nr as
// the fuzz factor. Everything else is lambertian.
func (m *Material) material() scene.Material {
	switch {
	case m.KeTex != nil:
		return scene.NewDiffuseLight(sceneTexture.NewImageFromTexture(m.KeTex))
	case m.Ke != types.Black:
		return scene.NewDiffuseLight(&sceneTexture.SolidColor{Color: m.Ke})
	case m.Ni > minDielectricIOR:
		return scene.NewDielectric(m.Ni)
	case m.Ks != types.Black:
		return scene.NewMetal(&sceneTexture.SolidColor{Color: m.Ks}, m.Nr)
	case m.KdTex != nil:
		return scene.NewLambertian(sceneTexture.NewImageFromTexture(m.KdTex))
	}
	return scene.NewLambertian(&sceneTexture.SolidColor{Color: m.Kd})
}

// Returns true if surfaces using this material emit light.
func (m *Material) IsEmissive() bool {
	return m.KeTex != nil || m.Ke != types.Black
}

// Get the camera configuration defined by the scene.
func (sc *Scene) CameraConfig() scene.CameraConfig {
	return scene.CameraConfig{
		LookFrom:  sc.Camera.Eye,
		LookAt:    sc.Camera.Look,
		Up:        sc.Camera.Up,
		VFov:      sc.Camera.FOV,
		FocusDist: sc.Camera.Look.Sub(sc.Camera.Eye).Len(),
	}
}

// Convert the parsed scene into hittables. Each mesh is wrapped in its own
// BVH which is shared by all instances of the mesh. Emissive faces are also
// returned as a separate list of light sampling targets.
func (sc *Scene) Hittables(time0, time1 float64, rng *rand.Rand, split scene.SplitStrategy) (objects, lights []scene.Hittable, err error) {
	materials := make([]scene.Material, len(sc.Materials))
	for idx, mat := range sc.Materials {
		materials[idx] = mat.material()
	}

	meshes := make([]scene.Hittable, len(sc.Meshes))
	for _, inst := range sc.Instances {
		mesh := sc.Meshes[inst.Mesh]
		if len(mesh.Faces) == 0 {
			continue
		}

		if meshes[inst.Mesh] == nil {
			triangles := make([]scene.Hittable, len(mesh.Faces))
			for idx, face := range mesh.Faces {
				triangles[idx] = scene.NewMeshTriangle(face.Vertices, face.Normals, face.UVs, materials[face.Material])
			}
			if meshes[inst.Mesh], err = scene.BuildBvh(triangles, time0, time1, rng, split); err != nil {
				return nil, nil, err
			}
		}
		objects = append(objects, inst.place(meshes[inst.Mesh]))

		for _, face := range mesh.Faces {
			if sc.Materials[face.Material].IsEmissive() {
				lights = append(lights, inst.place(scene.NewTriangle(face.Vertices[0], face.Vertices[1], face.Vertices[2], nil)))
			}
		}
	}

	return objects, lights, nil
}

// Apply the instance rotation and translation to obj.
func (inst *MeshInstance) place(obj scene.Hittable) scene.Hittable {
	if inst.Rotation[0] != 0 {
		obj = scene.NewRotateX(obj, inst.Rotation[0])
	}
	if inst.Rotation[1] != 0 {
		obj = scene.NewRotateY(obj, inst.Rotation[1])
	}
	if inst.Rotation[2] != 0 {
		obj = scene.NewRotateZ(obj, inst.Rotation[2])
	}
	if inst.Translation != (types.Vec3{}) {
		obj = scene.NewTranslate(obj, inst.Translation)
	}
	return obj
}

package builder

import (
	"github.com/achilleasa/go-mctrace/scene"
	"github.com/achilleasa/go-mctrace/scene/texture"
	"github.com/achilleasa/go-mctrace/types"
)

func perlinCamera() scene.CameraConfig {
	return scene.CameraConfig{
		LookFrom:  types.XYZ(13, 2, 3),
		LookAt:    types.XYZ(0, 2, 0),
		Up:        types.XYZ(0, 1, 0),
		VFov:      20,
		Aperture:  0.1,
		FocusDist: 10,
	}
}

func twoSpheres(opts Options, tex texture.Texture) (*scene.Scene, error) {
	mat := scene.NewLambertian(tex)
	objects := []scene.Hittable{
		scene.NewSphere(types.XYZ(0, -1000, 0), 1000, mat),
		scene.NewSphere(types.XYZ(0, 2, 0), 2, mat),
	}
	return assemble(opts, perlinCamera(), skyBlue, objects, nil)
}

func noiseScene(opts Options) (*scene.Scene, error) {
	return twoSpheres(opts, texture.NewNoise(opts.Seed, 4))
}

func turbulenceScene(opts Options) (*scene.Scene, error) {
	return twoSpheres(opts, texture.NewTurbulence(opts.Seed, 4))
}

func marbleScene(opts Options) (*scene.Scene, error) {
	return twoSpheres(opts, texture.NewMarble(opts.Seed, 4))
}

func earthScene(opts Options) (*scene.Scene, error) {
	globe := scene.NewSphere(types.XYZ(0, 0, 0), 2, scene.NewLambertian(texture.NewImage(opts.EarthTexture)))
	cfg := scene.CameraConfig{
		LookFrom:  types.XYZ(13, 2, 3),
		LookAt:    types.XYZ(0, 0, 0),
		Up:        types.XYZ(0, 1, 0),
		VFov:      20,
		FocusDist: 10,
	}
	return assemble(opts, cfg, skyBlue, []scene.Hittable{globe}, nil)
}

func simpleLight(opts Options) (*scene.Scene, error) {
	marble := scene.NewLambertian(texture.NewMarble(opts.Seed, 4))
	light := scene.NewDiffuseLightColor(4, 4, 4)

	rect := scene.NewXYRect(3, 5, 1, 3, -2, light)
	orb := scene.NewSphere(types.XYZ(0, 7, 0), 2, light)
	objects := []scene.Hittable{
		scene.NewSphere(types.XYZ(0, -1000, 0), 1000, marble),
		scene.NewSphere(types.XYZ(0, 2, 0), 2, marble),
		rect,
		orb,
	}

	cfg := scene.CameraConfig{
		LookFrom:  types.XYZ(26, 3, 6),
		LookAt:    types.XYZ(0, 2, 0),
		Up:        types.XYZ(0, 1, 0),
		VFov:      20,
		FocusDist: 10,
	}
	return assemble(opts, cfg, types.Black, objects, scene.NewHittableList(rect, orb))
}

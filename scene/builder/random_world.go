package builder

import (
	"math/rand"

	"github.com/achilleasa/go-mctrace/scene"
	"github.com/achilleasa/go-mctrace/scene/texture"
	"github.com/achilleasa/go-mctrace/types"
)

const gridSize = 11

var skyBlue = types.RGB(0.7, 0.8, 1.0)

func randomWorldCamera() scene.CameraConfig {
	return scene.CameraConfig{
		LookFrom:  types.XYZ(13, 2, 3),
		LookAt:    types.XYZ(0, 0, 0),
		Up:        types.XYZ(0, 1, 0),
		VFov:      20,
		Aperture:  0.1,
		FocusDist: 12,
	}
}

type sphereMix struct {
	// Cumulative probability thresholds for each small sphere material.
	diffuse, metal, earth float64
	moving                bool
}

func randomSpheres(opts Options, ground scene.Material, mix sphereMix) []scene.Hittable {
	rng := rand.New(rand.NewSource(opts.Seed))
	objects := []scene.Hittable{scene.NewSphere(types.XYZ(0, -1000, 0), 1000, ground)}

	var earth scene.Material
	if mix.earth > mix.metal {
		earth = scene.NewLambertian(texture.NewImage(opts.EarthTexture))
	}
	glass := scene.NewDielectric(1.5)

	for a := -gridSize; a < gridSize; a++ {
		for b := -gridSize; b < gridSize; b++ {
			chooseMat := rng.Float64()
			center := types.XYZ(float64(a)+0.9*rng.Float64(), 0.2, float64(b)+0.9*rng.Float64())
			if center.Sub(types.XYZ(4, 0.2, 0)).Len() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < mix.diffuse:
				albedo := types.RandomColor(rng, 0, 1).MulColor(types.RandomColor(rng, 0, 1))
				mat := scene.NewLambertian(&texture.SolidColor{Color: albedo})
				if mix.moving {
					center2 := center.Add(types.XYZ(0, types.RandomRange(rng, 0, 0.25), 0))
					objects = append(objects, scene.NewMovingSphere(center, center2, 0, 1, 0.2, mat))
				} else {
					objects = append(objects, scene.NewSphere(center, 0.2, mat))
				}
			case chooseMat < mix.metal:
				albedo := types.RandomColor(rng, 0.5, 1)
				fuzz := types.RandomRange(rng, 0, 0.5)
				objects = append(objects, scene.NewSphere(center, 0.2, scene.NewMetal(&texture.SolidColor{Color: albedo}, fuzz)))
			case chooseMat < mix.earth:
				objects = append(objects, scene.NewSphere(center, 0.2, earth))
			default:
				objects = append(objects, scene.NewSphere(center, 0.2, glass))
			}
		}
	}

	return append(objects,
		scene.NewSphere(types.XYZ(0, 1, 0), 1, glass),
		scene.NewSphere(types.XYZ(-4, 1, 0), 1, scene.NewLambertianColor(0.4, 0.2, 0.1)),
		scene.NewSphere(types.XYZ(4, 1, 0), 1, scene.NewMetalColor(0.7, 0.6, 0.5, 0)),
	)
}

func randomWorld(opts Options) (*scene.Scene, error) {
	objects := randomSpheres(opts, scene.NewLambertianColor(0.5, 0.5, 0.5), sphereMix{diffuse: 0.8, metal: 0.95, earth: 0.95, moving: true})
	return assemble(opts, randomWorldCamera(), skyBlue, objects, nil)
}

func randomWorldOriginal(opts Options) (*scene.Scene, error) {
	objects := randomSpheres(opts, scene.NewLambertianColor(0.5, 0.5, 0.5), sphereMix{diffuse: 0.8, metal: 0.95, earth: 0.95})
	return assemble(opts, randomWorldCamera(), skyBlue, objects, nil)
}

func randomWorldCheckered(opts Options) (*scene.Scene, error) {
	ground := scene.NewLambertian(texture.NewChecker(types.RGB(0.9, 0.9, 0.9), types.RGB(0.1, 0.6, 0.1)))
	objects := randomSpheres(opts, ground, sphereMix{diffuse: 0.8, metal: 0.95, earth: 0.95, moving: true})
	return assemble(opts, randomWorldCamera(), skyBlue, objects, nil)
}

func randomWorldEarth(opts Options) (*scene.Scene, error) {
	objects := randomSpheres(opts, scene.NewLambertianColor(0.5, 0.5, 0.5), sphereMix{diffuse: 0.7, metal: 0.9, earth: 0.95, moving: true})
	return assemble(opts, randomWorldCamera(), skyBlue, objects, nil)
}

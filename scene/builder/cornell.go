package builder

import (
	"math/rand"

	"github.com/achilleasa/go-mctrace/scene"
	"github.com/achilleasa/go-mctrace/scene/texture"
	"github.com/achilleasa/go-mctrace/types"
)

const cornellSize = 555

func cornellCamera() scene.CameraConfig {
	return scene.CameraConfig{
		LookFrom:  types.XYZ(278, 278, -800),
		LookAt:    types.XYZ(278, 278, 0),
		Up:        types.XYZ(0, 1, 0),
		VFov:      40,
		FocusDist: 10,
	}
}

// The empty box with its ceiling light. The light is flipped so that it
// emits downwards; the returned light sampling target is left unflipped.
func cornellWalls(lightIntensity float64) ([]scene.Hittable, *scene.Rect, *scene.Lambertian) {
	red := scene.NewLambertianColor(0.65, 0.05, 0.05)
	white := scene.NewLambertianColor(0.73, 0.73, 0.73)
	green := scene.NewLambertianColor(0.12, 0.45, 0.15)
	light := scene.NewDiffuseLightColor(lightIntensity, lightIntensity, lightIntensity)

	walls := []scene.Hittable{
		scene.NewYZRect(0, cornellSize, 0, cornellSize, cornellSize, green),
		scene.NewYZRect(0, cornellSize, 0, cornellSize, 0, red),
		scene.NewFlipFace(scene.NewXZRect(213, 343, 227, 332, cornellSize-1, light)),
		scene.NewXZRect(0, cornellSize, 0, cornellSize, 0, white),
		scene.NewXZRect(0, cornellSize, 0, cornellSize, cornellSize, white),
		scene.NewXYRect(0, cornellSize, 0, cornellSize, cornellSize, white),
	}
	return walls, scene.NewXZRect(213, 343, 227, 332, cornellSize-1, nil), white
}

func rotatedBox(size types.Vec3, angle float64, offset types.Vec3, mat scene.Material) scene.Hittable {
	box := scene.NewBox(types.Vec3{}, size, mat)
	return scene.NewTranslate(scene.NewRotateY(box, angle), offset)
}

func cornellBox(opts Options) (*scene.Scene, error) {
	objects, lightShape, white := cornellWalls(15)
	objects = append(objects,
		rotatedBox(types.XYZ(165, 330, 165), 15, types.XYZ(265, 0, 295), white),
		rotatedBox(types.XYZ(165, 165, 165), -18, types.XYZ(130, 0, 65), white),
	)
	return assemble(opts, cornellCamera(), types.Black, objects, scene.NewHittableList(lightShape))
}

func cornellBoxSphere(opts Options) (*scene.Scene, error) {
	objects, lightShape, white := cornellWalls(15)
	glass := scene.NewSphere(types.XYZ(190, 90, 190), 90, scene.NewDielectric(1.5))
	objects = append(objects,
		rotatedBox(types.XYZ(165, 330, 165), 15, types.XYZ(265, 0, 295), white),
		glass,
	)

	// The glass sphere is sampled too so caustics converge faster.
	lights := scene.NewHittableList(lightShape, scene.NewSphere(glass.Center, glass.Radius, nil))
	return assemble(opts, cornellCamera(), types.Black, objects, lights)
}

func cornellSmoke(opts Options) (*scene.Scene, error) {
	objects, _, white := cornellWalls(7)

	// A larger, dimmer light than the plain box.
	objects[2] = scene.NewFlipFace(scene.NewXZRect(113, 443, 127, 432, cornellSize-1, scene.NewDiffuseLightColor(7, 7, 7)))
	lightShape := scene.NewXZRect(113, 443, 127, 432, cornellSize-1, nil)

	objects = append(objects,
		scene.NewConstantMedium(
			rotatedBox(types.XYZ(165, 330, 165), 15, types.XYZ(265, 0, 295), white),
			0.01, texture.NewSolidColor(0, 0, 0),
		),
		scene.NewConstantMedium(
			rotatedBox(types.XYZ(165, 165, 165), -18, types.XYZ(130, 0, 65), white),
			0.01, texture.NewSolidColor(1, 1, 1),
		),
	)
	return assemble(opts, cornellCamera(), types.Black, objects, scene.NewHittableList(lightShape))
}

func rotateTest(opts Options) (*scene.Scene, error) {
	const size = 600
	red := scene.NewLambertianColor(0.65, 0.05, 0.05)
	white := scene.NewLambertianColor(0.73, 0.73, 0.73)
	green := scene.NewLambertianColor(0.12, 0.45, 0.15)
	light := scene.NewDiffuseLightColor(15, 15, 15)

	boxSize := types.XYZ(120, 120, 120)
	objects := []scene.Hittable{
		scene.NewYZRect(0, size, 0, size, size, green),
		scene.NewYZRect(0, size, 0, size, 0, red),
		scene.NewFlipFace(scene.NewXZRect(200, 400, 200, 400, size-1, light)),
		scene.NewXZRect(0, size, 0, size, 0, white),
		scene.NewXZRect(0, size, 0, size, size, white),
		scene.NewXYRect(0, size, 0, size, size, white),
		scene.NewTranslate(scene.NewRotateX(scene.NewBox(types.Vec3{}, boxSize, white), 30), types.XYZ(60, 100, 300)),
		scene.NewTranslate(scene.NewRotateY(scene.NewBox(types.Vec3{}, boxSize, white), 30), types.XYZ(240, 100, 300)),
		scene.NewTranslate(scene.NewRotateZ(scene.NewBox(types.Vec3{}, boxSize, white), 30), types.XYZ(420, 100, 300)),
	}
	cfg := scene.CameraConfig{
		LookFrom:  types.XYZ(300, 300, -800),
		LookAt:    types.XYZ(300, 300, 0),
		Up:        types.XYZ(0, 1, 0),
		VFov:      40,
		FocusDist: 10,
	}
	lights := scene.NewHittableList(scene.NewXZRect(200, 400, 200, 400, size-1, nil))
	return assemble(opts, cfg, types.Black, objects, lights)
}

func nextWeekFinal(opts Options) (*scene.Scene, error) {
	rng := rand.New(rand.NewSource(opts.Seed))

	ground := scene.NewLambertianColor(0.48, 0.83, 0.53)
	const boxesPerSide = 20
	var groundBoxes []scene.Hittable
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			const w = 100.0
			x0 := -1000 + float64(i)*w
			z0 := -1000 + float64(j)*w
			y1 := types.RandomRange(rng, 1, 101)
			groundBoxes = append(groundBoxes, scene.NewBox(types.XYZ(x0, 0, z0), types.XYZ(x0+w, y1, z0+w), ground))
		}
	}
	groundBvh, err := scene.BuildBvh(groundBoxes, opts.Time0, opts.Time1, rng, opts.Split)
	if err != nil {
		return nil, err
	}

	light := scene.NewDiffuseLightColor(7, 7, 7)
	lightRect := scene.NewXZRect(123, 423, 147, 412, 554, light)

	center1 := types.XYZ(400, 400, 200)
	center2 := center1.Add(types.XYZ(30, 0, 0))

	boundary := scene.NewSphere(types.XYZ(360, 150, 145), 70, scene.NewDielectric(1.5))
	haze := scene.NewSphere(types.XYZ(0, 0, 0), 5000, scene.NewDielectric(1.5))

	white := scene.NewLambertianColor(0.73, 0.73, 0.73)
	var cluster []scene.Hittable
	for i := 0; i < 1000; i++ {
		cluster = append(cluster, scene.NewSphere(types.RandomVec3(rng, 0, 165), 10, white))
	}
	clusterBvh, err := scene.BuildBvh(cluster, opts.Time0, opts.Time1, rng, opts.Split)
	if err != nil {
		return nil, err
	}

	objects := []scene.Hittable{
		groundBvh,
		scene.NewFlipFace(lightRect),
		scene.NewMovingSphere(center1, center2, 0, 1, 50, scene.NewLambertianColor(0.7, 0.3, 0.1)),
		scene.NewSphere(types.XYZ(260, 150, 45), 50, scene.NewDielectric(1.5)),
		scene.NewSphere(types.XYZ(0, 150, 145), 50, scene.NewMetalColor(0.8, 0.8, 0.9, 1)),
		boundary,
		scene.NewConstantMedium(boundary, 0.2, texture.NewSolidColor(0.2, 0.4, 0.9)),
		scene.NewConstantMedium(haze, 0.0001, texture.NewSolidColor(1, 1, 1)),
		scene.NewSphere(types.XYZ(400, 200, 400), 100, scene.NewLambertian(texture.NewImage(opts.EarthTexture))),
		scene.NewSphere(types.XYZ(220, 280, 300), 80, scene.NewLambertian(texture.NewNoise(opts.Seed, 0.1))),
		scene.NewTranslate(scene.NewRotateY(clusterBvh, 15), types.XYZ(-100, 270, 395)),
	}

	lookFrom, lookAt := types.XYZ(478, 278, -600), types.XYZ(278, 278, 0)
	cfg := scene.CameraConfig{
		LookFrom:  lookFrom,
		LookAt:    lookAt,
		Up:        types.XYZ(0, 1, 0),
		VFov:      40,
		Aperture:  0.1,
		FocusDist: lookFrom.Sub(lookAt).Len(),
	}
	lights := scene.NewHittableList(scene.NewXZRect(123, 423, 147, 412, 554, nil))
	return assemble(opts, cfg, types.Black, objects, lights)
}

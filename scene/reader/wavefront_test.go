package reader

import (
	"image"
	"image/png"
	"math"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/achilleasa/go-mctrace/asset"
	"github.com/achilleasa/go-mctrace/scene"
	"github.com/achilleasa/go-mctrace/types"
)

func mockResource(payload string) *asset.Resource {
	return asset.NewResourceFromStream("embedded", strings.NewReader(payload))
}

func TestFloatParser(t *testing.T) {
	expError := "unsupported syntax for 'v'; expected 1 argument; got 0"
	_, err := parseFloat([]string{"v"})
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get %s; got %v", expError, err)
	}

	_, err = parseFloat([]string{"v", "not-a-float"})
	if err == nil {
		t.Fatal("expected to get a parse error")
	}

	v, err := parseFloat([]string{"v", "3.14"})
	if err != nil {
		t.Fatal(err)
	}

	if v != 3.14 {
		t.Fatalf("expected parsed value to be 3.14; got %f", v)
	}
}

func TestVec2Parser(t *testing.T) {
	expError := "unsupported syntax for 'v'; expected 2 arguments; got 0"
	_, err := parseVec2([]string{"v"})
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get %s; got %v", expError, err)
	}

	_, err = parseVec2([]string{"v", "not-a-float", "2"})
	if err == nil {
		t.Fatal("expected to get a parse error")
	}

	v, err := parseVec2([]string{"v", "3.14", "0"})
	if err != nil {
		t.Fatal(err)
	}

	if expVal := [2]float64{3.14, 0}; v != expVal {
		t.Fatalf("expected parsed value to be %v; got %v", expVal, v)
	}
}

func TestVec3Parser(t *testing.T) {
	expError := "unsupported syntax for 'v'; expected 3 arguments; got 0"
	_, err := parseVec3([]string{"v"})
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get %s; got %v", expError, err)
	}

	_, err = parseVec3([]string{"v", "not-a-float", "2", "3"})
	if err == nil {
		t.Fatal("expected to get a parse error")
	}

	v, err := parseVec3([]string{"v", "3.14", "0", "0.4"})
	if err != nil {
		t.Fatal(err)
	}

	if expVal := types.XYZ(3.14, 0, 0.4); v != expVal {
		t.Fatalf("expected parsed value to be %v; got %v", expVal, v)
	}
}

func TestSelectFaceCoordinate(t *testing.T) {
	expError := "index out of bounds"
	type spec struct {
		in       string
		listLen  int
		out      int
		expError string
	}
	specs := []spec{
		{"2", 1, -1, expError},
		{"-2", 1, -1, expError},
		{"1", 10, 0, ""}, // indices are 1-based
		{"-1", 10, 9, ""},
	}

	for idx, s := range specs {
		v, err := selectFaceCoordIndex(s.in, s.listLen)
		if s.expError != "" && (err == nil || err.Error() != s.expError) {
			t.Fatalf("[spec %d] expected error %s; got %v", idx, s.expError, err)
		} else if v != s.out {
			t.Fatalf("[spec %d] expected index to be %d; got %d", idx, s.out, v)
		}
	}
}

const singleFacePayload = `
o testObj
v 0 0 0
v 1 0 0
v 0 1 0
vn 1 0 0
vt 0 0
vn 0 1 0
vt 0 1
vn 0 1 0
vt 1 0
vn 0 0 1
# Comment
f 1/1/1 2/2/2 -1/-1/-1
`

func TestDefaultMeshInstanceGeneration(t *testing.T) {
	sc, err := newWavefrontReader().Read(mockResource(singleFacePayload))
	if err != nil {
		t.Fatal(err)
	}

	expMeshInstances := 1
	if len(sc.Instances) != expMeshInstances {
		t.Fatalf("expected %d mesh instances to be generated; got %d", expMeshInstances, len(sc.Instances))
	}
	inst0 := sc.Instances[0]
	if inst0.Mesh != 0 {
		t.Fatalf("expected mesh instance to point to mesh at index 0; got %d", inst0.Mesh)
	}
	if inst0.Rotation != (types.Vec3{}) || inst0.Translation != (types.Vec3{}) {
		t.Fatalf("expected identity instance transform; got %+v", *inst0)
	}
}

func TestParseSingleFacedObject(t *testing.T) {
	r := newWavefrontReader()
	err := r.parse(mockResource(singleFacePayload))
	if err != nil {
		t.Fatal(err)
	}

	expMeshes := 1
	if len(r.sceneGraph.Meshes) != expMeshes {
		t.Fatalf("expected %d meshes to be parsed; got %d", expMeshes, len(r.sceneGraph.Meshes))
	}

	mesh0 := r.sceneGraph.Meshes[0]
	expName := "testObj"
	if mesh0.Name != expName {
		t.Fatalf("expected mesh[0] name to be '%s'; got %s", expName, mesh0.Name)
	}

	expFaces := 1
	if len(mesh0.Faces) != expFaces {
		t.Fatalf("expected mesh[0] to contain %d faces; got %d", expFaces, len(mesh0.Faces))
	}

	expMaterials := 1
	if len(r.sceneGraph.Materials) != expMaterials {
		t.Fatalf("expected scene to contain %d material(s); got %d", expMaterials, len(r.sceneGraph.Materials))
	}

	expPoints := [3]types.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	expNormals := [3]types.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	expUVs := [3][2]float64{{0, 0}, {0, 1}, {1, 0}}
	face0 := mesh0.Faces[0]
	if face0.Vertices != expPoints {
		t.Fatalf("expected vertices %v; got %v", expPoints, face0.Vertices)
	}
	if face0.Normals != expNormals {
		t.Fatalf("expected normals %v; got %v", expNormals, face0.Normals)
	}
	if face0.UVs != expUVs {
		t.Fatalf("expected uvs %v; got %v", expUVs, face0.UVs)
	}
}

func TestParseQuadIsTriangulated(t *testing.T) {
	payload := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	r := newWavefrontReader()
	if err := r.parse(mockResource(payload)); err != nil {
		t.Fatal(err)
	}

	faces := r.sceneGraph.Meshes[0].Faces
	if len(faces) != 2 {
		t.Fatalf("expected quad to be split into 2 triangles; got %d", len(faces))
	}
	if faces[1].Vertices != [3]types.Vec3{{0, 0, 0}, {1, 1, 0}, {0, 1, 0}} {
		t.Fatalf("expected second triangle to fan from the first vertex; got %v", faces[1].Vertices)
	}
}

func TestParseErrors(t *testing.T) {
	type spec struct {
		payload  string
		expError string
	}
	specs := []spec{
		{"f 1 2", "[embedded: 1] error: unsupported syntax for 'f'; expected at least 3 arguments; got 2"},
		{"v 0 0 0\nf 1 1 2", "[embedded: 2] error: could not parse vertex coord for face argument 2: index out of bounds"},
		{"usemtl foo", "[embedded: 1] error: undefined material with name 'foo'"},
		{"instance foo 0 0 0 0 0 0", "[embedded: 1] error: unknown mesh with name 'foo'"},
		{"camera_fov", "[embedded: 1] error: unsupported syntax for 'camera_fov'; expected 1 argument; got 0"},
	}

	for index, s := range specs {
		err := newWavefrontReader().parse(mockResource(s.payload))
		if err == nil || err.Error() != s.expError {
			t.Fatalf("[spec %d] expected error %q; got %v", index, s.expError, err)
		}
	}
}

func TestMeshInstancing(t *testing.T) {
	payload := singleFacePayload + `
camera_fov 30
camera_eye 0 0 10
camera_look 0 0 0
instance testObj 	1 0 1	0 0 0
instance testObj 	0 0 0	0 90 0
`
	sc, err := newWavefrontReader().Read(mockResource(payload))
	if err != nil {
		t.Fatal(err)
	}

	if len(sc.Instances) != 2 {
		t.Fatalf("expected 2 mesh instances; got %d", len(sc.Instances))
	}

	cfg := sc.CameraConfig()
	if cfg.VFov != 30 || cfg.LookFrom != types.XYZ(0, 0, 10) || cfg.FocusDist != 10 {
		t.Fatalf("unexpected camera config %+v", cfg)
	}

	objects, lights, err := sc.Hittables(0, 1, rand.New(rand.NewSource(1)), scene.SplitRandomAxis)
	if err != nil {
		t.Fatal(err)
	}
	if len(objects) != 2 || len(lights) != 0 {
		t.Fatalf("expected 2 objects and no lights; got %d and %d", len(objects), len(lights))
	}

	type spec struct {
		obj    int
		expMin types.Vec3
		expMax types.Vec3
	}
	specs := []spec{
		{0, types.XYZ(1, 0, 1), types.XYZ(2, 1, 1)},
		// rotating by 90 degrees around Y maps +x to -z
		{1, types.XYZ(0, 0, -1), types.XYZ(0, 1, 0)},
	}
	for index, s := range specs {
		box, ok := objects[s.obj].BoundingBox(0, 1)
		if !ok {
			t.Fatalf("[spec %d] expected bounded object", index)
		}
		for a := 0; a < 3; a++ {
			if math.Abs(box.Min[a]-s.expMin[a]) > 1e-3 || math.Abs(box.Max[a]-s.expMax[a]) > 1e-3 {
				t.Fatalf("[spec %d] expected bbox %v - %v; got %v - %v", index, s.expMin, s.expMax, box.Min, box.Max)
			}
		}
	}
}

func TestMaterialLoaderMissingNewMaterialCommand(t *testing.T) {
	payload := `Kd 1.0 1.0 1.0`
	err := newWavefrontReader().parseMaterials(mockResource(payload))

	expError := "[embedded: 1] error: got 'Kd' without a 'newmtl'"
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get error: %s; got %v", expError, err)
	}
}

func TestMaterialLoaderInvalidVec3Param(t *testing.T) {
	payload := `
	newmtl foo
	Kd 1.0`
	err := newWavefrontReader().parseMaterials(mockResource(payload))

	expError := "[embedded: 3] error: unsupported syntax for 'Kd'; expected 3 arguments; got 1"
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get error: %s; got %v", expError, err)
	}
}

func TestMaterialLoaderInvalidScalarParam(t *testing.T) {
	payload := `
	newmtl foo
	Ni`
	err := newWavefrontReader().parseMaterials(mockResource(payload))

	expError := "[embedded: 3] error: unsupported syntax for 'Ni'; expected 1 argument; got 0"
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get error: %s; got %v", expError, err)
	}
}

func TestMaterialLoaderSuccess(t *testing.T) {
	payload := `
	# comment
	newmtl foo
	Kd 1.0 1.0 1.0
	Ks 0.1 0.2 0.3
	Ke 0.4    0.5 0.6
	Ni 2.5
	Nr 0`
	r := newWavefrontReader()
	err := r.parseMaterials(mockResource(payload))
	if err != nil {
		t.Fatal(err)
	}

	matLen := len(r.sceneGraph.Materials)
	if matLen != 1 {
		t.Fatalf("expected to parse 1 material; got %d", matLen)
	}

	mat := r.sceneGraph.Materials[0]
	if mat.Name != "foo" {
		t.Fatalf("expected material name to be 'foo'; got %s", mat.Name)
	}

	type spec struct {
		name string
		got  types.Color
		exp  types.Color
	}
	specs := []spec{
		{"Kd", mat.Kd, types.RGB(1, 1, 1)},
		{"Ks", mat.Ks, types.RGB(0.1, 0.2, 0.3)},
		{"Ke", mat.Ke, types.RGB(0.4, 0.5, 0.6)},
	}
	for _, s := range specs {
		if s.got != s.exp {
			t.Fatalf("expected %s to be %v; got %v", s.name, s.exp, s.got)
		}
	}
	if mat.Ni != 2.5 {
		t.Fatalf("expected Ni to be 2.5; got %f", mat.Ni)
	}
	if mat.Nr != 0 {
		t.Fatalf("expected Nr to be 0; got %f", mat.Nr)
	}
	if !mat.IsEmissive() {
		t.Fatal("expected material with Ke to be emissive")
	}
}

func TestMaterialMapping(t *testing.T) {
	type spec struct {
		mat    Material
		expect func(scene.Material) bool
	}
	specs := []spec{
		{Material{Kd: types.RGB(0.5, 0.5, 0.5)}, func(m scene.Material) bool { _, ok := m.(*scene.Lambertian); return ok }},
		{Material{Ks: types.RGB(0.9, 0.9, 0.9), Nr: 0.1}, func(m scene.Material) bool { _, ok := m.(*scene.Metal); return ok }},
		{Material{Ni: 1.5}, func(m scene.Material) bool { _, ok := m.(*scene.Dielectric); return ok }},
		{Material{Ke: types.RGB(4, 4, 4), Ni: 1.5}, func(m scene.Material) bool { _, ok := m.(*scene.DiffuseLight); return ok }},
	}
	for index, s := range specs {
		if got := s.mat.material(); !s.expect(got) {
			t.Fatalf("[spec %d] unexpected material type %T", index, got)
		}
	}
}

func TestReadSceneWithMaterialLibrary(t *testing.T) {
	dir := t.TempDir()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	f, err := os.Create(filepath.Join(dir, "tex.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err = png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	files := map[string]string{
		"scene.mtl": `
newmtl light
Ke 4 4 4
newmtl floor
map_Kd tex.png
newmtl missing
map_Kd does-not-exist.png
`,
		"scene.obj": `
mtllib scene.mtl
o light
v -1 5 -1
v 1 5 -1
v 1 5 1
v -1 5 1
usemtl light
f 1 2 3 4
o floor
v -10 0 -10
v 10 0 -10
v 0 0 10
usemtl floor
f -3 -2 -1
`,
	}
	for name, payload := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(payload), 0644); err != nil {
			t.Fatal(err)
		}
	}

	sc, err := ReadScene(filepath.Join(dir, "scene.obj"))
	if err != nil {
		t.Fatal(err)
	}
	if len(sc.Materials) != 3 || sc.Materials[1].KdTex == nil || sc.Materials[2].KdTex != nil {
		t.Fatalf("unexpected materials: %+v", sc.Materials)
	}

	objects, lights, err := sc.Hittables(0, 1, rand.New(rand.NewSource(1)), scene.SplitSurfaceArea)
	if err != nil {
		t.Fatal(err)
	}
	if len(objects) != 2 || len(lights) != 2 {
		t.Fatalf("expected 2 meshes and 2 emissive triangles; got %d and %d", len(objects), len(lights))
	}
}

func TestReadRemoteScene(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/scenes/scene.obj":
			w.Write([]byte("call parts/tri.obj\n"))
		case "/scenes/parts/tri.obj":
			w.Write([]byte(singleFacePayload))
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	sc, err := ReadScene(ts.URL + "/scenes/scene.obj")
	if err != nil {
		t.Fatal(err)
	}
	if len(sc.Meshes) != 1 || len(sc.Meshes[0].Faces) != 1 {
		t.Fatalf("expected included mesh to be parsed; got %+v", sc.Meshes)
	}

	_, err = ReadScene(ts.URL + "/scenes/missing.obj")
	if err == nil || !strings.Contains(err.Error(), "status 404") {
		t.Fatalf("expected 404 error; got %v", err)
	}
}

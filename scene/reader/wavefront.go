package reader

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/achilleasa/go-mctrace/asset"
	"github.com/achilleasa/go-mctrace/asset/texture"
	"github.com/achilleasa/go-mctrace/log"
	"github.com/achilleasa/go-mctrace/types"
)

type wavefrontSceneReader struct {
	logger log.Logger

	// The parsed scene.
	sceneGraph *Scene

	// A map of material names to material index.
	matNameToIndex map[string]int

	// Currently selected material index
	curMaterial int

	// List of vertices, normals and uv coords.
	vertexList []types.Vec3
	normalList []types.Vec3
	uvList     [][2]float64

	// An error stack that provides additional error information when
	// scene files include other files (models, mat libs e.t.c)
	errStack []string
}

// Create a new text scene reader.
func newWavefrontReader() *wavefrontSceneReader {
	return &wavefrontSceneReader{
		logger:         log.New("wavefront reader"),
		sceneGraph:     newScene(),
		matNameToIndex: make(map[string]int),
		curMaterial:    -1,
	}
}

// Read scene definition.
func (r *wavefrontSceneReader) Read(sceneRes *asset.Resource) (*Scene, error) {
	r.logger.Noticef("parsing scene from %s", sceneRes.Path())
	start := time.Now()

	// Parse scene
	err := r.parse(sceneRes)
	if err != nil {
		return nil, err
	}

	// If no mesh instances are defined, create instances for each defined mesh
	if len(r.sceneGraph.Instances) == 0 {
		r.createDefaultMeshInstances()
	}

	r.logger.Infof("parsed %d mesh(es) and %d material(s) in %d ms", len(r.sceneGraph.Meshes), len(r.sceneGraph.Materials), time.Since(start).Nanoseconds()/1000000)

	return r.sceneGraph, nil
}

// Generate a mesh instance with an identity transformation for each defined mesh.
func (r *wavefrontSceneReader) createDefaultMeshInstances() {
	for meshIndex := range r.sceneGraph.Meshes {
		r.sceneGraph.Instances = append(r.sceneGraph.Instances, &MeshInstance{Mesh: meshIndex})
	}
}

// Generate an error message that also includes any data in the error stack.
func (r *wavefrontSceneReader) emitError(file string, line int, msgFormat string, args ...interface{}) error {
	msg := fmt.Sprintf(msgFormat, args...)

	var errMsg string
	if file != "" {
		errMsg = strings.Trim(
			fmt.Sprintf("[%s: %d] error: %s\n%s", file, line, msg, strings.Join(r.errStack, "\n")),
			"\n",
		)
	} else {
		errMsg = strings.Trim(
			fmt.Sprintf("error: %s\n%s", msg, strings.Join(r.errStack, "\n")),
			"\n",
		)
	}

	return errors.New(errMsg)
}

// Push a frame to the error stack.
func (r *wavefrontSceneReader) pushFrame(msg string) {
	r.errStack = append([]string{msg}, r.errStack...)
}

// Pop a frame from the error stack.
func (r *wavefrontSceneReader) popFrame() {
	r.errStack = r.errStack[1:]
}

// Create and select a default material for surfaces not using one.
func (r *wavefrontSceneReader) defaultMaterial() int {
	matName := ""

	// Search for material in referenced list
	matIndex, exists := r.matNameToIndex[matName]
	if !exists {
		// Add it now
		mat := newMaterial(matName)
		mat.Kd = types.RGB(0.7, 0.7, 0.7)
		r.sceneGraph.Materials = append(r.sceneGraph.Materials, mat)
		matIndex = len(r.sceneGraph.Materials) - 1
		r.matNameToIndex[matName] = matIndex
	}
	return matIndex
}

// Parse wavefront object scene format.
func (r *wavefrontSceneReader) parse(res *asset.Resource) error {
	var lineNum int
	var err error

	scanner := bufio.NewScanner(res)
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "call", "mtllib":
			if len(lineTokens) != 2 {
				return r.emitError(res.Path(), lineNum, "unsupported syntax for '%s'; expected 1 argument; got %d", lineTokens[0], len(lineTokens)-1)
			}

			r.pushFrame(fmt.Sprintf("referenced from %s:%d [%s]", res.Path(), lineNum, lineTokens[0]))

			incRes, err := asset.NewResource(lineTokens[1], res)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}

			switch lineTokens[0] {
			case "call":
				err = r.parse(incRes)
			case "mtllib":
				err = r.parseMaterials(incRes)
			}
			incRes.Close()

			if err != nil {
				return err
			}
			r.popFrame()
		case "usemtl":
			if len(lineTokens) != 2 {
				return r.emitError(res.Path(), lineNum, "unsupported syntax for 'usemtl'; expected 1 argument; got %d", len(lineTokens)-1)
			}

			// Lookup material
			matName := lineTokens[1]
			matIndex, exists := r.matNameToIndex[matName]
			if !exists {
				return r.emitError(res.Path(), lineNum, "undefined material with name '%s'", matName)
			}

			// Activate material
			r.curMaterial = matIndex
		case "v":
			v, err := parseVec3(lineTokens)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}
			r.vertexList = append(r.vertexList, v)
		case "vn":
			v, err := parseVec3(lineTokens)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}
			r.normalList = append(r.normalList, v)
		case "vt":
			v, err := parseVec2(lineTokens)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}
			r.uvList = append(r.uvList, v)
		case "g", "o":
			if len(lineTokens) < 2 {
				return r.emitError(res.Path(), lineNum, "unsupported syntax for '%s'; expected 1 argument for object name; got %d", lineTokens[0], len(lineTokens)-1)
			}

			r.sceneGraph.Meshes = append(r.sceneGraph.Meshes, newMesh(lineTokens[1]))
		case "f":
			faces, err := r.parseFace(lineTokens)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}

			// If no object has been defined create a default one
			if len(r.sceneGraph.Meshes) == 0 {
				r.sceneGraph.Meshes = append(r.sceneGraph.Meshes, newMesh("default"))
			}

			// Append faces
			mesh := r.sceneGraph.Meshes[len(r.sceneGraph.Meshes)-1]
			mesh.Faces = append(mesh.Faces, faces...)
		case "camera_fov":
			r.sceneGraph.Camera.FOV, err = parseFloat(lineTokens)
		case "camera_eye":
			r.sceneGraph.Camera.Eye, err = parseVec3(lineTokens)
		case "camera_look":
			r.sceneGraph.Camera.Look, err = parseVec3(lineTokens)
		case "camera_up":
			r.sceneGraph.Camera.Up, err = parseVec3(lineTokens)
		case "instance":
			instance, err := r.parseMeshInstance(lineTokens)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}
			r.sceneGraph.Instances = append(r.sceneGraph.Instances, instance)
		}

		if err != nil {
			return r.emitError(res.Path(), lineNum, "%s", err.Error())
		}
	}

	return scanner.Err()
}

// Parse mesh instance definition. Definitions use the following format:
// instance mesh_name tX tY tZ rX rY rZ
// where:
// - tX, tY, tZ : translation vector
// - rX, rY, rZ : rotation angles in degrees
func (r *wavefrontSceneReader) parseMeshInstance(lineTokens []string) (*MeshInstance, error) {
	if len(lineTokens) != 8 {
		return nil, fmt.Errorf("unsupported syntax for 'instance'; expected 7 arguments: mesh_name tX tY tZ rX rY rZ; got %d", len(lineTokens)-1)
	}

	// Find object by name
	meshName := lineTokens[1]
	meshIndex := -1
	for index, mesh := range r.sceneGraph.Meshes {
		if mesh.Name == meshName {
			meshIndex = index
			break
		}
	}

	if meshIndex == -1 {
		return nil, fmt.Errorf("unknown mesh with name '%s'", meshName)
	}

	translation, err := parseVec3(lineTokens[1:5])
	if err != nil {
		return nil, err
	}
	rotation, err := parseVec3(lineTokens[4:8])
	if err != nil {
		return nil, err
	}

	return &MeshInstance{
		Mesh:        meshIndex,
		Translation: translation,
		Rotation:    rotation,
	}, nil
}

// Parse face definition. Each face definitions consists of 3 or more
// arguments, one for each vertex. Each one of the vertex arguments is
// comprised of 1, 2 or 3 args separated by a slash character. The following
// formats are supported:
// - vertexIndex
// - vertexIndex/uvIndex
// - vertexIndex//normalIndex
// - vertexIndex/uvIndex/normalIndex
//
// Indices start from 1 and may be negative to indicate
// an offset off the end of the vertex/uv list.
//
// Faces with more than 3 vertices are split into a triangle fan.
func (r *wavefrontSceneReader) parseFace(lineTokens []string) ([]Face, error) {
	if len(lineTokens) < 4 {
		return nil, fmt.Errorf("unsupported syntax for 'f'; expected at least 3 arguments; got %d", len(lineTokens)-1)
	}

	numVerts := len(lineTokens) - 1
	vertices := make([]types.Vec3, numVerts)
	normals := make([]types.Vec3, numVerts)
	uvs := make([][2]float64, numVerts)

	var vOffset int
	var err error
	expIndices := 0
	for arg := 0; arg < numVerts; arg++ {
		vTokens := strings.Split(lineTokens[arg+1], "/")

		// The first arg defines the format for the following args
		if arg == 0 {
			expIndices = len(vTokens)
		} else if len(vTokens) != expIndices {
			return nil, fmt.Errorf("expected each face argument to contain %d indices; arg %d contains %d indices", expIndices, arg, len(vTokens))
		}

		// Faces must at least define a vertex coord
		if vTokens[0] == "" {
			return nil, fmt.Errorf("face argument %d does not include a vertex index", arg)
		}

		vOffset, err = selectFaceCoordIndex(vTokens[0], len(r.vertexList))
		if err != nil {
			return nil, fmt.Errorf("could not parse vertex coord for face argument %d: %s", arg, err.Error())
		}
		vertices[arg] = r.vertexList[vOffset]

		// Parse UV coords if specified
		if len(vTokens) > 1 && vTokens[1] != "" {
			vOffset, err = selectFaceCoordIndex(vTokens[1], len(r.uvList))
			if err != nil {
				return nil, fmt.Errorf("could not parse tex coord for face argument %d: %s", arg, err.Error())
			}
			uvs[arg] = r.uvList[vOffset]
		}

		// Parse normal coords if specified
		if len(vTokens) > 2 && vTokens[2] != "" {
			vOffset, err = selectFaceCoordIndex(vTokens[2], len(r.normalList))
			if err != nil {
				return nil, fmt.Errorf("could not parse normal coord for face argument %d: %s", arg, err.Error())
			}
			normals[arg] = r.normalList[vOffset]
		}
	}

	// If no material defined select the default
	if r.curMaterial < 0 {
		r.curMaterial = r.defaultMaterial()
	}

	faces := make([]Face, 0, numVerts-2)
	for i := 1; i < numVerts-1; i++ {
		faces = append(faces, Face{
			Vertices: [3]types.Vec3{vertices[0], vertices[i], vertices[i+1]},
			Normals:  [3]types.Vec3{normals[0], normals[i], normals[i+1]},
			UVs:      [3][2]float64{uvs[0], uvs[i], uvs[i+1]},
			Material: r.curMaterial,
		})
	}
	return faces, nil
}

// Parse a wavefront material library.
func (r *wavefrontSceneReader) parseMaterials(res *asset.Resource) error {
	var lineNum int
	var err error

	scanner := bufio.NewScanner(res)

	var curMaterial *Material

	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "newmtl":
			if len(lineTokens) != 2 {
				return r.emitError(res.Path(), lineNum, "unsupported syntax for 'newmtl'; expected 1 argument; got %d", len(lineTokens)-1)
			}

			matName := lineTokens[1]
			if _, exists := r.matNameToIndex[matName]; exists {
				return r.emitError(res.Path(), lineNum, "material '%s' already defined", matName)
			}

			// Allocate new material and add it to library
			curMaterial = newMaterial(matName)
			r.sceneGraph.Materials = append(r.sceneGraph.Materials, curMaterial)
			r.matNameToIndex[matName] = len(r.sceneGraph.Materials) - 1
		default:
			if curMaterial == nil {
				return r.emitError(res.Path(), lineNum, "got '%s' without a 'newmtl'", lineTokens[0])
			}

			switch lineTokens[0] {
			case "Kd", "Ks", "Ke":
				var target *types.Color
				switch lineTokens[0] {
				case "Kd":
					target = &curMaterial.Kd
				case "Ks":
					target = &curMaterial.Ks
				case "Ke":
					target = &curMaterial.Ke
				}

				var v types.Vec3
				v, err = parseVec3(lineTokens)
				*target = types.Color(v)
			case "Ni", "Nr":
				var target *float64
				switch lineTokens[0] {
				case "Ni":
					target = &curMaterial.Ni
				case "Nr":
					target = &curMaterial.Nr
				}

				*target, err = parseFloat(lineTokens)
			case "map_Kd", "map_Ke":
				if len(lineTokens) != 2 {
					return r.emitError(res.Path(), lineNum, "unsupported syntax for '%s'; expected 1 argument; got %d", lineTokens[0], len(lineTokens)-1)
				}

				target := &curMaterial.KdTex
				if lineTokens[0] == "map_Ke" {
					target = &curMaterial.KeTex
				}

				*target, err = r.loadTexture(lineTokens[1], res)
			}

			// Report any errors
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}
		}
	}

	return scanner.Err()
}

// Load a texture referenced by a material library. Missing local textures
// are ignored.
func (r *wavefrontSceneReader) loadTexture(texPath string, relTo *asset.Resource) (*texture.Texture, error) {
	imgRes, err := asset.NewResource(texPath, relTo)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.logger.Warningf("ignoring missing texture %s", texPath)
			return nil, nil
		}
		return nil, err
	}
	defer imgRes.Close()

	return texture.New(imgRes)
}

// Given an index for a face coord type (vertex, normal, tex) calculate the
// proper offset into the coord list. Wavefront format can also use negative
// indices to reference elements from the end of the coord list.
func selectFaceCoordIndex(indexToken string, coordListLen int) (int, error) {
	index, err := strconv.ParseInt(indexToken, 10, 32)
	if err != nil {
		return -1, err
	}

	var vOffset int
	if index < 0 {
		vOffset = coordListLen + int(index)
	} else {
		vOffset = int(index - 1)
	}
	if vOffset < 0 || vOffset >= coordListLen {
		return -1, fmt.Errorf("index out of bounds")
	}
	return vOffset, nil
}

// Parse a float scalar value.
func parseFloat(lineTokens []string) (float64, error) {
	if len(lineTokens) < 2 {
		return 0, fmt.Errorf("unsupported syntax for '%s'; expected 1 argument; got %d", lineTokens[0], len(lineTokens)-1)
	}

	return strconv.ParseFloat(lineTokens[1], 64)
}

// Parse a Vec3 row.
func parseVec3(lineTokens []string) (types.Vec3, error) {
	if len(lineTokens) < 4 {
		return types.Vec3{}, fmt.Errorf("unsupported syntax for '%s'; expected 3 arguments; got %d", lineTokens[0], len(lineTokens)-1)
	}

	v := types.Vec3{}
	for tokIdx := 1; tokIdx <= 3; tokIdx++ {
		coord, err := strconv.ParseFloat(lineTokens[tokIdx], 64)
		if err != nil {
			return v, err
		}
		v[tokIdx-1] = coord
	}
	return v, nil
}

// Parse a uv row.
func parseVec2(lineTokens []string) ([2]float64, error) {
	if len(lineTokens) < 3 {
		return [2]float64{}, fmt.Errorf("unsupported syntax for '%s'; expected 2 arguments; got %d", lineTokens[0], len(lineTokens)-1)
	}

	var v [2]float64
	for tokIdx := 1; tokIdx <= 2; tokIdx++ {
		coord, err := strconv.ParseFloat(lineTokens[tokIdx], 64)
		if err != nil {
			return v, err
		}
		v[tokIdx-1] = coord
	}
	return v, nil
}

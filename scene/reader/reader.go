package reader

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/achilleasa/go-mctrace/asset"
)

var ErrUnsupportedFormat = errors.New("reader: unsupported scene file format")

// The Reader interface is implemented by all scene readers.
type Reader interface {
	// Read scene definition from a resource.
	Read(*asset.Resource) (*Scene, error)
}

// Returns true if a reader is available for the given scene file or url.
func IsSupported(pathToScene string) bool {
	switch strings.ToLower(path.Ext(pathToScene)) {
	case ".obj", ".zip":
		return true
	}
	return false
}

// Read scene from a file or url. The reader is selected based on the file
// extension: .obj files are parsed as wavefront scenes while .zip files are
// expected to contain a compiled scene.
func ReadScene(pathToScene string) (*Scene, error) {
	var reader Reader
	switch strings.ToLower(path.Ext(pathToScene)) {
	case ".obj":
		reader = newWavefrontReader()
	case ".zip":
		reader = newZipSceneReader()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, pathToScene)
	}

	res, err := asset.NewResource(pathToScene, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return reader.Read(res)
}

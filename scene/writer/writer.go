package writer

import "github.com/achilleasa/go-mctrace/scene/reader"

// The Writer interface is implemented by all scene writers.
type Writer interface {
	// Write a parsed scene.
	Write(*reader.Scene) error
}

// Write a compiled scene to a zip file that can be loaded back using
// reader.ReadScene.
func WriteScene(sc *reader.Scene, zipFile string) error {
	return newZipSceneWriter(zipFile).Write(sc)
}

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/achilleasa/go-mctrace/scene/reader"
	"github.com/achilleasa/go-mctrace/scene/writer"
	"github.com/urfave/cli"
)

// Compile wavefront scenes into zip files that load without parsing.
func CompileScene(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() == 0 {
		return fmt.Errorf("compile: no scene files specified")
	}

	for idx := 0; idx < ctx.NArg(); idx++ {
		sceneFile := ctx.Args().Get(idx)
		ext := filepath.Ext(sceneFile)
		if !strings.EqualFold(ext, ".obj") {
			return fmt.Errorf("compile: unsupported file %s", sceneFile)
		}

		sc, err := reader.ReadScene(sceneFile)
		if err != nil {
			return err
		}

		zipFile := strings.TrimSuffix(sceneFile, ext) + ".zip"
		if err = writer.WriteScene(sc, zipFile); err != nil {
			return err
		}
	}
	return nil
}

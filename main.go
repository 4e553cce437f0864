package main

import (
	"os"

	"github.com/achilleasa/go-mctrace/cmd"
	"github.com/achilleasa/go-mctrace/log"
	"github.com/achilleasa/go-mctrace/scene/builder"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	sceneFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "scene",
			Value: builder.DefaultScene,
			Usage: "name of the scene to build (see list-scenes) or path/url of a wavefront .obj scene",
		},
		cli.Float64Flag{
			Name:  "aspect-ratio",
			Value: 1.0,
			Usage: "frame aspect ratio (width / height)",
		},
		cli.Int64Flag{
			Name:  "seed",
			Value: 0,
			Usage: "seed for random scene content and sampling",
		},
		cli.StringFlag{
			Name:  "bvh-split",
			Value: "random-axis",
			Usage: "BVH split strategy: random-axis, random-axis-per-node or sah",
		},
		cli.StringFlag{
			Name:  "earth-texture",
			Value: "assets/earthmap.jpeg",
			Usage: "path or http(s) url of the earth texture image",
		},
	}

	app := cli.NewApp()
	app.Name = "mctrace"
	app.Usage = "render scenes using monte carlo path tracing"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Build one of the named scenes and render it using a pool of cpu tracers.

The rendered frame is written to stdout as a plain-text PPM image unless
an output file is specified. Output files with a .png extension are PNG
encoded.`,
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 400,
					Usage: "frame width; the height is derived from the aspect ratio",
				},
				cli.IntFlag{
					Name:  "samples, spp",
					Value: 100,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: 50,
					Usage: "max number of bounces per path",
				},
				cli.IntFlag{
					Name:  "tracers",
					Value: 0,
					Usage: "number of cpu tracers; 0 uses one per logical core",
				},
				cli.StringFlag{
					Name:  "scheduler",
					Value: "naive",
					Usage: "block scheduler: naive or perfect",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "",
					Usage: "image filename for the rendered frame",
				},
			}, sceneFlags...),
			Action: cmd.RenderFrame,
		},
		{
			Name:   "list-scenes",
			Usage:  "list available scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:      "info",
			Usage:     "build a scene and display its statistics",
			ArgsUsage: "[scene]",
			Flags:     sceneFlags,
			Action:    cmd.ShowSceneInfo,
		},
		{
			Name:        "compile",
			Usage:       "compile one or more wavefront scenes into zip files",
			ArgsUsage:   "scene1.obj scene2.obj ...",
			Description: "parse each wavefront scene and store the result next to it with a .zip extension. Compiled scenes can be passed to --scene.",
			Action:      cmd.CompileScene,
		},
		{
			Name:   "list-devices",
			Usage:  "display host resources available to the cpu tracers",
			Action: cmd.ListDevices,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New("mctrace").Error(err)
		os.Exit(1)
	}
}

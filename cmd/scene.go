package cmd

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/go-mctrace/scene"
	"github.com/achilleasa/go-mctrace/scene/builder"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Map scene related cli flags to builder options.
func builderOptions(ctx *cli.Context) (builder.Options, error) {
	split, err := scene.ParseSplitStrategy(ctx.String("bvh-split"))
	if err != nil {
		return builder.Options{}, err
	}

	return builder.Options{
		AspectRatio:  ctx.Float64("aspect-ratio"),
		Time0:        0,
		Time1:        1,
		Seed:         ctx.Int64("seed"),
		Split:        split,
		EarthTexture: ctx.String("earth-texture"),
	}, nil
}

// List the available scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Lights", "Description"})
	for _, entry := range builder.List() {
		name := entry.Name
		if name == builder.DefaultScene {
			name += " (default)"
		}
		table.Append([]string{name, fmt.Sprintf("%t", entry.HasLights), entry.Description})
	}

	table.Render()
	logger.Noticef("available scenes\n%s", buf.String())
	return nil
}

// Build a scene and display its info.
func ShowSceneInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	opts, err := builderOptions(ctx)
	if err != nil {
		return err
	}

	sceneName := ctx.String("scene")
	if ctx.NArg() == 1 {
		sceneName = ctx.Args().First()
	}

	sc, err := builder.Build(sceneName, opts)
	if err != nil {
		return err
	}

	stats := sc.Stats()
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Property", "Value"})
	table.Append([]string{"Scene", sceneName})
	table.Append([]string{"BVH split", opts.Split.String()})
	table.Append([]string{"Registered lights", fmt.Sprintf("%d", stats.Lights)})
	table.Append([]string{"Background", fmt.Sprintf("%v", sc.Background)})
	if stats.HasBounds {
		table.Append([]string{"Bounds min", fmt.Sprintf("%v", stats.Bounds.Min)})
		table.Append([]string{"Bounds max", fmt.Sprintf("%v", stats.Bounds.Max)})
	}
	if stats.Bvh != nil {
		table.Append([]string{"BVH nodes", fmt.Sprintf("%d", stats.Bvh.Nodes)})
		table.Append([]string{"BVH leafs", fmt.Sprintf("%d", stats.Bvh.Leafs)})
		table.Append([]string{"BVH depth", fmt.Sprintf("%d", stats.Bvh.MaxDepth)})
		table.Append([]string{"Top-level primitives", fmt.Sprintf("%d", stats.Bvh.Primitives)})
	}

	table.Render()
	logger.Noticef("scene information:\n%s", buf.String())
	return nil
}

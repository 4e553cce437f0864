package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/achilleasa/go-mctrace/renderer"
	"github.com/achilleasa/go-mctrace/scene/builder"
	"github.com/achilleasa/go-mctrace/tracer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.Int("width") <= 0 || ctx.Int("samples") <= 0 || ctx.Int("depth") <= 0 {
		return fmt.Errorf("width, samples and depth must be positive")
	}

	aspectRatio := ctx.Float64("aspect-ratio")
	if aspectRatio <= 0 {
		return fmt.Errorf("invalid aspect ratio %f", aspectRatio)
	}

	opts := renderer.Options{
		FrameW:          uint32(ctx.Int("width")),
		FrameH:          uint32(float64(ctx.Int("width")) / aspectRatio),
		SamplesPerPixel: uint32(ctx.Int("samples")),
		MaxDepth:        uint32(ctx.Int("depth")),
		NumTracers:      ctx.Int("tracers"),
		Seed:            ctx.Int64("seed"),
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	// Build scene
	sceneOpts, err := builderOptions(ctx)
	if err != nil {
		return err
	}
	sceneName := ctx.String("scene")
	logger.Noticef("building scene %q", sceneName)
	sc, err := builder.Build(sceneName, sceneOpts)
	if err != nil {
		return err
	}
	logger.Infof("scene information: %s", sc.Stats())

	var scheduler tracer.BlockScheduler
	switch ctx.String("scheduler") {
	case "naive":
		scheduler = tracer.NewNaiveScheduler()
	case "perfect":
		scheduler = tracer.NewPerfectScheduler()
	default:
		return fmt.Errorf("unsupported block scheduler %q", ctx.String("scheduler"))
	}

	// Create renderer
	r, err := renderer.NewDefault(sc, scheduler, opts)
	if err != nil {
		return err
	}
	defer r.Close()

	logger.Noticef("rendering %dx%d frame at %d spp", opts.FrameW, opts.FrameH, opts.SamplesPerPixel)
	frame, err := r.Render()
	if err != nil {
		return err
	}

	// Display stats
	displayFrameStats(r.Stats())

	return writeFrame(frame, ctx.String("out"))
}

// Write frame to a file or to stdout if no file is specified. Files with a
// .png extension are PNG encoded; everything else is written as PPM.
func writeFrame(frame *renderer.Frame, imgFile string) error {
	if imgFile == "" || imgFile == "-" {
		return frame.WritePPM(os.Stdout)
	}

	f, err := os.Create(imgFile)
	if err != nil {
		return err
	}
	defer f.Close()

	var encode func(io.Writer) error = frame.WritePPM
	if strings.EqualFold(filepath.Ext(imgFile), ".png") {
		encode = frame.WritePNG
	}
	if err = encode(f); err != nil {
		return err
	}

	logger.Noticef("wrote frame to %s", imgFile)
	return f.Close()
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tracer", "Block height", "% of frame", "Samples", "Render time"})
	for _, stat := range stats.Tracers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%d", stat.BlockH),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			fmt.Sprintf("%d", stat.Samples),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%d", stats.Samples), stats.RenderTime.String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}

package renderer

import (
	"fmt"
	"time"

	"github.com/achilleasa/go-mctrace/log"
	"github.com/achilleasa/go-mctrace/scene"
	"github.com/achilleasa/go-mctrace/tracer"
	"github.com/achilleasa/go-mctrace/types"
)

// A renderer that splits frames into row blocks and traces them in parallel
// using a pool of cpu tracers.
type defaultRenderer struct {
	logger log.Logger

	options   Options
	scene     *scene.Scene
	scheduler tracer.BlockScheduler
	tracers   []tracer.Tracer

	// Channels for receiving block completions and errors from the tracers.
	doneChan chan uint32
	errChan  chan error

	stats FrameStats
}

// Create a new renderer for the given scene using the specified block scheduler.
func NewDefault(sc *scene.Scene, scheduler tracer.BlockScheduler, opts Options) (Renderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if sc == nil || sc.World == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera == nil {
		return nil, ErrCameraNotDefined
	}
	if scheduler == nil {
		scheduler = tracer.NewNaiveScheduler()
	}

	r := &defaultRenderer{
		logger:    log.New("renderer"),
		options:   opts,
		scene:     sc,
		scheduler: scheduler,
	}

	if err := r.initTracers(); err != nil {
		r.Close()
		return nil, err
	}

	r.doneChan = make(chan uint32, len(r.tracers))
	r.errChan = make(chan error, len(r.tracers))
	return r, nil
}

// Spawn the tracer pool.
func (r *defaultRenderer) initTracers() error {
	host := tracer.ProbeHost()
	numTracers := r.options.NumTracers
	if numTracers == 0 {
		numTracers = host.LogicalCores
	}
	if numTracers <= 0 {
		return ErrNoTracers
	}

	r.logger.Infof("using %d cpu tracer(s); host: %q @ %.2f GHz, %d MB free", numTracers, host.CPUModel, host.ClockGHz, host.FreeMemory>>20)

	integrator := tracer.NewIntegrator(r.scene, int(r.options.MaxDepth))
	for i := 0; i < numTracers; i++ {
		tr, err := tracer.NewCPUTracer(fmt.Sprintf("cpu-%d", i), integrator, host.SpeedEstimate())
		if err != nil {
			return err
		}
		r.tracers = append(r.tracers, tr)
	}
	return nil
}

// Shutdown renderer and any attached tracer.
func (r *defaultRenderer) Close() {
	for _, tr := range r.tracers {
		tr.Close()
	}
	r.tracers = nil
}

// Get render statistics.
func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}

// Render frame.
func (r *defaultRenderer) Render() (*Frame, error) {
	if len(r.tracers) == 0 {
		return nil, ErrNoTracers
	}

	frame := NewFrame(r.options.FrameW, r.options.FrameH, r.options.SamplesPerPixel)
	if err := r.renderFrame(frame.Pixels); err != nil {
		return nil, err
	}
	return frame, nil
}

// Split the frame into blocks, enqueue them to the tracers and wait for
// all blocks to complete.
func (r *defaultRenderer) renderFrame(accumulator []types.Color) error {
	start := time.Now()
	blockAssignment := r.scheduler.Schedule(r.tracers, r.options.FrameH)

	var blockY uint32
	var pending int
	for idx, tr := range r.tracers {
		if blockAssignment[idx] == 0 {
			continue
		}
		tr.Enqueue(tracer.BlockRequest{
			FrameW:          r.options.FrameW,
			FrameH:          r.options.FrameH,
			BlockY:          blockY,
			BlockH:          blockAssignment[idx],
			SamplesPerPixel: r.options.SamplesPerPixel,
			Seed:            r.options.Seed,
			Accumulator:     accumulator,
			DoneChan:        r.doneChan,
			ErrChan:         r.errChan,
		})
		blockY += blockAssignment[idx]
		pending++
	}

	// Wait for all tracers to finish before reporting any error so that
	// no tracer is still writing to the accumulator when we return.
	var err error
	for ; pending > 0; pending-- {
		select {
		case <-r.doneChan:
		case blockErr := <-r.errChan:
			if err == nil {
				err = blockErr
			}
		}
	}
	if err != nil {
		return err
	}

	r.collectStats(blockAssignment, time.Since(start))
	return nil
}

func (r *defaultRenderer) collectStats(blockAssignment []uint32, renderTime time.Duration) {
	r.stats = FrameStats{
		Tracers:    make([]TracerStat, len(r.tracers)),
		RenderTime: renderTime,
	}
	for idx, tr := range r.tracers {
		stat := TracerStat{
			Id:           tr.Id(),
			BlockH:       blockAssignment[idx],
			FramePercent: 100.0 * float32(blockAssignment[idx]) / float32(r.options.FrameH),
		}
		if stat.BlockH != 0 {
			trStats := tr.Stats()
			stat.RenderTime = time.Duration(trStats.BlockTime)
			stat.Samples = trStats.Samples
		}
		r.stats.Tracers[idx] = stat
		r.stats.Samples += stat.Samples
	}

	r.logger.Debugf("frame rendered in %s (%.0f samples/sec)", renderTime, r.stats.SamplesPerSecond())
}

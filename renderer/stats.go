package renderer

import "time"

type TracerStat struct {
	// The tracer id.
	Id string

	// The block height and the percentage of total frame area it represents.
	BlockH       uint32
	FramePercent float32

	// Render time for assigned block
	RenderTime time.Duration

	// Number of traced camera rays.
	Samples uint64
}

type FrameStats struct {
	// Individual tracer stats.
	Tracers []TracerStat

	// Total render time for entire frame.
	RenderTime time.Duration

	// Total number of traced camera rays.
	Samples uint64
}

// Camera rays traced per second.
func (fs FrameStats) SamplesPerSecond() float64 {
	if fs.RenderTime <= 0 {
		return 0
	}
	return float64(fs.Samples) / fs.RenderTime.Seconds()
}

package tracer

import "github.com/achilleasa/go-mctrace/types"

// A unit of work that is processed by a tracer.
type BlockRequest struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Block start row and height. Row 0 is the top of the frame.
	BlockY uint32
	BlockH uint32

	// The number of emitted rays per traced pixel.
	SamplesPerPixel uint32

	// A random seed value. Each row uses its own generator seeded with
	// Seed + row so the output does not depend on the block assignment.
	Seed int64

	// A FrameW x FrameH buffer receiving the summed samples for each pixel.
	// Tracers only write to the rows of their own block.
	Accumulator []types.Color

	// A channel to signal on block completion with the number of completed rows.
	DoneChan chan<- uint32

	// A channel to signal if an error occurs.
	ErrChan chan<- error
}

// Tracer statistics.
type Stats struct {
	// The rendered block height
	BlockH uint32

	// The time for rendering this block (in nanoseconds)
	BlockTime int64

	// The number of traced camera rays.
	Samples uint64
}

type Tracer interface {
	// Get tracer id.
	Id() string

	// Shutdown and cleanup tracer.
	Close()

	// Get the tracers computation speed estimate compared to a
	// baseline implementation.
	SpeedEstimate() float32

	// Enqueue block request.
	Enqueue(BlockRequest)

	// Retrieve last frame statistics.
	Stats() *Stats
}

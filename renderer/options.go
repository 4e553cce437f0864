package renderer

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of samples.
	SamplesPerPixel uint32

	// Max number of bounces for each traced path.
	MaxDepth uint32

	// Number of cpu tracers. If zero, one tracer per logical core is used.
	NumTracers int

	// Base seed for the per-row random number generators.
	Seed int64
}

// Check options for invalid values.
func (opts Options) Validate() error {
	switch {
	case opts.FrameW == 0 || opts.FrameH == 0:
		return ErrInvalidFrameDims
	case opts.SamplesPerPixel == 0:
		return ErrInvalidSampleCount
	case opts.MaxDepth == 0:
		return ErrInvalidDepth
	case opts.NumTracers < 0:
		return ErrNoTracers
	}
	return nil
}

package tracer

import "math"

// The BlockScheduler interface is implemented by all block scheduling algorithms.
type BlockScheduler interface {
	// Split frame into blocks of variable height and assign to the pool
	// of tracers using feedback collected from previous frames.
	//
	// This function returns the block height assignment for each tracer
	// in the input list.
	Schedule(tracers []Tracer, frameH uint32) []uint32
}

// The naive scheduler splits the frame using the tracer speed estimates.
type naiveScheduler struct{}

// Create a new naive scheduler instance
func NewNaiveScheduler() BlockScheduler {
	return naiveScheduler{}
}

func (naiveScheduler) Schedule(tracers []Tracer, frameH uint32) []uint32 {
	return splitBySpeed(tracers, frameH)
}

// The perfect scheduler assumes that the volume of tracing work between two
// subsequent frames is approximately the same.
type perfectScheduler struct {
	blockAssignment []uint32
}

// Create a new perfect scheduler instance
func NewPerfectScheduler() BlockScheduler {
	return &perfectScheduler{}
}

// Split frame into blocks of variable height and assign to the pool
// of tracers using feedback collected from previous frames.
//
// This function returns the block height assignment for each tracer in the
// input list. When previous frame information is available the scheduler
// uses the following formula for estimating the workload for tracer w and frame i+1:
// w_i, f_i+1 = (blockH,w_i / time,w_i) / Σ(blockH_i-1 / time,i-1)
func (sch *perfectScheduler) Schedule(tracers []Tracer, frameH uint32) []uint32 {
	// If this is the first time we try to schedule or the number of tracers
	// has changed we need to reset the block assignments
	if len(sch.blockAssignment) != len(tracers) || !haveStats(tracers) {
		sch.blockAssignment = splitBySpeed(tracers, frameH)
		return sch.blockAssignment
	}

	// Use last frame statistics
	var total float64
	for _, tr := range tracers {
		stats := tr.Stats()
		total += float64(stats.BlockH) / float64(stats.BlockTime)
	}

	scaler := float64(frameH) / total
	for idx, tr := range tracers {
		stats := tr.Stats()
		sch.blockAssignment[idx] = uint32(math.Floor(float64(stats.BlockH) / float64(stats.BlockTime) * scaler))
	}

	return fixup(sch.blockAssignment, frameH)
}

// Returns true if all tracers have rendered a non-empty block.
func haveStats(tracers []Tracer) bool {
	for _, tr := range tracers {
		if stats := tr.Stats(); stats.BlockH == 0 || stats.BlockTime <= 0 {
			return false
		}
	}
	return true
}

// Distribute rows proportionally to each tracer's speed estimate.
func splitBySpeed(tracers []Tracer, frameH uint32) []uint32 {
	var total float64
	for _, tr := range tracers {
		total += float64(tr.SpeedEstimate())
	}

	blockAssignment := make([]uint32, len(tracers))
	for idx, tr := range tracers {
		if total <= 0 {
			blockAssignment[idx] = frameH / uint32(len(tracers))
			continue
		}
		blockAssignment[idx] = uint32(math.Floor(float64(tr.SpeedEstimate()) * float64(frameH) / total))
	}

	return fixup(blockAssignment, frameH)
}

// Ensure that every tracer gets at least one row while there are enough
// rows to go around and that the assigned rows add up to the frame height.
// Missing rows are appended to the first tracer; surplus rows are removed
// from the largest blocks.
func fixup(blockAssignment []uint32, frameH uint32) []uint32 {
	if len(blockAssignment) == 0 {
		return blockAssignment
	}

	var scheduledRows uint32
	for idx := range blockAssignment {
		if blockAssignment[idx] == 0 && uint32(len(blockAssignment)) <= frameH {
			blockAssignment[idx] = 1
		}
		scheduledRows += blockAssignment[idx]
	}

	for scheduledRows > frameH {
		largest := 0
		for idx, rows := range blockAssignment {
			if rows > blockAssignment[largest] {
				largest = idx
			}
		}
		blockAssignment[largest]--
		scheduledRows--
	}

	// In case rows don't add up to the frame height append the missing ones to the first tracer
	blockAssignment[0] += frameH - scheduledRows

	return blockAssignment
}

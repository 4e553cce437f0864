package tracer

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/achilleasa/go-mctrace/log"
)

// A tracer that renders blocks on a dedicated goroutine.
type cpuTracer struct {
	logger log.Logger

	sync.Mutex
	wg sync.WaitGroup

	// The tracer id.
	id string

	integrator *Integrator

	// A channel for receiving block requests from the renderer.
	blockReqChan chan BlockRequest

	// A channel for signaling the worker to exit.
	closeChan chan struct{}

	// Statistics for last rendered frame.
	stats *Stats

	speed float32
}

// Create a new cpu tracer and start its worker. The speed estimate is
// used by the block scheduler to split frames between tracers.
func NewCPUTracer(id string, integrator *Integrator, speed float32) (Tracer, error) {
	if integrator == nil || integrator.Scene == nil {
		return nil, ErrSceneNotDefined
	}

	tr := &cpuTracer{
		logger:       log.New(fmt.Sprintf("cpu tracer (%s)", id)),
		id:           id,
		integrator:   integrator,
		blockReqChan: make(chan BlockRequest, 1),
		stats:        &Stats{},
		speed:        speed,
	}
	tr.startWorker()

	return tr, nil
}

// Get tracer id.
func (tr *cpuTracer) Id() string {
	return tr.id
}

// Get the computation speed estimate.
func (tr *cpuTracer) SpeedEstimate() float32 {
	return tr.speed
}

// Shutdown and cleanup tracer.
func (tr *cpuTracer) Close() {
	tr.Lock()
	defer tr.Unlock()

	// If the worker is running shut it down
	if tr.closeChan != nil {
		tr.closeChan <- struct{}{}

		// wait for worker to ack close and shutdown channel
		<-tr.closeChan
		close(tr.closeChan)
		tr.closeChan = nil
		tr.wg.Wait()
	}
}

// Enqueue block request.
func (tr *cpuTracer) Enqueue(blockReq BlockRequest) {
	select {
	case tr.blockReqChan <- blockReq:
	default:
		// drop the request if worker is not listening
		tr.logger.Error("request processor did not receive block request")
		blockReq.ErrChan <- ErrTracerBusy
	}
}

// Retrieve last frame statistics.
func (tr *cpuTracer) Stats() *Stats {
	return tr.stats
}

// Spawn a go-routine to process block render requests.
func (tr *cpuTracer) startWorker() {
	// Worker already running
	if tr.closeChan != nil {
		return
	}

	tr.closeChan = make(chan struct{})
	readyChan := make(chan struct{})
	tr.wg.Add(1)
	go func() {
		defer tr.wg.Done()
		var blockReq BlockRequest
		var startTime time.Time
		var err error
		close(readyChan)
		for {
			select {
			case blockReq = <-tr.blockReqChan:
				startTime = time.Now()

				// Render block and reply with our completion status
				err = tr.renderBlock(&blockReq)
				if err != nil {
					blockReq.ErrChan <- err
					continue
				}

				// Update stats
				tr.stats.BlockH = blockReq.BlockH
				tr.stats.BlockTime = time.Since(startTime).Nanoseconds()
				tr.stats.Samples = uint64(blockReq.BlockH) * uint64(blockReq.FrameW) * uint64(blockReq.SamplesPerPixel)

				blockReq.DoneChan <- blockReq.BlockH
			case <-tr.closeChan:
				// Ack close
				tr.closeChan <- struct{}{}
				return
			}
		}
	}()

	// Wait for go-routine to start
	<-readyChan
}

// Render block.
func (tr *cpuTracer) renderBlock(blockReq *BlockRequest) error {
	frameW, frameH := int(blockReq.FrameW), int(blockReq.FrameH)
	if len(blockReq.Accumulator) != frameW*frameH {
		return ErrAccumulatorSize
	}
	if blockReq.BlockY+blockReq.BlockH > blockReq.FrameH {
		return ErrInvalidBlock
	}

	spp := int(blockReq.SamplesPerPixel)
	for y := int(blockReq.BlockY); y < int(blockReq.BlockY+blockReq.BlockH); y++ {
		rng := rand.New(rand.NewSource(blockReq.Seed + int64(y)))
		row := blockReq.Accumulator[y*frameW : (y+1)*frameW]
		for x := 0; x < frameW; x++ {
			for s := 0; s < spp; s++ {
				row[x] = row[x].Add(tr.integrator.Sample(x, y, frameW, frameH, rng))
			}
		}
	}

	tr.logger.Debugf("rendered rows [%d, %d) at %d spp", blockReq.BlockY, blockReq.BlockY+blockReq.BlockH, spp)
	return nil
}

package tracer

import "errors"

var (
	ErrTracerBusy      = errors.New("tracer: request processor did not receive block request")
	ErrInvalidBlock    = errors.New("tracer: block exceeds frame bounds")
	ErrAccumulatorSize = errors.New("tracer: accumulator does not match frame dims")
	ErrSceneNotDefined = errors.New("tracer: no scene defined")
)

package scene

import "errors"

var (
	ErrEmptyBvh           = errors.New("scene: cannot build a BVH without primitives")
	ErrUnboundedPrimitive = errors.New("scene: primitive has no bounding box")
	ErrNoWorld            = errors.New("scene: no world geometry defined")
	ErrNoCamera           = errors.New("scene: no camera defined")

	ErrUnknownSplitStrategy = errors.New("scene: unknown BVH split strategy")
)

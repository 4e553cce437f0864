package renderer

import "errors"

var (
	ErrNoTracers          = errors.New("renderer: no tracers attached")
	ErrSceneNotDefined    = errors.New("renderer: no scene defined")
	ErrCameraNotDefined   = errors.New("renderer: no camera defined")
	ErrInvalidFrameDims   = errors.New("renderer: frame dimensions must be positive")
	ErrInvalidSampleCount = errors.New("renderer: samples per pixel must be positive")
	ErrInvalidDepth       = errors.New("renderer: max depth must be positive")
)

package geometry

import "errors"

var (
	ErrUnknownType    = errors.New("unknown geometry type")
	ErrNegativeExtent = errors.New("negative geometry extent")
	ErrInvalidAxis    = errors.New("cylinder axis must be 0, 1 or 2")
	ErrVectorLength   = errors.New("vector must have exactly 3 components")
)
